package knowledge

// Document types.
const (
	TypeLocation = "location"
	TypeFood     = "food"
	TypeTip      = "tip"
)

// Destination is one curated destination.
type Destination struct {
	Key         string   `yaml:"key"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Locations   []string `yaml:"locations"`
	Foods       []string `yaml:"foods"`
	Tips        []string `yaml:"tips"`
}

// Document is one indexed chunk.
type Document struct {
	ID          string
	Content     string
	Type        string
	Destination string
}

// SearchOptions narrows a knowledge search. Empty filters match everything.
type SearchOptions struct {
	Query       string
	Destination string
	Type        string
	Limit       int
}

// SearchResult is a scored document.
type SearchResult struct {
	Document Document
	Score    float64
}

type dataFile struct {
	Destinations []Destination `yaml:"destinations"`
}
