package knowledge

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"travel-assistant/pkg/textnorm"
)

//go:embed data/travel.yaml
var travelYAML []byte

// Base is the curated, read-only travel knowledge.
type Base struct {
	destinations []Destination
	byKey        map[string]int
}

// LoadBase parses the embedded travel data.
func LoadBase() (*Base, error) {
	return ParseBase(travelYAML)
}

// ParseBase parses travel data in the embedded YAML layout.
func ParseBase(raw []byte) (*Base, error) {
	var f dataFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("knowledge: parse travel data: %w", err)
	}

	b := &Base{byKey: make(map[string]int, len(f.Destinations))}
	for _, d := range f.Destinations {
		d.Key = textnorm.Normalize(d.Key)
		if d.Key == "" {
			return nil, fmt.Errorf("knowledge: destination %q has no key", d.Name)
		}
		if _, dup := b.byKey[d.Key]; dup {
			return nil, fmt.Errorf("knowledge: duplicate destination %q", d.Key)
		}
		b.byKey[d.Key] = len(b.destinations)
		b.destinations = append(b.destinations, d)
	}
	return b, nil
}

// Destinations returns every destination in file order.
func (b *Base) Destinations() []Destination {
	return b.destinations
}

// Destination looks up a destination by canonical name.
func (b *Base) Destination(key string) (Destination, bool) {
	i, ok := b.byKey[textnorm.Normalize(key)]
	if !ok {
		return Destination{}, false
	}
	return b.destinations[i], true
}

// Documents flattens the base into chunked documents.
func (b *Base) Documents(chunkSize, overlap int) []Document {
	var docs []Document
	for _, d := range b.destinations {
		for _, group := range []struct {
			typ   string
			items []string
		}{
			{TypeLocation, d.Locations},
			{TypeFood, d.Foods},
			{TypeTip, d.Tips},
		} {
			for i, item := range group.items {
				for j, chunk := range Chunk(item, chunkSize, overlap) {
					docs = append(docs, Document{
						ID:          fmt.Sprintf("%s/%s/%d/%d", d.Key, group.typ, i, j),
						Content:     chunk,
						Type:        group.typ,
						Destination: d.Key,
					})
				}
			}
		}
	}
	return docs
}
