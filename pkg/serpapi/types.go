package serpapi

import (
	"net/http"
	"time"
)

// Config configures a Client.
type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// HotelQuery describes a google_hotels search.
type HotelQuery struct {
	Destination string
	CheckIn     time.Time
	CheckOut    time.Time
	Adults      int
	Children    int
	Budget      string
}

// Hotel is one property from the search result.
type Hotel struct {
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Link             string   `json:"link"`
	OverallRating    float64  `json:"overall_rating"`
	Reviews          int      `json:"reviews"`
	HotelClass       int      `json:"extracted_hotel_class"`
	Amenities        []string `json:"amenities"`
	RatePerNight     Rate     `json:"rate_per_night"`
	FreeCancellation bool     `json:"free_cancellation"`
	Deal             string   `json:"deal"`
}

// Rate is the nightly price block.
type Rate struct {
	Lowest          string  `json:"lowest"`
	ExtractedLowest float64 `json:"extracted_lowest"`
}

type hotelsResponse struct {
	Properties []Hotel `json:"properties"`
	Error      string  `json:"error"`
}
