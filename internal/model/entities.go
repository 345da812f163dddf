package model

// Preference categories.
const (
	PrefActivityType = "activity_type"
	PrefFoodType     = "food_type"
	PrefBudget       = "budget"
)

// Budget tiers.
const (
	BudgetLow    = "budget"
	BudgetMid    = "mid_range"
	BudgetLuxury = "luxury"
)

// Date format shared by every ISO date string in the domain.
const DateLayout = "2006-01-02"

// Preferences maps a preference category to its tag value.
type Preferences map[string]string

// Clone returns an independent copy of p.
func (p Preferences) Clone() Preferences {
	out := make(Preferences, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// TimeInfo is the structured result of date detection.
type TimeInfo struct {
	HasDates     bool   `json:"has_dates"`
	StartDate    string `json:"start_date,omitempty"`
	RelativeTime string `json:"relative_time,omitempty"`
	DateFormat   string `json:"date_format,omitempty"`
}

// ExtractedEntities holds everything the extractor pulled out of one
// utterance. Every field is independently optional: empty string, zero and
// nil mean "not found".
type ExtractedEntities struct {
	Destination string      `json:"destination,omitempty"`
	TripLength  int         `json:"trip_length,omitempty"`
	TimeInfo    *TimeInfo   `json:"time_info,omitempty"`
	Preferences Preferences `json:"preferences,omitempty"`
}

// DateRange is a resolved trip window.
type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
}

// ExtractedInfo is the subset of an utterance's entities that is written
// into conversation memory. Zero values are never copied into the context.
type ExtractedInfo struct {
	Destination string      `json:"destination,omitempty"`
	TripLength  int         `json:"trip_length,omitempty"`
	Dates       *DateRange  `json:"dates,omitempty"`
	Preferences Preferences `json:"preferences,omitempty"`
}

// Resolved is the parameter set handed to a specialist after merging the
// current utterance with conversation context.
type Resolved struct {
	Query                string
	Intent               Intent
	Destination          string
	DestinationDefaulted bool
	TripLength           int
	TripLengthDefaulted  bool
	StartDate            string
	EndDate              string
	Preferences          Preferences
	IsFollowUp           bool
	HistoryText          string
}

// HasDates reports whether a concrete start date was resolved.
func (r Resolved) HasDates() bool {
	return r.StartDate != ""
}
