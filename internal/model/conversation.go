package model

import "time"

// Interaction is one processed turn. It is appended once and never
// mutated afterwards.
type Interaction struct {
	ID            string        `json:"id,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
	UserQuery     string        `json:"user_query"`
	Intent        Intent        `json:"intent"`
	AgentUsed     string        `json:"agent_used"`
	ResultSummary string        `json:"result"`
	ExtractedInfo ExtractedInfo `json:"extracted_info"`
}

// UserContext is the mutable "current state" derived from the interaction
// log. A non-zero field always reflects the latest interaction that
// supplied a value for it.
type UserContext struct {
	CurrentDestination string            `json:"current_destination"`
	CurrentTripLength  int               `json:"current_trip_length"`
	CurrentDates       *DateRange        `json:"current_dates"`
	Preferences        Preferences       `json:"preferences"`
	LastIntent         Intent            `json:"last_intent"`
	LastResults        map[string]string `json:"last_results"`
}

// NewUserContext returns an empty context with initialised maps.
func NewUserContext() UserContext {
	return UserContext{
		Preferences: Preferences{},
		LastResults: map[string]string{},
	}
}

// Clone returns a deep copy of c.
func (c UserContext) Clone() UserContext {
	out := c
	out.Preferences = c.Preferences.Clone()
	out.LastResults = make(map[string]string, len(c.LastResults))
	for k, v := range c.LastResults {
		out.LastResults[k] = v
	}
	if c.CurrentDates != nil {
		d := *c.CurrentDates
		out.CurrentDates = &d
	}
	return out
}

// ContextBundle is what memory hands to the resolver for one query.
type ContextBundle struct {
	CurrentContext     UserContext   `json:"current_context"`
	IsFollowUp         bool          `json:"is_follow_up"`
	RecentInteractions []Interaction `json:"recent_interactions"`
	RelevantHistory    []Interaction `json:"relevant_history"`
}
