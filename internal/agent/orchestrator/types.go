package orchestrator

import "travel-assistant/internal/model"

// Reply is the outcome of one processed query.
type Reply struct {
	SessionID   string       `json:"session_id"`
	Text        string       `json:"reply"`
	Intent      model.Intent `json:"intent"`
	Confidence  int          `json:"confidence"`
	Agent       string       `json:"agent"`
	Destination string       `json:"destination,omitempty"`
	Degraded    bool         `json:"degraded"`
}
