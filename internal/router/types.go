package router

import "travel-assistant/internal/model"

// Output is the structured result of intent classification.
type Output struct {
	Intent     model.Intent `json:"intent"`
	Confidence int          `json:"confidence"` // 0-100
	Reasoning  string       `json:"reasoning"`
}
