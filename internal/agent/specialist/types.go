package specialist

import "travel-assistant/internal/model"

// Request is everything a specialist needs for one turn.
type Request struct {
	Resolved model.Resolved
	// Quantity is how many items the user asked for.
	Quantity int
	Adults   int
	Children int
	// TimeContext is appended to the system prompt.
	TimeContext string
}

// Result is a specialist answer before the intent header is added.
type Result struct {
	Text string
	// Clarification marks a question back to the user; it is shown as is.
	Clarification bool
	// Degraded is set when a collaborator failed and static content was used.
	Degraded bool
}
