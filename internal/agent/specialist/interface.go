package specialist

import "context"

// Specialist answers one intent.
type Specialist interface {
	Name() string
	// Handle answers req. Collaborator failures degrade to static content
	// and are reported through Result.Degraded rather than as errors.
	Handle(ctx context.Context, req Request) (Result, error)
}

var (
	_ Specialist = (*Food)(nil)
	_ Specialist = (*Location)(nil)
	_ Specialist = (*Itinerary)(nil)
	_ Specialist = (*Booking)(nil)
	_ Specialist = (*Weather)(nil)
	_ Specialist = (*Default)(nil)
)
