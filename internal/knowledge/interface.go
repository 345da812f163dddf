package knowledge

import "context"

// UseCase answers knowledge lookups for the specialists.
type UseCase interface {
	// Bootstrap indexes the curated base unless the store already holds it.
	Bootstrap(ctx context.Context) error
	// Search returns the best matching documents. Backend failures degrade
	// to the in-process keyword search.
	Search(ctx context.Context, opt SearchOptions) ([]SearchResult, error)
	// Destination returns curated data for a canonical destination.
	Destination(name string) (Destination, bool)
}
