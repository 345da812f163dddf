package voyage

import (
	"context"
)

// IVoyage defines the interface for Voyage AI embeddings.
// Implementations are safe for concurrent use.
type IVoyage interface {
	// Embed returns one vector per input text, in input order.
	Embed(ctx context.Context, texts []string, inputType InputType) ([][]float32, error)

	// Model returns the embedding model in use.
	Model() string
}

var _ IVoyage = (*Client)(nil)
