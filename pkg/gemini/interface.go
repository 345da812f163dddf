package gemini

import "context"

// IGemini generates content with a Gemini model. Implementations are safe
// for concurrent use.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

var _ IGemini = (*Client)(nil)
