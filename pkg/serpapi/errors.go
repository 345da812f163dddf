package serpapi

import "errors"

var (
	ErrMissingAPIKey  = errors.New("serpapi: API key is required")
	ErrInvalidQuery   = errors.New("serpapi: destination and dates are required")
	ErrUpstreamStatus = errors.New("serpapi: unexpected status")
)
