package gemini

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAPIKey = errors.New("gemini: API key is required")
	ErrEmptyResponse = errors.New("gemini: response has no candidates")
	ErrBlocked       = errors.New("gemini: response blocked")
)

// APIError is a non-200 answer from the generateContent endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Body)
}

// Retryable reports whether the request may succeed when repeated.
func (e *APIError) Retryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}
