package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"travel-assistant/pkg/gemini"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrInvalidRequest        = errors.New("invalid request")
	ErrInvalidResponse       = errors.New("invalid provider response")
)

// ProviderError attributes an error to the provider that returned it.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether repeating the same request against the same
// provider can succeed. Refusals, malformed answers, cancellation and 4xx
// statuses other than 429 are permanent; unknown errors are retried.
func IsRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled),
		errors.Is(err, ErrInvalidResponse),
		errors.Is(err, ErrInvalidRequest),
		errors.Is(err, gemini.ErrBlocked),
		errors.Is(err, gemini.ErrEmptyResponse):
		return false
	}

	var gErr *gemini.APIError
	if errors.As(err, &gErr) {
		return gErr.Retryable()
	}
	var oErr *openai.APIError
	if errors.As(err, &oErr) {
		return retryableStatus(oErr.HTTPStatusCode)
	}
	var rErr *openai.RequestError
	if errors.As(err, &rErr) {
		return retryableStatus(rErr.HTTPStatusCode)
	}
	return true
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError || code == 0
}
