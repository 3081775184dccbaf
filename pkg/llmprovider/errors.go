package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrInvalidRequest        = errors.New("invalid request")
)

// ProviderError names the provider whose last attempt failed.
type ProviderError struct {
	Provider string
	Attempts int
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s after %d attempt(s): %v", e.Provider, e.Attempts, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// statusError is implemented by the client API errors of pkg/gemini and pkg/openaicompat.
type statusError interface {
	HTTPStatus() int
}

// retryable reports whether another attempt against the same provider can succeed.
// Client errors other than 408 and 429 repeat deterministically.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var se statusError
	if errors.As(err, &se) {
		code := se.HTTPStatus()
		if code == http.StatusRequestTimeout || code == http.StatusTooManyRequests {
			return true
		}
		return code < 400 || code >= 500
	}
	return true
}
