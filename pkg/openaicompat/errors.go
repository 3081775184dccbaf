package openaicompat

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAPIKey = errors.New("openaicompat: API key is required")
	// ErrUnknownVendor is returned for a vendor without defaults and without an explicit endpoint.
	ErrUnknownVendor = errors.New("openaicompat: unknown vendor")
)

// APIError is a non-200 answer from the completions endpoint.
type APIError struct {
	Vendor     string
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("%s: API error %d (%s): %s", e.Vendor, e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("%s: API error %d: %s", e.Vendor, e.StatusCode, e.Message)
}

// HTTPStatus reports the status code the endpoint answered with.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}
