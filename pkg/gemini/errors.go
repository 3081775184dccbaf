package gemini

import (
	"errors"
	"fmt"
)

var ErrMissingAPIKey = errors.New("gemini: APIKey is required")

// APIError is a non-200 answer from generateContent. Status is the
// google.rpc status name, e.g. RESOURCE_EXHAUSTED.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("gemini: API error %d %s: %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}
