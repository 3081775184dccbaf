package errors

import "net/http"

// HTTPError is an error that carries the status code the delivery layer should return.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error occurred")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests, please slow down")
)
