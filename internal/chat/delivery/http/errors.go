package http

import (
	"context"
	"errors"
	"net/http"

	"phone-assistant/internal/agent/orchestrator"
	"phone-assistant/internal/chat"
	pkgErrors "phone-assistant/pkg/errors"
)

const (
	MsgSessionCreated = "New session created successfully"

	msgSessionNotFound = "Session not found or expired. Please create a new session."
	msgTurnFailed      = "Error processing your message. Please try again."
	msgTurnTimeout     = "The assistant took too long to answer. Please try again."
)

var (
	errInvalidBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body: message is required")
	errInvalidQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, msgSessionNotFound)
	case errors.Is(err, chat.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Message must not be empty")
	case errors.Is(err, chat.ErrMessageTooLong):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "Message is too long")
	case errors.Is(err, context.DeadlineExceeded):
		return pkgErrors.NewHTTPError(http.StatusGatewayTimeout, msgTurnTimeout)
	case errors.Is(err, orchestrator.ErrTurnFailed):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, msgTurnFailed)
	default:
		return pkgErrors.ErrInternalServerError
	}
}
