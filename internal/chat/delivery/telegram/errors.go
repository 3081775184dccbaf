package telegram

import (
	"context"
	"errors"

	"phone-assistant/internal/chat"
)

var errInvalidSecret = errors.New("invalid webhook secret")

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, chat.ErrMessageTooLong):
		return "That message is too long. Please shorten it and try again."
	case errors.Is(err, context.DeadlineExceeded):
		return "The assistant took too long to answer. Please try again."
	default:
		return "Error processing your message. Please try again."
	}
}
