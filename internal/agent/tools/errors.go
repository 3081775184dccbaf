package tools

import (
	"errors"
	"fmt"

	"phone-assistant/internal/phone"
)

// userMessage renders a catalog error as the message placed in an {"error": ...} result.
// Unexpected errors collapse to a generic message so backend details never reach the model.
func userMessage(err error) string {
	var ce *phone.CompareError
	if errors.As(err, &ce) {
		return fmt.Sprintf("Phone %d error: %s", ce.Position, userMessage(ce.Err))
	}

	var nf *phone.NotFoundError
	switch {
	case errors.As(err, &nf):
		return fmt.Sprintf("No phone found matching '%s'.", nf.Name)
	case errors.Is(err, phone.ErrInvalidName):
		return "Invalid phone name."
	case errors.Is(err, phone.ErrNoRecommendations):
		return "No recommendations found based on the given criteria."
	default:
		return "The phone catalog is unavailable right now."
	}
}

// toolError carries a message that is already safe to show to the model.
type toolError string

func (e toolError) Error() string { return string(e) }
