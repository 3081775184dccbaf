package orchestrator

import (
	"errors"
	"fmt"

	"phone-assistant/internal/router"
)

// ErrTurnFailed matches every *TurnError.
var ErrTurnFailed = errors.New("turn failed")

// TurnError reports the node at which a pass stopped and the adapter error that stopped it.
type TurnError struct {
	Node   string
	Intent router.Intent
	Err    error
}

func (e *TurnError) Error() string {
	if e.Intent != "" {
		return fmt.Sprintf("orchestrator: turn failed at %s (intent %s): %v", e.Node, e.Intent, e.Err)
	}
	return fmt.Sprintf("orchestrator: turn failed at %s: %v", e.Node, e.Err)
}

func (e *TurnError) Unwrap() []error {
	return []error{ErrTurnFailed, e.Err}
}
