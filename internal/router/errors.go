package router

import (
	"fmt"

	"phone-assistant/internal/agent"
)

var (
	// ErrOracleFailure wraps every classification failure.
	ErrOracleFailure = fmt.Errorf("router: %w", agent.ErrOracleFailure)

	// ErrUnknownIntent means the model answered with a label outside the taxonomy.
	ErrUnknownIntent = fmt.Errorf("%w: intent outside taxonomy", ErrOracleFailure)
)
