package usecase

import (
	"context"
	"errors"

	"phone-assistant/internal/agent"
	"phone-assistant/internal/agent/orchestrator"
	"phone-assistant/internal/chat"
	"phone-assistant/internal/chat/repository"
)

// Events lists a session's log rows. It returns an empty list when the log is disabled.
func (uc *implUseCase) Events(ctx context.Context, input chat.EventsInput) ([]chat.Event, error) {
	if uc.events == nil {
		return []chat.Event{}, nil
	}

	limit := input.Limit
	if limit <= 0 {
		limit = chat.DefaultEventLimit
	}
	if limit > chat.MaxEventLimit {
		limit = chat.MaxEventLimit
	}

	events, err := uc.events.ListEvents(ctx, repository.ListEventsOptions{SessionID: input.SessionID, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Events ListEvents: %v", err)
		return nil, err
	}
	return events, nil
}

// logEvent writes to the event log. Failures are logged and swallowed.
func (uc *implUseCase) logEvent(ctx context.Context, opt repository.InsertEventOptions) {
	if uc.events == nil {
		return
	}
	opt.Timestamp = uc.now()
	if _, err := uc.events.InsertEvent(ctx, opt); err != nil {
		uc.l.Warnf(ctx, "uc.logEvent %s: %v", opt.Type, err)
	}
}

// errorClass reduces a turn failure to "<node>: <kind>" for the event log.
// The log is readable over the API, so adapter error text stays in the service log.
func errorClass(err error) string {
	kind := "turn_failed"
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = "timeout"
	case errors.Is(err, context.Canceled):
		kind = "canceled"
	case errors.Is(err, agent.ErrOracleFailure):
		kind = "oracle_failure"
	}

	var turnErr *orchestrator.TurnError
	if errors.As(err, &turnErr) && turnErr.Node != "" {
		return turnErr.Node + ": " + kind
	}
	return kind
}
