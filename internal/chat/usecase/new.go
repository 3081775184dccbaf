package usecase

import (
	"context"
	"time"

	"phone-assistant/internal/agent"
	"phone-assistant/internal/agent/orchestrator"
	"phone-assistant/internal/chat"
	"phone-assistant/internal/chat/repository"
	"phone-assistant/internal/session"
	"phone-assistant/pkg/log"
)

// TurnRunner drives one conversational turn. *orchestrator.Orchestrator satisfies it.
type TurnRunner interface {
	Run(ctx context.Context, message string, history []agent.Entry) (orchestrator.Result, error)
}

// SessionStore keeps conversation histories. *session.Store satisfies it.
type SessionStore interface {
	Create(ctx context.Context) string
	Get(ctx context.Context, id string) (session.Session, error)
	Update(ctx context.Context, id string, history []agent.Entry) error
	Delete(ctx context.Context, id string) bool
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l        log.Logger
	runner   TurnRunner
	sessions SessionStore
	events   repository.Repository // nil disables the event log
	now      func() time.Time
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase implementation. events may be nil.
func New(l log.Logger, runner TurnRunner, sessions SessionStore, events repository.Repository) chat.UseCase {
	return &implUseCase{
		l:        l,
		runner:   runner,
		sessions: sessions,
		events:   events,
		now:      time.Now,
	}
}
