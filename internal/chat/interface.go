package chat

import "context"

// UseCase is the conversational surface exposed to delivery layers.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Chat runs one turn. An empty SessionID starts a new session.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
	NewSession(ctx context.Context) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
	History(ctx context.Context, sessionID string) (HistoryOutput, error)
	Events(ctx context.Context, input EventsInput) ([]Event, error)
}
