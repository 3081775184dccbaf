package repository

import (
	"context"

	"phone-assistant/internal/chat"
)

// Repository is the composed interface for the chat event log.
type Repository interface {
	EventRepository
}

// EventRepository defines all data access methods for chat events.
type EventRepository interface {
	InsertEvent(ctx context.Context, opt InsertEventOptions) (chat.Event, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]chat.Event, error)
}
