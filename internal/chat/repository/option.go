package repository

import (
	"time"

	"phone-assistant/internal/chat"
)

// InsertEventOptions carries the columns of a new log row. ID and Timestamp are
// generated when empty.
type InsertEventOptions struct {
	ID           string
	SessionID    string
	Type         chat.EventType
	Timestamp    time.Time
	UserMessage  string
	BotResponse  string
	Intent       string
	ErrorDetails string
	Metadata     map[string]interface{}
}

// ListEventsOptions selects a session's events, oldest first.
type ListEventsOptions struct {
	SessionID string
	Limit     int
}
