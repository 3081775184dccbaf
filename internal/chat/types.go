package chat

import (
	"encoding/json"
	"time"

	"phone-assistant/internal/agent"
)

// --- UseCase Inputs ---

type ChatInput struct {
	SessionID string
	Message   string
}

type EventsInput struct {
	SessionID string
	Limit     int
}

// --- UseCase Outputs ---

type ChatOutput struct {
	SessionID          string
	TurnID             string
	Intent             string
	Response           string
	ContextData        json.RawMessage
	NeedsClarification bool
	Timestamp          time.Time
}

type HistoryOutput struct {
	SessionID    string
	Messages     []agent.Entry
	CreatedAt    time.Time
	LastAccessed time.Time
}

// --- Event log ---

type EventType string

const (
	EventNewSession    EventType = "new_session"
	EventMessage       EventType = "message"
	EventError         EventType = "error"
	EventDeleteSession EventType = "delete_session"
)

// Event is one row of the chat event log.
type Event struct {
	ID           string
	SessionID    string
	Type         EventType
	Timestamp    time.Time
	UserMessage  string
	BotResponse  string
	Intent       string
	ErrorDetails string
	Metadata     map[string]interface{}
}
