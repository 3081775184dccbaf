package ws

import (
	"encoding/json"
	"time"
)

const (
	frameTurn  = "turn"
	frameError = "error"

	// maxFrameBytes bounds one inbound frame.
	maxFrameBytes = 1 << 20
)

type inFrame struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type outFrame struct {
	Type               string          `json:"type"`
	SessionID          string          `json:"session_id,omitempty"`
	TurnID             string          `json:"turn_id,omitempty"`
	Intent             string          `json:"intent,omitempty"`
	Response           string          `json:"response,omitempty"`
	ContextData        json.RawMessage `json:"context_data,omitempty"`
	NeedsClarification bool            `json:"needs_clarification,omitempty"`
	Timestamp          *time.Time      `json:"timestamp,omitempty"`
	Code               int             `json:"code,omitempty"`
	Message            string          `json:"message,omitempty"`
}
