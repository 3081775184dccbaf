package http

import (
	"encoding/json"
	"strings"

	"phone-assistant/internal/agent"
	"phone-assistant/internal/chat"
	"phone-assistant/pkg/response"
)

// --- Request DTOs ---

type chatReq struct {
	Message   string `json:"message"    binding:"required"`
	SessionID string `json:"session_id"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return chat.ErrEmptyMessage
	}
	return nil
}

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{
		SessionID: strings.TrimSpace(r.SessionID),
		Message:   r.Message,
	}
}

// ---

type eventsReq struct {
	SessionID string `json:"-"` // populated from URI param
	Limit     int    `form:"limit"`
}

func (r eventsReq) validate() error { return nil }

func (r eventsReq) toInput() chat.EventsInput {
	return chat.EventsInput{SessionID: r.SessionID, Limit: r.Limit}
}

// --- Response DTOs ---

type chatResp struct {
	SessionID          string            `json:"session_id"`
	TurnID             string            `json:"turn_id"`
	Intent             string            `json:"intent"`
	Response           string            `json:"response"`
	ContextData        json.RawMessage   `json:"context_data" swaggertype:"object"`
	NeedsClarification bool              `json:"needs_clarification"`
	Timestamp          response.DateTime `json:"timestamp" swaggertype:"string"`
}

func (h *handler) newChatResp(out chat.ChatOutput) chatResp {
	return chatResp{
		SessionID:          out.SessionID,
		TurnID:             out.TurnID,
		Intent:             out.Intent,
		Response:           out.Response,
		ContextData:        out.ContextData,
		NeedsClarification: out.NeedsClarification,
		Timestamp:          response.DateTime(out.Timestamp),
	}
}

type newSessionResp struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

func (h *handler) newNewSessionResp(id string) newSessionResp {
	return newSessionResp{SessionID: id, Message: MsgSessionCreated}
}

type messageResp struct {
	Role     string          `json:"role"`
	Content  string          `json:"content"`
	ToolName string          `json:"tool_name,omitempty"`
	ToolCall *agent.ToolCall `json:"tool_call,omitempty"`
}

type historyResp struct {
	SessionID    string            `json:"session_id"`
	Messages     []messageResp     `json:"messages"`
	CreatedAt    response.DateTime `json:"created_at" swaggertype:"string"`
	LastAccessed response.DateTime `json:"last_accessed" swaggertype:"string"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) historyResp {
	msgs := make([]messageResp, len(out.Messages))
	for i, e := range out.Messages {
		msgs[i] = messageResp{
			Role:     string(e.Role),
			Content:  e.Content,
			ToolName: e.ToolName,
			ToolCall: e.ToolCall,
		}
	}
	return historyResp{
		SessionID:    out.SessionID,
		Messages:     msgs,
		CreatedAt:    response.DateTime(out.CreatedAt),
		LastAccessed: response.DateTime(out.LastAccessed),
	}
}

type eventResp struct {
	ID           string                 `json:"id"`
	EventType    string                 `json:"event_type"`
	Timestamp    response.DateTime      `json:"timestamp" swaggertype:"string"`
	UserMessage  string                 `json:"user_message,omitempty"`
	BotResponse  string                 `json:"bot_response,omitempty"`
	Intent       string                 `json:"intent,omitempty"`
	ErrorDetails string                 `json:"error_details,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

type eventsResp struct {
	SessionID string      `json:"session_id"`
	Events    []eventResp `json:"events"`
}

func (h *handler) newEventsResp(sessionID string, events []chat.Event) eventsResp {
	items := make([]eventResp, len(events))
	for i, e := range events {
		items[i] = eventResp{
			ID:           e.ID,
			EventType:    string(e.Type),
			Timestamp:    response.DateTime(e.Timestamp),
			UserMessage:  e.UserMessage,
			BotResponse:  e.BotResponse,
			Intent:       e.Intent,
			ErrorDetails: e.ErrorDetails,
			Metadata:     e.Metadata,
		}
	}
	return eventsResp{SessionID: sessionID, Events: items}
}
