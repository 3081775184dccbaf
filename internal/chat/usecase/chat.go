package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"

	"phone-assistant/internal/chat"
	"phone-assistant/internal/chat/repository"
	"phone-assistant/internal/session"
	"phone-assistant/pkg/log"
)

// Chat runs one turn against the session's history. The session is written only
// after the turn succeeds, so a failed turn leaves it untouched.
func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.ChatOutput{}, chat.ErrEmptyMessage
	}
	if utf8.RuneCountInString(message) > chat.MaxMessageLength {
		return chat.ChatOutput{}, chat.ErrMessageTooLong
	}

	sessionID := input.SessionID
	if sessionID == "" {
		var err error
		if sessionID, err = uc.NewSession(ctx); err != nil {
			return chat.ChatOutput{}, err
		}
	}

	sess, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return chat.ChatOutput{}, chat.ErrSessionNotFound
		}
		return chat.ChatOutput{}, err
	}

	turnID := ulid.Make().String()
	ctx = log.WithFields(ctx, "session_id", sessionID, "turn_id", turnID)

	result, err := uc.runner.Run(ctx, message, sess.History)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Chat runner.Run: %v", err)
		uc.logEvent(ctx, repository.InsertEventOptions{
			SessionID:    sessionID,
			Type:         chat.EventError,
			UserMessage:  message,
			ErrorDetails: errorClass(err),
			Metadata:     map[string]interface{}{"turn_id": turnID},
		})
		return chat.ChatOutput{}, err
	}

	// Last write wins when two turns on one session overlap.
	if err := uc.sessions.Update(ctx, sessionID, result.History); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return chat.ChatOutput{}, chat.ErrSessionNotFound
		}
		return chat.ChatOutput{}, err
	}

	response := result.Response
	if result.NeedsClarification {
		response = chat.ClarificationResponse
	}

	uc.logEvent(ctx, repository.InsertEventOptions{
		SessionID:   sessionID,
		Type:        chat.EventMessage,
		UserMessage: message,
		BotResponse: response,
		Intent:      string(result.Intent),
		Metadata: map[string]interface{}{
			"turn_id":             turnID,
			"needs_clarification": result.NeedsClarification,
			"has_context_data":    result.ContextData != nil,
		},
	})

	return chat.ChatOutput{
		SessionID:          sessionID,
		TurnID:             turnID,
		Intent:             string(result.Intent),
		Response:           response,
		ContextData:        result.ContextData,
		NeedsClarification: result.NeedsClarification,
		Timestamp:          uc.now(),
	}, nil
}
