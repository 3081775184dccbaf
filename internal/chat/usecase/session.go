package usecase

import (
	"context"
	"errors"

	"phone-assistant/internal/chat"
	"phone-assistant/internal/chat/repository"
	"phone-assistant/internal/session"
)

// NewSession starts an empty conversation.
func (uc *implUseCase) NewSession(ctx context.Context) (string, error) {
	id := uc.sessions.Create(ctx)
	uc.logEvent(ctx, repository.InsertEventOptions{SessionID: id, Type: chat.EventNewSession})
	return id, nil
}

// DeleteSession removes a conversation. Deleting an unknown session is not an error.
func (uc *implUseCase) DeleteSession(ctx context.Context, sessionID string) error {
	if uc.sessions.Delete(ctx, sessionID) {
		uc.logEvent(ctx, repository.InsertEventOptions{SessionID: sessionID, Type: chat.EventDeleteSession})
	}
	return nil
}

// History returns the stored conversation; reading it counts as activity.
func (uc *implUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	sess, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return chat.HistoryOutput{}, chat.ErrSessionNotFound
		}
		return chat.HistoryOutput{}, err
	}
	return chat.HistoryOutput{
		SessionID:    sess.ID,
		Messages:     sess.History,
		CreatedAt:    sess.CreatedAt,
		LastAccessed: sess.LastAccessed,
	}, nil
}
