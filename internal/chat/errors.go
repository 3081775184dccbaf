package chat

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found or expired")
	ErrEmptyMessage    = errors.New("message is empty")
	ErrMessageTooLong  = errors.New("message is too long")
)
