package session

import "errors"

// ErrNotFound is returned for unknown, deleted and expired sessions.
var ErrNotFound = errors.New("session not found or expired")
