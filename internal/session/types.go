package session

import (
	"time"

	"phone-assistant/internal/agent"
)

// Session is a snapshot of one conversation.
type Session struct {
	ID           string
	CreatedAt    time.Time
	LastAccessed time.Time
	History      []agent.Entry
}

// Options configures a Store.
type Options struct {
	// Timeout is the idle period after which a session expires.
	Timeout time.Duration
	// Now overrides the clock in tests.
	Now func() time.Time
}
