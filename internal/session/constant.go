package session

import "time"

// Log prefixes
const (
	LogPrefixCreate  = "internal.session.Create"
	LogPrefixGet     = "internal.session.Get"
	LogPrefixCleanup = "internal.session.cleanupExpired"
)

const (
	DefaultTimeout         = time.Hour
	DefaultCleanupInterval = 5 * time.Minute
)
