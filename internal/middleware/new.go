package middleware

import (
	"phone-assistant/pkg/log"
)

// Config configures the HTTP middlewares.
type Config struct {
	// AllowedOrigins lists browser origins allowed by CORS; "*" allows any origin.
	AllowedOrigins []string
	// RequestsPerMin is the per-client budget of rate-limited routes; 0 disables limiting.
	RequestsPerMin int
}

type Middleware struct {
	l              log.Logger
	allowedOrigins []string
	limiter        *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:              l,
		allowedOrigins: cfg.AllowedOrigins,
	}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
