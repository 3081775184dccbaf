package ws

import (
	"github.com/gin-gonic/gin"

	"phone-assistant/internal/chat"
	"phone-assistant/internal/middleware"
	"phone-assistant/pkg/log"
)

// Handler upgrades requests to a websocket that carries one chat turn per frame.
type Handler interface {
	Serve(c *gin.Context)
}

// Config configures the websocket handler.
type Config struct {
	// AllowedOrigins mirrors the CORS allow-list; "*" or an empty list allows any origin.
	AllowedOrigins []string
	// Allow spends one unit of the client's budget per frame; nil disables the check.
	Allow func(c *gin.Context) bool
}

type handler struct {
	l              log.Logger
	uc             chat.UseCase
	allowedOrigins []string
	allow          func(c *gin.Context) bool
}

// New creates a websocket chat handler.
func New(l log.Logger, uc chat.UseCase, cfg Config) Handler {
	return &handler{
		l:              l,
		uc:             uc,
		allowedOrigins: cfg.AllowedOrigins,
		allow:          cfg.Allow,
	}
}

// RegisterRoutes mounts the websocket endpoint. The upgrade itself is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/ws", mw.RateLimit(), h.Serve)
}
