package test

import (
	"context"

	"github.com/gin-gonic/gin"

	"phone-assistant/internal/router"
	"phone-assistant/internal/session"
	pkgLog "phone-assistant/pkg/log"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleTestMessage(c *gin.Context)
	HandleResetSession(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// SessionStore is the slice of the session store the test endpoints read and clear.
type SessionStore interface {
	Get(ctx context.Context, id string) (session.Session, error)
	Delete(ctx context.Context, id string) bool
}

// New creates a new test handler
func New(
	l pkgLog.Logger,
	router router.Router,
	sessions SessionStore,
) Handler {
	return &handler{
		l:        l,
		router:   router,
		sessions: sessions,
	}
}

// RegisterRoutes mounts the test endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/message", h.HandleTestMessage)
	rg.POST("/reset", h.HandleResetSession)
	rg.GET("/health", h.HandleHealthCheck)
}
