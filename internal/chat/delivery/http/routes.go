package http

import (
	"github.com/gin-gonic/gin"

	"phone-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Routes that start model calls or sessions are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)

	sessions := rg.Group("/sessions")
	{
		sessions.POST("/new", mw.RateLimit(), h.NewSession)
		sessions.DELETE("/:id", h.DeleteSession)
		sessions.GET("/:id/history", h.History)
		sessions.GET("/:id/events", h.Events)
	}
}
