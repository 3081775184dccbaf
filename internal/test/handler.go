package test

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"phone-assistant/internal/agent"
	"phone-assistant/internal/router"
	pkgLog "phone-assistant/pkg/log"
)

// previewEntries is how many earlier messages the test response echoes back.
const previewEntries = 6

type handler struct {
	l        pkgLog.Logger
	router   router.Router
	sessions SessionStore
}

// HandleTestMessage classifies a message without running a turn or touching the session.
// @Summary Test intent classification
// @Description Classify a message, optionally in the context of an existing session, without answering it
// @Tags test
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Test message"
// @Success 200 {object} ClassifyResponse
// @Router /test/message [post]
func (h *handler) HandleTestMessage(c *gin.Context) {
	ctx := c.Request.Context()

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	var history []agent.Entry
	if req.SessionID != "" {
		sess, err := h.sessions.Get(ctx, req.SessionID)
		if err != nil {
			c.JSON(http.StatusNotFound, ClassifyResponse{
				Success:   false,
				Text:      req.Text,
				SessionID: req.SessionID,
				Error:     "Session not found",
				Details:   err.Error(),
			})
			return
		}
		history = sess.History
	}
	history = append(history[:len(history):len(history)], agent.UserEntry(req.Text))

	intent, err := h.router.Classify(ctx, history)
	if err != nil {
		h.l.Errorf(ctx, "internal.test.HandleTestMessage: Router classification failed: %v", err)
		c.JSON(http.StatusInternalServerError, ClassifyResponse{
			Success: false,
			Text:    req.Text,
			Error:   "Router classification failed",
			Details: err.Error(),
		})
		return
	}

	response := ClassifyResponse{
		Success:   true,
		Intent:    string(intent),
		NeedsData: intent.NeedsData(),
		Text:      req.Text,
		SessionID: req.SessionID,
		History:   preview(history[:len(history)-1]),
	}

	h.l.Infof(ctx, "internal.test.HandleTestMessage: text=%q intent=%s", req.Text, intent)

	c.JSON(http.StatusOK, response)
}

// HandleResetSession deletes a session
// @Summary Reset a session
// @Description Clear the conversation history of a session
// @Tags test
// @Accept json
// @Produce json
// @Param request body ResetRequest true "Reset session"
// @Success 200 {object} ResetResponse
// @Router /test/reset [post]
func (h *handler) HandleResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	existed := h.sessions.Delete(ctx, req.SessionID)

	h.l.Infof(ctx, "internal.test.HandleResetSession: session_id=%s existed=%v", req.SessionID, existed)

	c.JSON(http.StatusOK, ResetResponse{
		Success:   existed,
		Message:   fmt.Sprintf("Session %s cleared", req.SessionID),
		SessionID: req.SessionID,
	})
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} statusResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, statusResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}

// preview renders the last few text entries as "role: content".
func preview(history []agent.Entry) []string {
	var out []string
	for _, e := range history {
		if e.Content == "" || e.Role == agent.RoleTool {
			continue
		}
		out = append(out, fmt.Sprintf("%s: %s", e.Role, e.Content))
	}
	if len(out) > previewEntries {
		out = out[len(out)-previewEntries:]
	}
	return out
}
