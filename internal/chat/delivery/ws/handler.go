package ws

import (
	"context"
	"errors"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"

	"phone-assistant/internal/agent/orchestrator"
	"phone-assistant/internal/chat"
	pkgErrors "phone-assistant/pkg/errors"
)

// Serve runs the read-turn-write loop until the client goes away.
// A frame without session_id continues the session of the previous turn on the
// same connection; the first such frame starts a new session.
func (h *handler) Serve(c *gin.Context) {
	r := c.Request
	ctx := r.Context()

	if !h.checkOrigin(r) {
		h.l.Warnf(ctx, "ws.Serve: origin rejected: %s", r.Header.Get("Origin"))
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	// gin's writer refuses to hijack once Accept has written the 101 header.
	var w http.ResponseWriter = c.Writer
	if u, ok := c.Writer.(interface{ Unwrap() http.ResponseWriter }); ok {
		w = u.Unwrap()
	}
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.l.Errorf(ctx, "ws.Serve: accept: %v", err)
		return
	}
	defer conn.CloseNow()
	conn.SetReadLimit(maxFrameBytes)

	var current string
	for {
		var in inFrame
		if err := wsjson.Read(ctx, conn, &in); err != nil {
			if websocket.CloseStatus(err) != -1 || errors.Is(err, context.Canceled) {
				h.l.Debugf(ctx, "ws.Serve: connection closed")
			} else {
				h.l.Warnf(ctx, "ws.Serve: read: %v", err)
			}
			return
		}

		if in.SessionID == "" {
			in.SessionID = current
		}

		if h.allow != nil && !h.allow(c) {
			h.l.Warnf(ctx, "ws.Serve: rate limit exceeded for %s", c.ClientIP())
			if err := wsjson.Write(ctx, conn, rateLimitedFrame()); err != nil {
				h.l.Warnf(ctx, "ws.Serve: write: %v", err)
				return
			}
			continue
		}

		out, err := h.uc.Chat(ctx, chat.ChatInput{SessionID: in.SessionID, Message: in.Message})
		if err != nil {
			h.l.Warnf(ctx, "ws.Serve: uc.Chat: %v", err)
			if errors.Is(err, chat.ErrSessionNotFound) && in.SessionID == current {
				current = ""
			}
			if werr := wsjson.Write(ctx, conn, errorFrame(err)); werr != nil {
				h.l.Warnf(ctx, "ws.Serve: write: %v", werr)
				return
			}
			continue
		}

		current = out.SessionID
		ts := out.Timestamp
		frame := outFrame{
			Type:               frameTurn,
			SessionID:          out.SessionID,
			TurnID:             out.TurnID,
			Intent:             out.Intent,
			Response:           out.Response,
			ContextData:        out.ContextData,
			NeedsClarification: out.NeedsClarification,
			Timestamp:          &ts,
		}
		if err := wsjson.Write(ctx, conn, frame); err != nil {
			h.l.Warnf(ctx, "ws.Serve: write: %v", err)
			return
		}
	}
}

func (h *handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(h.allowedOrigins) == 0 {
		return true
	}
	for _, o := range h.allowedOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

func rateLimitedFrame() outFrame {
	return outFrame{
		Type:    frameError,
		Code:    http.StatusTooManyRequests,
		Message: pkgErrors.ErrTooManyRequests.Message,
	}
}

func errorFrame(err error) outFrame {
	f := outFrame{Type: frameError}
	switch {
	case errors.Is(err, chat.ErrSessionNotFound):
		f.Code, f.Message = http.StatusNotFound, "Session not found or expired. Please create a new session."
	case errors.Is(err, chat.ErrEmptyMessage):
		f.Code, f.Message = http.StatusBadRequest, "Message must not be empty"
	case errors.Is(err, chat.ErrMessageTooLong):
		f.Code, f.Message = http.StatusRequestEntityTooLarge, "Message is too long"
	case errors.Is(err, context.DeadlineExceeded):
		f.Code, f.Message = http.StatusGatewayTimeout, "The assistant took too long to answer. Please try again."
	case errors.Is(err, orchestrator.ErrTurnFailed):
		f.Code, f.Message = http.StatusInternalServerError, "Error processing your message. Please try again."
	default:
		f.Code, f.Message = http.StatusInternalServerError, "Internal server error occurred"
	}
	return f
}
