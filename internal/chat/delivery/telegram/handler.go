package telegram

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"phone-assistant/internal/chat"
	pkgErrors "phone-assistant/pkg/errors"
	pkgLog "phone-assistant/pkg/log"
	pkgResponse "phone-assistant/pkg/response"
	pkgTelegram "phone-assistant/pkg/telegram"
)

const (
	msgWelcome = "Hi! I can recommend phones, tell you about a model or compare two of them.\n\n" +
		"Try: \"Best camera phone under 30000\" or \"Compare Pixel 8 Pro and Galaxy S24 Ultra\"."
	msgHelp = "Ask about phones in plain words.\n\n" +
		"/new starts a fresh conversation\n/help shows this message"
	msgNewConversation = "Started a new conversation."
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and runs the turn in a background goroutine,
// because a turn can take longer than Telegram waits for a webhook response.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret != "" {
		got := c.GetHeader(pkgTelegram.HeaderSecretToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			h.l.Warnf(ctx, "telegram.HandleWebhook: %v", errInvalidSecret)
			pkgResponse.Error(c, pkgErrors.NewHTTPError(http.StatusUnauthorized, "Unauthorized"), nil)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram.HandleWebhook: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-text updates
	if update.Message == nil || update.Message.Chat == nil || strings.TrimSpace(update.Message.Text) == "" {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := *update.Message
	// The turn outlives the request, so only its log fields are carried over.
	detached := pkgLog.WithFields(context.Background(), pkgLog.Fields(ctx)...)
	detached = pkgLog.WithFields(detached, "telegram_chat_id", msg.Chat.ID)
	go func() {
		bgCtx, cancel := context.WithTimeout(detached, h.turnTimeout)
		defer cancel()
		h.processMessage(bgCtx, msg)
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage answers one Telegram message. Each chat keeps its own session.
func (h *handler) processMessage(ctx context.Context, msg pkgTelegram.Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	// ---- Built-in commands ----
	switch command(text) {
	case "/start":
		h.reply(ctx, chatID, msgWelcome)
		return
	case "/help":
		h.reply(ctx, chatID, msgHelp)
		return
	case "/new":
		h.resetChat(ctx, chatID)
		h.reply(ctx, chatID, msgNewConversation)
		return
	}

	if err := h.bot.SendChatAction(ctx, chatID, pkgTelegram.ChatActionTyping); err != nil {
		h.l.Warnf(ctx, "telegram.processMessage: failed to send typing action: %v", err)
	}

	sessionID, _ := h.chats.Get(chatID)
	output, err := h.uc.Chat(ctx, chat.ChatInput{SessionID: sessionID, Message: text})
	if errors.Is(err, chat.ErrSessionNotFound) {
		// The session expired server side; continue in a fresh one.
		h.chats.Remove(chatID)
		output, err = h.uc.Chat(ctx, chat.ChatInput{Message: text})
	}
	if err != nil {
		h.l.Errorf(ctx, "telegram.processMessage: uc.Chat failed for chat %d: %v", chatID, err)
		h.reply(ctx, chatID, errorMessage(err))
		return
	}

	h.chats.Add(chatID, output.SessionID)
	h.reply(ctx, chatID, output.Response)
}

func (h *handler) resetChat(ctx context.Context, chatID int64) {
	sessionID, ok := h.chats.Get(chatID)
	if !ok {
		return
	}
	h.chats.Remove(chatID)
	if err := h.uc.DeleteSession(ctx, sessionID); err != nil {
		h.l.Warnf(ctx, "telegram.resetChat: uc.DeleteSession: %v", err)
	}
}

func (h *handler) reply(ctx context.Context, chatID int64, text string) {
	if err := h.bot.SendMessage(ctx, chatID, text); err != nil {
		h.l.Errorf(ctx, "telegram.reply: failed to send message to chat %d: %v", chatID, err)
	}
}

// command strips a bot mention such as /help@phone_bot.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.Fields(text)[0]
	if i := strings.Index(cmd, "@"); i > 0 {
		cmd = cmd[:i]
	}
	return cmd
}
