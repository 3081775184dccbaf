package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"phone-assistant/internal/chat"
	pkgLog "phone-assistant/pkg/log"
)

const (
	defaultTurnTimeout = 90 * time.Second
	defaultSessionTTL  = time.Hour
	defaultMaxChats    = 10000
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Bot is the part of the Telegram Bot API the handler talks to. *pkg/telegram.Bot satisfies it.
type Bot interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendChatAction(ctx context.Context, chatID int64, action string) error
}

// Config configures the Telegram handler.
type Config struct {
	// SecretToken must match the header Telegram sends with each update; empty disables the check.
	SecretToken string
	TurnTimeout time.Duration
	// SessionTTL bounds how long a chat remembers its session id. Match it to the session timeout.
	SessionTTL time.Duration
	MaxChats   int
}

type handler struct {
	l           pkgLog.Logger
	uc          chat.UseCase
	bot         Bot
	secret      string
	turnTimeout time.Duration
	chats       *expirable.LRU[int64, string]
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase, bot Bot, cfg Config) Handler {
	return newHandler(l, uc, bot, cfg)
}

func newHandler(l pkgLog.Logger, uc chat.UseCase, bot Bot, cfg Config) *handler {
	if cfg.TurnTimeout <= 0 {
		cfg.TurnTimeout = defaultTurnTimeout
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.MaxChats <= 0 {
		cfg.MaxChats = defaultMaxChats
	}
	return &handler{
		l:           l,
		uc:          uc,
		bot:         bot,
		secret:      cfg.SecretToken,
		turnTimeout: cfg.TurnTimeout,
		chats:       expirable.NewLRU[int64, string](cfg.MaxChats, nil, cfg.SessionTTL),
	}
}
