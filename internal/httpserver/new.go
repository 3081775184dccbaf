package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"phone-assistant/internal/chat"
	chatTelegram "phone-assistant/internal/chat/delivery/telegram"
	"phone-assistant/internal/middleware"
	"phone-assistant/internal/test"
	"phone-assistant/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Chat domain
	chatUC         chat.UseCase
	mw             middleware.Middleware
	allowedOrigins []string

	// Telegram channel (optional)
	telegramHandler chatTelegram.Handler

	// Test domain, never mounted in production
	testHandler test.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	TrustedProxies  []string

	// Chat domain
	ChatUseCase    chat.UseCase
	Middleware     middleware.Middleware
	AllowedOrigins []string

	// Telegram channel (optional)
	TelegramHandler chatTelegram.Handler

	// Test domain
	TestHandler test.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		chatUC:          cfg.ChatUseCase,
		mw:              cfg.Middleware,
		allowedOrigins:  cfg.AllowedOrigins,
		telegramHandler: cfg.TelegramHandler,
		testHandler:     cfg.TestHandler,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat usecase is required")
	}
	return nil
}
