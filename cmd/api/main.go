package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"phone-assistant/config"
	_ "phone-assistant/docs" // Swagger docs
	"phone-assistant/internal/agent/orchestrator"
	"phone-assistant/internal/agent/responder"
	"phone-assistant/internal/agent/tools"
	chatTelegram "phone-assistant/internal/chat/delivery/telegram"
	chatRepo "phone-assistant/internal/chat/repository"
	chatSQLite "phone-assistant/internal/chat/repository/sqlite"
	chatUC "phone-assistant/internal/chat/usecase"
	"phone-assistant/internal/httpserver"
	"phone-assistant/internal/middleware"
	phoneSQLite "phone-assistant/internal/phone/repository/sqlite"
	phoneUC "phone-assistant/internal/phone/usecase"
	"phone-assistant/internal/router"
	"phone-assistant/internal/session"
	"phone-assistant/internal/test"
	"phone-assistant/pkg/llmprovider"
	"phone-assistant/pkg/log"
	"phone-assistant/pkg/sqlite"
	"phone-assistant/pkg/telegram"
)

// @title       Phone Shopping Assistant API
// @description Conversational phone recommendations, details and comparisons.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	configPath := pflag.StringP("config", "c", "", "path to config.yaml (default: search ./config, ., /etc/app/)")
	pflag.Parse()

	// 1. Configuration
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Println("Failed to load .env: ", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Phone Shopping Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Open(ctx, cfg.Catalog.DatabasePath)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	phoneRepo, err := phoneSQLite.New(ctx, db, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize phone catalog: ", err)
		return
	}
	if cfg.Catalog.SeedGlob != "" {
		n, err := phoneSQLite.Seed(ctx, phoneRepo, cfg.Catalog.SeedGlob)
		if err != nil {
			logger.Warnf(ctx, "Catalog seed failed: %v", err)
		} else {
			logger.Infof(ctx, "Catalog seeded with %d phones from %s", n, cfg.Catalog.SeedGlob)
		}
	}

	var events chatRepo.Repository
	if cfg.ChatLog.Enabled {
		events, err = chatSQLite.New(ctx, db, logger)
		if err != nil {
			logger.Error(ctx, "Failed to initialize chat event log: ", err)
			return
		}
	} else {
		logger.Info(ctx, "Chat event log disabled")
	}

	// 4. Data retrieval tools
	catalog := phoneUC.New(phoneRepo, logger, cfg.Agent.RecommendationLimit)
	registry, err := tools.NewRegistry(catalog)
	if err != nil {
		logger.Error(ctx, "Failed to register tools: ", err)
		return
	}

	// 5. LLM provider chain
	llm, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}

	// 6. Intent graph
	intentRouter := router.New(llm, logger, router.Options{
		CacheSize: cfg.Intent.CacheSize,
		CacheTTL:  cfg.Intent.CacheTTL,
	})
	generator := responder.New(llm, logger)
	graph := orchestrator.New(intentRouter, generator, registry, logger, orchestrator.Options{
		MaxHistory: cfg.Agent.MaxHistory,
		Timezone:   cfg.Agent.Timezone,
	})

	// 7. Sessions
	sessions := session.New(logger, session.Options{Timeout: cfg.Session.Timeout})
	sessions.StartCleanup(ctx, cfg.Session.CleanupInterval)

	// 8. Chat domain
	chat := chatUC.New(logger, graph, sessions, events)

	// 9. Telegram channel (optional)
	var telegramHandler chatTelegram.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = chatTelegram.New(logger, chat, bot, chatTelegram.Config{
			SecretToken: cfg.Telegram.SecretToken,
			SessionTTL:  cfg.Session.Timeout,
		})

		if cfg.Telegram.WebhookURL != "" {
			if err := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.SecretToken); err != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram channel skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 10. HTTP Server
	mw := middleware.New(logger, middleware.Config{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
	})
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		ChatUseCase:     chat,
		Middleware:      mw,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		TelegramHandler: telegramHandler,
		TestHandler:     test.New(logger, intentRouter, sessions),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
