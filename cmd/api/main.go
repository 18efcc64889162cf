package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"executive-assistant/config"
	_ "executive-assistant/docs" // Swagger docs
	"executive-assistant/internal/app"
	assistantHTTP "executive-assistant/internal/assistant/delivery/http"
	tgDelivery "executive-assistant/internal/assistant/delivery/telegram"
	"executive-assistant/internal/httpserver"
	"executive-assistant/internal/project"
	syncpkg "executive-assistant/internal/sync"
	"executive-assistant/internal/webhook"
	"executive-assistant/pkg/log"
	"executive-assistant/pkg/telegram"

	"golang.org/x/sync/errgroup"
)

// @title       Executive Assistant API
// @description Dashboard and Telegram surfaces of the executive assistant dialogue core.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
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

	logger.Info(ctx, "Starting Executive Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Dialogue core
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize assistant: ", err)
		return
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warnf(ctx, "Close: %v", err)
		}
	}()

	uc := a.Assistant()

	// 4. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, uc, bot, cfg.Telegram.AllowedChatIDs)
		registerWebhook(ctx, logger, cfg.Telegram, bot)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	var syncHandler syncpkg.Handler
	if a.Sync != nil {
		syncHandler = syncpkg.NewHandler(a.Sync, logger)
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		APIKey:           cfg.API.Key,
		Ready:            a.Projects.Ready,
		AssistantHandler: assistantHTTP.New(logger, uc),
		TelegramHandler:  telegramHandler,
		WebhookSecurity: webhook.SecurityConfig{
			Secret:          cfg.Telegram.SecretToken,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		},
		SyncHandler: syncHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return httpServer.Run(gctx) })
	if cfg.Projects.Watch {
		g.Go(func() error { return project.Watch(gctx, a.Projects, logger) })
	}

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		logger.Error(ctx, "Server stopped with error: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points the bot at this server: the configured URL first,
// then the public URL of a local ngrok tunnel.
func registerWebhook(ctx context.Context, logger log.Logger, cfg config.TelegramConfig, bot *telegram.Bot) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPI != "" {
		publicURL, err := detectPublicURL(ctx, cfg.NgrokAPI)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		} else {
			webhookURL = publicURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}
	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook not registered: no public URL")
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
}
