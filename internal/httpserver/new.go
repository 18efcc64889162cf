package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	assistantHTTP "executive-assistant/internal/assistant/delivery/http"
	tgDelivery "executive-assistant/internal/assistant/delivery/telegram"
	"executive-assistant/internal/middleware"
	syncpkg "executive-assistant/internal/sync"
	"executive-assistant/internal/webhook"
	"executive-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw    middleware.Middleware
	ready ReadinessProbe

	// Dashboard API
	assistantHandler assistantHTTP.Handler

	// Telegram webhook
	telegramHandler tgDelivery.Handler
	webhookGuard    *webhook.SecurityValidator

	// Tracker sync trigger
	syncHandler syncpkg.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// APIKey protects the dashboard API. Empty disables the check.
	APIKey string

	// Ready backs GET /ready. Nil always reports ready.
	Ready ReadinessProbe

	// Dashboard API
	AssistantHandler assistantHTTP.Handler

	// Telegram webhook
	TelegramHandler tgDelivery.Handler
	WebhookSecurity webhook.SecurityConfig

	// Tracker sync trigger
	SyncHandler syncpkg.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               middleware.New(logger, cfg.APIKey),
		ready:            cfg.Ready,
		assistantHandler: cfg.AssistantHandler,
		telegramHandler:  cfg.TelegramHandler,
		webhookGuard:     webhook.NewSecurityValidator(cfg.WebhookSecurity),
		syncHandler:      cfg.SyncHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
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
	return nil
}

// Engine exposes the router, mainly for tests.
func (srv *HTTPServer) Engine() *gin.Engine {
	return srv.gin
}
