package httpserver

import (
	"context"

	assistantHTTP "executive-assistant/internal/assistant/delivery/http"
	"executive-assistant/internal/model"
	"executive-assistant/internal/webhook"
	pkgTelegram "executive-assistant/pkg/telegram"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.AccessLog())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	if srv.assistantHandler != nil {
		assistantHTTP.RegisterRoutes(srv.gin.Group("/api/v1"), srv.assistantHandler, srv.mw)
		srv.l.Infof(ctx, "Dashboard API registered under /api/v1")
	} else {
		srv.l.Infof(ctx, "Assistant handler not configured, skipping dashboard API")
	}

	if srv.syncHandler != nil {
		srv.gin.POST("/api/v1/sync", srv.mw.Auth(), srv.syncHandler.HandleSync)
		srv.l.Infof(ctx, "Tracker sync trigger registered at POST /api/v1/sync")
	}

	if srv.telegramHandler != nil {
		guard := webhook.Guard(srv.webhookGuard, pkgTelegram.SecretTokenHeader, srv.l)
		srv.gin.POST("/webhook/telegram", guard, srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}

	return nil
}
