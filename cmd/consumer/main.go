package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"executive-assistant/config"
	"executive-assistant/internal/app"
	syncpkg "executive-assistant/internal/sync"
	"executive-assistant/pkg/log"

	"github.com/google/uuid"
)

// main runs the background tracker sync. Every interval the project
// snapshot is rebuilt from the tracker; the API and CLI pick the new file
// up through the project watcher.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting sync worker...")

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize: ", err)
		return
	}
	defer a.Close()

	if a.Sync == nil {
		logger.Error(ctx, "Tracker sync is not configured: set zoho.client_id, zoho.client_secret, zoho.refresh_token and zoho.portal_id")
		return
	}

	interval := cfg.Zoho.SyncInterval
	if interval <= 0 {
		interval = time.Hour
	}
	logger.Infof(ctx, "Syncing every %s", interval)

	run(ctx, logger, a.Sync, interval)
	logger.Info(ctx, "Sync worker stopped gracefully")
}

// run syncs once immediately, then on every tick until ctx ends.
func run(ctx context.Context, l log.Logger, uc syncpkg.UseCase, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		syncOnce(ctx, l, uc)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func syncOnce(ctx context.Context, l log.Logger, uc syncpkg.UseCase) {
	ctx = log.WithTraceID(ctx, uuid.NewString())
	out, err := uc.Sync(ctx)
	if err != nil {
		l.Errorf(ctx, "Sync failed: %v", err)
		return
	}
	l.Infof(ctx, "Synced %d/%d projects to %s in %s", out.Kept, out.Fetched, out.Path, out.Duration)
}
