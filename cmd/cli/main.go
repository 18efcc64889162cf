package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"executive-assistant/config"
	"executive-assistant/internal/app"
	"executive-assistant/pkg/log"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "assistant",
		Short:         "Executive assistant command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		listenCmd(),
		chatCmd(),
		projectsCmd(),
		notesCmd(),
		toolsCmd(),
		syncCmd(),
		reportCmd(),
	)
	return root
}

// withApp loads config, builds the application and closes it after fn.
func withApp(ctx context.Context, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}
