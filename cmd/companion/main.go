package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lucstrike/game-day-radar-seeker/internal/config"
	"github.com/lucstrike/game-day-radar-seeker/internal/logging"
	"github.com/lucstrike/game-day-radar-seeker/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg, cfgErr := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "game-day-companion",
		Version: appVersion,
	})
	if cfgErr != nil {
		logging.Warn(logger, "config load incomplete, using defaults where invalid", "error", cfgErr)
	}

	if err := run(cfg, logger); err != nil {
		logging.Error(logger, "startup failed", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	srv.Run(ctx, stop)
	return nil
}
