package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/standings-service/internal/config"
	"github.com/preston-bernstein/standings-service/internal/logging"
	"github.com/preston-bernstein/standings-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, stop)
	stop()
	os.Exit(code)
}

// run serves until ctx is done. It returns 1 when the data cannot be loaded.
func run(ctx context.Context, stop context.CancelFunc) int {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "standings-service",
		Version: appVersion,
	})
	for _, warning := range cfg.Warnings {
		logging.Warn(logger, warning)
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		logging.Error(logger, "failed to start", err)
		return 1
	}

	srv.Run(ctx, stop)
	return 0
}
