package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/infura/internal/config"
	"github.com/gabapcia/infura/internal/handlers/cli"
	"github.com/gabapcia/infura/internal/infura"
	"github.com/gabapcia/infura/internal/pkg/logger"
	"github.com/gabapcia/infura/internal/pkg/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "infura:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, initErr := telemetry.Init(ctx, cfg.ServiceName)
		if initErr != nil {
			return fmt.Errorf("initializing telemetry: %w", initErr)
		}
		defer func() {
			err = errors.Join(err, shutdown(context.WithoutCancel(ctx)))
		}()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	client := infura.New(cfg.ClientOptions()...)
	logger.Debug(ctx, "infura client ready",
		"network", client.Network(),
		"base_url", cfg.BaseURL,
	)

	return cli.Run(ctx, client)
}
