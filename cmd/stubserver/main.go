package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/vats147/Inventory-mobile-app/internal/backend/demo"
	"github.com/vats147/Inventory-mobile-app/internal/config"
	"github.com/vats147/Inventory-mobile-app/internal/log"
	"github.com/vats147/Inventory-mobile-app/internal/stubserver"
	"github.com/vats147/Inventory-mobile-app/pkg/cmdutil"
	"github.com/vats147/Inventory-mobile-app/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running stub server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log  config.Log
		HTTP config.HTTP
		Demo config.Demo
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	v, err := validator.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("error creating validator: %w", err)
	}

	var opts []demo.Option
	if !cfg.Demo.SimulateLatency {
		opts = append(opts, demo.WithoutLatency())
	}
	demoSvc := demo.New(logger, opts...)

	svc := stubserver.New(cfg.HTTP, logger, demoSvc.Backend(), v)
	cleanup, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("error running stub server: %w", err)
	}
	logger.InfoContext(ctx, "stub server started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

	<-cmdutil.InterruptChan()

	logger.InfoContext(ctx, "stub server is shutting down")
	if err := cleanup(ctx); err != nil {
		logger.ErrorContext(ctx, "error shutting down stub server", slog.Any("error", err))
	}
	logger.InfoContext(ctx, "stub server is stopped")

	return nil
}
