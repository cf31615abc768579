package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spounge-ai/handicap/internal/app/grpc"
	app_errors "github.com/spounge-ai/handicap/internal/errors"
	infra_config "github.com/spounge-ai/handicap/internal/infra/config"
	"github.com/spounge-ai/handicap/internal/provider"
	"github.com/spounge-ai/handicap/internal/service"
	"github.com/spounge-ai/handicap/internal/wiring"
	"github.com/spounge-ai/handicap/pkg/patterns/lifecycle"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bootLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := infra_config.Load(os.Getenv("HANDICAP_CONFIG_PATH"))
	if err != nil {
		bootLogger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Server.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("version", cfg.ServiceVersion, "commit", cfg.BuildCommit)

	tlsConfig, err := wiring.ConfigureTLS(cfg.Server.TLS)
	if err != nil {
		logger.Error("failed to configure TLS", "error", err)
		os.Exit(1)
	}

	registry, err := provider.FromConfig(cfg, logger)
	if err != nil {
		logger.Error("failed to build providers", "error", err)
		os.Exit(1)
	}
	logger.Info("handicap sources configured", "sources", registry.Sources())

	errorClassifier := app_errors.NewErrorClassifier(logger)
	handicapService := service.NewHandicapService(registry, logger)

	var serverOpts []grpc.Option
	if tlsConfig != nil {
		serverOpts = append(serverOpts, grpc.WithTLSConfig(tlsConfig))
	}
	srv, err := grpc.New(cfg, handicapService, logger, errorClassifier, serverOpts...)
	if err != nil {
		logger.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	resources := lifecycle.NewGroup(srv)

	logger.Info("starting application resources")
	if err := resources.Start(ctx); err != nil {
		logger.Error("error starting resources", "error", err)
		os.Exit(1)
	}
	logger.Info("application started successfully", "address", srv.Addr().String())

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-signalChan:
		logger.Info("received shutdown signal", "signal", s.String())
	case err := <-srv.Err():
		if err != nil {
			logger.Error("gRPC server failed", "error", err)
		}
	case <-ctx.Done():
		logger.Info("context cancelled, initiating shutdown")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	logger.Info("shutting down application resources")
	if err := resources.Stop(shutdownCtx); err != nil {
		logger.Error("error stopping resources", "error", err)
	}
	logger.Info("shutdown complete")
}
