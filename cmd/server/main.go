// Package main is the entrypoint for the greeting server.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/greeter/greeter/internal/config"
	"github.com/greeter/greeter/internal/handler"
	"github.com/greeter/greeter/internal/metrics"
	"github.com/greeter/greeter/internal/router"
	"github.com/greeter/greeter/internal/server"
)

func main() {
	ctx := context.Background()

	// Load .env before reading config; never fatal.
	dotEnvPath := config.DotEnvPath()
	loaded, err := config.LoadDotEnv(dotEnvPath)
	if err != nil {
		slog.Warn("ignoring dotenv file", "path", dotEnvPath, "error", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)
	if loaded {
		logger.Debug("loaded dotenv file", "path", dotEnvPath)
	}

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Environment)
	logger.Info("MY_SECRET loaded")

	// Initialize handlers
	recorder := metrics.NewInMemory()
	h := handler.New(cfg.Settings())

	// Setup router
	r := router.New(h, router.Options{
		Logger:       logger,
		Recorder:     recorder,
		IsProduction: cfg.IsProduction(),
		PrintPanics:  cfg.IsDevelopment(),
	})

	srv := server.New(r, cfg.Addr(), server.Options{
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.ShutdownTimeout,
	}, logger)

	srv.OnShutdown("metrics", logTotals(logger, recorder))

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// logTotals returns a shutdown hook that logs the request counters.
func logTotals(logger *slog.Logger, snapshotter metrics.Snapshotter) server.ShutdownFunc {
	return func(ctx context.Context) error {
		snap := snapshotter.Snapshot()
		logger.Info("request totals",
			"requests", snap.Requests,
			"not_found", snap.RequestsNotFound,
			"server_errors", snap.RequestsServerError,
			"duration_total", time.Duration(snap.RequestDurationTotalNs),
		)
		return nil
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
