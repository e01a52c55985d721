package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // forecast days are computed in the location's timezone

	"trip-agent/internal/config"
	"trip-agent/internal/telemetry"
)

// @title Trip Agent API
// @version 1.0
// @description Answers natural-language travel queries with weather and nearby attractions.
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	// Spans go to stderr so they stay apart from the log stream
	shutdownTracing, err := telemetry.Setup(cfg.Trace, serviceName, os.Stderr)
	if err != nil {
		logger.Error("failed to set up tracing", "error", err)
		log.Fatal(err)
	}

	// Create app
	app, err := NewApp(cfg, logger)
	if err != nil {
		logger.Error("failed to create app", "error", err)
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr(), "version", version, "tracing", cfg.Trace.Enabled)
	runErr := app.Run(ctx, cfg.GetServerAddr(), 30*time.Second)

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		logger.Warn("failed to flush spans", "error", err)
	}

	if runErr != nil {
		logger.Error("server failed", "error", runErr)
		log.Fatal(runErr)
	}
}
