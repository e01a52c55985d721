package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // forecast days are computed in the location's timezone

	"trip-agent/internal/config"
	"trip-agent/internal/planner"
	"trip-agent/internal/telemetry"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the answer, so logs and spans go to stderr
	logger := cfg.NewStderrLogger()

	shutdownTracing, err := telemetry.Setup(cfg.Trace, "tripctl", os.Stderr)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to set up tracing: %v\n", err)
		os.Exit(1)
	}

	plannerSvc, err := planner.NewPlannerService(cfg, logger)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to create planner: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	deps := Dependencies{
		Planner: plannerSvc,
		Timeout: cfg.Request.Timeout,
		Version: version,
	}
	code := Execute(ctx, os.Args[1:], deps, os.Stdout, os.Stderr)
	stop()

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := shutdownTracing(flushCtx); err != nil {
		logger.Warn("failed to flush spans", "error", err)
	}
	cancel()
	os.Exit(code)
}
