package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"trip-agent/internal/config"
	"trip-agent/internal/planner"

	"github.com/gin-gonic/gin"

	_ "trip-agent/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	plannerService planner.Service
	requestTimeout time.Duration
	startedAt      time.Time
	cfg            *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	plannerSvc, err := planner.NewPlannerService(cfg, logger)
	if err != nil {
		return nil, err
	}
	return NewAppWithPlanner(cfg, plannerSvc, logger), nil
}

// NewAppWithPlanner creates an application around an existing planner
func NewAppWithPlanner(cfg *config.Config, plannerSvc planner.Service, logger *slog.Logger) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	app := &App{
		router:         router,
		logger:         logger,
		plannerService: plannerSvc,
		requestTimeout: cfg.Request.Timeout,
		startedAt:      time.Now(),
		cfg:            cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run serves HTTP on addr until ctx is done, then drains in-flight
// requests for up to shutdownTimeout
func (app *App) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverError := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case err := <-serverError:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		app.logger.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			_ = server.Close()
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		app.logger.Info("server stopped gracefully")
	}
	return nil
}
