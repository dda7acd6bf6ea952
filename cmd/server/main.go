// Package main is the entry point for the flyGPT date search service.
//
//	@title						flyGPT Date Search API
//	@version					1.0.0
//	@description				Searches one route across many travel dates in parallel and returns the best flights of the window.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/KananVyas/flyGPT/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/KananVyas/flyGPT/docs"

	// Application layers
	flighthttp "github.com/KananVyas/flyGPT/internal/adapter/http"
	"github.com/KananVyas/flyGPT/internal/adapter/http/middleware"
	"github.com/KananVyas/flyGPT/internal/adapter/http/response"
	"github.com/KananVyas/flyGPT/internal/app"
	"github.com/KananVyas/flyGPT/internal/config"
	"github.com/KananVyas/flyGPT/internal/infrastructure/logger"
	"github.com/KananVyas/flyGPT/internal/infrastructure/metrics"
	"github.com/KananVyas/flyGPT/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	startupTimeout  = 15 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("lookup", cfg.Lookup.Mode).
		Str("storage", cfg.Storage.Driver).
		Msg("Configuration loaded")

	m := metrics.New()

	lookup, err := app.NewLookup(cfg.Lookup, log, m)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create flight lookup")
	}
	search, pool := app.NewSearch(cfg, lookup, log, m)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	store, err := app.NewStore(ctx, cfg.Storage)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open snapshot store")
	}

	handler := flighthttp.NewFlightHandler(search, usecase.NewPriceSelector(cfg.Lookup.Currency), store,
		flighthttp.WithSelectionLimit(cfg.Search.SelectionLimit),
		flighthttp.WithLogger(log),
		flighthttp.WithHealth(func() response.HealthResponse {
			return response.HealthResponse{
				Status:   "ok",
				Lookup:   lookup.Name(),
				Breaker:  lookup.State(),
				InFlight: pool.InFlight(),
			}
		}),
	)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger, m)
	flighthttp.RegisterRoutes(e, handler, m.Handler())

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, pool, store, log)
}

// setupLogger builds the service logger and installs it globally.
func setupLogger(cfg *config.Config) *logger.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	log := app.NewLogger(cfg)
	logger.SetGlobal(log)
	return log
}

// gracefulShutdown stops the server on SIGINT or SIGTERM, then drains the
// worker pool and closes the store.
func gracefulShutdown(e *echo.Echo, pool *usecase.WorkerPool, store app.Store, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}
	if err := pool.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Worker pool did not drain")
	}
	if err := store.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing snapshot store")
	}

	log.Info().Msg("Server stopped")
}
