package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g docs.go -o ../../docs --parseDependency

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"city-weather/internal/config"
	"city-weather/internal/telemetry"

	_ "city-weather/docs" // Import generated docs
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	shutdownTracing, err := telemetry.Setup(context.Background(), cfg.Tracing, logger)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}

	// Create app
	app := NewApp(cfg, logger)
	server := app.Server(cfg.GetServerAddr())

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.GetServerAddr())
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	case sig := <-shutdown:
		logger.Info("shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
			_ = server.Close()
		}
		app.Close()

		if err := shutdownTracing(ctx); err != nil {
			logger.Error("failed to flush traces", "error", err)
		}
		logger.Info("server stopped")
	}
}
