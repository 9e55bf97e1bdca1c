package main

import (
	"log/slog"
	"net/http"
	"time"

	"city-weather/internal/config"
	"city-weather/internal/geocoding"
	"city-weather/internal/weather"
	"city-weather/internal/widget"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	serverReadTimeout  = 10 * time.Second
	serverWriteTimeout = 30 * time.Second
	serverIdleTimeout  = 60 * time.Second
)

// App encapsulates application dependencies
type App struct {
	router           *gin.Engine
	logger           *slog.Logger
	geocodingService geocoding.Service
	weatherService   weather.Service
	registry         *widget.Registry
	cfg              *config.Config
}

// NewApp creates a new application backed by the Open-Meteo services
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	return newAppWithServices(
		cfg,
		logger,
		geocoding.NewGeocodingService(cfg, logger),
		weather.NewWeatherService(cfg, logger),
	)
}

func newAppWithServices(cfg *config.Config, logger *slog.Logger, geocodingSvc geocoding.Service, weatherSvc weather.Service) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())

	app := &App{
		router:           router,
		logger:           logger,
		geocodingService: geocodingSvc,
		weatherService:   weatherSvc,
		registry:         widget.NewRegistry(geocodingSvc, weatherSvc, cfg.QuietPeriod(), logger),
		cfg:              cfg,
	}

	app.registerRoutes()

	logger.Info("application initialized", "quiet_period", cfg.QuietPeriod())

	return app
}

// Server returns an HTTP server for the app with inbound tracing
func (app *App) Server(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      otelhttp.NewHandler(app.router, "city-weather"),
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}
}

// Close shuts down all widget sessions
func (app *App) Close() {
	app.registry.Close()
}
