package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	App       AppConfig
	Providers ProvidersConfig
	Tracing   TracingConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds widget behaviour settings
type AppConfig struct {
	QuietPeriodMs int    // Debounce delay before a search is issued
	SearchCount   int    // Maximum geocoding results requested
	Language      string // Geocoding result language
}

// ProvidersConfig holds the remote API base URLs
type ProvidersConfig struct {
	GeocodingURL string
	ForecastURL  string
}

// TracingConfig holds OpenTelemetry exporter settings
type TracingConfig struct {
	Enabled     bool
	Endpoint    string // OTLP gRPC collector host:port
	ServiceName string
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.city-weather")

	setDefaults(v)

	// Read from environment variables, e.g. CITY_WEATHER_APP_QUIETPERIODMS
	v.SetEnvPrefix("CITY_WEATHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginMode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("app.quietPeriodMs", 500)
	v.SetDefault("app.searchCount", 10)
	v.SetDefault("app.language", "en")
	v.SetDefault("providers.geocodingURL", "https://geocoding-api.open-meteo.com/v1/search")
	v.SetDefault("providers.forecastURL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "localhost:4317")
	v.SetDefault("tracing.serviceName", "city-weather")
}

func (c *Config) validate() error {
	if c.App.QuietPeriodMs < 0 {
		return fmt.Errorf("app.quietPeriodMs must not be negative, got %d", c.App.QuietPeriodMs)
	}
	if c.App.SearchCount < 1 {
		return fmt.Errorf("app.searchCount must be at least 1, got %d", c.App.SearchCount)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// QuietPeriod returns the debounce delay as a duration
func (c *Config) QuietPeriod() time.Duration {
	return time.Duration(c.App.QuietPeriodMs) * time.Millisecond
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	return c.newLogger(os.Stdout)
}

func (c *Config) newLogger(w io.Writer) *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
