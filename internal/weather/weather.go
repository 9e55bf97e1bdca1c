package weather

import (
	"context"
	"fmt"
	"log/slog"

	"city-weather/internal/config"
	"city-weather/internal/providers/openmeteo"
	"city-weather/internal/schema"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "city-weather/weather"

type CurrentProvider interface {
	// GetCurrent fetches current conditions for the given latitude and longitude
	GetCurrent(ctx context.Context, latitude, longitude float64) (any, error)
}

type Service interface {
	// FetchWeather never returns an error directly; failures come back as Failed
	FetchWeather(ctx context.Context, latitude, longitude float64) Outcome
}

type weatherService struct {
	provider CurrentProvider
	logger   *slog.Logger
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) Service {
	return NewWeatherServiceWithProvider(openmeteo.NewForecastClient(cfg.Providers.ForecastURL, logger), logger)
}

func NewWeatherServiceWithProvider(provider CurrentProvider, logger *slog.Logger) Service {
	return &weatherService{
		provider: provider,
		logger:   logger.With("component", "weather-service"),
	}
}

func (s *weatherService) FetchWeather(ctx context.Context, latitude, longitude float64) Outcome {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "weather.fetch", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(
		attribute.Float64("weather.latitude", latitude),
		attribute.Float64("weather.longitude", longitude),
	)

	raw, err := s.provider.GetCurrent(ctx, latitude, longitude)
	if err != nil {
		s.logger.Error("failed to get current weather from provider",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return Failed{Err: fmt.Errorf("failed to get current weather: %w", err)}
	}

	snapshot, err := schema.ValidateWeather(raw)
	if err != nil {
		s.logger.Warn("forecast response failed validation",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid response")
		return Failed{Err: err}
	}

	span.SetStatus(codes.Ok, "")
	return Ok{Snapshot: snapshot}
}
