package geocoding

import (
	"context"
	"log/slog"

	"city-weather/internal/config"
	"city-weather/internal/providers/openmeteo"
	"city-weather/internal/schema"
	"city-weather/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "city-weather/geocoding"

// SearchProvider issues a geocoding search and returns the decoded, unvalidated body
type SearchProvider interface {
	Search(ctx context.Context, name string, count int, language string) (any, error)
}

// Service resolves free-text city names into candidates
type Service interface {
	// SearchCities returns matching cities in the order the remote service
	// ranked them. Failures are logged and yield an empty slice, so callers
	// cannot tell "no matches" from "request failed".
	SearchCities(ctx context.Context, query string) []types.CityCandidate
}

type geocodingService struct {
	provider SearchProvider
	count    int
	language string
	logger   *slog.Logger
}

// NewGeocodingService creates a new geocoding service backed by the Open-Meteo API
func NewGeocodingService(cfg *config.Config, logger *slog.Logger) Service {
	return NewGeocodingServiceWithProvider(
		openmeteo.NewGeocodingClient(cfg.Providers.GeocodingURL, logger),
		cfg,
		logger,
	)
}

// NewGeocodingServiceWithProvider creates a new geocoding service with a custom provider.
// This is useful for testing with mock providers.
func NewGeocodingServiceWithProvider(provider SearchProvider, cfg *config.Config, logger *slog.Logger) Service {
	return &geocodingService{
		provider: provider,
		count:    cfg.App.SearchCount,
		language: cfg.App.Language,
		logger:   logger.With("component", "geocoding-service"),
	}
}

func (s *geocodingService) SearchCities(ctx context.Context, query string) []types.CityCandidate {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "geocoding.search", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(attribute.String("geocoding.query", query))

	raw, err := s.provider.Search(ctx, query, s.count, s.language)
	if err != nil {
		s.logger.Error("failed to search cities", "query", query, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		return []types.CityCandidate{}
	}

	candidates, err := schema.ValidateGeocoding(raw)
	if err != nil {
		s.logger.Error("geocoding response failed validation", "query", query, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid response")
		return []types.CityCandidate{}
	}

	s.logger.Debug("found cities", "query", query, "count", len(candidates))
	span.SetAttributes(attribute.Int("geocoding.results", len(candidates)))

	return candidates
}
