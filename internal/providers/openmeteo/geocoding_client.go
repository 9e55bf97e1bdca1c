package openmeteo

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=Berlin&count=10&language=en&format=json
const (
	BaseGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
)

type GeocodingClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewGeocodingClient(baseURL string, logger *slog.Logger) *GeocodingClient {
	if baseURL == "" {
		baseURL = BaseGeocodingURL
	}
	return &GeocodingClient{
		httpClient: newHTTPClient(),
		baseURL:    baseURL,
		logger:     logger.With("component", "openmeteo-geocoding-client"),
	}
}

// Search looks up cities matching name and returns the decoded, unvalidated response body
func (c *GeocodingClient) Search(ctx context.Context, name string, count int, language string) (any, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("count", strconv.Itoa(count))
	q.Set("language", language)
	q.Set("format", "json")

	return getJSON(ctx, c.httpClient, c.logger, c.baseURL, q)
}
