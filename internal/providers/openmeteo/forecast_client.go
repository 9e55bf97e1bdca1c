package openmeteo

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=52.52&longitude=13.41&current=temperature_2m,relative_humidity_2m,apparent_temperature,precipitation&timezone=auto&forecast_days=1
const (
	BaseForecastURL = "https://api.open-meteo.com/v1/forecast"
)

// CurrentVars are the current-condition fields requested from the forecast API
var CurrentVars = []string{
	"temperature_2m",
	"relative_humidity_2m",
	"apparent_temperature",
	"precipitation",
}

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewForecastClient(baseURL string, logger *slog.Logger) *ForecastClient {
	if baseURL == "" {
		baseURL = BaseForecastURL
	}
	return &ForecastClient{
		httpClient: newHTTPClient(),
		baseURL:    baseURL,
		logger:     logger.With("component", "openmeteo-forecast-client"),
	}
}

// GetCurrent fetches current conditions for the given latitude and longitude.
// The timezone is resolved by the API from the coordinates.
func (c *ForecastClient) GetCurrent(ctx context.Context, latitude, longitude float64) (any, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("current", strings.Join(CurrentVars, ","))
	q.Set("timezone", "auto")
	q.Set("forecast_days", "1")

	return getJSON(ctx, c.httpClient, c.logger, c.baseURL, q)
}
