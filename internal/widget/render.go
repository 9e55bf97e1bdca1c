package widget

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"city-weather/internal/types"
	"city-weather/internal/weather"
)

const unknownSearchText = "unknown"

// Renderer fetches weather for a selected city and writes it to the output
type Renderer struct {
	output  Output
	weather weather.Service
	logger  *slog.Logger
}

func NewRenderer(output Output, weatherService weather.Service, logger *slog.Logger) *Renderer {
	return &Renderer{
		output:  output,
		weather: weatherService,
		logger:  logger.With("component", "weather-renderer"),
	}
}

// SelectCity renders current conditions for candidate, or a failure message.
// It does nothing when there is no output surface.
func (r *Renderer) SelectCity(ctx context.Context, candidate types.CityCandidate) {
	if r.output == nil {
		r.logger.Debug("no output surface, skipping render", "city", candidate.Name)
		return
	}

	switch o := r.weather.FetchWeather(ctx, candidate.Latitude, candidate.Longitude).(type) {
	case weather.Ok:
		r.output.SetContent(FormatWeather(candidate.Name, o.Snapshot))
	case weather.Failed:
		r.output.SetContent(FormatFailure(o.Err))
	}
}

// FormatWeather renders the fixed weather block. Units are always °C, %, and mm;
// the snapshot's CurrentUnits are not consulted.
func FormatWeather(name string, snapshot types.WeatherSnapshot) string {
	c := snapshot.Current
	return fmt.Sprintf("%s\nTemperature: %s°C\nFeels like: %s°C\nHumidity: %s%%\nPrecipitation: %smm",
		name,
		formatNumber(c.Temperature2m),
		formatNumber(c.ApparentTemperature),
		formatNumber(c.RelativeHumidity2m),
		formatNumber(c.Precipitation),
	)
}

func FormatFailure(err error) string {
	return fmt.Sprintf("Failed to load weather data: %v", err)
}

func FormatNotFound(searchText string) string {
	if searchText == "" {
		searchText = unknownSearchText
	}
	return fmt.Sprintf("city %s not found", searchText)
}

// formatNumber uses the shortest representation that round-trips, so 20.0 is "20"
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
