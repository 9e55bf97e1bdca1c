package widget

import (
	"context"
	"errors"
	"strings"
	"testing"

	"city-weather/internal/weather"
)

func TestRenderer_SelectCity_Ok(t *testing.T) {
	panel := NewPanel()
	weatherSvc := &fakeWeather{outcome: okOutcome()}
	renderer := NewRenderer(panel, weatherSvc, testLogger())

	renderer.SelectCity(context.Background(), berlin)

	content := panel.Snapshot().Content
	for _, want := range []string{"Berlin", "21.5°C", "20°C", "60%", "0mm"} {
		if !strings.Contains(content, want) {
			t.Errorf("content %q does not contain %q", content, want)
		}
	}

	// Units are fixed, not taken from the snapshot
	if strings.Contains(content, "°F") || strings.Contains(content, "inch") {
		t.Errorf("content %q uses snapshot units", content)
	}

	calls := weatherSvc.Calls()
	if len(calls) != 1 || calls[0].Latitude != berlin.Latitude || calls[0].Longitude != berlin.Longitude {
		t.Errorf("weather calls = %v, want one call for Berlin's coordinates", calls)
	}
}

func TestRenderer_SelectCity_Failed(t *testing.T) {
	panel := NewPanel()
	weatherSvc := &fakeWeather{outcome: weather.Failed{Err: errors.New("invalid weather payload: current.precipitation: is required")}}
	renderer := NewRenderer(panel, weatherSvc, testLogger())

	renderer.SelectCity(context.Background(), berlin)

	want := "Failed to load weather data: invalid weather payload: current.precipitation: is required"
	if got := panel.Snapshot().Content; got != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func TestRenderer_SelectCity_ReplacesContent(t *testing.T) {
	panel := NewPanel()
	panel.SetContent("city Atlantis not found")
	renderer := NewRenderer(panel, &fakeWeather{outcome: okOutcome()}, testLogger())

	renderer.SelectCity(context.Background(), berlin)
	first := panel.Snapshot().Content

	renderer.SelectCity(context.Background(), berlin)
	second := panel.Snapshot().Content

	if first != second {
		t.Errorf("second render = %q, want %q", second, first)
	}
	if strings.Contains(second, "Atlantis") {
		t.Errorf("content %q kept earlier output", second)
	}
	if strings.Count(second, "Temperature:") != 1 {
		t.Errorf("content %q accumulated renders", second)
	}
}

func TestRenderer_SelectCity_NoOutput(t *testing.T) {
	weatherSvc := &fakeWeather{outcome: okOutcome()}
	renderer := NewRenderer(nil, weatherSvc, testLogger())

	renderer.SelectCity(context.Background(), berlin)

	if calls := weatherSvc.Calls(); len(calls) != 0 {
		t.Errorf("weather fetched %d times without an output surface", len(calls))
	}
}

func TestFormatWeather(t *testing.T) {
	outcome := okOutcome().(weather.Ok)

	got := FormatWeather("Berlin", outcome.Snapshot)

	want := "Berlin\nTemperature: 21.5°C\nFeels like: 20°C\nHumidity: 60%\nPrecipitation: 0mm"
	if got != want {
		t.Errorf("FormatWeather() = %q, want %q", got, want)
	}
}

func TestFormatNotFound(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Atlantis", "city Atlantis not found"},
		{"", "city unknown not found"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatNotFound(tt.input); got != tt.want {
				t.Errorf("FormatNotFound(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{21.5, "21.5"},
		{20.0, "20"},
		{60, "60"},
		{0, "0"},
		{-3.25, "-3.25"},
		{0.1, "0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatNumber(tt.input); got != tt.want {
				t.Errorf("formatNumber(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
