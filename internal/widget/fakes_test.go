package widget

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"city-weather/internal/types"
	"city-weather/internal/weather"
)

// Mock services for testing

type fakeGeocoder struct {
	mu      sync.Mutex
	results map[string][]types.CityCandidate
	queries []string
	calls   chan string
}

func newFakeGeocoder(results map[string][]types.CityCandidate) *fakeGeocoder {
	return &fakeGeocoder{results: results, calls: make(chan string, 32)}
}

func (f *fakeGeocoder) SearchCities(ctx context.Context, query string) []types.CityCandidate {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	res, ok := f.results[query]
	f.mu.Unlock()

	f.calls <- query
	if !ok {
		return []types.CityCandidate{}
	}
	return res
}

func (f *fakeGeocoder) Queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.queries))
	copy(out, f.queries)
	return out
}

type fakeWeather struct {
	mu      sync.Mutex
	outcome weather.Outcome
	calls   []types.Coords
}

func (f *fakeWeather) FetchWeather(ctx context.Context, latitude, longitude float64) weather.Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, types.NewCoords(latitude, longitude))
	return f.outcome
}

func (f *fakeWeather) Calls() []types.Coords {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]types.Coords, len(f.calls))
	copy(out, f.calls)
	return out
}

func okOutcome() weather.Outcome {
	return weather.Ok{Snapshot: types.WeatherSnapshot{
		CurrentUnits: types.CurrentUnits{
			Temperature2m:       "°F",
			RelativeHumidity2m:  "%",
			ApparentTemperature: "°F",
			Precipitation:       "inch",
		},
		Current: types.CurrentConditions{
			Temperature2m:       21.5,
			RelativeHumidity2m:  60,
			ApparentTemperature: 20,
			Precipitation:       0,
		},
	}}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// waitFor polls cond until it holds or two seconds pass
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

var (
	berlin      = types.CityCandidate{Name: "Berlin", CountryCode: "DE", Latitude: 52.52437, Longitude: 13.41053}
	springfield = []types.CityCandidate{
		{Name: "Springfield", CountryCode: "US", Latitude: 39.80172, Longitude: -89.64371},
		{Name: "Springfield", CountryCode: "US", Latitude: 37.21533, Longitude: -93.29824},
		{Name: "Springfield", CountryCode: "AU", Latitude: -33.0, Longitude: 151.0},
	}
)
