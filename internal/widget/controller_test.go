package widget

import (
	"testing"
	"time"

	"city-weather/internal/types"
	"city-weather/internal/weather"

	"github.com/google/go-cmp/cmp"
)

const testQuietPeriod = 40 * time.Millisecond

type staticInput string

func (s staticInput) Value() string { return string(s) }

func newTestController(panel *Panel, geocoder *fakeGeocoder, weatherSvc *fakeWeather) *Controller {
	renderer := NewRenderer(panel, weatherSvc, testLogger())
	return NewController(panel, panel, panel, renderer, geocoder, testQuietPeriod, testLogger())
}

func TestController_DebouncesBurst(t *testing.T) {
	panel := NewPanel()
	geocoder := newFakeGeocoder(nil)
	controller := newTestController(panel, geocoder, &fakeWeather{outcome: okOutcome()})
	defer controller.Close()

	for _, value := range []string{"B", "Be", "Ber", "Berl", "Berli"} {
		panel.SetValue(value)
		controller.OnInput(value)
	}

	select {
	case q := <-geocoder.calls:
		if q != "Berli" {
			t.Errorf("searched %q, want last value %q", q, "Berli")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no search issued")
	}

	time.Sleep(4 * testQuietPeriod)

	if got := geocoder.Queries(); len(got) != 1 {
		t.Errorf("queries = %v, want exactly one", got)
	}
}

func TestController_SeparateQuietPeriods(t *testing.T) {
	panel := NewPanel()
	geocoder := newFakeGeocoder(nil)
	controller := newTestController(panel, geocoder, &fakeWeather{outcome: okOutcome()})
	defer controller.Close()

	controller.OnInput("Ber")
	<-geocoder.calls
	controller.OnInput("Berlin")
	<-geocoder.calls

	if diff := cmp.Diff([]string{"Ber", "Berlin"}, geocoder.Queries()); diff != "" {
		t.Errorf("queries mismatch (-want +got):\n%s", diff)
	}
}

func TestController_EmptyInput(t *testing.T) {
	panel := NewPanel()
	panel.AppendSuggestion("Berlin - DE", nil)
	geocoder := newFakeGeocoder(nil)
	controller := newTestController(panel, geocoder, &fakeWeather{outcome: okOutcome()})
	defer controller.Close()

	controller.OnInput("")

	waitFor(t, "suggestions to clear", func() bool {
		return len(panel.Snapshot().Suggestions) == 0
	})
	time.Sleep(2 * testQuietPeriod)

	if got := geocoder.Queries(); len(got) != 0 {
		t.Errorf("queries = %v, want none for empty input", got)
	}
}

func TestController_NoResults(t *testing.T) {
	tests := []struct {
		name       string
		inputValue string
		want       string
	}{
		{name: "names the raw input", inputValue: "Atlantis", want: "city Atlantis not found"},
		{name: "placeholder when input is empty", inputValue: "", want: "city unknown not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := NewPanel()
			geocoder := newFakeGeocoder(nil)
			weatherSvc := &fakeWeather{outcome: okOutcome()}
			renderer := NewRenderer(panel, weatherSvc, testLogger())
			controller := NewController(staticInput(tt.inputValue), panel, panel, renderer, geocoder, testQuietPeriod, testLogger())
			defer controller.Close()

			controller.OnInput("Atlantis")

			waitFor(t, "not found message", func() bool {
				return panel.Snapshot().Content != ""
			})

			if got := panel.Snapshot().Content; got != tt.want {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
			if len(weatherSvc.Calls()) != 0 {
				t.Error("weather fetched with no results")
			}
		})
	}
}

func TestController_SingleResultSelectsDirectly(t *testing.T) {
	panel := NewPanel()
	geocoder := newFakeGeocoder(map[string][]types.CityCandidate{"Berlin": {berlin}})
	weatherSvc := &fakeWeather{outcome: okOutcome()}
	controller := newTestController(panel, geocoder, weatherSvc)
	defer controller.Close()

	panel.SetValue("Berlin")
	controller.OnInput("Berlin")

	waitFor(t, "weather render", func() bool {
		return panel.Snapshot().Content != ""
	})

	state := panel.Snapshot()
	if len(state.Suggestions) != 0 {
		t.Errorf("suggestions = %v, want none for a single result", state.Suggestions)
	}
	if state.Content != FormatWeather("Berlin", okOutcome().(weather.Ok).Snapshot) {
		t.Errorf("content = %q", state.Content)
	}
}

func TestController_MultipleResultsListed(t *testing.T) {
	panel := NewPanel()
	geocoder := newFakeGeocoder(map[string][]types.CityCandidate{"Springfield": springfield})
	weatherSvc := &fakeWeather{outcome: okOutcome()}
	controller := newTestController(panel, geocoder, weatherSvc)
	defer controller.Close()

	panel.SetValue("Springfield")
	controller.OnInput("Springfield")

	waitFor(t, "suggestions", func() bool {
		return len(panel.Snapshot().Suggestions) == len(springfield)
	})

	want := []string{"Springfield - US", "Springfield - US", "Springfield - AU"}
	if diff := cmp.Diff(want, panel.Snapshot().Suggestions); diff != "" {
		t.Errorf("suggestions mismatch (-want +got):\n%s", diff)
	}
	if got := panel.Snapshot().Content; got != "" {
		t.Errorf("content = %q, want nothing rendered before a click", got)
	}
	if len(weatherSvc.Calls()) != 0 {
		t.Error("weather fetched before a suggestion was selected")
	}

	if err := panel.Select(2); err != nil {
		t.Fatalf("Select(2) unexpected error = %v", err)
	}

	calls := weatherSvc.Calls()
	if len(calls) != 1 || calls[0] != springfield[2].Coords() {
		t.Errorf("weather calls = %v, want %v", calls, springfield[2].Coords())
	}
	if got := panel.Snapshot().Content; got == "" {
		t.Error("content empty after selecting a suggestion")
	}
}

func TestController_ClearsPreviousSuggestions(t *testing.T) {
	panel := NewPanel()
	geocoder := newFakeGeocoder(map[string][]types.CityCandidate{"Springfield": springfield})
	controller := newTestController(panel, geocoder, &fakeWeather{outcome: okOutcome()})
	defer controller.Close()

	controller.OnInput("Springfield")
	waitFor(t, "suggestions", func() bool {
		return len(panel.Snapshot().Suggestions) == len(springfield)
	})

	controller.OnInput("Springfield")
	waitFor(t, "second search", func() bool {
		return len(geocoder.Queries()) == 2
	})
	waitFor(t, "suggestions", func() bool {
		return len(panel.Snapshot().Suggestions) == len(springfield)
	})

	// The list is rebuilt, not appended to
	if got := len(panel.Snapshot().Suggestions); got != len(springfield) {
		t.Errorf("suggestions = %d, want %d", got, len(springfield))
	}
}

func TestController_Close(t *testing.T) {
	panel := NewPanel()
	geocoder := newFakeGeocoder(nil)
	controller := newTestController(panel, geocoder, &fakeWeather{outcome: okOutcome()})

	controller.OnInput("Berlin")
	controller.Close()
	controller.OnInput("Paris")

	time.Sleep(4 * testQuietPeriod)

	if got := geocoder.Queries(); len(got) != 0 {
		t.Errorf("queries = %v, want none after Close", got)
	}
}
