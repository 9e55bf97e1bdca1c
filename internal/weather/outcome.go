package weather

import "city-weather/internal/types"

// Outcome is the result of a weather fetch: either Ok or Failed.
// Callers branch with a type switch; no other implementations exist.
type Outcome interface {
	isOutcome()
}

// Ok carries a validated snapshot
type Ok struct {
	Snapshot types.WeatherSnapshot
}

// Failed carries the diagnostic for a network or validation failure
type Failed struct {
	Err error
}

func (Ok) isOutcome()     {}
func (Failed) isOutcome() {}
