package schema

import "city-weather/internal/types"

const ShapeGeocoding = "geocoding"

// geocodingEnvelope is the wire shape of a geocoding search response.
// Open-Meteo omits "results" when nothing matches.
type geocodingEnvelope struct {
	Results []geocodingResult `json:"results" validate:"dive"`
}

type geocodingResult struct {
	Name        *string  `json:"name" validate:"required"`
	CountryCode *string  `json:"country_code" validate:"required"`
	Latitude    *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// ValidateGeocoding checks a decoded geocoding response and extracts its candidates.
// Any malformed entry fails the whole envelope; candidates are never partially trusted.
func ValidateGeocoding(raw any) ([]types.CityCandidate, error) {
	env, err := decode[geocodingEnvelope](ShapeGeocoding, raw)
	if err != nil {
		return nil, err
	}

	candidates := make([]types.CityCandidate, 0, len(env.Results))
	for _, r := range env.Results {
		candidates = append(candidates, types.CityCandidate{
			Name:        *r.Name,
			CountryCode: *r.CountryCode,
			Latitude:    *r.Latitude,
			Longitude:   *r.Longitude,
		})
	}

	return candidates, nil
}
