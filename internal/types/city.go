package types

// CityCandidate is a single city match returned by a geocoding lookup.
type CityCandidate struct {
	Name        string  `json:"name" example:"Berlin"`
	CountryCode string  `json:"country_code" example:"DE"`
	Latitude    float64 `json:"latitude" example:"52.52437"`
	Longitude   float64 `json:"longitude" example:"13.41053"`
}

// Label returns the text shown for the candidate in a suggestion list
func (c CityCandidate) Label() string {
	return c.Name + " - " + c.CountryCode
}

func (c CityCandidate) Coords() Coords {
	return NewCoords(c.Latitude, c.Longitude)
}
