package types

type Coords struct {
	Latitude  float64 `json:"latitude" example:"52.52437"`
	Longitude float64 `json:"longitude" example:"13.41053"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}
