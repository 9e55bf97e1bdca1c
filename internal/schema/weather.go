package schema

import "city-weather/internal/types"

const ShapeWeather = "weather"

type weatherPayload struct {
	CurrentUnits *weatherUnits   `json:"current_units" validate:"required"`
	Current      *weatherCurrent `json:"current" validate:"required"`
}

type weatherUnits struct {
	Temperature2m       *string `json:"temperature_2m" validate:"required"`
	RelativeHumidity2m  *string `json:"relative_humidity_2m" validate:"required"`
	ApparentTemperature *string `json:"apparent_temperature" validate:"required"`
	Precipitation       *string `json:"precipitation" validate:"required"`
}

type weatherCurrent struct {
	Temperature2m       *float64 `json:"temperature_2m" validate:"required"`
	RelativeHumidity2m  *float64 `json:"relative_humidity_2m" validate:"required,gte=0,lte=100"`
	ApparentTemperature *float64 `json:"apparent_temperature" validate:"required"`
	Precipitation       *float64 `json:"precipitation" validate:"required"`
}

// ValidateWeather checks a decoded forecast response against the current-conditions shape
func ValidateWeather(raw any) (types.WeatherSnapshot, error) {
	p, err := decode[weatherPayload](ShapeWeather, raw)
	if err != nil {
		return types.WeatherSnapshot{}, err
	}

	return types.WeatherSnapshot{
		CurrentUnits: types.CurrentUnits{
			Temperature2m:       *p.CurrentUnits.Temperature2m,
			RelativeHumidity2m:  *p.CurrentUnits.RelativeHumidity2m,
			ApparentTemperature: *p.CurrentUnits.ApparentTemperature,
			Precipitation:       *p.CurrentUnits.Precipitation,
		},
		Current: types.CurrentConditions{
			Temperature2m:       *p.Current.Temperature2m,
			RelativeHumidity2m:  *p.Current.RelativeHumidity2m,
			ApparentTemperature: *p.Current.ApparentTemperature,
			Precipitation:       *p.Current.Precipitation,
		},
	}, nil
}
