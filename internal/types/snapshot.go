package types

// WeatherSnapshot is one point-in-time reading of current conditions
type WeatherSnapshot struct {
	CurrentUnits CurrentUnits      `json:"current_units"`
	Current      CurrentConditions `json:"current"`
}

// CurrentUnits holds the unit strings reported alongside each measurement
type CurrentUnits struct {
	Temperature2m       string `json:"temperature_2m" example:"°C"`
	RelativeHumidity2m  string `json:"relative_humidity_2m" example:"%"`
	ApparentTemperature string `json:"apparent_temperature" example:"°C"`
	Precipitation       string `json:"precipitation" example:"mm"`
}

type CurrentConditions struct {
	Temperature2m       float64 `json:"temperature_2m" example:"21.5"`
	RelativeHumidity2m  float64 `json:"relative_humidity_2m" example:"60"`
	ApparentTemperature float64 `json:"apparent_temperature" example:"20"`
	Precipitation       float64 `json:"precipitation" example:"0"`
}
