package main

import (
	"net/http"

	"city-weather/internal/types"
	"city-weather/internal/weather"
	"city-weather/internal/widget"

	"github.com/gin-gonic/gin"
)

// SearchCitiesInput defines the query parameters for the city search endpoint
type SearchCitiesInput struct {
	Name string `form:"name" binding:"required"` // Free-text city name
}

// CitiesResponse lists geocoding matches in ranked order
type CitiesResponse struct {
	Query   string                `json:"query" example:"Berlin"`
	Results []types.CityCandidate `json:"results"`
}

// GetWeatherInput defines the query parameters for the weather endpoint.
// Pointers keep 0 a valid coordinate under the required rule.
type GetWeatherInput struct {
	Latitude  *float64 `form:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude *float64 `form:"longitude" binding:"required,gte=-180,lte=180"`
	Name      string   `form:"name"`
}

// WeatherResponse is a rendered weather block plus the raw snapshot
type WeatherResponse struct {
	Content  string                `json:"content" example:"Berlin\nTemperature: 21.5°C\nFeels like: 20°C\nHumidity: 60%\nPrecipitation: 0mm"`
	Snapshot types.WeatherSnapshot `json:"snapshot"`
}

// handleSearchCities godoc
// @Summary Search cities
// @Description Resolve a free-text city name into ranked candidates. Upstream failures yield an empty list.
// @Tags lookup
// @Produce json
// @Param name query string true "City name" example(Berlin)
// @Success 200 {object} CitiesResponse
// @Failure 400 {object} map[string]string
// @Router /cities [get]
func (app *App) handleSearchCities(c *gin.Context) {
	var input SearchCitiesInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, CitiesResponse{
		Query:   input.Name,
		Results: app.geocodingService.SearchCities(c.Request.Context(), input.Name),
	})
}

// handleGetWeather godoc
// @Summary Get current weather
// @Description Fetch and render current conditions for a coordinate pair
// @Tags lookup
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(52.52437)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(13.41053)
// @Param name query string false "City name shown in the rendered block" example(Berlin)
// @Success 200 {object} WeatherResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /weather [get]
func (app *App) handleGetWeather(c *gin.Context) {
	var input GetWeatherInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch o := app.weatherService.FetchWeather(c.Request.Context(), *input.Latitude, *input.Longitude).(type) {
	case weather.Ok:
		c.JSON(http.StatusOK, WeatherResponse{
			Content:  widget.FormatWeather(input.Name, o.Snapshot),
			Snapshot: o.Snapshot,
		})
	case weather.Failed:
		app.logger.Error("failed to fetch weather",
			"latitude", *input.Latitude,
			"longitude", *input.Longitude,
			"error", o.Err,
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": widget.FormatFailure(o.Err)})
	}
}
