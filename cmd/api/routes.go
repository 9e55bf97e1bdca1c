package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Direct lookups
	app.router.GET("/cities", app.handleSearchCities)
	app.router.GET("/weather", app.handleGetWeather)

	// Widget sessions
	widgets := app.router.Group("/widgets")
	widgets.POST("", app.handleCreateWidget)
	widgets.GET("/:id", app.handleGetWidget)
	widgets.PUT("/:id/input", app.handleWidgetInput)
	widgets.POST("/:id/suggestions/:index/select", app.handleSelectSuggestion)
	widgets.DELETE("/:id", app.handleDeleteWidget)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
