package main

// @title City Weather API
// @version 1.0
// @description City search with debounced autocomplete and current weather from Open-Meteo.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /
