package main

import (
	"github.com/danielgtaylor/huma/v2"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	huma.Register(app.api, huma.Operation{
		OperationID: "ping",
		Method:      "GET",
		Path:        "/ping",
		Summary:     "Ping health check",
		Description: "Check if the API is running",
		Tags:        []string{"health"},
	}, app.handlePing)

	huma.Register(app.api, huma.Operation{
		OperationID: "sun-search",
		Method:      "GET",
		Path:        "/sun/search",
		Summary:     "Sun times for a named location",
		Description: "Geocode a free-text location, resolve its timezone and return sunrise/sunset data for today and tomorrow",
		Tags:        []string{"sun"},
	}, app.handleSunSearch)

	huma.Register(app.api, huma.Operation{
		OperationID: "sun-position",
		Method:      "GET",
		Path:        "/sun/position",
		Summary:     "Sun times for a device position",
		Description: "Resolve the timezone of the given coordinates and return sunrise/sunset data for today and tomorrow",
		Tags:        []string{"sun"},
	}, app.handleSunPosition)

	// Widget page, outside the OpenAPI surface
	app.mux.HandleFunc("GET /{$}", app.handlePage)
}
