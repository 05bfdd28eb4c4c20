package main

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"sunwatch/internal/geocode"
	"sunwatch/internal/pipeline"
	"sunwatch/internal/present"
	"sunwatch/internal/sundata"
	"sunwatch/internal/types"
)

// SunSearchInput defines the query parameters for the search endpoint
type SunSearchInput struct {
	Location string `query:"location" example:"Paris" doc:"Free-text location to geocode"`
}

// SunPositionInput defines the query parameters for the position endpoint
type SunPositionInput struct {
	Latitude  float64 `query:"latitude" required:"true" minimum:"-90" maximum:"90" example:"48.85" doc:"Latitude in decimal degrees"`
	Longitude float64 `query:"longitude" required:"true" minimum:"-180" maximum:"180" example:"2.35" doc:"Longitude in decimal degrees"`
}

// SunReport is the two-day payload
type SunReport struct {
	Today    types.DayRecord `json:"today" doc:"Sun data for the current local date"`
	Tomorrow types.DayRecord `json:"tomorrow" doc:"Sun data for the following date"`
	Timezone string          `json:"timezone" example:"Europe/Paris" doc:"Timezone the times are expressed in"`
}

// SunOutput represents the response for the sun endpoints
type SunOutput struct {
	Body SunReport
}

// handleSunSearch runs the text search entry point
func (app *App) handleSunSearch(ctx context.Context, input *SunSearchInput) (*SunOutput, error) {
	rec := present.NewRecorder()
	res := app.newPipeline(rec).Search(ctx, input.Location)
	return app.toOutput(res, rec)
}

// handleSunPosition runs the geolocation entry point with client coordinates
func (app *App) handleSunPosition(ctx context.Context, input *SunPositionInput) (*SunOutput, error) {
	rec := present.NewRecorder()
	source := pipeline.StaticLocation(types.NewCoords(input.Latitude, input.Longitude))
	res := app.newPipeline(rec).Locate(ctx, source)
	return app.toOutput(res, rec)
}

func (app *App) toOutput(res pipeline.Result, rec *present.Recorder) (*SunOutput, error) {
	if !res.OK() {
		return nil, statusError(res)
	}

	outcome := rec.Outcome()
	resp := &SunOutput{}
	resp.Body = SunReport{
		Today:    outcome.Today,
		Tomorrow: outcome.Tomorrow,
		Timezone: outcome.Timezone,
	}
	return resp, nil
}

// statusError maps a failed result to an HTTP error carrying its message
func statusError(res pipeline.Result) error {
	var notFound *geocode.NotFoundError
	var geocodeTransport *geocode.TransportError
	var unavailable *sundata.DataUnavailableError
	var sunTransport *sundata.TransportError

	switch {
	case res.Err == nil:
		return huma.Error400BadRequest(res.Message)
	case errors.As(res.Err, &notFound):
		return huma.Error404NotFound(res.Message)
	case errors.As(res.Err, &geocodeTransport),
		errors.As(res.Err, &unavailable),
		errors.As(res.Err, &sunTransport):
		return huma.Error502BadGateway(res.Message)
	default:
		return huma.Error500InternalServerError(res.Message)
	}
}
