package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	"sunwatch/internal/pipeline"
	"sunwatch/internal/present"
	"sunwatch/internal/types"
)

// reportedError is a LocationSource for a failure the browser already saw
type reportedError string

func (e reportedError) CurrentPosition(ctx context.Context) (types.Coords, error) {
	return types.Coords{}, errors.New(string(e))
}

// handlePage renders the widget. The page's own script turns the
// geolocation button into latitude/longitude or geoerror parameters.
func (app *App) handlePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := present.NewPage(app.logger)
	p := app.newPipeline(page)

	switch {
	case q.Get("geo") == "unsupported":
		p.Locate(r.Context(), nil)
	case q.Has("geoerror"):
		p.Locate(r.Context(), reportedError(q.Get("geoerror")))
	case q.Has("latitude") && q.Has("longitude"):
		coords, err := parseCoords(q.Get("latitude"), q.Get("longitude"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		p.Locate(r.Context(), pipeline.StaticLocation(coords))
	case q.Has("location"):
		p.Search(r.Context(), q.Get("location"))
	}

	var buf bytes.Buffer
	if err := page.Render(&buf, q.Get("location")); err != nil {
		app.logger.Error("failed to render page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func parseCoords(lat, lon string) (types.Coords, error) {
	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil || latitude < -90 || latitude > 90 {
		return types.Coords{}, errors.New("invalid latitude")
	}
	longitude, err := strconv.ParseFloat(lon, 64)
	if err != nil || longitude < -180 || longitude > 180 {
		return types.Coords{}, errors.New("invalid longitude")
	}
	return types.NewCoords(latitude, longitude), nil
}
