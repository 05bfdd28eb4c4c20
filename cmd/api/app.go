package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"

	"sunwatch/internal/config"
	"sunwatch/internal/geocode"
	"sunwatch/internal/pipeline"
	"sunwatch/internal/sundata"
	"sunwatch/internal/timezone"
)

// App encapsulates application dependencies
type App struct {
	mux       *http.ServeMux
	api       huma.API
	logger    *slog.Logger
	geocoder  geocode.Service
	timezones timezone.Service
	sunData   sundata.Service
}

// NewApp creates a new application wired to the real upstream providers
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	timezones, err := timezone.NewResolver(cfg.Timezone, logger)
	if err != nil {
		return nil, err
	}

	return NewAppWithServices(
		logger,
		geocode.NewGeocodeService(cfg.Geocoder.BaseURL, cfg.Geocoder.APIKey, logger),
		timezones,
		sundata.NewSunDataService(cfg.SunData.BaseURL, logger),
	), nil
}

// NewAppWithServices creates an application with custom services.
// This is useful for testing with mock services
func NewAppWithServices(
	logger *slog.Logger,
	geocoder geocode.Service,
	timezones timezone.Service,
	sunData sundata.Service,
) *App {
	// Create standard library HTTP mux
	mux := http.NewServeMux()

	// Create Huma API with standard library adapter
	humaConfig := huma.DefaultConfig("Sunwatch API", "1.0.0")
	humaConfig.Info.Description = "Sunrise, sunset and twilight times for today and tomorrow at any location"
	humaConfig.Servers = []*huma.Server{
		{URL: "http://localhost:8080", Description: "Development server"},
	}

	api := humago.New(mux, humaConfig)

	app := &App{
		mux:       mux,
		api:       api,
		logger:    logger,
		geocoder:  geocoder,
		timezones: timezones,
		sunData:   sunData,
	}

	logger.Info("application initialized")

	// Register routes
	app.registerRoutes()

	return app
}

// newPipeline creates a pipeline for one request. Each request owns its
// presenter, so invocations from different clients never supersede each other.
func (app *App) newPipeline(presenter pipeline.Presenter) *pipeline.Pipeline {
	return pipeline.New(app.geocoder, app.timezones, app.sunData, presenter, app.logger)
}

// Run starts the HTTP server and shuts it down when ctx is done
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: app.mux,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
