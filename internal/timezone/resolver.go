// Package timezone resolves the IANA zone of a coordinate pair. Resolution
// never fails: any upstream problem yields the configured fallback zone.
package timezone

import (
	"context"
	"log/slog"
	"strings"

	"sunwatch/internal/config"
	"sunwatch/internal/providers/timezonedb"
	"sunwatch/internal/types"
)

// LookupProvider defines the interface for online timezone providers
type LookupProvider interface {
	GetTimeZone(ctx context.Context, coords types.Coords) (*timezonedb.GetTimeZoneAPIResponse, error)
}

// Service resolves coordinates to a zone name that is never empty
type Service interface {
	Resolve(ctx context.Context, coords types.Coords) string
}

type resolver struct {
	provider LookupProvider
	offline  Finder // nil unless offline lookup is enabled
	fallback string
	logger   *slog.Logger
}

// NewResolver creates a resolver backed by TimezoneDB using cfg's endpoint,
// credential and fallback.
func NewResolver(cfg config.TimezoneConfig, logger *slog.Logger) (Service, error) {
	var offline Finder
	if cfg.OfflineLookup {
		f, err := NewOfflineFinder()
		if err != nil {
			return nil, err
		}
		offline = f
	}
	return NewResolverWithProviders(timezonedb.NewClient(cfg.BaseURL, cfg.APIKey), offline, cfg.Fallback, logger), nil
}

// NewResolverWithProviders creates a resolver with custom providers.
// offline may be nil.
func NewResolverWithProviders(provider LookupProvider, offline Finder, fallback string, logger *slog.Logger) Service {
	if strings.TrimSpace(fallback) == "" {
		fallback = "UTC"
	}
	return &resolver{
		provider: provider,
		offline:  offline,
		fallback: fallback,
		logger:   logger.With("component", "timezone-resolver"),
	}
}

func (r *resolver) Resolve(ctx context.Context, coords types.Coords) string {
	name, err := r.lookup(ctx, coords)
	if err == nil {
		r.logger.Debug("resolved timezone", "coords", coords.String(), "timezone", name)
		return name
	}

	r.logger.Warn("error fetching timezone",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"error", err,
	)

	if r.offline != nil {
		name, offErr := r.offline.Find(coords)
		if offErr == nil {
			r.logger.Info("resolved timezone offline", "coords", coords.String(), "timezone", name)
			return name
		}
		r.logger.Warn("offline timezone lookup failed", "coords", coords.String(), "error", offErr)
	}

	return r.fallback
}

func (r *resolver) lookup(ctx context.Context, coords types.Coords) (string, error) {
	resp, err := r.provider.GetTimeZone(ctx, coords)
	if err != nil {
		return "", &LookupError{Err: err}
	}
	if resp == nil {
		return "", &LookupError{Message: "empty response"}
	}
	if resp.Status != timezonedb.StatusOK || resp.ZoneName == "" {
		return "", &LookupError{Status: resp.Status, Message: resp.Message}
	}
	return resp.ZoneName, nil
}
