// Package geocode turns free-text location queries into coordinates.
package geocode

import (
	"context"
	"errors"
	"log/slog"

	"sunwatch/internal/providers/fetch"
	"sunwatch/internal/providers/openstreetmap"
	"sunwatch/internal/types"
)

// SearchProvider defines the interface for forward geocoding providers
type SearchProvider interface {
	Search(ctx context.Context, query string) ([]openstreetmap.SearchResult, error)
}

// Service resolves a query to the coordinates of its best match
type Service interface {
	Resolve(ctx context.Context, query string) (types.Coords, error)
}

type geocodeService struct {
	provider SearchProvider
	logger   *slog.Logger
}

// NewGeocodeService creates a geocoder backed by the geocode.maps.co client
func NewGeocodeService(baseURL, apiKey string, logger *slog.Logger) Service {
	return NewGeocodeServiceWithProvider(openstreetmap.NewClient(baseURL, apiKey), logger)
}

// NewGeocodeServiceWithProvider creates a geocoder with a custom provider.
// This is useful for testing with mock providers
func NewGeocodeServiceWithProvider(provider SearchProvider, logger *slog.Logger) Service {
	return &geocodeService{
		provider: provider,
		logger:   logger.With("component", "geocode-service"),
	}
}

// Resolve returns the coordinates of the first candidate. Every call hits
// the network.
func (s *geocodeService) Resolve(ctx context.Context, query string) (types.Coords, error) {
	results, err := s.provider.Search(ctx, query)
	if err != nil {
		// The upstream answered, just not with a usable result list
		var decodeErr *fetch.DecodeError
		var statusErr *fetch.StatusError
		if errors.As(err, &decodeErr) || errors.As(err, &statusErr) {
			s.logger.Warn("unusable geocode response", "query", query, "error", err)
			return types.Coords{}, &NotFoundError{Query: query, Err: err}
		}
		s.logger.Error("geocode request failed", "query", query, "error", err)
		return types.Coords{}, &TransportError{Query: query, Err: err}
	}

	if len(results) == 0 {
		s.logger.Debug("no geocode candidates", "query", query)
		return types.Coords{}, &NotFoundError{Query: query}
	}

	first := results[0]
	if first.Lat == nil || first.Lon == nil {
		err := errors.New("first candidate has no coordinates")
		s.logger.Warn("malformed geocode response", "query", query, "error", err)
		return types.Coords{}, &NotFoundError{Query: query, Err: err}
	}
	coords := types.NewCoords(float64(*first.Lat), float64(*first.Lon))

	s.logger.Debug("geocoded location",
		"query", query,
		"display_name", first.DisplayName,
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"candidates", len(results),
	)

	return coords, nil
}
