package openstreetmap

import (
	"context"
	"net/http"

	"sunwatch/internal/providers/fetch"
)

// API Docs: https://geocode.maps.co/docs/endpoints/
// Sample request: https://geocode.maps.co/search?q=Paris&api_key=...
// The host speaks the Nominatim /search dialect.
const (
	baseURL = "https://geocode.maps.co"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a forward geocoding client. Empty baseURL selects the
// public host; empty apiKey omits the api_key parameter.
func NewClient(base, apiKey string) *Client {
	if base == "" {
		base = baseURL
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    base,
		apiKey:     apiKey,
	}
}

// Search returns every candidate the upstream matched for query, best first.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	u, err := fetch.ParseBase(c.baseURL, "search")
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("q", query)
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}
	u.RawQuery = q.Encode()

	var results []SearchResult
	if err := fetch.JSON(ctx, c.httpClient, u, &results); err != nil {
		return nil, err
	}

	return results, nil
}
