package timezonedb

import (
	"context"
	"net/http"
	"strconv"

	"sunwatch/internal/providers/fetch"
	"sunwatch/internal/types"
)

// API Docs: https://timezonedb.com/references/get-time-zone
// Sample request: https://api.timezonedb.com/v2.1/get-time-zone?key=KEY&format=json&by=position&lat=48.85&lng=2.35
const (
	baseURL = "https://api.timezonedb.com/v2.1"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

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

// GetTimeZone looks up the zone containing coords. A decoded response is
// returned as is; callers must check Status.
func (c *Client) GetTimeZone(ctx context.Context, coords types.Coords) (*GetTimeZoneAPIResponse, error) {
	u, err := fetch.ParseBase(c.baseURL, "get-time-zone")
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("key", c.apiKey)
	q.Set("format", "json")
	q.Set("by", "position")
	q.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	u.RawQuery = q.Encode()

	var apiResp GetTimeZoneAPIResponse
	if err := fetch.JSON(ctx, c.httpClient, u, &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}
