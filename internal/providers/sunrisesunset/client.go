package sunrisesunset

import (
	"context"
	"net/http"
	"strconv"

	"sunwatch/internal/providers/fetch"
	"sunwatch/internal/types"
)

// API Docs: https://sunrisesunset.io/api/
// Sample request: https://api.sunrisesunset.io/json?lat=48.85&lng=2.35&timezone=Europe/Paris&date=2025-06-21
const (
	baseURL = "https://api.sunrisesunset.io"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(base string) *Client {
	if base == "" {
		base = baseURL
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    base,
	}
}

// GetDay fetches the solar events of date (YYYY-MM-DD) at coords, expressed
// in timezone. Callers must check Status.
func (c *Client) GetDay(ctx context.Context, coords types.Coords, timezone, date string) (*SunAPIResponse, error) {
	u, err := fetch.ParseBase(c.baseURL, "json")
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	q.Set("timezone", timezone)
	q.Set("date", date)
	u.RawQuery = q.Encode()

	var apiResp SunAPIResponse
	if err := fetch.JSON(ctx, c.httpClient, u, &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}
