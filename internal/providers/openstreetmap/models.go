package openstreetmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// SearchResult is one candidate of a Nominatim-style /search response.
type SearchResult struct {
	PlaceId     int      `json:"place_id"`
	Licence     string   `json:"licence"`
	OsmType     string   `json:"osm_type"`
	OsmId       int      `json:"osm_id"`
	Lat         *Degrees `json:"lat"` // nil when the field is absent
	Lon         *Degrees `json:"lon"`
	Class       string   `json:"class"`
	Type        string   `json:"type"`
	Importance  float64  `json:"importance"`
	DisplayName string   `json:"display_name"`
	Boundingbox []string `json:"boundingbox"`
}

// Degrees decodes a coordinate sent either as a JSON number or as a numeric
// string, which is what Nominatim-compatible hosts return.
type Degrees float64

func (d *Degrees) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return fmt.Errorf("coordinate is null")
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(s)
	}

	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("invalid coordinate %q: %w", string(b), err)
	}
	*d = Degrees(f)
	return nil
}
