package openstreetmap

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SearchResult is one candidate from the Nominatim /search endpoint
type SearchResult struct {
	PlaceId     int        `json:"place_id"`
	Licence     string     `json:"licence"`
	OsmType     string     `json:"osm_type"`
	OsmId       int64      `json:"osm_id"`
	Lat         coordinate `json:"lat" validate:"gte=-90,lte=90"`
	Lon         coordinate `json:"lon" validate:"gte=-180,lte=180"`
	Class       string     `json:"class"`
	Type        string     `json:"type"`
	PlaceRank   int        `json:"place_rank"`
	Importance  float64    `json:"importance"`
	Addresstype string     `json:"addresstype"`
	Name        string     `json:"name"`
	DisplayName string     `json:"display_name" validate:"required"`
	Boundingbox []string   `json:"boundingbox"`
}

// Latitude returns the parsed latitude
func (r SearchResult) Latitude() float64 { return float64(r.Lat) }

// Longitude returns the parsed longitude
func (r SearchResult) Longitude() float64 { return float64(r.Lon) }

// coordinate accepts Nominatim's string-encoded numbers as well as plain JSON numbers
type coordinate float64

func (c *coordinate) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return fmt.Errorf("coordinate is empty")
	}

	if strings.HasPrefix(raw, "\"") {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("parse coordinate %q: %w", raw, err)
	}
	*c = coordinate(v)
	return nil
}
