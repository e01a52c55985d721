package googlemaps

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"trip-agent/internal/providers/upstream"

	"googlemaps.github.io/maps"
)

const serviceName = "google-geocoding"

// Result is a simplified geocoding candidate.
type Result struct {
	FormattedAddress string
	Latitude         float64
	Longitude        float64
	PlaceID          string
}

// Client geocodes free text with the Google Maps Geocoding API.
type Client struct {
	client *maps.Client
	logger *slog.Logger
}

// NewClient creates a Client with the given API key.
func NewClient(apiKey string, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	opts := []maps.ClientOption{maps.WithAPIKey(apiKey)}
	if httpClient != nil {
		opts = append(opts, maps.WithHTTPClient(httpClient))
	}
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Client{
		client: client,
		logger: logger.With("component", "google-geocoding-client"),
	}, nil
}

// Search returns the ranked candidates for text. ZERO_RESULTS yields an empty slice.
func (c *Client) Search(ctx context.Context, text string) ([]Result, error) {
	c.logger.Debug("geocoding request", "query", text)

	resp, err := c.client.Geocode(ctx, &maps.GeocodingRequest{Address: text})
	if err != nil {
		return nil, upstream.WrapTransport(serviceName, err)
	}

	results := make([]Result, 0, len(resp))
	for _, r := range resp {
		results = append(results, Result{
			FormattedAddress: r.FormattedAddress,
			Latitude:         r.Geometry.Location.Lat,
			Longitude:        r.Geometry.Location.Lng,
			PlaceID:          r.PlaceID,
		})
	}
	return results, nil
}
