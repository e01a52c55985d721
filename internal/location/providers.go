package location

import (
	"context"

	"trip-agent/internal/providers/googlemaps"
	"trip-agent/internal/providers/openstreetmap"
)

// nominatimProvider adapts the Nominatim client to GeocodingProvider
type nominatimProvider struct {
	client *openstreetmap.Client
}

func NewNominatimProvider(client *openstreetmap.Client) GeocodingProvider {
	return &nominatimProvider{client: client}
}

func (p *nominatimProvider) Search(ctx context.Context, text string) ([]Candidate, error) {
	results, err := p.client.Search(ctx, text)
	if err != nil {
		return nil, err
	}
	candidates := make([]Candidate, 0, len(results))
	for _, r := range results {
		candidates = append(candidates, Candidate{
			DisplayName: r.DisplayName,
			Latitude:    r.Latitude(),
			Longitude:   r.Longitude(),
		})
	}
	return candidates, nil
}

// googleProvider adapts the Google Maps geocoder to GeocodingProvider
type googleProvider struct {
	client *googlemaps.Client
}

func NewGoogleProvider(client *googlemaps.Client) GeocodingProvider {
	return &googleProvider{client: client}
}

func (p *googleProvider) Search(ctx context.Context, text string) ([]Candidate, error) {
	results, err := p.client.Search(ctx, text)
	if err != nil {
		return nil, err
	}
	candidates := make([]Candidate, 0, len(results))
	for _, r := range results {
		candidates = append(candidates, Candidate{
			DisplayName: r.FormattedAddress,
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
		})
	}
	return candidates, nil
}
