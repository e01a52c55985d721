package location

import (
	"context"

	"trip-agent/internal/types"
)

// Service resolves the place a query talks about
type Service interface {
	// Resolve geocodes the query and returns the top-ranked match
	Resolve(ctx context.Context, query string) (*types.Location, error)
}

// Candidate is one geocoding match in provider rank order
type Candidate struct {
	DisplayName string
	Latitude    float64
	Longitude   float64
}

// GeocodingProvider turns free text into ranked candidates. An empty result
// with a nil error means the place is unknown.
type GeocodingProvider interface {
	Search(ctx context.Context, text string) ([]Candidate, error)
}
