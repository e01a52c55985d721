package attractions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"trip-agent/internal/config"
	"trip-agent/internal/providers/overpass"
	"trip-agent/internal/providers/upstream"
	"trip-agent/internal/retry"
	"trip-agent/internal/types"
)

const (
	// RadiusMeters is the search radius around the location
	RadiusMeters = 5000
	// MaxResults caps the number of attractions returned
	MaxResults = 5
)

// ErrPlacesUnavailable is returned when attractions could not be fetched
var ErrPlacesUnavailable = errors.New("places unavailable")

// AttractionsProvider queries points of interest around a coordinate
type AttractionsProvider interface {
	Query(ctx context.Context, latitude, longitude float64, radiusMeters int, filters []overpass.TagFilter) (*overpass.InterpreterResponse, error)
}

type Service interface {
	// Fetch returns up to MaxResults attractions sorted by distance. An empty
	// slice is a valid result.
	Fetch(ctx context.Context, location types.Location) ([]Attraction, error)
}

type attractionsService struct {
	provider AttractionsProvider
	policy   retry.Policy
	timeout  time.Duration
	logger   *slog.Logger
}

func NewAttractionsService(cfg *config.Config, logger *slog.Logger) Service {
	client := overpass.NewClient(cfg.Attractions.BaseURL, cfg.Geocoding.UserAgent, cfg.Attractions.MaxSizeBytes, logger)
	return NewAttractionsServiceWithProvider(client, cfg, logger)
}

func NewAttractionsServiceWithProvider(provider AttractionsProvider, cfg *config.Config, logger *slog.Logger) Service {
	s := &attractionsService{
		provider: provider,
		timeout:  cfg.Attractions.Timeout,
		logger:   logger.With("component", "attractions-service"),
	}
	s.policy = retry.Policy{
		MaxRetries:  retry.DefaultMaxRetries,
		Backoff:     cfg.Retry.Backoff,
		IsTransient: upstream.IsTransient,
		OnRetry: func(attempt int, err error) {
			s.logger.Warn("attractions attempt failed, retrying", "attempt", attempt, "error", err)
		},
	}
	return s
}

func (s *attractionsService) Fetch(ctx context.Context, location types.Location) ([]Attraction, error) {
	resp, err := retry.Do(ctx, s.policy, func(ctx context.Context) (*overpass.InterpreterResponse, error) {
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}
		return s.provider.Query(ctx, location.Latitude, location.Longitude, RadiusMeters, Categories)
	})
	if err != nil {
		s.logger.Error("failed to get attractions from provider",
			"latitude", location.Latitude,
			"longitude", location.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", ErrPlacesUnavailable, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: %w: empty response", ErrPlacesUnavailable, upstream.ErrMalformedResponse)
	}

	candidates := translateElements(resp.Elements, location.Coords)
	result := rank(candidates, MaxResults)

	s.logger.Debug("attractions ranked",
		"upstream_elements", len(resp.Elements),
		"candidates", len(candidates),
		"returned", len(result),
	)
	return result, nil
}
