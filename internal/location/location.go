package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"trip-agent/internal/config"
	"trip-agent/internal/providers/googlemaps"
	"trip-agent/internal/providers/openstreetmap"
	"trip-agent/internal/types"
)

var (
	// ErrLocationNotFound is returned when geocoding yields no candidates
	ErrLocationNotFound = errors.New("location not found")
	// ErrEmptyQuery is returned for a blank query
	ErrEmptyQuery = errors.New("query is empty")
	// ErrGeocodingFailed wraps transport and decoding failures from the provider
	ErrGeocodingFailed = errors.New("geocoding failed")
)

const defaultTimeout = 10 * time.Second

// locationService implements the Service interface
type locationService struct {
	provider     GeocodingProvider
	extractPlace bool
	timeout      time.Duration
	logger       *slog.Logger
}

// Option customises a locationService
type Option func(*locationService)

// WithPlaceExtraction makes the resolver geocode the extracted place name
// instead of the whole query when extraction is unambiguous
func WithPlaceExtraction(enabled bool) Option {
	return func(s *locationService) { s.extractPlace = enabled }
}

// WithTimeout bounds each geocoding request
func WithTimeout(d time.Duration) Option {
	return func(s *locationService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewLocationService creates a location service backed by the configured geocoder
func NewLocationService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	httpClient := &http.Client{Timeout: cfg.Geocoding.Timeout}

	var provider GeocodingProvider
	switch strings.ToLower(cfg.Geocoding.Provider) {
	case "google":
		client, err := googlemaps.NewClient(cfg.Google.APIKey, httpClient, logger)
		if err != nil {
			return nil, err
		}
		provider = NewGoogleProvider(client)
	default:
		provider = NewNominatimProvider(openstreetmap.NewClient(logger,
			openstreetmap.WithBaseURL(cfg.Geocoding.BaseURL),
			openstreetmap.WithUserAgent(cfg.Geocoding.UserAgent),
			openstreetmap.WithRateLimit(cfg.Geocoding.RateLimit),
			openstreetmap.WithHTTPClient(httpClient),
		))
	}

	return NewLocationServiceWithProvider(provider, logger,
		WithPlaceExtraction(cfg.Geocoding.ExtractPlace),
		WithTimeout(cfg.Geocoding.Timeout),
	), nil
}

// NewLocationServiceWithProvider creates a new location service with a custom provider
// This is useful for testing with mock providers
func NewLocationServiceWithProvider(provider GeocodingProvider, logger *slog.Logger, opts ...Option) Service {
	s := &locationService{
		provider: provider,
		timeout:  defaultTimeout,
		logger:   logger.With("component", "location-service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve sends a single geocoding request and builds a Location from the
// first candidate. Candidates are never combined.
func (s *locationService) Resolve(ctx context.Context, query string) (*types.Location, error) {
	text := s.searchText(query)
	if text == "" {
		return nil, ErrEmptyQuery
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	candidates, err := s.provider.Search(ctx, text)
	if err != nil {
		s.logger.Error("geocoding request failed", "search_text", text, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrGeocodingFailed, err)
	}
	if len(candidates) == 0 {
		s.logger.Info("no geocoding match", "search_text", text)
		return nil, fmt.Errorf("%w: %q", ErrLocationNotFound, text)
	}

	top := candidates[0]
	loc, err := types.NewLocation(top.DisplayName, top.Latitude, top.Longitude)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid candidate: %w", ErrGeocodingFailed, err)
	}

	s.logger.Debug("resolved location",
		"search_text", text,
		"display_name", loc.DisplayName,
		"latitude", loc.Latitude,
		"longitude", loc.Longitude,
	)
	return &loc, nil
}

// searchText picks what is sent to the geocoder: the whole trimmed query,
// or the extracted place name when extraction is enabled and unambiguous
func (s *locationService) searchText(query string) string {
	query = strings.TrimSpace(query)
	if query == "" || !s.extractPlace {
		return query
	}
	if name := ExtractPlaceName(query); name != "" {
		return name
	}
	return query
}
