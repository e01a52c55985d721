package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"trip-agent/internal/config"
	"trip-agent/internal/providers/openmeteo"
	"trip-agent/internal/providers/upstream"
	"trip-agent/internal/retry"
	"trip-agent/internal/timezone"
	"trip-agent/internal/types"
)

// ForecastDays is the length of every forecast in a Report
const ForecastDays = 3

// requestedDays leaves one spare day for when upstream's first day is
// already yesterday at the location
const requestedDays = ForecastDays + 1

// ErrWeatherUnavailable is returned when no usable forecast could be obtained
var ErrWeatherUnavailable = errors.New("weather unavailable")

type ForecastProvider interface {
	// GetForecast fetches current conditions and a daily forecast for the given coordinates and timezone
	GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int, timezone string) (*openmeteo.ForecastAPIResponse, error)
}

type Service interface {
	Fetch(ctx context.Context, location types.Location) (*Report, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	timezoneService  timezone.Service
	policy           retry.Policy
	timeout          time.Duration
	now              func() time.Time
	logger           *slog.Logger
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	return NewWeatherServiceWithProvider(openmeteo.NewForecastClient(cfg.Weather.BaseURL, logger), tzSvc, cfg, logger), nil
}

func NewWeatherServiceWithProvider(
	forecastProvider ForecastProvider,
	timezoneService timezone.Service,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	s := &weatherService{
		forecastProvider: forecastProvider,
		timezoneService:  timezoneService,
		timeout:          cfg.Weather.Timeout,
		now:              time.Now,
		logger:           logger.With("component", "weather-service"),
	}
	s.policy = retry.Policy{
		MaxRetries:  retry.DefaultMaxRetries,
		Backoff:     cfg.Retry.Backoff,
		IsTransient: upstream.IsTransient,
		OnRetry: func(attempt int, err error) {
			s.logger.Warn("forecast attempt failed, retrying", "attempt", attempt, "error", err)
		},
	}
	return s
}

// Fetch returns current conditions and a forecast of exactly ForecastDays
// days starting with the location's local today. Transient upstream failures
// are retried; every failure is reported as ErrWeatherUnavailable.
func (s *weatherService) Fetch(ctx context.Context, location types.Location) (*Report, error) {
	tz, today := s.localDay(location)

	apiResponse, err := retry.Do(ctx, s.policy, func(ctx context.Context) (*openmeteo.ForecastAPIResponse, error) {
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}
		return s.forecastProvider.GetForecast(ctx, location.Latitude, location.Longitude, requestedDays, tz)
	})
	if err != nil {
		s.logger.Error("failed to get forecast from provider",
			"latitude", location.Latitude,
			"longitude", location.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", ErrWeatherUnavailable, err)
	}

	report, err := mapForecastAPIResponseToReport(apiResponse, ForecastDays, today)
	if err != nil {
		s.logger.Error("failed to map forecast", "error", err)
		if errors.Is(err, ErrInsufficientData) {
			return nil, fmt.Errorf("%w: %w", ErrWeatherUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %w: %w", ErrWeatherUnavailable, upstream.ErrMalformedResponse, err)
	}

	return report, nil
}

// localDay looks up the IANA timezone for the location and today's date
// there. When the lookup fails the upstream picks the timezone itself.
func (s *weatherService) localDay(location types.Location) (string, string) {
	loc, err := s.timezoneService.GetLocation(location.Latitude, location.Longitude)
	if err != nil {
		s.logger.Warn("failed to determine timezone, letting upstream decide",
			"latitude", location.Latitude,
			"longitude", location.Longitude,
			"error", err,
		)
		return "", ""
	}

	s.logger.Debug("determined timezone for location", "timezone", loc.String())
	return loc.String(), s.now().In(loc).Format(dateLayout)
}
