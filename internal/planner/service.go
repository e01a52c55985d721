package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"trip-agent/internal/attractions"
	"trip-agent/internal/config"
	"trip-agent/internal/intent"
	"trip-agent/internal/location"
	"trip-agent/internal/weather"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "trip-agent/planner"

// Classifier decides which data a query asks for
type Classifier interface {
	Classify(query string) intent.Intent
}

// Service answers travel queries
type Service interface {
	// Handle never fails; problems are reported in Response.Warnings or Response.FatalError
	Handle(ctx context.Context, query string) Response
}

// Option customises a plannerService
type Option func(*plannerService)

// WithTracerProvider makes the planner record spans on tp instead of the
// global provider
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *plannerService) {
		if tp != nil {
			s.tracer = tp.Tracer(tracerName)
		}
	}
}

type plannerService struct {
	classifier  Classifier
	locations   location.Service
	weather     weather.Service
	attractions attractions.Service
	tracer      trace.Tracer
	logger      *slog.Logger
}

// NewPlannerService wires the real location, weather and attractions services
func NewPlannerService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	locSvc, err := location.NewLocationService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create location service: %w", err)
	}
	weatherSvc, err := weather.NewWeatherService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather service: %w", err)
	}
	attractionsSvc := attractions.NewAttractionsService(cfg, logger)

	return NewPlannerServiceWithServices(intent.NewClassifier(), locSvc, weatherSvc, attractionsSvc, logger), nil
}

// NewPlannerServiceWithServices creates a planner from explicit collaborators
// This is useful for testing with mock services
func NewPlannerServiceWithServices(
	classifier Classifier,
	locations location.Service,
	weatherSvc weather.Service,
	attractionsSvc attractions.Service,
	logger *slog.Logger,
	opts ...Option,
) Service {
	s := &plannerService{
		classifier:  classifier,
		locations:   locations,
		weather:     weatherSvc,
		attractions: attractionsSvc,
		tracer:      otel.Tracer(tracerName),
		logger:      logger.With("component", "planner-service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *plannerService) Handle(ctx context.Context, query string) Response {
	start := time.Now()
	requestID := uuid.NewString()
	logger := s.logger.With("request_id", requestID)

	ctx, span := s.tracer.Start(ctx, "planner.Handle", trace.WithAttributes(attribute.String("request_id", requestID)))
	defer span.End()

	resp := Response{
		RequestID: requestID,
		Query:     query,
		Warnings:  []string{},
	}

	resp.Intent = s.classifier.Classify(query)
	span.SetAttributes(attribute.String("intent", string(resp.Intent)))
	logger.Debug("classified query", "intent", resp.Intent)

	loc, err := s.locations.Resolve(ctx, query)
	if err != nil {
		msg := fatalMessage(err)
		resp.FatalError = &msg
		span.RecordError(err)
		span.SetStatus(codes.Error, "location not resolved")
		logger.Info("query failed", "intent", resp.Intent, "error", err, "duration", time.Since(start))
		return resp
	}
	resp.Location = loc
	span.SetAttributes(attribute.String("location", loc.DisplayName))

	var (
		wg         conc.WaitGroup
		report     *weather.Report
		weatherErr error
		places     []attractions.Attraction
		placesErr  error
	)
	if resp.Intent.NeedsWeather() {
		wg.Go(func() {
			report, weatherErr = guard(ctx, s.tracer, "planner.fetchWeather", func(ctx context.Context) (*weather.Report, error) {
				return s.weather.Fetch(ctx, *loc)
			})
			if weatherErr == nil && report == nil {
				weatherErr = fmt.Errorf("%w: empty report", weather.ErrWeatherUnavailable)
			}
		})
	}
	if resp.Intent.NeedsPlaces() {
		wg.Go(func() {
			places, placesErr = guard(ctx, s.tracer, "planner.fetchAttractions", func(ctx context.Context) ([]attractions.Attraction, error) {
				return s.attractions.Fetch(ctx, *loc)
			})
		})
	}
	wg.Wait()

	if resp.Intent.NeedsWeather() {
		if weatherErr != nil {
			logger.Warn("weather degraded", "error", weatherErr)
			resp.Warnings = append(resp.Warnings, WarnWeatherUnavailable)
		} else {
			resp.Weather = report
		}
	}
	if resp.Intent.NeedsPlaces() {
		if placesErr != nil {
			logger.Warn("attractions degraded", "error", placesErr)
			resp.Warnings = append(resp.Warnings, WarnPlacesUnavailable)
		} else {
			if places == nil {
				places = []attractions.Attraction{}
			}
			resp.Attractions = places
		}
	}

	logger.Info("query handled",
		"intent", resp.Intent,
		"location", loc.DisplayName,
		"attractions", len(resp.Attractions),
		"warnings", len(resp.Warnings),
		"duration", time.Since(start),
	)
	return resp
}

// guard runs one fetch in its own span and turns a panic into an error, so a
// failing fetcher can only ever degrade the response
func guard[T any](ctx context.Context, tracer trace.Tracer, name string, fetch func(context.Context) (T, error)) (T, error) {
	ctx, span := tracer.Start(ctx, name)
	defer span.End()

	var (
		result T
		err    error
		pc     panics.Catcher
	)
	pc.Try(func() { result, err = fetch(ctx) })
	if r := pc.Recovered(); r != nil {
		var zero T
		result, err = zero, fmt.Errorf("fetcher panicked: %w", r.AsError())
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return result, err
}

func fatalMessage(err error) string {
	switch {
	case errors.Is(err, location.ErrLocationNotFound):
		return MsgLocationNotFound
	case errors.Is(err, location.ErrEmptyQuery):
		return MsgEmptyQuery
	default:
		return MsgGeocodingFailed
	}
}
