//go:build integration

package weather

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"trip-agent/internal/config"
	"trip-agent/internal/types"
)

func TestWeatherService_Fetch_Integration(t *testing.T) {
	cfg := &config.Config{
		Weather: config.WeatherConfig{Timeout: 10 * time.Second},
		Retry:   config.RetryConfig{Backoff: 500 * time.Millisecond},
	}
	svc, err := NewWeatherService(cfg, slog.Default())
	if err != nil {
		t.Fatalf("NewWeatherService() error = %v", err)
	}

	loc, _ := types.NewLocation("Tokyo", 35.6762, 139.6503)
	report, err := svc.Fetch(context.Background(), loc)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	rawJSON, _ := json.MarshalIndent(report, "", "  ")
	t.Logf("Report:\n%s", string(rawJSON))

	if len(report.Forecast) != ForecastDays {
		t.Errorf("forecast length = %d, want %d", len(report.Forecast), ForecastDays)
	}
	if report.Timezone != "Asia/Tokyo" {
		t.Errorf("timezone = %s, want Asia/Tokyo", report.Timezone)
	}
}
