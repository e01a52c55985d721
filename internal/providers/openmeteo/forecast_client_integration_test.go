//go:build integration

package openmeteo

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestForecastClient_GetForecast_Integration(t *testing.T) {
	// Test coordinates: Tokyo
	lat := 35.6762
	lon := 139.6503

	client := NewForecastClient("", slog.Default())

	t.Logf("Making API call to OpenMeteo Forecast API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.GetForecast(context.Background(), lat, lon, 3, "Asia/Tokyo")
	if err != nil {
		t.Fatalf("Failed to get forecast: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp.Latitude < lat-1 || resp.Latitude > lat+1 {
		t.Errorf("Latitude mismatch: expected ~%f, got %f", lat, resp.Latitude)
	}
	if resp.Timezone != "Asia/Tokyo" {
		t.Errorf("Timezone = %s, want Asia/Tokyo", resp.Timezone)
	}
	if len(resp.Daily.Time) != 3 {
		t.Errorf("expected 3 daily entries, got %d", len(resp.Daily.Time))
	}
}
