package openmeteo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"trip-agent/internal/providers/upstream"
)

const sampleForecast = `{
  "latitude": 35.7,
  "longitude": 139.75,
  "timezone": "Asia/Tokyo",
  "current": {"time": "2026-10-18T09:00", "temperature_2m": 18.4, "relative_humidity_2m": 62, "precipitation": 0.0, "weather_code": 2, "wind_speed_10m": 7.9, "wind_direction_10m": 40},
  "daily": {
    "time": ["2026-10-18", "2026-10-19", "2026-10-20"],
    "temperature_2m_max": [21.3, 22.0, 19.8],
    "temperature_2m_min": [14.1, 15.2, 13.0],
    "weather_code": [2, 61, 0],
    "precipitation_probability_max": [10, 80, null]
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *ForecastClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewForecastClient(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestForecastClient_GetForecast(t *testing.T) {
	var query map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{}
		for k := range r.URL.Query() {
			query[k] = r.URL.Query().Get(k)
		}
		_, _ = w.Write([]byte(sampleForecast))
	})

	resp, err := client.GetForecast(context.Background(), 35.6762, 139.6503, 3, "Asia/Tokyo")
	if err != nil {
		t.Fatalf("GetForecast() error = %v", err)
	}

	if query["forecast_days"] != "3" {
		t.Errorf("forecast_days = %q, want 3", query["forecast_days"])
	}
	if query["timezone"] != "Asia/Tokyo" {
		t.Errorf("timezone = %q, want Asia/Tokyo", query["timezone"])
	}
	if *resp.Current.Temperature2m != 18.4 {
		t.Errorf("current temperature = %v, want 18.4", *resp.Current.Temperature2m)
	}
	if len(resp.Daily.Time) != 3 {
		t.Errorf("daily entries = %d, want 3", len(resp.Daily.Time))
	}
	if resp.Daily.PrecipitationProbabilityMax[2] != nil {
		t.Errorf("null probability should decode as nil")
	}
}

func TestForecastClient_GetForecast_DefaultsTimezoneToAuto(t *testing.T) {
	var tz string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		tz = r.URL.Query().Get("timezone")
		_, _ = w.Write([]byte(sampleForecast))
	})

	if _, err := client.GetForecast(context.Background(), 1, 2, 3, ""); err != nil {
		t.Fatalf("GetForecast() error = %v", err)
	}
	if tz != "auto" {
		t.Errorf("timezone = %q, want auto", tz)
	}
}

func TestForecastClient_GetForecast_Errors(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantMalformed bool
		wantTransient bool
	}{
		{name: "server error", status: 500, body: `{"error":true}`, wantTransient: true},
		{name: "bad request", status: 400, body: `{"error":true,"reason":"Latitude must be in range"}`},
		{name: "truncated body", status: 200, body: `{"latitude": 1`, wantMalformed: true},
		{name: "missing current block", status: 200, body: `{"timezone":"GMT","daily":{"time":[],"temperature_2m_max":[],"temperature_2m_min":[],"weather_code":[]}}`, wantMalformed: true},
		{name: "missing current temperature", status: 200, body: `{"timezone":"GMT","current":{"weather_code":1},"daily":{"time":[],"temperature_2m_max":[],"temperature_2m_min":[],"weather_code":[]}}`, wantMalformed: true},
		{name: "null daily high", status: 200, body: `{"timezone":"GMT","current":{"temperature_2m":1,"weather_code":1},"daily":{"time":["2026-10-18"],"temperature_2m_max":[null],"temperature_2m_min":[1],"weather_code":[1]}}`, wantMalformed: true},
		{name: "bad date", status: 200, body: `{"timezone":"GMT","current":{"temperature_2m":1,"weather_code":1},"daily":{"time":["18/10/2026"],"temperature_2m_max":[2],"temperature_2m_min":[1],"weather_code":[1]}}`, wantMalformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetForecast(context.Background(), 1, 2, 3, "GMT")
			if err == nil {
				t.Fatal("GetForecast() expected error, got nil")
			}
			if got := errors.Is(err, upstream.ErrMalformedResponse); got != tt.wantMalformed {
				t.Errorf("malformed = %v, want %v (err = %v)", got, tt.wantMalformed, err)
			}
			if got := upstream.IsTransient(err); got != tt.wantTransient {
				t.Errorf("transient = %v, want %v (err = %v)", got, tt.wantTransient, err)
			}
		})
	}
}
