package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"trip-agent/internal/config"
	"trip-agent/internal/intent"
	"trip-agent/internal/planner"
)

type mockPlanner struct {
	queries  []string
	deadline bool
}

func (m *mockPlanner) Handle(ctx context.Context, query string) planner.Response {
	m.queries = append(m.queries, query)
	_, m.deadline = ctx.Deadline()
	return planner.Response{
		RequestID: "req-1",
		Query:     query,
		Intent:    intent.Weather,
		Warnings:  []string{},
	}
}

func newTestApp(p planner.Service) *App {
	cfg := &config.Config{
		Server:  config.ServerConfig{GinMode: "test"},
		Request: config.RequestConfig{Timeout: 5 * time.Second},
	}
	return NewAppWithPlanner(cfg, p, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandlePostTripQuery(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantQuery  string
	}{
		{name: "valid", body: `{"query":"What's the weather in Tokyo?"}`, wantStatus: http.StatusOK, wantQuery: "What's the weather in Tokyo?"},
		{name: "missing query", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "not json", body: `query=Tokyo`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &mockPlanner{}
			app := newTestApp(p)

			req := httptest.NewRequest(http.MethodPost, "/trip/query", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			app.router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				if len(p.queries) != 0 {
					t.Error("planner should not be called for invalid input")
				}
				return
			}

			var resp planner.Response
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON response: %v", err)
			}
			if resp.Query != tt.wantQuery || resp.Intent != intent.Weather {
				t.Errorf("response = %+v", resp)
			}
			if !p.deadline {
				t.Error("planner context should carry the request timeout")
			}
		})
	}
}

func TestHandleGetTripQuery(t *testing.T) {
	p := &mockPlanner{}
	app := newTestApp(p)

	req := httptest.NewRequest(http.MethodGet, "/trip/query?q="+url.QueryEscape("places to visit in Rome"), nil)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(p.queries) != 1 || p.queries[0] != "places to visit in Rome" {
		t.Errorf("planner queries = %v", p.queries)
	}

	// JSON nulls for absent sections
	var raw map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"weather", "attractions", "fatal_error", "location"} {
		if v, ok := raw[key]; !ok || v != nil {
			t.Errorf("%s = %v, want null", key, v)
		}
	}
}

func TestHandlePing(t *testing.T) {
	app := newTestApp(&mockPlanner{})

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp PingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("ping response is not JSON: %v\n%s", err, w.Body.String())
	}
	if resp.Message != "pong" || resp.Service != "trip-agent" || resp.Version != version {
		t.Errorf("ping response = %+v", resp)
	}
	if _, err := time.ParseDuration(resp.Uptime); err != nil {
		t.Errorf("uptime %q is not a duration: %v", resp.Uptime, err)
	}
}
