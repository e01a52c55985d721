package location

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"trip-agent/internal/types"
)

// Mock provider for testing

type mockGeocodingProvider struct {
	response []Candidate
	err      error
	calls    []string
}

func (m *mockGeocodingProvider) Search(ctx context.Context, text string) ([]Candidate, error) {
	m.calls = append(m.calls, text)
	return m.response, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocationService_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		extract     bool
		response    []Candidate
		providerErr error
		wantErr     error
		errContains string
		wantSearch  string
		validate    func(*testing.T, *types.Location)
	}{
		{
			name:  "full query is sent and first candidate wins",
			query: "What's the weather in Tokyo?",
			response: []Candidate{
				{DisplayName: "東京都, 日本", Latitude: 35.6768601, Longitude: 139.7638947},
				{DisplayName: "Tokyo, Ohio", Latitude: 39.1, Longitude: -84.5},
			},
			wantSearch: "What's the weather in Tokyo?",
			validate: func(t *testing.T, loc *types.Location) {
				if loc.DisplayName != "東京都, 日本" {
					t.Errorf("DisplayName = %q, want first candidate", loc.DisplayName)
				}
				if loc.Latitude != 35.6768601 || loc.Longitude != 139.7638947 {
					t.Errorf("coords = (%v, %v)", loc.Latitude, loc.Longitude)
				}
			},
		},
		{
			name:       "extraction sends the place name",
			query:      "I'm visiting New York, what is the temperature there?",
			extract:    true,
			response:   []Candidate{{DisplayName: "New York, United States", Latitude: 40.7127, Longitude: -74.006}},
			wantSearch: "New York",
		},
		{
			name:       "ambiguous extraction falls back to the full query",
			query:      "Paris or London for a weekend",
			extract:    true,
			response:   []Candidate{{DisplayName: "Paris", Latitude: 48.85, Longitude: 2.35}},
			wantSearch: "Paris or London for a weekend",
		},
		{
			name:       "query is trimmed",
			query:      "  Lisbon  ",
			response:   []Candidate{{DisplayName: "Lisboa", Latitude: 38.72, Longitude: -9.14}},
			wantSearch: "Lisbon",
		},
		{
			name:       "no candidates",
			query:      "Take me to Zzqxaborp123",
			response:   []Candidate{},
			wantErr:    ErrLocationNotFound,
			wantSearch: "Take me to Zzqxaborp123",
		},
		{
			name:    "blank query",
			query:   "   ",
			wantErr: ErrEmptyQuery,
		},
		{
			name:        "provider error",
			query:       "Berlin",
			providerErr: errors.New("connection reset"),
			wantErr:     ErrGeocodingFailed,
			errContains: "connection reset",
			wantSearch:  "Berlin",
		},
		{
			name:        "candidate out of range",
			query:       "Broken",
			response:    []Candidate{{DisplayName: "Broken", Latitude: 123, Longitude: 0}},
			wantErr:     ErrGeocodingFailed,
			errContains: "latitude",
			wantSearch:  "Broken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockGeocodingProvider{response: tt.response, err: tt.providerErr}
			svc := NewLocationServiceWithProvider(provider, testLogger(), WithPlaceExtraction(tt.extract))

			loc, err := svc.Resolve(context.Background(), tt.query)

			if tt.wantSearch == "" {
				if len(provider.calls) != 0 {
					t.Errorf("provider called %d times, want 0", len(provider.calls))
				}
			} else {
				if len(provider.calls) != 1 {
					t.Fatalf("provider called %d times, want exactly 1", len(provider.calls))
				}
				if provider.calls[0] != tt.wantSearch {
					t.Errorf("search text = %q, want %q", provider.calls[0], tt.wantSearch)
				}
			}

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err, tt.errContains)
				}
				if loc != nil {
					t.Errorf("Resolve() location = %+v, want nil on error", loc)
				}
				return
			}

			if err != nil {
				t.Fatalf("Resolve() unexpected error = %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, loc)
			}
		})
	}
}
