//go:build integration

package overpass

import (
	"context"
	"log/slog"
	"testing"
)

func TestClient_Query_Integration(t *testing.T) {
	// Test coordinates: central Paris
	lat := 48.8566
	lon := 2.3522

	client := NewClient("", "", 0, slog.Default())

	t.Logf("Making API call to Overpass API...")

	resp, err := client.Query(context.Background(), lat, lon, 5000, []TagFilter{
		{Key: "tourism", Values: []string{"museum", "attraction"}},
	})
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}

	if len(resp.Elements) == 0 {
		t.Fatal("expected museums around central Paris")
	}
	for _, e := range resp.Elements[:min(5, len(resp.Elements))] {
		lat, lon, _ := e.Coordinates()
		t.Logf("  %s %d %q (%f, %f)", e.Type, e.ID, e.Tag("name"), lat, lon)
	}
}
