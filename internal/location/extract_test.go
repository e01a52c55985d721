package location

import "testing"

func TestExtractPlaceName(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{query: "What's the weather in Tokyo?", want: "Tokyo"},
		{query: "I'm going to Bangalore, let's plan my trip", want: "Bangalore"},
		{query: "I'm visiting New York, what is the temperature there and what are the places I can visit?", want: "New York"},
		{query: "Take me to Zzqxaborp123", want: "Zzqxaborp123"},
		{query: "Show me Rio de Janeiro's beaches", want: "Rio de Janeiro"},
		{query: "Paris do you know it", want: "Paris"},
		{query: "Weekend in San Francisco or Los Angeles", want: ""},
		{query: "Visiting Paris. Then Rome", want: ""},
		{query: "Is it hot in 東京 today", want: "東京"},
		{query: "weather in tokyo", want: ""},
		{query: "", want: ""},
		{query: "Paris, paris, PARIS", want: "Paris"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := ExtractPlaceName(tt.query); got != tt.want {
				t.Errorf("ExtractPlaceName(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}
