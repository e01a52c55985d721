package timezone

import (
	"testing"
	_ "time/tzdata"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{
			name:      "Tokyo, Japan",
			latitude:  35.6762,
			longitude: 139.6503,
			want:      "Asia/Tokyo",
		},
		{
			name:      "New York City",
			latitude:  40.7128,
			longitude: -74.0060,
			want:      "America/New_York",
		},
		{
			name:      "Bangalore, India",
			latitude:  12.9716,
			longitude: 77.5946,
			want:      "Asia/Kolkata",
		},
		{
			name:      "London, UK",
			latitude:  51.5074,
			longitude: -0.1278,
			want:      "Europe/London",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.latitude, tt.longitude)
			if err != nil {
				t.Errorf("GetTimezone() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("GetTimezone() = %v, want %v", got, tt.want)
			}

			loc, err := svc.GetLocation(tt.latitude, tt.longitude)
			if err != nil {
				t.Fatalf("GetLocation() error = %v", err)
			}
			if loc.String() != tt.want {
				t.Errorf("GetLocation() = %v, want %v", loc, tt.want)
			}
		})
	}
}

func TestNewService_Singleton(t *testing.T) {
	a, err := NewService()
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	b, _ := NewService()
	if a != b {
		t.Error("NewService() should return the shared instance")
	}
}
