package weather

import (
	"time"

	"trip-agent/internal/types"
)

// Report is the current conditions plus a short daily forecast for a location
type Report struct {
	Timezone string        `json:"timezone" example:"Asia/Tokyo"`
	Current  Current       `json:"current"`
	Forecast []ForecastDay `json:"forecast"`
}

// Current holds the conditions at request time
type Current struct {
	Time             time.Time            `json:"time"`
	Temperature      types.Temperature    `json:"temperature"`
	Weather          types.Weather        `json:"weather"`
	RelativeHumidity *float64             `json:"relative_humidity,omitempty"` // 0..1
	Precipitation    *types.Precipitation `json:"precipitation,omitempty"`
	Wind             *types.Wind          `json:"wind,omitempty"`
}

// ForecastDay summarises one local calendar day
type ForecastDay struct {
	Date                     string            `json:"date" example:"2026-10-18"`
	High                     types.Temperature `json:"high"`
	Low                      types.Temperature `json:"low"`
	Weather                  types.Weather     `json:"weather"`
	PrecipitationProbability *float64          `json:"precipitation_probability,omitempty"` // 0..1
}
