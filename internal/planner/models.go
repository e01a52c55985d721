package planner

import (
	"trip-agent/internal/attractions"
	"trip-agent/internal/intent"
	"trip-agent/internal/types"
	"trip-agent/internal/weather"
)

// User-facing messages
const (
	MsgLocationNotFound = "I'm sorry, I don't know if this place exists. Please check the name and try again."
	MsgEmptyQuery       = "Please tell me which place you are asking about."
	MsgGeocodingFailed  = "I'm sorry, I couldn't look up that place right now. Please try again later."

	WarnWeatherUnavailable = "weather data unavailable"
	WarnPlacesUnavailable  = "attractions data unavailable"
)

// Response is the outcome of one query. Weather and Attractions are nil when
// not requested or when fetching failed; Attractions is an empty slice when
// the search succeeded without matches. FatalError is set only when the
// location could not be resolved, and then nothing else is populated.
type Response struct {
	RequestID   string                   `json:"request_id" example:"5b7c1f0e-3a4d-4f7e-9c2a-1d2e3f4a5b6c"`
	Query       string                   `json:"query" example:"What's the weather in Tokyo?"`
	Intent      intent.Intent            `json:"intent" example:"WEATHER" enums:"WEATHER,PLACES,BOTH"`
	Location    *types.Location          `json:"location"`
	Weather     *weather.Report          `json:"weather"`
	Attractions []attractions.Attraction `json:"attractions"`
	Warnings    []string                 `json:"warnings"`
	FatalError  *string                  `json:"fatal_error"`
}
