package openmeteo

// ForecastAPIResponse is the subset of the /v1/forecast payload the weather
// service consumes. Pointer fields distinguish "missing" from zero.
type ForecastAPIResponse struct {
	Latitude         float64      `json:"latitude"`
	Longitude        float64      `json:"longitude"`
	GenerationtimeMs float64      `json:"generationtime_ms"`
	UtcOffsetSeconds int          `json:"utc_offset_seconds"`
	Timezone         string       `json:"timezone" validate:"required"`
	Elevation        float64      `json:"elevation"`
	CurrentUnits     CurrentUnits `json:"current_units"`
	Current          *Current     `json:"current" validate:"required"`
	DailyUnits       DailyUnits   `json:"daily_units"`
	Daily            *Daily       `json:"daily" validate:"required"`
}

type CurrentUnits struct {
	Temperature2m      string `json:"temperature_2m"`
	RelativeHumidity2m string `json:"relative_humidity_2m"`
	Precipitation      string `json:"precipitation"`
	WindSpeed10m       string `json:"wind_speed_10m"`
}

type Current struct {
	Time               string   `json:"time"`
	Interval           int      `json:"interval"`
	Temperature2m      *float64 `json:"temperature_2m" validate:"required"`
	RelativeHumidity2m *float64 `json:"relative_humidity_2m"`
	Precipitation      *float64 `json:"precipitation"`
	WeatherCode        *int     `json:"weather_code" validate:"required"`
	WindSpeed10m       *float64 `json:"wind_speed_10m"`
	WindDirection10m   *float64 `json:"wind_direction_10m"`
}

type DailyUnits struct {
	Temperature2mMax            string `json:"temperature_2m_max"`
	Temperature2mMin            string `json:"temperature_2m_min"`
	PrecipitationProbabilityMax string `json:"precipitation_probability_max"`
}

// Daily holds parallel arrays indexed by day
type Daily struct {
	Time                        []string   `json:"time" validate:"required,dive,datetime=2006-01-02"`
	Temperature2mMax            []*float64 `json:"temperature_2m_max" validate:"required,dive,required"`
	Temperature2mMin            []*float64 `json:"temperature_2m_min" validate:"required,dive,required"`
	WeatherCode                 []*int     `json:"weather_code" validate:"required,dive,required"`
	PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
}
