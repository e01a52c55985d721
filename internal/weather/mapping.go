package weather

import (
	"errors"
	"fmt"
	"time"

	"trip-agent/internal/providers/openmeteo"
	"trip-agent/internal/types"
)

const dateLayout = "2006-01-02"

// ErrInsufficientData is returned when upstream has fewer forecast days than required
var ErrInsufficientData = errors.New("insufficient forecast data")

// mapForecastAPIResponseToReport converts the Open-Meteo payload into a
// Report whose forecast holds exactly days entries starting at today.
func mapForecastAPIResponseToReport(apiResponse *openmeteo.ForecastAPIResponse, days int, today string) (*Report, error) {
	if apiResponse == nil || apiResponse.Current == nil || apiResponse.Daily == nil {
		return nil, errors.New("forecast response is incomplete")
	}

	current := apiResponse.Current
	if current.Temperature2m == nil || current.WeatherCode == nil {
		return nil, errors.New("current conditions are missing temperature or weather code")
	}

	forecast, err := mapDaily(apiResponse.Daily, days, today)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Timezone: apiResponse.Timezone,
		Current: Current{
			Time:        toTime(current.Time),
			Temperature: types.NewTemperatureFromCelsius(*current.Temperature2m),
			Weather:     types.NewWeather(*current.WeatherCode),
		},
		Forecast: forecast,
	}

	if current.RelativeHumidity2m != nil {
		h := toPercentage(*current.RelativeHumidity2m)
		report.Current.RelativeHumidity = &h
	}
	if current.Precipitation != nil {
		p := types.NewPrecipitationFromMm(*current.Precipitation)
		report.Current.Precipitation = &p
	}
	if current.WindSpeed10m != nil && current.WindDirection10m != nil {
		w := types.NewWindFromKph(*current.WindSpeed10m, *current.WindDirection10m)
		report.Current.Wind = &w
	}

	return report, nil
}

func mapDaily(daily *openmeteo.Daily, days int, today string) ([]ForecastDay, error) {
	n := len(daily.Time)
	if len(daily.Temperature2mMax) != n || len(daily.Temperature2mMin) != n || len(daily.WeatherCode) != n {
		return nil, fmt.Errorf("daily arrays differ in length: time=%d max=%d min=%d code=%d",
			n, len(daily.Temperature2mMax), len(daily.Temperature2mMin), len(daily.WeatherCode))
	}
	probs := daily.PrecipitationProbabilityMax
	if len(probs) != n {
		probs = nil
	}

	forecast := make([]ForecastDay, 0, days)
	var prev time.Time
	for i := 0; i < n && len(forecast) < days; i++ {
		date, err := time.Parse(dateLayout, daily.Time[i])
		if err != nil {
			return nil, fmt.Errorf("invalid forecast date %q: %w", daily.Time[i], err)
		}
		if !prev.IsZero() && !date.After(prev) {
			return nil, fmt.Errorf("forecast dates out of order: %s after %s", daily.Time[i], prev.Format(dateLayout))
		}
		prev = date

		// Upstream may begin before the location's local today
		if today != "" && daily.Time[i] < today {
			continue
		}

		high, low, code := daily.Temperature2mMax[i], daily.Temperature2mMin[i], daily.WeatherCode[i]
		if high == nil || low == nil || code == nil {
			return nil, fmt.Errorf("forecast for %s is missing values", daily.Time[i])
		}

		day := ForecastDay{
			Date:    daily.Time[i],
			High:    types.NewTemperatureFromCelsius(*high),
			Low:     types.NewTemperatureFromCelsius(*low),
			Weather: types.NewWeather(*code),
		}
		if probs != nil && probs[i] != nil {
			p := toPercentage(*probs[i])
			day.PrecipitationProbability = &p
		}
		forecast = append(forecast, day)
	}

	if len(forecast) < days {
		return nil, fmt.Errorf("%w: got %d days, need %d", ErrInsufficientData, len(forecast), days)
	}
	return forecast, nil
}

func toPercentage(value float64) float64 {
	return value / 100.0
}

func toTime(value string) time.Time {
	if t, err := time.Parse("2006-01-02T15:04", value); err == nil {
		return t
	}

	return time.Time{}
}
