package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"trip-agent/internal/providers/upstream"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=35.68&longitude=139.76&current=temperature_2m,relative_humidity_2m,precipitation,weather_code,wind_speed_10m,wind_direction_10m&daily=weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max&timezone=Asia/Tokyo&forecast_days=3
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
	serviceName     = "open-meteo"
)

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewForecastClient(baseURL string, logger *slog.Logger) *ForecastClient {
	if baseURL == "" {
		baseURL = baseForecastURL
	}
	return &ForecastClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		logger:     logger.With("component", "open-meteo-client"),
	}
}

// GetForecast fetches current conditions and a daily forecast for the given
// coordinates. Daily buckets follow the given IANA timezone.
func (c *ForecastClient) GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int, timezone string) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	currentVars := []string{
		"temperature_2m",
		"relative_humidity_2m",
		"precipitation",
		"weather_code",
		"wind_speed_10m",
		"wind_direction_10m",
	}

	dailyVars := []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_probability_max",
	}

	if timezone == "" {
		timezone = "auto"
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("current", strings.Join(currentVars, ","))
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("timezone", timezone)
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	q.Set("timeformat", "iso8601")
	q.Set("temperature_unit", "celsius")
	q.Set("wind_speed_unit", "kmh")
	q.Set("precipitation_unit", "mm")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	c.logger.Debug("forecast request", "latitude", latitude, "longitude", longitude, "timezone", timezone)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, upstream.WrapTransport(serviceName, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, upstream.NewStatusError(serviceName, resp.StatusCode, body)
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, upstream.Malformed(serviceName, fmt.Errorf("failed to decode response: %w", err))
	}
	if err := upstream.Validate(serviceName, &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}
