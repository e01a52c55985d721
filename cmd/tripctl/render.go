package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"trip-agent/internal/attractions"
	"trip-agent/internal/planner"
	"trip-agent/internal/weather"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of an answer on stdout.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// MsgNoAttractions is shown when the search succeeded but matched nothing.
const MsgNoAttractions = "No tourist attractions found in this area"

// ParseFormat validates format values.
func ParseFormat(v string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(v))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", v)
	}
}

// Render encodes a response in the given format.
func Render(resp planner.Response, format Format) (string, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal json: %w", err)
		}
		return string(out), nil
	case FormatYAML:
		return renderYAML(resp)
	default:
		return renderText(resp), nil
	}
}

// renderYAML goes through the JSON encoding so both machine formats share
// field names and order.
func renderYAML(resp planner.Response) (string, error) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("marshal json: %w", err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("decode json as yaml: %w", err)
	}
	blockStyle(&doc)
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return "", fmt.Errorf("marshal yaml: %w", err)
	}
	return strings.TrimRight(string(out), "\n"), nil
}

// blockStyle drops the flow and quoting styles the JSON source carries.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

func renderText(resp planner.Response) string {
	var b strings.Builder

	if resp.FatalError != nil {
		b.WriteString(*resp.FatalError)
		return b.String()
	}

	if resp.Location != nil {
		fmt.Fprintf(&b, "Location: %s (%.4f, %.4f)\n", resp.Location.DisplayName, resp.Location.Latitude, resp.Location.Longitude)
	}

	if resp.Weather != nil {
		b.WriteByte('\n')
		writeWeather(&b, resp.Weather)
	}

	if resp.Intent.NeedsPlaces() && resp.Attractions != nil {
		b.WriteByte('\n')
		writeAttractions(&b, resp.Attractions)
	}

	if len(resp.Warnings) > 0 {
		b.WriteByte('\n')
		for _, w := range resp.Warnings {
			fmt.Fprintf(&b, "Warning: %s\n", w)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeWeather(b *strings.Builder, report *weather.Report) {
	cur := report.Current
	fmt.Fprintf(b, "Current weather: %s, %s\n", formatTemperature(cur.Temperature.Celsius), cur.Weather.Description)

	var details []string
	if cur.RelativeHumidity != nil {
		details = append(details, "humidity "+formatPercentage(*cur.RelativeHumidity))
	}
	if cur.Wind != nil {
		details = append(details, fmt.Sprintf("wind %.0f km/h %s", cur.Wind.SpeedInKph, cur.Wind.DirectionCardinal))
	}
	if cur.Precipitation != nil && cur.Precipitation.Mm > 0 {
		details = append(details, fmt.Sprintf("precipitation %.1f mm", cur.Precipitation.Mm))
	}
	if len(details) > 0 {
		fmt.Fprintf(b, "  %s\n", strings.Join(details, ", "))
	}

	if len(report.Forecast) == 0 {
		return
	}
	fmt.Fprintf(b, "Forecast (%s):\n", report.Timezone)
	for _, day := range report.Forecast {
		line := fmt.Sprintf("  %s  %s .. %s  %s", day.Date, formatTemperature(day.Low.Celsius), formatTemperature(day.High.Celsius), day.Weather.Description)
		if day.PrecipitationProbability != nil {
			line += "  rain " + formatPercentage(*day.PrecipitationProbability)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

func writeAttractions(b *strings.Builder, list []attractions.Attraction) {
	if len(list) == 0 {
		b.WriteString(MsgNoAttractions)
		b.WriteByte('\n')
		return
	}
	fmt.Fprintf(b, "Nearby attractions (%d):\n", len(list))
	for i, a := range list {
		fmt.Fprintf(b, "  %d. %s (%s), %s\n", i+1, a.Name, a.CategoryLabel, formatDistance(a.DistanceMeters))
		if a.Address != "" {
			fmt.Fprintf(b, "     %s\n", a.Address)
		}
		if a.Website != "" {
			fmt.Fprintf(b, "     %s\n", a.Website)
		}
		fmt.Fprintf(b, "     https://www.openstreetmap.org/?mlat=%.5f&mlon=%.5f&zoom=15\n", a.Latitude, a.Longitude)
	}
}

func formatTemperature(celsius float64) string {
	return fmt.Sprintf("%.1f°C", celsius)
}

// formatPercentage takes a 0..1 fraction.
func formatPercentage(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

func formatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}
