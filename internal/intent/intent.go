// Package intent classifies a travel query by the data it asks for.
package intent

import "strings"

// Intent is the purpose of a query.
type Intent string

const (
	Weather Intent = "WEATHER"
	Places  Intent = "PLACES"
	Both    Intent = "BOTH"
)

// NeedsWeather reports whether the intent asks for a forecast.
func (i Intent) NeedsWeather() bool { return i == Weather || i == Both }

// NeedsPlaces reports whether the intent asks for attractions.
func (i Intent) NeedsPlaces() bool { return i == Places || i == Both }

var (
	WeatherKeywords = []string{
		"weather", "temperature", "temp", "forecast", "rain", "climate", "hot", "cold",
	}
	PlacesKeywords = []string{
		"visit", "places", "attractions", "trip", "see", "sightseeing",
		"tour", "tourist", "sights", "destination", "spots", "things to do",
	}
)

// Rule is one row of a decision table. Rows are evaluated in order and the
// first row whose conditions match decides the intent.
type Rule struct {
	Weather bool
	Places  bool
	Intent  Intent
}

// DecisionTable maps keyword presence to an intent. Queries matching
// neither keyword set default to attractions.
var DecisionTable = []Rule{
	{Weather: true, Places: true, Intent: Both},
	{Weather: true, Places: false, Intent: Weather},
	{Weather: false, Places: true, Intent: Places},
	{Weather: false, Places: false, Intent: Places},
}

// Classifier matches queries against two keyword sets.
type Classifier struct {
	weather []string
	places  []string
	table   []Rule
}

// NewClassifier returns a Classifier using the package keyword sets and DecisionTable.
func NewClassifier() *Classifier {
	return &Classifier{
		weather: WeatherKeywords,
		places:  PlacesKeywords,
		table:   DecisionTable,
	}
}

// Classify returns the intent of query. Matching is case-insensitive
// substring search; it never fails.
func (c *Classifier) Classify(query string) Intent {
	q := strings.ToLower(query)
	hasWeather := containsAny(q, c.weather)
	hasPlaces := containsAny(q, c.places)

	for _, r := range c.table {
		if r.Weather == hasWeather && r.Places == hasPlaces {
			return r.Intent
		}
	}
	return Places
}

// Classify uses a default Classifier.
func Classify(query string) Intent {
	return defaultClassifier.Classify(query)
}

var defaultClassifier = NewClassifier()

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
