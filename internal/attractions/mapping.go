package attractions

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"trip-agent/internal/providers/overpass"
	"trip-agent/internal/types"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// translateElements keeps whitelisted elements that have a position and a
// usable name, in upstream order.
func translateElements(elements []overpass.Element, origin types.Coords) []Attraction {
	from := orb.Point{origin.Longitude, origin.Latitude}

	out := make([]Attraction, 0, len(elements))
	for _, e := range elements {
		category, ok := categorize(e)
		if !ok {
			continue
		}
		lat, lon, ok := e.Coordinates()
		if !ok {
			continue
		}
		name := displayName(e)
		if name == "" {
			continue
		}

		out = append(out, Attraction{
			Name:           name,
			Category:       category,
			CategoryLabel:  categoryLabel(category),
			DistanceMeters: math.Round(geo.DistanceHaversine(from, orb.Point{lon, lat})),
			Latitude:       lat,
			Longitude:      lon,
			Address:        address(e),
			Website:        website(e),
		})
	}
	return out
}

// rank removes case-insensitive duplicate names (first occurrence wins),
// sorts by ascending distance and truncates to limit.
func rank(candidates []Attraction, limit int) []Attraction {
	seen := make(map[string]bool, len(candidates))
	unique := make([]Attraction, 0, len(candidates))
	for _, a := range candidates {
		key := strings.ToLower(strings.TrimSpace(a.Name))
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, a)
	}

	slices.SortStableFunc(unique, func(a, b Attraction) int {
		return cmp.Compare(a.DistanceMeters, b.DistanceMeters)
	})

	if len(unique) > limit {
		unique = unique[:limit]
	}
	return unique
}

func categorize(e overpass.Element) (string, bool) {
	for _, f := range Categories {
		if v, ok := f.Matches(e); ok {
			return v, true
		}
	}
	return "", false
}

func displayName(e overpass.Element) string {
	for _, key := range []string{"name", "name:en", "description"} {
		if v := strings.TrimSpace(e.Tag(key)); v != "" {
			return v
		}
	}
	return ""
}

func categoryLabel(category string) string {
	// Casers carry state and are not shared across goroutines
	return cases.Title(language.English).String(strings.ReplaceAll(category, "_", " "))
}

func address(e overpass.Element) string {
	street := strings.TrimSpace(strings.Join([]string{e.Tag("addr:housenumber"), e.Tag("addr:street")}, " "))
	parts := make([]string, 0, 2)
	if street != "" {
		parts = append(parts, street)
	}
	if city := e.Tag("addr:city"); city != "" {
		parts = append(parts, city)
	}
	return strings.Join(parts, ", ")
}

func website(e overpass.Element) string {
	if w := e.Tag("website"); w != "" {
		return w
	}
	return e.Tag("contact:website")
}
