package attractions

import "trip-agent/internal/providers/overpass"

// Attraction is a point of interest near the queried location
type Attraction struct {
	Name           string  `json:"name" example:"Cubbon Park"`
	Category       string  `json:"category" example:"park"`
	CategoryLabel  string  `json:"category_label" example:"Park"`
	DistanceMeters float64 `json:"distance_meters" example:"412"`
	Latitude       float64 `json:"latitude" example:"12.9763"`
	Longitude      float64 `json:"longitude" example:"77.5929"`
	Address        string  `json:"address,omitempty"`
	Website        string  `json:"website,omitempty"`
}

// Categories is the whitelist of tourism-relevant OSM tags, in priority
// order. An element is labelled by the first filter it matches.
var Categories = []overpass.TagFilter{
	{Key: "tourism", Values: []string{"attraction", "museum", "gallery", "artwork", "viewpoint", "zoo", "aquarium", "theme_park"}},
	{Key: "historic", Values: []string{"monument", "memorial", "castle", "ruins", "archaeological_site", "fort", "palace", "city_gate"}},
	{Key: "leisure", Values: []string{"park", "garden", "nature_reserve"}},
	{Key: "amenity", Values: []string{"place_of_worship"}},
}
