package types

import "fmt"

// Coords is a point in decimal degrees
type Coords struct {
	Latitude  float64 `json:"latitude" example:"35.6762"`
	Longitude float64 `json:"longitude" example:"139.6503"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Validate reports whether the point lies within the valid latitude and longitude ranges
func (c Coords) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: %f", ErrInvalidLatitude, c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: %f", ErrInvalidLongitude, c.Longitude)
	}
	return nil
}
