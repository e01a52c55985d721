package types

import (
	"errors"
	"strings"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
	ErrEmptyDisplayName = errors.New("location display name is empty")
)

// Location is a resolved place with a human-readable name
type Location struct {
	DisplayName string `json:"display_name" example:"東京都, 日本"`
	Coords
}

// NewLocation builds a Location, rejecting coordinates outside the valid ranges
func NewLocation(displayName string, latitude, longitude float64) (Location, error) {
	name := strings.TrimSpace(displayName)
	if name == "" {
		return Location{}, ErrEmptyDisplayName
	}
	coords := NewCoords(latitude, longitude)
	if err := coords.Validate(); err != nil {
		return Location{}, err
	}
	return Location{DisplayName: name, Coords: coords}, nil
}
