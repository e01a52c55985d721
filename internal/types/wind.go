package types

const KphToMph = 0.621371

type Wind struct {
	SpeedInKph        float64 `json:"speed_kph"`
	SpeedInMph        float64 `json:"speed_mph"`
	DirectionDegrees  float64 `json:"direction_degrees"`
	DirectionCardinal string  `json:"direction_cardinal"`
}

var cardinals = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

func NewWindFromKph(speedInKph, directionDegrees float64) Wind {
	direction := (directionDegrees / 22.5) + .5 // .5 for rounding
	index := int(direction) % 16
	if index < 0 {
		index += 16
	}

	return Wind{
		SpeedInKph:        speedInKph,
		SpeedInMph:        speedInKph * KphToMph,
		DirectionDegrees:  directionDegrees,
		DirectionCardinal: cardinals[index],
	}
}
