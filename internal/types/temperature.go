package types

import "math"

type Temperature struct {
	Celsius    float64 `json:"celsius"`
	Fahrenheit float64 `json:"fahrenheit"`
}

func NewTemperatureFromCelsius(celsius float64) Temperature {
	fahrenheit := celsius*9/5 + 32
	return Temperature{
		Celsius:    celsius,
		Fahrenheit: math.Round(fahrenheit*10) / 10,
	}
}
