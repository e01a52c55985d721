package types

const MmToInches = 0.0393701

type Precipitation struct {
	Mm     float64 `json:"mm"`
	Inches float64 `json:"inches"`
}

func NewPrecipitationFromMm(amountInMm float64) Precipitation {
	return Precipitation{
		Mm:     amountInMm,
		Inches: amountInMm * MmToInches,
	}
}
