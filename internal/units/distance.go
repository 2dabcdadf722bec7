package units

import "math"

// Distance range in the displayed unit
const (
	MinDistance = 0.01
	MaxDistance = 999.99
)

// ConvertDistance converts a distance between units.
// No rounding is applied; that is left to presentation.
func ConvertDistance(value float64, from, to Unit) float64 {
	if from == to {
		return value
	}
	if from == Kilometers {
		return value * KmToMiles
	}
	return value * MilesToKm
}

// ClampDistance clamps value into [MinDistance, MaxDistance].
// NaN is treated as below range.
func ClampDistance(value float64) float64 {
	if math.IsNaN(value) || value < MinDistance {
		return MinDistance
	}
	if value > MaxDistance {
		return MaxDistance
	}
	return value
}
