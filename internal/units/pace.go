package units

import (
	"fmt"
	"math"
)

// Pace range in whole seconds per displayed unit (2:00 to 20:00)
const (
	MinPaceSeconds = 2 * 60
	MaxPaceSeconds = 20 * 60
)

// Pace is a display pace as whole minutes and seconds per unit
type Pace struct {
	Minutes int
	Seconds int
}

// TotalSeconds returns the pace as seconds per unit
func (p Pace) TotalSeconds() int {
	return p.Minutes*60 + p.Seconds
}

// String formats the pace as m:ss
func (p Pace) String() string {
	return fmt.Sprintf("%d:%02d", p.Minutes, p.Seconds)
}

// ConvertPace converts a pace between units, keeping the same speed.
// Equal units return the input untouched. Otherwise the result is rounded
// to the nearest whole second and split into minutes and seconds.
func ConvertPace(minutes, seconds int, from, to Unit) Pace {
	if from == to {
		return Pace{Minutes: minutes, Seconds: seconds}
	}

	total := totalSeconds(minutes, seconds)

	// A mile is longer than a km, so seconds per mile exceed seconds per km
	factor := KmToMiles
	if from == Kilometers {
		factor = MilesToKm
	}

	return splitSeconds(roundSeconds(total * factor))
}

// PaceToSecondsPerKm normalizes a displayed pace to seconds per kilometer
func PaceToSecondsPerKm(minutes, seconds int, unit Unit) float64 {
	total := totalSeconds(minutes, seconds)
	if unit == Miles {
		return total / MilesToKm
	}
	return total
}

// PaceFromSecondsPerKm derives the display pace in unit from seconds per km
func PaceFromSecondsPerKm(secondsPerKm float64, unit Unit) Pace {
	if math.IsNaN(secondsPerKm) || math.IsInf(secondsPerKm, 0) {
		secondsPerKm = MinPaceSeconds
	}

	perUnit := secondsPerKm
	if unit == Miles {
		perUnit = secondsPerKm * MilesToKm
	}

	return splitSeconds(roundSeconds(perUnit))
}

// ClampPace folds seconds overflow into minutes and clamps the total into
// [MinPaceSeconds, MaxPaceSeconds]
func ClampPace(minutes, seconds int) Pace {
	total := totalSeconds(minutes, seconds)

	if total < MinPaceSeconds {
		total = MinPaceSeconds
	}
	if total > MaxPaceSeconds {
		total = MaxPaceSeconds
	}

	return splitSeconds(int(total))
}

// maxSeconds bounds rounded totals so the int conversion cannot overflow
const maxSeconds = 1 << 53

// totalSeconds sums minutes and seconds in float64 so huge inputs saturate
// instead of wrapping
func totalSeconds(minutes, seconds int) float64 {
	return float64(minutes)*60 + float64(seconds)
}

func roundSeconds(total float64) int {
	total = math.Round(total)
	if math.IsNaN(total) || total < 0 {
		return 0
	}
	if total > maxSeconds {
		return maxSeconds
	}
	return int(total)
}

func splitSeconds(total int) Pace {
	if total < 0 {
		total = 0
	}
	return Pace{Minutes: total / 60, Seconds: total % 60}
}
