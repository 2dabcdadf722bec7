package tui

import (
	"fmt"

	"pacetool/internal/units"
)

// FormatPaceWithUnit formats a pace with its unit label, e.g. "8:03 /mi"
func FormatPaceWithUnit(p units.Pace, u units.Unit) string {
	return p.String() + " /" + u.Label()
}

// FormatDistance formats a distance with two decimals, e.g. "3.11"
func FormatDistance(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

// FormatDistanceWithUnit formats a distance with its unit label
func FormatDistanceWithUnit(value float64, u units.Unit) string {
	return FormatDistance(value) + " " + u.Label()
}

// splitDistance splits a displayed distance into its integer and hundredths
// wheels. 4.999 shows as 5.00, not 4.100.
func splitDistance(value float64) (int, int) {
	hundredths := int(value*100 + 0.5)
	return hundredths / 100, hundredths % 100
}

// wrap keeps a wheel neighbour inside [0, size)
func wrap(v, size int) int {
	return ((v % size) + size) % size
}
