package units

// Unit is a display unit for pace and distance values
type Unit string

const (
	Kilometers Unit = "km"
	Miles      Unit = "mi"
)

// Conversion factors. These are fixed values, not derived from each other,
// so km->mi->km is not an exact identity.
const (
	KmToMiles = 0.621371
	MilesToKm = 1.60934
)

// ParseUnit converts a persisted or configured token into a Unit.
// Only "km" and "mi" are recognized.
func ParseUnit(token string) (Unit, bool) {
	switch Unit(token) {
	case Kilometers:
		return Kilometers, true
	case Miles:
		return Miles, true
	}
	return "", false
}

// Valid reports whether u is one of the two supported units
func (u Unit) Valid() bool {
	return u == Kilometers || u == Miles
}

// Opposite returns the other unit
func (u Unit) Opposite() Unit {
	if u == Miles {
		return Kilometers
	}
	return Miles
}

// Label returns the short unit label ("km" or "mi")
func (u Unit) Label() string {
	if u == Miles {
		return "mi"
	}
	return "km"
}

// LongLabel returns the long unit label ("kilometers" or "miles")
func (u Unit) LongLabel() string {
	if u == Miles {
		return "miles"
	}
	return "kilometers"
}

// PaceLabel returns the pace unit label ("min/km" or "min/mi")
func (u Unit) PaceLabel() string {
	if u == Miles {
		return "min/mi"
	}
	return "min/km"
}

func (u Unit) String() string {
	return u.Label()
}
