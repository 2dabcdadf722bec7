package state

import (
	"math"
	"strconv"

	"github.com/rs/zerolog/log"

	"pacetool/internal/units"
)

// DistanceState holds a distance in kilometers plus the display unit
type DistanceState struct {
	km      float64
	unit    units.Unit
	storage Storage
	saveErr error
}

// DistanceSnapshot is a read-only view of a DistanceState
type DistanceSnapshot struct {
	Distance          float64
	Unit              units.Unit
	ConvertedDistance float64
	ConvertedUnit     units.Unit
	Kilometers        float64
}

// NewDistanceState creates a distance store seeded from storage when the
// persisted distance and unit are valid, otherwise from the given defaults.
// value is expressed in unit.
func NewDistanceState(value float64, unit units.Unit, storage Storage) *DistanceState {
	if !unit.Valid() {
		unit = units.Kilometers
	}

	if v, u, ok := restoreDistance(storage); ok {
		value, unit = v, u
	} else {
		log.Debug().Msg("no valid persisted distance, using defaults")
	}

	return &DistanceState{
		km:      units.ConvertDistance(units.ClampDistance(value), unit, units.Kilometers),
		unit:    unit,
		storage: storage,
	}
}

func restoreDistance(storage Storage) (float64, units.Unit, bool) {
	rawValue, okValue := lookup(storage, KeyDistance)
	rawUnit, okUnit := lookup(storage, KeyDistanceUnit)
	if !okValue || !okUnit {
		return 0, "", false
	}

	value, err := strconv.ParseFloat(rawValue, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, "", false
	}
	unit, ok := units.ParseUnit(rawUnit)
	if !ok {
		return 0, "", false
	}

	return value, unit, true
}

// Distance returns the distance in the display unit
func (d *DistanceState) Distance() float64 {
	return units.ConvertDistance(d.km, units.Kilometers, d.unit)
}

// Unit returns the display unit
func (d *DistanceState) Unit() units.Unit {
	return d.unit
}

// ConvertedUnit returns the unit opposite to the display unit
func (d *DistanceState) ConvertedUnit() units.Unit {
	return d.unit.Opposite()
}

// ConvertedDistance returns the distance in the opposite unit
func (d *DistanceState) ConvertedDistance() float64 {
	return units.ConvertDistance(d.km, units.Kilometers, d.ConvertedUnit())
}

// Kilometers returns the canonical distance
func (d *DistanceState) Kilometers() float64 {
	return d.km
}

// Snapshot returns all derived values at once
func (d *DistanceState) Snapshot() DistanceSnapshot {
	return DistanceSnapshot{
		Distance:          d.Distance(),
		Unit:              d.unit,
		ConvertedDistance: d.ConvertedDistance(),
		ConvertedUnit:     d.ConvertedUnit(),
		Kilometers:        d.km,
	}
}

// SetDistance replaces the distance, expressed in the display unit
func (d *DistanceState) SetDistance(value float64) {
	d.km = units.ConvertDistance(units.ClampDistance(value), d.unit, units.Kilometers)
	d.save()
}

// Adjust moves the displayed distance by delta. The wheel works in
// hundredths, so the current value is snapped to two decimals first.
func (d *DistanceState) Adjust(delta float64) {
	current := math.Round(d.Distance()*100) / 100
	d.SetDistance(math.Round((current+delta)*100) / 100)
}

// SetUnit switches the display unit. The canonical distance is untouched.
func (d *DistanceState) SetUnit(unit units.Unit) {
	if unit == d.unit || !unit.Valid() {
		return
	}
	d.unit = unit
	d.save()
}

// SaveErr returns the error from the most recent write, nil if it succeeded
func (d *DistanceState) SaveErr() error {
	return d.saveErr
}

// save persists the displayed value. Mile values are snapped to hundredths
// since the two factors are not exact reciprocals and would drift per restore.
func (d *DistanceState) save() {
	value := d.Distance()
	if d.unit == units.Miles {
		value = math.Round(value*100) / 100
	}
	d.saveErr = persist(d.storage,
		KeyDistance, formatFloat(value),
		KeyDistanceUnit, string(d.unit),
	)
}
