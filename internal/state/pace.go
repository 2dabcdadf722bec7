package state

import (
	"strconv"

	"github.com/rs/zerolog/log"

	"pacetool/internal/races"
	"pacetool/internal/units"
)

// PaceState holds a pace as seconds per kilometer plus the display unit.
// Displayed minutes and seconds are always derived from the canonical value,
// so toggling units never changes it.
type PaceState struct {
	secondsPerKm float64
	unit         units.Unit
	storage      Storage
	saveErr      error
}

// PaceSnapshot is a read-only view of a PaceState
type PaceSnapshot struct {
	Pace          units.Pace
	Unit          units.Unit
	ConvertedPace units.Pace
	ConvertedUnit units.Unit
	SecondsPerKm  float64
}

// NewPaceState creates a pace store seeded from storage when the persisted
// minutes, seconds and unit are all valid, otherwise from the given defaults
func NewPaceState(minutes, seconds int, unit units.Unit, storage Storage) *PaceState {
	if !unit.Valid() {
		unit = units.Kilometers
	}

	if m, s, u, ok := restorePace(storage); ok {
		minutes, seconds, unit = m, s, u
	} else {
		log.Debug().Msg("no valid persisted pace, using defaults")
	}

	clamped := units.ClampPace(minutes, seconds)
	return &PaceState{
		secondsPerKm: units.PaceToSecondsPerKm(clamped.Minutes, clamped.Seconds, unit),
		unit:         unit,
		storage:      storage,
	}
}

func restorePace(storage Storage) (int, int, units.Unit, bool) {
	rawMin, okMin := lookup(storage, KeyPaceMinutes)
	rawSec, okSec := lookup(storage, KeyPaceSeconds)
	rawUnit, okUnit := lookup(storage, KeyPaceUnit)
	if !okMin || !okSec || !okUnit {
		return 0, 0, "", false
	}

	minutes, err := strconv.Atoi(rawMin)
	if err != nil {
		return 0, 0, "", false
	}
	seconds, err := strconv.Atoi(rawSec)
	if err != nil {
		return 0, 0, "", false
	}
	unit, ok := units.ParseUnit(rawUnit)
	if !ok {
		return 0, 0, "", false
	}

	return minutes, seconds, unit, true
}

// Pace returns the displayed pace in the current unit
func (p *PaceState) Pace() units.Pace {
	return units.PaceFromSecondsPerKm(p.secondsPerKm, p.unit)
}

// Minutes returns the displayed minutes
func (p *PaceState) Minutes() int {
	return p.Pace().Minutes
}

// Seconds returns the displayed seconds
func (p *PaceState) Seconds() int {
	return p.Pace().Seconds
}

// Unit returns the display unit
func (p *PaceState) Unit() units.Unit {
	return p.unit
}

// ConvertedUnit returns the unit opposite to the display unit
func (p *PaceState) ConvertedUnit() units.Unit {
	return p.unit.Opposite()
}

// ConvertedPace returns the pace expressed in the opposite unit
func (p *PaceState) ConvertedPace() units.Pace {
	return units.PaceFromSecondsPerKm(p.secondsPerKm, p.ConvertedUnit())
}

// SecondsPerKm returns the canonical pace
func (p *PaceState) SecondsPerKm() float64 {
	return p.secondsPerKm
}

// RaceTimes returns finish times for the catalogue at the current pace
func (p *PaceState) RaceTimes(cat races.Catalogue) races.RaceTimes {
	return cat.Times(p.secondsPerKm)
}

// Snapshot returns all derived values at once
func (p *PaceState) Snapshot() PaceSnapshot {
	return PaceSnapshot{
		Pace:          p.Pace(),
		Unit:          p.unit,
		ConvertedPace: p.ConvertedPace(),
		ConvertedUnit: p.ConvertedUnit(),
		SecondsPerKm:  p.secondsPerKm,
	}
}

// SetMinutes replaces the displayed minutes, keeping the displayed seconds
func (p *PaceState) SetMinutes(minutes int) {
	p.setDisplayed(minutes, p.Seconds())
}

// SetSeconds replaces the displayed seconds, keeping the displayed minutes.
// Seconds past 59 roll over into minutes.
func (p *PaceState) SetSeconds(seconds int) {
	p.setDisplayed(p.Minutes(), seconds)
}

// AdjustSeconds moves the displayed pace by delta seconds
func (p *PaceState) AdjustSeconds(delta int) {
	cur := p.Pace()
	p.setDisplayed(cur.Minutes, cur.Seconds+delta)
}

// SetUnit switches the display unit. The canonical pace is untouched.
func (p *PaceState) SetUnit(unit units.Unit) {
	if unit == p.unit || !unit.Valid() {
		return
	}
	p.unit = unit
	p.save()
}

func (p *PaceState) setDisplayed(minutes, seconds int) {
	clamped := units.ClampPace(minutes, seconds)
	p.secondsPerKm = units.PaceToSecondsPerKm(clamped.Minutes, clamped.Seconds, p.unit)
	p.save()
}

// SaveErr returns the error from the most recent write, nil if it succeeded
func (p *PaceState) SaveErr() error {
	return p.saveErr
}

func (p *PaceState) save() {
	cur := p.Pace()
	p.saveErr = persist(p.storage,
		KeyPaceMinutes, strconv.Itoa(cur.Minutes),
		KeyPaceSeconds, strconv.Itoa(cur.Seconds),
		KeyPaceUnit, string(p.unit),
	)
}
