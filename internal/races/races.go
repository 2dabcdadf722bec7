package races

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
)

// RaceDistance is an entry in a race catalogue
type RaceDistance struct {
	ID    string  // "5k", "10k", "half", "full", ...
	Label string  // "5K", "Half Marathon", ...
	Km    float64 // distance in kilometers
	Miles float64 // distance in miles as shown in the catalogue
}

// Catalogue is an ordered list of race distances, ascending by Km
type Catalogue []RaceDistance

// standard is the minimal road race catalogue
var standard = Catalogue{
	{ID: "5k", Label: "5K", Km: 5.0, Miles: 3.11},
	{ID: "10k", Label: "10K", Km: 10.0, Miles: 6.21},
	{ID: "half", Label: "Half Marathon", Km: 21.0975, Miles: 13.11},
	{ID: "full", Label: "Marathon", Km: 42.195, Miles: 26.22},
}

// extended adds 15K, 10 mile and 50K to the standard set
var extended = Catalogue{
	{ID: "5k", Label: "5K", Km: 5.0, Miles: 3.11},
	{ID: "10k", Label: "10K", Km: 10.0, Miles: 6.21},
	{ID: "15k", Label: "15K", Km: 15.0, Miles: 9.32},
	{ID: "10mi", Label: "10 Mile", Km: 16.09, Miles: 10.0},
	{ID: "half", Label: "Half Marathon", Km: 21.0975, Miles: 13.11},
	{ID: "full", Label: "Marathon", Km: 42.195, Miles: 26.22},
	{ID: "50k", Label: "50K", Km: 50.0, Miles: 31.07},
}

// Standard returns the minimal road race catalogue
func Standard() Catalogue {
	return slices.Clone(standard)
}

// Extended returns the standard catalogue plus 15K, 10 mile and 50K
func Extended() Catalogue {
	return slices.Clone(extended)
}

// Default returns the catalogue used when none is configured
func Default() Catalogue {
	return Extended()
}

// Catalogue names accepted by CatalogueByName
const (
	CatalogueStandard = "standard"
	CatalogueExtended = "extended"
)

// CatalogueByName returns the catalogue registered under name
func CatalogueByName(name string) (Catalogue, bool) {
	switch strings.ToLower(name) {
	case CatalogueStandard:
		return Standard(), true
	case CatalogueExtended:
		return Extended(), true
	}
	return nil, false
}

// KmLabel returns the km distance without trailing zeros ("5", "21.1")
func (r RaceDistance) KmLabel() string {
	return humanize.FtoaWithDigits(math.Round(r.Km*10)/10, 1)
}

// MilesLabel returns the mile distance with two decimals
func (r RaceDistance) MilesLabel() string {
	return fmt.Sprintf("%.2f", r.Miles)
}

// RaceTime is a derived finish time for one catalogue entry
type RaceTime struct {
	Race    RaceDistance
	Seconds int
	Time    string // H:MM:SS
}

// RaceTimes is an ordered set of finish times, in catalogue order
type RaceTimes []RaceTime

// Get returns the formatted finish time for a race ID
func (rt RaceTimes) Get(id string) (string, bool) {
	for _, t := range rt {
		if t.Race.ID == id {
			return t.Time, true
		}
	}
	return "", false
}

// Map returns the finish times keyed by race ID
func (rt RaceTimes) Map() map[string]string {
	m := make(map[string]string, len(rt))
	for _, t := range rt {
		m[t.Race.ID] = t.Time
	}
	return m
}

// RaceSeconds returns the finish time in whole seconds for a pace in
// seconds per km over distanceKm
func RaceSeconds(secondsPerKm, distanceKm float64) int {
	total := math.Round(secondsPerKm * distanceKm)
	if math.IsNaN(total) || total < 0 {
		return 0
	}
	return int(total)
}

// CalculateRaceTime returns the H:MM:SS finish time at secondsPerKm over distanceKm
func CalculateRaceTime(secondsPerKm, distanceKm float64) string {
	return FormatRaceTime(RaceSeconds(secondsPerKm, distanceKm))
}

// FormatRaceTime formats seconds as H:MM:SS. Hours are not capped.
func FormatRaceTime(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// Times computes the finish time of every race in the catalogue
func (c Catalogue) Times(secondsPerKm float64) RaceTimes {
	times := make(RaceTimes, 0, len(c))
	for _, race := range c {
		seconds := RaceSeconds(secondsPerKm, race.Km)
		times = append(times, RaceTime{
			Race:    race,
			Seconds: seconds,
			Time:    FormatRaceTime(seconds),
		})
	}
	return times
}

// CalculateAllRaceTimes computes finish times over the default catalogue
func CalculateAllRaceTimes(secondsPerKm float64) RaceTimes {
	return Default().Times(secondsPerKm)
}
