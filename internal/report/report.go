// Package report renders pace and distance tables for non-interactive use.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"pacetool/internal/races"
	"pacetool/internal/state"
	"pacetool/internal/units"
)

// RaceTimes writes the finish time for every race in cat at the current pace
func RaceTimes(w io.Writer, pace *state.PaceState, cat races.Catalogue) string {
	snap := pace.Snapshot()

	t := newTable(w)
	t.SetTitle(fmt.Sprintf("Pace %s %s (%s %s)",
		snap.Pace, snap.Unit.PaceLabel(), snap.ConvertedPace, snap.ConvertedUnit.PaceLabel()))
	t.AppendHeader(table.Row{"Race", "km", "mi", "Time"})
	for _, rt := range pace.RaceTimes(cat) {
		t.AppendRow(table.Row{rt.Race.Label, rt.Race.KmLabel(), rt.Race.MilesLabel(), rt.Time})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	return t.Render()
}

// Distances writes the race distance catalogue in both units, followed by
// the current distance
func Distances(w io.Writer, distance *state.DistanceState, cat races.Catalogue) string {
	t := newTable(w)
	t.AppendHeader(table.Row{"Race", "km", "mi"})
	for _, r := range cat {
		t.AppendRow(table.Row{r.Label, r.KmLabel(), r.MilesLabel()})
	}

	if distance != nil {
		snap := distance.Snapshot()
		km, mi := snap.Distance, snap.ConvertedDistance
		if snap.Unit == units.Miles {
			km, mi = mi, km
		}
		t.AppendSeparator()
		t.AppendFooter(table.Row{
			"Current (" + snap.Unit.Label() + ")",
			fmt.Sprintf("%.2f", km),
			fmt.Sprintf("%.2f", mi),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	return t.Render()
}

// Preferences writes the stored preferences sorted by key
func Preferences(w io.Writer, prefs map[string]string) string {
	keys := make([]string, 0, len(prefs))
	for k := range prefs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := newTable(w)
	t.AppendHeader(table.Row{"Key", "Value"})
	for _, k := range keys {
		t.AppendRow(table.Row{k, prefs[k]})
	}
	if len(keys) == 0 {
		t.AppendRow(table.Row{"(none)", ""})
	}

	return t.Render()
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	if w != nil {
		t.SetOutputMirror(w)
	}
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault
	t.SetStyle(style)
	return t
}
