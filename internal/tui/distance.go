package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pacetool/internal/races"
	"pacetool/internal/state"
	"pacetool/internal/units"
)

// DistanceModel is the distance converter screen model
type DistanceModel struct {
	distance  *state.DistanceState
	catalogue races.Catalogue
}

// NewDistanceModel creates a new distance converter model
func NewDistanceModel(distance *state.DistanceState, cat races.Catalogue) DistanceModel {
	return DistanceModel{distance: distance, catalogue: cat}
}

// Init initializes the distance screen
func (m DistanceModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m DistanceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			m.distance.Adjust(0.01)
		case "down", "j":
			m.distance.Adjust(-0.01)
		case "K", "shift+up":
			m.distance.Adjust(1)
		case "J", "shift+down":
			m.distance.Adjust(-1)
		case "u":
			m.distance.SetUnit(m.distance.Unit().Opposite())
		}
	}
	return m, nil
}

// View renders the distance screen
func (m DistanceModel) View() string {
	snap := m.distance.Snapshot()

	var sections []string
	sections = append(sections, cardTitleStyle.Render("Distance Converter"))
	sections = append(sections, m.renderWheels(snap.Distance))
	sections = append(sections, "")
	sections = append(sections, "  "+RenderUnitToggle(snap.Unit.LongLabel(),
		units.Kilometers.LongLabel(), units.Miles.LongLabel()))
	sections = append(sections, "")
	sections = append(sections, RenderMetric("Distance", FormatDistanceWithUnit(snap.Distance, snap.Unit)))
	sections = append(sections, RenderMetric("Converted", FormatDistanceWithUnit(snap.ConvertedDistance, snap.ConvertedUnit)))
	sections = append(sections, "")
	sections = append(sections, m.renderDistanceTable())

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m DistanceModel) renderWheels(value float64) string {
	whole, hundredths := splitDistance(value)
	integer := RenderWheel(
		fmt.Sprintf("%3d", wrap(whole-1, 1000)),
		fmt.Sprintf("%3d", whole),
		fmt.Sprintf("%3d", wrap(whole+1, 1000)),
	)
	fraction := RenderWheel(
		fmt.Sprintf("%02d", wrap(hundredths-1, 100)),
		fmt.Sprintf("%02d", hundredths),
		fmt.Sprintf("%02d", wrap(hundredths+1, 100)),
	)
	sep := lipgloss.NewStyle().PaddingTop(1).Render(".")
	return lipgloss.JoinHorizontal(lipgloss.Top, "  ", integer, sep, fraction)
}

func (m DistanceModel) renderDistanceTable() string {
	var lines []string
	lines = append(lines, sectionStyle.Render("Race Distances"))
	for _, r := range m.catalogue {
		row := fmt.Sprintf("%-14s %6s km = %6s mi", r.Label, r.KmLabel(), r.MilesLabel())
		lines = append(lines, tableRowStyle.Render(row))
	}
	return strings.Join(lines, "\n")
}
