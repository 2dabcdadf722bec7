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

// PaceModel is the pace converter screen model
type PaceModel struct {
	pace      *state.PaceState
	catalogue races.Catalogue
}

// NewPaceModel creates a new pace converter model
func NewPaceModel(pace *state.PaceState, cat races.Catalogue) PaceModel {
	return PaceModel{pace: pace, catalogue: cat}
}

// Init initializes the pace screen
func (m PaceModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m PaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			m.pace.AdjustSeconds(1)
		case "down", "j":
			m.pace.AdjustSeconds(-1)
		case "K", "shift+up":
			m.pace.AdjustSeconds(60)
		case "J", "shift+down":
			m.pace.AdjustSeconds(-60)
		case "u":
			m.pace.SetUnit(m.pace.Unit().Opposite())
		}
	}
	return m, nil
}

// View renders the pace screen
func (m PaceModel) View() string {
	snap := m.pace.Snapshot()

	var sections []string
	sections = append(sections, cardTitleStyle.Render("Pace Converter"))
	sections = append(sections, m.renderWheels(snap.Pace))
	sections = append(sections, "")
	sections = append(sections, "  "+RenderUnitToggle(snap.Unit.PaceLabel(),
		units.Kilometers.PaceLabel(), units.Miles.PaceLabel()))
	sections = append(sections, "")
	sections = append(sections, RenderMetric("Pace", FormatPaceWithUnit(snap.Pace, snap.Unit)))
	sections = append(sections, RenderMetric("Converted", FormatPaceWithUnit(snap.ConvertedPace, snap.ConvertedUnit)))
	sections = append(sections, "")
	sections = append(sections, m.renderRaceTable())

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m PaceModel) renderWheels(p units.Pace) string {
	minutes := RenderWheel(
		fmt.Sprintf("%2d", p.Minutes-1),
		fmt.Sprintf("%2d", p.Minutes),
		fmt.Sprintf("%2d", p.Minutes+1),
	)
	seconds := RenderWheel(
		fmt.Sprintf("%02d", wrap(p.Seconds-1, 60)),
		fmt.Sprintf("%02d", p.Seconds),
		fmt.Sprintf("%02d", wrap(p.Seconds+1, 60)),
	)
	sep := lipgloss.NewStyle().PaddingTop(1).Render(":")
	return lipgloss.JoinHorizontal(lipgloss.Top, "  ", minutes, sep, seconds)
}

func (m PaceModel) renderRaceTable() string {
	var lines []string
	lines = append(lines, sectionStyle.Render("Race Times"))
	lines = append(lines, tableHeaderStyle.Render(fmt.Sprintf("%-14s %10s", "Race", "Time")))
	for _, rt := range m.pace.RaceTimes(m.catalogue) {
		lines = append(lines, tableRowStyle.Render(fmt.Sprintf("%-14s %10s", rt.Race.Label, rt.Time)))
	}
	return strings.Join(lines, "\n")
}
