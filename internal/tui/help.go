package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pacetool/internal/units"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Keyboard Shortcuts"))

	sections = append(sections, m.renderSection("Navigation", []keyHelp{
		{"1", "Pace converter"},
		{"2", "Distance converter"},
		{"3", "Race times"},
		{"?", "Help (this screen)"},
		{"esc", "Back / close help"},
		{"q", "Quit"},
	}))

	sections = append(sections, m.renderSection("Pace Converter", []keyHelp{
		{"k / up", "Slower by one second"},
		{"j / down", "Faster by one second"},
		{"K / J", "One minute slower / faster"},
		{"u", "Toggle min/km and min/mi"},
	}))

	sections = append(sections, m.renderSection("Distance Converter", []keyHelp{
		{"k / up", "Add 0.01"},
		{"j / down", "Subtract 0.01"},
		{"K / J", "Add / subtract 1.00"},
		{"u", "Toggle kilometers and miles"},
	}))

	sections = append(sections, m.renderSection("Race Times", []keyHelp{
		{"j / k", "Scroll"},
	}))

	sections = append(sections, m.renderNotes())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderNotes() string {
	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)

	lines := []string{
		"",
		sectionStyle.Render("Notes"),
		mutedStyle.Render("  Pace is kept between 2:00 and 20:00 in the displayed unit."),
		mutedStyle.Render("  Distance is kept between 0.01 and 999.99."),
		mutedStyle.Render("  Toggling units never changes the underlying value."),
		mutedStyle.Render("  1 " + units.Miles.Label() + " = 1.60934 " + units.Kilometers.Label()),
	}

	return strings.Join(lines, "\n")
}
