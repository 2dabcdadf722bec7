package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"pacetool/internal/races"
	"pacetool/internal/state"
)

// RaceTimesModel is the race times screen model
type RaceTimesModel struct {
	pace      *state.PaceState
	catalogue races.Catalogue
	viewport  viewport.Model
	width     int
	height    int
	ready     bool
}

// NewRaceTimesModel creates a new race times model
func NewRaceTimesModel(pace *state.PaceState, cat races.Catalogue, width, height int) RaceTimesModel {
	m := RaceTimesModel{
		pace:      pace,
		catalogue: cat,
		width:     width,
		height:    height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.viewport.SetContent(m.renderContent())
		m.ready = true
	}

	return m
}

// Init initializes the race times screen
func (m RaceTimesModel) Init() tea.Cmd {
	return nil
}

// Refresh re-renders the content for the current pace
func (m RaceTimesModel) Refresh() RaceTimesModel {
	if m.ready {
		m.viewport.SetContent(m.renderContent())
	}
	return m
}

// Update handles messages
func (m RaceTimesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.renderContent())
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the race times screen
func (m RaceTimesModel) View() string {
	if !m.ready {
		return m.renderContent()
	}

	footer := statusStyle.Render("  j/k or arrows: scroll")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m RaceTimesModel) renderContent() string {
	snap := m.pace.Snapshot()
	times := m.pace.RaceTimes(m.catalogue)

	var sections []string
	sections = append(sections, "")
	sections = append(sections, cardTitleStyle.Render("Race Times"))
	sections = append(sections, RenderMetric("At pace", FormatPaceWithUnit(snap.Pace, snap.Unit)))
	sections = append(sections, RenderMetric("Equivalent", FormatPaceWithUnit(snap.ConvertedPace, snap.ConvertedUnit)))
	sections = append(sections, "")
	sections = append(sections, m.renderTable(times))
	sections = append(sections, m.renderChart(times))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m RaceTimesModel) renderTable(times races.RaceTimes) string {
	var lines []string

	divider := strings.Repeat("─", 48)
	lines = append(lines, sectionStyle.Render("── Finish Times "+divider[:48-16]))
	lines = append(lines, tableHeaderStyle.Render(fmt.Sprintf("%-14s %8s %8s %10s", "Race", "km", "mi", "Time")))

	for _, rt := range times {
		lines = append(lines, tableRowStyle.Render(fmt.Sprintf("%-14s %8s %8s %10s",
			rt.Race.Label, rt.Race.KmLabel(), rt.Race.MilesLabel(), rt.Time)))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m RaceTimesModel) renderChart(times races.RaceTimes) string {
	if len(times) < 2 {
		return ""
	}

	data := make([]float64, len(times))
	for i, rt := range times {
		data[i] = float64(rt.Seconds) / 60
	}

	width := 48
	if m.width > 20 && m.width-10 < width {
		width = m.width - 10
	}

	chart := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(width),
		asciigraph.Caption("finish time (min) by race"),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("── Finish Minutes"),
		lipgloss.NewStyle().Foreground(secondaryColor).Render(chart),
	)
}
