package tui

import (
	"pacetool/internal/races"
	"pacetool/internal/state"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenPace Screen = iota
	ScreenDistance
	ScreenRaces
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	pace      PaceModel
	distance  DistanceModel
	raceTimes RaceTimesModel
	help      HelpModel

	// State
	paceState     *state.PaceState
	distanceState *state.DistanceState
	catalogue     races.Catalogue

	// Window dimensions
	width  int
	height int

	// Status message
	status string
}

// NewApp creates a new App over the given state stores
func NewApp(pace *state.PaceState, distance *state.DistanceState, cat races.Catalogue) *App {
	if len(cat) == 0 {
		cat = races.Default()
	}
	return &App{
		screen:        ScreenPace,
		paceState:     pace,
		distanceState: distance,
		catalogue:     cat,
		pace:          NewPaceModel(pace, cat),
		distance:      NewDistanceModel(distance, cat),
		raceTimes:     NewRaceTimesModel(pace, cat, 0, 0),
		help:          NewHelpModel(),
	}
}

// Screen returns the active screen
func (a *App) Screen() Screen {
	return a.screen
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.pace.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenPace
			return a, nil
		case "2":
			a.screen = ScreenDistance
			return a, nil
		case "3":
			a.screen = ScreenRaces
			a.raceTimes = a.raceTimes.Refresh()
			return a, nil
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			if a.screen == ScreenHelp {
				a.screen = a.prevScreen
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// The race times viewport sizes itself even while hidden
		m, cmd := a.raceTimes.Update(msg)
		a.raceTimes = m.(RaceTimesModel)
		return a, cmd
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenPace:
		var m tea.Model
		m, cmd = a.pace.Update(msg)
		a.pace = m.(PaceModel)
	case ScreenDistance:
		var m tea.Model
		m, cmd = a.distance.Update(msg)
		a.distance = m.(DistanceModel)
	case ScreenRaces:
		var m tea.Model
		m, cmd = a.raceTimes.Update(msg)
		a.raceTimes = m.(RaceTimesModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	a.updateStatus()
	return a, cmd
}

// updateStatus reports the latest failed write in the footer
func (a *App) updateStatus() {
	if err := a.paceState.SaveErr(); err != nil {
		a.SetStatus("Not saved: " + err.Error())
		return
	}
	if err := a.distanceState.SaveErr(); err != nil {
		a.SetStatus("Not saved: " + err.Error())
		return
	}
	a.SetStatus("")
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenPace:
		content = a.pace.View()
	case ScreenDistance:
		content = a.distance.View()
	case ScreenRaces:
		content = a.raceTimes.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Pace Tool")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Pace", ScreenPace},
		{"2", "Distance", ScreenDistance},
		{"3", "Race Times", ScreenRaces},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status != "" {
		return statusStyle.Render(a.status)
	}
	return statusStyle.Render(a.summary())
}

// summary shows both canonical values in the footer
func (a *App) summary() string {
	p := a.paceState.Snapshot()
	d := a.distanceState.Snapshot()
	return FormatPaceWithUnit(p.Pace, p.Unit) + " · " + FormatDistanceWithUnit(d.Distance, d.Unit)
}

// SetStatus sets the footer status message
func (a *App) SetStatus(status string) {
	a.status = status
}
