package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pacetool/internal/config"
	"pacetool/internal/report"
	"pacetool/internal/state"
	"pacetool/internal/store"
	"pacetool/internal/tui"
)

const usage = `Usage: pacetool [command]

Commands:
  (none)      start the interactive converter
  table       print race times for the saved pace
  distances   print race distances in kilometers and miles
  prefs       print the saved preferences
  reset       forget the saved pace and distance
  help        show this message
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	command := ""
	if len(args) > 0 {
		command = args[0]
	}
	if command == "help" || command == "-h" || command == "--help" {
		fmt.Fprint(out, usage)
		return nil
	}
	if command != "" && !isReportCommand(command) {
		fmt.Fprint(out, usage)
		return fmt.Errorf("unknown command %q", command)
	}

	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		configDir, dirErr := config.GetConfigDir()
		if dirErr != nil {
			return dirErr
		}
		if err := config.CreateExample(configDir); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		return fmt.Errorf("config validation failed: %w (edit %s)", err, filepath.Join(configDir, "config.json"))
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer logFile.Close()

	log.Info().
		Str("pace_unit", cfg.Pace.Unit).
		Str("distance_unit", cfg.Distance.Unit).
		Str("catalogue", cfg.Races.Catalogue).
		Msg("starting pacetool")

	// Open database
	db, err := store.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if command != "" {
		return runReport(command, out, db, cfg)
	}

	pace := state.NewPaceState(cfg.Pace.Minutes, cfg.Pace.Seconds, cfg.PaceUnit(), db)
	distance := state.NewDistanceState(cfg.Distance.Value, cfg.DistanceUnit(), db)

	// Launch TUI
	app := tui.NewApp(pace, distance, cfg.Catalogue())
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	log.Info().Msg("exiting pacetool")
	return nil
}

func isReportCommand(command string) bool {
	switch command {
	case "table", "distances", "prefs", "reset":
		return true
	}
	return false
}

// runReport runs a non-interactive command against the opened store
func runReport(command string, out io.Writer, db *store.Store, cfg *config.Config) error {
	switch command {
	case "table":
		pace := state.NewPaceState(cfg.Pace.Minutes, cfg.Pace.Seconds, cfg.PaceUnit(), db)
		report.RaceTimes(out, pace, cfg.Catalogue())
	case "distances":
		distance := state.NewDistanceState(cfg.Distance.Value, cfg.DistanceUnit(), db)
		report.Distances(out, distance, cfg.Catalogue())
	case "prefs":
		prefs, err := db.AllPreferences()
		if err != nil {
			return fmt.Errorf("listing preferences: %w", err)
		}
		report.Preferences(out, prefs)
	case "reset":
		if err := db.Reset(state.Keys()...); err != nil {
			return err
		}
		log.Info().Msg("saved pace and distance cleared")
		fmt.Fprintln(out, "Saved pace and distance cleared.")
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}

// setupLogging points the global logger at the log file, since the
// terminal belongs to the TUI
func setupLogging(cfg *config.Config) (*os.File, error) {
	path, err := cfg.LogPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	zerolog.SetGlobalLevel(cfg.LogLevel())
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}
