package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"pacetool/internal/races"
	"pacetool/internal/units"
)

// Config represents the application configuration
type Config struct {
	Pace     PaceConfig     `json:"pace" mapstructure:"pace"`
	Distance DistanceConfig `json:"distance" mapstructure:"distance"`
	Races    RacesConfig    `json:"races" mapstructure:"races"`
	Storage  StorageConfig  `json:"storage" mapstructure:"storage"`
	Log      LogConfig      `json:"log" mapstructure:"log"`
}

// PaceConfig holds the pace shown when nothing is persisted yet
type PaceConfig struct {
	Minutes int    `json:"minutes" mapstructure:"minutes"`
	Seconds int    `json:"seconds" mapstructure:"seconds"`
	Unit    string `json:"unit" mapstructure:"unit"`
}

// DistanceConfig holds the distance shown when nothing is persisted yet
type DistanceConfig struct {
	Value float64 `json:"value" mapstructure:"value"`
	Unit  string  `json:"unit" mapstructure:"unit"`
}

// RacesConfig selects the race catalogue
type RacesConfig struct {
	Catalogue string `json:"catalogue" mapstructure:"catalogue"` // standard, extended
}

// StorageConfig holds persistence settings
type StorageConfig struct {
	Path string `json:"path" mapstructure:"path"` // empty uses ~/.pacetool/data.db
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `json:"level" mapstructure:"level"` // debug, info, warn, error
	File  string `json:"file" mapstructure:"file"`   // empty uses ~/.pacetool/pacetool.log
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// EnvPrefix is the prefix for environment overrides, e.g. PACETOOL_PACE_UNIT
const EnvPrefix = "PACETOOL"

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Pace: PaceConfig{
			Minutes: 10,
			Seconds: 0,
			Unit:    "mi",
		},
		Distance: DistanceConfig{
			Value: 5.0,
			Unit:  "km",
		},
		Races: RacesConfig{
			Catalogue: races.CatalogueExtended,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration from ~/.pacetool/config.json.
// Missing values fall back to defaults and PACETOOL_* variables override
// the file. ErrNoConfig is returned together with a usable default config
// when the file doesn't exist.
func Load() (*Config, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(dir)
}

// LoadFrom reads config.json from dir
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(dir)

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var readErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		readErr = ErrNoConfig
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, readErr
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("pace.minutes", defaults.Pace.Minutes)
	v.SetDefault("pace.seconds", defaults.Pace.Seconds)
	v.SetDefault("pace.unit", defaults.Pace.Unit)
	v.SetDefault("distance.value", defaults.Distance.Value)
	v.SetDefault("distance.unit", defaults.Distance.Unit)
	v.SetDefault("races.catalogue", defaults.Races.Catalogue)
	v.SetDefault("storage.path", defaults.Storage.Path)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)
}

// Save writes the configuration to dir/config.json
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.json"), data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file in dir if none exists
func CreateExample(dir string) error {
	// Check if config already exists
	if _, err := os.Stat(filepath.Join(dir, "config.json")); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return Save(dir, &example)
}

// Validate checks that configured values are usable
func (c *Config) Validate() error {
	if _, ok := units.ParseUnit(c.Pace.Unit); !ok {
		return fmt.Errorf("pace.unit must be \"km\" or \"mi\", got %q", c.Pace.Unit)
	}
	if _, ok := units.ParseUnit(c.Distance.Unit); !ok {
		return fmt.Errorf("distance.unit must be \"km\" or \"mi\", got %q", c.Distance.Unit)
	}

	total := c.Pace.Minutes*60 + c.Pace.Seconds
	if total < units.MinPaceSeconds || total > units.MaxPaceSeconds {
		return fmt.Errorf("pace %d:%02d must be between 2:00 and 20:00", c.Pace.Minutes, c.Pace.Seconds)
	}
	if c.Distance.Value < units.MinDistance || c.Distance.Value > units.MaxDistance {
		return fmt.Errorf("distance.value must be between %v and %v, got %v", units.MinDistance, units.MaxDistance, c.Distance.Value)
	}

	if _, ok := races.CatalogueByName(c.Races.Catalogue); !ok {
		return fmt.Errorf("races.catalogue must be %q or %q, got %q", races.CatalogueStandard, races.CatalogueExtended, c.Races.Catalogue)
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// PaceUnit returns the configured pace unit, km if invalid
func (c *Config) PaceUnit() units.Unit {
	if u, ok := units.ParseUnit(c.Pace.Unit); ok {
		return u
	}
	return units.Kilometers
}

// DistanceUnit returns the configured distance unit, km if invalid
func (c *Config) DistanceUnit() units.Unit {
	if u, ok := units.ParseUnit(c.Distance.Unit); ok {
		return u
	}
	return units.Kilometers
}

// Catalogue returns the configured race catalogue, the default if unknown
func (c *Config) Catalogue() races.Catalogue {
	if cat, ok := races.CatalogueByName(c.Races.Catalogue); ok {
		return cat
	}
	return races.Default()
}

// LogLevel returns the configured zerolog level, info if invalid
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// LogPath returns the configured log file, defaulting to the config dir
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pacetool.log"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".pacetool"), nil
}
