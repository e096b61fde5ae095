// ABOUTME: YAML user settings: visibility flags, target process, tick cadence, label style
// ABOUTME: Missing file or fields fall back to defaults; bad durations are reported as errors

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Default setting values.
const (
	DefaultProcessName   = "gta_sa"
	DefaultTickInterval  = 500 * time.Millisecond
	DefaultWatchInterval = time.Second
	DefaultFont          = "Arial"
	DefaultColor         = "dimgray"
	DefaultLogLevel      = "info"
)

// Settings holds the user-editable overlay configuration.
type Settings struct {
	Enabled       bool          `yaml:"enabled"`
	VehicleOnly   bool          `yaml:"vehicle_only"`
	ProcessName   string        `yaml:"process_name"`
	TickInterval  time.Duration `yaml:"-"`
	WatchInterval time.Duration `yaml:"-"`
	Font          string        `yaml:"font"`
	Color         string        `yaml:"color"`
	LogLevel      string        `yaml:"log_level"`
	StateFile     string        `yaml:"state_file"`
}

// rawSettings mirrors the file layout. Pointers distinguish "absent" from zero values.
type rawSettings struct {
	Enabled       *bool  `yaml:"enabled"`
	VehicleOnly   *bool  `yaml:"vehicle_only"`
	ProcessName   string `yaml:"process_name"`
	TickInterval  string `yaml:"tick_interval"`
	WatchInterval string `yaml:"watch_interval"`
	Font          string `yaml:"font"`
	Color         string `yaml:"color"`
	LogLevel      string `yaml:"log_level"`
	StateFile     string `yaml:"state_file"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Enabled:       true,
		VehicleOnly:   false,
		ProcessName:   DefaultProcessName,
		TickInterval:  DefaultTickInterval,
		WatchInterval: DefaultWatchInterval,
		Font:          DefaultFont,
		Color:         DefaultColor,
		LogLevel:      DefaultLogLevel,
		StateFile:     StateFile(),
	}
}

// LoadSettings reads settings from path. A missing file yields defaults and no error.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	return ParseSettings(data)
}

// ParseSettings decodes YAML settings on top of the defaults.
func ParseSettings(data []byte) (*Settings, error) {
	var raw rawSettings
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}

	s := DefaultSettings()
	if raw.Enabled != nil {
		s.Enabled = *raw.Enabled
	}
	if raw.VehicleOnly != nil {
		s.VehicleOnly = *raw.VehicleOnly
	}
	if raw.ProcessName != "" {
		s.ProcessName = raw.ProcessName
	}
	if raw.Font != "" {
		s.Font = raw.Font
	}
	if raw.Color != "" {
		s.Color = raw.Color
	}
	if raw.LogLevel != "" {
		s.LogLevel = raw.LogLevel
	}
	if raw.StateFile != "" {
		s.StateFile = raw.StateFile
	}

	var err error
	if s.TickInterval, err = parseInterval("tick_interval", raw.TickInterval, DefaultTickInterval); err != nil {
		return nil, err
	}
	if s.WatchInterval, err = parseInterval("watch_interval", raw.WatchInterval, DefaultWatchInterval); err != nil {
		return nil, err
	}

	return s, nil
}

func parseInterval(field, v string, def time.Duration) (time.Duration, error) {
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", field, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("parsing %s: must be positive, got %s", field, v)
	}
	return d, nil
}

// Save writes the settings as YAML, creating the parent directory.
func (s *Settings) Save(path string) error {
	raw := rawSettings{
		Enabled:       &s.Enabled,
		VehicleOnly:   &s.VehicleOnly,
		ProcessName:   s.ProcessName,
		TickInterval:  s.TickInterval.String(),
		WatchInterval: s.WatchInterval.String(),
		Font:          s.Font,
		Color:         s.Color,
		LogLevel:      s.LogLevel,
		StateFile:     s.StateFile,
	}
	data, err := yaml.Marshal(&raw)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
