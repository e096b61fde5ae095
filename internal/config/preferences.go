// ABOUTME: Persisted HUD placement {x, y, font size}; load never fails, save overwrites
// ABOUTME: Absent, unreadable, or malformed files and missing fields fall back to defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mailru/easyjson"
)

// Default placement used when nothing usable is on disk.
const (
	DefaultHudX        = 10
	DefaultHudY        = 500
	DefaultHudFontSize = 12
)

// HudPreferences is the user's overlay placement.
type HudPreferences struct {
	X        int `json:"x"`
	Y        int `json:"y"`
	FontSize int `json:"font_size"`
}

// DefaultPreferences returns the built-in placement.
func DefaultPreferences() HudPreferences {
	return HudPreferences{X: DefaultHudX, Y: DefaultHudY, FontSize: DefaultHudFontSize}
}

// LoadPreferences reads the placement from path. It never returns an error:
// any failure yields DefaultPreferences, and fields missing from the file keep
// their default values.
func LoadPreferences(path string) HudPreferences {
	p := DefaultPreferences()

	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}

	decoded := p
	if err := easyjson.Unmarshal(data, &decoded); err != nil {
		return p
	}
	if decoded.FontSize <= 0 {
		decoded.FontSize = DefaultHudFontSize
	}
	return decoded
}

// SavePreferences writes p to path, replacing any existing file.
func SavePreferences(p HudPreferences, path string) error {
	data, err := easyjson.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("creating preferences dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	return nil
}

// PreferencesStore binds LoadPreferences/SavePreferences to a fixed path.
type PreferencesStore struct {
	Path string
}

// Load reads the preferences at s.Path.
func (s PreferencesStore) Load() HudPreferences {
	return LoadPreferences(s.Path)
}

// Save writes p to s.Path.
func (s PreferencesStore) Save(p HudPreferences) error {
	return SavePreferences(p, s.Path)
}
