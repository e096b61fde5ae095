// ABOUTME: Standard filesystem paths for streethud settings, preferences, and logs
// ABOUTME: Resolves the per-user config directory (os.UserConfigDir) with a cwd fallback

package config

import (
	"os"
	"path/filepath"
)

const (
	appDirName = "streethud"

	// PreferencesFileName is the fixed name of the placement preferences file.
	PreferencesFileName = "LSRP Street Names HUD preferences.json"

	settingsFileName = "settings.yaml"
	logFileName      = "streethud.log"
	stateFileName    = "state.yaml"
)

// AppDir returns the per-user application directory (e.g. ~/.config/streethud).
func AppDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "."+appDirName)
	}
	return filepath.Join(base, appDirName)
}

// PreferencesFile returns the path to the persisted HUD placement.
func PreferencesFile() string {
	return filepath.Join(AppDir(), PreferencesFileName)
}

// SettingsFile returns the path to the user settings file.
func SettingsFile() string {
	return filepath.Join(AppDir(), settingsFileName)
}

// LogFile returns the path used for log output while the monitor is attached.
func LogFile() string {
	return filepath.Join(AppDir(), logFileName)
}

// StateFile returns the default path of the game-state snapshot file.
func StateFile() string {
	return filepath.Join(AppDir(), stateFileName)
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
