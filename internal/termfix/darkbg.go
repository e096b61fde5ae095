// ABOUTME: Fixes the monitor palette to dark-background colors before bubbletea initializes
// ABOUTME: Blank-import this ahead of internal/monitor so no OSC color query reaches the terminal

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// Setting the background explicitly skips lipgloss's one-time OSC 11
	// probe, which would otherwise race with bubbletea's input reader and
	// leak a reply into the key stream. This package must not import
	// bubbletea so its init runs first.
	lipgloss.SetHasDarkBackground(true)
}
