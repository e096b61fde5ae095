// ABOUTME: Maps terminal key presses to overlay hotkey chords
// ABOUTME: Terminals cannot tell numpad digits apart, so plain digits stand in for them

package monitor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/streethud-go/internal/hotkey"
)

var runeKeys = map[rune]hotkey.KeyCode{
	'm': hotkey.KeyM,
	'M': hotkey.KeyM,
	'+': hotkey.KeyNumpadAdd,
	'-': hotkey.KeyNumpadSubtract,
	'2': hotkey.KeyNumpad2,
	'4': hotkey.KeyNumpad4,
	'6': hotkey.KeyNumpad6,
	'8': hotkey.KeyNumpad8,
}

// ChordForKey translates a key press into a hotkey chord. Alt is the only
// modifier a terminal reports reliably for printable keys.
func ChordForKey(msg tea.KeyMsg) (hotkey.Chord, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return hotkey.Chord{}, false
	}
	key, ok := runeKeys[msg.Runes[0]]
	if !ok {
		return hotkey.Chord{}, false
	}
	mod := hotkey.ModNone
	if msg.Alt {
		mod = hotkey.ModAlt
	}
	return hotkey.Chord{Mod: mod, Key: key}, true
}
