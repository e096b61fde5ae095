// ABOUTME: Modifier sets, virtual key codes, and Chord parsing/formatting for hotkeys
// ABOUTME: Key codes are Windows virtual-key values as delivered by keyboard hooks

package hotkey

import (
	"fmt"
	"strings"
)

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModNone Modifier = 0
	ModAlt  Modifier = 1 << (iota - 1)
	ModCtrl
	ModShift
)

// KeyCode is a virtual-key code.
type KeyCode uint16

const (
	KeyM              KeyCode = 0x4D
	KeyNumpad2        KeyCode = 0x62
	KeyNumpad4        KeyCode = 0x64
	KeyNumpad6        KeyCode = 0x66
	KeyNumpad8        KeyCode = 0x68
	KeyNumpadAdd      KeyCode = 0x6B
	KeyNumpadSubtract KeyCode = 0x6D
)

var keyNames = map[KeyCode]string{
	KeyM:              "m",
	KeyNumpad2:        "numpad2",
	KeyNumpad4:        "numpad4",
	KeyNumpad6:        "numpad6",
	KeyNumpad8:        "numpad8",
	KeyNumpadAdd:      "numpad_add",
	KeyNumpadSubtract: "numpad_subtract",
}

var keysByName = func() map[string]KeyCode {
	m := make(map[string]KeyCode, len(keyNames))
	for k, n := range keyNames {
		m[n] = k
	}
	return m
}()

// String returns the config name of the key, or its hex code when unnamed.
func (k KeyCode) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return fmt.Sprintf("vk_0x%02x", uint16(k))
}

// Chord is a key pressed together with a modifier set.
type Chord struct {
	Mod Modifier
	Key KeyCode
}

// String renders the chord in "ctrl+alt+shift+key" order.
func (c Chord) String() string {
	var parts []string
	if c.Mod&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if c.Mod&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if c.Mod&ModShift != 0 {
		parts = append(parts, "shift")
	}
	parts = append(parts, c.Key.String())
	return strings.Join(parts, "+")
}

// ParseChord parses strings such as "alt+numpad2" or "numpad_add".
func ParseChord(s string) (Chord, error) {
	fields := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	var c Chord
	for i, f := range fields {
		if i == len(fields)-1 {
			k, ok := keysByName[f]
			if !ok {
				return Chord{}, fmt.Errorf("unknown key %q in chord %q", f, s)
			}
			c.Key = k
			break
		}
		switch f {
		case "alt":
			c.Mod |= ModAlt
		case "ctrl":
			c.Mod |= ModCtrl
		case "shift":
			c.Mod |= ModShift
		default:
			return Chord{}, fmt.Errorf("unknown modifier %q in chord %q", f, s)
		}
	}
	return c, nil
}
