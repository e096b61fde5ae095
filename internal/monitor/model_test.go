// ABOUTME: Tests for the monitor model: key routing, help toggle, status rendering
// ABOUTME: Drives Update directly with tea messages; no program is started

package monitor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/streethud-go/internal/hotkey"
	"github.com/mauromedda/streethud-go/internal/hud"
)

// Compile-time check: Model must satisfy tea.Model.
var _ tea.Model = Model{}

func runes(s string, alt bool) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: alt}
}

func TestChordForKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want string
		ok   bool
	}{
		{"alt+m", runes("m", true), "alt+m", true},
		{"plus", runes("+", false), "numpad_add", true},
		{"minus", runes("-", false), "numpad_subtract", true},
		{"digit", runes("8", false), "numpad8", true},
		{"alt digit", runes("4", true), "alt+numpad4", true},
		{"unmapped rune", runes("x", false), "", false},
		{"multi rune paste", runes("22", false), "", false},
		{"special key", tea.KeyMsg{Type: tea.KeyEnter}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, ok := ChordForKey(tt.msg)
			if ok != tt.ok {
				t.Fatalf("ok = %v; want %v", ok, tt.ok)
			}
			if ok && c.String() != tt.want {
				t.Errorf("chord = %q; want %q", c, tt.want)
			}
		})
	}
}

func TestModel_DeliversChords(t *testing.T) {
	t.Parallel()

	var got []hotkey.Chord
	deliver := func(c hotkey.Chord) bool {
		got = append(got, c)
		return true
	}
	m := NewModel("gta_sa", deliver, hud.Status{})

	next, _ := m.Update(runes("m", true))
	next, _ = next.Update(runes("2", false))

	if len(got) != 2 {
		t.Fatalf("delivered %d chords; want 2", len(got))
	}
	if hotkey.Lookup(got[0]) != hotkey.ActionToggleEditMode || hotkey.Lookup(got[1]) != hotkey.ActionMoveDown {
		t.Errorf("delivered %v", got)
	}
	if v := next.View(); !strings.Contains(v, "Move down") {
		t.Errorf("view missing last key:\n%s", v)
	}
}

func TestModel_UndeliveredChordIsReported(t *testing.T) {
	t.Parallel()

	m := NewModel("gta_sa", func(hotkey.Chord) bool { return false }, hud.Status{})
	next, _ := m.Update(runes("+", false))
	if v := next.View(); !strings.Contains(v, "gta_sa not running") {
		t.Errorf("view missing ignored notice:\n%s", v)
	}
}

func TestModel_QuitKeys(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{runes("q", false), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := NewModel("gta_sa", nil, hud.Status{}).Update(msg)
		if cmd == nil {
			t.Fatalf("%s: no command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", msg)
		}
	}
}

func TestModel_HelpToggle(t *testing.T) {
	t.Parallel()

	m := NewModel("gta_sa", nil, hud.Status{})
	next, _ := m.Update(runes("?", false))
	if !next.(Model).showHelp {
		t.Fatal("help not shown after ?")
	}
	if v := next.View(); !strings.Contains(v, "Toggle edit mode") {
		t.Errorf("help missing bindings:\n%s", v)
	}
	next, _ = next.Update(runes("?", false))
	if next.(Model).showHelp {
		t.Error("help still shown after second ?")
	}
}

func TestModel_StatusView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status hud.Status
		want   []string
	}{
		{
			name:   "waiting",
			status: hud.Status{Enabled: true, X: 10, Y: 500, FontSize: 12},
			want:   []string{"waiting for gta_sa", "not shown yet", "(10, 500) size 12", "off"},
		},
		{
			name:   "visible",
			status: hud.Status{PID: 42, HasLabel: true, Visible: true, Text: "|N| Rodeo", Enabled: true},
			want:   []string{"gta_sa (pid 42)", "|N| Rodeo"},
		},
		{
			name:   "hidden while editing",
			status: hud.Status{PID: 42, HasLabel: true, Editing: true},
			want:   []string{"hidden", "ON, alt+m to save"},
		},
		{
			name:   "save error",
			status: hud.Status{SaveError: "disk full"},
			want:   []string{"disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewModel("gta_sa", nil, hud.Status{})
			next, _ := m.Update(StatusMsg(tt.status))
			v := next.View()
			for _, w := range tt.want {
				if !strings.Contains(v, w) {
					t.Errorf("view missing %q:\n%s", w, v)
				}
			}
		})
	}
}

func TestModel_TruncatesLongZone(t *testing.T) {
	t.Parallel()

	m := NewModel("gta_sa", nil, hud.Status{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	next, _ = next.Update(StatusMsg(hud.Status{HasLabel: true, Visible: true, Text: "|N| Los Santos International Airport"}))

	if v := next.View(); !strings.Contains(v, "…") {
		t.Errorf("long text not truncated:\n%s", v)
	}
}

func TestStatusFeed_LatestWins(t *testing.T) {
	t.Parallel()

	f := newStatusFeed()
	f.push(hud.Status{PID: 1})
	f.push(hud.Status{PID: 2})
	f.push(hud.Status{PID: 3})

	msg := f.next()()
	if st, ok := msg.(StatusMsg); !ok || st.PID != 3 {
		t.Errorf("next = %#v; want PID 3", msg)
	}
}
