// ABOUTME: Bubble Tea model showing live overlay status and forwarding hotkeys typed in the terminal
// ABOUTME: Read-only: it displays state and never edits settings itself

package monitor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/streethud-go/internal/hotkey"
	"github.com/mauromedda/streethud-go/internal/hud"
	"github.com/mauromedda/streethud-go/internal/textwidth"
)

// StatusMsg carries a new HUD status into the program.
type StatusMsg hud.Status

// Model is the monitor's tea.Model.
type Model struct {
	processName string
	deliver     func(hotkey.Chord) bool
	feed        *statusFeed
	help        *HelpRenderer

	status   hud.Status
	showHelp bool
	lastKey  string
	width    int
}

// NewModel creates a monitor model. deliver may be nil, in which case key
// chords are only echoed.
func NewModel(processName string, deliver func(hotkey.Chord) bool, initial hud.Status) Model {
	return Model{
		processName: processName,
		deliver:     deliver,
		help:        NewHelpRenderer(),
		status:      initial,
	}
}

// Init starts listening for status updates.
func (m Model) Init() tea.Cmd {
	if m.feed == nil {
		return nil
	}
	return m.feed.next()
}

// Update handles keys, resizes, and status updates.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case StatusMsg:
		m.status = hud.Status(msg)
		if m.feed != nil {
			return m, m.feed.next()
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	}

	chord, ok := ChordForKey(msg)
	if !ok {
		return m, nil
	}
	delivered := m.deliver != nil && m.deliver(chord)
	switch {
	case delivered:
		m.lastKey = fmt.Sprintf("%s (%s)", chord, hotkey.Lookup(chord))
	case hotkey.Lookup(chord) == hotkey.ActionNone:
		m.lastKey = fmt.Sprintf("%s (unbound)", chord)
	default:
		m.lastKey = fmt.Sprintf("%s (ignored, %s not running)", chord, m.processName)
	}
	return m, nil
}

// View renders the status box and, when toggled, the hotkey help.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(boxStyle.Render(m.statusLines()))
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.help.Render(m.contentWidth()))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("? keys · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 60
	}
	// Border and padding take four columns.
	return max(m.width-4, 10)
}

func (m Model) statusLines() string {
	st := m.status
	valueWidth := m.contentWidth() - 11

	var lines []string
	lines = append(lines, titleStyle.Render("streethud"))

	if st.PID != 0 {
		lines = append(lines, row("Game", onStyle.Render(fmt.Sprintf("%s (pid %d)", m.processName, st.PID))))
	} else {
		lines = append(lines, row("Game", offStyle.Render("waiting for "+m.processName)))
	}

	switch {
	case !st.HasLabel:
		lines = append(lines, row("Overlay", offStyle.Render("not shown yet")))
	case st.Visible:
		lines = append(lines, row("Overlay", onStyle.Render(textwidth.Truncate(st.Text, valueWidth))))
	default:
		lines = append(lines, row("Overlay", offStyle.Render("hidden")))
	}

	lines = append(lines, row("Placement", fmt.Sprintf("(%d, %d) size %d", st.X, st.Y, st.FontSize)))
	lines = append(lines, row("Flags", flag("enabled", st.Enabled)+"  "+flag("vehicle only", st.VehicleOnly)))

	if st.Editing {
		lines = append(lines, row("Edit mode", editStyle.Render("ON, alt+m to save")))
	} else {
		lines = append(lines, row("Edit mode", offStyle.Render("off")))
	}
	if st.SaveError != "" {
		lines = append(lines, row("Save", errStyle.Render(textwidth.Truncate(st.SaveError, valueWidth))))
	}
	if m.lastKey != "" {
		lines = append(lines, row("Last key", textwidth.Truncate(m.lastKey, valueWidth)))
	}
	return strings.Join(lines, "\n")
}

func row(label, value string) string {
	return labelStyle.Render(label) + value
}

func flag(name string, on bool) string {
	if on {
		return onStyle.Render("● " + name)
	}
	return offStyle.Render("○ " + name)
}
