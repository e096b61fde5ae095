// ABOUTME: Glamour rendering of the hotkey table for the monitor help pane and -keys
// ABOUTME: Caches rendered output per width since the table never changes

package monitor

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/streethud-go/internal/hotkey"
)

// HelpRenderer renders the hotkey help with caching.
type HelpRenderer struct {
	mu    sync.Mutex
	cache map[int]string
}

// NewHelpRenderer creates a HelpRenderer with an empty cache.
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{cache: make(map[int]string)}
}

// Render returns the styled hotkey table wrapped at width columns.
func (r *HelpRenderer) Render(width int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if out, ok := r.cache[width]; ok {
		return out
	}
	out := RenderHotkeyHelp(width)
	r.cache[width] = out
	return out
}

// RenderHotkeyHelp renders the hotkey table. Falls back to the raw
// markdown if glamour fails.
func RenderHotkeyHelp(width int) string {
	md := hotkey.FormatMarkdown()
	if width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n ")
}
