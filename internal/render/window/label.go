// ABOUTME: Label drawn by the overlay window; mutated by the sampler, read by Draw
// ABOUTME: All fields are guarded so the two goroutines never race

package window

import (
	"image/color"
	"sync"

	"github.com/mauromedda/streethud-go/internal/hud"
)

// Label is a text element on an overlay.
type Label struct {
	overlay labelOwner

	mu        sync.Mutex
	x, y      int
	size      int
	text      string
	color     color.Color
	visible   bool
	destroyed bool
}

type labelOwner interface {
	remove(l *Label)
}

var _ hud.Label = (*Label)(nil)

func (l *Label) Position() (int, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.x, l.y
}

func (l *Label) SetPosition(x, y int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.x, l.y = x, y
}

func (l *Label) FontSize() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.size
}

func (l *Label) SetFontSize(size int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.size = size
}

func (l *Label) Text() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.text
}

func (l *Label) SetText(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.text = s
}

func (l *Label) Visible() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.visible
}

func (l *Label) SetVisible(v bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.visible = v
}

// Destroy detaches the label from its overlay.
func (l *Label) Destroy() {
	l.mu.Lock()
	if l.destroyed {
		l.mu.Unlock()
		return
	}
	l.destroyed = true
	l.mu.Unlock()
	l.overlay.remove(l)
}

type labelState struct {
	x, y  int
	size  int
	text  string
	color color.Color
}

// state returns what Draw needs, or false when nothing should be drawn.
func (l *Label) state() (labelState, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.visible || l.destroyed || l.text == "" || l.size <= 0 {
		return labelState{}, false
	}
	return labelState{x: l.x, y: l.y, size: l.size, text: l.text, color: l.color}, true
}
