// ABOUTME: Windowless Label backend that keeps overlay state in memory and logs changes
// ABOUTME: Used with -headless and on hosts without a display; Layer lists live labels

package headless

import (
	"fmt"
	"sync"

	"github.com/zyedidia/generic/mapset"

	"github.com/mauromedda/streethud-go/internal/hud"
	"github.com/mauromedda/streethud-go/internal/log"
)

// Layer owns the labels created through it.
type Layer struct {
	mu     sync.Mutex
	live   mapset.Set[*Label]
	nextID int
}

// NewLayer creates an empty layer.
func NewLayer() *Layer {
	return &Layer{live: mapset.New[*Label]()}
}

// NewLabel satisfies hud.NewLabelFunc.
func (ly *Layer) NewLabel(spec hud.LabelSpec) hud.Label {
	ly.mu.Lock()
	defer ly.mu.Unlock()

	ly.nextID++
	l := &Label{
		id:    ly.nextID,
		layer: ly,
		font:  spec.Font,
		x:     spec.X,
		y:     spec.Y,
		size:  spec.Size,
		text:  spec.Text,
	}
	ly.live.Put(l)
	log.Debug("headless: label %d created at (%d,%d) %s %dpt", l.id, l.x, l.y, l.font, l.size)
	return l
}

// Len returns the number of undestroyed labels.
func (ly *Layer) Len() int {
	ly.mu.Lock()
	defer ly.mu.Unlock()
	return ly.live.Size()
}

func (ly *Layer) remove(l *Label) {
	ly.mu.Lock()
	defer ly.mu.Unlock()
	ly.live.Remove(l)
}

// Label is an in-memory overlay label.
type Label struct {
	id    int
	layer *Layer
	font  string

	mu        sync.Mutex
	x, y      int
	size      int
	text      string
	visible   bool
	destroyed bool
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

// SetText logs the new text when it differs and the label is visible.
func (l *Label) SetText(text string) {
	l.mu.Lock()
	changed := text != l.text
	l.text = text
	visible := l.visible
	l.mu.Unlock()

	if changed && visible {
		log.Info("headless: %s", text)
	}
}

func (l *Label) Visible() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.visible
}

func (l *Label) SetVisible(v bool) {
	l.mu.Lock()
	l.visible = v
	l.mu.Unlock()
}

// Destroy removes the label from its layer. Repeated calls are no-ops.
func (l *Label) Destroy() {
	l.mu.Lock()
	if l.destroyed {
		l.mu.Unlock()
		return
	}
	l.destroyed = true
	l.mu.Unlock()

	l.layer.remove(l)
	log.Debug("headless: label %d destroyed", l.id)
}

// String describes the label for logs.
func (l *Label) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fmt.Sprintf("label %d %q at (%d,%d) %dpt visible=%v", l.id, l.text, l.x, l.y, l.size, l.visible)
}
