// ABOUTME: Stand-in overlay for builds without a graphics stack (go build -tags noebiten)
// ABOUTME: Keeps labels in memory and waits for cancellation instead of opening a window

//go:build noebiten

package window

import (
	"context"
	"sync"

	"github.com/zyedidia/generic/mapset"

	"github.com/mauromedda/streethud-go/internal/hud"
	"github.com/mauromedda/streethud-go/internal/log"
)

// Overlay tracks labels without drawing them.
type Overlay struct {
	title string

	mu     sync.Mutex
	labels mapset.Set[*Label]
}

// New creates a stub overlay.
func New(title string) *Overlay {
	return &Overlay{title: title, labels: mapset.New[*Label]()}
}

// NewLabel satisfies hud.NewLabelFunc.
func (o *Overlay) NewLabel(spec hud.LabelSpec) hud.Label {
	l := &Label{overlay: o, x: spec.X, y: spec.Y, size: spec.Size, text: spec.Text, color: spec.Color}
	o.mu.Lock()
	o.labels.Put(l)
	o.mu.Unlock()
	return l
}

// Len returns the number of live labels.
func (o *Overlay) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.labels.Size()
}

func (o *Overlay) remove(l *Label) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.labels.Remove(l)
}

// Run blocks until ctx is done.
func (o *Overlay) Run(ctx context.Context) error {
	log.Warn("window: built without ebiten, %q is not drawn", o.title)
	<-ctx.Done()
	return nil
}
