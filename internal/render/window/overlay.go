// ABOUTME: Transparent always-on-top ebiten window that draws HUD labels over the game
// ABOUTME: Click-through and undecorated; Run must be called from the main goroutine

//go:build !noebiten

package window

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/mauromedda/streethud-go/internal/hud"
	"github.com/mauromedda/streethud-go/internal/log"
)

// Offset of the drop shadow drawn under each label, in pixels.
const shadowOffset = 1

var shadowColor = color.RGBA{A: 0xc0}

// Overlay is an ebiten.Game whose only content is its labels.
type Overlay struct {
	title string

	mu     sync.Mutex
	labels mapset.Set[*Label]
	ctx    context.Context

	// Draw goroutine only.
	source *text.GoTextFaceSource
	faces  map[int]*text.GoTextFace
	width  int
	height int
}

// New creates an overlay. The window opens when Run is called.
func New(title string) *Overlay {
	return &Overlay{
		title:  title,
		labels: mapset.New[*Label](),
		faces:  make(map[int]*text.GoTextFace),
		ctx:    context.Background(),
	}
}

// NewLabel satisfies hud.NewLabelFunc. Safe to call from any goroutine.
func (o *Overlay) NewLabel(spec hud.LabelSpec) hud.Label {
	if spec.Font != "" && spec.Font != "Go" {
		log.Debug("window: font %q not bundled, drawing with Go Regular", spec.Font)
	}
	l := &Label{
		overlay: o,
		x:       spec.X,
		y:       spec.Y,
		size:    spec.Size,
		text:    spec.Text,
		color:   spec.Color,
	}
	if l.color == nil {
		l.color = color.White
	}
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

// Run opens the overlay window and blocks until ctx is cancelled or the
// window is closed.
func (o *Overlay) Run(ctx context.Context) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("loading overlay font: %w", err)
	}
	o.source = src

	o.mu.Lock()
	o.ctx = ctx
	o.mu.Unlock()

	o.width, o.height = ebiten.Monitor().Size()
	ebiten.SetWindowTitle(o.title)
	ebiten.SetWindowSize(o.width, o.height)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetTPS(30)

	log.Info("window: overlay %dx%d", o.width, o.height)
	err = ebiten.RunGameWithOptions(o, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
		InitUnfocused:     true,
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("overlay window: %w", err)
	}
	return nil
}

// Update stops the game loop once the run context is done.
func (o *Overlay) Update() error {
	o.mu.Lock()
	ctx := o.ctx
	o.mu.Unlock()
	if ctx.Err() != nil {
		return ebiten.Termination
	}
	return nil
}

// Draw renders every visible label with a one pixel shadow.
func (o *Overlay) Draw(screen *ebiten.Image) {
	for _, s := range o.snapshot() {
		face := o.face(s.size)

		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(s.x+shadowOffset), float64(s.y+shadowOffset))
		op.ColorScale.ScaleWithColor(shadowColor)
		text.Draw(screen, s.text, face, op)

		op = &text.DrawOptions{}
		op.GeoM.Translate(float64(s.x), float64(s.y))
		op.ColorScale.ScaleWithColor(s.color)
		text.Draw(screen, s.text, face, op)
	}
}

// Layout keeps a 1:1 mapping between window and screen pixels.
func (o *Overlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (o *Overlay) snapshot() []labelState {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]labelState, 0, o.labels.Size())
	o.labels.Each(func(l *Label) {
		if s, ok := l.state(); ok {
			out = append(out, s)
		}
	})
	return out
}

func (o *Overlay) face(size int) *text.GoTextFace {
	if f, ok := o.faces[size]; ok {
		return f
	}
	// Point sizes are converted at 96 DPI.
	f := &text.GoTextFace{Source: o.source, Size: float64(size) * 96 / 72}
	o.faces[size] = f
	return f
}
