// ABOUTME: Render-primitive contract for the floating overlay text
// ABOUTME: Backends (ebiten window, headless) implement Label and supply a NewLabelFunc

package hud

import "image/color"

// Label is an on-screen text element. Implementations must be safe for use
// from the sampling goroutine while their own draw loop reads them.
type Label interface {
	Position() (x, y int)
	SetPosition(x, y int)
	FontSize() int
	SetFontSize(size int)
	Text() string
	SetText(text string)
	Visible() bool
	SetVisible(visible bool)
	// Destroy releases drawing resources. The label must not be used afterwards.
	Destroy()
}

// LabelSpec holds the construction parameters of a Label.
type LabelSpec struct {
	Font  string
	Size  int
	X, Y  int
	Color color.Color
	Text  string
}

// NewLabelFunc constructs a Label.
type NewLabelFunc func(spec LabelSpec) Label
