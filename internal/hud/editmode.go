// ABOUTME: Hotkey-driven edit mode: move/resize the label, commit placement on exit
// ABOUTME: Edits are inert unless edit mode is on and a visible label exists

package hud

import (
	"github.com/mauromedda/streethud-go/internal/hotkey"
	"github.com/mauromedda/streethud-go/internal/log"
)

// MinFontSize is the smallest size Resize will set.
const MinFontSize = 1

// Editing reports whether edit mode is on.
func (h *HUD) Editing() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.editing
}

// Handle routes a hotkey action to the matching edit operation.
func (h *HUD) Handle(a hotkey.Action) {
	if a == hotkey.ActionToggleEditMode {
		h.ToggleEditMode()
		return
	}
	e := a.Effect()
	switch {
	case e.DSize != 0:
		h.Resize(e.DSize)
	case e.DX != 0 || e.DY != 0:
		h.Move(e.DX, e.DY)
	}
}

// ToggleEditMode flips edit mode. Leaving edit mode copies the label's
// geometry into the preferences and saves them.
func (h *HUD) ToggleEditMode() {
	h.mu.Lock()
	h.editing = !h.editing
	if h.editing {
		log.Info("hud: edit mode on, Alt+M again to save")
		h.unlockAndPublish()
		return
	}

	if h.label != nil {
		h.prefs.X, h.prefs.Y = h.label.Position()
		h.prefs.FontSize = h.label.FontSize()
	}
	prefs := h.prefs
	h.mu.Unlock()

	// Saved outside the lock so a slow disk never delays a tick.
	var saveErr string
	if h.store != nil {
		if err := h.store.Save(prefs); err != nil {
			log.Warn("hud: saving preferences: %v", err)
			saveErr = err.Error()
		} else {
			log.Info("hud: placement saved (%d,%d) size %d", prefs.X, prefs.Y, prefs.FontSize)
		}
	}

	h.mu.Lock()
	h.saveError = saveErr
	h.unlockAndPublish()
}

// Move shifts the label by (dx, dy) while editing.
func (h *HUD) Move(dx, dy int) {
	h.mu.Lock()
	if !h.editableLocked() {
		h.mu.Unlock()
		return
	}
	x, y := h.label.Position()
	x, y = x+dx, y+dy
	h.label.SetPosition(x, y)
	h.prefs.X, h.prefs.Y = x, y
	h.unlockAndPublish()
}

// Resize changes the label's font size by delta while editing.
func (h *HUD) Resize(delta int) {
	h.mu.Lock()
	if !h.editableLocked() {
		h.mu.Unlock()
		return
	}
	size := max(h.label.FontSize()+delta, MinFontSize)
	h.label.SetFontSize(size)
	h.prefs.FontSize = size
	h.unlockAndPublish()
}

func (h *HUD) editableLocked() bool {
	return h.editing && h.label != nil && h.label.Visible()
}
