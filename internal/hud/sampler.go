// ABOUTME: One sampling tick: visibility gate, not-ready guards, lazy label creation, text refresh
// ABOUTME: Unavailable game state is a normal condition handled by returning early

package hud

import (
	"github.com/mauromedda/streethud-go/internal/log"
)

// Tick runs one sample. It returns false without doing anything when a
// previous tick is still running.
func (h *HUD) Tick() bool {
	if !h.ticking.CompareAndSwap(false, true) {
		log.Debug("hud: tick skipped, previous tick still running")
		return false
	}
	defer h.ticking.Store(false)

	h.mu.Lock()
	h.sampleLocked()
	h.unlockAndPublish()
	return true
}

func (h *HUD) sampleLocked() {
	if !h.shouldShowLocked() {
		if h.label != nil {
			h.label.SetVisible(false)
		}
		return
	}

	pos, ok := h.api.PlayerCoordinates()
	if !ok {
		return
	}
	// Drawing before the player spawns can crash the game.
	if pos.IsOrigin() {
		return
	}

	angle, ok := h.api.PlayerFacingAngle()
	if !ok || IsSentinelAngle(angle) {
		return
	}
	dir := ClassifyDirection(angle)

	zone, ok := h.api.PlayerCurrentZone()
	if !ok {
		return
	}

	if h.label == nil {
		h.label = h.newLabel(LabelSpec{
			Font:  h.font,
			Size:  h.prefs.FontSize,
			X:     h.prefs.X,
			Y:     h.prefs.Y,
			Color: h.color,
			Text:  InitialText,
		})
		log.Debug("hud: label created at (%d,%d) size %d", h.prefs.X, h.prefs.Y, h.prefs.FontSize)
	}

	h.label.SetVisible(true)
	h.label.SetText(FormatText(dir, zone))
}

// shouldShowLocked evaluates the visibility gate, skipping queries whose
// answer cannot change the outcome.
func (h *HUD) shouldShowLocked() bool {
	enabled := h.enabled.Load()
	if !enabled {
		return false
	}
	vehicleOnly := h.vehicleOnly.Load()

	inInterior := h.api.IsPlayerInAnyInterior()
	inMenu := h.api.IsPlayerInEscapeMenu()
	inVehicle := false
	if vehicleOnly && !inInterior && !inMenu {
		inVehicle = h.api.IsPlayerInAnyVehicle()
	}
	return ShouldShow(enabled, vehicleOnly, inInterior, inMenu, inVehicle)
}
