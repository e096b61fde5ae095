// ABOUTME: HUD owns the overlay label, placement preferences, and edit-mode state
// ABOUTME: Sampling ticks and hotkey edits are serialized by one mutex; status goes to an event bus

package hud

import (
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/mauromedda/streethud-go/internal/config"
	"github.com/mauromedda/streethud-go/internal/eventbus"
	"github.com/mauromedda/streethud-go/internal/gamestate"
)

// InitialText is shown by a freshly created label until the first update.
const InitialText = "streethud"

// PreferencesSaver persists committed placement.
type PreferencesSaver interface {
	Save(p config.HudPreferences) error
}

// Options configures a HUD.
type Options struct {
	API         gamestate.API
	NewLabel    NewLabelFunc
	Store       PreferencesSaver
	Preferences config.HudPreferences
	Font        string
	Color       color.Color
	Enabled     bool
	VehicleOnly bool
	// Bus receives a Status after every state change. Optional. Handlers
	// must not call back into the HUD.
	Bus *eventbus.Bus[Status]
}

// Status is a point-in-time view of the overlay for presentation layers.
type Status struct {
	PID         int
	HasLabel    bool
	Visible     bool
	Text        string
	X, Y        int
	FontSize    int
	Editing     bool
	Enabled     bool
	VehicleOnly bool
	SaveError   string
}

// HUD is the overlay state machine.
type HUD struct {
	api      gamestate.API
	newLabel NewLabelFunc
	store    PreferencesSaver
	font     string
	color    color.Color
	bus      *eventbus.Bus[Status]

	enabled     atomic.Bool
	vehicleOnly atomic.Bool
	ticking     atomic.Bool

	mu        sync.Mutex
	label     Label
	prefs     config.HudPreferences
	editing   bool
	pid       int
	saveError string
	published Status

	// pubMu keeps bus events in the order their state was produced.
	pubMu sync.Mutex
}

// New creates a HUD. No label exists until the first renderable tick.
func New(opts Options) *HUD {
	h := &HUD{
		api:      opts.API,
		newLabel: opts.NewLabel,
		store:    opts.Store,
		font:     opts.Font,
		color:    opts.Color,
		bus:      opts.Bus,
		prefs:    opts.Preferences,
	}
	if h.font == "" {
		h.font = config.DefaultFont
	}
	if h.color == nil {
		h.color = config.MustParseColor(config.DefaultColor)
	}
	h.enabled.Store(opts.Enabled)
	h.vehicleOnly.Store(opts.VehicleOnly)
	return h
}

// SetEnabled turns the overlay on or off; observed on the next tick.
func (h *HUD) SetEnabled(v bool) {
	h.enabled.Store(v)
	h.notify()
}

// Enabled reports the enabled flag.
func (h *HUD) Enabled() bool {
	return h.enabled.Load()
}

// SetVehicleOnly limits the overlay to when the player is in a vehicle.
func (h *HUD) SetVehicleOnly(v bool) {
	h.vehicleOnly.Store(v)
	h.notify()
}

// VehicleOnly reports the vehicle-only flag.
func (h *HUD) VehicleOnly() bool {
	return h.vehicleOnly.Load()
}

// Preferences returns the in-memory placement, including uncommitted edits.
func (h *HUD) Preferences() config.HudPreferences {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.prefs
}

// Status returns the current status snapshot.
func (h *HUD) Status() Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.statusLocked()
}

// DropLabel destroys the label so the next renderable tick recreates it.
func (h *HUD) DropLabel() {
	h.mu.Lock()
	if h.label != nil {
		h.label.Destroy()
		h.label = nil
	}
	h.unlockAndPublish()
}

func (h *HUD) setAttached(pid int) {
	h.mu.Lock()
	h.pid = pid
	h.unlockAndPublish()
}

func (h *HUD) notify() {
	h.mu.Lock()
	h.unlockAndPublish()
}

func (h *HUD) statusLocked() Status {
	st := Status{
		PID:         h.pid,
		Editing:     h.editing,
		Enabled:     h.enabled.Load(),
		VehicleOnly: h.vehicleOnly.Load(),
		SaveError:   h.saveError,
		X:           h.prefs.X,
		Y:           h.prefs.Y,
		FontSize:    h.prefs.FontSize,
	}
	if h.label != nil {
		st.HasLabel = true
		st.Visible = h.label.Visible()
		st.Text = h.label.Text()
		st.X, st.Y = h.label.Position()
		st.FontSize = h.label.FontSize()
	}
	return st
}

// unlockAndPublish releases mu and sends the status if it changed.
// Must be called with mu held.
func (h *HUD) unlockAndPublish() {
	st := h.statusLocked()
	changed := st != h.published
	h.published = st
	if h.bus == nil || !changed {
		h.mu.Unlock()
		return
	}

	h.pubMu.Lock()
	h.mu.Unlock()
	defer h.pubMu.Unlock()
	h.bus.Publish(st)
}
