// ABOUTME: Tests for HUD status snapshots and event-bus publication
// ABOUTME: Status events fire only on change and reflect label geometry when a label exists

package hud

import (
	"sync"
	"testing"

	"github.com/mauromedda/streethud-go/internal/config"
	"github.com/mauromedda/streethud-go/internal/eventbus"
	"github.com/mauromedda/streethud-go/internal/gamestate"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	h := New(Options{API: newFakeAPI(), Enabled: true})
	if h.font != config.DefaultFont {
		t.Errorf("font = %q; want %q", h.font, config.DefaultFont)
	}
	if h.color == nil {
		t.Error("color not defaulted")
	}
	if !h.Enabled() || h.VehicleOnly() {
		t.Errorf("flags = %v/%v; want true/false", h.Enabled(), h.VehicleOnly())
	}
}

func TestStatus_ReflectsPreferencesWithoutLabel(t *testing.T) {
	t.Parallel()

	f := newFixture(config.HudPreferences{X: 1, Y: 2, FontSize: 3})
	st := f.hud.Status()
	if st.HasLabel || st.X != 1 || st.Y != 2 || st.FontSize != 3 {
		t.Errorf("status = %+v", st)
	}
}

func TestBus_PublishesOnChangeOnly(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	labels := &labelFactory{}
	bus := eventbus.New[Status]()

	var mu sync.Mutex
	var got []Status
	bus.Subscribe(func(s Status) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, s)
	}, false)

	h := New(Options{
		API:         api,
		NewLabel:    labels.New,
		Preferences: config.DefaultPreferences(),
		Enabled:     true,
		Bus:         bus,
	})

	api.ready(gamestate.Vec3{X: 1}, 0, "Rodeo")
	h.Tick()
	h.Tick()

	mu.Lock()
	n := len(got)
	last := got[len(got)-1]
	mu.Unlock()

	if n != 1 {
		t.Errorf("events = %d; want 1", n)
	}
	if !last.HasLabel || last.Text != "|N| Rodeo" || !last.Visible {
		t.Errorf("last status = %+v", last)
	}

	h.SetEnabled(false)
	h.Tick()

	latest, ok := bus.Latest()
	if !ok {
		t.Fatal("no latest event")
	}
	if latest.Enabled || latest.Visible {
		t.Errorf("latest = %+v; want disabled and hidden", latest)
	}
}
