// ABOUTME: Tests for hotkey registration and delivery
// ABOUTME: Covers start/stop gating, duplicate registration, serialization, and Bind routing

package hotkey

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func TestRegistry_DeliverRequiresStart(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	var calls int
	if err := r.Register(Chord{ModAlt, KeyM}, func() { calls++ }); err != nil {
		t.Fatal(err)
	}

	if r.Deliver(Chord{ModAlt, KeyM}) {
		t.Error("delivery before Start should be dropped")
	}

	_ = r.Start()
	_ = r.Start()
	if !r.Deliver(Chord{ModAlt, KeyM}) {
		t.Error("delivery after Start should run")
	}

	r.Stop()
	r.Stop()
	if r.Deliver(Chord{ModAlt, KeyM}) {
		t.Error("delivery after Stop should be dropped")
	}
	if calls != 1 {
		t.Errorf("calls = %d; want 1", calls)
	}
}

func TestRegistry_UnregisteredChord(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	_ = r.Start()
	if r.Deliver(Chord{ModNone, KeyNumpad2}) {
		t.Error("unregistered chord should not report delivery")
	}
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	c := Chord{ModNone, KeyNumpad6}
	if err := r.Register(c, func() {}); err != nil {
		t.Fatal(err)
	}
	err := r.Register(c, func() {})
	if err == nil || !strings.Contains(err.Error(), "numpad6") {
		t.Errorf("expected duplicate error naming the chord, got %v", err)
	}
}

func TestRegistry_SerializesCallbacks(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	_ = r.Start()

	var inside, overlaps atomic.Int32
	_ = r.Register(Chord{ModNone, KeyNumpad2}, func() {
		if inside.Add(1) > 1 {
			overlaps.Add(1)
		}
		inside.Add(-1)
	})

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Deliver(Chord{ModNone, KeyNumpad2})
		}()
	}
	wg.Wait()

	if overlaps.Load() != 0 {
		t.Errorf("callbacks overlapped %d times", overlaps.Load())
	}
}

func TestBind_RoutesEveryChord(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	var got []Action
	if err := Bind(r, func(a Action) { got = append(got, a) }); err != nil {
		t.Fatal(err)
	}
	_ = r.Start()

	for _, b := range Bindings() {
		r.Deliver(b.Chord)
	}

	want := Bindings()
	if len(got) != len(want) {
		t.Fatalf("routed %d actions; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i].Action {
			t.Errorf("delivery %d routed %v; want %v", i, got[i], want[i].Action)
		}
	}
}

func TestBind_PropagatesRegisterError(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	_ = r.Register(Chord{ModAlt, KeyM}, func() {})
	if err := Bind(r, func(Action) {}); err == nil {
		t.Error("expected error when a chord is already taken")
	}
}

func TestFormatMarkdown(t *testing.T) {
	t.Parallel()

	md := FormatMarkdown()
	for _, want := range []string{"| `alt+m` | Toggle edit mode |", "| `alt+numpad4` | Move left x10 |", "| Keys | Action |"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}
