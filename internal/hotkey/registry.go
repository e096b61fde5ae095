// ABOUTME: In-process hotkey delivery: chord callbacks, start/stop gating, serialized dispatch
// ABOUTME: Bind routes the whole fixed table through one action handler

package hotkey

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Hook accepts chord callbacks, like a keyboard-hook subsystem.
type Hook interface {
	Register(c Chord, fn func()) error
}

// Registry delivers chords to registered callbacks while started.
// Deliveries are serialized: no two callbacks run concurrently.
type Registry struct {
	mu       sync.RWMutex
	handlers map[Chord]func()

	deliverMu sync.Mutex
	active    atomic.Bool
}

var _ Hook = (*Registry)(nil)

// NewRegistry creates a stopped registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[Chord]func())}
}

// Register installs fn for c. A chord can only be registered once.
func (r *Registry) Register(c Chord, fn func()) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.handlers[c]; dup {
		return fmt.Errorf("hotkey %s already registered", c)
	}
	r.handlers[c] = fn
	return nil
}

// Start enables delivery. Idempotent.
func (r *Registry) Start() error {
	r.active.Store(true)
	return nil
}

// Stop disables delivery. Idempotent.
func (r *Registry) Stop() {
	r.active.Store(false)
}

// Active reports whether delivery is enabled.
func (r *Registry) Active() bool {
	return r.active.Load()
}

// Deliver runs the callback bound to c and reports whether one ran.
func (r *Registry) Deliver(c Chord) bool {
	if !r.active.Load() {
		return false
	}

	r.mu.RLock()
	fn, ok := r.handlers[c]
	r.mu.RUnlock()
	if !ok {
		return false
	}

	r.deliverMu.Lock()
	defer r.deliverMu.Unlock()
	fn()
	return true
}

// Bind registers every entry of the fixed table on h, routing each to handle.
func Bind(h Hook, handle func(Action)) error {
	for _, b := range Bindings() {
		action := b.Action
		if err := h.Register(b.Chord, func() { handle(action) }); err != nil {
			return fmt.Errorf("binding %s: %w", b.Chord, err)
		}
	}
	return nil
}
