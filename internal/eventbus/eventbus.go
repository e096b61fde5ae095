// ABOUTME: Typed event bus carrying overlay status snapshots to presentation layers
// ABOUTME: Remembers the last event so late subscribers can render current state at once

package eventbus

import "sync"

// Handler is a callback function for events.
type Handler[T any] func(T)

// Bus is a typed event bus that delivers events to registered handlers.
type Bus[T any] struct {
	mu       sync.RWMutex
	handlers map[int]Handler[T]
	nextID   int
	last     T
	hasLast  bool
}

// New creates a new event bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{
		handlers: make(map[int]Handler[T]),
	}
}

// Subscribe registers a handler and returns an unsubscribe function.
// When replay is true and an event was already published, the handler
// receives that event before Subscribe returns.
func (b *Bus[T]) Subscribe(handler Handler[T], replay bool) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	last, hasLast := b.last, b.hasLast
	b.mu.Unlock()

	if replay && hasLast {
		handler(last)
	}

	return func() {
		b.mu.Lock()
		delete(b.handlers, id)
		b.mu.Unlock()
	}
}

// Publish records event as the latest and sends it to all handlers.
// Handlers are called synchronously in arbitrary order, outside the lock.
func (b *Bus[T]) Publish(event T) {
	b.mu.Lock()
	b.last, b.hasLast = event, true
	snapshot := make([]Handler[T], 0, len(b.handlers))
	for _, h := range b.handlers {
		snapshot = append(snapshot, h)
	}
	b.mu.Unlock()

	for _, h := range snapshot {
		h(event)
	}
}

// Latest returns the most recent event and whether one was published.
func (b *Bus[T]) Latest() (T, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.last, b.hasLast
}

// Count returns the number of registered handlers.
func (b *Bus[T]) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}
