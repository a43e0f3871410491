// Package eventbus implements a synchronous publish/subscribe registry keyed
// by event name. It is independent of the render cycle: emitting an event
// never renders anything by itself.
package eventbus

import (
	"sync"
)

// Default is the process-wide bus.
var Default = New()

// Handler wraps a callback so it has an identity. Off removes handlers by
// pointer, which is how the same callback registered twice can be told apart
// from two different callbacks.
type Handler struct {
	fn func(data any) error
}

// NewHandler wraps fn.
func NewHandler(fn func(data any) error) *Handler {
	return &Handler{fn: fn}
}

// Bus maps event names to ordered handler lists.
type Bus struct {
	mu     sync.RWMutex
	events map[string][]*Handler
}

// New constructs an empty bus.
func New() *Bus {
	return &Bus{events: make(map[string][]*Handler)}
}

// On appends h to the handlers of event. Registering the same handler twice
// makes it run twice per emit.
func (b *Bus) On(event string, h *Handler) {
	if h == nil || h.fn == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events[event] = append(b.events[event], h)
}

// Off removes every registration of h for event. Unknown events or handlers
// are ignored.
func (b *Bus) Off(event string, h *Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	registered, ok := b.events[event]
	if !ok {
		return
	}
	kept := make([]*Handler, 0, len(registered))
	for _, candidate := range registered {
		if candidate != h {
			kept = append(kept, candidate)
		}
	}
	if len(kept) == 0 {
		delete(b.events, event)
		return
	}
	b.events[event] = kept
}

// Subscribe registers fn and returns a function that removes it again.
func (b *Bus) Subscribe(event string, fn func(data any) error) func() {
	h := NewHandler(fn)
	b.On(event, h)
	return func() {
		b.Off(event, h)
	}
}

// Emit calls the handlers registered for event in registration order, passing
// data. Handlers added or removed while emitting take effect on the next
// emit. The first handler error stops the remaining handlers and is returned.
// Panics are not recovered.
func (b *Bus) Emit(event string, data any) error {
	b.mu.RLock()
	registered := append([]*Handler(nil), b.events[event]...)
	b.mu.RUnlock()

	for _, h := range registered {
		if err := h.fn(data); err != nil {
			return err
		}
	}
	return nil
}

// Len returns how many registrations event currently has.
func (b *Bus) Len(event string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.events[event])
}
