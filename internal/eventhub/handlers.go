// Package eventhub implements ordered handler registries for wallet event notifications.
package eventhub

import "sync"

type entry[T any] struct {
	id int
	fn func(T)
}

// Handlers is an ordered set of callbacks for one event. The zero value is ready to use.
type Handlers[T any] struct {
	mu      sync.Mutex
	nextID  int
	entries []entry[T]
}

// Add registers fn and returns a function that removes it. The remover is safe to call more
// than once.
func (h *Handlers[T]) Add(fn func(T)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.entries = append(h.entries, entry[T]{id: id, fn: fn})

	var once sync.Once

	return func() {
		once.Do(func() { h.remove(id) })
	}
}

// Emit invokes every registered callback with v in registration order. Callbacks run outside
// the lock, so they may add or remove handlers.
func (h *Handlers[T]) Emit(v T) {
	h.mu.Lock()
	snapshot := make([]entry[T], len(h.entries))
	copy(snapshot, h.entries)
	h.mu.Unlock()

	for _, e := range snapshot {
		e.fn(v)
	}
}

// Len returns the number of registered callbacks.
func (h *Handlers[T]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.entries)
}

func (h *Handlers[T]) remove(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, e := range h.entries {
		if e.id == id {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return
		}
	}
}
