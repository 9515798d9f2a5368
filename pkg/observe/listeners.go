package observe

// handlerEntry pairs a handler with the id its unsubscribe closure removes.
type handlerEntry[H any] struct {
	id int
	fn H
}

// handlerList is an ordered list of handlers with id-keyed removal.
// Handlers fire in registration order. Removal preserves the relative
// order of the remaining handlers.
type handlerList[H any] struct {
	entries []handlerEntry[H]
	nextID  int
}

// add appends fn and returns a closure that removes it. The closure is
// idempotent: once the id is gone, calling it again does nothing, so it
// stays harmless after clear or a prior call.
func (l *handlerList[H]) add(fn H) func() {
	id := l.nextID
	l.nextID++
	l.entries = append(l.entries, handlerEntry[H]{id: id, fn: fn})
	return func() {
		for i, e := range l.entries {
			if e.id == id {
				l.entries = append(l.entries[:i], l.entries[i+1:]...)
				return
			}
		}
	}
}

// snapshot returns the current handlers in order. Dispatch iterates the
// snapshot, not the live list, so handlers that subscribe or unsubscribe
// during dispatch do not disturb the iteration.
func (l *handlerList[H]) snapshot() []H {
	if len(l.entries) == 0 {
		return nil
	}
	fns := make([]H, len(l.entries))
	for i, e := range l.entries {
		fns[i] = e.fn
	}
	return fns
}

func (l *handlerList[H]) clear() {
	l.entries = nil
}
