package observe

import "slices"

// Comparator defines a total order over T: negative when a sorts before b,
// zero when they are equal, positive when a sorts after b.
type Comparator[T any] func(a, b T) int

// Observable is the capability an item exposes to participate in change
// aggregation: register a handler for any field change and get back an
// unsubscribe function. Record implements it. Items without the capability
// are legal collection members; they simply produce no change events.
type Observable interface {
	OnAny(fn AnyFieldHandler) func()
}

// ItemHandler observes structural events that carry an item and its index.
type ItemHandler[T any] func(item T, index int)

// ChangeHandler observes a field change on a tracked item, reported with
// the item's current index in the collection.
type ChangeHandler[T any] func(item T, index int, field string, value, prev any)

// Collection is an ordered, optionally sorted, observable sequence of
// items. It owns its backing slice exclusively: callers receive copies,
// never the slice itself. Each item occupies exactly one slot; identity
// (Go equality, pointer identity for pointer items) determines membership.
//
// With a comparator set, the slice stays sorted across Add, Reset, and
// Sort. Mutating a tracked item's sort key in place does not re-sort; call
// Sort to restore order.
//
// Collection is NOT thread-safe; confine it to one goroutine.
type Collection[T comparable] struct {
	items []T
	cmp   Comparator[T]

	addListeners    handlerList[ItemHandler[T]]
	removeListeners handlerList[ItemHandler[T]]
	resetListeners  handlerList[func()]
	sortListeners   handlerList[func()]
	changeListeners handlerList[ChangeHandler[T]]
	anyListeners    handlerList[func()]

	// subscriptions holds the unsubscribe handle for each current member
	// that implements Observable, keyed by item identity.
	subscriptions map[T]func()
}

// NewCollection creates an unsorted collection holding the given items in
// order. The items are copied into a fresh backing slice. No events fire.
func NewCollection[T comparable](items ...T) *Collection[T] {
	return newCollection[T](nil, items)
}

// NewSortedCollection creates a collection that keeps its items sorted by
// cmp. The initial items are copied and stable-sorted. No events fire.
func NewSortedCollection[T comparable](cmp Comparator[T], items ...T) *Collection[T] {
	return newCollection(cmp, items)
}

func newCollection[T comparable](cmp Comparator[T], items []T) *Collection[T] {
	c := &Collection[T]{
		items:         append([]T(nil), items...),
		cmp:           cmp,
		subscriptions: make(map[T]func()),
	}
	if c.cmp != nil {
		stableSort(c.items, c.cmp)
	}
	for _, item := range c.items {
		c.subscribe(item)
	}
	return c
}

// Len returns the number of items.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Get returns the item at index, or the zero value and false when index is
// out of range.
func (c *Collection[T]) Get(index int) (T, bool) {
	if index < 0 || index >= len(c.items) {
		var zero T
		return zero, false
	}
	return c.items[index], true
}

// Items returns a copy of the collection's items in order.
func (c *Collection[T]) Items() []T {
	return append([]T(nil), c.items...)
}

// IndexOf returns the current index of item, or -1 when absent. Lookup is
// by identity, not by comparator, so it stays correct when several items
// share a sort key.
func (c *Collection[T]) IndexOf(item T) int {
	for i, it := range c.items {
		if it == item {
			return i
		}
	}
	return -1
}

// Each calls fn for every item in order until fn returns false.
func (c *Collection[T]) Each(fn func(index int, item T) bool) {
	for i, item := range c.items {
		if !fn(i, item) {
			return
		}
	}
}

// Add inserts item. Without a comparator it appends; with one it inserts
// at the sorted position, after any existing items that compare equal.
// Fires add with the item and its insertion index, then any-change.
func (c *Collection[T]) Add(item T) {
	index := len(c.items)
	if c.cmp != nil {
		index = insertionIndex(c.items, item, c.cmp)
	}
	c.items = slices.Insert(c.items, index, item)
	c.subscribe(item)

	for _, fn := range c.addListeners.snapshot() {
		fn(item, index)
	}
	c.emitAnyChange()
}

// Remove removes item, located by identity. Returns false without side
// effects when the item is not a member. Fires remove with the item's old
// index, then any-change, and releases the item's subscription.
func (c *Collection[T]) Remove(item T) bool {
	index := c.IndexOf(item)
	if index < 0 {
		return false
	}
	c.removeAt(index)
	return true
}

// RemoveAt removes the item at index. Returns false without side effects
// when index is out of range.
func (c *Collection[T]) RemoveAt(index int) bool {
	if index < 0 || index >= len(c.items) {
		return false
	}
	c.removeAt(index)
	return true
}

func (c *Collection[T]) removeAt(index int) {
	item := c.items[index]
	c.items = slices.Delete(c.items, index, index+1)

	for _, fn := range c.removeListeners.snapshot() {
		fn(item, index)
	}
	c.emitAnyChange()
	c.unsubscribe(item)
}

// Reset replaces the entire contents with a copy of items, re-sorted when
// a comparator is set. Subscriptions on the outgoing items are released
// and subscriptions on the incoming items established. Fires exactly one
// reset event, then any-change, regardless of how many items differ.
func (c *Collection[T]) Reset(items []T) {
	c.unsubscribeAll()
	c.items = append([]T(nil), items...)
	if c.cmp != nil {
		stableSort(c.items, c.cmp)
	}
	for _, item := range c.items {
		c.subscribe(item)
	}

	for _, fn := range c.resetListeners.snapshot() {
		fn()
	}
	c.emitAnyChange()
}

// Sort re-sorts the items with the current comparator and fires sort, then
// any-change. Useful after mutating an item's sort key in place. Without a
// comparator it is a no-op and fires nothing. Returns the collection.
func (c *Collection[T]) Sort() *Collection[T] {
	if c.cmp == nil {
		return c
	}
	stableSort(c.items, c.cmp)

	for _, fn := range c.sortListeners.snapshot() {
		fn()
	}
	c.emitAnyChange()
	return c
}

// SortFunc replaces the comparator and, when the new comparator is
// non-nil, re-sorts and fires sort then any-change. Passing nil clears the
// comparator so future Adds append in arrival order; nothing fires.
// Returns the collection.
func (c *Collection[T]) SortFunc(cmp Comparator[T]) *Collection[T] {
	c.cmp = cmp
	if cmp == nil {
		return c
	}
	return c.Sort()
}

// OnAdd registers fn for add events. Returns an unsubscribe function.
func (c *Collection[T]) OnAdd(fn ItemHandler[T]) func() {
	return c.addListeners.add(fn)
}

// OnRemove registers fn for remove events. Returns an unsubscribe function.
func (c *Collection[T]) OnRemove(fn ItemHandler[T]) func() {
	return c.removeListeners.add(fn)
}

// OnReset registers fn for reset events. Returns an unsubscribe function.
func (c *Collection[T]) OnReset(fn func()) func() {
	return c.resetListeners.add(fn)
}

// OnSort registers fn for sort events. Returns an unsubscribe function.
func (c *Collection[T]) OnSort(fn func()) func() {
	return c.sortListeners.add(fn)
}

// OnChange registers fn for field changes on tracked items. The index
// reported is the item's position at the time of the change, not at
// subscription time. Returns an unsubscribe function.
func (c *Collection[T]) OnChange(fn ChangeHandler[T]) func() {
	return c.changeListeners.add(fn)
}

// OnAnyChange registers fn to run after every structural mutation: add,
// remove, reset, and sort. Field-level change events do not count as
// structural. Returns an unsubscribe function.
func (c *Collection[T]) OnAnyChange(fn func()) func() {
	return c.anyListeners.add(fn)
}

// OffAll removes every registered listener of every kind. Unsubscribe
// functions returned earlier become no-ops. Per-item subscriptions are
// kept; use Dispose to release those too.
func (c *Collection[T]) OffAll() {
	c.addListeners.clear()
	c.removeListeners.clear()
	c.resetListeners.clear()
	c.sortListeners.clear()
	c.changeListeners.clear()
	c.anyListeners.clear()
}

// Dispose releases every per-item subscription and removes all listeners.
// Call it when the collection's owner goes away so tracked items that
// outlive the collection do not retain its handlers. The items themselves
// are kept; the collection remains readable.
func (c *Collection[T]) Dispose() {
	c.unsubscribeAll()
	c.OffAll()
}

// subscribe registers the collection's change aggregator on item when it
// implements Observable. The handler resolves the item's index at dispatch
// time, so changes report the current position even after intervening
// adds, removes, or sorts.
func (c *Collection[T]) subscribe(item T) {
	obs, ok := any(item).(Observable)
	if !ok {
		return
	}
	if _, ok := c.subscriptions[item]; ok {
		return
	}
	c.subscriptions[item] = obs.OnAny(func(field string, value, prev any) {
		index := c.IndexOf(item)
		if index < 0 {
			// Stale notification from an item already removed.
			return
		}
		for _, fn := range c.changeListeners.snapshot() {
			fn(item, index, field, value, prev)
		}
	})
}

func (c *Collection[T]) unsubscribe(item T) {
	if off, ok := c.subscriptions[item]; ok {
		delete(c.subscriptions, item)
		off()
	}
}

func (c *Collection[T]) unsubscribeAll() {
	for item, off := range c.subscriptions {
		delete(c.subscriptions, item)
		off()
	}
}

func (c *Collection[T]) emitAnyChange() {
	for _, fn := range c.anyListeners.snapshot() {
		fn()
	}
}
