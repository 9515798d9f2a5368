// Package observe provides observable containers for application state.
//
// Two types make up the package: Record, a field-keyed value store that
// notifies listeners when a field changes, and Collection, an ordered
// (optionally sorted) sequence of items that notifies listeners when its
// membership or order changes.
//
// # Records
//
// A Record maps field names to values. Every Set fires the field's own
// listeners and then the record's any-field listeners, synchronously, with
// the new and previous values:
//
//	user := observe.NewRecord(map[string]any{"name": "Ada", "age": 36})
//	off := user.OnAny(func(field string, value, prev any) {
//	    fmt.Printf("%s: %v -> %v\n", field, prev, value)
//	})
//	user.Set("age", 37)
//	off()
//
// # Collections
//
// A Collection owns an ordered slice of items. With a comparator it keeps
// the slice sorted: Add inserts by binary search, placing a new item after
// any existing items that compare equal, and Sort re-establishes order with
// a stable merge sort after in-place item mutation:
//
//	byAge := func(a, b *observe.Record) int { ... }
//	users := observe.NewSortedCollection(byAge, ada, brin)
//	users.OnAdd(func(item *observe.Record, index int) { ... })
//	users.Add(carol)
//
// Items that implement the Observable capability (Record does) are
// subscribed on entry and unsubscribed on exit; their field changes are
// republished as collection-level change events carrying the item's
// current index.
//
// # Listener lifecycle
//
// Every OnX method returns an unsubscribe function that removes exactly the
// handler it registered. Calling it more than once is harmless. OffAll
// drops every handler at once, and Dispose additionally releases the
// collection's per-item subscriptions; call it when the collection's owner
// goes away so tracked items do not retain dead handlers.
//
// # Threading
//
// Record and Collection are NOT thread-safe. Confine each instance to a
// single goroutine, the way framework state is confined to the UI thread.
// All operations, including listener dispatch, complete synchronously
// before the call returns. Listeners may re-enter the container; a
// re-entrant call observes the mutation that triggered the dispatch.
package observe
