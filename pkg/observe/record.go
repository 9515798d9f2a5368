package observe

// FieldHandler observes changes to a single record field.
type FieldHandler func(value, prev any)

// AnyFieldHandler observes changes to any record field.
type AnyFieldHandler func(field string, value, prev any)

// Record is a mutable mapping from field name to value that notifies
// listeners on every mutation. Setting a field fires that field's
// listeners first, then the any-field listeners, synchronously, each with
// the new and previous values.
//
// Record is NOT thread-safe; confine it to one goroutine.
type Record struct {
	fields map[string]any

	fieldListeners map[string]*handlerList[FieldHandler]
	anyListeners   handlerList[AnyFieldHandler]
}

// NewRecord creates a record with the given initial fields. The map is
// copied; the caller keeps ownership of its argument. No events fire for
// the initial values.
func NewRecord(fields map[string]any) *Record {
	r := &Record{
		fields:         make(map[string]any, len(fields)),
		fieldListeners: make(map[string]*handlerList[FieldHandler]),
	}
	for field, value := range fields {
		r.fields[field] = value
	}
	return r
}

// Get returns the value of the named field and whether it exists.
func (r *Record) Get(field string) (any, bool) {
	value, ok := r.fields[field]
	return value, ok
}

// Has reports whether the named field exists.
func (r *Record) Has(field string) bool {
	_, ok := r.fields[field]
	return ok
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Fields returns a copy of the record's fields.
func (r *Record) Fields() map[string]any {
	fields := make(map[string]any, len(r.fields))
	for field, value := range r.fields {
		fields[field] = value
	}
	return fields
}

// Set stores value under field and notifies listeners with the new and
// previous values. Setting a field that does not exist yet creates it;
// listeners then see a nil previous value.
func (r *Record) Set(field string, value any) {
	prev := r.fields[field]
	r.fields[field] = value

	if l, ok := r.fieldListeners[field]; ok {
		for _, fn := range l.snapshot() {
			fn(value, prev)
		}
	}
	for _, fn := range r.anyListeners.snapshot() {
		fn(field, value, prev)
	}
}

// OnField registers fn to run whenever the named field changes.
// Returns an unsubscribe function; calling it more than once is harmless.
func (r *Record) OnField(field string, fn FieldHandler) func() {
	l, ok := r.fieldListeners[field]
	if !ok {
		l = &handlerList[FieldHandler]{}
		r.fieldListeners[field] = l
	}
	return l.add(fn)
}

// OnAny registers fn to run whenever any field changes. This is the
// capability Collection consumes to aggregate item changes.
// Returns an unsubscribe function; calling it more than once is harmless.
func (r *Record) OnAny(fn AnyFieldHandler) func() {
	return r.anyListeners.add(fn)
}

// ListenerCount returns the number of registered listeners, per-field and
// any-field combined.
func (r *Record) ListenerCount() int {
	n := len(r.anyListeners.entries)
	for _, l := range r.fieldListeners {
		n += len(l.entries)
	}
	return n
}

// OffAll removes every listener, per-field and any-field alike.
// Unsubscribe functions returned earlier become no-ops.
func (r *Record) OffAll() {
	for _, l := range r.fieldListeners {
		l.clear()
	}
	r.fieldListeners = make(map[string]*handlerList[FieldHandler])
	r.anyListeners.clear()
}
