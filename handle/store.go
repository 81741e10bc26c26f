package handle

import (
	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/value"
)

// Store maps handle IDs to host values for one environment.
type Store struct {
	values []any
	next   napi.Value
	free   []napi.Value
	global *value.Object
}

// NewStore creates a store with the reserved singletons installed.
func NewStore(initialCapacity int) *Store {
	if initialCapacity < napi.MinHandleID {
		initialCapacity = napi.MinHandleID
	}
	s := &Store{
		values: make([]any, initialCapacity),
		next:   napi.MinHandleID,
		global: value.NewGlobal(),
	}
	s.values[napi.HandleUndefined] = value.Undefined
	s.values[napi.HandleNull] = nil
	s.values[napi.HandleFalse] = false
	s.values[napi.HandleTrue] = true
	s.values[napi.HandleGlobal] = s.global
	s.values[napi.HandleEmptyString] = ""
	return s
}

// Global returns the store's global object.
func (s *Store) Global() *value.Object { return s.global }

// Next returns the ID the next Push will return.
func (s *Store) Next() napi.Value { return s.next }

// Push stores v and returns its handle ID.
func (s *Store) Push(v any) napi.Value {
	var id napi.Value
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		id = s.next
		s.next++
	}
	s.grow(id)
	s.values[id] = v
	return id
}

// Intern returns the singleton ID for values that have one, else pushes.
// Mirrors napi_value_from_python in the source: singleton identity holds
// for undefined, null, the booleans, the global, and the empty string.
func (s *Store) Intern(v any) napi.Value {
	switch x := v.(type) {
	case nil:
		return napi.HandleNull
	case bool:
		if x {
			return napi.HandleTrue
		}
		return napi.HandleFalse
	case string:
		if x == "" {
			return napi.HandleEmptyString
		}
	case *value.Object:
		if x == s.global {
			return napi.HandleGlobal
		}
	default:
		if value.IsUndefined(v) {
			return napi.HandleUndefined
		}
	}
	return s.Push(v)
}

// Get returns the value for id. The hole, released IDs and out-of-range
// IDs yield (nil, false).
func (s *Store) Get(id napi.Value) (any, bool) {
	if id < napi.HandleUndefined || int(id) >= len(s.values) {
		return nil, false
	}
	if id >= napi.MinHandleID && id >= s.next {
		return nil, false
	}
	for _, f := range s.free {
		if f == id {
			return nil, false
		}
	}
	return s.values[id], true
}

// Set replaces the value at an existing id.
func (s *Store) Set(id napi.Value, v any) {
	if int(id) < len(s.values) {
		s.values[id] = v
	}
}

// Swap exchanges the values at two IDs. Used by escape promotion.
func (s *Store) Swap(a, b napi.Value) {
	if int(a) < len(s.values) && int(b) < len(s.values) {
		s.values[a], s.values[b] = s.values[b], s.values[a]
	}
}

// Erase drops every handle in [start, end) and rewinds the allocation
// cursor to start. Scope closure calls this with its range.
func (s *Store) Erase(start, end napi.Value) {
	if start < napi.MinHandleID {
		start = napi.MinHandleID
	}
	for i := start; i < end && int(i) < len(s.values); i++ {
		s.values[i] = nil
	}
	s.next = start
	// Free-listed IDs above the cursor are covered by the rewind.
	kept := s.free[:0]
	for _, id := range s.free {
		if id < start {
			kept = append(kept, id)
		}
	}
	s.free = kept
}

// Release returns a single ID to the free stack without disturbing the
// cursor. Used for IDs that outlive their scope (reference handles).
func (s *Store) Release(id napi.Value) {
	if id < napi.MinHandleID || int(id) >= len(s.values) {
		return
	}
	s.values[id] = nil
	s.free = append(s.free, id)
}

func (s *Store) grow(id napi.Value) {
	for int(id) >= len(s.values) {
		s.values = append(s.values, make([]any, len(s.values)/2+16)...)
	}
}
