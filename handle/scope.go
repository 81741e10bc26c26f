package handle

import (
	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/value"
)

// CallbackInfo describes one in-flight callback invocation. Its owning
// scope's ID doubles as the napi_callback_info handle.
type CallbackInfo struct {
	This      any
	Args      []any
	Data      uintptr
	Fn        *value.Function
	NewTarget *value.Function
}

// Scope owns the contiguous handle-ID range [Start, End) created while it
// was the innermost scope.
type Scope struct {
	ID    napi.HandleScope
	Start napi.Value
	End   napi.Value

	parent *Scope
	child  *Scope // retained for reuse across open/close cycles
	store  *Store

	escapable    bool
	escapeCalled bool
	CallbackInfo CallbackInfo
}

// Add stores v in this scope and returns its handle ID.
func (sc *Scope) Add(v any) napi.Value {
	id := sc.store.Push(v)
	sc.End = id + 1
	return id
}

// Intern stores v respecting singleton identity.
func (sc *Scope) Intern(v any) napi.Value {
	id := sc.store.Intern(v)
	if id >= sc.Start {
		sc.End = id + 1
	}
	return id
}

// Owns reports whether the handle ID was created in this scope.
func (sc *Scope) Owns(id napi.Value) bool {
	return id >= sc.Start && id < sc.End
}

// Escapable reports whether the scope was opened as escapable.
func (sc *Scope) Escapable() bool { return sc.escapable }

// EscapeCalled reports whether the single promotion was consumed.
func (sc *Scope) EscapeCalled() bool { return sc.escapeCalled }

// Escape promotes one handle into the parent scope's range. The handle is
// swapped to the scope's first slot and the boundary moves past it, so the
// parent owns it when this scope closes.
func (sc *Scope) Escape(id napi.Value) (napi.Value, napi.Status) {
	if sc.escapeCalled {
		return 0, napi.EscapeCalledTwice
	}
	sc.escapeCalled = true
	if !sc.Owns(id) {
		return 0, napi.InvalidArg
	}
	promoted := sc.Start
	sc.store.Swap(id, promoted)
	sc.Start++
	if sc.parent != nil && sc.parent.End < sc.Start {
		sc.parent.End = sc.Start
	}
	return promoted, napi.OK
}

func (sc *Scope) reuse(parent *Scope, escapable bool) {
	sc.Start = parent.End
	sc.End = parent.End
	sc.escapable = escapable
	sc.escapeCalled = false
	sc.CallbackInfo = CallbackInfo{}
}

func (sc *Scope) dispose() {
	sc.CallbackInfo = CallbackInfo{}
	if sc.Start != sc.End {
		sc.store.Erase(sc.Start, sc.End)
	}
}

// Stack is the per-environment scope stack. A root scope owning the
// singleton range is always open and never closed.
type Stack struct {
	store   *Store
	root    *Scope
	current *Scope
	byID    []*Scope
}

// NewStack creates the stack with its root scope.
func NewStack(store *Store) *Stack {
	root := &Scope{
		ID:    0,
		Start: 1,
		End:   napi.MinHandleID,
		store: store,
	}
	return &Stack{
		store:   store,
		root:    root,
		current: root,
		byID:    []*Scope{root},
	}
}

// Current returns the innermost open scope.
func (st *Stack) Current() *Scope { return st.current }

// Depth returns the number of scopes open above the root.
func (st *Stack) Depth() int {
	d := 0
	for sc := st.current; sc != st.root; sc = sc.parent {
		d++
	}
	return d
}

// Open pushes a new scope. Closed child scopes are reused to keep the
// per-callback open/close cycle allocation-free.
func (st *Stack) Open(escapable bool) *Scope {
	cur := st.current
	sc := cur.child
	if sc != nil {
		sc.reuse(cur, escapable)
	} else {
		sc = &Scope{
			ID:        napi.HandleScope(cur.ID + 1),
			Start:     cur.End,
			End:       cur.End,
			parent:    cur,
			store:     st.store,
			escapable: escapable,
		}
		cur.child = sc
		st.byID = append(st.byID, sc)
	}
	st.current = sc
	return sc
}

// Close pops the given scope. Closing any scope other than the innermost,
// or the root, fails with HandleScopeMismatch.
func (st *Stack) Close(sc *Scope) napi.Status {
	if sc == nil || sc != st.current || sc == st.root {
		return napi.HandleScopeMismatch
	}
	st.current = sc.parent
	sc.dispose()
	return napi.OK
}

// ByID resolves a scope handle. Closed scopes still resolve (they are
// retained for reuse); callers gate on stack position.
func (st *Stack) ByID(id napi.HandleScope) *Scope {
	if int(id) < len(st.byID) {
		return st.byID[id]
	}
	return nil
}

// AtRoot reports whether no scope is open.
func (st *Stack) AtRoot() bool { return st.current == st.root }
