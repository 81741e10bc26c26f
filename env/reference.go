package env

import (
	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/value"
)

// Ownership says who deletes a reference: the runtime when it hits zero
// and finalizes, or userland through napi_delete_reference.
type Ownership int32

const (
	OwnedByRuntime Ownership = iota
	OwnedByUserland
)

// listHead anchors an intrusive doubly-linked list of references. New
// links go to the front, so traversal is LIFO — teardown order relies on
// this.
type listHead struct {
	next *Reference
}

func (l *listHead) finalizeAll() {
	for l.next != nil {
		l.next.finalizeOnHost()
	}
}

// weakToken ties a collector callback to the reference state that was
// current when the weak transition happened. Going strong again, or
// deleting the reference, invalidates the token so a stale death notice
// is ignored.
type weakToken struct {
	ref *Reference
}

// Reference is a strong or weak pin on a host value. Refcount above zero
// retains the target; at zero the target is only weakly observed and
// reading it after collection yields nothing.
type Reference struct {
	id  napi.Ref
	env *Env

	refcount  uint32
	ownership Ownership

	strong    any
	weak      value.WeakRef
	canBeWeak bool
	token     *weakToken

	finalize     napi.Finalize
	finalizeData uintptr
	finalizeHint uintptr
	hasFinalizer bool

	prev      *Reference
	next      *Reference
	head      *listHead
	finalized bool
	deleted   bool
}

// NewReference creates and registers a reference.
func (e *Env) NewReference(v any, initialRefcount uint32, ownership Ownership) *Reference {
	r := &Reference{
		id:        e.nextRef,
		env:       e,
		refcount:  initialRefcount,
		ownership: ownership,
		strong:    v,
	}
	_, r.canBeWeak = value.MakeWeak(v)
	e.nextRef++
	e.refs[r.id] = r
	r.link(&e.live)
	if initialRefcount == 0 {
		r.setWeak()
	}
	return r
}

// NewReferenceWithFinalizer creates a reference carrying a native
// finalizer record.
func (e *Env) NewReferenceWithFinalizer(v any, initialRefcount uint32, ownership Ownership,
	finalize napi.Finalize, data, hint uintptr) *Reference {

	r := &Reference{
		id:           e.nextRef,
		env:          e,
		refcount:     initialRefcount,
		ownership:    ownership,
		strong:       v,
		finalize:     finalize,
		finalizeData: data,
		finalizeHint: hint,
		hasFinalizer: true,
	}
	_, r.canBeWeak = value.MakeWeak(v)
	e.nextRef++
	e.refs[r.id] = r
	r.link(&e.finalizing)
	if initialRefcount == 0 {
		r.setWeak()
	}
	return r
}

// Reference resolves a reference handle.
func (e *Env) Reference(id napi.Ref) (*Reference, bool) {
	r, ok := e.refs[id]
	return r, ok
}

// ID returns the reference handle.
func (r *Reference) ID() napi.Ref { return r.id }

// Refcount returns the current count.
func (r *Reference) Refcount() uint32 { return r.refcount }

// FinalizeData returns the data pointer bound to the finalizer record.
func (r *Reference) FinalizeData() uintptr { return r.finalizeData }

// Ownership reports who deletes the reference.
func (r *Reference) Ownership() Ownership { return r.ownership }

// Ref increments the count. Crossing 0 -> 1 upgrades weak to strong; the
// upgrade fails (count stays 0) when the target is already gone.
func (r *Reference) Ref() uint32 {
	if r.deleted || r.finalized {
		return 0
	}
	if r.refcount == 0 {
		if !r.clearWeak() {
			return 0
		}
	}
	r.refcount++
	return r.refcount
}

// Unref decrements the count. Crossing 1 -> 0 downgrades strong to weak.
func (r *Reference) Unref() uint32 {
	if r.deleted || r.finalized || r.refcount == 0 {
		return 0
	}
	r.refcount--
	if r.refcount == 0 {
		r.setWeak()
	}
	return r.refcount
}

// Value returns the target, or (nil, false) once the weakly-held target
// has been collected or the reference emptied.
func (r *Reference) Value() (any, bool) {
	if r.deleted || r.finalized {
		return nil, false
	}
	if r.strong != nil {
		return r.strong, true
	}
	if r.weak != nil {
		if v := r.weak.Get(); v != nil {
			return v, true
		}
	}
	return nil, false
}

// ResetFinalizer drops the finalizer record so it will never run. Used by
// napi_remove_wrap.
func (r *Reference) ResetFinalizer() {
	r.finalize = nil
	r.finalizeData = 0
	r.finalizeHint = 0
	r.hasFinalizer = false
}

// Delete removes the reference. The finalizer record does not run on
// explicit deletion.
func (r *Reference) Delete() {
	if r.deleted {
		return
	}
	r.deleted = true
	r.invalidateToken()
	r.unlink()
	delete(r.env.refs, r.id)
	r.strong = nil
	r.weak = nil
}

func (r *Reference) setWeak() {
	if r.strong == nil {
		return
	}
	if !r.canBeWeak {
		// Primitives cannot be weakly observed; the slot empties now.
		r.strong = nil
		return
	}
	wr, _ := value.MakeWeak(r.strong)
	r.weak = wr
	token := &weakToken{ref: r}
	r.token = token
	env := r.env
	value.OnCollect(r.strong, func() {
		if ref := token.ref; ref != nil {
			env.EnqueueFinalizerFromGC(ref)
		}
	})
	r.strong = nil
}

func (r *Reference) clearWeak() bool {
	if r.weak == nil {
		return r.strong != nil
	}
	v := r.weak.Get()
	if v == nil {
		return false
	}
	r.invalidateToken()
	r.strong = v
	r.weak = nil
	return true
}

func (r *Reference) invalidateToken() {
	if r.token != nil {
		r.token.ref = nil
		r.token = nil
	}
}

// finalizeOnHost runs the finalizer record exactly once, on the host
// thread. The reference moves off its list first so a re-entrant delete
// from inside the finalizer cannot double-visit it.
func (r *Reference) finalizeOnHost() {
	if r.finalized || r.deleted {
		r.unlink()
		return
	}
	r.finalized = true
	r.invalidateToken()
	r.unlink()

	if r.hasFinalizer && r.finalize != nil {
		r.env.callFinalizer(r.finalize, r.finalizeData, r.finalizeHint)
		r.hasFinalizer = false
	}

	if r.ownership == OwnedByRuntime {
		r.deleted = true
		delete(r.env.refs, r.id)
	}
	r.strong = nil
	r.weak = nil
}

func (r *Reference) link(head *listHead) {
	r.head = head
	r.next = head.next
	if r.next != nil {
		r.next.prev = r
	}
	head.next = r
	r.prev = nil
}

func (r *Reference) unlink() {
	if r.head == nil {
		return
	}
	if r.prev != nil {
		r.prev.next = r.next
	} else {
		r.head.next = r.next
	}
	if r.next != nil {
		r.next.prev = r.prev
	}
	r.prev = nil
	r.next = nil
	r.head = nil
}
