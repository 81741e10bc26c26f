package env

import (
	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/value"
)

type deferredSlot struct {
	d *value.Deferred
}

// StoreDeferred registers a settlement capability and returns its handle.
func (e *Env) StoreDeferred(d *value.Deferred) napi.Deferred {
	id := e.nextDeferred
	e.nextDeferred++
	e.deferreds[id] = &deferredSlot{d: d}
	return id
}

// Deferred resolves a deferred handle.
func (e *Env) Deferred(id napi.Deferred) (*value.Deferred, bool) {
	s, ok := e.deferreds[id]
	if !ok {
		return nil, false
	}
	return s.d, true
}

// DeleteDeferred removes a settled deferred; its handle becomes invalid.
func (e *Env) DeleteDeferred(id napi.Deferred) {
	delete(e.deferreds, id)
}
