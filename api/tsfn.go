package api

import (
	"github.com/wippyai/napi-runtime/dispatch"
	"github.com/wippyai/napi-runtime/env"
	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/value"
)

// tsfnState binds a dispatch.TSFN to its environment, callable, and
// native callbacks.
type tsfnState struct {
	tsfn *dispatch.TSFN
	env  *env.Env

	callable *value.Function // may be nil when only call_js_cb is used
	keep     *env.Reference  // strong pin on the callable
	callJS   napi.CallJS
	finalize napi.Finalize
	finData  uintptr
	finHint  uintptr
}

// CreateThreadsafeFunction implements napi_create_threadsafe_function.
// Must be called on the host thread.
func (a *API) CreateThreadsafeFunction(envID napi.Env, fn napi.Value,
	maxQueueSize, initialThreadCount int, context uintptr,
	threadFinalize napi.Finalize, threadFinalizeData, threadFinalizeHint uintptr,
	callJS napi.CallJS, result *napi.ThreadsafeFunction) napi.Status {

	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil || initialThreadCount <= 0 {
		return e.SetLastError(napi.InvalidArg)
	}
	if a.loop == nil {
		return e.SetLastError(napi.GenericFailure)
	}

	st := &tsfnState{
		env:      e,
		callJS:   callJS,
		finalize: threadFinalize,
		finData:  threadFinalizeData,
		finHint:  threadFinalizeHint,
	}

	if fn != napi.HandleHole {
		v, status := valueOf(e, fn)
		if status != napi.OK {
			return e.SetLastError(status)
		}
		callable, ok := v.(*value.Function)
		if !ok {
			return e.SetLastError(napi.FunctionExpected)
		}
		st.callable = callable
		st.keep = e.NewReference(callable, 1, env.OwnedByRuntime)
	} else if callJS == nil {
		return e.SetLastError(napi.InvalidArg)
	}

	st.tsfn = dispatch.NewTSFN(a.loop, maxQueueSize, initialThreadCount, context,
		func(data uintptr) { a.dispatchTSFN(st, data) },
		func() { a.finalizeTSFN(st) })

	a.mu.Lock()
	id := a.nextT
	a.nextT++
	a.tsfns[id] = st
	a.mu.Unlock()

	*result = id
	return napi.OK
}

// dispatchTSFN runs on the host thread for each drained item: fresh
// scope, user call_js_cb (or a bare invoke of the callable), exceptions
// routed through the pending slot and then the uncaught hook.
func (a *API) dispatchTSFN(st *tsfnState, data uintptr) {
	e := st.env
	if e.TornDown() {
		return
	}
	sc := e.Scopes.Open(false)
	e.OpenScopes++
	defer func() {
		e.OpenScopes--
		e.Scopes.Close(sc)
	}()

	var fnHandle napi.Value = napi.HandleHole
	if st.callable != nil {
		fnHandle = sc.Add(st.callable)
	}

	if st.callJS != nil {
		st.callJS(e.ID, fnHandle, st.tsfn.Context, data)
	} else if st.callable != nil {
		_, err := st.callable.Invoke(value.Undefined, nil)
		if err != nil {
			e.Throw(value.ThrownValue(err))
		}
	}

	if e.ExceptionPending() {
		a.loop.Uncaught(e.ClearException())
	}
}

// finalizeTSFN runs on the host thread once the queue is closed and
// drained.
func (a *API) finalizeTSFN(st *tsfnState) {
	if st.keep != nil {
		st.keep.Delete()
		st.keep = nil
	}
	if st.finalize != nil && !st.env.TornDown() {
		fin := st.finalize
		st.finalize = nil
		sc := st.env.Scopes.Open(false)
		st.env.OpenScopes++
		fin(st.env.ID, st.finData, st.finHint)
		st.env.OpenScopes--
		st.env.Scopes.Close(sc)
	}

	a.mu.Lock()
	for id, s := range a.tsfns {
		if s == st {
			delete(a.tsfns, id)
			break
		}
	}
	a.mu.Unlock()
}

func (a *API) tsfnByID(id napi.ThreadsafeFunction) (*tsfnState, bool) {
	a.mu.Lock()
	st, ok := a.tsfns[id]
	a.mu.Unlock()
	return st, ok
}

// CallThreadsafeFunction implements napi_call_threadsafe_function. Safe
// from any thread.
func (a *API) CallThreadsafeFunction(id napi.ThreadsafeFunction, data uintptr, mode napi.CallMode) napi.Status {
	st, ok := a.tsfnByID(id)
	if !ok {
		return napi.InvalidArg
	}
	return st.tsfn.Call(data, mode)
}

// AcquireThreadsafeFunction implements napi_acquire_threadsafe_function.
func (a *API) AcquireThreadsafeFunction(id napi.ThreadsafeFunction) napi.Status {
	st, ok := a.tsfnByID(id)
	if !ok {
		return napi.InvalidArg
	}
	return st.tsfn.Acquire()
}

// ReleaseThreadsafeFunction implements napi_release_threadsafe_function.
func (a *API) ReleaseThreadsafeFunction(id napi.ThreadsafeFunction, mode napi.ReleaseMode) napi.Status {
	st, ok := a.tsfnByID(id)
	if !ok {
		return napi.InvalidArg
	}
	return st.tsfn.Release(mode)
}

// RefThreadsafeFunction implements napi_ref_threadsafe_function.
func (a *API) RefThreadsafeFunction(envID napi.Env, id napi.ThreadsafeFunction) napi.Status {
	st, ok := a.tsfnByID(id)
	if !ok {
		return napi.InvalidArg
	}
	st.tsfn.Ref()
	return napi.OK
}

// UnrefThreadsafeFunction implements napi_unref_threadsafe_function.
func (a *API) UnrefThreadsafeFunction(envID napi.Env, id napi.ThreadsafeFunction) napi.Status {
	st, ok := a.tsfnByID(id)
	if !ok {
		return napi.InvalidArg
	}
	st.tsfn.Unref()
	return napi.OK
}

// GetThreadsafeFunctionContext implements
// napi_get_threadsafe_function_context.
func (a *API) GetThreadsafeFunctionContext(id napi.ThreadsafeFunction, result *uintptr) napi.Status {
	st, ok := a.tsfnByID(id)
	if !ok || result == nil {
		return napi.InvalidArg
	}
	*result = st.tsfn.Context
	return napi.OK
}
