package api

import (
	"github.com/wippyai/napi-runtime/dispatch"
	"github.com/wippyai/napi-runtime/env"
	"github.com/wippyai/napi-runtime/napi"
)

type workState struct {
	work *dispatch.Work
	env  *env.Env
}

// CreateAsyncWork implements napi_create_async_work. execute runs on a
// pool worker with no scope and must not touch handles; complete runs on
// the host thread inside a fresh scope with the pending-exception slot
// cleared.
func (a *API) CreateAsyncWork(envID napi.Env, resource, resourceName napi.Value,
	execute napi.AsyncExecute, complete napi.AsyncComplete, data uintptr,
	result *napi.AsyncWork) napi.Status {

	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil || execute == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	if a.loop == nil || a.pool == nil {
		return e.SetLastError(napi.GenericFailure)
	}

	st := &workState{env: e}
	st.work = dispatch.NewWork(a.loop, a.pool,
		func() { execute(e.ID, data) },
		func(s napi.Status) { a.completeWork(st, complete, s, data) })

	a.mu.Lock()
	id := a.nextW
	a.nextW++
	a.works[id] = st
	a.mu.Unlock()

	*result = id
	return napi.OK
}

func (a *API) completeWork(st *workState, complete napi.AsyncComplete, status napi.Status, data uintptr) {
	if complete == nil || st.env.TornDown() {
		return
	}
	e := st.env
	e.ClearException()
	sc := e.Scopes.Open(false)
	e.OpenScopes++
	complete(e.ID, status, data)
	e.OpenScopes--
	e.Scopes.Close(sc)
	if e.ExceptionPending() {
		a.loop.Uncaught(e.ClearException())
	}
}

func (a *API) workByID(id napi.AsyncWork) (*workState, bool) {
	a.mu.Lock()
	st, ok := a.works[id]
	a.mu.Unlock()
	return st, ok
}

// QueueAsyncWork implements napi_queue_async_work.
func (a *API) QueueAsyncWork(envID napi.Env, id napi.AsyncWork) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	st, ok := a.workByID(id)
	if !ok {
		return e.SetLastError(napi.InvalidArg)
	}
	if s := st.work.Queue(); s != napi.OK {
		return e.SetLastError(s)
	}
	return napi.OK
}

// CancelAsyncWork implements napi_cancel_async_work: wins only before
// execute starts.
func (a *API) CancelAsyncWork(envID napi.Env, id napi.AsyncWork) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	st, ok := a.workByID(id)
	if !ok {
		return e.SetLastError(napi.InvalidArg)
	}
	if s := st.work.Cancel(); s != napi.OK {
		return e.SetLastError(s)
	}
	return napi.OK
}

// DeleteAsyncWork implements napi_delete_async_work.
func (a *API) DeleteAsyncWork(envID napi.Env, id napi.AsyncWork) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	a.mu.Lock()
	_, ok := a.works[id]
	delete(a.works, id)
	a.mu.Unlock()
	if !ok {
		return e.SetLastError(napi.InvalidArg)
	}
	return napi.OK
}
