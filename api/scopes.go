package api

import (
	"github.com/wippyai/napi-runtime/napi"
)

// OpenHandleScope implements napi_open_handle_scope.
func (a *API) OpenHandleScope(envID napi.Env, result *napi.HandleScope) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	sc := e.Scopes.Open(false)
	e.OpenScopes++
	*result = sc.ID
	return napi.OK
}

// CloseHandleScope implements napi_close_handle_scope. Scopes close LIFO;
// anything else is a mismatch.
func (a *API) CloseHandleScope(envID napi.Env, scope napi.HandleScope) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	sc := e.Scopes.ByID(scope)
	if sc == nil {
		return e.SetLastError(napi.HandleScopeMismatch)
	}
	if status := e.Scopes.Close(sc); status != napi.OK {
		return e.SetLastError(status)
	}
	e.OpenScopes--
	return napi.OK
}

// OpenEscapableHandleScope implements napi_open_escapable_handle_scope.
func (a *API) OpenEscapableHandleScope(envID napi.Env, result *napi.EscapableHandleScope) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	sc := e.Scopes.Open(true)
	e.OpenScopes++
	*result = napi.EscapableHandleScope(sc.ID)
	return napi.OK
}

// CloseEscapableHandleScope implements napi_close_escapable_handle_scope.
func (a *API) CloseEscapableHandleScope(envID napi.Env, scope napi.EscapableHandleScope) napi.Status {
	return a.CloseHandleScope(envID, napi.HandleScope(scope))
}

// EscapeHandle implements napi_escape_handle: promote one handle to the
// parent scope, at most once per escapable scope.
func (a *API) EscapeHandle(envID napi.Env, scope napi.EscapableHandleScope, escapee napi.Value, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	sc := e.Scopes.ByID(napi.HandleScope(scope))
	if sc == nil || !sc.Escapable() {
		return e.SetLastError(napi.InvalidArg)
	}
	// Singletons are stable everywhere; escaping one is the identity.
	if escapee < napi.MinHandleID {
		*result = escapee
		return napi.OK
	}
	promoted, st := sc.Escape(escapee)
	if st != napi.OK {
		return e.SetLastError(st)
	}
	*result = promoted
	return napi.OK
}
