package api

import (
	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/value"
)

// CreatePromise implements napi_create_promise.
func (a *API) CreatePromise(envID napi.Env, deferred *napi.Deferred, promise *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if deferred == nil || promise == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	d, p := value.NewDeferred()
	h, status := addValue(e, p)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*deferred = e.StoreDeferred(d)
	*promise = h
	return napi.OK
}

func (a *API) settleDeferred(envID napi.Env, deferred napi.Deferred, resolution napi.Value, reject bool) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	d, ok := e.Deferred(deferred)
	if !ok {
		return e.SetLastError(napi.InvalidArg)
	}
	v, status := valueOf(e, resolution)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	var settled bool
	if reject {
		settled = d.Reject(v)
	} else {
		settled = d.Resolve(v)
	}
	if !settled {
		return e.SetLastError(napi.InvalidArg)
	}
	e.DeleteDeferred(deferred)
	return napi.OK
}

// ResolveDeferred implements napi_resolve_deferred. Settling twice fails.
func (a *API) ResolveDeferred(envID napi.Env, deferred napi.Deferred, resolution napi.Value) napi.Status {
	return a.settleDeferred(envID, deferred, resolution, false)
}

// RejectDeferred implements napi_reject_deferred.
func (a *API) RejectDeferred(envID napi.Env, deferred napi.Deferred, rejection napi.Value) napi.Status {
	return a.settleDeferred(envID, deferred, rejection, true)
}

// IsPromise implements napi_is_promise.
func (a *API) IsPromise(envID napi.Env, h napi.Value, result *bool) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	v, status := valueOf(e, h)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	_, isPromise := v.(*value.Promise)
	*result = isPromise
	return napi.OK
}
