package api

import (
	"github.com/wippyai/napi-runtime/env"
	"github.com/wippyai/napi-runtime/napi"
)

// CreateReference implements napi_create_reference.
func (a *API) CreateReference(envID napi.Env, v napi.Value, initialRefcount uint32, result *napi.Ref) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	target, status := valueOf(e, v)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	ref := e.NewReference(target, initialRefcount, env.OwnedByUserland)
	*result = ref.ID()
	return napi.OK
}

// DeleteReference implements napi_delete_reference. The finalizer record,
// if any, does not run on explicit deletion.
func (a *API) DeleteReference(envID napi.Env, ref napi.Ref) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	r, ok := e.Reference(ref)
	if !ok {
		return e.SetLastError(napi.InvalidArg)
	}
	r.Delete()
	return napi.OK
}

// ReferenceRef implements napi_reference_ref.
func (a *API) ReferenceRef(envID napi.Env, ref napi.Ref, result *uint32) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	r, ok := e.Reference(ref)
	if !ok {
		return e.SetLastError(napi.InvalidArg)
	}
	n := r.Ref()
	if result != nil {
		*result = n
	}
	return napi.OK
}

// ReferenceUnref implements napi_reference_unref.
func (a *API) ReferenceUnref(envID napi.Env, ref napi.Ref, result *uint32) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	r, ok := e.Reference(ref)
	if !ok {
		return e.SetLastError(napi.InvalidArg)
	}
	n := r.Unref()
	if result != nil {
		*result = n
	}
	return napi.OK
}

// GetReferenceValue implements napi_get_reference_value. A collected weak
// target yields the empty-handle sentinel.
func (a *API) GetReferenceValue(envID napi.Env, ref napi.Ref, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	r, ok := e.Reference(ref)
	if !ok {
		return e.SetLastError(napi.InvalidArg)
	}
	target, live := r.Value()
	if !live {
		*result = napi.HandleEmpty
		return napi.OK
	}
	h, status := addValue(e, target)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}
