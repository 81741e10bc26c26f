package api

import (
	"github.com/wippyai/napi-runtime/env"
	"github.com/wippyai/napi-runtime/napi"
)

// DefineClass implements napi_define_class: a constructor built on the
// trampoline, static descriptors on the constructor itself, the rest on
// the prototype instances inherit.
func (a *API) DefineClass(envID napi.Env, name string, ctor napi.Callback, data uintptr,
	props []napi.PropertyDescriptor, result *napi.Value) napi.Status {

	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil || ctor == nil {
		return e.SetLastError(napi.InvalidArg)
	}

	fn := a.bindCallback(e, name, ctor, data)
	proto := fn.EnsurePrototype()

	for i := range props {
		d := &props[i]
		table := proto
		if d.Attributes&napi.Static != 0 {
			table = fn.Props()
		}
		if status := a.defineOne(e, table, d); status != napi.OK {
			return e.SetLastError(status)
		}
	}

	h, status := addValue(e, fn)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// Wrap implements napi_wrap. The native pointer rides on a weak
// finalizing reference stored in the object's binding slot; wrapping an
// already-wrapped object fails.
func (a *API) Wrap(envID napi.Env, object napi.Value, nativeObject uintptr,
	finalize napi.Finalize, hint uintptr, result *napi.Ref) napi.Status {

	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	obj, status := plainObjectOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	b := bindingOf(obj)
	if b.Wrapped != nil {
		return e.SetLastError(napi.InvalidArg)
	}

	ownership := env.OwnedByRuntime
	if result != nil {
		ownership = env.OwnedByUserland
	}
	ref := e.NewReferenceWithFinalizer(obj, 0, ownership, finalize, nativeObject, hint)
	b.Wrapped = ref
	if result != nil {
		*result = ref.ID()
	}
	return napi.OK
}

// Unwrap implements napi_unwrap.
func (a *API) Unwrap(envID napi.Env, object napi.Value, result *uintptr) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	obj, status := plainObjectOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	b := bindingOf(obj)
	if b.Wrapped == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	*result = b.Wrapped.FinalizeData()
	return napi.OK
}

// RemoveWrap implements napi_remove_wrap: surrender the association
// without running the finalizer.
func (a *API) RemoveWrap(envID napi.Env, object napi.Value, result *uintptr) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	obj, status := plainObjectOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	b := bindingOf(obj)
	if b.Wrapped == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	if result != nil {
		*result = b.Wrapped.FinalizeData()
	}
	b.Wrapped.ResetFinalizer()
	if b.Wrapped.Ownership() == env.OwnedByRuntime {
		b.Wrapped.Delete()
	}
	b.Wrapped = nil
	return napi.OK
}

// AddFinalizer implements napi_add_finalizer: observe an object's death
// without wrapping it.
func (a *API) AddFinalizer(envID napi.Env, object napi.Value, data uintptr,
	finalize napi.Finalize, hint uintptr, result *napi.Ref) napi.Status {

	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if finalize == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	obj, status := plainObjectOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	ownership := env.OwnedByRuntime
	if result != nil {
		ownership = env.OwnedByUserland
	}
	ref := e.NewReferenceWithFinalizer(obj, 0, ownership, finalize, data, hint)
	if result != nil {
		*result = ref.ID()
	}
	return napi.OK
}
