package api

import (
	"github.com/wippyai/napi-runtime/env"
	"github.com/wippyai/napi-runtime/handle"
	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/value"
)

// bindCallback wraps a native callback into a host-callable function.
// This is the trampoline: each invocation opens a scope, publishes the
// callback info through the scope's ID, runs the native code, then routes
// the pending exception or return handle back to the host caller.
func (a *API) bindCallback(e *env.Env, name string, cb napi.Callback, data uintptr) *value.Function {
	f := &value.Function{Name: name}
	f.Fn = func(this any, args []any, newTarget *value.Function) (any, error) {
		return a.invokeNative(e, f, cb, data, this, args, newTarget)
	}
	return f
}

func (a *API) invokeNative(e *env.Env, f *value.Function, cb napi.Callback, data uintptr,
	this any, args []any, newTarget *value.Function) (any, error) {

	if !e.CanCallIntoJS() {
		return nil, value.Throw(value.NewError(value.PlainError, "", napi.CannotRunJS.Message()))
	}

	sc := e.Scopes.Open(false)
	e.OpenScopes++
	sc.CallbackInfo = handle.CallbackInfo{
		This:      this,
		Args:      args,
		Data:      data,
		Fn:        f,
		NewTarget: newTarget,
	}

	ret := cb(e.ID, napi.CallbackInfo(sc.ID))

	var out any = value.Undefined
	var err error
	if e.ExceptionPending() {
		err = value.Throw(e.ClearException())
	} else if ret != napi.HandleHole {
		if v, ok := e.Store.Get(ret); ok {
			out = v
		}
	}

	e.OpenScopes--
	e.Scopes.Close(sc)
	return out, err
}

// CreateFunction implements napi_create_function.
func (a *API) CreateFunction(envID napi.Env, name string, cb napi.Callback, data uintptr, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil || cb == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	if name == "" {
		name = "anonymous"
	}
	h, status := addValue(e, a.bindCallback(e, name, cb, data))
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// GetCbInfo implements napi_get_cb_info: copy up to len(argv) arguments,
// pad the rest with undefined, and report the true count.
func (a *API) GetCbInfo(envID napi.Env, info napi.CallbackInfo,
	argc *int, argv []napi.Value, thisArg *napi.Value, data *uintptr) napi.Status {

	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	ci, st := callbackInfoOf(e, info)
	if st != napi.OK {
		return e.SetLastError(st)
	}

	if argv != nil {
		n := len(argv)
		for i := 0; i < n; i++ {
			if i < len(ci.Args) {
				h, status := addValue(e, ci.Args[i])
				if status != napi.OK {
					return e.SetLastError(status)
				}
				argv[i] = h
			} else {
				argv[i] = napi.HandleUndefined
			}
		}
	}
	if argc != nil {
		*argc = len(ci.Args)
	}
	if thisArg != nil {
		if ci.This == nil {
			*thisArg = napi.HandleUndefined
		} else {
			h, status := addValue(e, ci.This)
			if status != napi.OK {
				return e.SetLastError(status)
			}
			*thisArg = h
		}
	}
	if data != nil {
		*data = ci.Data
	}
	return napi.OK
}

// GetNewTarget implements napi_get_new_target: the constructor when the
// call is a construction, the hole otherwise.
func (a *API) GetNewTarget(envID napi.Env, info napi.CallbackInfo, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	ci, st := callbackInfoOf(e, info)
	if st != napi.OK {
		return e.SetLastError(st)
	}
	if ci.NewTarget == nil {
		*result = napi.HandleHole
		return napi.OK
	}
	h, status := addValue(e, ci.NewTarget)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// CallFunction implements napi_call_function.
func (a *API) CallFunction(envID napi.Env, recv, fn napi.Value, args []napi.Value, result *napi.Value) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	fv, status := valueOf(e, fn)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	f, ok := fv.(*value.Function)
	if !ok {
		return e.SetLastError(napi.FunctionExpected)
	}
	var this any = value.Undefined
	if recv != napi.HandleHole {
		this, status = valueOf(e, recv)
		if status != napi.OK {
			return e.SetLastError(status)
		}
	}
	callArgs := make([]any, len(args))
	for i, ah := range args {
		av, status := valueOf(e, ah)
		if status != napi.OK {
			return e.SetLastError(status)
		}
		callArgs[i] = av
	}

	ret, err := f.Invoke(this, callArgs)
	if err != nil {
		return throwInto(e, err)
	}
	if result != nil {
		h, status := addValue(e, ret)
		if status != napi.OK {
			return e.SetLastError(status)
		}
		*result = h
	}
	return napi.OK
}

// NewInstance implements napi_new_instance.
func (a *API) NewInstance(envID napi.Env, ctor napi.Value, args []napi.Value, result *napi.Value) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	cv, status := valueOf(e, ctor)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	f, ok := cv.(*value.Function)
	if !ok {
		return e.SetLastError(napi.FunctionExpected)
	}
	callArgs := make([]any, len(args))
	for i, ah := range args {
		av, status := valueOf(e, ah)
		if status != napi.OK {
			return e.SetLastError(status)
		}
		callArgs[i] = av
	}

	inst, err := f.Construct(callArgs)
	if err != nil {
		return throwInto(e, err)
	}
	h, status := addValue(e, inst)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// IsFunction reports whether h is a function value. It has no slot in the
// abi table; native code learns function nature through napi_typeof.
func (a *API) IsFunction(envID napi.Env, h napi.Value, result *bool) napi.Status {
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
	_, isFn := v.(*value.Function)
	*result = isFn
	return napi.OK
}

func callbackInfoOf(e *env.Env, info napi.CallbackInfo) (*handle.CallbackInfo, napi.Status) {
	sc := e.Scopes.ByID(napi.HandleScope(info))
	if sc == nil {
		return nil, napi.InvalidArg
	}
	return &sc.CallbackInfo, napi.OK
}
