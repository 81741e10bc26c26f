package api

import (
	"github.com/wippyai/napi-runtime/napi"
)

// SetInstanceData implements napi_set_instance_data.
func (a *API) SetInstanceData(envID napi.Env, data uintptr, finalize napi.Finalize, hint uintptr) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	e.SetInstanceData(data, finalize, hint)
	return napi.OK
}

// GetInstanceData implements napi_get_instance_data.
func (a *API) GetInstanceData(envID napi.Env, result *uintptr) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	*result = e.InstanceData()
	return napi.OK
}

// AddEnvCleanupHook implements napi_add_env_cleanup_hook. The shim's
// ok-stub is upgraded here: the runtime has a real teardown path, so
// hooks run LIFO during it.
func (a *API) AddEnvCleanupHook(envID napi.Env, fn napi.CleanupHook, arg uintptr) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if fn == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	e.AddCleanupHook(fn, arg)
	return napi.OK
}

// RemoveEnvCleanupHook implements napi_remove_env_cleanup_hook.
func (a *API) RemoveEnvCleanupHook(envID napi.Env, arg uintptr) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	e.RemoveCleanupHook(arg)
	return napi.OK
}

// Sentinel value written into out-pointers by the ok-stubs so callers
// that null-check their result see success.
const stubSentinel = 1

// AsyncInit implements napi_async_init as an ok-stub with a non-null
// sentinel context.
func (a *API) AsyncInit(envID napi.Env, resource, name napi.Value, result *napi.AsyncContext) napi.Status {
	if result != nil {
		*result = stubSentinel
	}
	return napi.OK
}

// AsyncDestroy implements napi_async_destroy as an ok-stub.
func (a *API) AsyncDestroy(envID napi.Env, ctx napi.AsyncContext) napi.Status {
	return napi.OK
}

// GetUVEventLoop has no uv loop to return; a non-null sentinel satisfies
// callers that only propagate errors.
func (a *API) GetUVEventLoop(envID napi.Env, result *uintptr) napi.Status {
	if result != nil {
		*result = stubSentinel
	}
	return napi.OK
}

// MakeCallback implements napi_make_callback as a plain call; there is no
// async-context stack to restore around it.
func (a *API) MakeCallback(envID napi.Env, ctx napi.AsyncContext, recv, fn napi.Value,
	args []napi.Value, result *napi.Value) napi.Status {
	return a.CallFunction(envID, recv, fn, args, result)
}
