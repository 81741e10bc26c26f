package api

import (
	"go.uber.org/zap"

	"github.com/wippyai/napi-runtime/env"
	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/value"
)

// GetLastErrorInfo implements napi_get_last_error_info. The record
// reflects the most recent entry point; it is not cleared here.
func (a *API) GetLastErrorInfo(envID napi.Env, result *napi.ExtendedErrorInfo) napi.Status {
	e, ok := a.ctx.Env(envID)
	if !ok || result == nil {
		return napi.InvalidArg
	}
	info := e.LastErrorInfo()
	msg := info.Message
	if msg == "" && info.Code != napi.OK {
		msg = info.Code.Message()
	}
	*result = napi.ExtendedErrorInfo{
		ErrorMessage:    msg,
		EngineErrorCode: info.EngineCode,
		EngineReserved:  info.Reserved,
		ErrorCode:       info.Code,
	}
	return napi.OK
}

// Throw implements napi_throw.
func (a *API) Throw(envID napi.Env, errHandle napi.Value) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	v, status := valueOf(e, errHandle)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	e.Throw(v)
	return napi.OK
}

func (a *API) throwConstructed(envID napi.Env, kind value.ErrorKind, code, msg string) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	e.Throw(value.NewError(kind, code, msg))
	return napi.OK
}

// ThrowError implements napi_throw_error.
func (a *API) ThrowError(envID napi.Env, code, msg string) napi.Status {
	return a.throwConstructed(envID, value.PlainError, code, msg)
}

// ThrowTypeError implements napi_throw_type_error.
func (a *API) ThrowTypeError(envID napi.Env, code, msg string) napi.Status {
	return a.throwConstructed(envID, value.TypeError, code, msg)
}

// ThrowRangeError implements napi_throw_range_error.
func (a *API) ThrowRangeError(envID napi.Env, code, msg string) napi.Status {
	return a.throwConstructed(envID, value.RangeError, code, msg)
}

func (a *API) createError(envID napi.Env, kind value.ErrorKind, code, msg napi.Value, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	mv, status := valueOf(e, msg)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	message, ok := mv.(string)
	if !ok {
		return e.SetLastError(napi.StringExpected)
	}
	codeStr := ""
	if code != napi.HandleHole {
		cv, status := valueOf(e, code)
		if status != napi.OK {
			return e.SetLastError(status)
		}
		if s, isStr := cv.(string); isStr {
			codeStr = s
		} else if cv != nil && !value.IsUndefined(cv) {
			return e.SetLastError(napi.StringExpected)
		}
	}
	h, status := addValue(e, value.NewError(kind, codeStr, message))
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// CreateError implements napi_create_error.
func (a *API) CreateError(envID napi.Env, code, msg napi.Value, result *napi.Value) napi.Status {
	return a.createError(envID, value.PlainError, code, msg, result)
}

// CreateTypeError implements napi_create_type_error.
func (a *API) CreateTypeError(envID napi.Env, code, msg napi.Value, result *napi.Value) napi.Status {
	return a.createError(envID, value.TypeError, code, msg, result)
}

// CreateRangeError implements napi_create_range_error.
func (a *API) CreateRangeError(envID napi.Env, code, msg napi.Value, result *napi.Value) napi.Status {
	return a.createError(envID, value.RangeError, code, msg, result)
}

// IsError implements napi_is_error.
func (a *API) IsError(envID napi.Env, h napi.Value, result *bool) napi.Status {
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
	_, isErr := v.(*value.Error)
	*result = isErr
	return napi.OK
}

// IsExceptionPending implements napi_is_exception_pending. Exempt from
// the pending-exception short-circuit by construction.
func (a *API) IsExceptionPending(envID napi.Env, result *bool) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	*result = e.ExceptionPending()
	return napi.OK
}

// GetAndClearLastException implements napi_get_and_clear_last_exception.
func (a *API) GetAndClearLastException(envID napi.Env, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	if !e.ExceptionPending() {
		*result = napi.HandleUndefined
		return napi.OK
	}
	h, status := addValue(e, e.ClearException())
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// FatalError implements napi_fatal_error. The runtime logs and survives;
// aborting the host process over an add-on assertion is the wrong trade.
func (a *API) FatalError(location, message string) {
	env.Logger().Error("napi fatal error",
		zap.String("location", location),
		zap.String("message", message))
}

// FatalException implements napi_fatal_exception: route to the loop's
// uncaught hook when one exists, else log.
func (a *API) FatalException(envID napi.Env, errHandle napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	v, status := valueOf(e, errHandle)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	if a.loop != nil {
		a.loop.Uncaught(v)
		return napi.OK
	}
	env.Logger().Error("uncaught napi exception",
		zap.String("error", value.ToString(v)))
	return napi.OK
}
