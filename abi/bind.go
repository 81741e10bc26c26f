package abi

import (
	"github.com/wippyai/napi-runtime/api"
)

// Bind fills every table slot from an API instance. This is the
// production wiring; tests install partial tables to exercise the
// per-slot defaults.
func Bind(a *api.API) *Table {
	return &Table{
		GetVersion:     a.GetVersion,
		GetNodeVersion: a.GetNodeVersion,

		GetUndefined:       a.GetUndefined,
		GetNull:            a.GetNull,
		GetGlobal:          a.GetGlobal,
		GetBoolean:         a.GetBoolean,
		CreateInt32:        a.CreateInt32,
		CreateUint32:       a.CreateUint32,
		CreateInt64:        a.CreateInt64,
		CreateDouble:       a.CreateDouble,
		CreateBigintInt64:  a.CreateBigintInt64,
		CreateBigintUint64: a.CreateBigintUint64,
		CreateStringUTF8:   a.CreateStringUTF8,
		CreateStringLatin1: a.CreateStringLatin1,
		CreateStringUTF16:  a.CreateStringUTF16,
		CreateSymbol:       a.CreateSymbol,
		CreateObject:       a.CreateObject,
		CreateArray:        a.CreateArray,
		CreateArrayLength:  a.CreateArrayWithLength,
		CreateExternal:     a.CreateExternal,
		CreateDate:         a.CreateDate,

		TypeOf:              a.TypeOf,
		GetValueBool:        a.GetValueBool,
		GetValueInt32:       a.GetValueInt32,
		GetValueUint32:      a.GetValueUint32,
		GetValueInt64:       a.GetValueInt64,
		GetValueDouble:      a.GetValueDouble,
		GetValueBigintInt64: a.GetValueBigintInt64,
		GetValueStringUTF8:  a.GetValueStringUTF8,
		GetValueStringUTF16: a.GetValueStringUTF16,
		GetValueExternal:    a.GetValueExternal,
		GetDateValue:        a.GetDateValue,
		StrictEquals:        a.StrictEquals,
		Instanceof:          a.Instanceof,
		IsArray:             a.IsArray,
		IsArrayBuffer:       a.IsArrayBuffer,
		IsBuffer:            a.IsBuffer,
		IsTypedArray:        a.IsTypedArray,
		IsDataView:          a.IsDataView,
		IsDate:              a.IsDate,
		IsError:             a.IsError,
		IsPromise:           a.IsPromise,
		IsDetachedArrayBuf:  a.IsDetachedArrayBuffer,
		CoerceToBool:        a.CoerceToBool,
		CoerceToNumber:      a.CoerceToNumber,
		CoerceToString:      a.CoerceToString,
		CoerceToObject:      a.CoerceToObject,

		GetProperty:         a.GetProperty,
		SetProperty:         a.SetProperty,
		HasProperty:         a.HasProperty,
		HasOwnProperty:      a.HasOwnProperty,
		DeleteProperty:      a.DeleteProperty,
		GetNamedProperty:    a.GetNamedProperty,
		SetNamedProperty:    a.SetNamedProperty,
		HasNamedProperty:    a.HasNamedProperty,
		GetElement:          a.GetElement,
		SetElement:          a.SetElement,
		HasElement:          a.HasElement,
		DeleteElement:       a.DeleteElement,
		GetArrayLength:      a.GetArrayLength,
		GetPropertyNames:    a.GetPropertyNames,
		GetAllPropertyNames: a.GetAllPropertyNames,
		DefineProperties:    a.DefineProperties,
		ObjectFreeze:        a.ObjectFreeze,
		ObjectSeal:          a.ObjectSeal,
		GetPrototype:        a.GetPrototype,
		TypeTagObject:       a.TypeTagObject,
		CheckObjectTypeTag:  a.CheckObjectTypeTag,

		CreateFunction: a.CreateFunction,
		CallFunction:   a.CallFunction,
		GetCbInfo:      a.GetCbInfo,
		GetNewTarget:   a.GetNewTarget,
		NewInstance:    a.NewInstance,
		DefineClass:    a.DefineClass,
		Wrap:           a.Wrap,
		Unwrap:         a.Unwrap,
		RemoveWrap:     a.RemoveWrap,
		AddFinalizer:   a.AddFinalizer,

		Throw:                    a.Throw,
		ThrowError:               a.ThrowError,
		ThrowTypeError:           a.ThrowTypeError,
		ThrowRangeError:          a.ThrowRangeError,
		CreateError:              a.CreateError,
		CreateTypeError:          a.CreateTypeError,
		CreateRangeError:         a.CreateRangeError,
		IsExceptionPending:       a.IsExceptionPending,
		GetAndClearLastException: a.GetAndClearLastException,
		GetLastErrorInfo:         a.GetLastErrorInfo,
		FatalError:               a.FatalError,
		FatalException:           a.FatalException,

		OpenHandleScope:           a.OpenHandleScope,
		CloseHandleScope:          a.CloseHandleScope,
		OpenEscapableHandleScope:  a.OpenEscapableHandleScope,
		CloseEscapableHandleScope: a.CloseEscapableHandleScope,
		EscapeHandle:              a.EscapeHandle,

		CreateReference:   a.CreateReference,
		DeleteReference:   a.DeleteReference,
		ReferenceRef:      a.ReferenceRef,
		ReferenceUnref:    a.ReferenceUnref,
		GetReferenceValue: a.GetReferenceValue,

		CreateArrayBuffer:         a.CreateArrayBuffer,
		CreateExternalArrayBuffer: a.CreateExternalArrayBuffer,
		GetArrayBufferInfo:        a.GetArrayBufferInfo,
		DetachArrayBuffer:         a.DetachArrayBuffer,
		CreateTypedArray:          a.CreateTypedArray,
		GetTypedArrayInfo:         a.GetTypedArrayInfo,
		CreateDataView:            a.CreateDataView,
		GetDataViewInfo:           a.GetDataViewInfo,
		CreateBuffer:              a.CreateBuffer,
		CreateBufferCopy:          a.CreateBufferCopy,
		GetBufferInfo:             a.GetBufferInfo,

		CreatePromise:   a.CreatePromise,
		ResolveDeferred: a.ResolveDeferred,
		RejectDeferred:  a.RejectDeferred,

		SetInstanceData:      a.SetInstanceData,
		GetInstanceData:      a.GetInstanceData,
		AddEnvCleanupHook:    a.AddEnvCleanupHook,
		RemoveEnvCleanupHook: a.RemoveEnvCleanupHook,

		CreateThreadsafeFunction:     a.CreateThreadsafeFunction,
		CallThreadsafeFunction:       a.CallThreadsafeFunction,
		AcquireThreadsafeFunction:    a.AcquireThreadsafeFunction,
		ReleaseThreadsafeFunction:    a.ReleaseThreadsafeFunction,
		RefThreadsafeFunction:        a.RefThreadsafeFunction,
		UnrefThreadsafeFunction:      a.UnrefThreadsafeFunction,
		GetThreadsafeFunctionContext: a.GetThreadsafeFunctionContext,
		CreateAsyncWork:              a.CreateAsyncWork,
		QueueAsyncWork:               a.QueueAsyncWork,
		CancelAsyncWork:              a.CancelAsyncWork,
		DeleteAsyncWork:              a.DeleteAsyncWork,

		AsyncInit:      a.AsyncInit,
		AsyncDestroy:   a.AsyncDestroy,
		GetUVEventLoop: a.GetUVEventLoop,
		MakeCallback:   a.MakeCallback,
	}
}
