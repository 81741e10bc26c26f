package wasmshim

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	napiruntime "github.com/wippyai/napi-runtime"
	"github.com/wippyai/napi-runtime/env"
	"github.com/wippyai/napi-runtime/errors"
	"github.com/wippyai/napi-runtime/napi"
)

// HostModule is the import namespace wasm add-ons link against.
const HostModule = "env"

// RegisterEntry is the wasm add-on entry point.
const RegisterEntry = "napi_register_module_v1"

// Guest trampoline exports, required because the host cannot index the
// guest's function table itself.
const (
	invokeExport   = "__napi_invoke"
	finalizeExport = "__napi_invoke_finalize"
	callJSExport   = "__napi_invoke_call_js"
	executeExport  = "__napi_invoke_execute"
	completeExport = "__napi_invoke_complete"
)

// guestModule is the slice of api.Module the callback bridges need.
type guestModule interface {
	Memory() api.Memory
	ExportedFunction(name string) api.Function
}

// Shim builds the host module exposing the ABI to wasm guests.
type Shim struct {
	rt *napiruntime.Runtime
}

// New creates a shim bound to a runtime.
func New(rt *napiruntime.Runtime) *Shim {
	return &Shim{rt: rt}
}

func s32(s napi.Status) uint32 { return uint32(int32(s)) }

func wrapGuestCallback(mod guestModule, cb uint32) napi.Callback {
	if cb == 0 {
		return nil
	}
	fn := mod.ExportedFunction(invokeExport)
	return func(e napi.Env, info napi.CallbackInfo) napi.Value {
		if fn == nil {
			return napi.HandleHole
		}
		ret, err := fn.Call(context.Background(), uint64(cb), uint64(e), uint64(info))
		if err != nil || len(ret) == 0 {
			return napi.HandleHole
		}
		return napi.Value(uint32(ret[0]))
	}
}

func wrapGuestFinalize(mod guestModule, cb uint32) napi.Finalize {
	if cb == 0 {
		return nil
	}
	fn := mod.ExportedFunction(finalizeExport)
	return func(e napi.Env, data, hint uintptr) {
		if fn != nil {
			fn.Call(context.Background(), uint64(cb), uint64(e), uint64(data), uint64(hint))
		}
	}
}

func wrapGuestCallJS(mod guestModule, cb uint32) napi.CallJS {
	if cb == 0 {
		return nil
	}
	fn := mod.ExportedFunction(callJSExport)
	return func(e napi.Env, jsCb napi.Value, ctx, data uintptr) {
		if fn != nil {
			fn.Call(context.Background(), uint64(cb), uint64(e), uint64(jsCb), uint64(ctx), uint64(data))
		}
	}
}

func wrapGuestExecute(mod guestModule, cb uint32) napi.AsyncExecute {
	if cb == 0 {
		return nil
	}
	fn := mod.ExportedFunction(executeExport)
	return func(e napi.Env, data uintptr) {
		if fn != nil {
			fn.Call(context.Background(), uint64(cb), uint64(e), uint64(data))
		}
	}
}

func wrapGuestComplete(mod guestModule, cb uint32) napi.AsyncComplete {
	if cb == 0 {
		return nil
	}
	fn := mod.ExportedFunction(completeExport)
	return func(e napi.Env, status napi.Status, data uintptr) {
		if fn != nil {
			fn.Call(context.Background(), uint64(cb), uint64(e), uint64(uint32(int32(status))), uint64(data))
		}
	}
}

// readDescriptors parses a wasm32 napi_property_descriptor array
// (32-byte stride: eight 4-byte fields).
func readDescriptors(mod guestModule, props, count uint32) []napi.PropertyDescriptor {
	m := mod.Memory()
	out := make([]napi.PropertyDescriptor, 0, count)
	for i := uint32(0); i < count; i++ {
		base := props + i*32
		out = append(out, napi.PropertyDescriptor{
			UTF8Name:   cstring(m, rdU32(m, base+0)),
			Name:       napi.Value(rdU32(m, base+4)),
			Method:     wrapGuestCallback(mod, rdU32(m, base+8)),
			Getter:     wrapGuestCallback(mod, rdU32(m, base+12)),
			Setter:     wrapGuestCallback(mod, rdU32(m, base+16)),
			Value:      napi.Value(rdU32(m, base+20)),
			Attributes: napi.PropertyAttributes(rdU32(m, base+24)),
			Data:       uintptr(rdU32(m, base+28)),
		})
	}
	return out
}

func toHandles(raw []uint32) []napi.Value {
	out := make([]napi.Value, len(raw))
	for i, h := range raw {
		out[i] = napi.Value(h)
	}
	return out
}

// Instantiate registers the "env" host module on a wazero runtime. Call
// before instantiating any add-on module.
func (s *Shim) Instantiate(ctx context.Context, r wazero.Runtime) error {
	a := s.rt.API()
	b := r.NewHostModuleBuilder(HostModule)

	reg := func(name string, fn any) {
		b.NewFunctionBuilder().WithFunc(fn).Export(name)
	}

	reg("napi_get_version", func(_ context.Context, mod api.Module, e, result uint32) uint32 {
		var v uint32
		st := a.GetVersion(napi.Env(e), &v)
		wrU32(mod.Memory(), result, v)
		return s32(st)
	})
	reg("napi_get_undefined", func(_ context.Context, mod api.Module, e, result uint32) uint32 {
		var h napi.Value
		st := a.GetUndefined(napi.Env(e), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_get_null", func(_ context.Context, mod api.Module, e, result uint32) uint32 {
		var h napi.Value
		st := a.GetNull(napi.Env(e), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_get_global", func(_ context.Context, mod api.Module, e, result uint32) uint32 {
		var h napi.Value
		st := a.GetGlobal(napi.Env(e), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_get_boolean", func(_ context.Context, mod api.Module, e, v, result uint32) uint32 {
		var h napi.Value
		st := a.GetBoolean(napi.Env(e), v != 0, &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_create_int32", func(_ context.Context, mod api.Module, e, v, result uint32) uint32 {
		var h napi.Value
		st := a.CreateInt32(napi.Env(e), int32(v), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_create_uint32", func(_ context.Context, mod api.Module, e, v, result uint32) uint32 {
		var h napi.Value
		st := a.CreateUint32(napi.Env(e), v, &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_create_int64", func(_ context.Context, mod api.Module, e uint32, v uint64, result uint32) uint32 {
		var h napi.Value
		st := a.CreateInt64(napi.Env(e), int64(v), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_create_double", func(_ context.Context, mod api.Module, e uint32, v float64, result uint32) uint32 {
		var h napi.Value
		st := a.CreateDouble(napi.Env(e), v, &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_create_string_utf8", func(_ context.Context, mod api.Module, e, str, length, result uint32) uint32 {
		var h napi.Value
		st := a.CreateStringUTF8(napi.Env(e), stringAt(mod.Memory(), str, length), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_get_value_bool", func(_ context.Context, mod api.Module, e, v, result uint32) uint32 {
		var b bool
		st := a.GetValueBool(napi.Env(e), napi.Value(v), &b)
		wrBool(mod.Memory(), result, b)
		return s32(st)
	})
	reg("napi_get_value_int32", func(_ context.Context, mod api.Module, e, v, result uint32) uint32 {
		var out int32
		st := a.GetValueInt32(napi.Env(e), napi.Value(v), &out)
		wrI32(mod.Memory(), result, out)
		return s32(st)
	})
	reg("napi_get_value_uint32", func(_ context.Context, mod api.Module, e, v, result uint32) uint32 {
		var out uint32
		st := a.GetValueUint32(napi.Env(e), napi.Value(v), &out)
		wrU32(mod.Memory(), result, out)
		return s32(st)
	})
	reg("napi_get_value_int64", func(_ context.Context, mod api.Module, e, v, result uint32) uint32 {
		var out int64
		st := a.GetValueInt64(napi.Env(e), napi.Value(v), &out)
		wrU64(mod.Memory(), result, uint64(out))
		return s32(st)
	})
	reg("napi_get_value_double", func(_ context.Context, mod api.Module, e, v, result uint32) uint32 {
		var out float64
		st := a.GetValueDouble(napi.Env(e), napi.Value(v), &out)
		wrF64(mod.Memory(), result, out)
		return s32(st)
	})
	reg("napi_get_value_string_utf8", func(_ context.Context, mod api.Module, e, v, buf, bufsize, result uint32) uint32 {
		m := mod.Memory()
		var n int
		var st napi.Status
		if buf == 0 {
			st = a.GetValueStringUTF8(napi.Env(e), napi.Value(v), nil, &n)
		} else {
			scratch := make([]byte, bufsize)
			st = a.GetValueStringUTF8(napi.Env(e), napi.Value(v), scratch, &n)
			if st == napi.OK && bufsize > 0 {
				m.Write(buf, scratch[:min(int(bufsize), n+1)])
			}
		}
		wrU32(m, result, uint32(n))
		return s32(st)
	})
	reg("napi_typeof", func(_ context.Context, mod api.Module, e, v, result uint32) uint32 {
		var vt napi.ValueType
		st := a.TypeOf(napi.Env(e), napi.Value(v), &vt)
		wrI32(mod.Memory(), result, int32(vt))
		return s32(st)
	})
	reg("napi_create_object", func(_ context.Context, mod api.Module, e, result uint32) uint32 {
		var h napi.Value
		st := a.CreateObject(napi.Env(e), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_create_array", func(_ context.Context, mod api.Module, e, result uint32) uint32 {
		var h napi.Value
		st := a.CreateArray(napi.Env(e), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_get_array_length", func(_ context.Context, mod api.Module, e, v, result uint32) uint32 {
		var n uint32
		st := a.GetArrayLength(napi.Env(e), napi.Value(v), &n)
		wrU32(mod.Memory(), result, n)
		return s32(st)
	})
	reg("napi_get_element", func(_ context.Context, mod api.Module, e, obj, index, result uint32) uint32 {
		var h napi.Value
		st := a.GetElement(napi.Env(e), napi.Value(obj), index, &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_set_element", func(_ context.Context, mod api.Module, e, obj, index, v uint32) uint32 {
		return s32(a.SetElement(napi.Env(e), napi.Value(obj), index, napi.Value(v)))
	})
	reg("napi_get_property", func(_ context.Context, mod api.Module, e, obj, key, result uint32) uint32 {
		var h napi.Value
		st := a.GetProperty(napi.Env(e), napi.Value(obj), napi.Value(key), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_set_property", func(_ context.Context, mod api.Module, e, obj, key, v uint32) uint32 {
		return s32(a.SetProperty(napi.Env(e), napi.Value(obj), napi.Value(key), napi.Value(v)))
	})
	reg("napi_get_named_property", func(_ context.Context, mod api.Module, e, obj, name, result uint32) uint32 {
		var h napi.Value
		st := a.GetNamedProperty(napi.Env(e), napi.Value(obj), cstring(mod.Memory(), name), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_set_named_property", func(_ context.Context, mod api.Module, e, obj, name, v uint32) uint32 {
		return s32(a.SetNamedProperty(napi.Env(e), napi.Value(obj), cstring(mod.Memory(), name), napi.Value(v)))
	})
	reg("napi_get_cb_info", func(_ context.Context, mod api.Module, e, cbinfo, argcPtr, argv, thisPtr, dataPtr uint32) uint32 {
		m := mod.Memory()
		capacity := uint32(0)
		if argcPtr != 0 {
			capacity = rdU32(m, argcPtr)
		}
		var buf []napi.Value
		if argv != 0 && capacity > 0 {
			buf = make([]napi.Value, capacity)
		}
		var argc int
		var this napi.Value
		var data uintptr
		st := a.GetCbInfo(napi.Env(e), napi.CallbackInfo(cbinfo), &argc, buf, &this, &data)
		for i, h := range buf {
			wrU32(m, argv+uint32(i)*4, uint32(h))
		}
		wrU32(m, argcPtr, uint32(argc))
		wrU32(m, thisPtr, uint32(this))
		wrU32(m, dataPtr, uint32(data))
		return s32(st)
	})
	reg("napi_get_new_target", func(_ context.Context, mod api.Module, e, cbinfo, result uint32) uint32 {
		var h napi.Value
		st := a.GetNewTarget(napi.Env(e), napi.CallbackInfo(cbinfo), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_create_function", func(_ context.Context, mod api.Module, e, name, length, cb, data, result uint32) uint32 {
		var h napi.Value
		st := a.CreateFunction(napi.Env(e), stringAt(mod.Memory(), name, length),
			wrapGuestCallback(mod, cb), uintptr(data), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_call_function", func(_ context.Context, mod api.Module, e, recv, fn, argc, argv, result uint32) uint32 {
		var h napi.Value
		st := a.CallFunction(napi.Env(e), napi.Value(recv), napi.Value(fn),
			toHandles(handlesAt(mod.Memory(), argv, argc)), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_new_instance", func(_ context.Context, mod api.Module, e, ctor, argc, argv, result uint32) uint32 {
		var h napi.Value
		st := a.NewInstance(napi.Env(e), napi.Value(ctor),
			toHandles(handlesAt(mod.Memory(), argv, argc)), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_define_class", func(_ context.Context, mod api.Module, e, name, length, ctor, data, propCount, props, result uint32) uint32 {
		var h napi.Value
		st := a.DefineClass(napi.Env(e), stringAt(mod.Memory(), name, length),
			wrapGuestCallback(mod, ctor), uintptr(data),
			readDescriptors(mod, props, propCount), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_define_properties", func(_ context.Context, mod api.Module, e, obj, count, props uint32) uint32 {
		return s32(a.DefineProperties(napi.Env(e), napi.Value(obj), readDescriptors(mod, props, count)))
	})
	reg("napi_wrap", func(_ context.Context, mod api.Module, e, obj, native, finalize, hint, result uint32) uint32 {
		if result == 0 {
			return s32(a.Wrap(napi.Env(e), napi.Value(obj), uintptr(native),
				wrapGuestFinalize(mod, finalize), uintptr(hint), nil))
		}
		var ref napi.Ref
		st := a.Wrap(napi.Env(e), napi.Value(obj), uintptr(native),
			wrapGuestFinalize(mod, finalize), uintptr(hint), &ref)
		wrU32(mod.Memory(), result, uint32(ref))
		return s32(st)
	})
	reg("napi_unwrap", func(_ context.Context, mod api.Module, e, obj, result uint32) uint32 {
		var p uintptr
		st := a.Unwrap(napi.Env(e), napi.Value(obj), &p)
		wrU32(mod.Memory(), result, uint32(p))
		return s32(st)
	})
	reg("napi_remove_wrap", func(_ context.Context, mod api.Module, e, obj, result uint32) uint32 {
		var p uintptr
		st := a.RemoveWrap(napi.Env(e), napi.Value(obj), &p)
		wrU32(mod.Memory(), result, uint32(p))
		return s32(st)
	})
	reg("napi_create_reference", func(_ context.Context, mod api.Module, e, v, refcount, result uint32) uint32 {
		var ref napi.Ref
		st := a.CreateReference(napi.Env(e), napi.Value(v), refcount, &ref)
		wrU32(mod.Memory(), result, uint32(ref))
		return s32(st)
	})
	reg("napi_delete_reference", func(_ context.Context, mod api.Module, e, ref uint32) uint32 {
		return s32(a.DeleteReference(napi.Env(e), napi.Ref(ref)))
	})
	reg("napi_reference_ref", func(_ context.Context, mod api.Module, e, ref, result uint32) uint32 {
		var n uint32
		st := a.ReferenceRef(napi.Env(e), napi.Ref(ref), &n)
		wrU32(mod.Memory(), result, n)
		return s32(st)
	})
	reg("napi_reference_unref", func(_ context.Context, mod api.Module, e, ref, result uint32) uint32 {
		var n uint32
		st := a.ReferenceUnref(napi.Env(e), napi.Ref(ref), &n)
		wrU32(mod.Memory(), result, n)
		return s32(st)
	})
	reg("napi_get_reference_value", func(_ context.Context, mod api.Module, e, ref, result uint32) uint32 {
		var h napi.Value
		st := a.GetReferenceValue(napi.Env(e), napi.Ref(ref), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_throw", func(_ context.Context, mod api.Module, e, err uint32) uint32 {
		return s32(a.Throw(napi.Env(e), napi.Value(err)))
	})
	reg("napi_throw_error", func(_ context.Context, mod api.Module, e, code, msg uint32) uint32 {
		m := mod.Memory()
		return s32(a.ThrowError(napi.Env(e), cstring(m, code), cstring(m, msg)))
	})
	reg("napi_throw_type_error", func(_ context.Context, mod api.Module, e, code, msg uint32) uint32 {
		m := mod.Memory()
		return s32(a.ThrowTypeError(napi.Env(e), cstring(m, code), cstring(m, msg)))
	})
	reg("napi_throw_range_error", func(_ context.Context, mod api.Module, e, code, msg uint32) uint32 {
		m := mod.Memory()
		return s32(a.ThrowRangeError(napi.Env(e), cstring(m, code), cstring(m, msg)))
	})
	reg("napi_create_error", func(_ context.Context, mod api.Module, e, code, msg, result uint32) uint32 {
		var h napi.Value
		st := a.CreateError(napi.Env(e), napi.Value(code), napi.Value(msg), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_is_exception_pending", func(_ context.Context, mod api.Module, e, result uint32) uint32 {
		var b bool
		st := a.IsExceptionPending(napi.Env(e), &b)
		wrBool(mod.Memory(), result, b)
		return s32(st)
	})
	reg("napi_get_and_clear_last_exception", func(_ context.Context, mod api.Module, e, result uint32) uint32 {
		var h napi.Value
		st := a.GetAndClearLastException(napi.Env(e), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_open_handle_scope", func(_ context.Context, mod api.Module, e, result uint32) uint32 {
		var sc napi.HandleScope
		st := a.OpenHandleScope(napi.Env(e), &sc)
		wrU32(mod.Memory(), result, uint32(sc))
		return s32(st)
	})
	reg("napi_close_handle_scope", func(_ context.Context, mod api.Module, e, scope uint32) uint32 {
		return s32(a.CloseHandleScope(napi.Env(e), napi.HandleScope(scope)))
	})
	reg("napi_open_escapable_handle_scope", func(_ context.Context, mod api.Module, e, result uint32) uint32 {
		var sc napi.EscapableHandleScope
		st := a.OpenEscapableHandleScope(napi.Env(e), &sc)
		wrU32(mod.Memory(), result, uint32(sc))
		return s32(st)
	})
	reg("napi_close_escapable_handle_scope", func(_ context.Context, mod api.Module, e, scope uint32) uint32 {
		return s32(a.CloseEscapableHandleScope(napi.Env(e), napi.EscapableHandleScope(scope)))
	})
	reg("napi_escape_handle", func(_ context.Context, mod api.Module, e, scope, escapee, result uint32) uint32 {
		var h napi.Value
		st := a.EscapeHandle(napi.Env(e), napi.EscapableHandleScope(scope), napi.Value(escapee), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_create_promise", func(_ context.Context, mod api.Module, e, deferredPtr, promisePtr uint32) uint32 {
		var d napi.Deferred
		var p napi.Value
		st := a.CreatePromise(napi.Env(e), &d, &p)
		wrU32(mod.Memory(), deferredPtr, uint32(d))
		wrU32(mod.Memory(), promisePtr, uint32(p))
		return s32(st)
	})
	reg("napi_resolve_deferred", func(_ context.Context, mod api.Module, e, deferred, resolution uint32) uint32 {
		return s32(a.ResolveDeferred(napi.Env(e), napi.Deferred(deferred), napi.Value(resolution)))
	})
	reg("napi_reject_deferred", func(_ context.Context, mod api.Module, e, deferred, rejection uint32) uint32 {
		return s32(a.RejectDeferred(napi.Env(e), napi.Deferred(deferred), napi.Value(rejection)))
	})
	reg("napi_set_instance_data", func(_ context.Context, mod api.Module, e, data, finalize, hint uint32) uint32 {
		return s32(a.SetInstanceData(napi.Env(e), uintptr(data), wrapGuestFinalize(mod, finalize), uintptr(hint)))
	})
	reg("napi_get_instance_data", func(_ context.Context, mod api.Module, e, result uint32) uint32 {
		var p uintptr
		st := a.GetInstanceData(napi.Env(e), &p)
		wrU32(mod.Memory(), result, uint32(p))
		return s32(st)
	})
	reg("napi_create_threadsafe_function", func(_ context.Context, mod api.Module,
		e, fn, asyncResource, asyncResourceName, maxQueueSize, initialThreadCount,
		threadFinalizeData, threadFinalizeCb, tsfnContext, callJSCb, result uint32) uint32 {
		var id napi.ThreadsafeFunction
		st := a.CreateThreadsafeFunction(napi.Env(e), napi.Value(fn),
			int(maxQueueSize), int(initialThreadCount), uintptr(tsfnContext),
			wrapGuestFinalize(mod, threadFinalizeCb), uintptr(threadFinalizeData), 0,
			wrapGuestCallJS(mod, callJSCb), &id)
		wrU32(mod.Memory(), result, uint32(id))
		return s32(st)
	})
	reg("napi_call_threadsafe_function", func(_ context.Context, mod api.Module, fn, data, isBlocking uint32) uint32 {
		mode := napi.NonBlocking
		if isBlocking != 0 {
			mode = napi.Blocking
		}
		return s32(a.CallThreadsafeFunction(napi.ThreadsafeFunction(fn), uintptr(data), mode))
	})
	reg("napi_acquire_threadsafe_function", func(_ context.Context, mod api.Module, fn uint32) uint32 {
		return s32(a.AcquireThreadsafeFunction(napi.ThreadsafeFunction(fn)))
	})
	reg("napi_release_threadsafe_function", func(_ context.Context, mod api.Module, fn, mode uint32) uint32 {
		return s32(a.ReleaseThreadsafeFunction(napi.ThreadsafeFunction(fn), napi.ReleaseMode(int32(mode))))
	})
	reg("napi_get_threadsafe_function_context", func(_ context.Context, mod api.Module, fn, result uint32) uint32 {
		var p uintptr
		st := a.GetThreadsafeFunctionContext(napi.ThreadsafeFunction(fn), &p)
		wrU32(mod.Memory(), result, uint32(p))
		return s32(st)
	})
	reg("napi_create_async_work", func(_ context.Context, mod api.Module, e, resource, resourceName, execute, complete, data, result uint32) uint32 {
		var id napi.AsyncWork
		st := a.CreateAsyncWork(napi.Env(e), napi.Value(resource), napi.Value(resourceName),
			wrapGuestExecute(mod, execute), wrapGuestComplete(mod, complete), uintptr(data), &id)
		wrU32(mod.Memory(), result, uint32(id))
		return s32(st)
	})
	reg("napi_queue_async_work", func(_ context.Context, mod api.Module, e, work uint32) uint32 {
		return s32(a.QueueAsyncWork(napi.Env(e), napi.AsyncWork(work)))
	})
	reg("napi_cancel_async_work", func(_ context.Context, mod api.Module, e, work uint32) uint32 {
		return s32(a.CancelAsyncWork(napi.Env(e), napi.AsyncWork(work)))
	})
	reg("napi_delete_async_work", func(_ context.Context, mod api.Module, e, work uint32) uint32 {
		return s32(a.DeleteAsyncWork(napi.Env(e), napi.AsyncWork(work)))
	})

	registerPredicatesAndViews(b, a)
	registerStubs(b)

	if _, err := b.Instantiate(ctx); err != nil {
		return errors.New(errors.PhaseShim, errors.KindNotInitialized).
			Detail("instantiate host module").
			Cause(err).
			Build()
	}
	env.Logger().Debug("wasm host module registered", zap.String("module", HostModule))
	return nil
}

// Register instantiates an already-compiled wasm add-on and runs its
// registration entry.
func (s *Shim) Register(ctx context.Context, r wazero.Runtime, wasm []byte, name string) (*napiruntime.Module, error) {
	compiled, err := r.CompileModule(ctx, wasm)
	if err != nil {
		return nil, errors.Load("compile wasm addon "+name, err)
	}
	instance, err := r.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(name))
	if err != nil {
		return nil, errors.Load("instantiate wasm addon "+name, err)
	}
	entry := instance.ExportedFunction(RegisterEntry)
	if entry == nil {
		return nil, errors.BadSymbol(name, RegisterEntry)
	}
	return s.rt.Register(name, func(e napi.Env, exports napi.Value) napi.Value {
		ret, err := entry.Call(ctx, uint64(e), uint64(exports))
		if err != nil || len(ret) == 0 {
			return napi.HandleHole
		}
		return napi.Value(uint32(ret[0]))
	})
}
