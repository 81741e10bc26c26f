package wasmshim

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	napiapi "github.com/wippyai/napi-runtime/api"
	"github.com/wippyai/napi-runtime/napi"
)

// registerPredicatesAndViews adds the second batch of core bindings:
// predicates, coercions, buffer family, lifetime helpers. Buffer data
// out-pointers are answered with NULL — host byte stores are not
// addressable from guest linear memory; guests reach contents through
// the copying string/element APIs.
func registerPredicatesAndViews(b wazero.HostModuleBuilder, a *napiapi.API) {
	reg := func(name string, fn any) {
		b.NewFunctionBuilder().WithFunc(fn).Export(name)
	}

	boolOut := func(name string, call func(napi.Env, napi.Value, *bool) napi.Status) {
		reg(name, func(_ context.Context, mod api.Module, e, v, result uint32) uint32 {
			var out bool
			st := call(napi.Env(e), napi.Value(v), &out)
			wrBool(mod.Memory(), result, out)
			return s32(st)
		})
	}
	valueOut := func(name string, call func(napi.Env, napi.Value, *napi.Value) napi.Status) {
		reg(name, func(_ context.Context, mod api.Module, e, v, result uint32) uint32 {
			var out napi.Value
			st := call(napi.Env(e), napi.Value(v), &out)
			wrU32(mod.Memory(), result, uint32(out))
			return s32(st)
		})
	}

	boolOut("napi_is_array", a.IsArray)
	boolOut("napi_is_arraybuffer", a.IsArrayBuffer)
	boolOut("napi_is_buffer", a.IsBuffer)
	boolOut("napi_is_typedarray", a.IsTypedArray)
	boolOut("napi_is_dataview", a.IsDataView)
	boolOut("napi_is_date", a.IsDate)
	boolOut("napi_is_error", a.IsError)
	boolOut("napi_is_promise", a.IsPromise)
	boolOut("napi_is_detached_arraybuffer", a.IsDetachedArrayBuffer)

	valueOut("napi_coerce_to_bool", a.CoerceToBool)
	valueOut("napi_coerce_to_number", a.CoerceToNumber)
	valueOut("napi_coerce_to_string", a.CoerceToString)
	valueOut("napi_coerce_to_object", a.CoerceToObject)
	valueOut("napi_get_prototype", a.GetPrototype)
	valueOut("napi_get_property_names", a.GetPropertyNames)

	reg("napi_strict_equals", func(_ context.Context, mod api.Module, e, lhs, rhs, result uint32) uint32 {
		var out bool
		st := a.StrictEquals(napi.Env(e), napi.Value(lhs), napi.Value(rhs), &out)
		wrBool(mod.Memory(), result, out)
		return s32(st)
	})
	reg("napi_instanceof", func(_ context.Context, mod api.Module, e, obj, ctor, result uint32) uint32 {
		var out bool
		st := a.Instanceof(napi.Env(e), napi.Value(obj), napi.Value(ctor), &out)
		wrBool(mod.Memory(), result, out)
		return s32(st)
	})
	reg("napi_has_property", func(_ context.Context, mod api.Module, e, obj, key, result uint32) uint32 {
		var out bool
		st := a.HasProperty(napi.Env(e), napi.Value(obj), napi.Value(key), &out)
		wrBool(mod.Memory(), result, out)
		return s32(st)
	})
	reg("napi_has_own_property", func(_ context.Context, mod api.Module, e, obj, key, result uint32) uint32 {
		var out bool
		st := a.HasOwnProperty(napi.Env(e), napi.Value(obj), napi.Value(key), &out)
		wrBool(mod.Memory(), result, out)
		return s32(st)
	})
	reg("napi_delete_property", func(_ context.Context, mod api.Module, e, obj, key, result uint32) uint32 {
		var out bool
		st := a.DeleteProperty(napi.Env(e), napi.Value(obj), napi.Value(key), &out)
		wrBool(mod.Memory(), result, out)
		return s32(st)
	})
	reg("napi_has_named_property", func(_ context.Context, mod api.Module, e, obj, name, result uint32) uint32 {
		var out bool
		st := a.HasNamedProperty(napi.Env(e), napi.Value(obj), cstring(mod.Memory(), name), &out)
		wrBool(mod.Memory(), result, out)
		return s32(st)
	})
	reg("napi_has_element", func(_ context.Context, mod api.Module, e, obj, index, result uint32) uint32 {
		var out bool
		st := a.HasElement(napi.Env(e), napi.Value(obj), index, &out)
		wrBool(mod.Memory(), result, out)
		return s32(st)
	})
	reg("napi_delete_element", func(_ context.Context, mod api.Module, e, obj, index, result uint32) uint32 {
		var out bool
		st := a.DeleteElement(napi.Env(e), napi.Value(obj), index, &out)
		wrBool(mod.Memory(), result, out)
		return s32(st)
	})
	reg("napi_get_all_property_names", func(_ context.Context, mod api.Module, e, obj, mode, filter, conversion, result uint32) uint32 {
		var out napi.Value
		st := a.GetAllPropertyNames(napi.Env(e), napi.Value(obj),
			napi.KeyCollectionMode(int32(mode)), napi.KeyFilter(int32(filter)),
			napi.KeyConversion(int32(conversion)), &out)
		wrU32(mod.Memory(), result, uint32(out))
		return s32(st)
	})
	reg("napi_object_freeze", func(_ context.Context, mod api.Module, e, obj uint32) uint32 {
		return s32(a.ObjectFreeze(napi.Env(e), napi.Value(obj)))
	})
	reg("napi_object_seal", func(_ context.Context, mod api.Module, e, obj uint32) uint32 {
		return s32(a.ObjectSeal(napi.Env(e), napi.Value(obj)))
	})

	reg("napi_create_symbol", func(_ context.Context, mod api.Module, e, desc, result uint32) uint32 {
		var h napi.Value
		st := a.CreateSymbol(napi.Env(e), napi.Value(desc), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_create_string_latin1", func(_ context.Context, mod api.Module, e, str, length, result uint32) uint32 {
		var h napi.Value
		var raw []byte
		if length == ^uint32(0) {
			raw = []byte(cstring(mod.Memory(), str))
		} else {
			raw = bytesAt(mod.Memory(), str, length)
		}
		st := a.CreateStringLatin1(napi.Env(e), raw, &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_create_date", func(_ context.Context, mod api.Module, e uint32, ms float64, result uint32) uint32 {
		var h napi.Value
		st := a.CreateDate(napi.Env(e), ms, &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_get_date_value", func(_ context.Context, mod api.Module, e, v, result uint32) uint32 {
		var ms float64
		st := a.GetDateValue(napi.Env(e), napi.Value(v), &ms)
		wrF64(mod.Memory(), result, ms)
		return s32(st)
	})
	reg("napi_create_bigint_int64", func(_ context.Context, mod api.Module, e uint32, v uint64, result uint32) uint32 {
		var h napi.Value
		st := a.CreateBigintInt64(napi.Env(e), int64(v), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_get_value_bigint_int64", func(_ context.Context, mod api.Module, e, v, result, lossless uint32) uint32 {
		var out int64
		var exact bool
		st := a.GetValueBigintInt64(napi.Env(e), napi.Value(v), &out, &exact)
		wrU64(mod.Memory(), result, uint64(out))
		wrBool(mod.Memory(), lossless, exact)
		return s32(st)
	})

	reg("napi_create_external", func(_ context.Context, mod api.Module, e, data, finalize, hint, result uint32) uint32 {
		var h napi.Value
		st := a.CreateExternal(napi.Env(e), uintptr(data), wrapGuestFinalize(mod, finalize), uintptr(hint), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_get_value_external", func(_ context.Context, mod api.Module, e, v, result uint32) uint32 {
		var p uintptr
		st := a.GetValueExternal(napi.Env(e), napi.Value(v), &p)
		wrU32(mod.Memory(), result, uint32(p))
		return s32(st)
	})
	reg("napi_add_finalizer", func(_ context.Context, mod api.Module, e, obj, data, finalize, hint, result uint32) uint32 {
		if result == 0 {
			return s32(a.AddFinalizer(napi.Env(e), napi.Value(obj), uintptr(data),
				wrapGuestFinalize(mod, finalize), uintptr(hint), nil))
		}
		var ref napi.Ref
		st := a.AddFinalizer(napi.Env(e), napi.Value(obj), uintptr(data),
			wrapGuestFinalize(mod, finalize), uintptr(hint), &ref)
		wrU32(mod.Memory(), result, uint32(ref))
		return s32(st)
	})
	reg("napi_type_tag_object", func(_ context.Context, mod api.Module, e, obj, tagPtr uint32) uint32 {
		m := mod.Memory()
		lo, _ := m.ReadUint64Le(tagPtr)
		hi, _ := m.ReadUint64Le(tagPtr + 8)
		tag := napi.TypeTag{Lower: lo, Upper: hi}
		return s32(a.TypeTagObject(napi.Env(e), napi.Value(obj), &tag))
	})
	reg("napi_check_object_type_tag", func(_ context.Context, mod api.Module, e, obj, tagPtr, result uint32) uint32 {
		m := mod.Memory()
		lo, _ := m.ReadUint64Le(tagPtr)
		hi, _ := m.ReadUint64Le(tagPtr + 8)
		tag := napi.TypeTag{Lower: lo, Upper: hi}
		var out bool
		st := a.CheckObjectTypeTag(napi.Env(e), napi.Value(obj), &tag, &out)
		wrBool(mod.Memory(), result, out)
		return s32(st)
	})

	reg("napi_create_arraybuffer", func(_ context.Context, mod api.Module, e, length, dataPtr, result uint32) uint32 {
		var h napi.Value
		st := a.CreateArrayBuffer(napi.Env(e), int(length), nil, &h)
		wrU32(mod.Memory(), dataPtr, 0)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_get_arraybuffer_info", func(_ context.Context, mod api.Module, e, v, dataPtr, lengthPtr uint32) uint32 {
		var length int
		st := a.GetArrayBufferInfo(napi.Env(e), napi.Value(v), nil, &length)
		wrU32(mod.Memory(), dataPtr, 0)
		wrU32(mod.Memory(), lengthPtr, uint32(length))
		return s32(st)
	})
	reg("napi_detach_arraybuffer", func(_ context.Context, mod api.Module, e, v uint32) uint32 {
		return s32(a.DetachArrayBuffer(napi.Env(e), napi.Value(v)))
	})
	reg("napi_create_typedarray", func(_ context.Context, mod api.Module, e, kind, length, ab, offset, result uint32) uint32 {
		var h napi.Value
		st := a.CreateTypedArray(napi.Env(e), napi.TypedArrayType(int32(kind)), int(length),
			napi.Value(ab), int(offset), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_get_typedarray_info", func(_ context.Context, mod api.Module, e, v, kindPtr, lengthPtr, dataPtr, abPtr, offsetPtr uint32) uint32 {
		var kind napi.TypedArrayType
		var length, offset int
		var ab napi.Value
		st := a.GetTypedArrayInfo(napi.Env(e), napi.Value(v), &kind, &length, nil, &ab, &offset)
		m := mod.Memory()
		wrI32(m, kindPtr, int32(kind))
		wrU32(m, lengthPtr, uint32(length))
		wrU32(m, dataPtr, 0)
		wrU32(m, abPtr, uint32(ab))
		wrU32(m, offsetPtr, uint32(offset))
		return s32(st)
	})
	reg("napi_create_dataview", func(_ context.Context, mod api.Module, e, length, ab, offset, result uint32) uint32 {
		var h napi.Value
		st := a.CreateDataView(napi.Env(e), int(length), napi.Value(ab), int(offset), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_get_dataview_info", func(_ context.Context, mod api.Module, e, v, lengthPtr, dataPtr, abPtr, offsetPtr uint32) uint32 {
		var length, offset int
		var ab napi.Value
		st := a.GetDataViewInfo(napi.Env(e), napi.Value(v), &length, nil, &ab, &offset)
		m := mod.Memory()
		wrU32(m, lengthPtr, uint32(length))
		wrU32(m, dataPtr, 0)
		wrU32(m, abPtr, uint32(ab))
		wrU32(m, offsetPtr, uint32(offset))
		return s32(st)
	})
	reg("napi_create_buffer", func(_ context.Context, mod api.Module, e, length, dataPtr, result uint32) uint32 {
		var h napi.Value
		st := a.CreateBuffer(napi.Env(e), int(length), nil, &h)
		wrU32(mod.Memory(), dataPtr, 0)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_create_buffer_copy", func(_ context.Context, mod api.Module, e, length, src, dataPtr, result uint32) uint32 {
		var h napi.Value
		st := a.CreateBufferCopy(napi.Env(e), bytesAt(mod.Memory(), src, length), nil, &h)
		wrU32(mod.Memory(), dataPtr, 0)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_get_buffer_info", func(_ context.Context, mod api.Module, e, v, dataPtr, lengthPtr uint32) uint32 {
		var length int
		st := a.GetBufferInfo(napi.Env(e), napi.Value(v), nil, &length)
		wrU32(mod.Memory(), dataPtr, 0)
		wrU32(mod.Memory(), lengthPtr, uint32(length))
		return s32(st)
	})

	reg("napi_add_env_cleanup_hook", func(_ context.Context, mod api.Module, e, fn, arg uint32) uint32 {
		finalize := wrapGuestFinalize(mod, fn)
		var hook napi.CleanupHook
		if finalize != nil {
			hook = func(a uintptr) { finalize(napi.Env(e), a, 0) }
		}
		return s32(a.AddEnvCleanupHook(napi.Env(e), hook, uintptr(arg)))
	})
	reg("napi_remove_env_cleanup_hook", func(_ context.Context, mod api.Module, e, fn, arg uint32) uint32 {
		return s32(a.RemoveEnvCleanupHook(napi.Env(e), uintptr(arg)))
	})
	reg("napi_ref_threadsafe_function", func(_ context.Context, mod api.Module, e, fn uint32) uint32 {
		return s32(a.RefThreadsafeFunction(napi.Env(e), napi.ThreadsafeFunction(fn)))
	})
	reg("napi_unref_threadsafe_function", func(_ context.Context, mod api.Module, e, fn uint32) uint32 {
		return s32(a.UnrefThreadsafeFunction(napi.Env(e), napi.ThreadsafeFunction(fn)))
	})
	reg("napi_async_init", func(_ context.Context, mod api.Module, e, resource, name, result uint32) uint32 {
		var out napi.AsyncContext
		st := a.AsyncInit(napi.Env(e), napi.Value(resource), napi.Value(name), &out)
		wrU32(mod.Memory(), result, uint32(out))
		return s32(st)
	})
	reg("napi_async_destroy", func(_ context.Context, mod api.Module, e, actx uint32) uint32 {
		return s32(a.AsyncDestroy(napi.Env(e), napi.AsyncContext(actx)))
	})
	reg("napi_make_callback", func(_ context.Context, mod api.Module, e, actx, recv, fn, argc, argv, result uint32) uint32 {
		var h napi.Value
		st := a.MakeCallback(napi.Env(e), napi.AsyncContext(actx), napi.Value(recv), napi.Value(fn),
			toHandles(handlesAt(mod.Memory(), argv, argc)), &h)
		wrU32(mod.Memory(), result, uint32(h))
		return s32(st)
	})
	reg("napi_fatal_exception", func(_ context.Context, mod api.Module, e, err uint32) uint32 {
		return s32(a.FatalException(napi.Env(e), napi.Value(err)))
	})
	reg("napi_fatal_error", func(_ context.Context, mod api.Module, location, locationLen, message, messageLen uint32) {
		m := mod.Memory()
		a.FatalError(stringAt(m, location, locationLen), stringAt(m, message, messageLen))
	})
	reg("napi_get_uv_event_loop", func(_ context.Context, mod api.Module, e, result uint32) uint32 {
		var p uintptr
		st := a.GetUVEventLoop(napi.Env(e), &p)
		wrU32(mod.Memory(), result, uint32(p))
		return s32(st)
	})
	reg("napi_get_last_error_info", func(_ context.Context, mod api.Module, e, result uint32) uint32 {
		var info napi.ExtendedErrorInfo
		st := a.GetLastErrorInfo(napi.Env(e), &info)
		m := mod.Memory()
		if result != 0 {
			// wasm32 napi_extended_error_info: message ptr (unavailable
			// from host storage, NULL), reserved, engine code, status.
			wrU32(m, result+0, 0)
			wrU32(m, result+4, 0)
			wrU32(m, result+8, info.EngineErrorCode)
			wrI32(m, result+12, int32(info.ErrorCode))
		}
		return s32(st)
	})
	reg("napi_get_node_version", func(_ context.Context, mod api.Module, e, result uint32) uint32 {
		var v napi.NodeVersion
		st := a.GetNodeVersion(napi.Env(e), &v)
		m := mod.Memory()
		if result != 0 {
			wrU32(m, result+0, v.Major)
			wrU32(m, result+4, v.Minor)
			wrU32(m, result+8, v.Patch)
			wrU32(m, result+12, 0)
		}
		return s32(st)
	})
	reg("napi_get_value_string_utf16", func(_ context.Context, mod api.Module, e, v, buf, bufsize, result uint32) uint32 {
		m := mod.Memory()
		var n int
		var st napi.Status
		if buf == 0 {
			st = a.GetValueStringUTF16(napi.Env(e), napi.Value(v), nil, &n)
		} else {
			scratch := make([]uint16, bufsize)
			st = a.GetValueStringUTF16(napi.Env(e), napi.Value(v), scratch, &n)
			if st == napi.OK {
				for i := 0; i <= n && i < int(bufsize); i++ {
					m.WriteUint16Le(buf+uint32(i)*2, scratch[i])
				}
			}
		}
		wrU32(m, result, uint32(n))
		return s32(st)
	})
	reg("napi_create_string_utf16", func(_ context.Context, mod api.Module, e, str, length, result uint32) uint32 {
		m := mod.Memory()
		var units []uint16
		if length == ^uint32(0) {
			for p := str; ; p += 2 {
				u, ok := m.ReadUint16Le(p)
				if !ok || u == 0 {
					break
				}
				units = append(units, u)
			}
		} else {
			units = make([]uint16, 0, length)
			for i := uint32(0); i < length; i++ {
				u, _ := m.ReadUint16Le(str + i*2)
				units = append(units, u)
			}
		}
		var h napi.Value
		st := a.CreateStringUTF16(napi.Env(e), units, &h)
		wrU32(m, result, uint32(h))
		return s32(st)
	})
}
