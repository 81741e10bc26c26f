//go:build linux || darwin

package loader

import (
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/wippyai/napi-runtime/abi"
	"github.com/wippyai/napi-runtime/napi"
)

// The shim's function table is a C struct of pointers filled in slot
// order by buildTable. Each entry is a purego callback that translates
// the C calling convention (raw pointers, NUL-terminated strings,
// caller-owned out-buffers) into the abi package's Go signatures. The
// slot order here and in the shim's napi_go_functions struct must match.

func st(s napi.Status) uintptr { return uintptr(int32(s)) }

// wrapCallback turns a C napi_callback pointer into the Go form.
func wrapCallback(fn uintptr) napi.Callback {
	if fn == 0 {
		return nil
	}
	return func(env napi.Env, info napi.CallbackInfo) napi.Value {
		r, _, _ := purego.SyscallN(fn, uintptr(env), uintptr(info))
		return napi.Value(r)
	}
}

// wrapFinalize turns a C napi_finalize pointer into the Go form.
func wrapFinalize(fn uintptr) napi.Finalize {
	if fn == 0 {
		return nil
	}
	return func(env napi.Env, data, hint uintptr) {
		purego.SyscallN(fn, uintptr(env), data, hint)
	}
}

// wrapCallJS turns a C napi_threadsafe_function_call_js pointer into the
// Go form.
func wrapCallJS(fn uintptr) napi.CallJS {
	if fn == 0 {
		return nil
	}
	return func(env napi.Env, jsCb napi.Value, context, data uintptr) {
		purego.SyscallN(fn, uintptr(env), uintptr(jsCb), context, data)
	}
}

func wrapExecute(fn uintptr) napi.AsyncExecute {
	if fn == 0 {
		return nil
	}
	return func(env napi.Env, data uintptr) {
		purego.SyscallN(fn, uintptr(env), data)
	}
}

func wrapComplete(fn uintptr) napi.AsyncComplete {
	if fn == 0 {
		return nil
	}
	return func(env napi.Env, status napi.Status, data uintptr) {
		purego.SyscallN(fn, uintptr(env), uintptr(int32(status)), data)
	}
}

func wrapCleanup(fn uintptr) napi.CleanupHook {
	if fn == 0 {
		return nil
	}
	return func(arg uintptr) {
		purego.SyscallN(fn, arg)
	}
}

// readDescriptors parses a C napi_property_descriptor array (64-byte
// stride on 64-bit targets).
func readDescriptors(props uintptr, count int) []napi.PropertyDescriptor {
	out := make([]napi.PropertyDescriptor, 0, count)
	const stride = 64
	for i := 0; i < count; i++ {
		base := props + uintptr(i*stride)
		out = append(out, napi.PropertyDescriptor{
			UTF8Name:   goString(peekPtr(base + 0)),
			Name:       napi.Value(peekPtr(base + 8)),
			Method:     wrapCallback(peekPtr(base + 16)),
			Getter:     wrapCallback(peekPtr(base + 24)),
			Setter:     wrapCallback(peekPtr(base + 32)),
			Value:      napi.Value(peekPtr(base + 40)),
			Attributes: napi.PropertyAttributes(*(*uint32)(unsafe.Pointer(base + 48))),
			Data:       peekPtr(base + 56),
		})
	}
	return out
}

func toHandles(argv uintptr, argc int) []napi.Value {
	raw := handleSlice(argv, argc)
	if raw == nil {
		return nil
	}
	out := make([]napi.Value, len(raw))
	for i, h := range raw {
		out[i] = napi.Value(h)
	}
	return out
}

// buildTable materializes the slot array handed to the shim's install
// entry. Callback pointers are pinned for process lifetime: the shim may
// call any slot until exit.
func buildTable() []uintptr {
	return []uintptr{
		// get_version
		purego.NewCallback(func(env, result uintptr) uintptr {
			var v uint32
			s := abi.GetVersion(napi.Env(env), &v)
			pokeU32(result, v)
			return st(s)
		}),
		// get_undefined
		purego.NewCallback(func(env, result uintptr) uintptr {
			var h napi.Value
			s := abi.GetUndefined(napi.Env(env), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// get_null
		purego.NewCallback(func(env, result uintptr) uintptr {
			var h napi.Value
			s := abi.GetNull(napi.Env(env), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// get_global
		purego.NewCallback(func(env, result uintptr) uintptr {
			var h napi.Value
			s := abi.GetGlobal(napi.Env(env), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// get_boolean
		purego.NewCallback(func(env, v, result uintptr) uintptr {
			var h napi.Value
			s := abi.GetBoolean(napi.Env(env), v != 0, &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// create_int32
		purego.NewCallback(func(env, v, result uintptr) uintptr {
			var h napi.Value
			s := abi.CreateInt32(napi.Env(env), int32(v), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// create_uint32
		purego.NewCallback(func(env, v, result uintptr) uintptr {
			var h napi.Value
			s := abi.CreateUint32(napi.Env(env), uint32(v), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// create_int64
		purego.NewCallback(func(env, v, result uintptr) uintptr {
			var h napi.Value
			s := abi.CreateInt64(napi.Env(env), int64(v), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// create_double
		purego.NewCallback(func(env uintptr, v float64, result uintptr) uintptr {
			var h napi.Value
			s := abi.CreateDouble(napi.Env(env), v, &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// create_string_utf8
		purego.NewCallback(func(env, str, length, result uintptr) uintptr {
			var s string
			if length == ^uintptr(0) { // NAPI_AUTO_LENGTH
				s = goString(str)
			} else {
				s = string(goBytes(str, int(length)))
			}
			var h napi.Value
			status := abi.CreateStringUTF8(napi.Env(env), s, &h)
			pokePtr(result, uintptr(h))
			return st(status)
		}),
		// get_value_bool
		purego.NewCallback(func(env, v, result uintptr) uintptr {
			var b bool
			s := abi.GetValueBool(napi.Env(env), napi.Value(v), &b)
			pokeBool(result, b)
			return st(s)
		}),
		// get_value_int32
		purego.NewCallback(func(env, v, result uintptr) uintptr {
			var out int32
			s := abi.GetValueInt32(napi.Env(env), napi.Value(v), &out)
			pokeI32(result, out)
			return st(s)
		}),
		// get_value_uint32
		purego.NewCallback(func(env, v, result uintptr) uintptr {
			var out uint32
			s := abi.GetValueUint32(napi.Env(env), napi.Value(v), &out)
			pokeU32(result, out)
			return st(s)
		}),
		// get_value_int64
		purego.NewCallback(func(env, v, result uintptr) uintptr {
			var out int64
			s := abi.GetValueInt64(napi.Env(env), napi.Value(v), &out)
			pokeI64(result, out)
			return st(s)
		}),
		// get_value_double
		purego.NewCallback(func(env, v, result uintptr) uintptr {
			var out float64
			s := abi.GetValueDouble(napi.Env(env), napi.Value(v), &out)
			pokeF64(result, out)
			return st(s)
		}),
		// get_value_string_utf8
		purego.NewCallback(func(env, v, buf, bufsize, result uintptr) uintptr {
			var n int
			var s napi.Status
			if buf == 0 {
				s = abi.GetValueStringUTF8(napi.Env(env), napi.Value(v), nil, &n)
			} else {
				s = abi.GetValueStringUTF8(napi.Env(env), napi.Value(v), goBytes(buf, int(bufsize)), &n)
			}
			pokePtr(result, uintptr(n))
			return st(s)
		}),
		// typeof
		purego.NewCallback(func(env, v, result uintptr) uintptr {
			var vt napi.ValueType
			s := abi.TypeOf(napi.Env(env), napi.Value(v), &vt)
			pokeI32(result, int32(vt))
			return st(s)
		}),
		// is_array
		purego.NewCallback(func(env, v, result uintptr) uintptr {
			var b bool
			s := abi.IsArray(napi.Env(env), napi.Value(v), &b)
			pokeBool(result, b)
			return st(s)
		}),
		// is_typedarray
		purego.NewCallback(func(env, v, result uintptr) uintptr {
			var b bool
			s := abi.IsTypedArray(napi.Env(env), napi.Value(v), &b)
			pokeBool(result, b)
			return st(s)
		}),
		// is_error
		purego.NewCallback(func(env, v, result uintptr) uintptr {
			var b bool
			s := abi.IsError(napi.Env(env), napi.Value(v), &b)
			pokeBool(result, b)
			return st(s)
		}),
		// create_object
		purego.NewCallback(func(env, result uintptr) uintptr {
			var h napi.Value
			s := abi.CreateObject(napi.Env(env), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// create_array
		purego.NewCallback(func(env, result uintptr) uintptr {
			var h napi.Value
			s := abi.CreateArray(napi.Env(env), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// create_array_with_length
		purego.NewCallback(func(env, length, result uintptr) uintptr {
			var h napi.Value
			s := abi.CreateArrayWithLength(napi.Env(env), int(length), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// get_array_length
		purego.NewCallback(func(env, v, result uintptr) uintptr {
			var n uint32
			s := abi.GetArrayLength(napi.Env(env), napi.Value(v), &n)
			pokeU32(result, n)
			return st(s)
		}),
		// get_element
		purego.NewCallback(func(env, obj, index, result uintptr) uintptr {
			var h napi.Value
			s := abi.GetElement(napi.Env(env), napi.Value(obj), uint32(index), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// set_element
		purego.NewCallback(func(env, obj, index, v uintptr) uintptr {
			return st(abi.SetElement(napi.Env(env), napi.Value(obj), uint32(index), napi.Value(v)))
		}),
		// get_property
		purego.NewCallback(func(env, obj, key, result uintptr) uintptr {
			var h napi.Value
			s := abi.GetProperty(napi.Env(env), napi.Value(obj), napi.Value(key), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// set_property
		purego.NewCallback(func(env, obj, key, v uintptr) uintptr {
			return st(abi.SetProperty(napi.Env(env), napi.Value(obj), napi.Value(key), napi.Value(v)))
		}),
		// has_property
		purego.NewCallback(func(env, obj, key, result uintptr) uintptr {
			var b bool
			s := abi.HasProperty(napi.Env(env), napi.Value(obj), napi.Value(key), &b)
			pokeBool(result, b)
			return st(s)
		}),
		// delete_property
		purego.NewCallback(func(env, obj, key, result uintptr) uintptr {
			var b bool
			s := abi.DeleteProperty(napi.Env(env), napi.Value(obj), napi.Value(key), &b)
			pokeBool(result, b)
			return st(s)
		}),
		// get_named_property
		purego.NewCallback(func(env, obj, name, result uintptr) uintptr {
			var h napi.Value
			s := abi.GetNamedProperty(napi.Env(env), napi.Value(obj), goString(name), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// set_named_property
		purego.NewCallback(func(env, obj, name, v uintptr) uintptr {
			return st(abi.SetNamedProperty(napi.Env(env), napi.Value(obj), goString(name), napi.Value(v)))
		}),
		// has_named_property
		purego.NewCallback(func(env, obj, name, result uintptr) uintptr {
			var b bool
			s := abi.HasNamedProperty(napi.Env(env), napi.Value(obj), goString(name), &b)
			pokeBool(result, b)
			return st(s)
		}),
		// get_property_names
		purego.NewCallback(func(env, obj, result uintptr) uintptr {
			var h napi.Value
			s := abi.GetPropertyNames(napi.Env(env), napi.Value(obj), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// define_properties
		purego.NewCallback(func(env, obj, count, props uintptr) uintptr {
			return st(abi.DefineProperties(napi.Env(env), napi.Value(obj), readDescriptors(props, int(count))))
		}),
		// get_cb_info
		purego.NewCallback(func(env, cbinfo, argcPtr, argv, thisPtr, dataPtr uintptr) uintptr {
			capacity := 0
			if argcPtr != 0 {
				capacity = int(peekPtr(argcPtr))
			}
			var buf []napi.Value
			if argv != 0 && capacity > 0 {
				buf = make([]napi.Value, capacity)
			}
			var argc int
			var this napi.Value
			var data uintptr
			s := abi.GetCbInfo(napi.Env(env), napi.CallbackInfo(cbinfo), &argc, buf, &this, &data)
			for i, h := range buf {
				pokePtr(argv+uintptr(i)*unsafe.Sizeof(uintptr(0)), uintptr(h))
			}
			if argcPtr != 0 {
				pokePtr(argcPtr, uintptr(argc))
			}
			pokePtr(thisPtr, uintptr(this))
			pokePtr(dataPtr, data)
			return st(s)
		}),
		// get_new_target
		purego.NewCallback(func(env, cbinfo, result uintptr) uintptr {
			var h napi.Value
			s := abi.GetNewTarget(napi.Env(env), napi.CallbackInfo(cbinfo), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// create_function
		purego.NewCallback(func(env, name, length, cb, data, result uintptr) uintptr {
			var h napi.Value
			s := abi.CreateFunction(napi.Env(env), goString(name), wrapCallback(cb), data, &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// call_function
		purego.NewCallback(func(env, recv, fn, argc, argv, result uintptr) uintptr {
			var h napi.Value
			s := abi.CallFunction(napi.Env(env), napi.Value(recv), napi.Value(fn), toHandles(argv, int(argc)), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// new_instance
		purego.NewCallback(func(env, ctor, argc, argv, result uintptr) uintptr {
			var h napi.Value
			s := abi.NewInstance(napi.Env(env), napi.Value(ctor), toHandles(argv, int(argc)), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// define_class
		purego.NewCallback(func(env, name, length, ctor, data, propCount, props, result uintptr) uintptr {
			var h napi.Value
			s := abi.DefineClass(napi.Env(env), goString(name), wrapCallback(ctor), data,
				readDescriptors(props, int(propCount)), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// create_reference
		purego.NewCallback(func(env, v, refcount, result uintptr) uintptr {
			var ref napi.Ref
			s := abi.CreateReference(napi.Env(env), napi.Value(v), uint32(refcount), &ref)
			pokePtr(result, uintptr(ref))
			return st(s)
		}),
		// delete_reference
		purego.NewCallback(func(env, ref uintptr) uintptr {
			return st(abi.DeleteReference(napi.Env(env), napi.Ref(ref)))
		}),
		// reference_ref
		purego.NewCallback(func(env, ref, result uintptr) uintptr {
			var n uint32
			s := abi.ReferenceRef(napi.Env(env), napi.Ref(ref), &n)
			pokeU32(result, n)
			return st(s)
		}),
		// reference_unref
		purego.NewCallback(func(env, ref, result uintptr) uintptr {
			var n uint32
			s := abi.ReferenceUnref(napi.Env(env), napi.Ref(ref), &n)
			pokeU32(result, n)
			return st(s)
		}),
		// get_reference_value
		purego.NewCallback(func(env, ref, result uintptr) uintptr {
			var h napi.Value
			s := abi.GetReferenceValue(napi.Env(env), napi.Ref(ref), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// throw
		purego.NewCallback(func(env, err uintptr) uintptr {
			return st(abi.Throw(napi.Env(env), napi.Value(err)))
		}),
		// throw_error
		purego.NewCallback(func(env, code, msg uintptr) uintptr {
			return st(abi.ThrowError(napi.Env(env), goString(code), goString(msg)))
		}),
		// throw_type_error
		purego.NewCallback(func(env, code, msg uintptr) uintptr {
			return st(abi.ThrowTypeError(napi.Env(env), goString(code), goString(msg)))
		}),
		// throw_range_error
		purego.NewCallback(func(env, code, msg uintptr) uintptr {
			return st(abi.ThrowRangeError(napi.Env(env), goString(code), goString(msg)))
		}),
		// create_error
		purego.NewCallback(func(env, code, msg, result uintptr) uintptr {
			var h napi.Value
			s := abi.CreateError(napi.Env(env), napi.Value(code), napi.Value(msg), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// create_type_error
		purego.NewCallback(func(env, code, msg, result uintptr) uintptr {
			var h napi.Value
			s := abi.CreateTypeError(napi.Env(env), napi.Value(code), napi.Value(msg), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// create_range_error
		purego.NewCallback(func(env, code, msg, result uintptr) uintptr {
			var h napi.Value
			s := abi.CreateRangeError(napi.Env(env), napi.Value(code), napi.Value(msg), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// is_exception_pending
		purego.NewCallback(func(env, result uintptr) uintptr {
			var b bool
			s := abi.IsExceptionPending(napi.Env(env), &b)
			pokeBool(result, b)
			return st(s)
		}),
		// get_and_clear_last_exception
		purego.NewCallback(func(env, result uintptr) uintptr {
			var h napi.Value
			s := abi.GetAndClearLastException(napi.Env(env), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// get_last_error_info: fill the shim's persistent
		// napi_extended_error_info buffer. The message pointer stays
		// NULL; Go-owned string storage cannot cross the boundary.
		purego.NewCallback(func(env, result uintptr) uintptr {
			var info napi.ExtendedErrorInfo
			s := abi.GetLastErrorInfo(napi.Env(env), &info)
			if result != 0 {
				pokePtr(result+0, 0)                      // error_message
				pokePtr(result+8, info.EngineReserved)    // engine_reserved
				pokeU32(result+16, info.EngineErrorCode)  // engine_error_code
				pokeI32(result+20, int32(info.ErrorCode)) // error_code
			}
			return st(s)
		}),
		// open_handle_scope
		purego.NewCallback(func(env, result uintptr) uintptr {
			var sc napi.HandleScope
			s := abi.OpenHandleScope(napi.Env(env), &sc)
			pokePtr(result, uintptr(sc))
			return st(s)
		}),
		// close_handle_scope
		purego.NewCallback(func(env, scope uintptr) uintptr {
			return st(abi.CloseHandleScope(napi.Env(env), napi.HandleScope(scope)))
		}),
		// open_escapable_handle_scope
		purego.NewCallback(func(env, result uintptr) uintptr {
			var sc napi.EscapableHandleScope
			s := abi.OpenEscapableHandleScope(napi.Env(env), &sc)
			pokePtr(result, uintptr(sc))
			return st(s)
		}),
		// close_escapable_handle_scope
		purego.NewCallback(func(env, scope uintptr) uintptr {
			return st(abi.CloseEscapableHandleScope(napi.Env(env), napi.EscapableHandleScope(scope)))
		}),
		// escape_handle
		purego.NewCallback(func(env, scope, escapee, result uintptr) uintptr {
			var h napi.Value
			s := abi.EscapeHandle(napi.Env(env), napi.EscapableHandleScope(scope), napi.Value(escapee), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// coerce_to_bool
		purego.NewCallback(func(env, v, result uintptr) uintptr {
			var h napi.Value
			s := abi.CoerceToBool(napi.Env(env), napi.Value(v), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// coerce_to_number
		purego.NewCallback(func(env, v, result uintptr) uintptr {
			var h napi.Value
			s := abi.CoerceToNumber(napi.Env(env), napi.Value(v), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// coerce_to_string
		purego.NewCallback(func(env, v, result uintptr) uintptr {
			var h napi.Value
			s := abi.CoerceToString(napi.Env(env), napi.Value(v), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// coerce_to_object
		purego.NewCallback(func(env, v, result uintptr) uintptr {
			var h napi.Value
			s := abi.CoerceToObject(napi.Env(env), napi.Value(v), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// strict_equals
		purego.NewCallback(func(env, lhs, rhs, result uintptr) uintptr {
			var b bool
			s := abi.StrictEquals(napi.Env(env), napi.Value(lhs), napi.Value(rhs), &b)
			pokeBool(result, b)
			return st(s)
		}),
		// instanceof
		purego.NewCallback(func(env, obj, ctor, result uintptr) uintptr {
			var b bool
			s := abi.Instanceof(napi.Env(env), napi.Value(obj), napi.Value(ctor), &b)
			pokeBool(result, b)
			return st(s)
		}),
		// wrap
		purego.NewCallback(func(env, obj, native, finalize, hint, result uintptr) uintptr {
			if result == 0 {
				return st(abi.Wrap(napi.Env(env), napi.Value(obj), native, wrapFinalize(finalize), hint, nil))
			}
			var ref napi.Ref
			s := abi.Wrap(napi.Env(env), napi.Value(obj), native, wrapFinalize(finalize), hint, &ref)
			pokePtr(result, uintptr(ref))
			return st(s)
		}),
		// unwrap
		purego.NewCallback(func(env, obj, result uintptr) uintptr {
			var p uintptr
			s := abi.Unwrap(napi.Env(env), napi.Value(obj), &p)
			pokePtr(result, p)
			return st(s)
		}),
		// remove_wrap
		purego.NewCallback(func(env, obj, result uintptr) uintptr {
			var p uintptr
			s := abi.RemoveWrap(napi.Env(env), napi.Value(obj), &p)
			pokePtr(result, p)
			return st(s)
		}),
		// add_finalizer
		purego.NewCallback(func(env, obj, data, finalize, hint, result uintptr) uintptr {
			if result == 0 {
				return st(abi.AddFinalizer(napi.Env(env), napi.Value(obj), data, wrapFinalize(finalize), hint, nil))
			}
			var ref napi.Ref
			s := abi.AddFinalizer(napi.Env(env), napi.Value(obj), data, wrapFinalize(finalize), hint, &ref)
			pokePtr(result, uintptr(ref))
			return st(s)
		}),
		// create_external
		purego.NewCallback(func(env, data, finalize, hint, result uintptr) uintptr {
			var h napi.Value
			s := abi.CreateExternal(napi.Env(env), data, wrapFinalize(finalize), hint, &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// get_value_external
		purego.NewCallback(func(env, v, result uintptr) uintptr {
			var p uintptr
			s := abi.GetValueExternal(napi.Env(env), napi.Value(v), &p)
			pokePtr(result, p)
			return st(s)
		}),
		// create_promise
		purego.NewCallback(func(env, deferredPtr, promisePtr uintptr) uintptr {
			var d napi.Deferred
			var p napi.Value
			s := abi.CreatePromise(napi.Env(env), &d, &p)
			pokePtr(deferredPtr, uintptr(d))
			pokePtr(promisePtr, uintptr(p))
			return st(s)
		}),
		// resolve_deferred
		purego.NewCallback(func(env, deferred, resolution uintptr) uintptr {
			return st(abi.ResolveDeferred(napi.Env(env), napi.Deferred(deferred), napi.Value(resolution)))
		}),
		// reject_deferred
		purego.NewCallback(func(env, deferred, rejection uintptr) uintptr {
			return st(abi.RejectDeferred(napi.Env(env), napi.Deferred(deferred), napi.Value(rejection)))
		}),
		// is_promise
		purego.NewCallback(func(env, v, result uintptr) uintptr {
			var b bool
			s := abi.IsPromise(napi.Env(env), napi.Value(v), &b)
			pokeBool(result, b)
			return st(s)
		}),
		// set_instance_data
		purego.NewCallback(func(env, data, finalize, hint uintptr) uintptr {
			return st(abi.SetInstanceData(napi.Env(env), data, wrapFinalize(finalize), hint))
		}),
		// get_instance_data
		purego.NewCallback(func(env, result uintptr) uintptr {
			var p uintptr
			s := abi.GetInstanceData(napi.Env(env), &p)
			pokePtr(result, p)
			return st(s)
		}),
		// add_env_cleanup_hook
		purego.NewCallback(func(env, fn, arg uintptr) uintptr {
			return st(abi.AddEnvCleanupHook(napi.Env(env), wrapCleanup(fn), arg))
		}),
		// remove_env_cleanup_hook
		purego.NewCallback(func(env, fn, arg uintptr) uintptr {
			return st(abi.RemoveEnvCleanupHook(napi.Env(env), arg))
		}),
		// create_arraybuffer
		purego.NewCallback(func(env, length, dataPtr, result uintptr) uintptr {
			var data []byte
			var h napi.Value
			s := abi.CreateArrayBuffer(napi.Env(env), int(length), &data, &h)
			if dataPtr != 0 && len(data) > 0 {
				pokePtr(dataPtr, uintptr(unsafe.Pointer(&data[0])))
			}
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// get_arraybuffer_info
		purego.NewCallback(func(env, v, dataPtr, lengthPtr uintptr) uintptr {
			var data []byte
			var length int
			s := abi.GetArrayBufferInfo(napi.Env(env), napi.Value(v), &data, &length)
			if dataPtr != 0 && len(data) > 0 {
				pokePtr(dataPtr, uintptr(unsafe.Pointer(&data[0])))
			}
			pokePtr(lengthPtr, uintptr(length))
			return st(s)
		}),
		// detach_arraybuffer
		purego.NewCallback(func(env, v uintptr) uintptr {
			return st(abi.DetachArrayBuffer(napi.Env(env), napi.Value(v)))
		}),
		// create_typedarray
		purego.NewCallback(func(env, kind, length, arraybuffer, byteOffset, result uintptr) uintptr {
			var h napi.Value
			s := abi.CreateTypedArray(napi.Env(env), napi.TypedArrayType(int32(kind)), int(length),
				napi.Value(arraybuffer), int(byteOffset), &h)
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// get_typedarray_info
		purego.NewCallback(func(env, v, kindPtr, lengthPtr, dataPtr, abPtr, offsetPtr uintptr) uintptr {
			var kind napi.TypedArrayType
			var length, offset int
			var data []byte
			var ab napi.Value
			s := abi.GetTypedArrayInfo(napi.Env(env), napi.Value(v), &kind, &length, &data, &ab, &offset)
			pokeI32(kindPtr, int32(kind))
			pokePtr(lengthPtr, uintptr(length))
			if dataPtr != 0 && len(data) > 0 {
				pokePtr(dataPtr, uintptr(unsafe.Pointer(&data[0])))
			}
			pokePtr(abPtr, uintptr(ab))
			pokePtr(offsetPtr, uintptr(offset))
			return st(s)
		}),
		// create_buffer
		purego.NewCallback(func(env, length, dataPtr, result uintptr) uintptr {
			var data []byte
			var h napi.Value
			s := abi.CreateBuffer(napi.Env(env), int(length), &data, &h)
			if dataPtr != 0 && len(data) > 0 {
				pokePtr(dataPtr, uintptr(unsafe.Pointer(&data[0])))
			}
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// create_buffer_copy
		purego.NewCallback(func(env, length, src, dataPtr, result uintptr) uintptr {
			var data []byte
			var h napi.Value
			s := abi.CreateBufferCopy(napi.Env(env), goBytes(src, int(length)), &data, &h)
			if dataPtr != 0 && len(data) > 0 {
				pokePtr(dataPtr, uintptr(unsafe.Pointer(&data[0])))
			}
			pokePtr(result, uintptr(h))
			return st(s)
		}),
		// get_buffer_info
		purego.NewCallback(func(env, v, dataPtr, lengthPtr uintptr) uintptr {
			var data []byte
			var length int
			s := abi.GetBufferInfo(napi.Env(env), napi.Value(v), &data, &length)
			if dataPtr != 0 && len(data) > 0 {
				pokePtr(dataPtr, uintptr(unsafe.Pointer(&data[0])))
			}
			pokePtr(lengthPtr, uintptr(length))
			return st(s)
		}),
		// create_threadsafe_function
		purego.NewCallback(func(env, fn, asyncResource, asyncResourceName, maxQueueSize,
			initialThreadCount, threadFinalizeData, threadFinalizeCb, context, callJSCb, result uintptr) uintptr {
			var id napi.ThreadsafeFunction
			s := abi.CreateThreadsafeFunction(napi.Env(env), napi.Value(fn),
				int(maxQueueSize), int(initialThreadCount), context,
				wrapFinalize(threadFinalizeCb), threadFinalizeData, 0,
				wrapCallJS(callJSCb), &id)
			pokePtr(result, uintptr(id))
			return st(s)
		}),
		// call_threadsafe_function
		purego.NewCallback(func(fn, data, isBlocking uintptr) uintptr {
			mode := napi.NonBlocking
			if isBlocking != 0 {
				mode = napi.Blocking
			}
			return st(abi.CallThreadsafeFunction(napi.ThreadsafeFunction(fn), data, mode))
		}),
		// acquire_threadsafe_function
		purego.NewCallback(func(fn uintptr) uintptr {
			return st(abi.AcquireThreadsafeFunction(napi.ThreadsafeFunction(fn)))
		}),
		// release_threadsafe_function
		purego.NewCallback(func(fn, mode uintptr) uintptr {
			return st(abi.ReleaseThreadsafeFunction(napi.ThreadsafeFunction(fn), napi.ReleaseMode(int32(mode))))
		}),
		// get_threadsafe_function_context
		purego.NewCallback(func(fn, result uintptr) uintptr {
			var p uintptr
			s := abi.GetThreadsafeFunctionContext(napi.ThreadsafeFunction(fn), &p)
			pokePtr(result, p)
			return st(s)
		}),
		// create_async_work
		purego.NewCallback(func(env, resource, resourceName, execute, complete, data, result uintptr) uintptr {
			var id napi.AsyncWork
			s := abi.CreateAsyncWork(napi.Env(env), napi.Value(resource), napi.Value(resourceName),
				wrapExecute(execute), wrapComplete(complete), data, &id)
			pokePtr(result, uintptr(id))
			return st(s)
		}),
		// queue_async_work
		purego.NewCallback(func(env, work uintptr) uintptr {
			return st(abi.QueueAsyncWork(napi.Env(env), napi.AsyncWork(work)))
		}),
		// cancel_async_work
		purego.NewCallback(func(env, work uintptr) uintptr {
			return st(abi.CancelAsyncWork(napi.Env(env), napi.AsyncWork(work)))
		}),
		// delete_async_work
		purego.NewCallback(func(env, work uintptr) uintptr {
			return st(abi.DeleteAsyncWork(napi.Env(env), napi.AsyncWork(work)))
		}),
		// fatal_error
		purego.NewCallback(func(location, locationLen, message, messageLen uintptr) uintptr {
			abi.FatalError(goString(location), goString(message))
			return 0
		}),
	}
}
