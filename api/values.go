package api

import (
	"math"

	"github.com/wippyai/napi-runtime/env"
	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/value"
)

// GetVersion implements napi_get_version.
func (a *API) GetVersion(envID napi.Env, result *uint32) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	*result = napi.Version
	return napi.OK
}

// GetNodeVersion implements napi_get_node_version with a sentinel version.
func (a *API) GetNodeVersion(envID napi.Env, result *napi.NodeVersion) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	*result = napi.NodeVersion{Major: 18, Minor: 0, Patch: 0, Release: "node"}
	return napi.OK
}

// GetUndefined implements napi_get_undefined. Singleton handles are minted
// at store creation and need no open scope.
func (a *API) GetUndefined(envID napi.Env, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	*result = napi.HandleUndefined
	return napi.OK
}

// GetNull implements napi_get_null.
func (a *API) GetNull(envID napi.Env, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	*result = napi.HandleNull
	return napi.OK
}

// GetGlobal implements napi_get_global.
func (a *API) GetGlobal(envID napi.Env, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	*result = napi.HandleGlobal
	return napi.OK
}

// GetBoolean implements napi_get_boolean.
func (a *API) GetBoolean(envID napi.Env, v bool, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	if v {
		*result = napi.HandleTrue
	} else {
		*result = napi.HandleFalse
	}
	return napi.OK
}

func (a *API) createNumber(envID napi.Env, f float64, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	h, status := addValue(e, f)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// CreateInt32 implements napi_create_int32.
func (a *API) CreateInt32(envID napi.Env, v int32, result *napi.Value) napi.Status {
	return a.createNumber(envID, float64(v), result)
}

// CreateUint32 implements napi_create_uint32.
func (a *API) CreateUint32(envID napi.Env, v uint32, result *napi.Value) napi.Status {
	return a.createNumber(envID, float64(v), result)
}

// CreateInt64 implements napi_create_int64. Values beyond 2^53 lose
// precision, as they do in the engine's number type.
func (a *API) CreateInt64(envID napi.Env, v int64, result *napi.Value) napi.Status {
	return a.createNumber(envID, float64(v), result)
}

// CreateDouble implements napi_create_double.
func (a *API) CreateDouble(envID napi.Env, v float64, result *napi.Value) napi.Status {
	return a.createNumber(envID, v, result)
}

// CreateBigintInt64 implements napi_create_bigint_int64 over the int64
// approximation.
func (a *API) CreateBigintInt64(envID napi.Env, v int64, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	h, status := addValue(e, v)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// CreateBigintUint64 implements napi_create_bigint_uint64. Values above
// MaxInt64 are not representable in the approximation.
func (a *API) CreateBigintUint64(envID napi.Env, v uint64, result *napi.Value) napi.Status {
	if v > math.MaxInt64 {
		if e, ok := a.ctx.Env(envID); ok {
			return e.SetLastError(napi.BigIntExpected)
		}
		return napi.BigIntExpected
	}
	return a.CreateBigintInt64(envID, int64(v), result)
}

// CreateStringUTF8 implements napi_create_string_utf8.
func (a *API) CreateStringUTF8(envID napi.Env, s string, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	h, status := addValue(e, s)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// CreateStringLatin1 implements napi_create_string_latin1: each byte maps
// to the corresponding code point.
func (a *API) CreateStringLatin1(envID napi.Env, raw []byte, result *napi.Value) napi.Status {
	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}
	return a.CreateStringUTF8(envID, string(runes), result)
}

// CreateStringUTF16 implements napi_create_string_utf16 by transcoding;
// storage stays UTF-8.
func (a *API) CreateStringUTF16(envID napi.Env, units []uint16, result *napi.Value) napi.Status {
	return a.CreateStringUTF8(envID, decodeUTF16(units), result)
}

// CreateSymbol implements napi_create_symbol. Identity is per created
// symbol; there is no global registry.
func (a *API) CreateSymbol(envID napi.Env, description napi.Value, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	desc := ""
	if description != napi.HandleHole {
		v, status := valueOf(e, description)
		if status != napi.OK {
			return e.SetLastError(status)
		}
		if s, ok := v.(string); ok {
			desc = s
		} else if !value.IsUndefined(v) {
			return e.SetLastError(napi.StringExpected)
		}
	}
	h, status := addValue(e, &value.Symbol{Description: desc})
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// CreateObject implements napi_create_object.
func (a *API) CreateObject(envID napi.Env, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	h, status := addValue(e, value.NewObject())
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// CreateArray implements napi_create_array.
func (a *API) CreateArray(envID napi.Env, result *napi.Value) napi.Status {
	return a.CreateArrayWithLength(envID, 0, result)
}

// CreateArrayWithLength implements napi_create_array_with_length.
func (a *API) CreateArrayWithLength(envID napi.Env, length int, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil || length < 0 {
		return e.SetLastError(napi.InvalidArg)
	}
	h, status := addValue(e, value.NewArray(length))
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// CreateExternal implements napi_create_external.
func (a *API) CreateExternal(envID napi.Env, data uintptr, finalize napi.Finalize, hint uintptr, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	ext := &value.External{Data: data}
	if finalize != nil {
		e.NewReferenceWithFinalizer(ext, 0, env.OwnedByRuntime, finalize, data, hint)
	}
	h, status := addValue(e, ext)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// GetValueExternal implements napi_get_value_external.
func (a *API) GetValueExternal(envID napi.Env, h napi.Value, result *uintptr) napi.Status {
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
	ext, ok := v.(*value.External)
	if !ok {
		return e.SetLastError(napi.InvalidArg)
	}
	*result = ext.Data
	return napi.OK
}

// CreateDate implements napi_create_date over the tagged-double
// approximation.
func (a *API) CreateDate(envID napi.Env, ms float64, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	h, status := addValue(e, &value.Date{Ms: ms})
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// GetDateValue implements napi_get_date_value.
func (a *API) GetDateValue(envID napi.Env, h napi.Value, result *float64) napi.Status {
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
	d, ok := v.(*value.Date)
	if !ok {
		return e.SetLastError(napi.DateExpected)
	}
	*result = d.Ms
	return napi.OK
}

// TypeOf implements napi_typeof.
func (a *API) TypeOf(envID napi.Env, h napi.Value, result *napi.ValueType) napi.Status {
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
	*result = napi.ValueType(value.TypeOf(v))
	return napi.OK
}

// GetValueBool implements napi_get_value_bool.
func (a *API) GetValueBool(envID napi.Env, h napi.Value, result *bool) napi.Status {
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
	b, ok := v.(bool)
	if !ok {
		return e.SetLastError(napi.BooleanExpected)
	}
	*result = b
	return napi.OK
}

func (a *API) numberOf(envID napi.Env, h napi.Value) (*env.Env, float64, napi.Status) {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return nil, 0, status
	}
	v, status := valueOf(e, h)
	if status != napi.OK {
		return e, 0, e.SetLastError(status)
	}
	f, ok := v.(float64)
	if !ok {
		return e, 0, e.SetLastError(napi.NumberExpected)
	}
	return e, f, napi.OK
}

// GetValueInt32 implements napi_get_value_int32 with modular truncation.
func (a *API) GetValueInt32(envID napi.Env, h napi.Value, result *int32) napi.Status {
	e, f, status := a.numberOf(envID, h)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	*result = value.Int32(f)
	return napi.OK
}

// GetValueUint32 implements napi_get_value_uint32.
func (a *API) GetValueUint32(envID napi.Env, h napi.Value, result *uint32) napi.Status {
	e, f, status := a.numberOf(envID, h)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	*result = value.Uint32(f)
	return napi.OK
}

// GetValueInt64 implements napi_get_value_int64 with clamping.
func (a *API) GetValueInt64(envID napi.Env, h napi.Value, result *int64) napi.Status {
	e, f, status := a.numberOf(envID, h)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	*result = value.Int64(f)
	return napi.OK
}

// GetValueDouble implements napi_get_value_double.
func (a *API) GetValueDouble(envID napi.Env, h napi.Value, result *float64) napi.Status {
	e, f, status := a.numberOf(envID, h)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	*result = f
	return napi.OK
}

// GetValueBigintInt64 implements napi_get_value_bigint_int64. lossless
// reports whether the stored approximation is exact.
func (a *API) GetValueBigintInt64(envID napi.Env, h napi.Value, result *int64, lossless *bool) napi.Status {
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
	i, ok := v.(int64)
	if !ok {
		return e.SetLastError(napi.BigIntExpected)
	}
	*result = i
	if lossless != nil {
		*lossless = true
	}
	return napi.OK
}

// GetValueStringUTF8 implements napi_get_value_string_utf8 length
// semantics: nil buf queries the total length; otherwise up to
// len(buf)-1 bytes are copied NUL-terminated and the copied count is
// reported.
func (a *API) GetValueStringUTF8(envID napi.Env, h napi.Value, buf []byte, result *int) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	v, status := valueOf(e, h)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	s, ok := v.(string)
	if !ok {
		return e.SetLastError(napi.StringExpected)
	}
	if buf == nil {
		if result == nil {
			return e.SetLastError(napi.InvalidArg)
		}
		*result = len(s)
		return napi.OK
	}
	if len(buf) == 0 {
		if result != nil {
			*result = 0
		}
		return napi.OK
	}
	n := copy(buf[:len(buf)-1], s)
	buf[n] = 0
	if result != nil {
		*result = n
	}
	return napi.OK
}

// GetValueStringUTF16 implements napi_get_value_string_utf16 by
// transcoding the UTF-8 storage.
func (a *API) GetValueStringUTF16(envID napi.Env, h napi.Value, buf []uint16, result *int) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	v, status := valueOf(e, h)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	s, ok := v.(string)
	if !ok {
		return e.SetLastError(napi.StringExpected)
	}
	units := encodeUTF16(s)
	if buf == nil {
		if result == nil {
			return e.SetLastError(napi.InvalidArg)
		}
		*result = len(units)
		return napi.OK
	}
	if len(buf) == 0 {
		if result != nil {
			*result = 0
		}
		return napi.OK
	}
	n := copy(buf[:len(buf)-1], units)
	buf[n] = 0
	if result != nil {
		*result = n
	}
	return napi.OK
}

// StrictEquals implements napi_strict_equals.
func (a *API) StrictEquals(envID napi.Env, lhs, rhs napi.Value, result *bool) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	lv, status := valueOf(e, lhs)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	rv, status := valueOf(e, rhs)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = value.StrictEquals(lv, rv)
	return napi.OK
}

// Instanceof implements napi_instanceof, preserving the source's
// short-circuit: true iff the value is non-null and the constructor is a
// function.
func (a *API) Instanceof(envID napi.Env, object, constructor napi.Value, result *bool) napi.Status {
	e, status := a.scriptEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	obj, status := valueOf(e, object)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	ctor, status := valueOf(e, constructor)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	if _, ok := ctor.(*value.Function); !ok {
		return e.SetLastError(napi.FunctionExpected)
	}
	*result = obj != nil && !value.IsUndefined(obj)
	return napi.OK
}

// CoerceToBool implements napi_coerce_to_bool.
func (a *API) CoerceToBool(envID napi.Env, h napi.Value, result *napi.Value) napi.Status {
	e, status := a.scriptEnv(envID)
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
	if value.Truthy(v) {
		*result = napi.HandleTrue
	} else {
		*result = napi.HandleFalse
	}
	return napi.OK
}

// CoerceToNumber implements napi_coerce_to_number.
func (a *API) CoerceToNumber(envID napi.Env, h napi.Value, result *napi.Value) napi.Status {
	e, status := a.scriptEnv(envID)
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
	out, status := addValue(e, value.ToNumber(v))
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = out
	return napi.OK
}

// CoerceToString implements napi_coerce_to_string.
func (a *API) CoerceToString(envID napi.Env, h napi.Value, result *napi.Value) napi.Status {
	e, status := a.scriptEnv(envID)
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
	out, status := addValue(e, value.ToString(v))
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = out
	return napi.OK
}

// CoerceToObject implements napi_coerce_to_object for values that already
// have object nature; primitives fail ObjectExpected (no wrapper classes
// in the host model).
func (a *API) CoerceToObject(envID napi.Env, h napi.Value, result *napi.Value) napi.Status {
	e, status := a.scriptEnv(envID)
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
	if holderFor(v) == nil {
		return e.SetLastError(napi.ObjectExpected)
	}
	*result = h
	return napi.OK
}
