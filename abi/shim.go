package abi

import "github.com/wippyai/napi-runtime/napi"

// The functions below mirror the exported napi_* symbols one-for-one.
// Each checks the installed table, forwards when the slot is present, and
// otherwise answers the per-slot default from the package contract.

func tbl() *Table { return Installed() }

// boolDefault serves the is_* family: absent table or slot answers false.
func boolDefault(slot func(*Table) func(napi.Env, napi.Value, *bool) napi.Status,
	env napi.Env, v napi.Value, result *bool) napi.Status {
	t := tbl()
	if t == nil {
		return napi.GenericFailure
	}
	fn := slot(t)
	if fn == nil {
		if result != nil {
			*result = false
		}
		return napi.OK
	}
	return fn(env, v, result)
}

func GetVersion(env napi.Env, result *uint32) napi.Status {
	if t := tbl(); t != nil && t.GetVersion != nil {
		return t.GetVersion(env, result)
	}
	return napi.GenericFailure
}

func GetNodeVersion(env napi.Env, result *napi.NodeVersion) napi.Status {
	if t := tbl(); t != nil && t.GetNodeVersion != nil {
		return t.GetNodeVersion(env, result)
	}
	return napi.GenericFailure
}

func GetUndefined(env napi.Env, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.GetUndefined != nil {
		return t.GetUndefined(env, result)
	}
	return napi.GenericFailure
}

func GetNull(env napi.Env, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.GetNull != nil {
		return t.GetNull(env, result)
	}
	return napi.GenericFailure
}

func GetGlobal(env napi.Env, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.GetGlobal != nil {
		return t.GetGlobal(env, result)
	}
	return napi.GenericFailure
}

func GetBoolean(env napi.Env, v bool, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.GetBoolean != nil {
		return t.GetBoolean(env, v, result)
	}
	return napi.GenericFailure
}

func CreateInt32(env napi.Env, v int32, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateInt32 != nil {
		return t.CreateInt32(env, v, result)
	}
	return napi.GenericFailure
}

func CreateUint32(env napi.Env, v uint32, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateUint32 != nil {
		return t.CreateUint32(env, v, result)
	}
	return napi.GenericFailure
}

func CreateInt64(env napi.Env, v int64, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateInt64 != nil {
		return t.CreateInt64(env, v, result)
	}
	return napi.GenericFailure
}

func CreateDouble(env napi.Env, v float64, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateDouble != nil {
		return t.CreateDouble(env, v, result)
	}
	return napi.GenericFailure
}

func CreateBigintInt64(env napi.Env, v int64, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateBigintInt64 != nil {
		return t.CreateBigintInt64(env, v, result)
	}
	return napi.GenericFailure
}

func CreateBigintUint64(env napi.Env, v uint64, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateBigintUint64 != nil {
		return t.CreateBigintUint64(env, v, result)
	}
	return napi.GenericFailure
}

func CreateStringUTF8(env napi.Env, s string, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateStringUTF8 != nil {
		return t.CreateStringUTF8(env, s, result)
	}
	return napi.GenericFailure
}

func CreateStringLatin1(env napi.Env, raw []byte, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateStringLatin1 != nil {
		return t.CreateStringLatin1(env, raw, result)
	}
	return napi.GenericFailure
}

func CreateStringUTF16(env napi.Env, units []uint16, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateStringUTF16 != nil {
		return t.CreateStringUTF16(env, units, result)
	}
	return napi.GenericFailure
}

func CreateSymbol(env napi.Env, description napi.Value, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateSymbol != nil {
		return t.CreateSymbol(env, description, result)
	}
	return napi.GenericFailure
}

func CreateObject(env napi.Env, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateObject != nil {
		return t.CreateObject(env, result)
	}
	return napi.GenericFailure
}

func CreateArray(env napi.Env, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateArray != nil {
		return t.CreateArray(env, result)
	}
	return napi.GenericFailure
}

func CreateArrayWithLength(env napi.Env, length int, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateArrayLength != nil {
		return t.CreateArrayLength(env, length, result)
	}
	return napi.GenericFailure
}

func CreateExternal(env napi.Env, data uintptr, finalize napi.Finalize, hint uintptr, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateExternal != nil {
		return t.CreateExternal(env, data, finalize, hint, result)
	}
	return napi.GenericFailure
}

func CreateDate(env napi.Env, ms float64, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateDate != nil {
		return t.CreateDate(env, ms, result)
	}
	return napi.GenericFailure
}

func TypeOf(env napi.Env, v napi.Value, result *napi.ValueType) napi.Status {
	if t := tbl(); t != nil && t.TypeOf != nil {
		return t.TypeOf(env, v, result)
	}
	return napi.GenericFailure
}

func GetValueBool(env napi.Env, v napi.Value, result *bool) napi.Status {
	if t := tbl(); t != nil && t.GetValueBool != nil {
		return t.GetValueBool(env, v, result)
	}
	return napi.GenericFailure
}

func GetValueInt32(env napi.Env, v napi.Value, result *int32) napi.Status {
	if t := tbl(); t != nil && t.GetValueInt32 != nil {
		return t.GetValueInt32(env, v, result)
	}
	return napi.GenericFailure
}

func GetValueUint32(env napi.Env, v napi.Value, result *uint32) napi.Status {
	if t := tbl(); t != nil && t.GetValueUint32 != nil {
		return t.GetValueUint32(env, v, result)
	}
	return napi.GenericFailure
}

func GetValueInt64(env napi.Env, v napi.Value, result *int64) napi.Status {
	if t := tbl(); t != nil && t.GetValueInt64 != nil {
		return t.GetValueInt64(env, v, result)
	}
	return napi.GenericFailure
}

func GetValueDouble(env napi.Env, v napi.Value, result *float64) napi.Status {
	if t := tbl(); t != nil && t.GetValueDouble != nil {
		return t.GetValueDouble(env, v, result)
	}
	return napi.GenericFailure
}

func GetValueBigintInt64(env napi.Env, v napi.Value, result *int64, lossless *bool) napi.Status {
	if t := tbl(); t != nil && t.GetValueBigintInt64 != nil {
		return t.GetValueBigintInt64(env, v, result, lossless)
	}
	return napi.GenericFailure
}

func GetValueStringUTF8(env napi.Env, v napi.Value, buf []byte, result *int) napi.Status {
	if t := tbl(); t != nil && t.GetValueStringUTF8 != nil {
		return t.GetValueStringUTF8(env, v, buf, result)
	}
	return napi.GenericFailure
}

func GetValueStringUTF16(env napi.Env, v napi.Value, buf []uint16, result *int) napi.Status {
	if t := tbl(); t != nil && t.GetValueStringUTF16 != nil {
		return t.GetValueStringUTF16(env, v, buf, result)
	}
	return napi.GenericFailure
}

func GetValueExternal(env napi.Env, v napi.Value, result *uintptr) napi.Status {
	if t := tbl(); t != nil && t.GetValueExternal != nil {
		return t.GetValueExternal(env, v, result)
	}
	return napi.GenericFailure
}

func GetDateValue(env napi.Env, v napi.Value, result *float64) napi.Status {
	if t := tbl(); t != nil && t.GetDateValue != nil {
		return t.GetDateValue(env, v, result)
	}
	return napi.GenericFailure
}

func StrictEquals(env napi.Env, lhs, rhs napi.Value, result *bool) napi.Status {
	if t := tbl(); t != nil && t.StrictEquals != nil {
		return t.StrictEquals(env, lhs, rhs, result)
	}
	return napi.GenericFailure
}

func Instanceof(env napi.Env, object, constructor napi.Value, result *bool) napi.Status {
	if t := tbl(); t != nil && t.Instanceof != nil {
		return t.Instanceof(env, object, constructor, result)
	}
	return napi.GenericFailure
}

func IsArray(env napi.Env, v napi.Value, result *bool) napi.Status {
	return boolDefault(func(t *Table) func(napi.Env, napi.Value, *bool) napi.Status { return t.IsArray }, env, v, result)
}

func IsArrayBuffer(env napi.Env, v napi.Value, result *bool) napi.Status {
	return boolDefault(func(t *Table) func(napi.Env, napi.Value, *bool) napi.Status { return t.IsArrayBuffer }, env, v, result)
}

func IsBuffer(env napi.Env, v napi.Value, result *bool) napi.Status {
	return boolDefault(func(t *Table) func(napi.Env, napi.Value, *bool) napi.Status { return t.IsBuffer }, env, v, result)
}

func IsTypedArray(env napi.Env, v napi.Value, result *bool) napi.Status {
	return boolDefault(func(t *Table) func(napi.Env, napi.Value, *bool) napi.Status { return t.IsTypedArray }, env, v, result)
}

func IsDataView(env napi.Env, v napi.Value, result *bool) napi.Status {
	return boolDefault(func(t *Table) func(napi.Env, napi.Value, *bool) napi.Status { return t.IsDataView }, env, v, result)
}

func IsDate(env napi.Env, v napi.Value, result *bool) napi.Status {
	return boolDefault(func(t *Table) func(napi.Env, napi.Value, *bool) napi.Status { return t.IsDate }, env, v, result)
}

func IsError(env napi.Env, v napi.Value, result *bool) napi.Status {
	return boolDefault(func(t *Table) func(napi.Env, napi.Value, *bool) napi.Status { return t.IsError }, env, v, result)
}

func IsPromise(env napi.Env, v napi.Value, result *bool) napi.Status {
	return boolDefault(func(t *Table) func(napi.Env, napi.Value, *bool) napi.Status { return t.IsPromise }, env, v, result)
}

func IsDetachedArrayBuffer(env napi.Env, v napi.Value, result *bool) napi.Status {
	return boolDefault(func(t *Table) func(napi.Env, napi.Value, *bool) napi.Status { return t.IsDetachedArrayBuf }, env, v, result)
}

func CoerceToBool(env napi.Env, v napi.Value, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CoerceToBool != nil {
		return t.CoerceToBool(env, v, result)
	}
	return napi.GenericFailure
}

func CoerceToNumber(env napi.Env, v napi.Value, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CoerceToNumber != nil {
		return t.CoerceToNumber(env, v, result)
	}
	return napi.GenericFailure
}

func CoerceToString(env napi.Env, v napi.Value, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CoerceToString != nil {
		return t.CoerceToString(env, v, result)
	}
	return napi.GenericFailure
}

func CoerceToObject(env napi.Env, v napi.Value, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CoerceToObject != nil {
		return t.CoerceToObject(env, v, result)
	}
	return napi.GenericFailure
}

func GetProperty(env napi.Env, object, key napi.Value, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.GetProperty != nil {
		return t.GetProperty(env, object, key, result)
	}
	return napi.GenericFailure
}

func SetProperty(env napi.Env, object, key, v napi.Value) napi.Status {
	if t := tbl(); t != nil && t.SetProperty != nil {
		return t.SetProperty(env, object, key, v)
	}
	return napi.GenericFailure
}

func HasProperty(env napi.Env, object, key napi.Value, result *bool) napi.Status {
	if t := tbl(); t != nil && t.HasProperty != nil {
		return t.HasProperty(env, object, key, result)
	}
	if tbl() == nil {
		return napi.GenericFailure
	}
	if result != nil {
		*result = false
	}
	return napi.OK
}

func HasOwnProperty(env napi.Env, object, key napi.Value, result *bool) napi.Status {
	if t := tbl(); t != nil && t.HasOwnProperty != nil {
		return t.HasOwnProperty(env, object, key, result)
	}
	if tbl() == nil {
		return napi.GenericFailure
	}
	if result != nil {
		*result = false
	}
	return napi.OK
}

func DeleteProperty(env napi.Env, object, key napi.Value, result *bool) napi.Status {
	if t := tbl(); t != nil && t.DeleteProperty != nil {
		return t.DeleteProperty(env, object, key, result)
	}
	return napi.GenericFailure
}

func GetNamedProperty(env napi.Env, object napi.Value, name string, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.GetNamedProperty != nil {
		return t.GetNamedProperty(env, object, name, result)
	}
	return napi.GenericFailure
}

func SetNamedProperty(env napi.Env, object napi.Value, name string, v napi.Value) napi.Status {
	if t := tbl(); t != nil && t.SetNamedProperty != nil {
		return t.SetNamedProperty(env, object, name, v)
	}
	return napi.GenericFailure
}

func HasNamedProperty(env napi.Env, object napi.Value, name string, result *bool) napi.Status {
	if t := tbl(); t != nil && t.HasNamedProperty != nil {
		return t.HasNamedProperty(env, object, name, result)
	}
	if tbl() == nil {
		return napi.GenericFailure
	}
	if result != nil {
		*result = false
	}
	return napi.OK
}

func GetElement(env napi.Env, object napi.Value, index uint32, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.GetElement != nil {
		return t.GetElement(env, object, index, result)
	}
	return napi.GenericFailure
}

func SetElement(env napi.Env, object napi.Value, index uint32, v napi.Value) napi.Status {
	if t := tbl(); t != nil && t.SetElement != nil {
		return t.SetElement(env, object, index, v)
	}
	return napi.GenericFailure
}

func HasElement(env napi.Env, object napi.Value, index uint32, result *bool) napi.Status {
	if t := tbl(); t != nil && t.HasElement != nil {
		return t.HasElement(env, object, index, result)
	}
	return napi.GenericFailure
}

func DeleteElement(env napi.Env, object napi.Value, index uint32, result *bool) napi.Status {
	if t := tbl(); t != nil && t.DeleteElement != nil {
		return t.DeleteElement(env, object, index, result)
	}
	return napi.GenericFailure
}

func GetArrayLength(env napi.Env, object napi.Value, result *uint32) napi.Status {
	if t := tbl(); t != nil && t.GetArrayLength != nil {
		return t.GetArrayLength(env, object, result)
	}
	return napi.GenericFailure
}

// GetPropertyNames answers the empty-handle sentinel when the slot is
// absent, so callers that only propagate errors proceed.
func GetPropertyNames(env napi.Env, object napi.Value, result *napi.Value) napi.Status {
	t := tbl()
	if t == nil {
		return napi.GenericFailure
	}
	if t.GetPropertyNames == nil {
		if result != nil {
			*result = napi.HandleEmpty
		}
		return napi.OK
	}
	return t.GetPropertyNames(env, object, result)
}

func GetAllPropertyNames(env napi.Env, object napi.Value, mode napi.KeyCollectionMode,
	filter napi.KeyFilter, conversion napi.KeyConversion, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.GetAllPropertyNames != nil {
		return t.GetAllPropertyNames(env, object, mode, filter, conversion, result)
	}
	return napi.GenericFailure
}

func DefineProperties(env napi.Env, object napi.Value, props []napi.PropertyDescriptor) napi.Status {
	if t := tbl(); t != nil && t.DefineProperties != nil {
		return t.DefineProperties(env, object, props)
	}
	return napi.GenericFailure
}

func ObjectFreeze(env napi.Env, object napi.Value) napi.Status {
	if t := tbl(); t != nil && t.ObjectFreeze != nil {
		return t.ObjectFreeze(env, object)
	}
	return napi.GenericFailure
}

func ObjectSeal(env napi.Env, object napi.Value) napi.Status {
	if t := tbl(); t != nil && t.ObjectSeal != nil {
		return t.ObjectSeal(env, object)
	}
	return napi.GenericFailure
}

func GetPrototype(env napi.Env, object napi.Value, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.GetPrototype != nil {
		return t.GetPrototype(env, object, result)
	}
	return napi.GenericFailure
}

func TypeTagObject(env napi.Env, object napi.Value, tag *napi.TypeTag) napi.Status {
	if t := tbl(); t != nil && t.TypeTagObject != nil {
		return t.TypeTagObject(env, object, tag)
	}
	return napi.GenericFailure
}

func CheckObjectTypeTag(env napi.Env, object napi.Value, tag *napi.TypeTag, result *bool) napi.Status {
	if t := tbl(); t != nil && t.CheckObjectTypeTag != nil {
		return t.CheckObjectTypeTag(env, object, tag, result)
	}
	return napi.GenericFailure
}

func CreateFunction(env napi.Env, name string, cb napi.Callback, data uintptr, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateFunction != nil {
		return t.CreateFunction(env, name, cb, data, result)
	}
	return napi.GenericFailure
}

func CallFunction(env napi.Env, recv, fn napi.Value, args []napi.Value, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CallFunction != nil {
		return t.CallFunction(env, recv, fn, args, result)
	}
	return napi.GenericFailure
}

func GetCbInfo(env napi.Env, info napi.CallbackInfo, argc *int, argv []napi.Value, thisArg *napi.Value, data *uintptr) napi.Status {
	if t := tbl(); t != nil && t.GetCbInfo != nil {
		return t.GetCbInfo(env, info, argc, argv, thisArg, data)
	}
	return napi.GenericFailure
}

func GetNewTarget(env napi.Env, info napi.CallbackInfo, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.GetNewTarget != nil {
		return t.GetNewTarget(env, info, result)
	}
	return napi.GenericFailure
}

func NewInstance(env napi.Env, ctor napi.Value, args []napi.Value, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.NewInstance != nil {
		return t.NewInstance(env, ctor, args, result)
	}
	return napi.GenericFailure
}

func DefineClass(env napi.Env, name string, ctor napi.Callback, data uintptr,
	props []napi.PropertyDescriptor, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.DefineClass != nil {
		return t.DefineClass(env, name, ctor, data, props, result)
	}
	return napi.GenericFailure
}

func Wrap(env napi.Env, object napi.Value, native uintptr, finalize napi.Finalize, hint uintptr, result *napi.Ref) napi.Status {
	if t := tbl(); t != nil && t.Wrap != nil {
		return t.Wrap(env, object, native, finalize, hint, result)
	}
	return napi.GenericFailure
}

func Unwrap(env napi.Env, object napi.Value, result *uintptr) napi.Status {
	if t := tbl(); t != nil && t.Unwrap != nil {
		return t.Unwrap(env, object, result)
	}
	return napi.GenericFailure
}

func RemoveWrap(env napi.Env, object napi.Value, result *uintptr) napi.Status {
	if t := tbl(); t != nil && t.RemoveWrap != nil {
		return t.RemoveWrap(env, object, result)
	}
	return napi.GenericFailure
}

func AddFinalizer(env napi.Env, object napi.Value, data uintptr, finalize napi.Finalize, hint uintptr, result *napi.Ref) napi.Status {
	if t := tbl(); t != nil && t.AddFinalizer != nil {
		return t.AddFinalizer(env, object, data, finalize, hint, result)
	}
	return napi.GenericFailure
}

func Throw(env napi.Env, err napi.Value) napi.Status {
	if t := tbl(); t != nil && t.Throw != nil {
		return t.Throw(env, err)
	}
	return napi.GenericFailure
}

func ThrowError(env napi.Env, code, msg string) napi.Status {
	if t := tbl(); t != nil && t.ThrowError != nil {
		return t.ThrowError(env, code, msg)
	}
	return napi.GenericFailure
}

func ThrowTypeError(env napi.Env, code, msg string) napi.Status {
	if t := tbl(); t != nil && t.ThrowTypeError != nil {
		return t.ThrowTypeError(env, code, msg)
	}
	return napi.GenericFailure
}

func ThrowRangeError(env napi.Env, code, msg string) napi.Status {
	if t := tbl(); t != nil && t.ThrowRangeError != nil {
		return t.ThrowRangeError(env, code, msg)
	}
	return napi.GenericFailure
}

func CreateError(env napi.Env, code, msg napi.Value, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateError != nil {
		return t.CreateError(env, code, msg, result)
	}
	return napi.GenericFailure
}

func CreateTypeError(env napi.Env, code, msg napi.Value, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateTypeError != nil {
		return t.CreateTypeError(env, code, msg, result)
	}
	return napi.GenericFailure
}

func CreateRangeError(env napi.Env, code, msg napi.Value, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateRangeError != nil {
		return t.CreateRangeError(env, code, msg, result)
	}
	return napi.GenericFailure
}

// IsExceptionPending answers pending-exception-false when the slot is
// absent.
func IsExceptionPending(env napi.Env, result *bool) napi.Status {
	t := tbl()
	if t == nil {
		return napi.GenericFailure
	}
	if t.IsExceptionPending == nil {
		if result != nil {
			*result = false
		}
		return napi.OK
	}
	return t.IsExceptionPending(env, result)
}

func GetAndClearLastException(env napi.Env, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.GetAndClearLastException != nil {
		return t.GetAndClearLastException(env, result)
	}
	return napi.GenericFailure
}

func GetLastErrorInfo(env napi.Env, result *napi.ExtendedErrorInfo) napi.Status {
	if t := tbl(); t != nil && t.GetLastErrorInfo != nil {
		return t.GetLastErrorInfo(env, result)
	}
	return napi.GenericFailure
}

func FatalError(location, message string) {
	if t := tbl(); t != nil && t.FatalError != nil {
		t.FatalError(location, message)
	}
}

func FatalException(env napi.Env, err napi.Value) napi.Status {
	if t := tbl(); t != nil && t.FatalException != nil {
		return t.FatalException(env, err)
	}
	return napi.GenericFailure
}

func OpenHandleScope(env napi.Env, result *napi.HandleScope) napi.Status {
	if t := tbl(); t != nil && t.OpenHandleScope != nil {
		return t.OpenHandleScope(env, result)
	}
	return napi.GenericFailure
}

func CloseHandleScope(env napi.Env, scope napi.HandleScope) napi.Status {
	if t := tbl(); t != nil && t.CloseHandleScope != nil {
		return t.CloseHandleScope(env, scope)
	}
	return napi.GenericFailure
}

func OpenEscapableHandleScope(env napi.Env, result *napi.EscapableHandleScope) napi.Status {
	if t := tbl(); t != nil && t.OpenEscapableHandleScope != nil {
		return t.OpenEscapableHandleScope(env, result)
	}
	return napi.GenericFailure
}

func CloseEscapableHandleScope(env napi.Env, scope napi.EscapableHandleScope) napi.Status {
	if t := tbl(); t != nil && t.CloseEscapableHandleScope != nil {
		return t.CloseEscapableHandleScope(env, scope)
	}
	return napi.GenericFailure
}

func EscapeHandle(env napi.Env, scope napi.EscapableHandleScope, escapee napi.Value, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.EscapeHandle != nil {
		return t.EscapeHandle(env, scope, escapee, result)
	}
	return napi.GenericFailure
}

func CreateReference(env napi.Env, v napi.Value, initialRefcount uint32, result *napi.Ref) napi.Status {
	if t := tbl(); t != nil && t.CreateReference != nil {
		return t.CreateReference(env, v, initialRefcount, result)
	}
	return napi.GenericFailure
}

func DeleteReference(env napi.Env, ref napi.Ref) napi.Status {
	if t := tbl(); t != nil && t.DeleteReference != nil {
		return t.DeleteReference(env, ref)
	}
	return napi.GenericFailure
}

func ReferenceRef(env napi.Env, ref napi.Ref, result *uint32) napi.Status {
	if t := tbl(); t != nil && t.ReferenceRef != nil {
		return t.ReferenceRef(env, ref, result)
	}
	return napi.GenericFailure
}

func ReferenceUnref(env napi.Env, ref napi.Ref, result *uint32) napi.Status {
	if t := tbl(); t != nil && t.ReferenceUnref != nil {
		return t.ReferenceUnref(env, ref, result)
	}
	return napi.GenericFailure
}

func GetReferenceValue(env napi.Env, ref napi.Ref, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.GetReferenceValue != nil {
		return t.GetReferenceValue(env, ref, result)
	}
	return napi.GenericFailure
}

func CreateArrayBuffer(env napi.Env, length int, data *[]byte, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateArrayBuffer != nil {
		return t.CreateArrayBuffer(env, length, data, result)
	}
	return napi.GenericFailure
}

func CreateExternalArrayBuffer(env napi.Env, data []byte, finalize napi.Finalize, finalizeData, hint uintptr, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateExternalArrayBuffer != nil {
		return t.CreateExternalArrayBuffer(env, data, finalize, finalizeData, hint, result)
	}
	return napi.GenericFailure
}

func GetArrayBufferInfo(env napi.Env, v napi.Value, data *[]byte, length *int) napi.Status {
	if t := tbl(); t != nil && t.GetArrayBufferInfo != nil {
		return t.GetArrayBufferInfo(env, v, data, length)
	}
	return napi.GenericFailure
}

func DetachArrayBuffer(env napi.Env, v napi.Value) napi.Status {
	if t := tbl(); t != nil && t.DetachArrayBuffer != nil {
		return t.DetachArrayBuffer(env, v)
	}
	return napi.GenericFailure
}

func CreateTypedArray(env napi.Env, kind napi.TypedArrayType, length int, arraybuffer napi.Value, byteOffset int, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateTypedArray != nil {
		return t.CreateTypedArray(env, kind, length, arraybuffer, byteOffset, result)
	}
	return napi.GenericFailure
}

func GetTypedArrayInfo(env napi.Env, v napi.Value, kind *napi.TypedArrayType, length *int, data *[]byte, arraybuffer *napi.Value, byteOffset *int) napi.Status {
	if t := tbl(); t != nil && t.GetTypedArrayInfo != nil {
		return t.GetTypedArrayInfo(env, v, kind, length, data, arraybuffer, byteOffset)
	}
	return napi.GenericFailure
}

func CreateDataView(env napi.Env, length int, arraybuffer napi.Value, byteOffset int, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateDataView != nil {
		return t.CreateDataView(env, length, arraybuffer, byteOffset, result)
	}
	return napi.GenericFailure
}

func GetDataViewInfo(env napi.Env, v napi.Value, length *int, data *[]byte, arraybuffer *napi.Value, byteOffset *int) napi.Status {
	if t := tbl(); t != nil && t.GetDataViewInfo != nil {
		return t.GetDataViewInfo(env, v, length, data, arraybuffer, byteOffset)
	}
	return napi.GenericFailure
}

func CreateBuffer(env napi.Env, length int, data *[]byte, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateBuffer != nil {
		return t.CreateBuffer(env, length, data, result)
	}
	return napi.GenericFailure
}

func CreateBufferCopy(env napi.Env, src []byte, data *[]byte, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreateBufferCopy != nil {
		return t.CreateBufferCopy(env, src, data, result)
	}
	return napi.GenericFailure
}

func GetBufferInfo(env napi.Env, v napi.Value, data *[]byte, length *int) napi.Status {
	if t := tbl(); t != nil && t.GetBufferInfo != nil {
		return t.GetBufferInfo(env, v, data, length)
	}
	return napi.GenericFailure
}

func CreatePromise(env napi.Env, deferred *napi.Deferred, promise *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.CreatePromise != nil {
		return t.CreatePromise(env, deferred, promise)
	}
	return napi.GenericFailure
}

func ResolveDeferred(env napi.Env, deferred napi.Deferred, resolution napi.Value) napi.Status {
	if t := tbl(); t != nil && t.ResolveDeferred != nil {
		return t.ResolveDeferred(env, deferred, resolution)
	}
	return napi.GenericFailure
}

func RejectDeferred(env napi.Env, deferred napi.Deferred, rejection napi.Value) napi.Status {
	if t := tbl(); t != nil && t.RejectDeferred != nil {
		return t.RejectDeferred(env, deferred, rejection)
	}
	return napi.GenericFailure
}

func SetInstanceData(env napi.Env, data uintptr, finalize napi.Finalize, hint uintptr) napi.Status {
	if t := tbl(); t != nil && t.SetInstanceData != nil {
		return t.SetInstanceData(env, data, finalize, hint)
	}
	return napi.GenericFailure
}

func GetInstanceData(env napi.Env, result *uintptr) napi.Status {
	if t := tbl(); t != nil && t.GetInstanceData != nil {
		return t.GetInstanceData(env, result)
	}
	return napi.GenericFailure
}

// AddEnvCleanupHook is ok-stubbed when absent: registration is then a
// no-op the add-on cannot distinguish.
func AddEnvCleanupHook(env napi.Env, fn napi.CleanupHook, arg uintptr) napi.Status {
	t := tbl()
	if t == nil {
		return napi.GenericFailure
	}
	if t.AddEnvCleanupHook == nil {
		return napi.OK
	}
	return t.AddEnvCleanupHook(env, fn, arg)
}

func RemoveEnvCleanupHook(env napi.Env, arg uintptr) napi.Status {
	t := tbl()
	if t == nil {
		return napi.GenericFailure
	}
	if t.RemoveEnvCleanupHook == nil {
		return napi.OK
	}
	return t.RemoveEnvCleanupHook(env, arg)
}

func CreateThreadsafeFunction(env napi.Env, fn napi.Value, maxQueueSize, initialThreadCount int,
	context uintptr, threadFinalize napi.Finalize, threadFinalizeData, threadFinalizeHint uintptr,
	callJS napi.CallJS, result *napi.ThreadsafeFunction) napi.Status {
	if t := tbl(); t != nil && t.CreateThreadsafeFunction != nil {
		return t.CreateThreadsafeFunction(env, fn, maxQueueSize, initialThreadCount, context,
			threadFinalize, threadFinalizeData, threadFinalizeHint, callJS, result)
	}
	return napi.GenericFailure
}

func CallThreadsafeFunction(fn napi.ThreadsafeFunction, data uintptr, mode napi.CallMode) napi.Status {
	if t := tbl(); t != nil && t.CallThreadsafeFunction != nil {
		return t.CallThreadsafeFunction(fn, data, mode)
	}
	return napi.GenericFailure
}

func AcquireThreadsafeFunction(fn napi.ThreadsafeFunction) napi.Status {
	if t := tbl(); t != nil && t.AcquireThreadsafeFunction != nil {
		return t.AcquireThreadsafeFunction(fn)
	}
	return napi.GenericFailure
}

func ReleaseThreadsafeFunction(fn napi.ThreadsafeFunction, mode napi.ReleaseMode) napi.Status {
	if t := tbl(); t != nil && t.ReleaseThreadsafeFunction != nil {
		return t.ReleaseThreadsafeFunction(fn, mode)
	}
	return napi.GenericFailure
}

func RefThreadsafeFunction(env napi.Env, fn napi.ThreadsafeFunction) napi.Status {
	if t := tbl(); t != nil && t.RefThreadsafeFunction != nil {
		return t.RefThreadsafeFunction(env, fn)
	}
	return napi.GenericFailure
}

func UnrefThreadsafeFunction(env napi.Env, fn napi.ThreadsafeFunction) napi.Status {
	if t := tbl(); t != nil && t.UnrefThreadsafeFunction != nil {
		return t.UnrefThreadsafeFunction(env, fn)
	}
	return napi.GenericFailure
}

func GetThreadsafeFunctionContext(fn napi.ThreadsafeFunction, result *uintptr) napi.Status {
	if t := tbl(); t != nil && t.GetThreadsafeFunctionContext != nil {
		return t.GetThreadsafeFunctionContext(fn, result)
	}
	return napi.GenericFailure
}

func CreateAsyncWork(env napi.Env, resource, resourceName napi.Value, execute napi.AsyncExecute,
	complete napi.AsyncComplete, data uintptr, result *napi.AsyncWork) napi.Status {
	if t := tbl(); t != nil && t.CreateAsyncWork != nil {
		return t.CreateAsyncWork(env, resource, resourceName, execute, complete, data, result)
	}
	return napi.GenericFailure
}

func QueueAsyncWork(env napi.Env, work napi.AsyncWork) napi.Status {
	if t := tbl(); t != nil && t.QueueAsyncWork != nil {
		return t.QueueAsyncWork(env, work)
	}
	return napi.GenericFailure
}

func CancelAsyncWork(env napi.Env, work napi.AsyncWork) napi.Status {
	if t := tbl(); t != nil && t.CancelAsyncWork != nil {
		return t.CancelAsyncWork(env, work)
	}
	return napi.GenericFailure
}

func DeleteAsyncWork(env napi.Env, work napi.AsyncWork) napi.Status {
	if t := tbl(); t != nil && t.DeleteAsyncWork != nil {
		return t.DeleteAsyncWork(env, work)
	}
	return napi.GenericFailure
}

// AsyncInit writes a non-null sentinel even when the slot is absent.
func AsyncInit(env napi.Env, resource, name napi.Value, result *napi.AsyncContext) napi.Status {
	t := tbl()
	if t == nil {
		return napi.GenericFailure
	}
	if t.AsyncInit == nil {
		if result != nil {
			*result = 1
		}
		return napi.OK
	}
	return t.AsyncInit(env, resource, name, result)
}

func AsyncDestroy(env napi.Env, ctx napi.AsyncContext) napi.Status {
	t := tbl()
	if t == nil {
		return napi.GenericFailure
	}
	if t.AsyncDestroy == nil {
		return napi.OK
	}
	return t.AsyncDestroy(env, ctx)
}

// GetUVEventLoop writes a non-null sentinel even when the slot is absent.
func GetUVEventLoop(env napi.Env, result *uintptr) napi.Status {
	t := tbl()
	if t == nil {
		return napi.GenericFailure
	}
	if t.GetUVEventLoop == nil {
		if result != nil {
			*result = 1
		}
		return napi.OK
	}
	return t.GetUVEventLoop(env, result)
}

func MakeCallback(env napi.Env, ctx napi.AsyncContext, recv, fn napi.Value, args []napi.Value, result *napi.Value) napi.Status {
	if t := tbl(); t != nil && t.MakeCallback != nil {
		return t.MakeCallback(env, ctx, recv, fn, args, result)
	}
	return napi.GenericFailure
}
