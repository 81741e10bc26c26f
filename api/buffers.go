package api

import (
	"github.com/wippyai/napi-runtime/env"
	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/value"
)

// CreateArrayBuffer implements napi_create_arraybuffer. data, when
// non-nil, receives the backing slice.
func (a *API) CreateArrayBuffer(envID napi.Env, length int, data *[]byte, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil || length < 0 {
		return e.SetLastError(napi.InvalidArg)
	}
	buf := value.NewArrayBuffer(length)
	h, status := addValue(e, buf)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	if data != nil {
		*data = buf.Data
	}
	*result = h
	return napi.OK
}

// CreateExternalArrayBuffer implements napi_create_external_arraybuffer.
// The bytes are adopted in place; the finalizer observes release.
func (a *API) CreateExternalArrayBuffer(envID napi.Env, data []byte,
	finalize napi.Finalize, finalizeData, hint uintptr, result *napi.Value) napi.Status {

	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	buf := &value.ArrayBuffer{Data: data, External: true}
	if finalize != nil {
		e.NewReferenceWithFinalizer(buf, 0, env.OwnedByRuntime, finalize, finalizeData, hint)
	}
	h, status := addValue(e, buf)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// GetArrayBufferInfo implements napi_get_arraybuffer_info.
func (a *API) GetArrayBufferInfo(envID napi.Env, h napi.Value, data *[]byte, length *int) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	v, status := valueOf(e, h)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	buf, ok := v.(*value.ArrayBuffer)
	if !ok {
		return e.SetLastError(napi.ArrayBufferExpected)
	}
	if data != nil {
		*data = buf.Data
	}
	if length != nil {
		*length = buf.ByteLength()
	}
	return napi.OK
}

// DetachArrayBuffer implements napi_detach_arraybuffer.
func (a *API) DetachArrayBuffer(envID napi.Env, h napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	v, status := valueOf(e, h)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	buf, ok := v.(*value.ArrayBuffer)
	if !ok || !buf.Detach() {
		return e.SetLastError(napi.DetachableArrayBufferExpected)
	}
	return napi.OK
}

// IsDetachedArrayBuffer implements napi_is_detached_arraybuffer.
func (a *API) IsDetachedArrayBuffer(envID napi.Env, h napi.Value, result *bool) napi.Status {
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
	buf, ok := v.(*value.ArrayBuffer)
	*result = ok && buf.Detached()
	return napi.OK
}

// CreateTypedArray implements napi_create_typedarray.
func (a *API) CreateTypedArray(envID napi.Env, kind napi.TypedArrayType, length int,
	arraybuffer napi.Value, byteOffset int, result *napi.Value) napi.Status {

	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil || length < 0 || byteOffset < 0 {
		return e.SetLastError(napi.InvalidArg)
	}
	v, status := valueOf(e, arraybuffer)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	buf, ok := v.(*value.ArrayBuffer)
	if !ok {
		return e.SetLastError(napi.ArrayBufferExpected)
	}
	elem := kind.ElementSize()
	if elem == 0 {
		return e.SetLastError(napi.InvalidArg)
	}
	if byteOffset+length*elem > buf.ByteLength() {
		return e.SetLastError(napi.InvalidArg)
	}
	ta := &value.TypedArray{
		ElemKind:   int32(kind),
		Buffer:     buf,
		ByteOffset: byteOffset,
		Length:     length,
	}
	h, status := addValue(e, ta)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// GetTypedArrayInfo implements napi_get_typedarray_info.
func (a *API) GetTypedArrayInfo(envID napi.Env, h napi.Value, kind *napi.TypedArrayType,
	length *int, data *[]byte, arraybuffer *napi.Value, byteOffset *int) napi.Status {

	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	v, status := valueOf(e, h)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	ta, ok := v.(*value.TypedArray)
	if !ok {
		return e.SetLastError(napi.InvalidArg)
	}
	if kind != nil {
		*kind = napi.TypedArrayType(ta.ElemKind)
	}
	if length != nil {
		*length = ta.Length
	}
	if data != nil {
		*data = ta.Bytes()
	}
	if arraybuffer != nil {
		ah, status := addValue(e, ta.Buffer)
		if status != napi.OK {
			return e.SetLastError(status)
		}
		*arraybuffer = ah
	}
	if byteOffset != nil {
		*byteOffset = ta.ByteOffset
	}
	return napi.OK
}

// CreateDataView implements napi_create_dataview.
func (a *API) CreateDataView(envID napi.Env, length int, arraybuffer napi.Value,
	byteOffset int, result *napi.Value) napi.Status {

	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil || length < 0 || byteOffset < 0 {
		return e.SetLastError(napi.InvalidArg)
	}
	v, status := valueOf(e, arraybuffer)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	buf, ok := v.(*value.ArrayBuffer)
	if !ok {
		return e.SetLastError(napi.ArrayBufferExpected)
	}
	if byteOffset+length > buf.ByteLength() {
		return e.SetLastError(napi.InvalidArg)
	}
	dv := &value.DataView{Buffer: buf, ByteOffset: byteOffset, ByteLength: length}
	h, status := addValue(e, dv)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	*result = h
	return napi.OK
}

// GetDataViewInfo implements napi_get_dataview_info.
func (a *API) GetDataViewInfo(envID napi.Env, h napi.Value, length *int, data *[]byte,
	arraybuffer *napi.Value, byteOffset *int) napi.Status {

	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	v, status := valueOf(e, h)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	dv, ok := v.(*value.DataView)
	if !ok {
		return e.SetLastError(napi.InvalidArg)
	}
	if length != nil {
		*length = dv.ByteLength
	}
	if data != nil {
		*data = dv.Bytes()
	}
	if arraybuffer != nil {
		ah, status := addValue(e, dv.Buffer)
		if status != napi.OK {
			return e.SetLastError(status)
		}
		*arraybuffer = ah
	}
	if byteOffset != nil {
		*byteOffset = dv.ByteOffset
	}
	return napi.OK
}

// CreateBuffer implements napi_create_buffer: a Uint8Array view flagged
// as a Node Buffer.
func (a *API) CreateBuffer(envID napi.Env, length int, data *[]byte, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil || length < 0 {
		return e.SetLastError(napi.InvalidArg)
	}
	buf := value.NewArrayBuffer(length)
	ta := &value.TypedArray{ElemKind: int32(napi.Uint8Array), Buffer: buf, Length: length, IsBuffer: true}
	h, status := addValue(e, ta)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	if data != nil {
		*data = buf.Data
	}
	*result = h
	return napi.OK
}

// CreateBufferCopy implements napi_create_buffer_copy.
func (a *API) CreateBufferCopy(envID napi.Env, src []byte, data *[]byte, result *napi.Value) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	if result == nil {
		return e.SetLastError(napi.InvalidArg)
	}
	buf := value.NewArrayBuffer(len(src))
	copy(buf.Data, src)
	ta := &value.TypedArray{ElemKind: int32(napi.Uint8Array), Buffer: buf, Length: len(src), IsBuffer: true}
	h, status := addValue(e, ta)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	if data != nil {
		*data = buf.Data
	}
	*result = h
	return napi.OK
}

// GetBufferInfo implements napi_get_buffer_info.
func (a *API) GetBufferInfo(envID napi.Env, h napi.Value, data *[]byte, length *int) napi.Status {
	e, status := a.checkEnv(envID)
	if status != napi.OK {
		return status
	}
	v, status := valueOf(e, h)
	if status != napi.OK {
		return e.SetLastError(status)
	}
	ta, ok := v.(*value.TypedArray)
	if !ok {
		return e.SetLastError(napi.InvalidArg)
	}
	b := ta.Bytes()
	if data != nil {
		*data = b
	}
	if length != nil {
		*length = len(b)
	}
	return napi.OK
}

// Type predicates over the buffer family.

// IsArray implements napi_is_array.
func (a *API) IsArray(envID napi.Env, h napi.Value, result *bool) napi.Status {
	return a.isKind(envID, h, result, func(v any) bool {
		_, ok := v.(*value.Array)
		return ok
	})
}

// IsArrayBuffer implements napi_is_arraybuffer.
func (a *API) IsArrayBuffer(envID napi.Env, h napi.Value, result *bool) napi.Status {
	return a.isKind(envID, h, result, func(v any) bool {
		_, ok := v.(*value.ArrayBuffer)
		return ok
	})
}

// IsTypedArray implements napi_is_typedarray.
func (a *API) IsTypedArray(envID napi.Env, h napi.Value, result *bool) napi.Status {
	return a.isKind(envID, h, result, func(v any) bool {
		_, ok := v.(*value.TypedArray)
		return ok
	})
}

// IsDataView implements napi_is_dataview.
func (a *API) IsDataView(envID napi.Env, h napi.Value, result *bool) napi.Status {
	return a.isKind(envID, h, result, func(v any) bool {
		_, ok := v.(*value.DataView)
		return ok
	})
}

// IsBuffer implements napi_is_buffer.
func (a *API) IsBuffer(envID napi.Env, h napi.Value, result *bool) napi.Status {
	return a.isKind(envID, h, result, func(v any) bool {
		ta, ok := v.(*value.TypedArray)
		return ok && ta.IsBuffer
	})
}

// IsDate implements napi_is_date.
func (a *API) IsDate(envID napi.Env, h napi.Value, result *bool) napi.Status {
	return a.isKind(envID, h, result, func(v any) bool {
		_, ok := v.(*value.Date)
		return ok
	})
}

func (a *API) isKind(envID napi.Env, h napi.Value, result *bool, pred func(any) bool) napi.Status {
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
	*result = pred(v)
	return napi.OK
}
