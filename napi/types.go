package napi

// Opaque handle types passed across the ABI. Each is an integer identifier
// into host-managed storage; the pointer-sized width matches the C typedefs
// (struct pointers) so they cross the boundary unchanged.
type (
	// Env identifies one environment in the process context.
	Env uintptr
	// Value identifies one host value in an environment's handle store.
	Value uintptr
	// Ref identifies a strong/weak reference object.
	Ref uintptr
	// HandleScope identifies an open handle scope.
	HandleScope uintptr
	// EscapableHandleScope identifies an open escapable handle scope.
	EscapableHandleScope uintptr
	// CallbackInfo identifies the transient record describing one callback
	// invocation. Valid only for the duration of the callback.
	CallbackInfo uintptr
	// Deferred identifies the settlement capability of a promise.
	Deferred uintptr
	// AsyncWork identifies a queued background job.
	AsyncWork uintptr
	// ThreadsafeFunction identifies a multi-producer callback channel.
	ThreadsafeFunction uintptr
	// AsyncContext is an ok-stubbed sentinel handle.
	AsyncContext uintptr
	// CallbackScope is an ok-stubbed sentinel handle.
	CallbackScope uintptr
)

// Reserved handle IDs. IDs below MinHandleID name singletons and are never
// recycled; they are stable across all scopes and environments.
const (
	HandleHole        Value = 0
	HandleEmpty       Value = 1
	HandleUndefined   Value = 2
	HandleNull        Value = 3
	HandleFalse       Value = 4
	HandleTrue        Value = 5
	HandleGlobal      Value = 6
	HandleEmptyString Value = 7

	// MinHandleID is the first ID handed out for ordinary values.
	MinHandleID = 8
)

// ValueType mirrors napi_valuetype.
type ValueType int32

const (
	TypeUndefined ValueType = iota
	TypeNull
	TypeBoolean
	TypeNumber
	TypeString
	TypeSymbol
	TypeObject
	TypeFunction
	TypeExternal
	TypeBigInt
)

func (t ValueType) String() string {
	switch t {
	case TypeUndefined:
		return "undefined"
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeSymbol:
		return "symbol"
	case TypeObject:
		return "object"
	case TypeFunction:
		return "function"
	case TypeExternal:
		return "external"
	case TypeBigInt:
		return "bigint"
	}
	return "unknown"
}

// TypedArrayType mirrors napi_typedarray_type.
type TypedArrayType int32

const (
	Int8Array TypedArrayType = iota
	Uint8Array
	Uint8ClampedArray
	Int16Array
	Uint16Array
	Int32Array
	Uint32Array
	Float32Array
	Float64Array
	BigInt64Array
	BigUint64Array
)

// ElementSize returns the byte width of one element.
func (t TypedArrayType) ElementSize() int {
	switch t {
	case Int8Array, Uint8Array, Uint8ClampedArray:
		return 1
	case Int16Array, Uint16Array:
		return 2
	case Int32Array, Uint32Array, Float32Array:
		return 4
	case Float64Array, BigInt64Array, BigUint64Array:
		return 8
	}
	return 0
}

// PropertyAttributes mirrors napi_property_attributes.
type PropertyAttributes uint32

const (
	Default      PropertyAttributes = 0
	Writable     PropertyAttributes = 1 << 0
	Enumerable   PropertyAttributes = 1 << 1
	Configurable PropertyAttributes = 1 << 2
	// Static attaches a class property to the constructor instead of the
	// prototype. Ignored by define_properties.
	Static PropertyAttributes = 1 << 10

	DefaultMethod     = Writable | Configurable
	DefaultJSProperty = Writable | Enumerable | Configurable
)

// KeyCollectionMode mirrors napi_key_collection_mode.
type KeyCollectionMode int32

const (
	KeyIncludePrototypes KeyCollectionMode = iota
	KeyOwnOnly
)

// KeyFilter mirrors napi_key_filter.
type KeyFilter int32

const (
	KeyAllProperties KeyFilter = 0
	KeyWritable      KeyFilter = 1
	KeyEnumerable    KeyFilter = 1 << 1
	KeyConfigurable  KeyFilter = 1 << 2
	KeySkipStrings   KeyFilter = 1 << 3
	KeySkipSymbols   KeyFilter = 1 << 4
)

// KeyConversion mirrors napi_key_conversion.
type KeyConversion int32

const (
	KeyKeepNumbers KeyConversion = iota
	KeyNumbersToStrings
)

// ReleaseMode mirrors napi_threadsafe_function_release_mode.
type ReleaseMode int32

const (
	Release ReleaseMode = iota
	Abort
)

// CallMode mirrors napi_threadsafe_function_call_mode.
type CallMode int32

const (
	NonBlocking CallMode = iota
	Blocking
)

// Native callback signatures. At the C boundary these are function pointers;
// the loader and wasmshim bridge them into these Go forms, so everything
// above the abi table works with ordinary funcs.
type (
	// Callback is napi_callback: invoked with the environment and a
	// callback-info handle, returns a value handle (HandleHole for none).
	Callback func(env Env, info CallbackInfo) Value
	// Finalize is napi_finalize.
	Finalize func(env Env, data, hint uintptr)
	// AsyncExecute is napi_async_execute_callback. Runs off the host
	// thread; must not touch handles.
	AsyncExecute func(env Env, data uintptr)
	// AsyncComplete is napi_async_complete_callback. Runs on the host
	// thread.
	AsyncComplete func(env Env, status Status, data uintptr)
	// CallJS is napi_threadsafe_function_call_js, invoked on the host
	// thread for each drained queue item.
	CallJS func(env Env, fn Value, context, data uintptr)
	// CleanupHook is the argument to add_env_cleanup_hook.
	CleanupHook func(arg uintptr)
)

// PropertyDescriptor mirrors napi_property_descriptor. Exactly one of
// UTF8Name and Name identifies the property. A descriptor is a plain data
// value: either Value, or Method, or a Getter/Setter pair is set.
type PropertyDescriptor struct {
	UTF8Name   string
	Name       Value
	Method     Callback
	Getter     Callback
	Setter     Callback
	Value      Value
	Attributes PropertyAttributes
	Data       uintptr
}

// ExtendedErrorInfo mirrors napi_extended_error_info. The message storage is
// owned by the environment and stays valid until the next entry point.
type ExtendedErrorInfo struct {
	ErrorMessage    string
	EngineReserved  uintptr
	EngineErrorCode uint32
	ErrorCode       Status
}

// TypeTag mirrors napi_type_tag: a 128-bit value identifying a native
// object flavor.
type TypeTag struct {
	Lower uint64
	Upper uint64
}

// NodeVersion mirrors napi_node_version.
type NodeVersion struct {
	Major   uint32
	Minor   uint32
	Patch   uint32
	Release string
}

// Version constants.
const (
	// Version is the Node-API version this runtime implements.
	Version = 8
	// VersionExperimental is INT_MAX per the Node-API convention.
	VersionExperimental = 1<<31 - 1
	// NodeModuleVersion reported through get_node_version.
	NodeModuleVersion = 127
)
