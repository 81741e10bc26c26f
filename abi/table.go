package abi

import (
	"sync/atomic"

	"github.com/wippyai/napi-runtime/napi"
)

// Table is the plain record of function pointers the shim forwards
// through. Field order groups the NAPI v8 surface by concern; the layout
// is not part of any external contract.
type Table struct {
	// Introspection.
	GetVersion     func(napi.Env, *uint32) napi.Status
	GetNodeVersion func(napi.Env, *napi.NodeVersion) napi.Status

	// Singletons and primitive creation.
	GetUndefined       func(napi.Env, *napi.Value) napi.Status
	GetNull            func(napi.Env, *napi.Value) napi.Status
	GetGlobal          func(napi.Env, *napi.Value) napi.Status
	GetBoolean         func(napi.Env, bool, *napi.Value) napi.Status
	CreateInt32        func(napi.Env, int32, *napi.Value) napi.Status
	CreateUint32       func(napi.Env, uint32, *napi.Value) napi.Status
	CreateInt64        func(napi.Env, int64, *napi.Value) napi.Status
	CreateDouble       func(napi.Env, float64, *napi.Value) napi.Status
	CreateBigintInt64  func(napi.Env, int64, *napi.Value) napi.Status
	CreateBigintUint64 func(napi.Env, uint64, *napi.Value) napi.Status
	CreateStringUTF8   func(napi.Env, string, *napi.Value) napi.Status
	CreateStringLatin1 func(napi.Env, []byte, *napi.Value) napi.Status
	CreateStringUTF16  func(napi.Env, []uint16, *napi.Value) napi.Status
	CreateSymbol       func(napi.Env, napi.Value, *napi.Value) napi.Status
	CreateObject       func(napi.Env, *napi.Value) napi.Status
	CreateArray        func(napi.Env, *napi.Value) napi.Status
	CreateArrayLength  func(napi.Env, int, *napi.Value) napi.Status
	CreateExternal     func(napi.Env, uintptr, napi.Finalize, uintptr, *napi.Value) napi.Status
	CreateDate         func(napi.Env, float64, *napi.Value) napi.Status

	// Extraction and classification.
	TypeOf               func(napi.Env, napi.Value, *napi.ValueType) napi.Status
	GetValueBool         func(napi.Env, napi.Value, *bool) napi.Status
	GetValueInt32        func(napi.Env, napi.Value, *int32) napi.Status
	GetValueUint32       func(napi.Env, napi.Value, *uint32) napi.Status
	GetValueInt64        func(napi.Env, napi.Value, *int64) napi.Status
	GetValueDouble       func(napi.Env, napi.Value, *float64) napi.Status
	GetValueBigintInt64  func(napi.Env, napi.Value, *int64, *bool) napi.Status
	GetValueStringUTF8   func(napi.Env, napi.Value, []byte, *int) napi.Status
	GetValueStringUTF16  func(napi.Env, napi.Value, []uint16, *int) napi.Status
	GetValueExternal     func(napi.Env, napi.Value, *uintptr) napi.Status
	GetDateValue         func(napi.Env, napi.Value, *float64) napi.Status
	StrictEquals         func(napi.Env, napi.Value, napi.Value, *bool) napi.Status
	Instanceof           func(napi.Env, napi.Value, napi.Value, *bool) napi.Status
	IsArray              func(napi.Env, napi.Value, *bool) napi.Status
	IsArrayBuffer        func(napi.Env, napi.Value, *bool) napi.Status
	IsBuffer             func(napi.Env, napi.Value, *bool) napi.Status
	IsTypedArray         func(napi.Env, napi.Value, *bool) napi.Status
	IsDataView           func(napi.Env, napi.Value, *bool) napi.Status
	IsDate               func(napi.Env, napi.Value, *bool) napi.Status
	IsError              func(napi.Env, napi.Value, *bool) napi.Status
	IsPromise            func(napi.Env, napi.Value, *bool) napi.Status
	IsDetachedArrayBuf   func(napi.Env, napi.Value, *bool) napi.Status
	CoerceToBool         func(napi.Env, napi.Value, *napi.Value) napi.Status
	CoerceToNumber       func(napi.Env, napi.Value, *napi.Value) napi.Status
	CoerceToString       func(napi.Env, napi.Value, *napi.Value) napi.Status
	CoerceToObject       func(napi.Env, napi.Value, *napi.Value) napi.Status

	// Properties.
	GetProperty         func(napi.Env, napi.Value, napi.Value, *napi.Value) napi.Status
	SetProperty         func(napi.Env, napi.Value, napi.Value, napi.Value) napi.Status
	HasProperty         func(napi.Env, napi.Value, napi.Value, *bool) napi.Status
	HasOwnProperty      func(napi.Env, napi.Value, napi.Value, *bool) napi.Status
	DeleteProperty      func(napi.Env, napi.Value, napi.Value, *bool) napi.Status
	GetNamedProperty    func(napi.Env, napi.Value, string, *napi.Value) napi.Status
	SetNamedProperty    func(napi.Env, napi.Value, string, napi.Value) napi.Status
	HasNamedProperty    func(napi.Env, napi.Value, string, *bool) napi.Status
	GetElement          func(napi.Env, napi.Value, uint32, *napi.Value) napi.Status
	SetElement          func(napi.Env, napi.Value, uint32, napi.Value) napi.Status
	HasElement          func(napi.Env, napi.Value, uint32, *bool) napi.Status
	DeleteElement       func(napi.Env, napi.Value, uint32, *bool) napi.Status
	GetArrayLength      func(napi.Env, napi.Value, *uint32) napi.Status
	GetPropertyNames    func(napi.Env, napi.Value, *napi.Value) napi.Status
	GetAllPropertyNames func(napi.Env, napi.Value, napi.KeyCollectionMode, napi.KeyFilter, napi.KeyConversion, *napi.Value) napi.Status
	DefineProperties    func(napi.Env, napi.Value, []napi.PropertyDescriptor) napi.Status
	ObjectFreeze        func(napi.Env, napi.Value) napi.Status
	ObjectSeal          func(napi.Env, napi.Value) napi.Status
	GetPrototype        func(napi.Env, napi.Value, *napi.Value) napi.Status
	TypeTagObject       func(napi.Env, napi.Value, *napi.TypeTag) napi.Status
	CheckObjectTypeTag  func(napi.Env, napi.Value, *napi.TypeTag, *bool) napi.Status

	// Functions, classes, wraps.
	CreateFunction func(napi.Env, string, napi.Callback, uintptr, *napi.Value) napi.Status
	CallFunction   func(napi.Env, napi.Value, napi.Value, []napi.Value, *napi.Value) napi.Status
	GetCbInfo      func(napi.Env, napi.CallbackInfo, *int, []napi.Value, *napi.Value, *uintptr) napi.Status
	GetNewTarget   func(napi.Env, napi.CallbackInfo, *napi.Value) napi.Status
	NewInstance    func(napi.Env, napi.Value, []napi.Value, *napi.Value) napi.Status
	DefineClass    func(napi.Env, string, napi.Callback, uintptr, []napi.PropertyDescriptor, *napi.Value) napi.Status
	Wrap           func(napi.Env, napi.Value, uintptr, napi.Finalize, uintptr, *napi.Ref) napi.Status
	Unwrap         func(napi.Env, napi.Value, *uintptr) napi.Status
	RemoveWrap     func(napi.Env, napi.Value, *uintptr) napi.Status
	AddFinalizer   func(napi.Env, napi.Value, uintptr, napi.Finalize, uintptr, *napi.Ref) napi.Status

	// Errors.
	Throw                    func(napi.Env, napi.Value) napi.Status
	ThrowError               func(napi.Env, string, string) napi.Status
	ThrowTypeError           func(napi.Env, string, string) napi.Status
	ThrowRangeError          func(napi.Env, string, string) napi.Status
	CreateError              func(napi.Env, napi.Value, napi.Value, *napi.Value) napi.Status
	CreateTypeError          func(napi.Env, napi.Value, napi.Value, *napi.Value) napi.Status
	CreateRangeError         func(napi.Env, napi.Value, napi.Value, *napi.Value) napi.Status
	IsExceptionPending       func(napi.Env, *bool) napi.Status
	GetAndClearLastException func(napi.Env, *napi.Value) napi.Status
	GetLastErrorInfo         func(napi.Env, *napi.ExtendedErrorInfo) napi.Status
	FatalError               func(string, string)
	FatalException           func(napi.Env, napi.Value) napi.Status

	// Scopes.
	OpenHandleScope           func(napi.Env, *napi.HandleScope) napi.Status
	CloseHandleScope          func(napi.Env, napi.HandleScope) napi.Status
	OpenEscapableHandleScope  func(napi.Env, *napi.EscapableHandleScope) napi.Status
	CloseEscapableHandleScope func(napi.Env, napi.EscapableHandleScope) napi.Status
	EscapeHandle              func(napi.Env, napi.EscapableHandleScope, napi.Value, *napi.Value) napi.Status

	// References.
	CreateReference   func(napi.Env, napi.Value, uint32, *napi.Ref) napi.Status
	DeleteReference   func(napi.Env, napi.Ref) napi.Status
	ReferenceRef      func(napi.Env, napi.Ref, *uint32) napi.Status
	ReferenceUnref    func(napi.Env, napi.Ref, *uint32) napi.Status
	GetReferenceValue func(napi.Env, napi.Ref, *napi.Value) napi.Status

	// Buffers.
	CreateArrayBuffer         func(napi.Env, int, *[]byte, *napi.Value) napi.Status
	CreateExternalArrayBuffer func(napi.Env, []byte, napi.Finalize, uintptr, uintptr, *napi.Value) napi.Status
	GetArrayBufferInfo        func(napi.Env, napi.Value, *[]byte, *int) napi.Status
	DetachArrayBuffer         func(napi.Env, napi.Value) napi.Status
	CreateTypedArray          func(napi.Env, napi.TypedArrayType, int, napi.Value, int, *napi.Value) napi.Status
	GetTypedArrayInfo         func(napi.Env, napi.Value, *napi.TypedArrayType, *int, *[]byte, *napi.Value, *int) napi.Status
	CreateDataView            func(napi.Env, int, napi.Value, int, *napi.Value) napi.Status
	GetDataViewInfo           func(napi.Env, napi.Value, *int, *[]byte, *napi.Value, *int) napi.Status
	CreateBuffer              func(napi.Env, int, *[]byte, *napi.Value) napi.Status
	CreateBufferCopy          func(napi.Env, []byte, *[]byte, *napi.Value) napi.Status
	GetBufferInfo             func(napi.Env, napi.Value, *[]byte, *int) napi.Status

	// Promises.
	CreatePromise   func(napi.Env, *napi.Deferred, *napi.Value) napi.Status
	ResolveDeferred func(napi.Env, napi.Deferred, napi.Value) napi.Status
	RejectDeferred  func(napi.Env, napi.Deferred, napi.Value) napi.Status

	// Lifetime.
	SetInstanceData      func(napi.Env, uintptr, napi.Finalize, uintptr) napi.Status
	GetInstanceData      func(napi.Env, *uintptr) napi.Status
	AddEnvCleanupHook    func(napi.Env, napi.CleanupHook, uintptr) napi.Status
	RemoveEnvCleanupHook func(napi.Env, uintptr) napi.Status

	// Concurrency.
	CreateThreadsafeFunction     func(napi.Env, napi.Value, int, int, uintptr, napi.Finalize, uintptr, uintptr, napi.CallJS, *napi.ThreadsafeFunction) napi.Status
	CallThreadsafeFunction       func(napi.ThreadsafeFunction, uintptr, napi.CallMode) napi.Status
	AcquireThreadsafeFunction    func(napi.ThreadsafeFunction) napi.Status
	ReleaseThreadsafeFunction    func(napi.ThreadsafeFunction, napi.ReleaseMode) napi.Status
	RefThreadsafeFunction        func(napi.Env, napi.ThreadsafeFunction) napi.Status
	UnrefThreadsafeFunction      func(napi.Env, napi.ThreadsafeFunction) napi.Status
	GetThreadsafeFunctionContext func(napi.ThreadsafeFunction, *uintptr) napi.Status
	CreateAsyncWork              func(napi.Env, napi.Value, napi.Value, napi.AsyncExecute, napi.AsyncComplete, uintptr, *napi.AsyncWork) napi.Status
	QueueAsyncWork               func(napi.Env, napi.AsyncWork) napi.Status
	CancelAsyncWork              func(napi.Env, napi.AsyncWork) napi.Status
	DeleteAsyncWork              func(napi.Env, napi.AsyncWork) napi.Status

	// Ok-stubs with sentinel outputs.
	AsyncInit      func(napi.Env, napi.Value, napi.Value, *napi.AsyncContext) napi.Status
	AsyncDestroy   func(napi.Env, napi.AsyncContext) napi.Status
	GetUVEventLoop func(napi.Env, *uintptr) napi.Status
	MakeCallback   func(napi.Env, napi.AsyncContext, napi.Value, napi.Value, []napi.Value, *napi.Value) napi.Status
}

// installed is the single global table pointer: install-once, then
// read-only.
var installed atomic.Pointer[Table]

// Install publishes the table the shim forwards through. The last install
// wins; production wiring installs exactly once at startup.
func Install(t *Table) {
	installed.Store(t)
}

// Installed returns the current table, nil before Install.
func Installed() *Table {
	return installed.Load()
}

// Reset clears the installed table. Test hook.
func Reset() {
	installed.Store(nil)
}
