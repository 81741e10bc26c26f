package env

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/napi-runtime/handle"
	"github.com/wippyai/napi-runtime/napi"
)

// LastError is the per-environment extended error record. Message storage
// is valid until the next entry point clears it.
type LastError struct {
	Code       napi.Status
	EngineCode uint32
	Reserved   uintptr
	Message    string
}

// Binding is the per-object association the environment attaches through
// value.Object.SetBinding: the wrap reference and the object's type tag.
type Binding struct {
	Wrapped *Reference
	Tag     *napi.TypeTag
}

type cleanupHook struct {
	fn  napi.CleanupHook
	arg uintptr
}

// Env is the per-add-on environment: all state native code can observe
// through its napi_env handle.
type Env struct {
	ID       napi.Env
	Filename string

	Store  *handle.Store
	Scopes *handle.Stack

	ctx *Context

	lastError        LastError
	pendingException any
	hasPending       bool

	// OpenScopes mirrors the scope stack depth; every value-producing
	// entry point requires it to be positive.
	OpenScopes int

	instanceData     uintptr
	instanceFinalize napi.Finalize
	instanceHint     uintptr
	hasInstanceData  bool

	refs    map[napi.Ref]*Reference
	nextRef napi.Ref

	deferreds    map[napi.Deferred]*deferredSlot
	nextDeferred napi.Deferred

	// Intrusive reference lists. finalizing holds references that carry a
	// user finalizer; live holds the rest. Teardown drains finalizing
	// first, then live, each LIFO.
	live       listHead
	finalizing listHead

	// Finalizer intake. The collector's goroutine appends; the host
	// thread drains. wake (if set) nudges the host loop after an append.
	finMu      sync.Mutex
	finPending []*Reference
	draining   bool
	wake       func()

	cleanup []cleanupHook

	tearingDown bool
	torn        bool
}

// NewEnv is used by Context.CreateEnv.
func newEnv(ctx *Context, id napi.Env, filename string, storeCapacity int) *Env {
	store := handle.NewStore(storeCapacity)
	return &Env{
		ID:           id,
		Filename:     filename,
		Store:        store,
		Scopes:       handle.NewStack(store),
		ctx:          ctx,
		refs:         make(map[napi.Ref]*Reference),
		nextRef:      1,
		deferreds:    make(map[napi.Deferred]*deferredSlot),
		nextDeferred: 1,
	}
}

// Context returns the owning process context.
func (e *Env) Context() *Context { return e.ctx }

// SetWake installs the host-loop nudge used when the collector reports an
// object death off-thread.
func (e *Env) SetWake(fn func()) { e.wake = fn }

// ClearLastError resets the error record; every entry point calls this in
// its preamble.
func (e *Env) ClearLastError() napi.Status {
	e.lastError = LastError{}
	return napi.OK
}

// SetLastError records a failure and returns its code, so entry points can
// `return e.SetLastError(status)`.
func (e *Env) SetLastError(code napi.Status) napi.Status {
	return e.SetLastErrorInfo(code, 0, code.Message())
}

// SetLastErrorInfo records a failure with engine detail.
func (e *Env) SetLastErrorInfo(code napi.Status, engineCode uint32, msg string) napi.Status {
	e.lastError.Code = code
	e.lastError.EngineCode = engineCode
	e.lastError.Message = msg
	return code
}

// LastErrorInfo returns the current record.
func (e *Env) LastErrorInfo() LastError { return e.lastError }

// Throw stores v in the pending-exception slot.
func (e *Env) Throw(v any) {
	e.pendingException = v
	e.hasPending = true
}

// ExceptionPending reports whether the slot is occupied.
func (e *Env) ExceptionPending() bool { return e.hasPending }

// PendingException returns the slot without clearing it.
func (e *Env) PendingException() any { return e.pendingException }

// ClearException drains the slot, returning the held value.
func (e *Env) ClearException() any {
	v := e.pendingException
	e.pendingException = nil
	e.hasPending = false
	return v
}

// CanCallIntoJS reports whether script-running entry points may proceed.
func (e *Env) CanCallIntoJS() bool {
	return !e.tearingDown && !e.torn && e.ctx.canCallIntoJS()
}

// SetInstanceData stores the add-on's opaque pointer, running any previous
// finalizer first.
func (e *Env) SetInstanceData(data uintptr, finalize napi.Finalize, hint uintptr) {
	if e.hasInstanceData && e.instanceFinalize != nil {
		e.callFinalizer(e.instanceFinalize, e.instanceData, e.instanceHint)
	}
	e.instanceData = data
	e.instanceFinalize = finalize
	e.instanceHint = hint
	e.hasInstanceData = true
}

// InstanceData returns the stored pointer (zero if unset).
func (e *Env) InstanceData() uintptr { return e.instanceData }

// AddCleanupHook registers a teardown hook. Duplicate (fn identity, arg)
// pairs cannot be detected across func values in Go; each registration is
// its own entry and removal drops the most recent match by arg.
func (e *Env) AddCleanupHook(fn napi.CleanupHook, arg uintptr) {
	e.cleanup = append(e.cleanup, cleanupHook{fn: fn, arg: arg})
}

// RemoveCleanupHook drops the most recently added hook with this arg.
func (e *Env) RemoveCleanupHook(arg uintptr) {
	for i := len(e.cleanup) - 1; i >= 0; i-- {
		if e.cleanup[i].arg == arg {
			e.cleanup = append(e.cleanup[:i], e.cleanup[i+1:]...)
			return
		}
	}
}

// callFinalizer invokes a native finalizer with a scope entered, per the
// contract that runtime-initiated callbacks into the add-on see a fresh
// scope.
func (e *Env) callFinalizer(fn napi.Finalize, data, hint uintptr) {
	if fn == nil {
		return
	}
	sc := e.Scopes.Open(false)
	e.OpenScopes++
	defer func() {
		e.OpenScopes--
		e.Scopes.Close(sc)
	}()
	fn(e.ID, data, hint)
}

// EnqueueFinalizerFromGC is called from the collector's goroutine when a
// weakly-held target dies. Safe from any goroutine.
func (e *Env) EnqueueFinalizerFromGC(r *Reference) {
	e.finMu.Lock()
	if e.torn || r.finalized {
		e.finMu.Unlock()
		return
	}
	e.finPending = append(e.finPending, r)
	wake := e.wake
	e.finMu.Unlock()
	if wake != nil {
		wake()
	}
}

// DrainFinalizers runs queued finalizer records on the caller's (host)
// thread. Re-entrant calls from inside a finalizer are deferred to the
// outer drain.
func (e *Env) DrainFinalizers() {
	if e.draining {
		return
	}
	e.draining = true
	defer func() { e.draining = false }()

	for {
		e.finMu.Lock()
		if len(e.finPending) == 0 {
			e.finMu.Unlock()
			return
		}
		r := e.finPending[0]
		e.finPending = e.finPending[1:]
		e.finMu.Unlock()
		r.finalizeOnHost()
	}
}

// Teardown destroys the environment: cleanup hooks LIFO, queued
// finalizers, then every tracked reference (finalizing list before live
// list, each LIFO by construction of the intrusive list).
func (e *Env) Teardown() {
	if e.torn || e.tearingDown {
		return
	}
	e.tearingDown = true

	for i := len(e.cleanup) - 1; i >= 0; i-- {
		h := e.cleanup[i]
		if h.fn != nil {
			h.fn(h.arg)
		}
	}
	e.cleanup = nil

	e.DrainFinalizers()

	e.finalizing.finalizeAll()
	e.live.finalizeAll()

	if e.hasInstanceData && e.instanceFinalize != nil {
		e.callFinalizer(e.instanceFinalize, e.instanceData, e.instanceHint)
		e.hasInstanceData = false
	}

	e.ClearException()
	e.torn = true
	e.tearingDown = false
	e.ctx.remove(e.ID)
	Logger().Debug("environment torn down",
		zap.Uint64("env", uint64(e.ID)),
		zap.String("filename", e.Filename))
}

// TornDown reports whether Teardown completed.
func (e *Env) TornDown() bool { return e.torn }
