package api

import (
	"sync"

	"github.com/wippyai/napi-runtime/dispatch"
	"github.com/wippyai/napi-runtime/env"
	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/value"
)

// API implements the ABI surface against one process context.
type API struct {
	ctx  *env.Context
	loop *dispatch.Loop

	mu    sync.Mutex
	tsfns map[napi.ThreadsafeFunction]*tsfnState
	works map[napi.AsyncWork]*workState
	nextT napi.ThreadsafeFunction
	nextW napi.AsyncWork
	pool  *dispatch.Pool
}

// New binds an API to a context and host loop. loop may be nil for
// callers that never touch the concurrency entry points (then async work
// and TSFNs fail with GenericFailure).
func New(ctx *env.Context, loop *dispatch.Loop) *API {
	a := &API{
		ctx:   ctx,
		loop:  loop,
		tsfns: make(map[napi.ThreadsafeFunction]*tsfnState),
		works: make(map[napi.AsyncWork]*workState),
		nextT: 1,
		nextW: 1,
	}
	if loop != nil {
		a.pool = dispatch.NewPool(dispatch.DefaultPoolSize)
	}
	return a
}

// Context returns the bound context.
func (a *API) Context() *env.Context { return a.ctx }

// Loop returns the bound host loop.
func (a *API) Loop() *dispatch.Loop { return a.loop }

// Close stops the worker pool.
func (a *API) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

// checkEnv is the common preamble: resolve the env and clear last error.
func (a *API) checkEnv(id napi.Env) (*env.Env, napi.Status) {
	e, ok := a.ctx.Env(id)
	if !ok || e.TornDown() {
		return nil, napi.InvalidArg
	}
	e.ClearLastError()
	return e, napi.OK
}

// scriptEnv is the preamble for entry points that may run script logic:
// env check, pending-exception short-circuit, can-call gate.
func (a *API) scriptEnv(id napi.Env) (*env.Env, napi.Status) {
	e, status := a.checkEnv(id)
	if status != napi.OK {
		return nil, status
	}
	if e.ExceptionPending() {
		return nil, e.SetLastError(napi.PendingException)
	}
	if !e.CanCallIntoJS() {
		return nil, e.SetLastError(napi.CannotRunJS)
	}
	return e, napi.OK
}

// valueOf resolves a handle, failing with InvalidArg for dead IDs.
func valueOf(e *env.Env, h napi.Value) (any, napi.Status) {
	v, ok := e.Store.Get(h)
	if !ok {
		return nil, napi.InvalidArg
	}
	return v, napi.OK
}

// addValue mints a handle in the current scope. Minting requires an open
// scope; the root scope counts only before the loader hands control to
// the add-on, so entry points reached from native code always see a
// positive counter or fail.
func addValue(e *env.Env, v any) (napi.Value, napi.Status) {
	if e.OpenScopes == 0 {
		return 0, napi.HandleScopeMismatch
	}
	return e.Scopes.Current().Intern(v), napi.OK
}

// keyFor converts a handle to a property key: strings stay strings,
// symbols keep identity, everything else coerces to string.
func keyFor(e *env.Env, h napi.Value) (any, napi.Status) {
	v, status := valueOf(e, h)
	if status != napi.OK {
		return nil, status
	}
	switch k := v.(type) {
	case string:
		return k, napi.OK
	case *value.Symbol:
		return k, napi.OK
	case float64, bool, nil:
		return value.ToString(v), napi.OK
	default:
		if value.IsUndefined(v) {
			return "undefined", napi.OK
		}
		return nil, napi.NameExpected
	}
}

// objectOf resolves a handle to something with object nature. Arrays and
// errors expose their expando tables; functions their props.
func objectOf(e *env.Env, h napi.Value) (propHolder, napi.Status) {
	v, status := valueOf(e, h)
	if status != napi.OK {
		return nil, status
	}
	holder := holderFor(v)
	if holder == nil {
		return nil, napi.ObjectExpected
	}
	return holder, napi.OK
}

// propHolder unifies property access over objects, arrays, functions and
// errors.
type propHolder interface {
	Table() *value.Object
	Raw() any
}

type objHolder struct{ o *value.Object }

func (h objHolder) Table() *value.Object { return h.o }
func (h objHolder) Raw() any             { return h.o }

type arrHolder struct{ a *value.Array }

func (h arrHolder) Table() *value.Object { return h.a.Expando() }
func (h arrHolder) Raw() any             { return h.a }

type fnHolder struct{ f *value.Function }

func (h fnHolder) Table() *value.Object { return h.f.Props() }
func (h fnHolder) Raw() any             { return h.f }

type errHolder struct{ e *value.Error }

func (h errHolder) Table() *value.Object { return h.e.Props() }
func (h errHolder) Raw() any             { return h.e }

func holderFor(v any) propHolder {
	switch x := v.(type) {
	case *value.Object:
		return objHolder{x}
	case *value.Array:
		return arrHolder{x}
	case *value.Function:
		return fnHolder{x}
	case *value.Error:
		return errHolder{x}
	default:
		return nil
	}
}

// throwInto routes an error returned by host-model calls (accessors,
// function bodies) into the environment's pending-exception slot.
func throwInto(e *env.Env, err error) napi.Status {
	e.Throw(value.ThrownValue(err))
	return e.SetLastError(napi.PendingException)
}
