package napiruntime

import (
	"context"

	"github.com/wippyai/napi-runtime/abi"
	"github.com/wippyai/napi-runtime/api"
	"github.com/wippyai/napi-runtime/config"
	"github.com/wippyai/napi-runtime/dispatch"
	"github.com/wippyai/napi-runtime/env"
	"github.com/wippyai/napi-runtime/errors"
	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/value"
)

// RegisterFunc is the Go form of napi_register_module_v1: the add-on's
// entry point, handed the environment and a pre-created exports object,
// returning the exports handle (possibly the same one).
type RegisterFunc func(env napi.Env, exports napi.Value) napi.Value

// Runtime ties the process context, the host loop, the ABI
// implementation, and the installed function table together.
type Runtime struct {
	ctx  *env.Context
	loop *dispatch.Loop
	api  *api.API
	opts config.Options
}

// New creates a runtime with default options and installs its function
// table as the process-wide shim target.
func New() *Runtime {
	return NewWithOptions(config.Default())
}

// NewWithOptions creates a runtime with explicit tunables.
func NewWithOptions(opts config.Options) *Runtime {
	ctx := env.NewContext()
	ctx.StoreCapacity = opts.HandleStoreCapacity
	loop := dispatch.NewLoop()
	a := api.New(ctx, loop)
	abi.Install(abi.Bind(a))
	return &Runtime{ctx: ctx, loop: loop, api: a, opts: opts}
}

// API returns the ABI implementation bound to this runtime.
func (r *Runtime) API() *api.API { return r.api }

// Context returns the environment registry.
func (r *Runtime) Context() *env.Context { return r.ctx }

// Loop returns the host loop.
func (r *Runtime) Loop() *dispatch.Loop { return r.loop }

// Options returns the tunables the runtime was built with.
func (r *Runtime) Options() config.Options { return r.opts }

// Poll drains pending host-thread work (TSFN items, async completions,
// finalizers) on the caller's goroutine.
func (r *Runtime) Poll() int {
	n := r.loop.Poll()
	return n
}

// Run consumes the loop until ctx is done, making the caller the host
// thread.
func (r *Runtime) Run(ctx context.Context) {
	r.loop.Run(ctx)
}

// RunUntilIdle consumes the loop until nothing keeps it alive.
func (r *Runtime) RunUntilIdle(ctx context.Context) {
	r.loop.RunUntilIdle(ctx)
}

// Close tears down every environment and stops the loop and pool.
func (r *Runtime) Close() {
	r.ctx.Destroy()
	r.loop.Close()
	r.api.Close()
}

// Register runs an add-on's registration entry point against a fresh
// environment and projects its exports. This is the registration
// context: an opaque environment handle plus an empty exports object.
func (r *Runtime) Register(filename string, register RegisterFunc) (*Module, error) {
	e := r.ctx.CreateEnv(filename)
	e.SetWake(func() { r.loop.Post(e.DrainFinalizers) })

	var scope napi.HandleScope
	if st := r.api.OpenHandleScope(e.ID, &scope); st != napi.OK {
		return nil, errors.FromStatus(errors.PhaseRegister, st)
	}

	exports := value.NewObject()
	exportsHandle := e.Scopes.Current().Add(exports)

	ret := register(e.ID, exportsHandle)

	if e.ExceptionPending() {
		thrown := e.ClearException()
		r.api.CloseHandleScope(e.ID, scope)
		e.Teardown()
		return nil, errors.Registration(filename, value.Throw(thrown))
	}

	result := exports
	if ret != napi.HandleHole && ret != exportsHandle {
		if v, ok := e.Store.Get(ret); ok {
			if obj, isObj := v.(*value.Object); isObj {
				result = obj
			}
		}
	}

	// Pin the exports for the module's lifetime; the registration scope
	// dies here.
	keep := e.NewReference(result, 1, env.OwnedByRuntime)
	if st := r.api.CloseHandleScope(e.ID, scope); st != napi.OK {
		return nil, errors.FromStatus(errors.PhaseRegister, st)
	}

	return &Module{rt: r, env: e, exports: result, keep: keep, name: filename}, nil
}

// Module is one registered add-on: its environment plus the projected
// exports object.
type Module struct {
	rt      *Runtime
	env     *env.Env
	exports *value.Object
	keep    *env.Reference
	name    string
}

// Name returns the add-on filename used at registration.
func (m *Module) Name() string { return m.name }

// Env returns the module's environment handle.
func (m *Module) Env() napi.Env { return m.env.ID }

// Exports returns the raw exports object.
func (m *Module) Exports() *value.Object { return m.exports }

// ExportNames lists the exports in definition order.
func (m *Module) ExportNames() []string {
	return m.exports.Keys()
}

// Export looks up a single export.
func (m *Module) Export(name string) (any, bool) {
	v, found, err := m.exports.Get(name)
	if err != nil || !found {
		return nil, false
	}
	return v, true
}

// Call invokes an exported function with host-model arguments (float64,
// string, bool, *value.Object, ...). A thrown add-on exception comes back
// as the error.
func (m *Module) Call(name string, args ...any) (any, error) {
	if m.env.TornDown() {
		return nil, errors.Closed(errors.PhaseCall, "environment")
	}
	v, found, _ := m.exports.Get(name)
	if !found {
		return nil, errors.NotFound(errors.PhaseCall, "export", name)
	}
	fn, ok := v.(*value.Function)
	if !ok {
		return nil, errors.New(errors.PhaseCall, errors.KindInvalidInput).
			Addon(m.name).
			Detail("export %q is not callable", name).
			Build()
	}
	return fn.Invoke(value.Undefined, args)
}

// New constructs an instance of an exported class.
func (m *Module) New(name string, args ...any) (any, error) {
	v, found, _ := m.exports.Get(name)
	if !found {
		return nil, errors.NotFound(errors.PhaseCall, "export", name)
	}
	fn, ok := v.(*value.Function)
	if !ok {
		return nil, errors.New(errors.PhaseCall, errors.KindInvalidInput).
			Addon(m.name).
			Detail("export %q is not constructible", name).
			Build()
	}
	return fn.Construct(args)
}

// Close tears down the module's environment, running finalizers and
// cleanup hooks.
func (m *Module) Close() {
	if m.keep != nil {
		m.keep.Delete()
		m.keep = nil
	}
	m.env.Teardown()
}
