//go:build linux || darwin

package loader

import (
	"path/filepath"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	napiruntime "github.com/wippyai/napi-runtime"
	"github.com/wippyai/napi-runtime/env"
	"github.com/wippyai/napi-runtime/errors"
	"github.com/wippyai/napi-runtime/napi"
)

// installSymbol is the shim's table setter. The name is incidental; it
// only has to match the shim build.
const installSymbol = "napi_go_set_functions"

// registerSymbol is the add-on entry point fixed by the Node-API
// contract.
const registerSymbol = "napi_register_module_v1"

var (
	shimOnce sync.Once
	shimErr  error

	// slots pins the callback table for process lifetime; the shim may
	// forward through any slot until exit.
	slots []uintptr
)

// InstallShim dlopens the shim library (global, so add-on imports
// resolve against it) and hands it the function table. Idempotent; the
// first path wins.
func InstallShim(shimPath string) error {
	shimOnce.Do(func() {
		lib, err := purego.Dlopen(shimPath, purego.RTLD_GLOBAL|purego.RTLD_NOW)
		if err != nil {
			shimErr = errors.Load("dlopen shim "+shimPath, err)
			return
		}
		setter, err := purego.Dlsym(lib, installSymbol)
		if err != nil || setter == 0 {
			shimErr = errors.BadSymbol(shimPath, installSymbol)
			return
		}
		slots = buildTable()
		purego.SyscallN(setter, uintptr(unsafe.Pointer(&slots[0])))
		env.Logger().Debug("shim table installed",
			zap.String("shim", shimPath),
			zap.Int("slots", len(slots)))
	})
	return shimErr
}

// Open loads a Node-API add-on and registers it against the runtime. The
// shim must be installed first (InstallShim), and the runtime's table
// must be the installed one — New does that.
func Open(rt *napiruntime.Runtime, path string) (*napiruntime.Module, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if slots == nil {
		return nil, errors.NotInitialized(errors.PhaseLoad, "shim table")
	}

	lib, err := purego.Dlopen(abs, purego.RTLD_LAZY)
	if err != nil {
		return nil, errors.Load("dlopen addon "+abs, err)
	}
	entry, err := purego.Dlsym(lib, registerSymbol)
	if err != nil || entry == 0 {
		return nil, errors.BadSymbol(abs, registerSymbol)
	}

	env.Logger().Debug("registering addon", zap.String("addon", abs))

	return rt.Register(abs, func(e napi.Env, exports napi.Value) napi.Value {
		ret, _, _ := purego.SyscallN(entry, uintptr(e), uintptr(exports))
		return napi.Value(ret)
	})
}
