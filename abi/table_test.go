package abi

import (
	"testing"

	"github.com/wippyai/napi-runtime/api"
	"github.com/wippyai/napi-runtime/env"
	"github.com/wippyai/napi-runtime/napi"
)

func TestNoTableInstalled(t *testing.T) {
	Reset()
	defer Reset()

	var h napi.Value
	if st := GetUndefined(1, &h); st != napi.GenericFailure {
		t.Fatalf("no table get_undefined = %v", st)
	}
	var b bool
	if st := IsArray(1, 0, &b); st != napi.GenericFailure {
		t.Fatalf("no table is_array = %v", st)
	}
}

func TestPartialTableDefaults(t *testing.T) {
	Reset()
	defer Reset()
	Install(&Table{})

	// Query slots answer defaults.
	b := true
	if st := IsArray(1, 0, &b); st != napi.OK || b {
		t.Fatalf("is_array default = %v, %v", st, b)
	}
	b = true
	if st := IsExceptionPending(1, &b); st != napi.OK || b {
		t.Fatalf("is_exception_pending default = %v, %v", st, b)
	}
	var names napi.Value
	if st := GetPropertyNames(1, 0, &names); st != napi.OK || names != napi.HandleEmpty {
		t.Fatalf("get_property_names default = %v, %d", st, names)
	}

	// Ok-stub slots write their sentinel.
	var actx napi.AsyncContext
	if st := AsyncInit(1, 0, 0, &actx); st != napi.OK || actx == 0 {
		t.Fatalf("async_init default = %v, %d", st, actx)
	}
	var uv uintptr
	if st := GetUVEventLoop(1, &uv); st != napi.OK || uv == 0 {
		t.Fatalf("get_uv_event_loop default = %v, %d", st, uv)
	}
	if st := AddEnvCleanupHook(1, func(uintptr) {}, 0); st != napi.OK {
		t.Fatalf("add_env_cleanup_hook default = %v", st)
	}

	// Producer slots fail.
	var h napi.Value
	if st := CreateObject(1, &h); st != napi.GenericFailure {
		t.Fatalf("create_object default = %v", st)
	}
}

func TestBoundTableForwards(t *testing.T) {
	Reset()
	defer Reset()

	ctx := env.NewContext()
	a := api.New(ctx, nil)
	e := ctx.CreateEnv("bound.node")
	Install(Bind(a))

	var scope napi.HandleScope
	if st := OpenHandleScope(e.ID, &scope); st != napi.OK {
		t.Fatal(st)
	}
	var h napi.Value
	if st := CreateStringUTF8(e.ID, "through the shim", &h); st != napi.OK {
		t.Fatal(st)
	}
	var total int
	if st := GetValueStringUTF8(e.ID, h, nil, &total); st != napi.OK || total != len("through the shim") {
		t.Fatalf("round-trip through shim: %v, %d", st, total)
	}
	var undef napi.Value
	GetUndefined(e.ID, &undef)
	if undef != napi.HandleUndefined {
		t.Fatal("singleton through shim")
	}
	if st := CloseHandleScope(e.ID, scope); st != napi.OK {
		t.Fatal(st)
	}
}
