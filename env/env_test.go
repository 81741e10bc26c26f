package env

import (
	"runtime"
	"testing"
	"time"

	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/value"
)

func newTestEnv(t *testing.T) *Env {
	t.Helper()
	ctx := NewContext()
	return ctx.CreateEnv("test.node")
}

func TestLastErrorLifecycle(t *testing.T) {
	e := newTestEnv(t)

	if got := e.SetLastError(napi.InvalidArg); got != napi.InvalidArg {
		t.Fatalf("SetLastError returned %v", got)
	}
	info := e.LastErrorInfo()
	if info.Code != napi.InvalidArg || info.Message != "Invalid argument" {
		t.Fatalf("info = %+v", info)
	}

	e.ClearLastError()
	if e.LastErrorInfo().Code != napi.OK {
		t.Fatal("clear did not reset code")
	}
}

func TestExceptionSlot(t *testing.T) {
	e := newTestEnv(t)

	if e.ExceptionPending() {
		t.Fatal("fresh env has pending exception")
	}
	err := value.NewError(value.TypeError, "E", "bad")
	e.Throw(err)
	if !e.ExceptionPending() {
		t.Fatal("throw not observed")
	}
	if got := e.ClearException(); got != err {
		t.Fatalf("drained %v", got)
	}
	if e.ExceptionPending() {
		t.Fatal("slot not cleared")
	}
}

func TestReferenceRoundTrip(t *testing.T) {
	// Invariant: create with n, ref k times, unref k times -> n.
	e := newTestEnv(t)
	obj := value.NewObject()

	for _, n := range []uint32{0, 1, 2, 5} {
		r := e.NewReference(obj, n, OwnedByUserland)
		const k = 3
		for i := 0; i < k; i++ {
			r.Ref()
		}
		for i := 0; i < k; i++ {
			r.Unref()
		}
		if got := r.Refcount(); got != n {
			t.Fatalf("initial %d: round-trip gave %d", n, got)
		}
		v, ok := r.Value()
		if !ok || v != obj {
			t.Fatalf("initial %d: target lost", n)
		}
		r.Delete()
	}
}

func TestReferenceWeakTransitions(t *testing.T) {
	e := newTestEnv(t)
	obj := value.NewObject()

	r := e.NewReference(obj, 1, OwnedByUserland)
	if r.Unref() != 0 {
		t.Fatal("unref to zero")
	}
	// Target still reachable through obj, so the weak read succeeds.
	if v, ok := r.Value(); !ok || v != obj {
		t.Fatal("weak read with live target failed")
	}
	// Upgrade back to strong.
	if r.Ref() != 1 {
		t.Fatal("ref from weak failed")
	}
	if v, ok := r.Value(); !ok || v != obj {
		t.Fatal("strong read failed")
	}
	r.Delete()
	if _, ok := r.Value(); ok {
		t.Fatal("deleted reference still reads")
	}
}

func TestWeakReferenceToPrimitiveEmpties(t *testing.T) {
	e := newTestEnv(t)
	r := e.NewReference(42.0, 0, OwnedByUserland)
	if _, ok := r.Value(); ok {
		t.Fatal("weak primitive should empty immediately")
	}
	// Upgrading an emptied reference fails.
	if r.Ref() != 0 {
		t.Fatal("ref on emptied reference succeeded")
	}
}

func TestFinalizerOnTeardownExactlyOnce(t *testing.T) {
	ctx := NewContext()
	e := ctx.CreateEnv("test.node")

	runs := 0
	e.NewReferenceWithFinalizer(value.NewObject(), 1, OwnedByRuntime,
		func(env napi.Env, data, hint uintptr) {
			runs++
			if data != 7 || hint != 9 {
				t.Errorf("finalizer args = %d, %d", data, hint)
			}
		}, 7, 9)

	e.Teardown()
	if runs != 1 {
		t.Fatalf("finalizer ran %d times", runs)
	}
	// Second teardown is a no-op.
	e.Teardown()
	if runs != 1 {
		t.Fatalf("finalizer re-ran on second teardown: %d", runs)
	}
}

func TestFinalizerSkippedOnExplicitDelete(t *testing.T) {
	ctx := NewContext()
	e := ctx.CreateEnv("test.node")

	runs := 0
	r := e.NewReferenceWithFinalizer(value.NewObject(), 1, OwnedByUserland,
		func(env napi.Env, data, hint uintptr) { runs++ }, 0, 0)
	r.Delete()
	e.Teardown()
	if runs != 0 {
		t.Fatalf("finalizer ran %d times after explicit delete", runs)
	}
}

func TestFinalizerTeardownLIFO(t *testing.T) {
	ctx := NewContext()
	e := ctx.CreateEnv("test.node")

	var order []uintptr
	mk := func(tag uintptr) {
		e.NewReferenceWithFinalizer(value.NewObject(), 1, OwnedByRuntime,
			func(env napi.Env, data, hint uintptr) { order = append(order, data) }, tag, 0)
	}
	mk(1)
	mk(2)
	mk(3)

	e.Teardown()
	if len(order) != 3 || order[0] != 3 || order[1] != 2 || order[2] != 1 {
		t.Fatalf("teardown order = %v, want [3 2 1]", order)
	}
}

func TestFinalizerRunsOnCollection(t *testing.T) {
	ctx := NewContext()
	e := ctx.CreateEnv("test.node")

	done := make(chan struct{})
	e.SetWake(func() { close(done) })

	runs := 0
	func() {
		obj := value.NewObject()
		e.NewReferenceWithFinalizer(obj, 0, OwnedByRuntime,
			func(env napi.Env, data, hint uintptr) { runs++ }, 0, 0)
	}()

	// The target is unreachable; nudge the collector until the death
	// notice lands.
	deadline := time.After(5 * time.Second)
	for {
		runtime.GC()
		select {
		case <-done:
			e.DrainFinalizers()
			if runs != 1 {
				t.Fatalf("finalizer ran %d times", runs)
			}
			// Teardown must not run it again.
			e.Teardown()
			if runs != 1 {
				t.Fatalf("finalizer re-ran on teardown: %d", runs)
			}
			return
		case <-deadline:
			t.Fatal("collection finalizer never fired")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestCleanupHooksLIFO(t *testing.T) {
	ctx := NewContext()
	e := ctx.CreateEnv("test.node")

	var order []uintptr
	hook := func(arg uintptr) { order = append(order, arg) }
	e.AddCleanupHook(hook, 1)
	e.AddCleanupHook(hook, 2)
	e.AddCleanupHook(hook, 3)
	e.RemoveCleanupHook(2)

	e.Teardown()
	if len(order) != 2 || order[0] != 3 || order[1] != 1 {
		t.Fatalf("cleanup order = %v, want [3 1]", order)
	}
}

func TestInstanceData(t *testing.T) {
	ctx := NewContext()
	e := ctx.CreateEnv("test.node")

	if e.InstanceData() != 0 {
		t.Fatal("fresh env has instance data")
	}

	finalized := []uintptr{}
	fin := func(env napi.Env, data, hint uintptr) { finalized = append(finalized, data) }

	e.SetInstanceData(11, fin, 0)
	if e.InstanceData() != 11 {
		t.Fatal("instance data not stored")
	}

	// Replacing runs the previous finalizer.
	e.SetInstanceData(22, fin, 0)
	if len(finalized) != 1 || finalized[0] != 11 {
		t.Fatalf("replace finalization = %v", finalized)
	}

	e.Teardown()
	if len(finalized) != 2 || finalized[1] != 22 {
		t.Fatalf("teardown finalization = %v", finalized)
	}
}

func TestContextRegistry(t *testing.T) {
	ctx := NewContext()
	a := ctx.CreateEnv("a.node")
	b := ctx.CreateEnv("b.node")
	if a.ID == b.ID {
		t.Fatal("duplicate env IDs")
	}

	got, ok := ctx.Env(a.ID)
	if !ok || got != a {
		t.Fatal("lookup failed")
	}

	a.Teardown()
	if _, ok := ctx.Env(a.ID); ok {
		t.Fatal("torn-down env still registered")
	}
	if _, ok := ctx.Env(b.ID); !ok {
		t.Fatal("sibling env lost")
	}

	ctx.Destroy()
	if !b.TornDown() {
		t.Fatal("destroy did not tear down remaining envs")
	}
}
