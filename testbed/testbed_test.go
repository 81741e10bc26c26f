// Package testbed runs end-to-end scenarios against in-process add-ons:
// Go functions that behave exactly like native registration entry
// points, reaching the runtime only through the shim forwarding layer.
package testbed

import (
	"runtime"
	"sync"
	"testing"
	"time"

	napiruntime "github.com/wippyai/napi-runtime"
	"github.com/wippyai/napi-runtime/abi"
	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/value"
)

// mustStr mints a string handle the way native code does.
func mustStr(t *testing.T, e napi.Env, s string) napi.Value {
	t.Helper()
	var h napi.Value
	if st := abi.CreateStringUTF8(e, s, &h); st != napi.OK {
		t.Fatalf("create string: %v", st)
	}
	return h
}

func readStr(t *testing.T, e napi.Env, h napi.Value) string {
	t.Helper()
	var total int
	if st := abi.GetValueStringUTF8(e, h, nil, &total); st != napi.OK {
		t.Fatalf("string length: %v", st)
	}
	buf := make([]byte, total+1)
	var n int
	abi.GetValueStringUTF8(e, h, buf, &n)
	return string(buf[:n])
}

// echoAddon registers add(a, b) with integer-typed extraction, the E1
// shape.
func echoAddon(t *testing.T) napiruntime.RegisterFunc {
	return func(e napi.Env, exports napi.Value) napi.Value {
		add := func(env napi.Env, info napi.CallbackInfo) napi.Value {
			argc := 2
			argv := make([]napi.Value, 2)
			if st := abi.GetCbInfo(env, info, &argc, argv, nil, nil); st != napi.OK {
				return napi.HandleHole
			}
			var a, b int32
			if st := abi.GetValueInt32(env, argv[0], &a); st != napi.OK {
				abi.ThrowTypeError(env, "", "a number was expected")
				return napi.HandleHole
			}
			if st := abi.GetValueInt32(env, argv[1], &b); st != napi.OK {
				abi.ThrowTypeError(env, "", "a number was expected")
				return napi.HandleHole
			}
			var out napi.Value
			abi.CreateDouble(env, float64(a+b), &out)
			return out
		}
		var fn napi.Value
		if st := abi.CreateFunction(e, "add", add, 0, &fn); st != napi.OK {
			t.Fatalf("create add: %v", st)
		}
		abi.SetNamedProperty(e, exports, "add", fn)
		return exports
	}
}

func TestE1EchoAddon(t *testing.T) {
	rt := napiruntime.New()
	defer rt.Close()

	mod, err := rt.Register("echo.node", echoAddon(t))
	if err != nil {
		t.Fatal(err)
	}
	defer mod.Close()

	result, err := mod.Call("add", 2.0, 3.0)
	if err != nil {
		t.Fatal(err)
	}
	if result != 5.0 {
		t.Fatalf("add(2,3) = %v", result)
	}

	// Integer-typed extraction of strings throws a TypeError.
	_, err = mod.Call("add", "hi", "lo")
	if err == nil {
		t.Fatal("string extraction succeeded")
	}
	thrown := value.ThrownValue(err)
	errVal, ok := thrown.(*value.Error)
	if !ok || errVal.Kind != value.TypeError {
		t.Fatalf("thrown = %#v", thrown)
	}
}

func TestE2CounterClass(t *testing.T) {
	rt := napiruntime.New()
	defer rt.Close()

	register := func(e napi.Env, exports napi.Value) napi.Value {
		ctor := func(env napi.Env, info napi.CallbackInfo) napi.Value {
			var this napi.Value
			abi.GetCbInfo(env, info, nil, nil, &this, nil)
			var zero napi.Value
			abi.CreateDouble(env, 0, &zero)
			abi.SetNamedProperty(env, this, "count", zero)
			return napi.HandleHole
		}
		increment := func(env napi.Env, info napi.CallbackInfo) napi.Value {
			var this napi.Value
			abi.GetCbInfo(env, info, nil, nil, &this, nil)
			var cur napi.Value
			abi.GetNamedProperty(env, this, "count", &cur)
			var n float64
			abi.GetValueDouble(env, cur, &n)
			var next napi.Value
			abi.CreateDouble(env, n+1, &next)
			abi.SetNamedProperty(env, this, "count", next)
			return napi.HandleHole
		}
		getter := func(env napi.Env, info napi.CallbackInfo) napi.Value {
			var this napi.Value
			abi.GetCbInfo(env, info, nil, nil, &this, nil)
			var cur napi.Value
			abi.GetNamedProperty(env, this, "count", &cur)
			return cur
		}

		props := []napi.PropertyDescriptor{
			{UTF8Name: "increment", Method: increment, Attributes: napi.DefaultMethod},
			{UTF8Name: "value", Getter: getter, Attributes: napi.Configurable},
		}
		var class napi.Value
		if st := abi.DefineClass(e, "Counter", ctor, 0, props, &class); st != napi.OK {
			t.Fatalf("define class: %v", st)
		}
		abi.SetNamedProperty(e, exports, "Counter", class)
		return exports
	}

	mod, err := rt.Register("counter.node", register)
	if err != nil {
		t.Fatal(err)
	}
	defer mod.Close()

	instance, err := mod.New("Counter")
	if err != nil {
		t.Fatal(err)
	}
	obj := instance.(*value.Object)

	incV, _, _ := obj.Get("increment")
	inc := incV.(*value.Function)
	for i := 0; i < 3; i++ {
		if _, err := inc.Invoke(obj, nil); err != nil {
			t.Fatal(err)
		}
	}

	got, _, err := obj.Get("value")
	if err != nil {
		t.Fatal(err)
	}
	if got != 3.0 {
		t.Fatalf("counter.value = %v, want 3", got)
	}
}

func TestE3WrapLifecycle(t *testing.T) {
	rt := napiruntime.New()
	defer rt.Close()

	var finalized sync.Map
	runs := 0

	register := func(e napi.Env, exports napi.Value) napi.Value {
		makeWrapped := func(env napi.Env, info napi.CallbackInfo) napi.Value {
			var obj napi.Value
			abi.CreateObject(env, &obj)
			fin := func(fe napi.Env, data, hint uintptr) {
				runs++
				finalized.Store(data, true)
			}
			if st := abi.Wrap(env, obj, 0xBEEF, fin, 0, nil); st != napi.OK {
				t.Errorf("wrap: %v", st)
			}
			return obj
		}
		var fn napi.Value
		abi.CreateFunction(e, "makeWrapped", makeWrapped, 0, &fn)
		abi.SetNamedProperty(e, exports, "makeWrapped", fn)
		return exports
	}

	mod, err := rt.Register("wrap.node", register)
	if err != nil {
		t.Fatal(err)
	}

	func() {
		obj, err := mod.Call("makeWrapped")
		if err != nil {
			t.Fatal(err)
		}
		if obj == nil {
			t.Fatal("no object")
		}
	}()

	// Drop the only reference and collect; the finalizer must run once
	// with the wrapped pointer.
	deadline := time.After(5 * time.Second)
	for {
		runtime.GC()
		rt.Poll()
		if _, ok := finalized.Load(uintptr(0xBEEF)); ok {
			break
		}
		select {
		case <-deadline:
			t.Fatal("wrap finalizer never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}
	if runs != 1 {
		t.Fatalf("finalizer ran %d times", runs)
	}

	// Teardown must not run it a second time.
	mod.Close()
	if runs != 1 {
		t.Fatalf("finalizer re-ran on teardown: %d", runs)
	}
}

func TestE4TSFNFromFourThreads(t *testing.T) {
	rt := napiruntime.New()
	defer rt.Close()

	const threads = 4
	const perThread = 100

	var got []uintptr
	finalized := false

	register := func(e napi.Env, exports napi.Value) napi.Value {
		return exports
	}
	mod, err := rt.Register("tsfn.node", register)
	if err != nil {
		t.Fatal(err)
	}
	defer mod.Close()

	// Create the TSFN the way native code does, on the host thread.
	callJS := func(env napi.Env, fn napi.Value, context, data uintptr) {
		if finalized {
			t.Error("item after finalizer")
		}
		got = append(got, data)
	}
	var tsfn napi.ThreadsafeFunction
	st := abi.CreateThreadsafeFunction(mod.Env(), napi.HandleHole, 0, threads, 0,
		func(env napi.Env, data, hint uintptr) { finalized = true }, 0, 0,
		callJS, &tsfn)
	if st != napi.OK {
		t.Fatalf("create tsfn: %v", st)
	}

	var wg sync.WaitGroup
	for th := 0; th < threads; th++ {
		wg.Add(1)
		go func(th int) {
			defer wg.Done()
			for i := 0; i < perThread; i++ {
				if s := abi.CallThreadsafeFunction(tsfn, uintptr(th*1000+i), napi.Blocking); s != napi.OK {
					t.Errorf("call: %v", s)
					return
				}
			}
			abi.ReleaseThreadsafeFunction(tsfn, napi.Release)
		}(th)
	}

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()

	deadline := time.After(10 * time.Second)
	for !finalized {
		rt.Poll()
		select {
		case <-deadline:
			t.Fatal("tsfn finalizer never ran")
		case <-time.After(time.Millisecond):
		}
	}
	<-done

	if len(got) != threads*perThread {
		t.Fatalf("drained %d items, want %d", len(got), threads*perThread)
	}
	last := map[int]int{}
	seen := map[int]int{}
	for _, d := range got {
		th, seq := int(d)/1000, int(d)%1000
		if prev, dup := last[th]; dup && seq != prev+1 {
			t.Fatalf("thread %d out of order: %d after %d", th, seq, prev)
		}
		last[th] = seq
		seen[th]++
	}
	for th := 0; th < threads; th++ {
		if seen[th] != perThread {
			t.Fatalf("thread %d delivered %d items", th, seen[th])
		}
	}
}

func TestE5PromiseResolution(t *testing.T) {
	rt := napiruntime.New()
	defer rt.Close()

	var deferredID napi.Deferred

	register := func(e napi.Env, exports napi.Value) napi.Value {
		makePromise := func(env napi.Env, info napi.CallbackInfo) napi.Value {
			var promise napi.Value
			if st := abi.CreatePromise(env, &deferredID, &promise); st != napi.OK {
				t.Errorf("create promise: %v", st)
			}
			return promise
		}
		var fn napi.Value
		abi.CreateFunction(e, "makePromise", makePromise, 0, &fn)
		abi.SetNamedProperty(e, exports, "makePromise", fn)
		return exports
	}

	mod, err := rt.Register("promise.node", register)
	if err != nil {
		t.Fatal(err)
	}
	defer mod.Close()

	result, err := mod.Call("makePromise")
	if err != nil {
		t.Fatal(err)
	}
	promise := result.(*value.Promise)
	if promise.State() != value.Pending {
		t.Fatal("promise not pending")
	}

	// Resolve from native code with 42.
	sc := openScope(t, mod.Env())
	var fortyTwo napi.Value
	abi.CreateDouble(mod.Env(), 42, &fortyTwo)
	if st := abi.ResolveDeferred(mod.Env(), deferredID, fortyTwo); st != napi.OK {
		t.Fatalf("resolve: %v", st)
	}
	closeScope(t, mod.Env(), sc)

	if promise.State() != value.Fulfilled || promise.Result() != 42.0 {
		t.Fatalf("promise = %v, %v", promise.State(), promise.Result())
	}

	// A second settlement fails.
	sc = openScope(t, mod.Env())
	var one napi.Value
	abi.CreateDouble(mod.Env(), 1, &one)
	if st := abi.RejectDeferred(mod.Env(), deferredID, one); st == napi.OK {
		t.Fatal("second settlement succeeded")
	}
	closeScope(t, mod.Env(), sc)
}

func TestE6ExceptionRoundTrip(t *testing.T) {
	rt := napiruntime.New()
	defer rt.Close()

	register := func(e napi.Env, exports napi.Value) napi.Value {
		boom := func(env napi.Env, info napi.CallbackInfo) napi.Value {
			abi.ThrowTypeError(env, "E_ARG", "bad")
			return napi.HandleHole
		}
		var fn napi.Value
		abi.CreateFunction(e, "boom", boom, 0, &fn)
		abi.SetNamedProperty(e, exports, "boom", fn)
		return exports
	}

	mod, err := rt.Register("boom.node", register)
	if err != nil {
		t.Fatal(err)
	}
	defer mod.Close()

	_, err = mod.Call("boom")
	if err == nil {
		t.Fatal("no error observed")
	}
	errVal, ok := value.ThrownValue(err).(*value.Error)
	if !ok {
		t.Fatalf("thrown = %#v", value.ThrownValue(err))
	}
	if errVal.Kind != value.TypeError || errVal.Code != "E_ARG" || errVal.Message != "bad" {
		t.Fatalf("error = %+v", errVal)
	}
}

func TestRegistrationReplacesExports(t *testing.T) {
	rt := napiruntime.New()
	defer rt.Close()

	register := func(e napi.Env, exports napi.Value) napi.Value {
		var replacement napi.Value
		abi.CreateObject(e, &replacement)
		abi.SetNamedProperty(e, replacement, "marker", mustStr(t, e, "replaced"))
		return replacement
	}

	mod, err := rt.Register("replace.node", register)
	if err != nil {
		t.Fatal(err)
	}
	defer mod.Close()

	v, ok := mod.Export("marker")
	if !ok || v != "replaced" {
		t.Fatalf("marker = %v, %v", v, ok)
	}
}

func TestInstanceDataAcrossCalls(t *testing.T) {
	rt := napiruntime.New()
	defer rt.Close()

	register := func(e napi.Env, exports napi.Value) napi.Value {
		abi.SetInstanceData(e, 0x1234, nil, 0)
		read := func(env napi.Env, info napi.CallbackInfo) napi.Value {
			var data uintptr
			abi.GetInstanceData(env, &data)
			var out napi.Value
			abi.CreateDouble(env, float64(data), &out)
			return out
		}
		var fn napi.Value
		abi.CreateFunction(e, "readInstanceData", read, 0, &fn)
		abi.SetNamedProperty(e, exports, "readInstanceData", fn)
		return exports
	}

	mod, err := rt.Register("instance.node", register)
	if err != nil {
		t.Fatal(err)
	}
	defer mod.Close()

	got, err := mod.Call("readInstanceData")
	if err != nil {
		t.Fatal(err)
	}
	if got != float64(0x1234) {
		t.Fatalf("instance data = %v", got)
	}
}

func openScope(t *testing.T, e napi.Env) napi.HandleScope {
	t.Helper()
	var sc napi.HandleScope
	if st := abi.OpenHandleScope(e, &sc); st != napi.OK {
		t.Fatalf("open scope: %v", st)
	}
	return sc
}

func closeScope(t *testing.T, e napi.Env, sc napi.HandleScope) {
	t.Helper()
	if st := abi.CloseHandleScope(e, sc); st != napi.OK {
		t.Fatalf("close scope: %v", st)
	}
}
