package api

import (
	"testing"

	"github.com/wippyai/napi-runtime/dispatch"
	"github.com/wippyai/napi-runtime/env"
	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/value"
)

// fixture is one environment with a scope open, the way registration
// hands control to an add-on.
type fixture struct {
	api   *API
	env   *env.Env
	id    napi.Env
	scope napi.HandleScope
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := env.NewContext()
	a := New(ctx, dispatch.NewLoop())
	t.Cleanup(a.Close)
	e := ctx.CreateEnv("fixture.node")

	f := &fixture{api: a, env: e, id: e.ID}
	if s := a.OpenHandleScope(f.id, &f.scope); s != napi.OK {
		t.Fatalf("open scope: %v", s)
	}
	return f
}

func (f *fixture) mustString(t *testing.T, s string) napi.Value {
	t.Helper()
	var h napi.Value
	if st := f.api.CreateStringUTF8(f.id, s, &h); st != napi.OK {
		t.Fatalf("create string: %v", st)
	}
	return h
}

func (f *fixture) mustNumber(t *testing.T, n float64) napi.Value {
	t.Helper()
	var h napi.Value
	if st := f.api.CreateDouble(f.id, n, &h); st != napi.OK {
		t.Fatalf("create double: %v", st)
	}
	return h
}

func (f *fixture) mustObject(t *testing.T) napi.Value {
	t.Helper()
	var h napi.Value
	if st := f.api.CreateObject(f.id, &h); st != napi.OK {
		t.Fatalf("create object: %v", st)
	}
	return h
}

func TestSingletonIdentityAcrossEnvironments(t *testing.T) {
	ctx := env.NewContext()
	a := New(ctx, nil)
	for _, name := range []string{"one.node", "two.node"} {
		e := ctx.CreateEnv(name)
		var undef, null, tru, fls, global napi.Value
		a.GetUndefined(e.ID, &undef)
		a.GetNull(e.ID, &null)
		a.GetBoolean(e.ID, true, &tru)
		a.GetBoolean(e.ID, false, &fls)
		a.GetGlobal(e.ID, &global)
		if undef != 2 || null != 3 || fls != 4 || tru != 5 || global != 6 {
			t.Fatalf("%s: singletons = %d %d %d %d %d", name, undef, null, fls, tru, global)
		}
	}
}

func TestNumberRoundTrips(t *testing.T) {
	f := newFixture(t)

	h := f.mustNumber(t, 42)
	var i32 int32
	var u32 uint32
	var i64 int64
	var d float64
	if f.api.GetValueInt32(f.id, h, &i32) != napi.OK || i32 != 42 {
		t.Error("int32")
	}
	if f.api.GetValueUint32(f.id, h, &u32) != napi.OK || u32 != 42 {
		t.Error("uint32")
	}
	if f.api.GetValueInt64(f.id, h, &i64) != napi.OK || i64 != 42 {
		t.Error("int64")
	}
	if f.api.GetValueDouble(f.id, h, &d) != napi.OK || d != 42 {
		t.Error("double")
	}

	// Type mismatch surfaces NumberExpected and records it.
	s := f.mustString(t, "nope")
	if st := f.api.GetValueInt32(f.id, s, &i32); st != napi.NumberExpected {
		t.Fatalf("string as number = %v", st)
	}
	var info napi.ExtendedErrorInfo
	f.api.GetLastErrorInfo(f.id, &info)
	if info.ErrorCode != napi.NumberExpected {
		t.Fatalf("last error = %v", info.ErrorCode)
	}
}

func TestStringUTF8RoundTrip(t *testing.T) {
	f := newFixture(t)

	for _, s := range []string{"", "plain", "ünïcødé 手纸", "a\x00b"} {
		h := f.mustString(t, s)

		// Length query with nil buffer.
		var total int
		if st := f.api.GetValueStringUTF8(f.id, h, nil, &total); st != napi.OK {
			t.Fatalf("%q length query: %v", s, st)
		}
		if total != len(s) {
			t.Fatalf("%q total = %d, want %d", s, total, len(s))
		}

		// Full copy.
		buf := make([]byte, total+1)
		var copied int
		if st := f.api.GetValueStringUTF8(f.id, h, buf, &copied); st != napi.OK {
			t.Fatalf("%q copy: %v", s, st)
		}
		if string(buf[:copied]) != s {
			t.Fatalf("round-trip %q -> %q", s, buf[:copied])
		}
		if buf[copied] != 0 {
			t.Fatal("missing NUL terminator")
		}
	}

	// Truncation when the buffer is short.
	h := f.mustString(t, "truncate-me")
	short := make([]byte, 5)
	var copied int
	f.api.GetValueStringUTF8(f.id, h, short, &copied)
	if copied != 4 || string(short[:4]) != "trun" || short[4] != 0 {
		t.Fatalf("truncation: %d %q", copied, short)
	}
}

func TestTypeofAndPredicates(t *testing.T) {
	f := newFixture(t)

	var vt napi.ValueType
	f.api.TypeOf(f.id, napi.HandleUndefined, &vt)
	if vt != napi.TypeUndefined {
		t.Error("undefined")
	}
	f.api.TypeOf(f.id, f.mustNumber(t, 1), &vt)
	if vt != napi.TypeNumber {
		t.Error("number")
	}
	f.api.TypeOf(f.id, f.mustObject(t), &vt)
	if vt != napi.TypeObject {
		t.Error("object")
	}

	var arrH napi.Value
	f.api.CreateArray(f.id, &arrH)
	var isArr bool
	f.api.IsArray(f.id, arrH, &isArr)
	if !isArr {
		t.Error("is_array")
	}
	f.api.IsArray(f.id, f.mustObject(t), &isArr)
	if isArr {
		t.Error("object reported as array")
	}
}

func TestScopeGatesHandleCreation(t *testing.T) {
	ctx := env.NewContext()
	a := New(ctx, nil)
	e := ctx.CreateEnv("gate.node")

	// No scope open: producing a value fails with scope mismatch.
	var h napi.Value
	if st := a.CreateDouble(e.ID, 1, &h); st != napi.HandleScopeMismatch {
		t.Fatalf("no-scope create = %v", st)
	}
	// Singletons are exempt.
	if st := a.GetUndefined(e.ID, &h); st != napi.OK {
		t.Fatalf("singleton without scope = %v", st)
	}
}

func TestEscapableScopeThroughAPI(t *testing.T) {
	f := newFixture(t)

	var esc napi.EscapableHandleScope
	if st := f.api.OpenEscapableHandleScope(f.id, &esc); st != napi.OK {
		t.Fatal(st)
	}
	inner := f.mustString(t, "escapee")
	var promoted napi.Value
	if st := f.api.EscapeHandle(f.id, esc, inner, &promoted); st != napi.OK {
		t.Fatalf("escape = %v", st)
	}
	var again napi.Value
	if st := f.api.EscapeHandle(f.id, esc, inner, &again); st != napi.EscapeCalledTwice {
		t.Fatalf("second escape = %v", st)
	}
	if st := f.api.CloseEscapableHandleScope(f.id, esc); st != napi.OK {
		t.Fatal(st)
	}

	var buf [16]byte
	var n int
	if st := f.api.GetValueStringUTF8(f.id, promoted, buf[:], &n); st != napi.OK || string(buf[:n]) != "escapee" {
		t.Fatalf("promoted handle dead: %v %q", st, buf[:n])
	}
}

func TestPropertyOperations(t *testing.T) {
	f := newFixture(t)
	obj := f.mustObject(t)

	if st := f.api.SetNamedProperty(f.id, obj, "answer", f.mustNumber(t, 42)); st != napi.OK {
		t.Fatal(st)
	}
	var got napi.Value
	if st := f.api.GetNamedProperty(f.id, obj, "answer", &got); st != napi.OK {
		t.Fatal(st)
	}
	var d float64
	if f.api.GetValueDouble(f.id, got, &d) != napi.OK || d != 42 {
		t.Fatal("value lost")
	}

	var has bool
	f.api.HasNamedProperty(f.id, obj, "answer", &has)
	if !has {
		t.Error("has")
	}

	key := f.mustString(t, "answer")
	var deleted bool
	f.api.DeleteProperty(f.id, obj, key, &deleted)
	if !deleted {
		t.Error("delete")
	}
	f.api.HasProperty(f.id, obj, key, &has)
	if has {
		t.Error("still has after delete")
	}

	// Property ops on a primitive fail ObjectExpected.
	if st := f.api.SetNamedProperty(f.id, f.mustNumber(t, 1), "x", obj); st != napi.ObjectExpected {
		t.Fatalf("primitive set = %v", st)
	}
}

func TestElementsAndPropertyNames(t *testing.T) {
	f := newFixture(t)

	var arr napi.Value
	f.api.CreateArrayWithLength(f.id, 2, &arr)
	f.api.SetElement(f.id, arr, 0, f.mustString(t, "a"))
	f.api.SetElement(f.id, arr, 5, f.mustString(t, "b"))

	var length uint32
	f.api.GetArrayLength(f.id, arr, &length)
	if length != 6 {
		t.Fatalf("length = %d", length)
	}
	var el napi.Value
	f.api.GetElement(f.id, arr, 5, &el)
	var buf [8]byte
	var n int
	f.api.GetValueStringUTF8(f.id, el, buf[:], &n)
	if string(buf[:n]) != "b" {
		t.Fatal("element lost")
	}

	obj := f.mustObject(t)
	f.api.SetNamedProperty(f.id, obj, "first", f.mustNumber(t, 1))
	f.api.SetNamedProperty(f.id, obj, "second", f.mustNumber(t, 2))
	var names napi.Value
	if st := f.api.GetPropertyNames(f.id, obj, &names); st != napi.OK {
		t.Fatal(st)
	}
	var nameCount uint32
	f.api.GetArrayLength(f.id, names, &nameCount)
	if nameCount != 2 {
		t.Fatalf("names = %d", nameCount)
	}
}

func TestCreateFunctionAndTrampoline(t *testing.T) {
	f := newFixture(t)

	// add(a, b) implemented the way a native callback would be.
	add := func(envID napi.Env, info napi.CallbackInfo) napi.Value {
		argc := 2
		argv := make([]napi.Value, 2)
		var data uintptr
		if st := f.api.GetCbInfo(envID, info, &argc, argv, nil, &data); st != napi.OK {
			return napi.HandleHole
		}
		if data != 77 {
			t.Errorf("callback data = %d", data)
		}
		var x, y float64
		if f.api.GetValueDouble(envID, argv[0], &x) != napi.OK {
			return napi.HandleHole
		}
		if f.api.GetValueDouble(envID, argv[1], &y) != napi.OK {
			return napi.HandleHole
		}
		var out napi.Value
		f.api.CreateDouble(envID, x+y, &out)
		return out
	}

	var fnH napi.Value
	if st := f.api.CreateFunction(f.id, "add", add, 77, &fnH); st != napi.OK {
		t.Fatal(st)
	}

	args := []napi.Value{f.mustNumber(t, 2), f.mustNumber(t, 3)}
	var result napi.Value
	if st := f.api.CallFunction(f.id, napi.HandleUndefined, fnH, args, &result); st != napi.OK {
		t.Fatalf("call = %v", st)
	}
	var sum float64
	f.api.GetValueDouble(f.id, result, &sum)
	if sum != 5 {
		t.Fatalf("add(2,3) = %v", sum)
	}

	// Scope balance across the trampoline.
	if f.env.OpenScopes != 1 {
		t.Fatalf("open scopes after call = %d", f.env.OpenScopes)
	}
}

func TestTrampolinePadsMissingArgs(t *testing.T) {
	f := newFixture(t)

	var sawUndefined bool
	cb := func(envID napi.Env, info napi.CallbackInfo) napi.Value {
		argc := 3
		argv := make([]napi.Value, 3)
		f.api.GetCbInfo(envID, info, &argc, argv, nil, nil)
		if argc != 1 {
			t.Errorf("true argc = %d", argc)
		}
		sawUndefined = argv[1] == napi.HandleUndefined && argv[2] == napi.HandleUndefined
		return napi.HandleHole
	}

	var fnH napi.Value
	f.api.CreateFunction(f.id, "probe", cb, 0, &fnH)
	var out napi.Value
	f.api.CallFunction(f.id, napi.HandleUndefined, fnH, []napi.Value{f.mustNumber(t, 1)}, &out)
	if !sawUndefined {
		t.Fatal("missing args not padded with undefined")
	}
	if out != napi.HandleUndefined {
		t.Fatal("hole return did not map to undefined")
	}
}

func TestExceptionRoundTrip(t *testing.T) {
	f := newFixture(t)

	thrower := func(envID napi.Env, info napi.CallbackInfo) napi.Value {
		f.api.ThrowTypeError(envID, "E_ARG", "bad")
		return napi.HandleHole
	}
	var fnH napi.Value
	f.api.CreateFunction(f.id, "thrower", thrower, 0, &fnH)

	var out napi.Value
	st := f.api.CallFunction(f.id, napi.HandleUndefined, fnH, nil, &out)
	if st != napi.PendingException {
		t.Fatalf("call with throw = %v", st)
	}

	var pending bool
	f.api.IsExceptionPending(f.id, &pending)
	if !pending {
		t.Fatal("exception not pending")
	}

	// Script-running entry points short-circuit until drained.
	if st := f.api.CallFunction(f.id, napi.HandleUndefined, fnH, nil, &out); st != napi.PendingException {
		t.Fatalf("short-circuit = %v", st)
	}
	// Pure queries are exempt.
	var vt napi.ValueType
	if st := f.api.TypeOf(f.id, napi.HandleUndefined, &vt); st != napi.OK {
		t.Fatalf("query during pending = %v", st)
	}

	var exc napi.Value
	if st := f.api.GetAndClearLastException(f.id, &exc); st != napi.OK {
		t.Fatal(st)
	}
	f.api.IsExceptionPending(f.id, &pending)
	if pending {
		t.Fatal("still pending after drain")
	}

	v, _ := f.env.Store.Get(exc)
	errVal, ok := v.(*value.Error)
	if !ok || errVal.Kind != value.TypeError || errVal.Code != "E_ARG" || errVal.Message != "bad" {
		t.Fatalf("exception = %#v", v)
	}
}

func TestDefineClassCounter(t *testing.T) {
	f := newFixture(t)

	// class Counter { constructor() { this.count = 0 }
	//                 increment() { this.count++ }
	//                 get value() { return this.count }
	//                 static describe() { return "counter" } }
	ctor := func(envID napi.Env, info napi.CallbackInfo) napi.Value {
		var this napi.Value
		f.api.GetCbInfo(envID, info, nil, nil, &this, nil)
		var newTarget napi.Value
		f.api.GetNewTarget(envID, info, &newTarget)
		if newTarget == napi.HandleHole {
			t.Error("constructor saw no new-target")
		}
		var zero napi.Value
		f.api.CreateDouble(envID, 0, &zero)
		f.api.SetNamedProperty(envID, this, "count", zero)
		return napi.HandleHole
	}
	increment := func(envID napi.Env, info napi.CallbackInfo) napi.Value {
		var this napi.Value
		f.api.GetCbInfo(envID, info, nil, nil, &this, nil)
		var cur napi.Value
		f.api.GetNamedProperty(envID, this, "count", &cur)
		var n float64
		f.api.GetValueDouble(envID, cur, &n)
		var next napi.Value
		f.api.CreateDouble(envID, n+1, &next)
		f.api.SetNamedProperty(envID, this, "count", next)
		return napi.HandleHole
	}
	getter := func(envID napi.Env, info napi.CallbackInfo) napi.Value {
		var this napi.Value
		f.api.GetCbInfo(envID, info, nil, nil, &this, nil)
		var cur napi.Value
		f.api.GetNamedProperty(envID, this, "count", &cur)
		return cur
	}
	describe := func(envID napi.Env, info napi.CallbackInfo) napi.Value {
		var s napi.Value
		f.api.CreateStringUTF8(envID, "counter", &s)
		return s
	}

	props := []napi.PropertyDescriptor{
		{UTF8Name: "increment", Method: increment, Attributes: napi.DefaultMethod},
		{UTF8Name: "value", Getter: getter, Attributes: napi.Configurable},
		{UTF8Name: "describe", Method: describe, Attributes: napi.DefaultMethod | napi.Static},
	}

	var classH napi.Value
	if st := f.api.DefineClass(f.id, "Counter", ctor, 0, props, &classH); st != napi.OK {
		t.Fatalf("define class = %v", st)
	}

	var instance napi.Value
	if st := f.api.NewInstance(f.id, classH, nil, &instance); st != napi.OK {
		t.Fatalf("new = %v", st)
	}

	var incH napi.Value
	if st := f.api.GetNamedProperty(f.id, instance, "increment", &incH); st != napi.OK {
		t.Fatalf("method lookup = %v", st)
	}
	for i := 0; i < 3; i++ {
		var out napi.Value
		if st := f.api.CallFunction(f.id, instance, incH, nil, &out); st != napi.OK {
			t.Fatalf("increment = %v", st)
		}
	}

	var valH napi.Value
	if st := f.api.GetNamedProperty(f.id, instance, "value", &valH); st != napi.OK {
		t.Fatalf("getter = %v", st)
	}
	var n float64
	f.api.GetValueDouble(f.id, valH, &n)
	if n != 3 {
		t.Fatalf("value = %v, want 3", n)
	}

	// Static lands on the constructor, not the instance.
	var descH napi.Value
	if st := f.api.GetNamedProperty(f.id, classH, "describe", &descH); st != napi.OK {
		t.Fatalf("static lookup = %v", st)
	}
	var isFn bool
	f.api.IsFunction(f.id, descH, &isFn)
	if !isFn {
		t.Fatal("static method missing on constructor")
	}
	var instDesc napi.Value
	f.api.GetNamedProperty(f.id, instance, "describe", &instDesc)
	if instDesc != napi.HandleUndefined {
		t.Fatal("static method leaked onto instances")
	}
}

func TestPlainCallHasNoNewTarget(t *testing.T) {
	f := newFixture(t)

	var sawTarget napi.Value = 99
	cb := func(envID napi.Env, info napi.CallbackInfo) napi.Value {
		f.api.GetNewTarget(envID, info, &sawTarget)
		return napi.HandleHole
	}
	var classH napi.Value
	f.api.DefineClass(f.id, "C", cb, 0, nil, &classH)

	var out napi.Value
	f.api.CallFunction(f.id, napi.HandleUndefined, classH, nil, &out)
	if sawTarget != napi.HandleHole {
		t.Fatalf("plain call new-target = %d", sawTarget)
	}
}

func TestWrapUnwrapRemoveWrap(t *testing.T) {
	f := newFixture(t)
	obj := f.mustObject(t)

	finalized := 0
	fin := func(envID napi.Env, data, hint uintptr) { finalized++ }

	if st := f.api.Wrap(f.id, obj, 0xBEEF, fin, 0, nil); st != napi.OK {
		t.Fatalf("wrap = %v", st)
	}
	// Double wrap fails.
	if st := f.api.Wrap(f.id, obj, 0xF00D, nil, 0, nil); st != napi.InvalidArg {
		t.Fatalf("double wrap = %v", st)
	}

	var ptr uintptr
	if st := f.api.Unwrap(f.id, obj, &ptr); st != napi.OK || ptr != 0xBEEF {
		t.Fatalf("unwrap = %v, %x", st, ptr)
	}

	ptr = 0
	if st := f.api.RemoveWrap(f.id, obj, &ptr); st != napi.OK || ptr != 0xBEEF {
		t.Fatalf("remove wrap = %v, %x", st, ptr)
	}
	if finalized != 0 {
		t.Fatal("remove_wrap ran the finalizer")
	}
	if st := f.api.Unwrap(f.id, obj, &ptr); st != napi.InvalidArg {
		t.Fatalf("unwrap after remove = %v", st)
	}

	// Rewrap works after removal.
	if st := f.api.Wrap(f.id, obj, 0xF00D, nil, 0, nil); st != napi.OK {
		t.Fatalf("rewrap = %v", st)
	}
}

func TestWrapFinalizerOnTeardown(t *testing.T) {
	f := newFixture(t)
	obj := f.mustObject(t)

	finalized := 0
	var got uintptr
	f.api.Wrap(f.id, obj, 0xCAFE, func(envID napi.Env, data, hint uintptr) {
		finalized++
		got = data
	}, 0, nil)

	f.api.CloseHandleScope(f.id, f.scope)
	f.env.Teardown()
	if finalized != 1 || got != 0xCAFE {
		t.Fatalf("teardown finalization: %d, %x", finalized, got)
	}
}

func TestReferencesThroughAPI(t *testing.T) {
	f := newFixture(t)
	obj := f.mustObject(t)

	var ref napi.Ref
	if st := f.api.CreateReference(f.id, obj, 1, &ref); st != napi.OK {
		t.Fatal(st)
	}
	var count uint32
	f.api.ReferenceRef(f.id, ref, &count)
	if count != 2 {
		t.Fatalf("ref = %d", count)
	}
	f.api.ReferenceUnref(f.id, ref, &count)
	if count != 1 {
		t.Fatalf("unref = %d", count)
	}

	var h napi.Value
	if st := f.api.GetReferenceValue(f.id, ref, &h); st != napi.OK || h == napi.HandleHole {
		t.Fatalf("get value = %v, %d", st, h)
	}

	if st := f.api.DeleteReference(f.id, ref); st != napi.OK {
		t.Fatal(st)
	}
	if st := f.api.GetReferenceValue(f.id, ref, &h); st != napi.InvalidArg {
		t.Fatalf("deleted ref read = %v", st)
	}
}

func TestStrongReferenceSurvivesScopeClose(t *testing.T) {
	f := newFixture(t)

	var inner napi.HandleScope
	f.api.OpenHandleScope(f.id, &inner)
	obj := f.mustObject(t)
	var ref napi.Ref
	f.api.CreateReference(f.id, obj, 1, &ref)
	f.api.CloseHandleScope(f.id, inner)

	// The original handle died with its scope, but the reference still
	// reaches the value.
	var h napi.Value
	if st := f.api.GetReferenceValue(f.id, ref, &h); st != napi.OK || h == napi.HandleHole {
		t.Fatalf("reference lost its target: %v, %d", st, h)
	}
	var isObj napi.ValueType
	f.api.TypeOf(f.id, h, &isObj)
	if isObj != napi.TypeObject {
		t.Fatal("wrong value behind reference")
	}
}

func TestPromiseLifecycle(t *testing.T) {
	f := newFixture(t)

	var deferred napi.Deferred
	var promiseH napi.Value
	if st := f.api.CreatePromise(f.id, &deferred, &promiseH); st != napi.OK {
		t.Fatal(st)
	}

	var isP bool
	f.api.IsPromise(f.id, promiseH, &isP)
	if !isP {
		t.Fatal("is_promise")
	}

	if st := f.api.ResolveDeferred(f.id, deferred, f.mustNumber(t, 42)); st != napi.OK {
		t.Fatalf("resolve = %v", st)
	}

	v, _ := f.env.Store.Get(promiseH)
	p := v.(*value.Promise)
	if p.State() != value.Fulfilled || p.Result() != 42.0 {
		t.Fatalf("promise state = %v, %v", p.State(), p.Result())
	}

	// Settling the consumed deferred fails.
	if st := f.api.RejectDeferred(f.id, deferred, f.mustNumber(t, 1)); st != napi.InvalidArg {
		t.Fatalf("second settle = %v", st)
	}
}

func TestInstanceDataThroughAPI(t *testing.T) {
	f := newFixture(t)

	if st := f.api.SetInstanceData(f.id, 123, nil, 0); st != napi.OK {
		t.Fatal(st)
	}
	var got uintptr
	if st := f.api.GetInstanceData(f.id, &got); st != napi.OK || got != 123 {
		t.Fatalf("instance data = %v, %d", st, got)
	}
}

func TestArrayBufferThroughAPI(t *testing.T) {
	f := newFixture(t)

	var backing []byte
	var bufH napi.Value
	if st := f.api.CreateArrayBuffer(f.id, 16, &backing, &bufH); st != napi.OK {
		t.Fatal(st)
	}
	if len(backing) != 16 {
		t.Fatalf("backing = %d", len(backing))
	}
	backing[0] = 0xAB

	var taH napi.Value
	if st := f.api.CreateTypedArray(f.id, napi.Uint8Array, 8, bufH, 0, &taH); st != napi.OK {
		t.Fatalf("typed array = %v", st)
	}
	var kind napi.TypedArrayType
	var length int
	var data []byte
	var owner napi.Value
	var offset int
	if st := f.api.GetTypedArrayInfo(f.id, taH, &kind, &length, &data, &owner, &offset); st != napi.OK {
		t.Fatal(st)
	}
	if kind != napi.Uint8Array || length != 8 || data[0] != 0xAB {
		t.Fatal("typed array info")
	}

	// Out-of-bounds view fails.
	var bad napi.Value
	if st := f.api.CreateTypedArray(f.id, napi.Float64Array, 3, bufH, 0, &bad); st != napi.InvalidArg {
		t.Fatalf("oversized view = %v", st)
	}

	if st := f.api.DetachArrayBuffer(f.id, bufH); st != napi.OK {
		t.Fatal(st)
	}
	var detached bool
	f.api.IsDetachedArrayBuffer(f.id, bufH, &detached)
	if !detached {
		t.Fatal("not detached")
	}
	// Detaching twice fails: no longer detachable.
	if st := f.api.DetachArrayBuffer(f.id, bufH); st != napi.DetachableArrayBufferExpected {
		t.Fatalf("double detach = %v", st)
	}
}

func TestStatusLastErrorAgreement(t *testing.T) {
	f := newFixture(t)

	// Drive several failure shapes; after each, last_error agrees.
	var b bool
	var n float64
	checks := []func() napi.Status{
		func() napi.Status { return f.api.GetValueBool(f.id, f.mustNumber(t, 1), &b) },
		func() napi.Status { return f.api.GetValueDouble(f.id, f.mustString(t, "x"), &n) },
		func() napi.Status { var h napi.Value; return f.api.GetNamedProperty(f.id, f.mustNumber(t, 1), "k", &h) },
		func() napi.Status { return f.api.DeleteReference(f.id, napi.Ref(9999)) },
	}
	for i, run := range checks {
		st := run()
		if st == napi.OK {
			t.Fatalf("check %d unexpectedly ok", i)
		}
		var info napi.ExtendedErrorInfo
		f.api.GetLastErrorInfo(f.id, &info)
		if info.ErrorCode != st {
			t.Fatalf("check %d: status %v but last error %v", i, st, info.ErrorCode)
		}
	}

	// A following success clears the record.
	var h napi.Value
	if st := f.api.CreateDouble(f.id, 1, &h); st != napi.OK {
		t.Fatal(st)
	}
	var info napi.ExtendedErrorInfo
	f.api.GetLastErrorInfo(f.id, &info)
	if info.ErrorCode != napi.OK {
		t.Fatalf("record not cleared: %v", info.ErrorCode)
	}
}

func TestTypeTag(t *testing.T) {
	f := newFixture(t)
	obj := f.mustObject(t)

	tag := napi.TypeTag{Lower: 0x0123456789ABCDEF, Upper: 0xFEDCBA9876543210}
	other := napi.TypeTag{Lower: 1, Upper: 2}

	if st := f.api.TypeTagObject(f.id, obj, &tag); st != napi.OK {
		t.Fatal(st)
	}
	if st := f.api.TypeTagObject(f.id, obj, &tag); st != napi.InvalidArg {
		t.Fatalf("double tag = %v", st)
	}

	var matches bool
	f.api.CheckObjectTypeTag(f.id, obj, &tag, &matches)
	if !matches {
		t.Fatal("tag mismatch")
	}
	f.api.CheckObjectTypeTag(f.id, obj, &other, &matches)
	if matches {
		t.Fatal("wrong tag matched")
	}
}

func TestCoercions(t *testing.T) {
	f := newFixture(t)

	var out napi.Value
	f.api.CoerceToBool(f.id, f.mustString(t, "x"), &out)
	if out != napi.HandleTrue {
		t.Error("truthy string")
	}
	f.api.CoerceToBool(f.id, napi.HandleNull, &out)
	if out != napi.HandleFalse {
		t.Error("null")
	}

	f.api.CoerceToNumber(f.id, f.mustString(t, "42"), &out)
	var n float64
	f.api.GetValueDouble(f.id, out, &n)
	if n != 42 {
		t.Error("string to number")
	}

	f.api.CoerceToString(f.id, f.mustNumber(t, 3), &out)
	var buf [8]byte
	var c int
	f.api.GetValueStringUTF8(f.id, out, buf[:], &c)
	if string(buf[:c]) != "3" {
		t.Errorf("number to string = %q", buf[:c])
	}
}
