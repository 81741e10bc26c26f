package value

import (
	"math"
	"testing"
)

func TestTypeOf(t *testing.T) {
	cases := []struct {
		v    any
		want Type
	}{
		{Undefined, TypeUndefined},
		{nil, TypeNull},
		{true, TypeBoolean},
		{3.14, TypeNumber},
		{"hi", TypeString},
		{&Symbol{Description: "s"}, TypeSymbol},
		{NewObject(), TypeObject},
		{NewFunction("f", nil), TypeFunction},
		{&External{Data: 1}, TypeExternal},
		{int64(9), TypeBigInt},
		{NewArray(0), TypeObject},
		{NewError(TypeError, "", "x"), TypeObject},
	}
	for _, c := range cases {
		if got := TypeOf(c.v); got != c.want {
			t.Errorf("TypeOf(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestStrictEquals(t *testing.T) {
	o := NewObject()
	if !StrictEquals(Undefined, Undefined) {
		t.Error("undefined === undefined")
	}
	if !StrictEquals(nil, nil) {
		t.Error("null === null")
	}
	if StrictEquals(nil, Undefined) {
		t.Error("null !== undefined")
	}
	if !StrictEquals(1.5, 1.5) || StrictEquals(1.5, 2.5) {
		t.Error("number equality")
	}
	if StrictEquals(math.NaN(), math.NaN()) {
		t.Error("NaN !== NaN")
	}
	if !StrictEquals(o, o) || StrictEquals(o, NewObject()) {
		t.Error("object identity")
	}
	if StrictEquals("1", 1.0) {
		t.Error("cross-type")
	}
}

func TestTruthyAndCoercion(t *testing.T) {
	if Truthy(Undefined) || Truthy(nil) || Truthy(0.0) || Truthy("") || Truthy(math.NaN()) {
		t.Error("falsy values reported truthy")
	}
	if !Truthy(NewObject()) || !Truthy("x") || !Truthy(-1.0) {
		t.Error("truthy values reported falsy")
	}

	if ToNumber(true) != 1 || ToNumber(nil) != 0 || ToNumber("42") != 42 {
		t.Error("ToNumber basic")
	}
	if !math.IsNaN(ToNumber("nope")) || !math.IsNaN(ToNumber(Undefined)) {
		t.Error("ToNumber NaN cases")
	}

	if ToString(Undefined) != "undefined" || ToString(nil) != "null" {
		t.Error("ToString singletons")
	}
	if ToString(3.0) != "3" {
		t.Errorf("ToString(3.0) = %q", ToString(3.0))
	}
	if ToString(3.5) != "3.5" {
		t.Errorf("ToString(3.5) = %q", ToString(3.5))
	}
	if ToString(NewObject()) != "[object Object]" {
		t.Error("ToString object")
	}
}

func TestIntegerTruncation(t *testing.T) {
	if Int32(-1) != -1 || Uint32(-1) != math.MaxUint32 {
		t.Error("modular truncation of -1")
	}
	if Int32(math.NaN()) != 0 || Int32(math.Inf(1)) != 0 {
		t.Error("NaN/Inf to int32")
	}
	if Int32(1<<32+5) != 5 {
		t.Error("wraparound")
	}
	if Int64(math.NaN()) != 0 {
		t.Error("NaN to int64")
	}
	if Int64(1e300) != math.MaxInt64 {
		t.Error("clamp to max")
	}
}

func TestObjectProperties(t *testing.T) {
	o := NewObject()
	o.Set("a", 1.0)
	o.Set("b", "two")

	v, found, err := o.Get("a")
	if err != nil || !found || v != 1.0 {
		t.Fatalf("Get(a) = %v, %v, %v", v, found, err)
	}
	if _, found, _ := o.Get("missing"); found {
		t.Error("missing key reported found")
	}
	if got := o.Keys(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Keys() = %v", got)
	}

	if !o.Delete("a") || o.Has("a") {
		t.Error("delete")
	}

	// Non-configurable property refuses deletion.
	o.Define("locked", &Property{Value: 1.0, Writable: true})
	if o.Delete("locked") {
		t.Error("deleted non-configurable property")
	}
}

func TestObjectAccessors(t *testing.T) {
	o := NewObject()
	backing := 0.0
	o.Define("x", &Property{
		Get:        func(this any) (any, error) { return backing, nil },
		Set:        func(this, v any) error { backing = v.(float64); return nil },
		Enumerable: true,
	})

	if err := o.Set("x", 7.0); err != nil {
		t.Fatal(err)
	}
	v, _, err := o.Get("x")
	if err != nil || v != 7.0 {
		t.Fatalf("accessor round-trip: %v, %v", v, err)
	}
}

func TestPrototypeChain(t *testing.T) {
	proto := NewObject()
	proto.Set("inherited", 1.0)
	o := NewObject()
	o.SetProto(proto)

	v, found, _ := o.Get("inherited")
	if !found || v != 1.0 {
		t.Fatal("prototype lookup failed")
	}
	if !o.Has("inherited") || o.HasOwn("inherited") {
		t.Error("own/chain distinction")
	}

	// Assignment shadows instead of mutating the prototype.
	o.Set("inherited", 2.0)
	pv, _, _ := proto.Get("inherited")
	if pv != 1.0 {
		t.Error("assignment mutated prototype")
	}
}

func TestFreezeSeal(t *testing.T) {
	o := NewObject()
	o.Set("a", 1.0)
	o.Seal()
	o.Set("b", 2.0)
	if o.Has("b") {
		t.Error("sealed object accepted new property")
	}
	o.Set("a", 3.0)
	if v, _, _ := o.Get("a"); v != 3.0 {
		t.Error("sealed object should stay writable")
	}

	o.Freeze()
	o.Set("a", 4.0)
	if v, _, _ := o.Get("a"); v != 3.0 {
		t.Error("frozen object accepted write")
	}
}

func TestArray(t *testing.T) {
	a := NewArray(2)
	if len(a.Elems) != 2 || !IsUndefined(a.GetIndex(0)) {
		t.Fatal("initial fill")
	}
	a.SetIndex(5, "x")
	if len(a.Elems) != 6 || a.GetIndex(5) != "x" {
		t.Fatal("growth")
	}
	if !IsUndefined(a.GetIndex(100)) {
		t.Error("out of range read")
	}
}

func TestFunctionConstruct(t *testing.T) {
	var sawNewTarget *Function
	ctor := NewFunction("C", func(this any, args []any, newTarget *Function) (any, error) {
		sawNewTarget = newTarget
		this.(*Object).Set("arg", args[0])
		return Undefined, nil
	})

	inst, err := ctor.Construct([]any{42.0})
	if err != nil {
		t.Fatal(err)
	}
	if sawNewTarget != ctor {
		t.Error("new-target not the constructor")
	}
	obj := inst.(*Object)
	if v, _, _ := obj.Get("arg"); v != 42.0 {
		t.Error("constructor did not see instance")
	}
	if obj.Proto() != ctor.Prototype {
		t.Error("instance prototype")
	}

	// Plain call sees nil new-target.
	_, _ = ctor.Invoke(NewObject(), []any{1.0})
	if sawNewTarget != nil {
		t.Error("plain call leaked new-target")
	}
}

func TestPromiseSettlement(t *testing.T) {
	d, p := NewDeferred()
	var got any
	p.Then(func(v any) { got = v }, nil)

	if !d.Resolve(42.0) {
		t.Fatal("resolve failed")
	}
	if got != 42.0 || p.State() != Fulfilled || p.Result() != 42.0 {
		t.Fatal("fulfillment not observed")
	}
	if d.Reject("late") {
		t.Error("second settlement succeeded")
	}

	d2, p2 := NewDeferred()
	d2.Reject("boom")
	var rejected any
	p2.Then(nil, func(v any) { rejected = v })
	if rejected != "boom" {
		t.Error("late reaction on rejected promise")
	}
}

func TestArrayBufferDetach(t *testing.T) {
	b := NewArrayBuffer(8)
	ta := &TypedArray{ElemKind: 1, Buffer: b, Length: 8}
	if len(ta.Bytes()) != 8 {
		t.Fatal("view length")
	}
	if !b.Detach() {
		t.Fatal("detach failed")
	}
	if !b.Detached() || b.ByteLength() != 0 || ta.Bytes() != nil {
		t.Fatal("detach not observed")
	}

	ext := &ArrayBuffer{Data: []byte{1, 2}, External: true}
	if ext.Detach() {
		t.Error("external buffer detached")
	}
}

func TestThrownRoundTrip(t *testing.T) {
	errVal := NewError(TypeError, "E_ARG", "bad")
	err := Throw(errVal)
	if ThrownValue(err) != errVal {
		t.Fatal("thrown value lost")
	}
	if err.Error() != "TypeError [E_ARG]: bad" {
		t.Errorf("message = %q", err.Error())
	}

	plain := ThrownValue(Throw("just a string"))
	if plain != "just a string" {
		t.Error("non-error thrown value")
	}
}
