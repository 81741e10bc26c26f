package handle

import (
	"testing"

	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/value"
)

func TestSingletons(t *testing.T) {
	s := NewStore(0)

	v, ok := s.Get(napi.HandleUndefined)
	if !ok || !value.IsUndefined(v) {
		t.Fatal("undefined singleton")
	}
	if v, _ := s.Get(napi.HandleNull); v != nil {
		t.Fatal("null singleton")
	}
	if v, _ := s.Get(napi.HandleTrue); v != true {
		t.Fatal("true singleton")
	}
	if v, _ := s.Get(napi.HandleFalse); v != false {
		t.Fatal("false singleton")
	}
	if v, _ := s.Get(napi.HandleGlobal); v != s.Global() {
		t.Fatal("global singleton")
	}
	if v, _ := s.Get(napi.HandleEmptyString); v != "" {
		t.Fatal("empty string singleton")
	}
}

func TestInternSingletonIdentity(t *testing.T) {
	s := NewStore(0)
	if s.Intern(nil) != napi.HandleNull {
		t.Error("null")
	}
	if s.Intern(true) != napi.HandleTrue || s.Intern(false) != napi.HandleFalse {
		t.Error("booleans")
	}
	if s.Intern("") != napi.HandleEmptyString {
		t.Error("empty string")
	}
	if s.Intern(value.Undefined) != napi.HandleUndefined {
		t.Error("undefined")
	}
	if s.Intern(s.Global()) != napi.HandleGlobal {
		t.Error("global")
	}
	if s.Intern("x") < napi.MinHandleID {
		t.Error("ordinary string landed in reserved range")
	}
}

func TestPushGetErase(t *testing.T) {
	s := NewStore(0)
	start := s.Next()

	ids := make([]napi.Value, 100)
	for i := range ids {
		ids[i] = s.Push(float64(i))
	}
	for i, id := range ids {
		v, ok := s.Get(id)
		if !ok || v != float64(i) {
			t.Fatalf("Get(%d) = %v, %v", id, v, ok)
		}
	}

	s.Erase(start, s.Next())
	if _, ok := s.Get(ids[0]); ok {
		t.Fatal("erased handle still live")
	}
	if s.Next() != start {
		t.Fatal("cursor not rewound")
	}

	// Reserved range is untouched by erase.
	if _, ok := s.Get(napi.HandleGlobal); !ok {
		t.Fatal("erase reached the singletons")
	}
}

func TestReleaseReuse(t *testing.T) {
	s := NewStore(0)
	a := s.Push("a")
	b := s.Push("b")
	s.Release(a)
	if _, ok := s.Get(a); ok {
		t.Fatal("released handle still live")
	}
	c := s.Push("c")
	if c != a {
		t.Fatalf("free ID not reused: got %d want %d", c, a)
	}
	if v, _ := s.Get(b); v != "b" {
		t.Fatal("unrelated handle disturbed")
	}
}

func TestScopeLifecycle(t *testing.T) {
	s := NewStore(0)
	st := NewStack(s)

	if !st.AtRoot() || st.Depth() != 0 {
		t.Fatal("initial stack state")
	}

	outer := st.Open(false)
	h1 := outer.Add("one")
	inner := st.Open(false)
	h2 := inner.Add("two")

	if st.Depth() != 2 {
		t.Fatal("depth")
	}

	// Closing out of order fails.
	if got := st.Close(outer); got != napi.HandleScopeMismatch {
		t.Fatalf("out-of-order close = %v", got)
	}

	if got := st.Close(inner); got != napi.OK {
		t.Fatalf("close inner = %v", got)
	}
	if _, ok := s.Get(h2); ok {
		t.Fatal("inner handle survived close")
	}
	if v, ok := s.Get(h1); !ok || v != "one" {
		t.Fatal("outer handle dropped by inner close")
	}

	if got := st.Close(outer); got != napi.OK {
		t.Fatalf("close outer = %v", got)
	}
	if !st.AtRoot() {
		t.Fatal("not back at root")
	}

	// Closing the root is a mismatch.
	if got := st.Close(st.Current()); got != napi.HandleScopeMismatch {
		t.Fatalf("root close = %v", got)
	}
}

func TestScopeBalanceProperty(t *testing.T) {
	// Any well-balanced open/close sequence succeeds and restores state.
	s := NewStore(0)
	st := NewStack(s)
	next := s.Next()

	var open []*Scope
	seq := []int{+1, +1, -1, +1, +1, -1, -1, -1, +1, -1}
	for _, op := range seq {
		if op > 0 {
			sc := st.Open(false)
			sc.Add("v")
			open = append(open, sc)
		} else {
			sc := open[len(open)-1]
			open = open[:len(open)-1]
			if got := st.Close(sc); got != napi.OK {
				t.Fatalf("balanced close failed: %v", got)
			}
		}
	}
	if !st.AtRoot() || s.Next() != next {
		t.Fatal("stack or cursor not restored")
	}
}

func TestEscapeUniqueness(t *testing.T) {
	s := NewStore(0)
	st := NewStack(s)

	outer := st.Open(false)
	esc := st.Open(true)
	h := esc.Add("payload")

	promoted, status := esc.Escape(h)
	if status != napi.OK {
		t.Fatalf("escape = %v", status)
	}

	// Second escape fails regardless of argument.
	if _, status := esc.Escape(esc.Add("other")); status != napi.EscapeCalledTwice {
		t.Fatalf("second escape = %v", status)
	}

	if got := st.Close(esc); got != napi.OK {
		t.Fatal("close escapable")
	}

	// The promoted handle survives in the parent scope.
	v, ok := s.Get(promoted)
	if !ok || v != "payload" {
		t.Fatalf("promoted handle lost: %v, %v", v, ok)
	}
	if !outer.Owns(promoted) {
		t.Fatal("parent does not own promoted handle")
	}

	st.Close(outer)
	if _, ok := s.Get(promoted); ok {
		t.Fatal("promoted handle survived parent close")
	}
}

func TestEscapeForeignHandle(t *testing.T) {
	s := NewStore(0)
	st := NewStack(s)

	outer := st.Open(false)
	foreign := outer.Add("outer value")
	esc := st.Open(true)

	if _, status := esc.Escape(foreign); status != napi.InvalidArg {
		t.Fatalf("escaping foreign handle = %v", status)
	}
	st.Close(esc)
	st.Close(outer)
}

func TestScopeReuseClearsCallbackInfo(t *testing.T) {
	s := NewStore(0)
	st := NewStack(s)

	sc := st.Open(false)
	sc.CallbackInfo.Args = []any{1.0, 2.0}
	st.Close(sc)

	sc2 := st.Open(false)
	if sc2 != sc {
		t.Fatal("expected scope reuse")
	}
	if sc2.CallbackInfo.Args != nil {
		t.Fatal("callback info leaked across reuse")
	}
	st.Close(sc2)
}
