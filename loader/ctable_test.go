//go:build linux || darwin

package loader

import (
	"testing"
	"unsafe"

	"github.com/wippyai/napi-runtime/napi"
)

func TestGoString(t *testing.T) {
	raw := []byte("hello\x00trailing")
	got := goString(uintptr(unsafe.Pointer(&raw[0])))
	if got != "hello" {
		t.Fatalf("goString = %q", got)
	}
	if goString(0) != "" {
		t.Fatal("nil pointer")
	}
}

func TestPokePeek(t *testing.T) {
	var slot uintptr
	pokePtr(uintptr(unsafe.Pointer(&slot)), 42)
	if slot != 42 || peekPtr(uintptr(unsafe.Pointer(&slot))) != 42 {
		t.Fatal("ptr round-trip")
	}

	var f float64
	pokeF64(uintptr(unsafe.Pointer(&f)), 3.5)
	if f != 3.5 {
		t.Fatal("f64")
	}

	var b byte = 7
	pokeBool(uintptr(unsafe.Pointer(&b)), true)
	if b != 1 {
		t.Fatal("bool")
	}

	// Null out-pointers are ignored.
	pokePtr(0, 1)
	pokeBool(0, true)
}

func TestHandleSlice(t *testing.T) {
	raw := []uintptr{10, 20, 30}
	hs := toHandles(uintptr(unsafe.Pointer(&raw[0])), 3)
	if len(hs) != 3 || hs[0] != 10 || hs[2] != 30 {
		t.Fatalf("handles = %v", hs)
	}
	if toHandles(0, 3) != nil || len(toHandles(uintptr(unsafe.Pointer(&raw[0])), 0)) != 0 {
		t.Fatal("edge cases")
	}
}

func TestReadDescriptors(t *testing.T) {
	// One descriptor in the C layout: 8 pointer-sized fields with the
	// attributes word at offset 48.
	name := []byte("method\x00")
	var buf [64]byte
	*(*uintptr)(unsafe.Pointer(&buf[0])) = uintptr(unsafe.Pointer(&name[0]))
	*(*uintptr)(unsafe.Pointer(&buf[40])) = uintptr(napi.HandleTrue)
	*(*uint32)(unsafe.Pointer(&buf[48])) = uint32(napi.DefaultMethod | napi.Static)
	*(*uintptr)(unsafe.Pointer(&buf[56])) = 0xD0

	descs := readDescriptors(uintptr(unsafe.Pointer(&buf[0])), 1)
	if len(descs) != 1 {
		t.Fatal("count")
	}
	d := descs[0]
	if d.UTF8Name != "method" {
		t.Errorf("name = %q", d.UTF8Name)
	}
	if d.Value != napi.HandleTrue {
		t.Errorf("value = %d", d.Value)
	}
	if d.Attributes != napi.DefaultMethod|napi.Static {
		t.Errorf("attributes = %d", d.Attributes)
	}
	if d.Data != 0xD0 {
		t.Errorf("data = %x", d.Data)
	}
	if d.Method != nil {
		t.Error("null method pointer produced a callback")
	}
}
