//go:build linux || darwin

package loader

import "unsafe"

// Raw-pointer helpers for the C side of the table. Every pointer here
// came across the ABI from native code; the runtime never manufactures
// them.

func peekPtr(p uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(p))
}

func pokePtr(p, v uintptr) {
	if p != 0 {
		*(*uintptr)(unsafe.Pointer(p)) = v
	}
}

func pokeU32(p uintptr, v uint32) {
	if p != 0 {
		*(*uint32)(unsafe.Pointer(p)) = v
	}
}

func pokeI32(p uintptr, v int32) {
	if p != 0 {
		*(*int32)(unsafe.Pointer(p)) = v
	}
}

func pokeI64(p uintptr, v int64) {
	if p != 0 {
		*(*int64)(unsafe.Pointer(p)) = v
	}
}

func pokeF64(p uintptr, v float64) {
	if p != 0 {
		*(*float64)(unsafe.Pointer(p)) = v
	}
}

func pokeBool(p uintptr, v bool) {
	if p != 0 {
		b := byte(0)
		if v {
			b = 1
		}
		*(*byte)(unsafe.Pointer(p)) = b
	}
}

// goString copies a NUL-terminated C string.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}

// goBytes aliases length bytes of native memory. Callers copy when the
// data must outlive the call.
func goBytes(p uintptr, length int) []byte {
	if p == 0 || length <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), length)
}

// handleSlice reads an argv array of pointer-sized handles.
func handleSlice(p uintptr, count int) []uintptr {
	if p == 0 || count <= 0 {
		return nil
	}
	return unsafe.Slice((*uintptr)(unsafe.Pointer(p)), count)
}
