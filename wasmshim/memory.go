package wasmshim

import (
	"github.com/tetratelabs/wazero/api"
)

// Guest-memory accessors. Out-pointers from the guest may be 0 (NULL);
// every writer treats that as "caller does not want this output", the
// same contract the C shim has.

func rdU32(m api.Memory, ptr uint32) uint32 {
	v, _ := m.ReadUint32Le(ptr)
	return v
}

func wrU32(m api.Memory, ptr, v uint32) {
	if ptr != 0 {
		m.WriteUint32Le(ptr, v)
	}
}

func wrU64(m api.Memory, ptr uint32, v uint64) {
	if ptr != 0 {
		m.WriteUint64Le(ptr, v)
	}
}

func wrF64(m api.Memory, ptr uint32, v float64) {
	if ptr != 0 {
		m.WriteFloat64Le(ptr, v)
	}
}

func wrI32(m api.Memory, ptr uint32, v int32) {
	wrU32(m, ptr, uint32(v))
}

func wrBool(m api.Memory, ptr uint32, v bool) {
	if ptr != 0 {
		b := byte(0)
		if v {
			b = 1
		}
		m.WriteByte(ptr, b)
	}
}

// cstring copies a NUL-terminated guest string.
func cstring(m api.Memory, ptr uint32) string {
	if ptr == 0 {
		return ""
	}
	var out []byte
	for p := ptr; ; p++ {
		b, ok := m.ReadByte(p)
		if !ok || b == 0 {
			break
		}
		out = append(out, b)
	}
	return string(out)
}

// bytesAt copies length guest bytes.
func bytesAt(m api.Memory, ptr, length uint32) []byte {
	if ptr == 0 || length == 0 {
		return nil
	}
	raw, ok := m.Read(ptr, length)
	if !ok {
		return nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out
}

// stringAt copies a guest string with explicit or auto (NAPI_AUTO_LENGTH
// = ^0) length.
func stringAt(m api.Memory, ptr, length uint32) string {
	if length == ^uint32(0) {
		return cstring(m, ptr)
	}
	return string(bytesAt(m, ptr, length))
}

// handlesAt reads an argv array of i32 handles.
func handlesAt(m api.Memory, ptr, count uint32) []uint32 {
	if ptr == 0 || count == 0 {
		return nil
	}
	out := make([]uint32, count)
	for i := uint32(0); i < count; i++ {
		out[i] = rdU32(m, ptr+i*4)
	}
	return out
}
