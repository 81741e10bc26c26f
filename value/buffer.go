package value

// ArrayBuffer is a byte store. External buffers alias caller-owned memory
// copied in at creation; Detach empties the store.
type ArrayBuffer struct {
	Data     []byte
	External bool
	detached bool
}

// NewArrayBuffer allocates a zeroed buffer.
func NewArrayBuffer(length int) *ArrayBuffer {
	return &ArrayBuffer{Data: make([]byte, length)}
}

// Detached reports whether the buffer has been detached.
func (b *ArrayBuffer) Detached() bool { return b.detached }

// Detach empties the buffer. External buffers are not detachable.
func (b *ArrayBuffer) Detach() bool {
	if b.External {
		return false
	}
	b.Data = nil
	b.detached = true
	return true
}

// ByteLength returns the current length; zero after detach.
func (b *ArrayBuffer) ByteLength() int { return len(b.Data) }

// TypedArray is a typed view over an ArrayBuffer. ElemKind uses the
// napi_typedarray_type numbering. Node Buffers are Uint8Array views with
// the IsBuffer flag set.
type TypedArray struct {
	ElemKind   int32
	Buffer     *ArrayBuffer
	ByteOffset int
	Length     int // element count
	IsBuffer   bool
}

// Bytes returns the view's byte window into the buffer, nil once detached.
func (t *TypedArray) Bytes() []byte {
	if t.Buffer == nil || t.Buffer.Detached() {
		return nil
	}
	end := t.ByteOffset + t.Length*elementSize(t.ElemKind)
	if end > len(t.Buffer.Data) {
		end = len(t.Buffer.Data)
	}
	if t.ByteOffset > end {
		return nil
	}
	return t.Buffer.Data[t.ByteOffset:end]
}

func elementSize(kind int32) int {
	switch kind {
	case 0, 1, 2: // int8, uint8, uint8-clamped
		return 1
	case 3, 4: // int16, uint16
		return 2
	case 5, 6, 7: // int32, uint32, float32
		return 4
	default: // float64, bigint64, biguint64
		return 8
	}
}

// DataView is an untyped byte window over an ArrayBuffer.
type DataView struct {
	Buffer     *ArrayBuffer
	ByteOffset int
	ByteLength int
}

// Bytes returns the view's byte window, nil once detached.
func (d *DataView) Bytes() []byte {
	if d.Buffer == nil || d.Buffer.Detached() {
		return nil
	}
	end := d.ByteOffset + d.ByteLength
	if end > len(d.Buffer.Data) {
		return nil
	}
	return d.Buffer.Data[d.ByteOffset:end]
}
