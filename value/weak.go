package value

import (
	"runtime"
	"weak"
)

// WeakRef observes a host value without extending its lifetime. Get returns
// nil once the target has been collected.
type WeakRef interface {
	Get() any
}

type weakCell[T any] struct {
	p weak.Pointer[T]
}

func (c weakCell[T]) Get() any {
	if v := c.p.Value(); v != nil {
		return v
	}
	return nil
}

// MakeWeak creates a weak reference to v. Only pointer-shaped host values
// (objects, arrays, functions, errors, promises, buffers, symbols,
// externals) can be held weakly; primitives report false, mirroring
// values that cannot be weak-referenced in the source runtime.
func MakeWeak(v any) (WeakRef, bool) {
	switch x := v.(type) {
	case *Object:
		return weakCell[Object]{weak.Make(x)}, true
	case *Array:
		return weakCell[Array]{weak.Make(x)}, true
	case *Function:
		return weakCell[Function]{weak.Make(x)}, true
	case *Error:
		return weakCell[Error]{weak.Make(x)}, true
	case *Promise:
		return weakCell[Promise]{weak.Make(x)}, true
	case *ArrayBuffer:
		return weakCell[ArrayBuffer]{weak.Make(x)}, true
	case *TypedArray:
		return weakCell[TypedArray]{weak.Make(x)}, true
	case *DataView:
		return weakCell[DataView]{weak.Make(x)}, true
	case *Symbol:
		return weakCell[Symbol]{weak.Make(x)}, true
	case *External:
		return weakCell[External]{weak.Make(x)}, true
	case *Date:
		return weakCell[Date]{weak.Make(x)}, true
	default:
		return nil, false
	}
}

// OnCollect arranges for fn to run after v becomes unreachable. fn runs on
// a runtime-owned goroutine; callers must forward to the host thread
// themselves. Returns false for values that cannot be held weakly.
func OnCollect(v any, fn func()) bool {
	switch x := v.(type) {
	case *Object:
		addCleanup(x, fn)
	case *Array:
		addCleanup(x, fn)
	case *Function:
		addCleanup(x, fn)
	case *Error:
		addCleanup(x, fn)
	case *Promise:
		addCleanup(x, fn)
	case *ArrayBuffer:
		addCleanup(x, fn)
	case *TypedArray:
		addCleanup(x, fn)
	case *DataView:
		addCleanup(x, fn)
	case *Symbol:
		addCleanup(x, fn)
	case *External:
		addCleanup(x, fn)
	case *Date:
		addCleanup(x, fn)
	default:
		return false
	}
	return true
}

func addCleanup[T any](ptr *T, fn func()) {
	runtime.AddCleanup(ptr, func(f func()) { f() }, fn)
}
