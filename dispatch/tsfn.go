package dispatch

import (
	"sync"

	"github.com/wippyai/napi-runtime/napi"
)

// TSFN is a multi-producer, single-consumer callback channel. Producers
// on any goroutine enqueue opaque data pointers; the host loop drains
// them in FIFO order into the invoke hook.
//
// One mutex guards the queue, the acquirer count, and the closing flag;
// nothing else in the runtime is touched off the host thread.
type TSFN struct {
	loop *Loop

	mu       sync.Mutex
	notFull  *sync.Cond
	queue    []uintptr
	maxSize  int // 0 = unbounded
	threads  int
	closing  bool
	aborted  bool
	finished bool

	scheduled bool
	refed     bool

	// invoke runs on the host thread once per item. finalize runs on the
	// host thread exactly once after the queue is closed and drained.
	invoke   func(data uintptr)
	finalize func()

	// Context is the opaque pointer reported by
	// napi_get_threadsafe_function_context.
	Context uintptr
}

// NewTSFN creates a channel. initialThreads is the starting acquirer
// count; maxQueueSize of zero means unbounded.
func NewTSFN(loop *Loop, maxQueueSize, initialThreads int, context uintptr,
	invoke func(data uintptr), finalize func()) *TSFN {

	t := &TSFN{
		loop:     loop,
		maxSize:  maxQueueSize,
		threads:  initialThreads,
		invoke:   invoke,
		finalize: finalize,
		Context:  context,
		refed:    true,
	}
	t.notFull = sync.NewCond(&t.mu)
	loop.Ref()
	return t
}

// Acquire registers another producer thread.
func (t *TSFN) Acquire() napi.Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closing {
		return napi.Closing
	}
	t.threads++
	return napi.OK
}

// ReleaseMode-driven release. In Release mode the last producer starts an
// orderly close: remaining items drain, then the finalizer runs. Abort
// closes immediately and drops undispatched items.
func (t *TSFN) Release(mode napi.ReleaseMode) napi.Status {
	t.mu.Lock()
	if t.threads == 0 {
		t.mu.Unlock()
		return napi.InvalidArg
	}
	t.threads--
	if mode == napi.Abort {
		t.closing = true
		t.aborted = true
		t.queue = nil
		t.notFull.Broadcast()
	} else if t.threads == 0 {
		t.closing = true
		t.notFull.Broadcast()
	}
	needSchedule := t.closing && !t.scheduled
	if needSchedule {
		t.scheduled = true
	}
	t.mu.Unlock()

	if needSchedule {
		t.loop.Post(t.drain)
	}
	return napi.OK
}

// Call enqueues data. NonBlocking returns QueueFull on a full queue;
// Blocking waits for space, except on the host thread itself, where
// waiting can never make progress and WouldDeadlock is returned instead.
func (t *TSFN) Call(data uintptr, mode napi.CallMode) napi.Status {
	t.mu.Lock()
	for {
		if t.closing {
			t.mu.Unlock()
			return napi.Closing
		}
		if t.maxSize == 0 || len(t.queue) < t.maxSize {
			break
		}
		if mode == napi.NonBlocking {
			t.mu.Unlock()
			return napi.QueueFull
		}
		if t.loop.OnHostThread() {
			t.mu.Unlock()
			return napi.WouldDeadlock
		}
		t.notFull.Wait()
	}
	t.queue = append(t.queue, data)
	needSchedule := !t.scheduled
	if needSchedule {
		t.scheduled = true
	}
	t.mu.Unlock()

	if needSchedule {
		t.loop.Post(t.drain)
	}
	return napi.OK
}

// Refed reports whether the TSFN currently pins the loop alive.
func (t *TSFN) Refed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.refed
}

// Ref pins the loop alive while this TSFN exists.
func (t *TSFN) Ref() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.refed && !t.finished {
		t.refed = true
		t.loop.Ref()
	}
}

// Unref lets the loop go idle even while this TSFN exists.
func (t *TSFN) Unref() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.refed {
		t.refed = false
		t.loop.Unref()
	}
}

// Closing reports whether the channel stopped accepting calls.
func (t *TSFN) Closing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closing
}

// drain runs on the host thread: pop items while available, invoke each,
// and finalize once closed and empty.
func (t *TSFN) drain() {
	for {
		t.mu.Lock()
		if len(t.queue) == 0 {
			t.scheduled = false
			runFinalize := t.closing && !t.finished
			if runFinalize {
				t.finished = true
			}
			refed := t.refed
			if runFinalize {
				t.refed = false
			}
			t.mu.Unlock()
			if runFinalize {
				if t.finalize != nil {
					t.finalize()
				}
				if refed {
					t.loop.Unref()
				}
			}
			return
		}
		data := t.queue[0]
		t.queue = t.queue[1:]
		t.notFull.Signal()
		t.mu.Unlock()
		t.invoke(data)
	}
}
