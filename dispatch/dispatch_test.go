package dispatch

import (
	"sync"
	"testing"
	"time"

	"github.com/wippyai/napi-runtime/napi"
)

func TestLoopPostPoll(t *testing.T) {
	l := NewLoop()
	var ran []int
	l.Post(func() { ran = append(ran, 1) })
	l.Post(func() { ran = append(ran, 2) })

	if n := l.Poll(); n != 2 {
		t.Fatalf("Poll ran %d", n)
	}
	if len(ran) != 2 || ran[0] != 1 || ran[1] != 2 {
		t.Fatalf("order = %v", ran)
	}
	if l.Poll() != 0 {
		t.Fatal("second poll found work")
	}
}

func TestLoopPostAfterClose(t *testing.T) {
	l := NewLoop()
	l.Close()
	l.Post(func() { t.Fatal("ran after close") })
	l.Poll()
}

func TestTSFNSingleProducerFIFO(t *testing.T) {
	l := NewLoop()
	var got []uintptr
	tsfn := NewTSFN(l, 0, 1, 0, func(d uintptr) { got = append(got, d) }, nil)

	for i := uintptr(1); i <= 50; i++ {
		if s := tsfn.Call(i, napi.NonBlocking); s != napi.OK {
			t.Fatalf("call %d = %v", i, s)
		}
	}
	l.Poll()

	if len(got) != 50 {
		t.Fatalf("drained %d items", len(got))
	}
	for i, d := range got {
		if d != uintptr(i+1) {
			t.Fatalf("item %d = %d", i, d)
		}
	}
}

func TestTSFNMultiProducerDrainAndFinalize(t *testing.T) {
	// 4 threads x 100 items; per-thread order preserved; finalizer after
	// the last item.
	l := NewLoop()

	const threads = 4
	const perThread = 100

	var got []uintptr
	finalized := false
	tsfn := NewTSFN(l, 0, threads, 0,
		func(d uintptr) {
			if finalized {
				t.Error("item dispatched after finalizer")
			}
			got = append(got, d)
		},
		func() { finalized = true })

	var wg sync.WaitGroup
	for th := 0; th < threads; th++ {
		wg.Add(1)
		go func(th int) {
			defer wg.Done()
			for i := 0; i < perThread; i++ {
				// Encode producer in the high bits, sequence in the low.
				if s := tsfn.Call(uintptr(th*1000+i), napi.Blocking); s != napi.OK {
					t.Errorf("call = %v", s)
					return
				}
			}
			tsfn.Release(napi.Release)
		}(th)
	}

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()

	deadline := time.After(10 * time.Second)
	for !finalized {
		l.Poll()
		select {
		case <-deadline:
			t.Fatal("finalizer never ran")
		case <-time.After(time.Millisecond):
		}
	}
	<-done

	if len(got) != threads*perThread {
		t.Fatalf("drained %d items, want %d", len(got), threads*perThread)
	}
	// FIFO per producer.
	last := map[int]int{}
	for _, d := range got {
		th, seq := int(d)/1000, int(d)%1000
		if prev, ok := last[th]; ok && seq != prev+1 {
			t.Fatalf("thread %d out of order: %d after %d", th, seq, prev)
		}
		last[th] = seq
	}
	for th := 0; th < threads; th++ {
		if last[th] != perThread-1 {
			t.Fatalf("thread %d missing items", th)
		}
	}

	// Calls after close report closing.
	if s := tsfn.Call(1, napi.NonBlocking); s != napi.Closing {
		t.Fatalf("post-close call = %v", s)
	}
}

func TestTSFNQueueFull(t *testing.T) {
	l := NewLoop()
	tsfn := NewTSFN(l, 2, 1, 0, func(uintptr) {}, nil)

	if tsfn.Call(1, napi.NonBlocking) != napi.OK {
		t.Fatal("first")
	}
	if tsfn.Call(2, napi.NonBlocking) != napi.OK {
		t.Fatal("second")
	}
	if s := tsfn.Call(3, napi.NonBlocking); s != napi.QueueFull {
		t.Fatalf("overflow = %v", s)
	}
	l.Poll()
	if s := tsfn.Call(3, napi.NonBlocking); s != napi.OK {
		t.Fatalf("after drain = %v", s)
	}
	tsfn.Release(napi.Release)
	l.Poll()
}

func TestTSFNBlockingProducerUnblocks(t *testing.T) {
	l := NewLoop()
	tsfn := NewTSFN(l, 1, 1, 0, func(uintptr) {}, nil)

	if tsfn.Call(1, napi.NonBlocking) != napi.OK {
		t.Fatal("fill")
	}

	unblocked := make(chan napi.Status, 1)
	go func() { unblocked <- tsfn.Call(2, napi.Blocking) }()

	// Give the producer a moment to block, then drain to free a slot.
	time.Sleep(20 * time.Millisecond)
	l.Poll()

	select {
	case s := <-unblocked:
		if s != napi.OK {
			t.Fatalf("blocked call = %v", s)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("producer never unblocked")
	}
	tsfn.Release(napi.Release)
	l.Poll()
}

func TestTSFNWouldDeadlock(t *testing.T) {
	l := NewLoop()
	var status napi.Status
	probed := false
	var tsfn *TSFN
	tsfn = NewTSFN(l, 1, 1, 0, func(uintptr) {
		if probed {
			return
		}
		probed = true
		// Refill the queue, then block on it from the host thread: that
		// can never make progress.
		tsfn.Call(99, napi.NonBlocking)
		status = tsfn.Call(100, napi.Blocking)
	}, nil)

	tsfn.Call(1, napi.NonBlocking)
	l.Poll()

	if status != napi.WouldDeadlock {
		t.Fatalf("host-thread blocking call = %v", status)
	}
}

func TestTSFNAbortDropsQueue(t *testing.T) {
	l := NewLoop()
	var got int
	finalized := false
	tsfn := NewTSFN(l, 0, 1, 0, func(uintptr) { got++ }, func() { finalized = true })

	tsfn.Call(1, napi.NonBlocking)
	tsfn.Call(2, napi.NonBlocking)
	tsfn.Release(napi.Abort)
	l.Poll()

	if got != 0 {
		t.Fatalf("aborted queue dispatched %d items", got)
	}
	if !finalized {
		t.Fatal("finalizer skipped on abort")
	}
}

func TestTSFNAcquireRelease(t *testing.T) {
	l := NewLoop()
	tsfn := NewTSFN(l, 0, 1, 0, func(uintptr) {}, nil)

	if tsfn.Acquire() != napi.OK {
		t.Fatal("acquire")
	}
	if tsfn.Release(napi.Release) != napi.OK {
		t.Fatal("first release")
	}
	if tsfn.Closing() {
		t.Fatal("closing with an acquirer outstanding")
	}
	if tsfn.Release(napi.Release) != napi.OK {
		t.Fatal("last release")
	}
	if !tsfn.Closing() {
		t.Fatal("not closing after last release")
	}
	if tsfn.Acquire() != napi.Closing {
		t.Fatal("acquire after close")
	}
	l.Poll()
}

func TestTSFNContext(t *testing.T) {
	l := NewLoop()
	tsfn := NewTSFN(l, 0, 1, 42, func(uintptr) {}, nil)
	if tsfn.Context != 42 {
		t.Fatal("context lost")
	}
	tsfn.Release(napi.Release)
	l.Poll()
}

func TestAsyncWorkLifecycle(t *testing.T) {
	l := NewLoop()
	pool := NewPool(2)
	defer pool.Close()

	executed := make(chan struct{})
	var completeStatus napi.Status
	completed := false

	w := NewWork(l,
		pool,
		func() { close(executed) },
		func(s napi.Status) { completeStatus = s; completed = true })

	if w.Queue() != napi.OK {
		t.Fatal("queue")
	}
	if w.Queue() != napi.GenericFailure {
		t.Fatal("double queue accepted")
	}

	select {
	case <-executed:
	case <-time.After(5 * time.Second):
		t.Fatal("execute never ran")
	}

	deadline := time.After(5 * time.Second)
	for !completed {
		l.Poll()
		select {
		case <-deadline:
			t.Fatal("complete never ran")
		case <-time.After(time.Millisecond):
		}
	}
	if completeStatus != napi.OK {
		t.Fatalf("complete status = %v", completeStatus)
	}
}

func TestAsyncWorkCancelBeforeStart(t *testing.T) {
	l := NewLoop()
	// Single worker, blocked, so the second job cannot start.
	pool := NewPool(1)
	defer pool.Close()

	release := make(chan struct{})
	blocker := NewWork(l, pool, func() { <-release }, nil)
	blocker.Queue()

	executed := false
	var gotStatus napi.Status
	completed := false
	w := NewWork(l, pool,
		func() { executed = true },
		func(s napi.Status) { gotStatus = s; completed = true })
	w.Queue()

	if w.Cancel() != napi.OK {
		t.Fatal("cancel before start")
	}
	close(release)

	deadline := time.After(5 * time.Second)
	for !completed {
		l.Poll()
		select {
		case <-deadline:
			t.Fatal("cancelled work never completed")
		case <-time.After(time.Millisecond):
		}
	}
	if executed {
		t.Fatal("execute ran after cancel")
	}
	if gotStatus != napi.Cancelled {
		t.Fatalf("status = %v", gotStatus)
	}
}

func TestAsyncWorkCancelAfterStart(t *testing.T) {
	l := NewLoop()
	pool := NewPool(1)
	defer pool.Close()

	started := make(chan struct{})
	release := make(chan struct{})
	w := NewWork(l, pool, func() { close(started); <-release }, nil)
	w.Queue()
	<-started

	if w.Cancel() != napi.GenericFailure {
		t.Fatal("cancel succeeded after start")
	}
	close(release)
	for l.Poll() == 0 {
		time.Sleep(time.Millisecond)
	}
}
