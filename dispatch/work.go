package dispatch

import (
	"sync"

	"github.com/wippyai/napi-runtime/napi"
)

// Work is one background job: execute off the host thread, complete on
// it. Cancellation wins only before execute starts.
type Work struct {
	loop *Loop
	pool *Pool

	mu        sync.Mutex
	queued    bool
	started   bool
	cancelled bool
	completed bool

	execute  func()
	complete func(status napi.Status)
}

// NewWork creates an unqueued job.
func NewWork(loop *Loop, pool *Pool, execute func(), complete func(napi.Status)) *Work {
	return &Work{loop: loop, pool: pool, execute: execute, complete: complete}
}

// Queue submits the job to the pool. Queueing twice fails.
func (w *Work) Queue() napi.Status {
	w.mu.Lock()
	if w.queued {
		w.mu.Unlock()
		return napi.GenericFailure
	}
	w.queued = true
	w.mu.Unlock()

	w.loop.Ref()
	w.pool.Submit(w.run)
	return napi.OK
}

// Cancel requests cancellation. Fails once execute has started.
func (w *Work) Cancel() napi.Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.queued || w.started || w.completed {
		return napi.GenericFailure
	}
	w.cancelled = true
	return napi.OK
}

func (w *Work) run() {
	w.mu.Lock()
	if w.cancelled {
		w.mu.Unlock()
		w.finish(napi.Cancelled)
		return
	}
	w.started = true
	w.mu.Unlock()

	w.execute()
	w.finish(napi.OK)
}

func (w *Work) finish(status napi.Status) {
	w.loop.Post(func() {
		w.mu.Lock()
		if w.completed {
			w.mu.Unlock()
			return
		}
		w.completed = true
		w.mu.Unlock()
		if w.complete != nil {
			w.complete(status)
		}
		w.loop.Unref()
	})
}
