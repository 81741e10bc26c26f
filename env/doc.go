// Package env holds the per-add-on environment and the process-wide
// context.
//
// An Env carries everything one loaded add-on can observe: its handle
// store and scope stack, the last-error record, the pending-exception
// slot, strong/weak references with their finalizer records, instance
// data, and cleanup hooks. The Context is the registry the function table
// dispatches through: environment IDs in, *Env out.
//
// Everything in an Env except the finalizer intake queue is host-thread
// only. The intake queue exists because the Go collector reports object
// death on its own goroutine; death notices are enqueued there and the
// host thread drains them, so finalizers always run on the host thread.
package env
