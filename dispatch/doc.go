// Package dispatch is the concurrency engine: the host-thread loop,
// thread-safe function queues, async work, and the shared worker pool.
//
// The runtime is cooperatively single-threaded: every script-visible
// operation happens on the goroutine driving Loop. Worker goroutines
// exist only to run async-work execute callbacks and as arbitrary
// producers into TSFN queues; the queues and the pool are the only
// structures here that tolerate other threads.
//
// The types in this package are mechanism only — they carry opaque data
// pointers and thunks. The api package binds them to environments,
// scopes, and native callbacks.
package dispatch
