// Package napiruntime hosts Node-API (NAPI) native add-ons in Go.
//
// The runtime plays the role the Node.js engine plays for such add-ons:
// it supplies the opaque environment, owns all script-side values,
// implements every ABI function the add-on links against, and marshals
// data across the native/Go boundary.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	napiruntime/         Root package with the Runtime facade
//	├── napi/            ABI vocabulary: status codes, enums, handle types
//	├── value/           Host value model (objects, functions, promises, buffers)
//	├── handle/          Handle store and scope stack
//	├── env/             Per-add-on environment, references, finalizers
//	├── api/             Semantics behind every napi_* entry point
//	├── abi/             Function-pointer table and the shim forwarding layer
//	├── dispatch/        Host loop, thread-safe functions, async work
//	├── loader/          Shared-object loader (purego dlopen/dlsym)
//	├── wasmshim/        The same ABI surface as a wazero host module
//	├── config/          Runtime tunables with YAML loading
//	└── errors/          Structured error types for the Go-facing surface
//
// # Quick Start
//
// Load an add-on and call an export:
//
//	rt := napiruntime.New()
//	defer rt.Close()
//
//	if err := loader.InstallShim("libnapi_shim.so"); err != nil {
//	    log.Fatal(err)
//	}
//
//	mod, err := loader.Open(rt, "image.node")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sum, err := mod.Call("add", 2.0, 3.0)
//	fmt.Println(sum) // 5
//
// # Threading Model
//
// The runtime is cooperatively single-threaded: every script-visible
// operation happens on the goroutine driving the dispatch loop. Other
// goroutines may only enqueue into thread-safe function queues and run
// async-work execute callbacks. Drive the loop with Runtime.Poll for
// embedding or Runtime.Run for a dedicated host thread.
//
// # Fidelity Notes
//
// Only NAPI version 8 is targeted. BigInt word-level arithmetic, UTF-16
// string storage, Date semantics, and Symbol identity are approximated by
// the closest native primitive.
package napiruntime
