// Package api implements the semantics behind every napi_* entry point.
//
// An API is bound to one env.Context. Each method mirrors one ABI function:
// same argument order, status-code result, out-parameters as pointers. The
// abi package wires these methods into the function-pointer table the
// symbol shim dispatches through; the loader and wasmshim translate the
// respective C and wasm calling conventions into these signatures.
//
// Every entry point follows the same preamble: resolve the environment,
// clear its last-error record, then run. Non-ok returns go through
// env.SetLastError so napi_get_last_error_info always agrees with the most
// recent status. Entry points that can run script logic (property access,
// calls, coercions, throws) additionally short-circuit with
// PendingException while the environment's exception slot is occupied;
// pure queries do not.
package api
