// Package wasmshim exposes the ABI surface to add-ons compiled to
// wasm32 (emnapi-style toolchains). It registers a wazero host module
// named "env" whose exports mirror the napi_* symbols; guest pointers
// are linear-memory offsets and handles travel as i32.
//
// Native callback pointers from the guest are function-table indices.
// The host cannot call into the guest table directly, so the guest must
// export five tiny trampolines:
//
//	__napi_invoke(cb, env, info) -> value
//	__napi_invoke_finalize(cb, env, data, hint)
//	__napi_invoke_call_js(cb, env, js_cb, context, data)
//	__napi_invoke_execute(cb, env, data)
//	__napi_invoke_complete(cb, env, status, data)
//
// Symbols beyond the core set are registered as stubs (most fail with
// GenericFailure; a few answer ok), so instantiation always resolves the
// full import surface.
package wasmshim
