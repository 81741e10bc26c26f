// Package errors provides structured error types for the napi-runtime
// host surface.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). ABI status codes are a separate channel owned by
// package napi; this package is for the Go-facing side: loading add-ons,
// registration, calling exports, dispatch, teardown.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCall, errors.KindStatus).
//		Addon("image.node").
//		Symbol("decode").
//		Status(napi.PendingException).
//		Detail("export threw").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BadSymbol("image.node", "napi_register_module_v1")
//	err := errors.FromStatus(errors.PhaseCall, status)
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
