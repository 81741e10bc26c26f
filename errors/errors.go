package errors

import (
	"fmt"
	"strings"

	"github.com/wippyai/napi-runtime/napi"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLoad     Phase = "load"     // shared object resolution
	PhaseRegister Phase = "register" // module registration
	PhaseCall     Phase = "call"     // invoking an export
	PhaseDispatch Phase = "dispatch" // host loop / tsfn / async work
	PhaseTeardown Phase = "teardown" // environment destruction
	PhaseShim     Phase = "shim"     // function table installation
	PhaseConfig   Phase = "config"   // options loading
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindBadSymbol        Kind = "bad_symbol"
	KindInvalidHandle    Kind = "invalid_handle"
	KindPendingException Kind = "pending_exception"
	KindClosed           Kind = "closed"
	KindExhausted        Kind = "exhausted"
	KindInvalidInput     Kind = "invalid_input"
	KindNotInitialized   Kind = "not_initialized"
	KindStatus           Kind = "status"
	KindUnsupported      Kind = "unsupported"
)

// Error is the structured error type used for host-facing failures. ABI
// status codes stay in package napi; this type carries the context a Go
// caller needs.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Addon  string
	Symbol string
	Status napi.Status
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Addon != "" {
		b.WriteString(" in ")
		b.WriteString(e.Addon)
	}
	if e.Symbol != "" {
		b.WriteString(": symbol ")
		b.WriteString(e.Symbol)
	}
	if e.Status != napi.OK {
		b.WriteString(": ")
		b.WriteString(e.Status.String())
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Addon sets the add-on path or name
func (b *Builder) Addon(name string) *Builder {
	b.err.Addon = name
	return b
}

// Symbol sets the symbol name involved
func (b *Builder) Symbol(name string) *Builder {
	b.err.Symbol = name
	return b
}

// Status sets the ABI status that produced the failure
func (b *Builder) Status(s napi.Status) *Builder {
	b.err.Status = s
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Load creates a shared-object loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindNotFound,
		Detail: detail,
		Cause:  cause,
	}
}

// BadSymbol reports a missing or malformed export in the add-on
func BadSymbol(addon, symbol string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindBadSymbol,
		Addon:  addon,
		Symbol: symbol,
	}
}

// Registration reports a failed napi_register_module_v1 call
func Registration(addon string, cause error) *Error {
	return &Error{
		Phase: PhaseRegister,
		Kind:  KindInvalidInput,
		Addon: addon,
		Cause: cause,
	}
}

// FromStatus lifts a non-ok ABI status into a host error
func FromStatus(phase Phase, s napi.Status) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindStatus,
		Status: s,
		Detail: s.Message(),
	}
}

// NotFound reports a missing export or entity
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// NotInitialized reports use before setup
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: component + " not initialized",
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Closed reports an operation on a torn-down environment or runtime
func Closed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: what + " is closed",
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}
