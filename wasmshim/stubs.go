package wasmshim

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/napi-runtime/napi"
)

// The long tail of the NAPI v8 import surface. Every symbol must resolve
// at instantiation, so each gets a correctly-typed export even when the
// runtime carries no semantics for it. Behavior follows the shim
// contract: predicates answer false, the named ok-stubs answer ok with a
// sentinel out-value, everything else fails with GenericFailure.
//
// Signature strings use one letter per parameter: i = i32, I = i64,
// f = f64. All return i32 napi_status unless marked void.

type stubKind int

const (
	stubFail stubKind = iota // generic_failure
	stubOK                   // ok, no output
	stubOKOut                // ok, non-null sentinel into last (pointer) param
	stubFalse                // ok, false into last (pointer) param
	stubVoid                 // no return value
)

type stub struct {
	name string
	sig  string
	kind stubKind
}

var stubTable = []stub{
	{"napi_get_value_string_latin1", "iiiii", stubFail},
	{"napi_create_bigint_uint64", "iIi", stubFail},
	{"napi_create_bigint_words", "iiiii", stubFail},
	{"napi_get_value_bigint_uint64", "iiii", stubFail},
	{"napi_get_value_bigint_words", "iiiii", stubFail},
	{"napi_create_external_arraybuffer", "iiiiii", stubFail},
	{"napi_run_script", "iii", stubFail},
	{"napi_adjust_external_memory", "iIi", stubOK},
	{"napi_open_callback_scope", "iiii", stubOKOut},
	{"napi_close_callback_scope", "ii", stubOK},
	{"node_api_get_module_file_name", "ii", stubOKOut},
}

func sigTypes(sig string) []api.ValueType {
	out := make([]api.ValueType, 0, len(sig))
	for _, c := range sig {
		switch c {
		case 'I':
			out = append(out, api.ValueTypeI64)
		case 'f':
			out = append(out, api.ValueTypeF64)
		default:
			out = append(out, api.ValueTypeI32)
		}
	}
	return out
}

// registerStubs exports the tail symbols on the host module builder.
// Core symbols registered by Instantiate win: wazero keeps the last
// export per name, so stubs are registered only for names the core set
// does not define (the table above contains no core names).
func registerStubs(b wazero.HostModuleBuilder) {
	for _, s := range stubTable {
		s := s
		params := sigTypes(s.sig)
		results := []api.ValueType{api.ValueTypeI32}
		if s.kind == stubVoid {
			results = nil
		}
		fn := api.GoModuleFunc(func(_ context.Context, mod api.Module, stack []uint64) {
			switch s.kind {
			case stubOK:
				stack[0] = uint64(s32(napi.OK))
			case stubOKOut:
				out := uint32(stack[len(params)-1])
				wrU32(mod.Memory(), out, 1)
				stack[0] = uint64(s32(napi.OK))
			case stubFalse:
				out := uint32(stack[len(params)-1])
				wrBool(mod.Memory(), out, false)
				stack[0] = uint64(s32(napi.OK))
			case stubVoid:
				// nothing
			default:
				stack[0] = uint64(s32(napi.GenericFailure))
			}
		})
		b.NewFunctionBuilder().WithGoModuleFunction(fn, params, results).Export(s.name)
	}
}
