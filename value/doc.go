// Package value is the host-side value model the runtime projects add-on
// exports into. It stands where V8's heap stands for Node: every napi_value
// an add-on sees resolves to one of these Go representations.
//
// Representation:
//
//	undefined  -> value.Undefined (singleton)
//	null       -> nil
//	boolean    -> bool
//	number     -> float64
//	string     -> string
//	symbol     -> *value.Symbol
//	object     -> *value.Object (also *Array, *Error, *Promise, buffers)
//	function   -> *value.Function
//	external   -> *value.External
//
// Numbers are always float64, matching JavaScript's single number type;
// int64 creation beyond 2^53 loses precision exactly as it does in Node.
// BigInt, UTF-16 storage, Date, and Symbol identity are approximated by the
// nearest native primitive.
package value
