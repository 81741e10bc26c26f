// Package abi is the function-pointer table behind the symbol shim.
//
// The native shim library exports every napi_* symbol an add-on can
// import; each export forwards into one slot of a Table installed here at
// startup. The Table layout is private to the runtime and its loaders —
// add-ons only ever see the C symbols.
//
// The forwarding contract, per slot: with no table installed every call
// fails with GenericFailure; with a table installed but the slot empty,
// query functions answer a sensible default (false for is_* predicates,
// an empty result for name listings, exception-not-pending) and producer
// functions fail with GenericFailure. A handful of symbols carry no
// semantics the runtime needs; those are wired to ok-stubs that write a
// non-null sentinel into their out-pointer.
package abi
