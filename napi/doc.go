// Package napi defines the Node-API v8 ABI vocabulary: status codes, value
// type enumerations, property attribute bits, handle newtypes, and the
// native callback signatures.
//
// Everything here is fixed by the Node-API headers and must match
// value-for-value; nothing in this package carries behavior. The handle
// types (Env, Value, Ref, ...) are opaque integer identifiers minted by the
// handle and environment stores — add-ons never observe their structure.
package napi
