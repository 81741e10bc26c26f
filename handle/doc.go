// Package handle implements the handle store and scope stack that give
// native code stable napi_value identifiers into host-managed storage.
//
// The store is a dense slice indexed by handle ID. IDs below
// napi.MinHandleID are reserved for singletons (undefined, null, the
// booleans, the global object, the empty string) and never recycled.
// Ordinary IDs are allocated stack-wise: each open scope records the
// allocation cursor, and closing the scope rewinds it, dropping every
// handle the scope created except the one escaped through an escapable
// scope. A free-ID stack reclaims IDs released out of band.
package handle
