// Package loader resolves Node-API add-on shared objects and runs their
// registration entry points against a Runtime.
//
// The load path mirrors the classic shim arrangement: a small native shim
// library exports every napi_* symbol and forwards each into a
// function-pointer table; this package dlopens the shim first (global so
// the add-on's imports resolve against it), installs the table — each
// slot a purego callback trampolining into the runtime's api — then
// dlopens the add-on and invokes napi_register_module_v1.
//
// The table handed to the shim covers the core slot set; the shim itself
// answers the long tail of rarely-used symbols with the per-slot defaults
// described in package abi.
//
// Everything here is linux/darwin only (purego dlopen).
package loader
