// Package wasmhost exports the engine to WebAssembly guests as the wazero
// host module "fission".
//
// Pointers are offsets into the calling guest's exported memory. A pointer
// and length pair that falls outside that memory fails the call with the
// usual sentinel and records an out_of_bounds error for the guest, which
// get_last_error then returns:
//
//	(import "fission" "init"           (func (param i32 i32) (result i32)))
//	(import "fission" "destroy"        (func (param i32)))
//	(import "fission" "decompile"      (func (param i32 i32 i32 i64 i32 i32) (result i32)))
//	(import "fission" "disassemble"    (func (param i32 i32 i32 i64 i32 i32) (result i32)))
//	(import "fission" "get_last_error" (func (param i32 i32) (result i32)))
//	(import "fission" "is_available"   (func (result i32)))
//
// Output buffers are written in place and NUL terminated. get_last_error
// returns -1 when the guest has no recorded error.
package wasmhost
