// Package abi is the raw-shaped surface behind the foreign transports.
//
// Callers hold uint32 handle numbers instead of Go pointers, receive -1 or 0
// sentinels instead of errors, and read failure text from a per-context
// error slot:
//
//	s := abi.NewSurface(logger)
//	h := s.Init(tid, "/opt/fission/languages")
//	if h == 0 {
//	    msg, _ := s.LastError(tid)
//	    ...
//	}
//	n := s.Disassemble(tid, h, code, 0x1000, out)
//
// The cgo library (cmd/libfission) keys contexts by OS thread id; the
// WebAssembly host module (abi/wasmhost) keys them by guest module.
// Handle numbers are generation checked, so a destroyed handle never
// resolves again.
package abi
