// Package fission exposes a non-reentrant binary-analysis engine through a
// synchronous, memory-buffer based request/response boundary.
//
// # Architecture Overview
//
//	fission/           Root package with the Image (address space) interfaces
//	├── image/         Bounds-checked memory images over caller buffers
//	├── spec/          Specification directory (language definitions) loading
//	├── engine/        Decoders, analysis pipeline and C-like printer
//	├── gateway/       Library state, engine handles, decompile/disassemble
//	├── errslot/       Per-context last-error storage
//	├── abi/           Raw-shaped ABI surface with a handle table
//	│   └── wasmhost/  The ABI exported to WebAssembly guests via wazero
//	├── loader/        ELF/PE/Mach-O container parsing
//	├── service/       gRPC decompiler service and client
//	├── config/        YAML configuration and logger construction
//	└── errors/        Structured error types
//
// # Quick Start
//
//	h, err := gateway.Create("/opt/fission/languages")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer h.Destroy()
//
//	out := make([]byte, 64*1024)
//	n, err := h.Disassemble(code, 0x401000, out)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(string(out[:n]))
//
// # Thread Safety
//
// Operations on one Handle are serialized by the handle's mutex. Distinct
// handles run fully in parallel. The caller's buffers are borrowed for the
// duration of a call and never retained.
//
// # Output Truncation
//
// Results longer than the output capacity are silently truncated to
// capacity-1 bytes followed by a NUL byte. Compare the returned length with
// capacity-1 to detect it.
package fission
