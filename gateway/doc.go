// Package gateway is the synchronous request boundary in front of the engine.
//
// A Handle is created from a specification directory and owns one engine
// architecture. The first Create in the process also runs the one-time
// library setup; IsAvailable reports whether that setup has succeeded.
//
//	h, err := gateway.Create("languages")
//	if err != nil {
//	    return err
//	}
//	defer h.Destroy()
//
//	out := make([]byte, 64<<10)
//	n, err := h.Disassemble(code, 0x1000, out)
//
// # Output Contract
//
// Decompile and Disassemble write into a caller-owned slice. The text is
// truncated to len(out)-1 bytes and followed by a NUL byte, and the number
// of text bytes is returned. On failure they return -1 and an error from the
// errors package; out[0] is set to NUL when out is non-empty.
//
// # Concurrency
//
// Each Handle has a mutex held for the whole of every request, so requests
// on one handle never overlap. Distinct handles share nothing but the
// library setup lock. Engine panics are recovered and reported as errors,
// and the handle stays usable.
//
// # Memory
//
// Input bytes are read through an image.Memory built for the call. Reads
// outside [base, base+len(code)) see zeros. Neither the input nor the output
// slice is retained after a call returns.
package gateway
