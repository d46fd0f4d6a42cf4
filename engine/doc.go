// Package engine is the analysis engine behind the fission boundary.
//
// It decodes machine code with the golang.org/x/arch disassemblers and
// produces linear disassembly or a C-like rendering of a function.
//
// # Architecture
//
// The engine is organized around a few types:
//
//	Library      - process-wide decoder backends, started once
//	Architecture - one language: decoder, symbol scope, action pipeline, printer
//	Translator   - a decoder bound to one fission.Image for one request
//	Function     - per-function analysis state owned by a Scope
//
// # Decompilation Flow
//
//  1. Architecture.Decompile finds or creates the Function at the entry address
//  2. the "decompile" ActionGroup runs flow recovery, block splitting and lifting
//  3. PrintC renders the lifted statements
//
// Flow recovery is bounded by Options. When the budget runs out the pipeline
// reports a breakpoint and the printed function is marked incomplete.
//
// # Images
//
// The engine reads code only through fission.Image.LoadFill. Addresses the
// image does not back read as zero, so decoding past the end of a buffer
// never faults. When the image is a fission.Bounded, flow recovery stays
// inside it.
//
// # Thread Safety
//
// Library is safe for concurrent use. Architecture and Translator are not;
// callers hold a lock for the duration of each request.
package engine
