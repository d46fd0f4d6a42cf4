// Package errors provides structured error types for the fission boundary.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Every boundary-facing function reports failure through these
// values; the ABI surfaces flatten them into the per-context error slot.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecompile, errors.KindInvalidInput).
//		Path("code").
//		Detail("buffer is empty").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotInitialized(errors.PhaseDisassemble, "decompiler")
//	err := errors.OutOfBounds(errors.PhaseABI, "out", ptr, size, memSize)
//
// Kind-only sentinels (ErrNotInitialized, ErrInvalidInput, ...) match any
// phase through errors.Is.
package errors
