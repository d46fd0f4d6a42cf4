package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseInit        Phase = "init"        // one-time library setup
	PhaseCreate      Phase = "create"      // handle creation
	PhaseDecompile   Phase = "decompile"   // decompile gateway call
	PhaseDisassemble Phase = "disassemble" // disassemble gateway call
	PhaseSpec        Phase = "spec"        // specification directory loading
	PhaseLoad        Phase = "load"        // binary container parsing
	PhaseABI         Phase = "abi"         // foreign boundary marshalling
	PhaseService     Phase = "service"     // network service handlers
	PhaseConfig      Phase = "config"      // configuration file loading
)

// Kind categorizes the error
type Kind string

const (
	KindNotInitialized Kind = "not_initialized"
	KindInvalidInput   Kind = "invalid_input"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindSpec           Kind = "spec"
	KindEngine         Kind = "engine"
	KindUnsupported    Kind = "unsupported"
	KindNotFound       Kind = "not_found"
	KindInvalidData    Kind = "invalid_data"
	KindPanic          Kind = "panic"
)

// Error is the structured error type used across the boundary.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "/"))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target with an empty Phase matches on Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase == "" {
		return e.Kind == t.Kind
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the location path (file or address trail)
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Sentinel targets for errors.Is checks that only care about the kind.
var (
	ErrNotInitialized = &Error{Kind: KindNotInitialized}
	ErrInvalidInput   = &Error{Kind: KindInvalidInput}
	ErrOutOfBounds    = &Error{Kind: KindOutOfBounds}
	ErrSpec           = &Error{Kind: KindSpec}
	ErrEngine         = &Error{Kind: KindEngine}
	ErrUnsupported    = &Error{Kind: KindUnsupported}
	ErrNotFound       = &Error{Kind: KindNotFound}
	ErrInvalidData    = &Error{Kind: KindInvalidData}
	ErrPanic          = &Error{Kind: KindPanic}
)

// NotInitialized creates a not-initialized error for a missing or released component
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// OutOfBounds creates an out of bounds error for a pointer/length pair
func OutOfBounds(phase Phase, what string, offset uint64, length, limit uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   []string{what},
		Detail: fmt.Sprintf("range [%#x, +%d) exceeds %d bytes", offset, length, limit),
		Value:  offset,
	}
}

// Spec creates a specification loading error
func Spec(phase Phase, path string, detail string, cause error) *Error {
	e := &Error{
		Phase:  phase,
		Kind:   KindSpec,
		Detail: detail,
		Cause:  cause,
	}
	if path != "" {
		e.Path = []string{path}
	}
	return e
}

// Engine wraps a failure reported by the analysis engine
func Engine(phase Phase, detail string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindEngine,
		Detail: detail,
		Cause:  cause,
	}
}

// Recovered converts a recovered panic value into an error
func Recovered(phase Phase, v any) *Error {
	e := &Error{
		Phase:  phase,
		Kind:   KindPanic,
		Detail: fmt.Sprintf("recovered: %v", v),
		Value:  v,
	}
	if err, ok := v.(error); ok {
		e.Cause = err
	}
	return e
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Message returns the text stored in an error slot for err.
// Structured errors keep their detail and cause; anything else uses Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
