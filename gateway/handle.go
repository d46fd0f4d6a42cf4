package gateway

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/fission/engine"
	"github.com/wippyai/fission/errors"
	"github.com/wippyai/fission/image"
	"github.com/wippyai/fission/spec"
)

// DefaultMaxInstructions is the disassembly line limit per call.
const DefaultMaxInstructions = 100

type handleState uint8

const (
	handleUninitialized handleState = iota
	handleReady
	handleDestroyed
)

type options struct {
	language        string
	maxInstructions int
	analysis        engine.Options
}

// Option configures a Handle at creation.
type Option func(*options)

// WithLanguage selects the language used when a request names none.
func WithLanguage(id string) Option {
	return func(o *options) { o.language = id }
}

// WithMaxInstructions bounds the lines produced by Disassemble.
func WithMaxInstructions(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxInstructions = n
		}
	}
}

// WithAnalysis sets the decompilation budget.
func WithAnalysis(opts engine.Options) Option {
	return func(o *options) { o.analysis = opts }
}

// Handle is an exclusively owned engine instance bound to one specification
// directory. All requests on a handle are serialized by its mutex; distinct
// handles run independently.
type Handle struct {
	lib     *engine.Library
	catalog *spec.Catalog
	arch    *engine.Architecture
	archs   map[string]*engine.Architecture
	specDir string
	opts    options
	mu      sync.Mutex
	state   handleState
}

// Create validates specDir, performs the one-time library setup and builds
// a ready handle. It never returns a partially built handle.
func Create(specDir string, opts ...Option) (*Handle, error) {
	if specDir == "" {
		return nil, errors.InvalidInput(errors.PhaseCreate, "sla_dir is null")
	}

	o := options{language: spec.DefaultLanguage, maxInstructions: DefaultMaxInstructions}
	for _, opt := range opts {
		opt(&o)
	}

	lib, err := ensureInitialized(specDir)
	if err != nil {
		return nil, err
	}

	cat, err := spec.LoadDir(specDir)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseCreate, errors.KindSpec, err, "Failed to create decompiler")
	}
	arch, err := lib.NewArchitecture(cat, o.language, o.analysis)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseCreate, errors.KindSpec, err, "Failed to create decompiler")
	}

	h := &Handle{
		lib:     lib,
		catalog: cat,
		arch:    arch,
		archs:   map[string]*engine.Architecture{arch.Language().ID: arch},
		specDir: specDir,
		opts:    o,
		state:   handleReady,
	}
	Logger().Debug("handle created",
		zap.String("spec_dir", specDir),
		zap.String("language", arch.Language().ID))
	return h, nil
}

// Destroy releases the handle. It is safe on a nil or already destroyed
// handle. Calling it while another goroutine is still using the handle is a
// caller error.
func (h *Handle) Destroy() {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state == handleDestroyed {
		return
	}
	h.state = handleDestroyed
	h.lib = nil
	h.catalog = nil
	h.arch = nil
	h.archs = nil
	Logger().Debug("handle destroyed", zap.String("spec_dir", h.specDir))
}

// SpecDir returns the specification directory the handle was created with.
func (h *Handle) SpecDir() string { return h.specDir }

// Language returns the handle's default language.
func (h *Handle) Language() string { return h.opts.language }

// Decompile decompiles the function at base from code and writes the C-like
// text into out. See Disassemble for the output contract.
func (h *Handle) Decompile(code []byte, base uint64, out []byte) (int, error) {
	return h.serve(errors.PhaseDecompile, code, out, func() (string, error) {
		a, err := h.arch.Decompile(image.NewMemory(code, base), base)
		if err != nil {
			return "", err
		}
		return a.C, nil
	})
}

// Disassemble writes one line per instruction, "addr:  mnemonic operands",
// starting at base. It stops after the configured instruction limit, at the
// end of code, or at the first byte sequence that does not decode.
//
// The text is truncated to len(out)-1 bytes and terminated with a NUL byte;
// the return value is the number of text bytes written. On failure out[0] is
// set to NUL when out is non-empty and -1 is returned with the error.
func (h *Handle) Disassemble(code []byte, base uint64, out []byte) (int, error) {
	return h.serve(errors.PhaseDisassemble, code, out, func() (string, error) {
		return h.disassemble(code, base), nil
	})
}

func (h *Handle) disassemble(code []byte, base uint64) string {
	tr := h.arch.Translator(image.NewMemory(code, base))

	var b strings.Builder
	emit := engine.EmitFunc(func(addr uint64, mnem, body string) {
		fmt.Fprintf(&b, "%x:  %s", addr, mnem)
		if body != "" {
			b.WriteByte(' ')
			b.WriteString(body)
		}
		b.WriteByte('\n')
	})

	var off uint64
	for count := 0; count < h.opts.maxInstructions && off < uint64(len(code)); count++ {
		n, err := tr.PrintAssembly(emit, base+off)
		if err != nil || n <= 0 {
			if err != nil {
				Logger().Debug("disassembly stopped", zap.Uint64("addr", base+off), zap.Error(err))
			}
			break
		}
		off += uint64(n)
	}
	return b.String()
}

// callHook observes every engine call made under a handle lock. Tests use
// it to check serialization.
var callHook func(h *Handle, phase errors.Phase)

// serve runs one request under the handle lock. out is only written once
// code has been consumed, so callers may pass overlapping buffers.
func (h *Handle) serve(phase errors.Phase, code, out []byte, run func() (string, error)) (int, error) {
	fail := func(err error) (int, error) {
		if len(out) > 0 {
			out[0] = 0
		}
		return -1, err
	}
	if h == nil {
		return fail(errors.NotInitialized(phase, "Decompiler"))
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != handleReady {
		return fail(errors.NotInitialized(phase, "Decompiler"))
	}
	if len(code) == 0 {
		return fail(errors.InvalidInput(phase, "Invalid input bytes"))
	}
	if len(out) == 0 {
		return fail(errors.InvalidInput(phase, "Invalid output buffer"))
	}

	text, err := h.call(phase, run)
	if err != nil {
		return fail(err)
	}
	return writeResult(out, text), nil
}

// call runs one engine operation and converts a panic into an error.
func (h *Handle) call(phase errors.Phase, run func() (string, error)) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = errors.Engine(phase, failureDetail(phase), errors.Recovered(phase, r))
			Logger().Warn("engine panic recovered", zap.String("phase", string(phase)), zap.Any("panic", r))
		}
	}()

	if callHook != nil {
		callHook(h, phase)
	}
	text, err = run()
	if err != nil {
		return "", errors.Engine(phase, failureDetail(phase), err)
	}
	return text, nil
}

func failureDetail(phase errors.Phase) string {
	if phase == errors.PhaseDisassemble {
		return "Disassembly failed"
	}
	return "Decompilation failed"
}

// writeResult copies as much of text as fits into out, leaving room for the
// terminating NUL, and returns the number of text bytes copied.
func writeResult(out []byte, text string) int {
	n := min(len(text), len(out)-1)
	copy(out, text[:n])
	out[n] = 0
	return n
}
