package wasmhost

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/fission/abi"
	"github.com/wippyai/fission/errors"
)

// ModuleName is the import module guests link against.
const ModuleName = "fission"

var (
	i32 = api.ValueTypeI32
	i64 = api.ValueTypeI64
)

// Host exposes an abi.Surface to guests. Each calling guest module is its
// own error context.
type Host struct {
	surface *abi.Surface
	log     *zap.Logger
}

// New returns a host backed by s.
func New(s *abi.Surface, log *zap.Logger) *Host {
	if log == nil {
		log = zap.NewNop()
	}
	return &Host{surface: s, log: log}
}

type export struct {
	name    string
	fn      api.GoModuleFunc
	params  []api.ValueType
	results []api.ValueType
}

func (h *Host) exports() []export {
	return []export{
		{"init", h.init, []api.ValueType{i32, i32}, []api.ValueType{i32}},
		{"destroy", h.destroy, []api.ValueType{i32}, nil},
		{"decompile", h.decompile, []api.ValueType{i32, i32, i32, i64, i32, i32}, []api.ValueType{i32}},
		{"disassemble", h.disassemble, []api.ValueType{i32, i32, i32, i64, i32, i32}, []api.ValueType{i32}},
		{"get_last_error", h.lastError, []api.ValueType{i32, i32}, []api.ValueType{i32}},
		{"is_available", h.isAvailable, nil, []api.ValueType{i32}},
	}
}

// Instantiate registers the host module in rt. It must run before any guest
// importing ModuleName is instantiated.
func (h *Host) Instantiate(ctx context.Context, rt wazero.Runtime) (api.Module, error) {
	b := rt.NewHostModuleBuilder(ModuleName)
	for _, e := range h.exports() {
		b.NewFunctionBuilder().
			WithGoModuleFunction(e.fn, e.params, e.results).
			WithName(e.name).
			Export(e.name)
	}
	mod, err := b.Instantiate(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseABI, errors.KindEngine, err, "host module instantiation failed")
	}
	return mod, nil
}

// Release drops the error slot kept for a guest that has been closed.
func (h *Host) Release(guest api.Module) {
	h.surface.Forget(guest)
}

// init(spec_ptr, spec_len) -> handle
func (h *Host) init(_ context.Context, mod api.Module, stack []uint64) {
	dir, ok := h.read(mod, "spec_dir", stack[0], stack[1])
	if !ok {
		stack[0] = 0
		return
	}
	stack[0] = api.EncodeU32(uint32(h.surface.Init(mod, string(dir))))
}

// destroy(handle)
func (h *Host) destroy(_ context.Context, _ api.Module, stack []uint64) {
	h.surface.Destroy(abi.Handle(api.DecodeU32(stack[0])))
}

// decompile(handle, bytes_ptr, bytes_len, base, out_ptr, out_len) -> n
func (h *Host) decompile(_ context.Context, mod api.Module, stack []uint64) {
	h.request(mod, stack, h.surface.Decompile)
}

// disassemble(handle, bytes_ptr, bytes_len, base, out_ptr, out_len) -> n
func (h *Host) disassemble(_ context.Context, mod api.Module, stack []uint64) {
	h.request(mod, stack, h.surface.Disassemble)
}

type requestFunc func(ctx abi.ContextID, h abi.Handle, code []byte, base uint64, out []byte) int32

func (h *Host) request(mod api.Module, stack []uint64, run requestFunc) {
	handle := abi.Handle(api.DecodeU32(stack[0]))
	base := stack[3]

	// out is a view of guest memory; the surface writes through it.
	out, ok := h.read(mod, "output buffer", stack[4], stack[5])
	if !ok {
		stack[0] = api.EncodeI32(abi.Failure)
		return
	}
	code, ok := h.read(mod, "input bytes", stack[1], stack[2])
	if !ok {
		if len(out) > 0 {
			out[0] = 0
		}
		stack[0] = api.EncodeI32(abi.Failure)
		return
	}
	stack[0] = api.EncodeI32(run(mod, handle, code, base, out))
}

// get_last_error(out_ptr, out_len) -> n, or -1 when no error is recorded.
func (h *Host) lastError(_ context.Context, mod api.Module, stack []uint64) {
	msg, ok := h.surface.LastError(mod)
	if !ok {
		stack[0] = api.EncodeI32(abi.Failure)
		return
	}
	out, ok := h.read(mod, "error buffer", stack[0], stack[1])
	if !ok || len(out) == 0 {
		stack[0] = api.EncodeI32(abi.Failure)
		return
	}
	n := min(len(msg), len(out)-1)
	copy(out, msg[:n])
	out[n] = 0
	stack[0] = api.EncodeI32(int32(n))
}

// is_available() -> 0 or 1
func (h *Host) isAvailable(_ context.Context, _ api.Module, stack []uint64) {
	stack[0] = api.EncodeI32(h.surface.IsAvailable())
}

// read returns a view of guest memory or records an out of bounds error
// for the guest.
func (h *Host) read(mod api.Module, what string, ptr, length uint64) ([]byte, bool) {
	mem := mod.Memory()
	if mem == nil {
		h.surface.SetError(mod, errors.InvalidInput(errors.PhaseABI, "guest exports no memory"))
		return nil, false
	}
	off, n := api.DecodeU32(ptr), api.DecodeU32(length)
	buf, ok := mem.Read(off, n)
	if !ok {
		err := errors.OutOfBounds(errors.PhaseABI, what, uint64(off), uint64(n), uint64(mem.Size()))
		h.surface.SetError(mod, err)
		h.log.Debug("guest pointer out of bounds",
			zap.String("module", mod.Name()),
			zap.String("what", what),
			zap.Uint32("ptr", off),
			zap.Uint32("len", n))
		return nil, false
	}
	return buf, true
}
