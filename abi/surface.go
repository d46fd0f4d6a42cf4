package abi

import (
	"go.uber.org/zap"

	"github.com/wippyai/fission/errors"
	"github.com/wippyai/fission/errslot"
	"github.com/wippyai/fission/gateway"
	"github.com/wippyai/fission/resource"
)

// Handle is the number a foreign caller holds for an engine handle.
// 0 means no handle.
type Handle = resource.Handle

// ContextID identifies a calling context for error reporting.
type ContextID any

// typeDecompiler tags engine handles in the handle table.
const typeDecompiler uint32 = 1

// Failure is the sentinel returned by byte-producing calls.
const Failure int32 = -1

// Surface is the raw-shaped boundary shared by the foreign transports.
// Every method recovers panics and reports failures through sentinel
// returns plus the caller's error slot.
type Surface struct {
	table *resource.Table
	slots errslot.Slots
	opts  []gateway.Option
	log   *zap.Logger
}

type handleRef struct {
	h *gateway.Handle
}

func (r *handleRef) Drop() { r.h.Destroy() }

type tableLogger struct {
	log *zap.Logger
}

func (o *tableLogger) OnResourceEvent(e resource.Event) {
	o.log.Debug("handle "+e.Type.String(), zap.Uint32("handle", uint32(e.Handle)))
}

// NewSurface returns a surface whose handles are created with opts.
func NewSurface(log *zap.Logger, opts ...gateway.Option) *Surface {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Surface{
		table: resource.NewTable(),
		opts:  opts,
		log:   log,
	}
	s.table.Subscribe(&tableLogger{log: log})
	return s
}

// Init creates an engine handle for specDir and returns its number, or 0
// with the error recorded for ctx.
func (s *Surface) Init(ctx ContextID, specDir string) (h Handle) {
	defer s.recover(ctx, errors.PhaseCreate, func() { h = 0 })

	gh, err := gateway.Create(specDir, s.opts...)
	if err != nil {
		s.slots.Set(ctx, err)
		return 0
	}
	h = s.table.Insert(typeDecompiler, &handleRef{h: gh})
	if h == 0 {
		gh.Destroy()
		s.slots.Set(ctx, errors.New(errors.PhaseCreate, errors.KindUnsupported).
			Detail("Failed to create decompiler: handle table exhausted").
			Build())
	}
	return h
}

// Destroy releases a handle. 0 and unknown handles are ignored.
func (s *Surface) Destroy(h Handle) {
	defer s.recover(nil, errors.PhaseABI, func() {})
	s.table.Remove(h)
}

// Decompile runs a decompile request on h and returns the bytes written or -1.
func (s *Surface) Decompile(ctx ContextID, h Handle, code []byte, base uint64, out []byte) int32 {
	return s.request(ctx, errors.PhaseDecompile, h, out, func(gh *gateway.Handle) (int, error) {
		return gh.Decompile(code, base, out)
	})
}

// Disassemble runs a disassemble request on h and returns the bytes written or -1.
func (s *Surface) Disassemble(ctx ContextID, h Handle, code []byte, base uint64, out []byte) int32 {
	return s.request(ctx, errors.PhaseDisassemble, h, out, func(gh *gateway.Handle) (int, error) {
		return gh.Disassemble(code, base, out)
	})
}

func (s *Surface) request(ctx ContextID, phase errors.Phase, h Handle, out []byte, run func(*gateway.Handle) (int, error)) (n int32) {
	defer s.recover(ctx, phase, func() {
		n = Failure
		if len(out) > 0 {
			out[0] = 0
		}
	})

	gh := s.lookup(h)
	n64, err := run(gh)
	if err != nil {
		s.slots.Set(ctx, err)
		return Failure
	}
	return int32(n64)
}

// lookup returns the gateway handle for h, or nil. A nil handle makes the
// gateway report not-initialized.
func (s *Surface) lookup(h Handle) *gateway.Handle {
	v, ok := s.table.Lookup(h, typeDecompiler)
	if !ok {
		return nil
	}
	return v.(*handleRef).h
}

// LastError returns the last error recorded for ctx.
func (s *Surface) LastError(ctx ContextID) (string, bool) {
	return s.slots.Get(ctx)
}

// SetError records err for ctx. Transports use it for failures that happen
// before a request reaches the surface, such as bad pointers.
func (s *Surface) SetError(ctx ContextID, err error) {
	s.slots.Set(ctx, err)
}

// Forget drops the error slot of a context that no longer exists.
func (s *Surface) Forget(ctx ContextID) {
	s.slots.Clear(ctx)
}

// IsAvailable returns 1 once the library setup has succeeded, else 0.
func (s *Surface) IsAvailable() int32 {
	if gateway.IsAvailable() {
		return 1
	}
	return 0
}

// Handles returns the number of live handles.
func (s *Surface) Handles() int { return s.table.Len() }

// Close destroys every live handle.
func (s *Surface) Close() error {
	return s.table.Close()
}

func (s *Surface) recover(ctx ContextID, phase errors.Phase, fail func()) {
	if r := recover(); r != nil {
		err := errors.Recovered(phase, r)
		s.log.Error("panic at foreign boundary", zap.Error(err))
		if ctx != nil {
			s.slots.Set(ctx, err)
		}
		fail()
	}
}
