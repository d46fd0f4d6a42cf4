package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/wippyai/fission"
	"github.com/wippyai/fission/engine"
	"github.com/wippyai/fission/errors"
	"github.com/wippyai/fission/gateway"
	"github.com/wippyai/fission/image"
	"github.com/wippyai/fission/loader"
	"github.com/wippyai/fission/service/pb"
	"github.com/wippyai/fission/spec"
)

// maxRangeInstructions caps one DisassembleRange reply.
const maxRangeInstructions = 1 << 16

// session is the binary most recently loaded.
type session struct {
	img      fission.Image
	language string
	format   string
	entry    uint64
}

// Server holds one engine handle and at most one loaded binary. Requests
// are serialized by its mutex.
type Server struct {
	pb.UnimplementedDecompilerServiceServer

	opts    []gateway.Option
	log     *zap.Logger
	handle  *gateway.Handle
	session *session
	mu      sync.Mutex
}

var _ pb.DecompilerServiceServer = (*Server)(nil)

// NewServer creates the engine handle for specDir.
func NewServer(specDir string, log *zap.Logger, opts ...gateway.Option) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	h, err := gateway.Create(specDir, opts...)
	if err != nil {
		return nil, err
	}
	return &Server{opts: opts, log: log, handle: h}, nil
}

// Register adds the service to g.
func (s *Server) Register(g *grpc.Server) {
	pb.RegisterDecompilerServiceServer(g, s)
}

// Close releases the engine handle and the session.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	s.handle.Destroy()
}

func (s *Server) LoadBinary(_ context.Context, req *pb.LoadBinaryRequest) (*pb.LoadBinaryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	sess, err := s.load(req)
	if err != nil {
		s.log.Warn("load failed", zap.Error(err))
		return &pb.LoadBinaryResponse{ErrorMessage: errors.Message(err)}, nil
	}
	s.session = sess
	s.log.Info("binary loaded",
		zap.Int("bytes", len(req.BinaryContent)),
		zap.String("format", sess.format),
		zap.String("language", sess.language))
	return &pb.LoadBinaryResponse{
		Success:    true,
		Format:     sess.format,
		Language:   sess.language,
		EntryPoint: sess.entry,
	}, nil
}

func (s *Server) load(req *pb.LoadBinaryRequest) (*session, error) {
	if len(req.BinaryContent) == 0 {
		return nil, errors.InvalidInput(errors.PhaseService, "Empty binary content")
	}
	if req.SlaPath != "" && req.SlaPath != s.handle.SpecDir() {
		h, err := gateway.Create(req.SlaPath, s.opts...)
		if err != nil {
			return nil, err
		}
		s.handle.Destroy()
		s.handle = h
	}

	sess := &session{language: req.ArchSpec}
	if loader.Detect(req.BinaryContent) != "" {
		bin, err := loader.Parse(req.BinaryContent)
		if err != nil {
			return nil, err
		}
		sess.img = bin.Image()
		sess.format = string(bin.Format)
		sess.entry = bin.Entry
		if sess.language == "" {
			sess.language = bin.Language
		}
	} else {
		data := slices.Clone(req.BinaryContent)
		sess.img = image.NewMemory(data, req.BaseAddress).Named("raw")
		sess.format = "raw"
		sess.entry = req.BaseAddress
	}
	if sess.language == "" {
		sess.language = s.handle.Language()
	}

	langs, err := s.handle.Languages()
	if err != nil {
		return nil, err
	}
	if !slices.ContainsFunc(langs, func(l spec.Language) bool { return l.ID == sess.language }) {
		return nil, errors.NotFound(errors.PhaseService, "language", sess.language)
	}
	return sess, nil
}

func (s *Server) DecompileFunction(ctx context.Context, req *pb.DecompileRequest) (*pb.DecompileResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return &pb.DecompileResponse{ErrorMessage: "Binary not loaded"}, nil
	}
	if req.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(req.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	type result struct {
		a   *engine.Analysis
		err error
	}
	done := make(chan result, 1)
	h, sess := s.handle, s.session
	go func() {
		a, err := h.Analyze(gateway.Request{Image: sess.img, Language: sess.language, Entry: req.Address})
		done <- result{a, err}
	}()

	var r result
	select {
	case r = <-done:
	case <-ctx.Done():
		// The analysis keeps the handle until it finishes; later requests wait
		// on the handle lock.
		s.log.Warn("decompile abandoned", zap.Uint64("address", req.Address), zap.Error(ctx.Err()))
		return &pb.DecompileResponse{ErrorMessage: "Decompilation timed out"}, nil
	}
	if r.err != nil {
		return &pb.DecompileResponse{ErrorMessage: errors.Message(r.err)}, nil
	}

	a := r.a
	resp := &pb.DecompileResponse{
		Success:   true,
		CCode:     a.C,
		Signature: a.Signature,
		Complete:  a.Complete,
	}
	for _, b := range a.Blocks {
		block := &pb.BasicBlock{Id: b.ID, StartAddr: b.Start, EndAddr: b.End}
		for _, inst := range b.Instructions {
			block.Instructions = append(block.Instructions, toInstruction(inst))
		}
		resp.Blocks = append(resp.Blocks, block)
	}
	return resp, nil
}

func (s *Server) DisassembleRange(_ context.Context, req *pb.DisassembleRequest) (*pb.DisassembleResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return &pb.DisassembleResponse{ErrorMessage: "Binary not loaded"}, nil
	}
	if req.Length == 0 {
		return &pb.DisassembleResponse{ErrorMessage: "Invalid length"}, nil
	}

	limit := int(min(req.Length, maxRangeInstructions))
	insts, err := s.handle.Instructions(gateway.Request{
		Image:    s.session.img,
		Language: s.session.language,
		Entry:    req.Address,
	}, limit)
	if err != nil {
		return &pb.DisassembleResponse{ErrorMessage: errors.Message(err)}, nil
	}

	end := req.Address + uint64(req.Length)
	if end < req.Address {
		end = ^uint64(0)
	}
	resp := &pb.DisassembleResponse{Success: true}
	for _, inst := range insts {
		if inst.Address >= end {
			break
		}
		resp.Instructions = append(resp.Instructions, toInstruction(inst))
	}
	return resp, nil
}

func (s *Server) Ping(context.Context, *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Alive: true}, nil
}

func toInstruction(inst engine.Instruction) *pb.Instruction {
	return &pb.Instruction{
		Address:       inst.Address,
		Length:        uint32(inst.Length),
		Mnemonic:      inst.Mnemonic,
		Operands:      inst.Operands,
		IsFlowControl: inst.Flow.IsFlowControl(),
	}
}
