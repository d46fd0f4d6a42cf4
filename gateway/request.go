package gateway

import (
	"github.com/wippyai/fission"
	"github.com/wippyai/fission/engine"
	"github.com/wippyai/fission/errors"
	"github.com/wippyai/fission/image"
	"github.com/wippyai/fission/spec"
)

// Request describes an analysis over caller-supplied memory. When Image is
// set it is used as is; otherwise Code is mapped at Base. The image is only
// used for the duration of the call.
type Request struct {
	Image    fission.Image
	Language string // empty selects the handle's language
	Code     []byte
	Base     uint64
	Entry    uint64
}

func (r Request) image() (fission.Image, error) {
	if r.Image != nil {
		return r.Image, nil
	}
	if len(r.Code) == 0 {
		return nil, errors.InvalidInput(errors.PhaseDecompile, "Invalid input bytes")
	}
	return image.NewMemory(r.Code, r.Base), nil
}

// Analyze decompiles the function at req.Entry and returns the structured
// result. A budget breakpoint yields a result with Complete set to false.
func (h *Handle) Analyze(req Request) (*engine.Analysis, error) {
	if h == nil {
		return nil, errors.NotInitialized(errors.PhaseDecompile, "Decompiler")
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != handleReady {
		return nil, errors.NotInitialized(errors.PhaseDecompile, "Decompiler")
	}
	img, err := req.image()
	if err != nil {
		return nil, err
	}
	arch, err := h.architecture(req.Language)
	if err != nil {
		return nil, err
	}

	var out *engine.Analysis
	_, err = h.call(errors.PhaseDecompile, func() (string, error) {
		a, err := arch.Decompile(img, req.Entry)
		if err != nil {
			return "", err
		}
		out = a
		return a.C, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Instructions decodes up to limit instructions linearly from req.Entry.
// Decoding stops early at the first undecodable bytes or, for bounded
// images, when the next address leaves the image. A limit of zero or less
// selects the handle's instruction limit.
func (h *Handle) Instructions(req Request, limit int) ([]engine.Instruction, error) {
	if h == nil {
		return nil, errors.NotInitialized(errors.PhaseDisassemble, "Decompiler")
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != handleReady {
		return nil, errors.NotInitialized(errors.PhaseDisassemble, "Decompiler")
	}
	img, err := req.image()
	if err != nil {
		return nil, err
	}
	arch, err := h.architecture(req.Language)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = h.opts.maxInstructions
	}

	bounded, _ := img.(fission.Bounded)
	var out []engine.Instruction
	_, err = h.call(errors.PhaseDisassemble, func() (string, error) {
		tr := arch.Translator(img)
		addr := req.Entry
		for len(out) < limit {
			if bounded != nil && !bounded.Contains(addr) {
				break
			}
			inst, err := tr.Instruction(addr)
			if err != nil || inst.Length <= 0 {
				break
			}
			out = append(out, inst)
			next := inst.End()
			if next <= addr {
				break
			}
			addr = next
		}
		return "", nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Languages lists the languages of the handle's specification directory.
func (h *Handle) Languages() ([]spec.Language, error) {
	if h == nil {
		return nil, errors.NotInitialized(errors.PhaseCreate, "Decompiler")
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != handleReady {
		return nil, errors.NotInitialized(errors.PhaseCreate, "Decompiler")
	}
	return h.catalog.Languages(), nil
}

// architecture returns the architecture for id, building and caching it on
// first use. Callers hold h.mu.
func (h *Handle) architecture(id string) (*engine.Architecture, error) {
	if id == "" {
		return h.arch, nil
	}
	if a, ok := h.archs[id]; ok {
		return a, nil
	}
	a, err := h.lib.NewArchitecture(h.catalog, id, h.opts.analysis)
	if err != nil {
		return nil, err
	}
	h.archs[id] = a
	return a, nil
}
