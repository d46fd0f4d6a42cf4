package engine

import (
	"github.com/wippyai/fission"
	"github.com/wippyai/fission/errors"
)

// AssemblyEmit receives the formatted text of decoded instructions.
type AssemblyEmit interface {
	Dump(addr uint64, mnem, body string)
}

// EmitFunc adapts a function to AssemblyEmit.
type EmitFunc func(addr uint64, mnem, body string)

// Dump implements AssemblyEmit.
func (f EmitFunc) Dump(addr uint64, mnem, body string) { f(addr, mnem, body) }

// Translator decodes instructions from an image. It is bound to the image
// for the duration of one request and must not be kept afterwards.
type Translator struct {
	img fission.Image
	dec Decoder
	buf []byte
}

// NewTranslator binds a decoder to an image.
func NewTranslator(img fission.Image, dec Decoder) *Translator {
	return &Translator{
		img: img,
		dec: dec,
		buf: make([]byte, max(dec.MaxLength(), 1)),
	}
}

// Image returns the bound image.
func (t *Translator) Image() fission.Image { return t.img }

// Instruction decodes the instruction at addr. Bytes are copied out of the
// image so the result never aliases the caller's buffer.
func (t *Translator) Instruction(addr uint64) (Instruction, error) {
	if a := uint64(t.dec.Alignment()); a > 1 && addr%a != 0 {
		return Instruction{}, errors.New(errors.PhaseDisassemble, errors.KindEngine).
			Value(addr).
			Detail("unaligned instruction address %#x", addr).
			Build()
	}

	t.img.LoadFill(t.buf, addr)
	inst, err := t.dec.Decode(t.buf, addr)
	if err != nil {
		return Instruction{}, errors.New(errors.PhaseDisassemble, errors.KindEngine).
			Value(addr).
			Cause(err).
			Detail("bad instruction at %#x", addr).
			Build()
	}
	if inst.Length > len(t.buf) {
		inst.Length = len(t.buf)
	}
	inst.Bytes = append([]byte(nil), t.buf[:inst.Length]...)
	return inst, nil
}

// PrintAssembly decodes one instruction at addr, hands its text to emit and
// returns its length. A length of zero means nothing could be decoded.
func (t *Translator) PrintAssembly(emit AssemblyEmit, addr uint64) (int, error) {
	inst, err := t.Instruction(addr)
	if err != nil {
		return 0, err
	}
	emit.Dump(inst.Address, inst.Mnemonic, inst.Operands)
	return inst.Length, nil
}
