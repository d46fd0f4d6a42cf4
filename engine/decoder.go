package engine

import (
	"fmt"
	"strings"

	"golang.org/x/arch/arm/armasm"
	"golang.org/x/arch/arm64/arm64asm"
	"golang.org/x/arch/x86/x86asm"

	"github.com/wippyai/fission/spec"
)

// Decoder turns raw bytes at an address into one instruction.
type Decoder interface {
	// Decode decodes the instruction at the start of src, which was read from addr.
	Decode(src []byte, addr uint64) (Instruction, error)
	// MaxLength is the longest encoding the decoder may need.
	MaxLength() int
	// Alignment is the required instruction address alignment, taken from
	// the specification and never below the architecture's own.
	Alignment() int
}

// Backend builds a decoder for a compiled specification.
type Backend func(sla *spec.Sla) (Decoder, error)

func newX86(sla *spec.Sla) (Decoder, error) {
	switch sla.Mode {
	case 16, 32, 64:
	default:
		return nil, fmt.Errorf("x86 decoder: unsupported mode %d", sla.Mode)
	}
	return &x86Decoder{mode: sla.Mode, max: sla.MaxLength, align: max(sla.Alignment, 1)}, nil
}

type x86Decoder struct {
	mode  int
	max   int
	align int
}

func (d *x86Decoder) MaxLength() int { return d.max }
func (d *x86Decoder) Alignment() int { return d.align }

func (d *x86Decoder) Decode(src []byte, addr uint64) (Instruction, error) {
	inst, err := x86asm.Decode(src, d.mode)
	if err != nil {
		return Instruction{}, err
	}
	if inst.Len <= 0 {
		return Instruction{}, fmt.Errorf("x86 decoder: empty instruction at %#x", addr)
	}

	mnem, body := splitText(x86asm.IntelSyntax(inst, addr, nil))
	out := Instruction{
		Address:  addr,
		Length:   inst.Len,
		Mnemonic: mnem,
		Operands: body,
	}

	rel, direct := inst.Args[0].(x86asm.Rel)
	switch inst.Op {
	case x86asm.RET, x86asm.LRET, x86asm.IRET, x86asm.IRETD, x86asm.IRETQ:
		out.Flow = FlowReturn
	case x86asm.HLT, x86asm.UD0, x86asm.UD1, x86asm.UD2:
		out.Flow = FlowHalt
	case x86asm.JMP, x86asm.LJMP:
		out.Flow = FlowIndirectJump
		if direct {
			out.Flow = FlowJump
		}
	case x86asm.CALL, x86asm.LCALL:
		out.Flow = FlowIndirectCall
		if direct {
			out.Flow = FlowCall
		}
	case x86asm.JA, x86asm.JAE, x86asm.JB, x86asm.JBE, x86asm.JCXZ, x86asm.JE,
		x86asm.JECXZ, x86asm.JG, x86asm.JGE, x86asm.JL, x86asm.JLE, x86asm.JNE,
		x86asm.JNO, x86asm.JNP, x86asm.JNS, x86asm.JO, x86asm.JP, x86asm.JRCXZ,
		x86asm.JS, x86asm.LOOP, x86asm.LOOPE, x86asm.LOOPNE:
		out.Flow = FlowBranch
	}

	if direct && out.Flow != FlowIndirectJump && out.Flow != FlowIndirectCall {
		target := out.End() + uint64(int64(rel))
		if d.mode < 64 {
			target &= 1<<uint(d.mode) - 1
		}
		out.Target, out.HasTarget = target, true
	}
	return out, nil
}

func newARM64(sla *spec.Sla) (Decoder, error) {
	return arm64Decoder{align: max(sla.Alignment, 4)}, nil
}

type arm64Decoder struct {
	align int
}

func (arm64Decoder) MaxLength() int   { return 4 }
func (d arm64Decoder) Alignment() int { return d.align }

func (arm64Decoder) Decode(src []byte, addr uint64) (Instruction, error) {
	inst, err := arm64asm.Decode(src)
	if err != nil {
		return Instruction{}, err
	}

	mnem, body := splitText(arm64asm.GNUSyntax(inst))
	out := Instruction{
		Address:  addr,
		Length:   4,
		Mnemonic: mnem,
		Operands: body,
	}

	var conditional bool
	for _, arg := range inst.Args {
		switch a := arg.(type) {
		case arm64asm.PCRel:
			out.Target, out.HasTarget = addr+uint64(int64(a)), true
		case arm64asm.Cond:
			// AL and NV both mean always.
			conditional = a.Value>>1 != 7
		}
	}

	switch inst.Op.String() {
	case "B":
		out.Flow = FlowJump
		if conditional {
			out.Flow = FlowBranch
		}
	case "BL":
		out.Flow = FlowCall
	case "BR", "BRAA", "BRAAZ", "BRAB", "BRABZ":
		out.Flow = FlowIndirectJump
	case "BLR", "BLRAA", "BLRAAZ", "BLRAB", "BLRABZ":
		out.Flow = FlowIndirectCall
	case "RET", "RETAA", "RETAB", "ERET", "ERETAA", "ERETAB":
		out.Flow = FlowReturn
	case "CBZ", "CBNZ", "TBZ", "TBNZ":
		out.Flow = FlowBranch
	case "BRK", "HLT", "UDF":
		out.Flow = FlowHalt
	}
	if out.Flow == FlowNone {
		// PC-relative data references such as ADR and LDR literal.
		out.HasTarget = false
		out.Target = 0
	}
	return out, nil
}

func newARM(sla *spec.Sla) (Decoder, error) {
	if sla.Mode != 0 && sla.Mode != 32 {
		return nil, fmt.Errorf("arm decoder: unsupported mode %d", sla.Mode)
	}
	return armDecoder{align: max(sla.Alignment, 4)}, nil
}

type armDecoder struct {
	align int
}

func (armDecoder) MaxLength() int   { return 4 }
func (d armDecoder) Alignment() int { return d.align }

func (armDecoder) Decode(src []byte, addr uint64) (Instruction, error) {
	inst, err := armasm.Decode(src, armasm.ModeARM)
	if err != nil {
		return Instruction{}, err
	}

	mnem, body := splitText(armasm.GNUSyntax(inst))
	out := Instruction{
		Address:  addr,
		Length:   inst.Len,
		Mnemonic: mnem,
		Operands: body,
	}

	name, cond, _ := strings.Cut(inst.Op.String(), ".")
	conditional := cond != "" && cond != "ZZ"

	var target uint64
	var direct bool
	for _, arg := range inst.Args {
		if rel, ok := arg.(armasm.PCRel); ok {
			target = uint64(uint32(int64(addr) + 8 + int64(rel)))
			direct = true
		}
	}

	switch name {
	case "B":
		out.Flow = FlowJump
		if conditional {
			out.Flow = FlowBranch
		}
	case "BL", "BLX":
		out.Flow = FlowIndirectCall
		if direct {
			out.Flow = FlowCall
		}
	case "BX":
		out.Flow = FlowIndirectJump
		if r, ok := inst.Args[0].(armasm.Reg); ok && r == armasm.LR {
			out.Flow = FlowReturn
		}
	case "POP", "LDM":
		for _, arg := range inst.Args {
			if list, ok := arg.(armasm.RegList); ok && list&(1<<15) != 0 {
				out.Flow = FlowReturn
			}
		}
	case "MOV":
		if r, ok := inst.Args[0].(armasm.Reg); ok && r == armasm.PC {
			out.Flow = FlowIndirectJump
			if src, ok := inst.Args[1].(armasm.Reg); ok && src == armasm.LR {
				out.Flow = FlowReturn
			}
		}
	case "BKPT", "UDF":
		out.Flow = FlowHalt
	}

	if conditional && (out.Flow == FlowReturn || out.Flow == FlowIndirectJump) {
		// Falls through when the condition does not hold.
		out.Flow = FlowBranch
	}
	if direct && (out.Flow == FlowJump || out.Flow == FlowBranch || out.Flow == FlowCall) {
		out.Target, out.HasTarget = target, true
	}
	return out, nil
}
