package engine

import "strings"

// Flow classifies how an instruction transfers control.
type Flow uint8

const (
	FlowNone         Flow = iota // falls through to the next instruction
	FlowJump                     // unconditional direct branch
	FlowBranch                   // conditional direct branch
	FlowCall                     // direct call, returns to the next instruction
	FlowIndirectJump             // branch through a register or memory
	FlowIndirectCall             // call through a register or memory
	FlowReturn                   // return to caller
	FlowHalt                     // trap, halt or undefined instruction
)

var flowNames = [...]string{
	FlowNone:         "none",
	FlowJump:         "jump",
	FlowBranch:       "branch",
	FlowCall:         "call",
	FlowIndirectJump: "indirect_jump",
	FlowIndirectCall: "indirect_call",
	FlowReturn:       "return",
	FlowHalt:         "halt",
}

func (f Flow) String() string {
	if int(f) < len(flowNames) {
		return flowNames[f]
	}
	return "unknown"
}

// FallsThrough reports whether execution may continue at the next instruction.
func (f Flow) FallsThrough() bool {
	switch f {
	case FlowNone, FlowBranch, FlowCall, FlowIndirectCall:
		return true
	}
	return false
}

// IsFlowControl reports whether the instruction alters sequential execution.
func (f Flow) IsFlowControl() bool { return f != FlowNone }

// Instruction is one decoded machine instruction.
type Instruction struct {
	Bytes     []byte
	Mnemonic  string
	Operands  string
	Address   uint64
	Target    uint64 // direct branch or call destination, valid when HasTarget
	Length    int
	Flow      Flow
	HasTarget bool
}

// End returns the address just past the instruction.
func (i Instruction) End() uint64 { return i.Address + uint64(i.Length) }

// Text returns the mnemonic and operands separated by a space.
func (i Instruction) Text() string {
	if i.Operands == "" {
		return i.Mnemonic
	}
	return i.Mnemonic + " " + i.Operands
}

// splitText separates a formatted instruction into mnemonic and operand text.
func splitText(text string) (mnem, body string) {
	text = strings.TrimSpace(text)
	mnem, body, _ = strings.Cut(text, " ")
	return mnem, strings.TrimSpace(body)
}
