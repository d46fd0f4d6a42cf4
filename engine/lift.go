package engine

import (
	"fmt"
	"strings"

	"github.com/wippyai/fission/spec"
)

type statement struct {
	text    string
	addr    uint64
	label   uint64
	ref     uint64
	isLabel bool
	hasRef  bool
}

func labelName(addr uint64) string { return fmt.Sprintf("code_%x", addr) }

// FunctionName is the synthesized name of a function at addr.
func FunctionName(addr uint64) string { return fmt.Sprintf("func_%x", addr) }

var binaryOps = map[string]string{
	"add": "+", "sub": "-", "and": "&", "or": "|", "orr": "|",
	"xor": "^", "eor": "^", "shl": "<<", "sal": "<<", "lsl": "<<",
	"shr": ">>", "lsr": ">>", "sar": ">>", "asr": ">>",
	"mul": "*", "imul": "*",
}

var moveOps = map[string]bool{
	"mov": true, "movabs": true, "movzx": true, "movsx": true, "movsxd": true,
	"movz": true, "movw": true,
}

var loadOps = map[string]bool{
	"ldr": true, "ldrb": true, "ldrh": true, "ldrsb": true, "ldrsh": true,
	"ldrsw": true, "ldur": true, "ldurb": true, "ldurh": true,
}

var storeOps = map[string]bool{
	"str": true, "strb": true, "strh": true, "stur": true, "sturb": true, "sturh": true,
}

var sizePrefixes = []struct {
	prefix string
	ctype  string
}{
	{"xmmword ptr ", "uint128_t"},
	{"qword ptr ", "uint64_t"},
	{"dword ptr ", "uint32_t"},
	{"word ptr ", "uint16_t"},
	{"byte ptr ", "uint8_t"},
}

// lifter turns single instructions into C-like statements.
type lifter struct {
	regs spec.Registers
	word int
}

func newLifter(sla *spec.Sla) *lifter {
	word := sla.Mode / 8
	if word <= 0 {
		word = 4
	}
	return &lifter{regs: sla.Registers, word: word}
}

func (l *lifter) statements(inst Instruction, labels map[uint64]bool) []statement {
	m := strings.ToLower(inst.Mnemonic)
	ops := splitOperands(inst.Operands)
	at := func(text string) statement { return statement{text: text, addr: inst.Address} }
	jump := func(prefix string) statement {
		if labels[inst.Target] {
			return statement{
				text:   prefix + "goto " + labelName(inst.Target) + ";",
				addr:   inst.Address,
				ref:    inst.Target,
				hasRef: true,
			}
		}
		return at(prefix + "return " + FunctionName(inst.Target) + "();")
	}

	switch inst.Flow {
	case FlowReturn:
		return []statement{at("return;")}
	case FlowHalt:
		return []statement{at("halt();")}
	case FlowCall:
		return []statement{at(FunctionName(inst.Target) + "();")}
	case FlowIndirectCall:
		return []statement{at("(*(code *)" + l.expr(last(ops)) + ")();")}
	case FlowIndirectJump:
		return []statement{at("goto *(code *)" + l.expr(last(ops)) + ";")}
	case FlowJump:
		return []statement{jump("")}
	case FlowBranch:
		cond := l.condition(m, ops)
		if !inst.HasTarget {
			return []statement{at("if (" + cond + ") return;")}
		}
		return []statement{jump("if (" + cond + ") ")}
	}

	switch {
	case strings.HasPrefix(m, "nop"):
		return nil
	case m == "push" && len(ops) == 1:
		return []statement{
			at(fmt.Sprintf("%s = %s - %d;", l.regs.Stack, l.regs.Stack, l.word)),
			at(fmt.Sprintf("*(%s *)%s = %s;", l.wordType(), l.regs.Stack, l.expr(ops[0]))),
		}
	case m == "pop" && len(ops) == 1:
		return []statement{
			at(fmt.Sprintf("%s = *(%s *)%s;", l.expr(ops[0]), l.wordType(), l.regs.Stack)),
			at(fmt.Sprintf("%s = %s + %d;", l.regs.Stack, l.regs.Stack, l.word)),
		}
	case m == "lea" && len(ops) == 2:
		return []statement{at(fmt.Sprintf("%s = %s;", ops[0], l.address(ops[1])))}
	case moveOps[m] && len(ops) >= 2:
		return []statement{at(fmt.Sprintf("%s = %s;", l.expr(ops[0]), l.expr(ops[1])))}
	case loadOps[m] && len(ops) >= 2:
		return []statement{at(fmt.Sprintf("%s = %s;", ops[0], l.expr(ops[1])))}
	case storeOps[m] && len(ops) >= 2:
		return []statement{at(fmt.Sprintf("%s = %s;", l.expr(ops[1]), ops[0]))}
	case (m == "xor" || m == "eor") && len(ops) == 2 && ops[0] == ops[1]:
		return []statement{at(fmt.Sprintf("%s = 0;", l.expr(ops[0])))}
	case m == "inc" && len(ops) == 1:
		return []statement{at(fmt.Sprintf("%s = %s + 1;", l.expr(ops[0]), l.expr(ops[0])))}
	case m == "dec" && len(ops) == 1:
		return []statement{at(fmt.Sprintf("%s = %s - 1;", l.expr(ops[0]), l.expr(ops[0])))}
	case m == "neg" && len(ops) >= 1:
		return []statement{at(fmt.Sprintf("%s = -%s;", l.expr(ops[0]), l.expr(last(ops))))}
	case (m == "not" || m == "mvn") && len(ops) >= 1:
		return []statement{at(fmt.Sprintf("%s = ~%s;", l.expr(ops[0]), l.expr(last(ops))))}
	case (m == "cmp" || m == "cmn") && len(ops) == 2:
		return []statement{at(fmt.Sprintf("flags = %s - %s;", l.expr(ops[0]), l.expr(ops[1])))}
	case (m == "test" || m == "tst") && len(ops) == 2:
		return []statement{at(fmt.Sprintf("flags = %s & %s;", l.expr(ops[0]), l.expr(ops[1])))}
	}

	if op, ok := binaryOps[m]; ok {
		switch len(ops) {
		case 2:
			dst := l.expr(ops[0])
			return []statement{at(fmt.Sprintf("%s = %s %s %s;", dst, dst, op, l.expr(ops[1])))}
		case 3:
			return []statement{at(fmt.Sprintf("%s = %s %s %s;", l.expr(ops[0]), l.expr(ops[1]), op, l.expr(ops[2])))}
		}
	}

	args := make([]string, len(ops))
	for i, o := range ops {
		args[i] = l.expr(o)
	}
	name := strings.NewReplacer(".", "_", " ", "_").Replace(m)
	return []statement{at(name + "(" + strings.Join(args, ", ") + ");")}
}

func (l *lifter) wordType() string { return fmt.Sprintf("uint%d_t", l.word*8) }

// condition renders the guard of a conditional branch.
func (l *lifter) condition(m string, ops []string) string {
	switch m {
	case "cbz":
		return l.expr(first(ops)) + " == 0"
	case "cbnz":
		return l.expr(first(ops)) + " != 0"
	case "tbz", "tbnz":
		cmp := " == 0"
		if m == "tbnz" {
			cmp = " != 0"
		}
		bit := "0"
		if len(ops) > 1 {
			bit = l.expr(ops[1])
		}
		return fmt.Sprintf("((%s >> %s) & 1)%s", l.expr(first(ops)), bit, cmp)
	}

	var cc string
	switch {
	case strings.HasPrefix(m, "b."):
		cc = m[2:]
	case strings.HasPrefix(m, "j"):
		cc = m[1:]
	case strings.HasPrefix(m, "loop"):
		cc = m
	case len(m) > 2:
		cc = m[len(m)-2:]
	default:
		cc = m
	}
	return "cc_" + cc
}

// expr renders an operand as a C expression.
func (l *lifter) expr(op string) string {
	op = strings.TrimSpace(op)
	ctype := ""
	for _, p := range sizePrefixes {
		if strings.HasPrefix(op, p.prefix) {
			ctype = p.ctype
			op = strings.TrimPrefix(op, p.prefix)
			break
		}
	}

	if i := strings.IndexByte(op, '['); i >= 0 && strings.HasSuffix(op, "]") {
		if ctype == "" {
			ctype = l.wordType()
		}
		return "*(" + ctype + " *)(" + l.address(op[i:]) + ")"
	}
	return strings.TrimPrefix(op, "#")
}

// address renders a memory operand's effective address.
func (l *lifter) address(op string) string {
	op = strings.TrimSpace(op)
	for _, p := range sizePrefixes {
		op = strings.TrimPrefix(op, p.prefix)
	}
	if i := strings.IndexByte(op, '['); i >= 0 && strings.HasSuffix(op, "]") {
		op = op[i+1 : len(op)-1]
	}
	parts := splitOperands(op)
	for i, p := range parts {
		parts[i] = strings.TrimPrefix(p, "#")
	}
	return strings.Join(parts, " + ")
}

// splitOperands splits operand text on top-level commas.
func splitOperands(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '{', '(':
			depth++
		case ']', '}', ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(out, strings.TrimSpace(s[start:]))
}

func first(ops []string) string {
	if len(ops) == 0 {
		return ""
	}
	return ops[0]
}

func last(ops []string) string {
	if len(ops) == 0 {
		return ""
	}
	return ops[len(ops)-1]
}
