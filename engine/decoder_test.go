package engine

import (
	"testing"

	"github.com/wippyai/fission/spec"
)

func le32(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func TestX86Decoder_Flow(t *testing.T) {
	dec, err := newX86(&spec.Sla{Decoder: "x86", Mode: 64, MaxLength: 15})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		code      []byte
		mnemonic  string
		flow      Flow
		target    uint64
		hasTarget bool
	}{
		{"nop", []byte{0x90}, "nop", FlowNone, 0, false},
		{"ret", []byte{0xc3}, "ret", FlowReturn, 0, false},
		{"call rel32", []byte{0xe8, 0x00, 0x00, 0x00, 0x00}, "call", FlowCall, 0x1005, true},
		{"call rax", []byte{0xff, 0xd0}, "call", FlowIndirectCall, 0, false},
		{"jmp self", []byte{0xeb, 0xfe}, "jmp", FlowJump, 0x1000, true},
		{"jmp rax", []byte{0xff, 0xe0}, "jmp", FlowIndirectJump, 0, false},
		{"jz", []byte{0x74, 0x02}, "jz", FlowBranch, 0x1004, true},
		{"hlt", []byte{0xf4}, "hlt", FlowHalt, 0, false},
		{"ud2", []byte{0x0f, 0x0b}, "ud2", FlowHalt, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := make([]byte, 15)
			copy(src, tt.code)
			inst, err := dec.Decode(src, 0x1000)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if inst.Length != len(tt.code) {
				t.Errorf("Length = %d, want %d", inst.Length, len(tt.code))
			}
			if inst.Mnemonic != tt.mnemonic {
				t.Errorf("Mnemonic = %q, want %q", inst.Mnemonic, tt.mnemonic)
			}
			if inst.Flow != tt.flow {
				t.Errorf("Flow = %v, want %v", inst.Flow, tt.flow)
			}
			if inst.HasTarget != tt.hasTarget || inst.Target != tt.target {
				t.Errorf("Target = %#x (%v), want %#x (%v)", inst.Target, inst.HasTarget, tt.target, tt.hasTarget)
			}
		})
	}
}

func TestX86Decoder_Modes(t *testing.T) {
	for _, mode := range []int{16, 32, 64} {
		if _, err := newX86(&spec.Sla{Mode: mode, MaxLength: 15}); err != nil {
			t.Errorf("mode %d: %v", mode, err)
		}
	}
	if _, err := newX86(&spec.Sla{Mode: 8, MaxLength: 15}); err == nil {
		t.Error("mode 8 should be rejected")
	}
}

func TestARM64Decoder_Flow(t *testing.T) {
	dec, _ := newARM64(&spec.Sla{Decoder: "arm64", Mode: 64, MaxLength: 4})

	tests := []struct {
		name      string
		word      uint32
		flow      Flow
		target    uint64
		hasTarget bool
	}{
		{"nop", 0xd503201f, FlowNone, 0, false},
		{"ret", 0xd65f03c0, FlowReturn, 0, false},
		{"bl", 0x94000002, FlowCall, 0x4008, true},
		{"b", 0x14000001, FlowJump, 0x4004, true},
		{"b.ne", 0x54000041, FlowBranch, 0x4008, true},
		{"br x16", 0xd61f0200, FlowIndirectJump, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := dec.Decode(le32(tt.word), 0x4000)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if inst.Length != 4 {
				t.Errorf("Length = %d", inst.Length)
			}
			if inst.Flow != tt.flow {
				t.Errorf("Flow = %v, want %v (%s)", inst.Flow, tt.flow, inst.Text())
			}
			if inst.HasTarget != tt.hasTarget || inst.Target != tt.target {
				t.Errorf("Target = %#x (%v), want %#x (%v)", inst.Target, inst.HasTarget, tt.target, tt.hasTarget)
			}
		})
	}
}

func TestARMDecoder_Flow(t *testing.T) {
	dec, err := newARM(&spec.Sla{Decoder: "arm", Mode: 32, MaxLength: 4})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		word      uint32
		flow      Flow
		target    uint64
		hasTarget bool
	}{
		{"mov", 0xe1a00001, FlowNone, 0, false},
		{"bx lr", 0xe12fff1e, FlowReturn, 0, false},
		{"bl", 0xeb000000, FlowCall, 0x8008, true},
		{"b", 0xea000000, FlowJump, 0x8008, true},
		{"beq", 0x0a000000, FlowBranch, 0x8008, true},
		{"pop pc", 0xe8bd8010, FlowReturn, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := dec.Decode(le32(tt.word), 0x8000)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if inst.Flow != tt.flow {
				t.Errorf("Flow = %v, want %v (%s)", inst.Flow, tt.flow, inst.Text())
			}
			if inst.HasTarget != tt.hasTarget || inst.Target != tt.target {
				t.Errorf("Target = %#x (%v), want %#x (%v)", inst.Target, inst.HasTarget, tt.target, tt.hasTarget)
			}
		})
	}
}

func TestFlow(t *testing.T) {
	for _, f := range []Flow{FlowNone, FlowBranch, FlowCall, FlowIndirectCall} {
		if !f.FallsThrough() {
			t.Errorf("%v should fall through", f)
		}
	}
	for _, f := range []Flow{FlowJump, FlowIndirectJump, FlowReturn, FlowHalt} {
		if f.FallsThrough() {
			t.Errorf("%v should not fall through", f)
		}
	}
	if FlowNone.IsFlowControl() || !FlowReturn.IsFlowControl() {
		t.Error("IsFlowControl mismatch")
	}
	if Flow(99).String() != "unknown" {
		t.Errorf("String = %q", Flow(99).String())
	}
}

func TestSplitText(t *testing.T) {
	tests := []struct {
		in, mnem, body string
	}{
		{"nop", "nop", ""},
		{"mov rbp, rsp", "mov", "rbp, rsp"},
		{"  ret  ", "ret", ""},
	}
	for _, tt := range tests {
		m, b := splitText(tt.in)
		if m != tt.mnem || b != tt.body {
			t.Errorf("splitText(%q) = %q, %q", tt.in, m, b)
		}
	}
}
