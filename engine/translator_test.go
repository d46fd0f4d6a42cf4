package engine

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	ferrors "github.com/wippyai/fission/errors"
	"github.com/wippyai/fission/image"
	"github.com/wippyai/fission/spec"
)

func TestTranslator_PrintAssembly(t *testing.T) {
	arch := newX86Arch(t, Options{})
	code := []byte{0x90, 0x90, 0xc3, 0x00, 0x00}
	tr := arch.Translator(image.NewMemory(code, 0x1000))

	var b strings.Builder
	emit := EmitFunc(func(addr uint64, mnem, body string) {
		fmt.Fprintf(&b, "%x:  %s", addr, mnem)
		if body != "" {
			b.WriteString(" " + body)
		}
		b.WriteByte('\n')
	})

	var off uint64
	for off < uint64(len(code)) {
		n, err := tr.PrintAssembly(emit, 0x1000+off)
		if err != nil {
			t.Fatalf("PrintAssembly at %#x: %v", 0x1000+off, err)
		}
		if n <= 0 {
			break
		}
		off += uint64(n)
	}

	want := "1000:  nop\n1001:  nop\n1002:  ret\n1003:  add byte ptr [rax], al\n"
	if b.String() != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestTranslator_CopiesBytes(t *testing.T) {
	arch := newX86Arch(t, Options{})
	code := []byte{0xb8, 0x01, 0x00, 0x00, 0x00}
	tr := arch.Translator(image.NewMemory(code, 0))

	inst, err := tr.Instruction(0)
	if err != nil {
		t.Fatal(err)
	}
	code[1] = 0xff
	if inst.Bytes[1] != 0x01 {
		t.Error("instruction bytes alias the caller buffer")
	}
	if len(inst.Bytes) != 5 {
		t.Errorf("len(Bytes) = %d, want 5", len(inst.Bytes))
	}
}

func TestTranslator_Alignment(t *testing.T) {
	lib, err := StartLibrary()
	if err != nil {
		t.Fatal(err)
	}
	dec, err := lib.NewDecoder(&spec.Sla{Decoder: "arm64", Mode: 64, MaxLength: 4})
	if err != nil {
		t.Fatal(err)
	}
	tr := NewTranslator(image.NewMemory(le32(0xd65f03c0), 0x4000), dec)

	if _, err := tr.Instruction(0x4002); !errors.Is(err, ferrors.ErrEngine) {
		t.Errorf("unaligned decode err = %v, want engine error", err)
	}
	inst, err := tr.Instruction(0x4000)
	if err != nil {
		t.Fatal(err)
	}
	if inst.Mnemonic != "ret" {
		t.Errorf("Mnemonic = %q, want ret", inst.Mnemonic)
	}
}

func TestDecoder_AlignmentFromSla(t *testing.T) {
	lib, err := StartLibrary()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		sla  spec.Sla
		want int
	}{
		{"x86 default", spec.Sla{Decoder: "x86", Mode: 64, MaxLength: 15}, 1},
		{"x86 from sla", spec.Sla{Decoder: "x86", Mode: 64, MaxLength: 15, Alignment: 2}, 2},
		{"arm64 floor", spec.Sla{Decoder: "arm64", Mode: 64, MaxLength: 4, Alignment: 1}, 4},
		{"arm64 from sla", spec.Sla{Decoder: "arm64", Mode: 64, MaxLength: 4, Alignment: 8}, 8},
		{"arm from sla", spec.Sla{Decoder: "arm", Mode: 32, MaxLength: 4, Alignment: 8}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec, err := lib.NewDecoder(&tt.sla)
			if err != nil {
				t.Fatal(err)
			}
			if got := dec.Alignment(); got != tt.want {
				t.Fatalf("Alignment = %d, want %d", got, tt.want)
			}
		})
	}

	dec, err := lib.NewDecoder(&spec.Sla{Decoder: "x86", Mode: 64, MaxLength: 15, Alignment: 2})
	if err != nil {
		t.Fatal(err)
	}
	tr := NewTranslator(image.NewMemory([]byte{0x90, 0x90, 0xc3, 0x00}, 0x1000), dec)
	if _, err := tr.Instruction(0x1001); !errors.Is(err, ferrors.ErrEngine) {
		t.Errorf("odd address err = %v, want engine error", err)
	}
	if inst, err := tr.Instruction(0x1002); err != nil || inst.Mnemonic != "ret" {
		t.Errorf("Instruction(0x1002) = %+v, %v", inst, err)
	}
}
