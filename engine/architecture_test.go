package engine

import (
	"errors"
	"strings"
	"testing"

	ferrors "github.com/wippyai/fission/errors"
	"github.com/wippyai/fission/image"
	"github.com/wippyai/fission/spec"
)

const languagesDir = "../languages"

func newX86Arch(t *testing.T, opts Options) *Architecture {
	t.Helper()
	lib, err := StartLibrary(languagesDir)
	if err != nil {
		t.Fatalf("StartLibrary: %v", err)
	}
	cat, err := spec.LoadDir(languagesDir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	arch, err := lib.NewArchitecture(cat, "", opts)
	if err != nil {
		t.Fatalf("NewArchitecture: %v", err)
	}
	return arch
}

// fakeDecoder serves prepared instructions by address.
type fakeDecoder struct {
	insts map[uint64]Instruction
	fail  map[uint64]bool
	calls int
}

func (d *fakeDecoder) MaxLength() int { return 4 }
func (d *fakeDecoder) Alignment() int { return 1 }

func (d *fakeDecoder) Decode(src []byte, addr uint64) (Instruction, error) {
	d.calls++
	if d.fail[addr] {
		return Instruction{}, errors.New("unknown opcode")
	}
	inst, ok := d.insts[addr]
	if !ok {
		return Instruction{Address: addr, Length: 1, Mnemonic: "nop"}, nil
	}
	inst.Address = addr
	return inst, nil
}

func fakeArch(dec Decoder, opts Options) *Architecture {
	sla := &spec.Sla{Decoder: "fake", Mode: 64, MaxLength: 4, Registers: spec.Registers{Stack: "sp"}}
	return newArchitecture(spec.Language{ID: "fake:LE:64:default"}, sla, dec, opts)
}

func TestDecompile_X86Function(t *testing.T) {
	code := []byte{
		0x55,             // push rbp
		0x48, 0x89, 0xe5, // mov rbp, rsp
		0x31, 0xc0, // xor eax, eax
		0x85, 0xff, // test edi, edi
		0x74, 0x05, // jz 0x100f
		0xb8, 0x01, 0x00, 0x00, 0x00, // mov eax, 0x1
		0x5d, // pop rbp
		0xc3, // ret
	}
	arch := newX86Arch(t, Options{})

	a, err := arch.Decompile(image.NewMemory(code, 0x1000), 0x1000)
	if err != nil {
		t.Fatalf("Decompile: %v", err)
	}
	if !a.Complete {
		t.Errorf("expected complete analysis, warnings: %v", a.Warnings)
	}
	if a.Name != "func_1000" || a.Signature != "func_1000()" {
		t.Errorf("Name/Signature = %q/%q", a.Name, a.Signature)
	}
	if len(a.Blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(a.Blocks))
	}
	starts := []uint64{0x1000, 0x100a, 0x100f}
	for i, b := range a.Blocks {
		if b.Start != starts[i] || b.ID != starts[i] {
			t.Errorf("block %d starts at %#x, want %#x", i, b.Start, starts[i])
		}
	}
	if got := a.Blocks[2].End; got != 0x1011 {
		t.Errorf("last block ends at %#x, want 0x1011", got)
	}

	for _, want := range []string{
		"void func_1000(void)",
		"eax = 0;",
		"if (cc_z) goto code_100f;",
		"code_100f:",
		"rbp = rsp;",
		"return;",
	} {
		if !strings.Contains(a.C, want) {
			t.Errorf("C output missing %q:\n%s", want, a.C)
		}
	}
	if strings.Contains(a.C, "code_1000:") {
		t.Errorf("unreferenced entry label printed:\n%s", a.C)
	}
}

func TestDecompile_ReusesScope(t *testing.T) {
	arch := newX86Arch(t, Options{})
	img := image.NewMemory([]byte{0x90, 0xc3}, 0x2000)

	first, err := arch.Decompile(img, 0x2000)
	if err != nil {
		t.Fatal(err)
	}
	second, err := arch.Decompile(img, 0x2000)
	if err != nil {
		t.Fatal(err)
	}
	if first.C != second.C {
		t.Errorf("repeat decompile differs:\n%s\n---\n%s", first.C, second.C)
	}
	if arch.Scope().Functions() != 1 {
		t.Errorf("scope holds %d functions, want 1", arch.Scope().Functions())
	}
	fd := arch.Scope().FindFunction(0x2000)
	if fd == nil || fd.tr != nil {
		t.Fatal("function should exist and not retain the image")
	}
	if fd.insts != nil || fd.blocks != nil || fd.body != nil || fd.bad != nil {
		t.Errorf("analysis state retained after decompile: %d insts, %d blocks, %d statements",
			len(fd.insts), len(fd.blocks), len(fd.body))
	}
	if !fd.IsProcStarted() || fd.Name != "func_2000" {
		t.Errorf("symbol not kept: %+v", fd)
	}
	if len(second.Blocks) == 0 || len(second.Blocks[0].Instructions) != 2 {
		t.Errorf("result lost its blocks: %+v", second.Blocks)
	}
}

func TestDecompile_Breakpoint(t *testing.T) {
	code := make([]byte, 300)
	for i := range code {
		code[i] = 0x90
	}
	arch := newX86Arch(t, Options{MaxInstructions: 50})

	a, err := arch.Decompile(image.NewMemory(code, 0), 0)
	if err != nil {
		t.Fatalf("breakpoint must not be an error: %v", err)
	}
	if a.Complete {
		t.Error("analysis should be incomplete")
	}
	if !strings.Contains(a.C, "Analysis incomplete") {
		t.Errorf("missing partial output marker:\n%s", a.C)
	}
	n := 0
	for _, b := range a.Blocks {
		n += len(b.Instructions)
	}
	if n != 50 {
		t.Errorf("recovered %d instructions, want 50", n)
	}
}

func TestDecompile_StepBudget(t *testing.T) {
	dec := &fakeDecoder{}
	arch := fakeArch(dec, Options{MaxSteps: 10, MaxInstructions: 1000})

	a, err := arch.Decompile(image.NewMemory(make([]byte, 100), 0), 0)
	if err != nil {
		t.Fatal(err)
	}
	if a.Complete {
		t.Error("step budget should stop analysis")
	}
	if dec.calls != 10 {
		t.Errorf("decoder called %d times, want 10", dec.calls)
	}
}

func TestDecompile_StaysInImage(t *testing.T) {
	dec := &fakeDecoder{insts: map[uint64]Instruction{
		0x10: {Length: 2, Mnemonic: "jmp", Flow: FlowBranch, Target: 0x9000, HasTarget: true},
		0x12: {Length: 1, Mnemonic: "ret", Flow: FlowReturn},
	}}
	arch := fakeArch(dec, Options{})

	a, err := arch.Decompile(image.NewMemory(make([]byte, 8), 0x10), 0x10)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Complete {
		t.Errorf("unexpected breakpoint: %v", a.Warnings)
	}
	if dec.calls != 2 {
		t.Errorf("decoder called %d times, want 2", dec.calls)
	}
	if !strings.Contains(a.C, "return func_9000();") {
		t.Errorf("branch out of the image should print as a tail call:\n%s", a.C)
	}
}

func TestDecompile_BadInstruction(t *testing.T) {
	dec := &fakeDecoder{fail: map[uint64]bool{0x1: true}}
	arch := fakeArch(dec, Options{})

	a, err := arch.Decompile(image.NewMemory(make([]byte, 4), 0), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(a.C, "halt_baddata();") {
		t.Errorf("missing bad data marker:\n%s", a.C)
	}
	if len(a.Warnings) == 0 {
		t.Error("expected a warning for the bad instruction")
	}
}

func TestDecompile_EmptyEntry(t *testing.T) {
	dec := &fakeDecoder{fail: map[uint64]bool{0x0: true}}
	arch := fakeArch(dec, Options{})

	a, err := arch.Decompile(image.NewMemory([]byte{0}, 0), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Blocks) != 0 {
		t.Errorf("got %d blocks", len(a.Blocks))
	}
	if !strings.Contains(a.C, "halt_baddata();") {
		t.Errorf("empty body should print bad data:\n%s", a.C)
	}
}

func TestLibrary(t *testing.T) {
	lib, err := StartLibrary()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"arm", "arm64", "x86"}
	got := lib.Backends()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Backends = %v, want %v", got, want)
	}

	if _, err := lib.NewDecoder(&spec.Sla{Decoder: "mips"}); !errors.Is(err, ferrors.ErrUnsupported) {
		t.Errorf("unknown decoder err = %v", err)
	}
	if _, err := lib.NewDecoder(&spec.Sla{Decoder: "x86", Mode: 12}); !errors.Is(err, ferrors.ErrSpec) {
		t.Errorf("bad mode err = %v", err)
	}

	if _, err := StartLibrary(t.TempDir()); !errors.Is(err, ferrors.ErrSpec) {
		t.Errorf("empty spec dir err = %v, want spec error", err)
	}
}
