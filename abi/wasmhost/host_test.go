package wasmhost

import (
	"context"
	"strings"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/fission/abi"
)

const languagesDir = "../../languages"

// guestImports mirrors the host exports. The guest re-exports each import
// as "g_<name>" so tests can call through the real import path.
var guestImports = []struct {
	name    string
	params  []byte
	results []byte
}{
	{"init", []byte{0x7f, 0x7f}, []byte{0x7f}},
	{"destroy", []byte{0x7f}, nil},
	{"decompile", []byte{0x7f, 0x7f, 0x7f, 0x7e, 0x7f, 0x7f}, []byte{0x7f}},
	{"disassemble", []byte{0x7f, 0x7f, 0x7f, 0x7e, 0x7f, 0x7f}, []byte{0x7f}},
	{"get_last_error", []byte{0x7f, 0x7f}, []byte{0x7f}},
	{"is_available", nil, []byte{0x7f}},
}

func uleb(v uint32) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			out = append(out, b|0x80)
			continue
		}
		return append(out, b)
	}
}

func name(s string) []byte {
	return append(uleb(uint32(len(s))), s...)
}

func section(id byte, count int, body []byte) []byte {
	payload := append(uleb(uint32(count)), body...)
	out := append([]byte{id}, uleb(uint32(len(payload)))...)
	return append(out, payload...)
}

// guestWasm builds a module importing every host function, exporting a
// one page memory and one wrapper per import.
func guestWasm() []byte {
	n := len(guestImports)
	var types, imports, funcs, exports, code []byte
	for i, imp := range guestImports {
		types = append(types, 0x60)
		types = append(types, uleb(uint32(len(imp.params)))...)
		types = append(types, imp.params...)
		types = append(types, uleb(uint32(len(imp.results)))...)
		types = append(types, imp.results...)

		imports = append(imports, name(ModuleName)...)
		imports = append(imports, name(imp.name)...)
		imports = append(imports, 0x00)
		imports = append(imports, uleb(uint32(i))...)

		funcs = append(funcs, uleb(uint32(i))...)

		exports = append(exports, name("g_"+imp.name)...)
		exports = append(exports, 0x00)
		exports = append(exports, uleb(uint32(n+i))...)

		body := []byte{0x00}
		for p := range imp.params {
			body = append(body, 0x20)
			body = append(body, uleb(uint32(p))...)
		}
		body = append(body, 0x10)
		body = append(body, uleb(uint32(i))...)
		body = append(body, 0x0b)
		code = append(code, uleb(uint32(len(body)))...)
		code = append(code, body...)
	}
	exports = append(exports, name("memory")...)
	exports = append(exports, 0x02, 0x00)

	out := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	out = append(out, section(0x01, n, types)...)
	out = append(out, section(0x02, n, imports)...)
	out = append(out, section(0x03, n, funcs)...)
	out = append(out, section(0x05, 1, []byte{0x00, 0x01})...)
	out = append(out, section(0x07, n+1, exports)...)
	out = append(out, section(0x0a, n, code)...)
	return out
}

type guest struct {
	t   *testing.T
	ctx context.Context
	mod api.Module
}

func (g *guest) call(fn string, args ...uint64) int32 {
	g.t.Helper()
	res, err := g.mod.ExportedFunction("g_"+fn).Call(g.ctx, args...)
	if err != nil {
		g.t.Fatalf("%s: %v", fn, err)
	}
	if len(res) == 0 {
		return 0
	}
	return api.DecodeI32(res[0])
}

func (g *guest) write(off uint32, data []byte) {
	g.t.Helper()
	if !g.mod.Memory().Write(off, data) {
		g.t.Fatalf("write %d bytes at %#x", len(data), off)
	}
}

func (g *guest) text(off uint32, n int32) string {
	g.t.Helper()
	buf, ok := g.mod.Memory().Read(off, uint32(n)+1)
	if !ok {
		g.t.Fatalf("read %d bytes at %#x", n+1, off)
	}
	if buf[n] != 0 {
		g.t.Fatalf("text at %#x is not NUL terminated", off)
	}
	return string(buf[:n])
}

func (g *guest) lastError() string {
	g.t.Helper()
	n := g.call("get_last_error", 0x8000, 512)
	if n < 0 {
		return ""
	}
	return g.text(0x8000, n)
}

func setup(t *testing.T, s *abi.Surface, modName string) (*guest, *Host) {
	t.Helper()
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	t.Cleanup(func() { rt.Close(ctx) })

	host := New(s, nil)
	if _, err := host.Instantiate(ctx, rt); err != nil {
		t.Fatal(err)
	}
	mod, err := rt.InstantiateWithConfig(ctx, guestWasm(), wazero.NewModuleConfig().WithName(modName))
	if err != nil {
		t.Fatal(err)
	}
	return &guest{t: t, ctx: ctx, mod: mod}, host
}

func (g *guest) init(dir string) uint32 {
	g.t.Helper()
	g.write(0, []byte(dir))
	return uint32(g.call("init", 0, uint64(len(dir))))
}

func TestHost_Scenario(t *testing.T) {
	s := abi.NewSurface(nil)
	defer s.Close()
	g, _ := setup(t, s, "guest")

	h := g.init(languagesDir)
	if h == 0 {
		t.Fatalf("init failed: %s", g.lastError())
	}
	if g.call("is_available") != 1 {
		t.Fatal("is_available should be 1 after init")
	}
	if msg := g.lastError(); msg != "" {
		t.Fatalf("unexpected error %q", msg)
	}

	g.write(0x100, []byte{0x90, 0x90, 0xc3, 0x00, 0x00})
	n := g.call("disassemble", uint64(h), 0x100, 5, 0x1000, 0x200, 256)
	want := "1000:  nop\n1001:  nop\n1002:  ret\n1003:  add byte ptr [rax], al\n"
	if n != int32(len(want)) {
		t.Fatalf("disassemble = %d, want %d (%s)", n, len(want), g.lastError())
	}
	if got := g.text(0x200, n); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}

	n = g.call("disassemble", uint64(h), 0x100, 5, 0x1000, 0x200, 1)
	if n != 0 || g.text(0x200, 0) != "" {
		t.Errorf("cap 1: n = %d", n)
	}

	n = g.call("decompile", uint64(h), 0x100, 5, 0x1000, 0x400, 4096)
	if n <= 0 {
		t.Fatalf("decompile = %d (%s)", n, g.lastError())
	}
	if c := g.text(0x400, n); !strings.Contains(c, "func_1000") {
		t.Errorf("decompile output %q", c)
	}

	g.call("destroy", uint64(h))
	if n := g.call("disassemble", uint64(h), 0x100, 5, 0x1000, 0x200, 256); n != -1 {
		t.Fatalf("destroyed handle: n = %d", n)
	}
	if msg := g.lastError(); !strings.Contains(msg, "Decompiler not initialized") {
		t.Errorf("last error = %q", msg)
	}
}

func TestHost_OutOfBounds(t *testing.T) {
	s := abi.NewSurface(nil)
	defer s.Close()
	g, _ := setup(t, s, "guest")

	h := g.init(languagesDir)
	if h == 0 {
		t.Fatalf("init failed: %s", g.lastError())
	}
	g.write(0x100, []byte{0x90, 0xc3})

	tests := []struct {
		name string
		args []uint64
		what string
	}{
		{"input", []uint64{uint64(h), 0xfff0, 0x100, 0x1000, 0x200, 64}, "input bytes"},
		{"output", []uint64{uint64(h), 0x100, 2, 0x1000, 0xffff, 64}, "output buffer"},
		{"wrapped", []uint64{uint64(h), 0xffffffff, 2, 0x1000, 0x200, 64}, "input bytes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.t = t
			g.write(0x200, []byte{'x'})
			if n := g.call("disassemble", tt.args...); n != -1 {
				t.Fatalf("n = %d, want -1", n)
			}
			msg := g.lastError()
			if !strings.Contains(msg, "out_of_bounds at "+tt.what) {
				t.Errorf("last error = %q", msg)
			}
		})
	}
	g.t = t

	if got := g.call("init", 0xfffff, 4); got != 0 {
		t.Errorf("init with bad pointer = %d", got)
	}
	if msg := g.lastError(); !strings.Contains(msg, "spec_dir") {
		t.Errorf("last error = %q", msg)
	}
	if n := g.call("get_last_error", 0xffff, 64); n != -1 {
		t.Errorf("get_last_error into bad buffer = %d", n)
	}
}

func TestHost_GuestsHaveSeparateErrors(t *testing.T) {
	s := abi.NewSurface(nil)
	defer s.Close()
	a, ha := setup(t, s, "a")
	b, _ := setup(t, s, "b")

	if h := a.init("no-such-dir"); h != 0 {
		t.Fatalf("init = %d, want 0", h)
	}
	if a.lastError() == "" {
		t.Fatal("guest a should have an error")
	}
	if msg := b.lastError(); msg != "" {
		t.Fatalf("guest b sees %q", msg)
	}

	ha.Release(a.mod)
	if msg := a.lastError(); msg != "" {
		t.Errorf("released guest still has %q", msg)
	}
}
