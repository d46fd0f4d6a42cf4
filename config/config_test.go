package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/fission/engine"
	ferrors "github.com/wippyai/fission/errors"
	"github.com/wippyai/fission/gateway"
)

func TestParse(t *testing.T) {
	data := []byte(`
spec_dir: /opt/fission/languages
language: AARCH64:LE:64:v8A
max_instructions: 20
log:
  level: debug
  development: true
`)
	got, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.SpecDir = "/opt/fission/languages"
	want.Language = "AARCH64:LE:64:v8A"
	want.MaxInstructions = 20
	want.Log = Log{Level: "debug", Development: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Empty(t *testing.T) {
	got, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("empty document should yield defaults:\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"unknown key", "listn: :1\n", ferrors.ErrInvalidData},
		{"bad yaml", "spec_dir: [\n", ferrors.ErrInvalidData},
		{"bad type", "max_instructions: many\n", ferrors.ErrInvalidData},
		{"zero instructions", "max_instructions: 0\n", ferrors.ErrInvalidInput},
		{"negative steps", "decompile_steps: -1\n", ferrors.ErrInvalidInput},
		{"zero capacity", "output_capacity: 0\n", ferrors.ErrInvalidInput},
		{"empty spec dir", "spec_dir: \"\"\n", ferrors.ErrInvalidInput},
		{"bad level", "log:\n  level: loud\n", ferrors.ErrInvalidData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	if err != nil || c.Listen != DefaultListen {
		t.Fatalf("Load(\"\") = %+v, %v", c, err)
	}

	path := filepath.Join(t.TempDir(), "fission.yaml")
	if err := os.WriteFile(path, []byte("listen: 0.0.0.0:9000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Listen != "0.0.0.0:9000" {
		t.Errorf("Listen = %q", c.Listen)
	}

	if _, err := Load(path + ".missing"); !errors.Is(err, ferrors.ErrNotFound) {
		t.Errorf("missing file err = %v", err)
	}
}

func TestConfig_Logger(t *testing.T) {
	for _, dev := range []bool{false, true} {
		c := Default()
		c.Log = Log{Level: "warn", Development: dev}
		log, err := c.Logger()
		if err != nil {
			t.Fatal(err)
		}
		if log.Core().Enabled(-1) {
			t.Errorf("development=%v: debug enabled at warn level", dev)
		}
		if !log.Core().Enabled(1) {
			t.Errorf("development=%v: warn disabled", dev)
		}
	}
}

func TestConfig_InstallLogger(t *testing.T) {
	t.Cleanup(func() {
		gateway.SetLogger(nil)
		engine.SetLogger(nil)
	})

	c := Default()
	c.Log = Log{Level: "debug"}
	if _, err := c.InstallLogger(); err != nil {
		t.Fatal(err)
	}
	for name, log := range map[string]*zap.Logger{"gateway": gateway.Logger(), "engine": engine.Logger()} {
		if !log.Core().Enabled(zapcore.DebugLevel) {
			t.Errorf("%s logger not installed", name)
		}
	}

	c.Log.Level = "loud"
	if _, err := c.InstallLogger(); err == nil {
		t.Fatal("bad level accepted")
	}
}

func TestConfig_GatewayOptions(t *testing.T) {
	c := Default()
	c.SpecDir = "../languages"
	c.Language = "AARCH64:LE:64:v8A"

	h, err := gateway.Create(c.SpecDir, c.GatewayOptions()...)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Destroy()
	if h.Language() != c.Language {
		t.Errorf("Language = %q, want %q", h.Language(), c.Language)
	}
}
