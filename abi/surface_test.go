package abi

import (
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/fission/gateway"
)

const languagesDir = "../languages"

var scenario = []byte{0x90, 0x90, 0xc3, 0x00, 0x00}

func TestSurface_Lifecycle(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewSurface(zap.New(core))
	defer s.Close()

	h := s.Init(1, languagesDir)
	if h == 0 {
		msg, _ := s.LastError(1)
		t.Fatalf("Init failed: %s", msg)
	}
	if s.IsAvailable() != 1 {
		t.Fatal("IsAvailable should be 1 after a successful init")
	}

	out := make([]byte, 256)
	n := s.Disassemble(1, h, scenario, 0x1000, out)
	if n <= 0 || out[n] != 0 {
		t.Fatalf("Disassemble = %d", n)
	}
	if !strings.HasPrefix(string(out[:n]), "1000:  nop\n") {
		t.Errorf("unexpected text %q", out[:n])
	}

	n = s.Decompile(1, h, scenario, 0x1000, out)
	if n <= 0 || !strings.Contains(string(out[:n]), "func_1000") {
		t.Fatalf("Decompile = %d %q", n, out[:max(n, 0)])
	}

	s.Destroy(h)
	s.Destroy(h)
	s.Destroy(0)
	if s.Handles() != 0 {
		t.Fatalf("Handles = %d after destroy", s.Handles())
	}

	if n := s.Disassemble(1, h, scenario, 0x1000, out); n != Failure || out[0] != 0 {
		t.Fatalf("destroyed handle: n = %d", n)
	}
	if msg, ok := s.LastError(1); !ok || !strings.Contains(msg, "Decompiler not initialized") {
		t.Errorf("LastError = %q, %v", msg, ok)
	}

	if logs.FilterMessage("handle created").Len() != 1 || logs.FilterMessage("handle dropped").Len() != 1 {
		t.Errorf("missing lifecycle logs: %v", logs.All())
	}
}

func TestSurface_InitFailure(t *testing.T) {
	s := NewSurface(nil)

	if h := s.Init("ctx", ""); h != 0 {
		t.Fatalf("Init(\"\") = %d, want 0", h)
	}
	msg, ok := s.LastError("ctx")
	if !ok || !strings.Contains(msg, "sla_dir is null") {
		t.Fatalf("LastError = %q, %v", msg, ok)
	}
	if _, ok := s.LastError("other"); ok {
		t.Fatal("error leaked into another context")
	}

	s.Forget("ctx")
	if _, ok := s.LastError("ctx"); ok {
		t.Fatal("Forget kept the message")
	}
}

func TestSurface_InvalidArguments(t *testing.T) {
	s := NewSurface(nil, gateway.WithMaxInstructions(10))
	defer s.Close()
	h := s.Init(7, languagesDir)
	if h == 0 {
		t.Fatal("Init failed")
	}

	if n := s.Disassemble(7, h, nil, 0, make([]byte, 8)); n != Failure {
		t.Errorf("empty code: %d", n)
	}
	if msg, _ := s.LastError(7); !strings.Contains(msg, "Invalid input bytes") {
		t.Errorf("LastError = %q", msg)
	}

	if n := s.Decompile(7, h, scenario, 0, nil); n != Failure {
		t.Errorf("empty output: %d", n)
	}
	if msg, _ := s.LastError(7); !strings.Contains(msg, "Invalid output buffer") {
		t.Errorf("LastError = %q", msg)
	}

	if n := s.Disassemble(7, h+1, scenario, 0, make([]byte, 8)); n != Failure {
		t.Errorf("unknown handle: %d", n)
	}
}

func TestSurface_CapacityOne(t *testing.T) {
	s := NewSurface(nil)
	defer s.Close()
	h := s.Init(1, languagesDir)

	out := []byte{0xff}
	if n := s.Disassemble(1, h, scenario, 0x1000, out); n != 0 || out[0] != 0 {
		t.Fatalf("capacity 1: n = %d out = %v", n, out)
	}
}

func TestSurface_PerContextErrors(t *testing.T) {
	s := NewSurface(nil)
	defer s.Close()
	h := s.Init(0, languagesDir)

	var wg sync.WaitGroup
	for ctx := 1; ctx <= 8; ctx++ {
		wg.Add(1)
		go func(ctx int) {
			defer wg.Done()
			out := make([]byte, 128)
			if ctx%2 == 0 {
				s.Disassemble(ctx, h, nil, 0, out)
				if msg, ok := s.LastError(ctx); !ok || !strings.Contains(msg, "Invalid input bytes") {
					t.Errorf("ctx %d: %q", ctx, msg)
				}
				return
			}
			if n := s.Disassemble(ctx, h, scenario, 0x1000, out); n <= 0 {
				t.Errorf("ctx %d: n = %d", ctx, n)
			}
			if msg, ok := s.LastError(ctx); ok {
				t.Errorf("ctx %d saw foreign error %q", ctx, msg)
			}
		}(ctx)
	}
	wg.Wait()
}
