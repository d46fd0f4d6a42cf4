package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const languagesDir = "../../languages"

func writeRaw(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "code.bin")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_Disasm(t *testing.T) {
	path := writeRaw(t, []byte{0x90, 0x90, 0xc3, 0x00, 0x00})

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "whole file",
			args: []string{"disasm", path},
			want: "1000:  nop\n1001:  nop\n1002:  ret\n1003:  add byte ptr [rax], al\n",
		},
		{
			name: "from address",
			args: []string{"disasm", "-addr", "0x1002", path},
			want: "1002:  ret\n1003:  add byte ptr [rax], al\n",
		},
		{
			name: "rebased and limited",
			args: []string{"disasm", "-base", "0x2000", "-n", "1", path},
			want: "2000:  nop\n",
		},
		{
			name: "truncated",
			args: []string{"disasm", "-cap", "6", path},
			want: "1000:",
		},
		{
			name: "no room",
			args: []string{"disasm", "-cap", "1", path},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			args := append([]string{"-spec", languagesDir}, tt.args...)
			if code := run(args, &stdout, &stderr); code != 0 {
				t.Fatalf("exit %d: %s", code, stderr.String())
			}
			if stdout.String() != tt.want {
				t.Errorf("output = %q, want %q", stdout.String(), tt.want)
			}
		})
	}
}

func TestRun_Decompile(t *testing.T) {
	path := writeRaw(t, []byte{0x90, 0x90, 0xc3, 0x00, 0x00})

	for _, extra := range [][]string{nil, {"-blocks"}} {
		var stdout, stderr bytes.Buffer
		args := append([]string{"-spec", languagesDir, "decompile"}, extra...)
		if code := run(append(args, path), &stdout, &stderr); code != 0 {
			t.Fatalf("%v: exit %d: %s", extra, code, stderr.String())
		}
		if !strings.Contains(stdout.String(), "func_1000") {
			t.Errorf("%v: output %q", extra, stdout.String())
		}
	}
}

func TestRun_Errors(t *testing.T) {
	// Long enough for format detection to look at the magic bytes.
	path := writeRaw(t, []byte{0x90, 0x90, 0xc3, 0x00, 0x00})
	tiny := writeRaw(t, []byte{0x90})

	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"no command", nil, 2, "Usage"},
		{"unknown command", []string{"frobnicate"}, 2, "unknown command"},
		{"missing file", []string{"disasm"}, 2, ""},
		{"no such file", []string{"disasm", "/no/such/file"}, 1, "Error"},
		{"address outside code", []string{"disasm", "-addr", "0x9000", path}, 1, "outside code"},
		{"bad address", []string{"disasm", "-addr", "zz", path}, 1, "invalid value"},
		{"info on raw bytes", []string{"info", path}, 1, "unknown binary format"},
		{"info on tiny file", []string{"info", tiny}, 1, "file too small"},
		{"unknown language", []string{"-lang", "z80:LE:8:default", "disasm", path}, 1, "Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			args := append([]string{"-spec", languagesDir}, tt.args...)
			if code := run(args, &stdout, &stderr); code != tt.code {
				t.Fatalf("exit %d, want %d (stderr %q)", code, tt.code, stderr.String())
			}
			if !strings.Contains(stderr.String(), tt.want) {
				t.Errorf("stderr %q does not contain %q", stderr.String(), tt.want)
			}
		})
	}
}

func TestAddrFlag(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{"4096", 4096, false},
		{"0x1000", 0x1000, false},
		{"0o17", 15, false},
		{"-1", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		var a addrFlag
		err := a.Set(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Set(%q) error = %v", tt.in, err)
			continue
		}
		if err == nil && (a.v != tt.want || !a.set) {
			t.Errorf("Set(%q) = %+v, want %#x", tt.in, a, tt.want)
		}
	}
}
