package runner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInterpreterSelection(t *testing.T) {
	r := NewExecRunner(nil)

	prog, err := r.Interpreter("foo.py")
	if err != nil {
		t.Fatalf("Interpreter error: %v", err)
	}
	if prog != "python3" {
		t.Fatalf("prog = %q, want python3", prog)
	}

	if _, err := r.Interpreter("foo.txt"); err == nil {
		t.Fatal("expected error for unknown extension")
	}
}

func TestInterpreterOverrides(t *testing.T) {
	r := NewExecRunner(map[string]string{"py": "python2", ".lua": "lua"})

	if prog, _ := r.Interpreter("a.py"); prog != "python2" {
		t.Fatalf("prog = %q, want python2", prog)
	}
	if prog, _ := r.Interpreter("a.lua"); prog != "lua" {
		t.Fatalf("prog = %q, want lua", prog)
	}
	// Untouched defaults survive.
	if prog, _ := r.Interpreter("a.sh"); prog != "bash" {
		t.Fatalf("prog = %q, want bash", prog)
	}
}

func TestRunMissingScript(t *testing.T) {
	r := NewExecRunner(nil)
	if _, err := r.Run(filepath.Join(t.TempDir(), "absent.py")); err == nil {
		t.Fatal("expected error for missing script")
	}
}

func TestRunCapturesOutput(t *testing.T) {
	d := t.TempDir()
	script := filepath.Join(d, "hello.sh")
	if err := os.WriteFile(script, []byte("#!/bin/bash\necho hello\n"), 0755); err != nil {
		t.Fatalf("write: %v", err)
	}

	r := NewExecRunner(nil)
	result, err := r.Run(script)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if strings.TrimSpace(result.Output) != "hello" {
		t.Fatalf("Output = %q, want hello", result.Output)
	}
	if result.Error != "" {
		t.Fatalf("Error = %q, want empty", result.Error)
	}
}

func TestRunReportsFailure(t *testing.T) {
	d := t.TempDir()
	script := filepath.Join(d, "fail.sh")
	if err := os.WriteFile(script, []byte("#!/bin/bash\necho broken >&2\nexit 3\n"), 0755); err != nil {
		t.Fatalf("write: %v", err)
	}

	r := NewExecRunner(nil)
	result, err := r.Run(script)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !strings.Contains(result.Error, "broken") {
		t.Fatalf("Error = %q, want stderr content", result.Error)
	}
}
