// Package runner is the execution boundary: it hands a script file to the
// interpreter for its extension and reports the outcome. There is no retry
// logic; an interpreter failure is not recoverable at this layer.
package runner

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Result holds the outcome of one script run.
type Result struct {
	Output   string
	Error    string
	Duration time.Duration
}

// Runner executes a script file.
type Runner interface {
	Run(path string) (Result, error)
}

// DefaultInterpreters maps script extensions to the program that runs them.
var DefaultInterpreters = map[string]string{
	".py": "python3",
	".sh": "bash",
	".js": "node",
}

// ExecRunner runs scripts through external interpreters.
type ExecRunner struct {
	interpreters map[string]string
}

// NewExecRunner creates a runner with the default interpreter table,
// overridden by the given entries (extension -> program).
func NewExecRunner(overrides map[string]string) *ExecRunner {
	interpreters := map[string]string{}
	for ext, prog := range DefaultInterpreters {
		interpreters[ext] = prog
	}
	for ext, prog := range overrides {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if prog = strings.TrimSpace(prog); prog != "" {
			interpreters[ext] = prog
		}
	}
	return &ExecRunner{interpreters: interpreters}
}

// Interpreter returns the program used for a script path.
func (r *ExecRunner) Interpreter(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	prog, ok := r.interpreters[ext]
	if !ok {
		return "", fmt.Errorf("no interpreter configured for %q files", ext)
	}
	return prog, nil
}

// Run executes the script and captures its output. A non-zero exit is
// reported in Result.Error, not as a Go error; the error return is reserved
// for scripts that cannot be started at all.
func (r *ExecRunner) Run(path string) (Result, error) {
	if _, err := os.Stat(path); err != nil {
		return Result{}, fmt.Errorf("script not found: %w", err)
	}

	prog, err := r.Interpreter(path)
	if err != nil {
		return Result{}, err
	}
	if _, err := exec.LookPath(prog); err != nil {
		return Result{}, fmt.Errorf("interpreter %s not found in PATH: %w", prog, err)
	}

	cmd := exec.Command(prog, path)
	cmd.Dir = filepath.Dir(path)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()

	result := Result{
		Output:   stdout.String(),
		Duration: time.Since(start),
	}
	if runErr != nil {
		result.Error = strings.TrimSpace(stderr.String())
		if result.Error == "" {
			result.Error = runErr.Error()
		}
	} else if stderr.Len() > 0 {
		result.Output += stderr.String()
	}

	return result, nil
}
