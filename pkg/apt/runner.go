// pkg/apt/runner.go
package apt

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// Runner executes an external process and captures its output.
// A process that starts and exits non-zero is reported through
// Result.ExitCode, not through the error.
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts ...RunOption) (*Result, error)
}

// RunOption configures a single process execution
type RunOption func(*RunConfig)

// RunConfig holds per-execution settings
type RunConfig struct {
	Dir string   // Working directory (default: current)
	Env []string // Extra environment entries appended to os.Environ
}

// WithDir sets the working directory of the process
func WithDir(dir string) RunOption {
	return func(c *RunConfig) {
		c.Dir = dir
	}
}

// WithEnv appends KEY=VALUE entries to the process environment
func WithEnv(env ...string) RunOption {
	return func(c *RunConfig) {
		c.Env = append(c.Env, env...)
	}
}

// ExecRunner runs processes with os/exec. No shell is involved.
type ExecRunner struct{}

// NewExecRunner returns the default process runner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts name with args and waits for it to exit
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, opts ...RunOption) (*Result, error) {
	var rc RunConfig
	for _, opt := range opts {
		opt(&rc)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = rc.Dir
	if len(rc.Env) > 0 {
		cmd.Env = append(os.Environ(), rc.Env...)
	}
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &Result{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}
