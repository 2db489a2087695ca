package ghcli

import (
	"bytes"
	"context"
	"os/exec"
)

// Runner abstracts process execution for testability.
type Runner interface {
	// Run executes name with args and returns what the process wrote to
	// stdout and stderr. err is non-nil when the process could not be
	// started or exited non-zero.
	Run(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command using os/exec.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
