package ghcli

import (
	"errors"
	"io/fs"
	"os/exec"
	"strings"
)

// ErrToolUnavailable is returned when the gh executable cannot be run at all.
var ErrToolUnavailable = errors.New("GitHub CLI (gh) is not installed")

// ExternalToolError reports a gh invocation that ran but failed: a non-zero
// exit, a timeout, or output that could not be decoded.
type ExternalToolError struct {
	Args    []string
	Message string
	Err     error
}

func (e *ExternalToolError) Error() string {
	return e.Message
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}

// Command returns the failed invocation as a single line.
func (e *ExternalToolError) Command() string {
	return "gh " + strings.Join(e.Args, " ")
}

// isNotFound reports whether err means the executable itself is missing,
// as opposed to a process that started and failed.
func isNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}
