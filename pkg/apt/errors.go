// pkg/apt/errors.go
package apt

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrToolNotFound indicates the external tool could not be launched
	ErrToolNotFound = errors.New("tool not found")

	// ErrToolFailed indicates the external tool exited with a non-zero status
	ErrToolFailed = errors.New("tool exited with non-zero status")

	// ErrNotText indicates the tool output is not valid UTF-8
	ErrNotText = errors.New("output is not valid text")

	// ErrNoResults indicates the parser accepted no line of output
	ErrNoResults = errors.New("no results")
)

// CommandError describes a failed tool invocation
type CommandError struct {
	Tool     string
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	cmd := strings.TrimSpace(e.Tool + " " + strings.Join(e.Args, " "))
	if e.ExitCode != 0 {
		msg := fmt.Sprintf("%s: %v (exit %d)", cmd, e.Err, e.ExitCode)
		if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
			msg += ": " + stderr
		}
		return msg
	}
	return fmt.Sprintf("%s: %v", cmd, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
