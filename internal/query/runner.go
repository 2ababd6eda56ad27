// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package query

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// Runner executes an external command and returns its standard output.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExitError reports that the external command ran but exited non-zero. It
// satisfies cli.ExitCoder so the driver can hand the code straight to os.Exit.
// A child killed by a signal reports 256 minus the signal number, so SIGKILL
// becomes 247.
type ExitError struct {
	Command string
	Code    int
	Signal  os.Signal
}

func (e *ExitError) Error() string {
	if e.Signal != nil {
		return fmt.Sprintf("%s killed by signal: %v", e.Command, e.Signal)
	}
	return fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
}

// ExitCode returns the external command's exit status.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// ExecRunner runs commands with os/exec. The child's stderr is passed through.
type ExecRunner struct{}

// Output runs name with args, blocking until it exits, and returns everything
// it wrote to stdout.
func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	c := exec.CommandContext(ctx, name, args...)
	c.Stderr = os.Stderr

	out, err := c.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, newExitError(name, exitErr.ProcessState)
		}
		return nil, fmt.Errorf("failed to run %s: %w", name, err)
	}

	return out, nil
}

func newExitError(name string, state *os.ProcessState) *ExitError {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return &ExitError{Command: name, Code: 256 - int(ws.Signal()), Signal: ws.Signal()}
	}
	return &ExitError{Command: name, Code: state.ExitCode()}
}
