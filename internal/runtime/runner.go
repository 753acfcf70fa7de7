package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

// Result describes how a subprocess ended.
type Result struct {
	ExitCode int
	Signal   string // non-empty when the process was killed by a signal
}

// Success reports whether the process exited normally with status 0.
func (r *Result) Success() bool {
	return r != nil && r.ExitCode == 0 && r.Signal == ""
}

// Runner launches a binary in dir and waits for it to exit.
// The error return is reserved for failures to start the process;
// a process that ran and failed is reported through Result.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (*Result, error)
}

// ExecRunner runs commands with os/exec, passing the standard streams through.
type ExecRunner struct {
	// Stdin, Stdout and Stderr default to the process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner.
func (e *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = e.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = e.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = e.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return &Result{}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res := &Result{ExitCode: exitErr.ExitCode()}
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			res.Signal = ws.Signal().String()
		}
		return res, nil
	}
	return nil, fmt.Errorf("starting %s: %w", name, err)
}

// CommandError reports a subprocess that could not start or did not succeed.
type CommandError struct {
	Name   string
	Args   []string
	Result *Result // nil when the process never started
	Err    error
}

// CommandLine returns the invocation as a single string, e.g. "git init".
func (e *CommandError) CommandLine() string {
	return strings.TrimSpace(e.Name + " " + strings.Join(e.Args, " "))
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.CommandLine(), e.Err)
	case e.Result != nil && e.Result.Signal != "":
		return fmt.Sprintf("%s: killed by %s", e.CommandLine(), e.Result.Signal)
	case e.Result != nil:
		return fmt.Sprintf("%s: exit status %d", e.CommandLine(), e.Result.ExitCode)
	default:
		return e.CommandLine()
	}
}

// Unwrap returns the start failure, if any.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// RunChecked runs the command and converts anything but a clean exit into a
// *CommandError.
func RunChecked(ctx context.Context, r Runner, dir, name string, args ...string) error {
	res, err := r.Run(ctx, dir, name, args...)
	if err != nil {
		return &CommandError{Name: name, Args: args, Err: err}
	}
	if !res.Success() {
		return &CommandError{Name: name, Args: args, Result: res}
	}
	return nil
}
