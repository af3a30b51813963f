// Package exec provides abstractions for executing external commands.
package exec

//go:generate mockgen -source=command.go -destination=command_mock.go -package=exec

import (
	"bytes"
	"context"
	"io"
	"os/exec"

	"github.com/cockroachdb/errors"
)

// ErrNonZeroExit is returned when a command exits with a non-zero status.
var ErrNonZeroExit = errors.New("command exited with non-zero status")

// CommandResult contains the result of a command execution.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// Success returns true when the command ran and exited zero.
func (r *CommandResult) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Failed is the negation of Success.
func (r *CommandResult) Failed() bool {
	return !r.Success()
}

// CommandRunner executes external commands and captures their output.
type CommandRunner interface {
	// Run executes a command and returns the result.
	Run(ctx context.Context, name string, args ...string) *CommandResult

	// RunWithStdin executes a command with stdin input.
	RunWithStdin(ctx context.Context, stdin io.Reader, name string, args ...string) *CommandResult
}

// commandRunner implements CommandRunner.
type commandRunner struct{}

// NewCommandRunner creates a new CommandRunner.
func NewCommandRunner() CommandRunner {
	return &commandRunner{}
}

// Run executes a command and returns the result.
func (r *commandRunner) Run(ctx context.Context, name string, args ...string) *CommandResult {
	return r.RunWithStdin(ctx, nil, name, args...)
}

// RunWithStdin executes a command with stdin input.
func (*commandRunner) RunWithStdin(
	ctx context.Context,
	stdin io.Reader,
	name string,
	args ...string,
) *CommandResult {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError

	switch {
	case err == nil:
	case errors.As(err, &exitErr) && ctx.Err() == nil:
		result.ExitCode = exitErr.ExitCode()
		result.Err = errors.Wrapf(ErrNonZeroExit, "%s: exit %d", name, result.ExitCode)
	default:
		result.ExitCode = -1
		result.Err = errors.Wrapf(err, "executing %s", name)
	}

	return result
}
