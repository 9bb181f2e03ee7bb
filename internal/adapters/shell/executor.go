// Package shell provides the process executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"go.trai.ch/mk/internal/core/domain"
	"go.trai.ch/mk/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates an Executor whose children inherit the standard streams of this process.
func NewExecutor() *Executor {
	return &Executor{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithStreams replaces the streams handed to child processes.
// This is primarily used for testing.
func (e *Executor) WithStreams(stdin io.Reader, stdout, stderr io.Writer) *Executor {
	e.stdin = stdin
	e.stdout = stdout
	e.stderr = stderr
	return e
}

// Execute runs the step's program and waits for it to exit.
//
// The program is resolved on PATH before anything is spawned. A non-zero exit
// is reported as a *domain.ExitError carrying the status; a child killed by a
// signal reports 128 plus the signal number.
func (e *Executor) Execute(ctx context.Context, step domain.Step) error {
	if step.Kind != domain.StepExec {
		return zerr.With(zerr.Wrap(domain.ErrUnknownStepKind, "cannot execute step"), "kind", step.Kind.String())
	}

	executable, err := exec.LookPath(resolveProgram(step))
	if err != nil {
		return zerr.With(errors.Join(domain.ErrToolNotFound, err), "program", step.Program)
	}

	cmd := exec.CommandContext(ctx, executable, step.Args...) //nolint:gosec // program comes from the fixed target table

	// Keep the name as written in the table rather than the resolved path.
	cmd.Args[0] = step.Program

	if step.Dir != "" {
		cmd.Dir = step.Dir
	}

	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return zerr.With(errors.Join(domain.ErrCommandStartFailed, err), "command", step.String())
		}

		code := exitCode(exitErr)
		failure := zerr.Wrap(&domain.ExitError{Code: code, Cause: err}, "command failed")
		return zerr.With(zerr.With(failure, "command", step.String()), "exit_code", code)
	}

	return nil
}

// resolveProgram anchors a relative program path such as ./bin/cargo at the
// step's directory, where the child runs. Bare names are left for PATH lookup.
func resolveProgram(step domain.Step) string {
	program := step.Program
	if filepath.IsAbs(program) || !strings.ContainsRune(program, filepath.Separator) {
		return program
	}
	resolved, err := filepath.Abs(filepath.Join(step.Dir, program))
	if err != nil {
		return program
	}
	return resolved
}

func exitCode(exitErr *exec.ExitError) int {
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return domain.SignalExitCode(int(status.Signal()))
	}
	return exitErr.ExitCode()
}
