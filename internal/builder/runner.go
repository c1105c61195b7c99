// Package builder drives the external package manager after emission: one
// install step, one build step, both run to completion in order. The
// subprocess boundary is a narrow Runner interface so orchestration logic is
// testable without spawning anything.
package builder

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/stageplayjs/create-stageplay-app/internal/errors"
)

// Runner executes an external command in a working directory and reports its
// exit status. A non-nil error means the command could not be run at all;
// a non-zero exit code is returned without error.
type Runner interface {
	Run(ctx context.Context, command string, args []string, dir string) (int, error)
}

// ExecRunner runs commands with os/exec, inheriting the parent's standard
// streams so the user sees live install and build output.
type ExecRunner struct {
	// Stdin, Stdout and Stderr can be set for testing; they default to the
	// process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, command string, args []string, dir string) (int, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir

	cmd.Stdin = r.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return 0, errors.NewIOError("E_EXEC", "failed to run "+command, err)
	}

	return 0, nil
}
