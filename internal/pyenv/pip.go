package pyenv

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"
)

// PipRunner installs packages via `python -m pip install <requirement>`.
// The zero value discovers the interpreter on first use.
type PipRunner struct {
	// Interp is the interpreter to use. When nil it is resolved with
	// Find on the first Install call.
	Interp *Interpreter

	// Stdout and Stderr receive the pip subprocess output; both default
	// to io.Discard.
	Stdout io.Writer
	Stderr io.Writer

	findOnce sync.Once
	findErr  error
}

// Install runs one pip install. The subprocess inherits the context, so
// cancellation kills a hung network-bound install. The exit status
// determines success.
func (r *PipRunner) Install(ctx context.Context, requirement string) error {
	r.findOnce.Do(func() {
		if r.Interp == nil {
			r.Interp, r.findErr = Find()
		}
	})
	if r.findErr != nil {
		return r.findErr
	}

	cmd := exec.CommandContext(ctx, r.Interp.Bin, "-m", "pip", "install", requirement)

	stdout := r.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = io.Discard
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pip install %s: %w", requirement, err)
	}
	return nil
}
