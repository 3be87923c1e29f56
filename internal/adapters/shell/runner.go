// Package shell provides a Runner that invokes external build tools.
package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/mate/internal/core/domain"
	"go.trai.ch/mate/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Runner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes argv with the process's standard streams attached.
// Compiler and linker diagnostics therefore reach the terminal directly,
// interleaved with progress output.
func (r *Runner) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return domain.ErrEmptyCommand
	}

	r.logger.Debug("exec: " + strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // user provided command
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return zerr.Wrap(ctx.Err(), "command interrupted")
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			return zerr.With(zerr.Wrap(domain.NewExitError(code), "command failed"), "exit_code", code)
		}

		return zerr.With(zerr.Wrap(err, "failed to start command"), "command", argv[0])
	}

	return nil
}
