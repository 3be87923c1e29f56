package shell

import (
	"context"

	"github.com/kballard/go-shellquote"

	"go.trai.ch/mate/internal/core/domain"
	"go.trai.ch/mate/internal/core/ports"
)

// DryRunner implements ports.Runner by printing each command instead of
// executing it. Every invocation reports success, so a dry run walks the
// exact sequence of tool calls a real build would make.
type DryRunner struct {
	renderer ports.Renderer
}

// NewDryRunner creates a new DryRunner.
func NewDryRunner(renderer ports.Renderer) *DryRunner {
	return &DryRunner{
		renderer: renderer,
	}
}

// Run prints argv in shell-quoted form and returns nil.
func (r *DryRunner) Run(_ context.Context, argv []string) error {
	if len(argv) == 0 {
		return domain.ErrEmptyCommand
	}

	r.renderer.Info("would run: " + shellquote.Join(argv...))

	return nil
}
