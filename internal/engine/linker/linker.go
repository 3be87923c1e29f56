// Package linker combines compiled objects into the final artifact.
package linker

import (
	"context"

	"go.trai.ch/zerr"

	"go.trai.ch/mate/internal/core/domain"
	"go.trai.ch/mate/internal/core/ports"
)

// Linker produces the project artifact from the object files in a single
// tool invocation. Static libraries go through the archiver, executables and
// shared libraries through the linker.
type Linker struct {
	runner   ports.Runner
	renderer ports.Renderer
}

// New creates a Linker.
func New(runner ports.Runner, renderer ports.Renderer) *Linker {
	return &Linker{
		runner:   runner,
		renderer: renderer,
	}
}

// Link joins objects into cfg.TargetPath(). A non-zero tool exit is returned
// with the target attached; there is no retry.
func (l *Linker) Link(ctx context.Context, cfg domain.Config, objects []string) error {
	target := cfg.TargetPath()

	err := l.runner.Run(ctx, linkArgv(cfg, target, objects))
	l.renderer.Item(1, 1, "Link "+target, err)

	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLinkFailed.Error()), "target", target)
	}

	return nil
}

// linkArgv assembles the link or archive invocation. LinkerArgs only apply
// to linked artifacts, an archive takes no extra arguments.
func linkArgv(cfg domain.Config, target string, objects []string) []string {
	if cfg.Type == domain.StaticLibrary {
		argv := make([]string, 0, len(cfg.Archiver)+len(objects)+3)
		argv = append(argv, cfg.Archiver...)
		argv = append(argv, "r", "-o", target)

		return append(argv, objects...)
	}

	argv := make([]string, 0, len(cfg.Linker)+len(objects)+len(cfg.LinkerArgs)+2)
	argv = append(argv, cfg.Linker...)
	argv = append(argv, "-o", target)
	argv = append(argv, objects...)

	return append(argv, cfg.LinkerArgs...)
}
