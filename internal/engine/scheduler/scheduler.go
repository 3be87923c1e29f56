// Package scheduler fans compilation of the source list out over a bounded
// number of workers.
package scheduler

import (
	"context"
	"fmt"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"go.trai.ch/mate/internal/core/domain"
	"go.trai.ch/mate/internal/core/ports"
)

// Scheduler compiles source files by invoking the configured compiler once
// per file. Batches run concurrently; items within a batch run in order.
type Scheduler struct {
	runner   ports.Runner
	renderer ports.Renderer
}

// New creates a Scheduler.
func New(runner ports.Runner, renderer ports.Renderer) *Scheduler {
	return &Scheduler{
		runner:   runner,
		renderer: renderer,
	}
}

// Compile compiles sources[i] into objects[i] for every i, using at most
// jobs parallel workers. The first failing invocation cancels the remaining
// work at the next item boundary and its error is returned; an in-flight
// compiler run is never killed from outside its own context. An empty source
// list succeeds without invoking anything.
func (s *Scheduler) Compile(ctx context.Context, cfg domain.Config, sources, objects []string, jobs int) error {
	if len(sources) == 0 {
		return nil
	}

	plan := PlanFor(len(sources), jobs)
	s.renderer.Info(fmt.Sprintf("Using %d jobs", plan.Workers))

	g, gctx := errgroup.WithContext(ctx)
	for w := range plan.Workers {
		start := w * plan.Size
		g.Go(func() error {
			return s.compileRange(gctx, cfg, sources, objects, start, start+plan.Size)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Leftover items that did not divide evenly run here, after every
	// parallel batch has finished.
	tailStart := plan.Workers * plan.Size

	return s.compileRange(ctx, cfg, sources, objects, tailStart, tailStart+plan.Tail)
}

// compileRange compiles the half-open range [start, end) of the source list.
// The context is checked between items so a failure elsewhere stops this
// batch before its next invocation.
func (s *Scheduler) compileRange(ctx context.Context, cfg domain.Config, sources, objects []string, start, end int) error {
	total := len(sources)

	for i := start; i < end; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := s.runner.Run(ctx, compileArgv(cfg, sources[i], objects[i]))
		s.renderer.Item(i+1, total, "Compile "+cfg.SourcePath(sources[i]), err)

		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCompileFailed.Error()), "source", sources[i])
		}
	}

	return nil
}

// compileArgv assembles the compiler invocation for one source file.
func compileArgv(cfg domain.Config, src, obj string) []string {
	argv := make([]string, 0, len(cfg.Compiler)+len(cfg.CompilerArgs)+3)
	argv = append(argv, cfg.Compiler...)
	argv = append(argv, cfg.CompilerArgs...)
	argv = append(argv, "-o", obj, cfg.SourcePath(src))

	return argv
}
