// Package app implements the application layer for mate.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.trai.ch/zerr"

	"go.trai.ch/mate/internal/adapters/shell"
	"go.trai.ch/mate/internal/adapters/watcher"
	"go.trai.ch/mate/internal/core/domain"
	"go.trai.ch/mate/internal/core/ports"
	"go.trai.ch/mate/internal/engine/linker"
	"go.trai.ch/mate/internal/engine/scheduler"
)

// rebuildSettleWindow is how long the watch command waits after the last
// file system event before rebuilding.
const rebuildSettleWindow = 300 * time.Millisecond

// App represents the main application logic. Each command method loads the
// project configuration, then drives the engines and file operations for
// that command.
type App struct {
	loader   ports.ConfigLoader
	runner   ports.Runner
	fileOps  ports.FileOps
	renderer ports.Renderer
	logger   ports.Logger
	watcher  ports.Watcher
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	runner ports.Runner,
	fileOps ports.FileOps,
	renderer ports.Renderer,
	log ports.Logger,
	watch ports.Watcher,
) *App {
	return &App{
		loader:   loader,
		runner:   runner,
		fileOps:  fileOps,
		renderer: renderer,
		logger:   log,
		watcher:  watch,
	}
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// ConfigPath points at the matefile; empty means discover it from the
	// working directory upwards.
	ConfigPath string

	// Jobs is the requested compile parallelism.
	Jobs int

	// DryRun prints the commands instead of executing them.
	DryRun bool
}

// Build compiles every source, links the artifact and stages configured
// headers into the dist tree.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	return a.build(ctx, cfg, opts.Jobs, opts.DryRun)
}

// build runs the compile, link and header stages against a loaded config.
func (a *App) build(ctx context.Context, cfg domain.Config, jobs int, dryRun bool) error {
	if err := a.ensureTree(cfg); err != nil {
		return err
	}

	runner := a.runner
	if dryRun {
		runner = shell.NewDryRunner(a.renderer)
	}

	objects := cfg.ObjectPaths()

	a.renderer.Banner("COMPILING")
	if err := scheduler.New(runner, a.renderer).Compile(ctx, cfg, cfg.Sources, objects, jobs); err != nil {
		return err
	}

	a.renderer.Banner("LINKING")
	if err := linker.New(runner, a.renderer).Link(ctx, cfg, objects); err != nil {
		return err
	}

	a.exportHeaders(cfg)

	a.logger.Info("Compiled successfully.")

	return nil
}

// exportHeaders stages configured headers into dist/include. A failed copy
// renders as [FAILED] and the remaining headers are still staged.
func (a *App) exportHeaders(cfg domain.Config) {
	if len(cfg.Headers) == 0 {
		return
	}

	a.renderer.Banner("HEADERS")

	for i, header := range cfg.Headers {
		src := cfg.SourcePath(header)
		dst := cfg.HeaderDistPath(header)

		err := a.fileOps.Copy(src, dst)
		a.renderer.Item(i+1, len(cfg.Headers), "Copy "+src+" -> "+dst, err)
	}
}

// InstallOptions configuration for the Install method.
type InstallOptions struct {
	ConfigPath string
}

// Install copies the built artifact and staged headers into the install
// prefix. Copies are independent, a failure renders as [FAILED] and the
// remaining copies still run.
func (a *App) Install(_ context.Context, opts InstallOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	a.renderer.Banner("INSTALL")

	total := 1 + len(cfg.Headers)

	copyErr := a.fileOps.Copy(cfg.TargetPath(), cfg.InstallPath())
	a.renderer.Item(1, total, "Copy "+cfg.TargetPath()+" -> "+cfg.InstallPath(), copyErr)

	for i, header := range cfg.Headers {
		src := cfg.HeaderDistPath(header)
		dst := cfg.HeaderInstallPath(header)

		copyErr := a.fileOps.Copy(src, dst)
		a.renderer.Item(i+2, total, "Copy "+src+" -> "+dst, copyErr)
	}

	a.logger.Info("Installation complete.")

	return nil
}

// UninstallOptions configuration for the Uninstall method.
type UninstallOptions struct {
	ConfigPath string
}

// Uninstall removes the installed artifact and headers from the install
// prefix. Removals are independent, a missing file renders as [FAILED] and
// the remaining removals still run.
func (a *App) Uninstall(_ context.Context, opts UninstallOptions) error {
	if runtime.GOOS == "windows" {
		return zerr.Wrap(domain.ErrUnsupportedPlatform, "uninstall is not supported on windows")
	}

	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	a.renderer.Banner("UNINSTALL")

	total := 1 + len(cfg.Headers)

	removeErr := a.fileOps.Remove(cfg.InstallPath())
	a.renderer.Item(1, total, "Remove "+cfg.InstallPath(), removeErr)

	for i, header := range cfg.Headers {
		path := cfg.HeaderInstallPath(header)

		removeErr := a.fileOps.Remove(path)
		a.renderer.Item(i+2, total, "Remove "+path, removeErr)
	}

	a.logger.Info("Uninstalled.")

	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
}

// Clean removes the object files derived from the current source list, then
// the target artifact. Removals are independent; files that were never
// built render as [FAILED] and the command still succeeds.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	a.renderer.Banner("CLEAN")

	objects := cfg.ObjectPaths()
	total := len(objects) + 1

	for i, object := range objects {
		removeErr := a.fileOps.Remove(object)
		a.renderer.Item(i+1, total, "Remove "+object, removeErr)
	}

	target := cfg.TargetPath()
	removeErr := a.fileOps.Remove(target)
	a.renderer.Item(total, total, "Remove "+target, removeErr)

	return nil
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	ConfigPath string
	Jobs       int
}

// Watch builds once, then rebuilds whenever the source tree settles after a
// change. The configuration is reloaded before every rebuild so source globs
// pick up new files. Returns nil when ctx is cancelled.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	if err := a.build(ctx, cfg, opts.Jobs, false); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		a.logger.Error(err)
	}

	rebuild := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(rebuildSettleWindow, func([]string) {
		select {
		case rebuild <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	root := filepath.Join(cfg.Root, cfg.SourceDir)
	if err := a.watcher.Start(ctx, root); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	go func() {
		for event := range a.watcher.Events() {
			if a.isBuildInput(cfg, event.Path) {
				debouncer.Add(event.Path)
			}
		}
	}()

	a.logger.Info(fmt.Sprintf("Watching %s for changes", root))

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-rebuild:
			fresh, err := a.loadConfig(opts.ConfigPath)
			if err != nil {
				a.logger.Error(err)

				continue
			}

			if err := a.build(ctx, fresh, opts.Jobs, false); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				a.logger.Error(err)
			}
		}
	}
}

// isBuildInput reports whether a changed path is a build input rather than
// one of our own outputs. Object and dist writes must not retrigger the
// build when the source directory encloses them.
func (a *App) isBuildInput(cfg domain.Config, path string) bool {
	outputs := []string{
		filepath.Join(cfg.Root, cfg.BuildDir),
		filepath.Join(cfg.Root, cfg.DistDir),
	}

	for _, dir := range outputs {
		rel, err := filepath.Rel(dir, path)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return false
		}
	}

	return true
}

// ensureTree creates the build and dist directories.
func (a *App) ensureTree(cfg domain.Config) error {
	for _, dir := range cfg.Tree() {
		if err := a.fileOps.MkdirAll(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrTreeSetupFailed.Error()), "dir", dir)
		}
	}

	return nil
}

// loadConfig resolves and loads the matefile. An empty path triggers
// discovery from the working directory upwards.
func (a *App) loadConfig(path string) (domain.Config, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return domain.Config{}, zerr.Wrap(err, "failed to determine working directory")
		}

		path, err = a.loader.Discover(cwd)
		if err != nil {
			return domain.Config{}, err
		}
	}

	return a.loader.Load(path)
}
