// Package config provides the configuration loader for mate.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"
	zglob "github.com/mattn/go-zglob"
	"go.trai.ch/mate/internal/core/domain"
	"go.trai.ch/mate/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML matefile.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Discover walks up from cwd to find the nearest matefile.
func (l *Loader) Discover(cwd string) (string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve working directory")
	}

	for {
		candidate := filepath.Join(dir, domain.MateFileName)
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			break
		}
		dir = parent
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// Load reads the matefile at path and resolves it into a validated Config.
// Defaults fill any omitted field, tool command templates are split into
// argv, and source globs are expanded. The returned Config's Root is the
// matefile's directory.
func (l *Loader) Load(path string) (domain.Config, error) {
	var matefile Matefile
	if err := readAndUnmarshalYAML(path, &matefile); err != nil {
		return domain.Config{}, err
	}

	cfg := domain.DefaultConfig()
	cfg.Root = filepath.Dir(path)

	if matefile.Output != "" {
		cfg.Output = matefile.Output
	}
	if matefile.Type != "" {
		cfg.Type = domain.ProjectType(matefile.Type)
	}
	if matefile.SourceDir != "" {
		cfg.SourceDir = matefile.SourceDir
	}
	if matefile.BuildDir != "" {
		cfg.BuildDir = matefile.BuildDir
	}
	if matefile.DistDir != "" {
		cfg.DistDir = matefile.DistDir
	}
	if matefile.ObjectExt != "" {
		cfg.ObjectExt = matefile.ObjectExt
	}
	if matefile.InstallPrefix != "" {
		cfg.InstallPrefix = matefile.InstallPrefix
	}

	var err error
	if cfg.Compiler, err = resolveCommand(matefile.Compiler, cfg.Compiler, "compiler"); err != nil {
		return domain.Config{}, err
	}
	if cfg.CompilerArgs, err = resolveCommand(matefile.CompilerArgs, cfg.CompilerArgs, "compilerArgs"); err != nil {
		return domain.Config{}, err
	}
	if cfg.Linker, err = resolveCommand(matefile.Linker, cfg.Linker, "linker"); err != nil {
		return domain.Config{}, err
	}
	if cfg.LinkerArgs, err = resolveCommand(matefile.LinkerArgs, cfg.LinkerArgs, "linkerArgs"); err != nil {
		return domain.Config{}, err
	}
	if cfg.Archiver, err = resolveCommand(matefile.Archiver, cfg.Archiver, "archiver"); err != nil {
		return domain.Config{}, err
	}

	if cfg.Type == domain.StaticLibrary && matefile.LinkerArgs != "" {
		l.Logger.Warn("'linkerArgs' has no effect for static libraries")
	}

	if cfg.Sources, err = l.expandSources(cfg, matefile.Sources); err != nil {
		return domain.Config{}, err
	}
	cfg.Headers = matefile.Headers

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}

	return cfg, nil
}

// resolveCommand splits an m8-style command template into argv.
// An empty template keeps the fallback.
func resolveCommand(template string, fallback []string, tool string) ([]string, error) {
	if template == "" {
		return fallback, nil
	}

	argv, err := shellquote.Split(template)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBadCommandTemplate.Error()), "tool", tool)
	}

	return argv, nil
}

// expandSources resolves the configured source entries against the source
// directory. Entries containing glob metacharacters are expanded with zglob
// (`**` supported) and their matches sorted; plain file names are kept
// verbatim so a missing source surfaces later as a compiler error.
// Duplicates are dropped, first occurrence wins.
func (l *Loader) expandSources(cfg domain.Config, entries []string) ([]string, error) {
	baseDir := filepath.Join(cfg.Root, cfg.SourceDir)

	var sources []string
	seen := make(map[string]struct{})

	add := func(src string) {
		if _, dup := seen[src]; dup {
			return
		}
		seen[src] = struct{}{}
		sources = append(sources, src)
	}

	for _, entry := range entries {
		if !strings.ContainsAny(entry, "*?[{") {
			add(entry)
			continue
		}

		matches, err := zglob.Glob(filepath.Join(baseDir, entry))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceGlobFailed.Error()), "pattern", entry)
		}
		if len(matches) == 0 {
			return nil, zerr.With(domain.ErrNoGlobMatches, "pattern", entry)
		}

		slices.Sort(matches)
		for _, match := range matches {
			info, statErr := os.Stat(match)
			if statErr != nil || info.IsDir() {
				continue
			}

			rel, relErr := filepath.Rel(baseDir, match)
			if relErr != nil {
				return nil, zerr.Wrap(relErr, "failed to resolve matched source path")
			}
			add(rel)
		}
	}

	return sources, nil
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
