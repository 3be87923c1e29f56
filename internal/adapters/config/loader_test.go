package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/mate/internal/adapters/config"
	"go.trai.ch/mate/internal/core/domain"
	"go.trai.ch/mate/internal/core/ports/mocks"
)

func newTestLoader(t *testing.T) *config.Loader {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	return config.NewLoader(log)
}

func writeMatefile(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, domain.MateFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FullMatefile(t *testing.T) {
	content := `
output: hello
type: executable
compiler: gcc -c
compilerArgs: -O3 -Wall
linker: gcc
linkerArgs: -lm -pthread
archiver: llvm-ar
sourceDir: code
buildDir: obj
distDir: out
objectExt: obj
installPrefix: /opt/hello
sources:
  - main.c
  - util.c
headers:
  - hello.h
`
	tmpDir := t.TempDir()
	path := writeMatefile(t, tmpDir, content)

	loader := newTestLoader(t)
	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, tmpDir, cfg.Root)
	assert.Equal(t, "hello", cfg.Output)
	assert.Equal(t, domain.Executable, cfg.Type)
	assert.Equal(t, []string{"gcc", "-c"}, cfg.Compiler)
	assert.Equal(t, []string{"-O3", "-Wall"}, cfg.CompilerArgs)
	assert.Equal(t, []string{"gcc"}, cfg.Linker)
	assert.Equal(t, []string{"-lm", "-pthread"}, cfg.LinkerArgs)
	assert.Equal(t, []string{"llvm-ar"}, cfg.Archiver)
	assert.Equal(t, "code", cfg.SourceDir)
	assert.Equal(t, "obj", cfg.BuildDir)
	assert.Equal(t, "out", cfg.DistDir)
	assert.Equal(t, "obj", cfg.ObjectExt)
	assert.Equal(t, "/opt/hello", cfg.InstallPrefix)
	assert.Equal(t, []string{"main.c", "util.c"}, cfg.Sources)
	assert.Equal(t, []string{"hello.h"}, cfg.Headers)
}

func TestLoad_MinimalMatefileGetsDefaults(t *testing.T) {
	content := `
output: app
sources:
  - main.c
`
	tmpDir := t.TempDir()
	path := writeMatefile(t, tmpDir, content)

	loader := newTestLoader(t)
	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.Executable, cfg.Type)
	assert.Equal(t, []string{"cc", "-c"}, cfg.Compiler)
	assert.Equal(t, []string{"-O2"}, cfg.CompilerArgs)
	assert.Equal(t, []string{"ld"}, cfg.Linker)
	assert.Nil(t, cfg.LinkerArgs)
	assert.Equal(t, []string{"ar"}, cfg.Archiver)
	assert.Equal(t, "src", cfg.SourceDir)
	assert.Equal(t, "build", cfg.BuildDir)
	assert.Equal(t, "dist", cfg.DistDir)
	assert.Equal(t, "o", cfg.ObjectExt)
	assert.Equal(t, "/usr", cfg.InstallPrefix)
}

func TestLoad_QuotedCommandTemplate(t *testing.T) {
	content := `
output: app
compiler: "cc -c '-DGREETING=hello world'"
sources:
  - main.c
`
	tmpDir := t.TempDir()
	path := writeMatefile(t, tmpDir, content)

	loader := newTestLoader(t)
	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"cc", "-c", "-DGREETING=hello world"}, cfg.Compiler)
}

func TestLoad_MalformedCommandTemplate(t *testing.T) {
	content := `
output: app
linker: "cc 'unterminated"
sources:
  - main.c
`
	tmpDir := t.TempDir()
	path := writeMatefile(t, tmpDir, content)

	loader := newTestLoader(t)
	_, err := loader.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed command template")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantErr     error
		errContains string
	}{
		{
			name: "invalid yaml",
			content: `
output: [unclosed
`,
			errContains: "failed to parse matefile",
		},
		{
			name: "invalid project type",
			content: `
output: app
type: plugin
sources:
  - main.c
`,
			wantErr: domain.ErrInvalidProjectType,
		},
		{
			name: "no sources",
			content: `
output: app
`,
			wantErr: domain.ErrNoSources,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := writeMatefile(t, tmpDir, tt.content)

			loader := newTestLoader(t)
			_, err := loader.Load(path)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoad_EmptyOutputKeepsDefaultName(t *testing.T) {
	content := `
output: ""
sources:
  - main.c
`
	tmpDir := t.TempDir()
	path := writeMatefile(t, tmpDir, content)

	loader := newTestLoader(t)
	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "output", cfg.Output)
}

func TestLoad_MissingFile(t *testing.T) {
	tmpDir := t.TempDir()

	loader := newTestLoader(t)
	_, err := loader.Load(filepath.Join(tmpDir, domain.MateFileName))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read matefile")
}

func TestLoad_StaticLibraryLinkerArgsWarns(t *testing.T) {
	content := `
output: libapp.a
type: static-library
linkerArgs: -lm
sources:
  - main.c
`
	tmpDir := t.TempDir()
	path := writeMatefile(t, tmpDir, content)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn("'linkerArgs' has no effect for static libraries")

	loader := config.NewLoader(log)
	_, err := loader.Load(path)
	require.NoError(t, err)
}

func TestLoad_GlobExpansion(t *testing.T) {
	tmpDir := t.TempDir()
	srcDir := filepath.Join(tmpDir, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(srcDir, "util", "deep"), 0o750))

	for _, f := range []string{
		"main.c",
		"util/b.c",
		"util/a.c",
		"util/deep/z.c",
		"util/readme.txt",
	} {
		path := filepath.Join(srcDir, filepath.FromSlash(f))
		require.NoError(t, os.WriteFile(path, []byte("int x;"), 0o600))
	}

	content := `
output: app
sources:
  - main.c
  - "util/**/*.c"
`
	path := writeMatefile(t, tmpDir, content)

	loader := newTestLoader(t)
	cfg, err := loader.Load(path)
	require.NoError(t, err)

	expected := []string{
		"main.c",
		filepath.Join("util", "a.c"),
		filepath.Join("util", "b.c"),
		filepath.Join("util", "deep", "z.c"),
	}
	assert.Equal(t, expected, cfg.Sources)
}

func TestLoad_GlobDeduplicates(t *testing.T) {
	tmpDir := t.TempDir()
	srcDir := filepath.Join(tmpDir, "src")
	require.NoError(t, os.MkdirAll(srcDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "main.c"), []byte("int x;"), 0o600))

	content := `
output: app
sources:
  - main.c
  - "*.c"
`
	path := writeMatefile(t, tmpDir, content)

	loader := newTestLoader(t)
	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"main.c"}, cfg.Sources)
}

func TestLoad_GlobWithoutMatches(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "src"), 0o750))

	content := `
output: app
sources:
  - "*.c"
`
	path := writeMatefile(t, tmpDir, content)

	loader := newTestLoader(t)
	_, err := loader.Load(path)
	require.ErrorIs(t, err, domain.ErrNoGlobMatches)
}

func TestLoad_PlainMissingSourceKeptVerbatim(t *testing.T) {
	// A name without glob characters is passed through untouched; the
	// compiler reports the missing file with a precise diagnostic later.
	content := `
output: app
sources:
  - missing.c
`
	tmpDir := t.TempDir()
	path := writeMatefile(t, tmpDir, content)

	loader := newTestLoader(t)
	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"missing.c"}, cfg.Sources)
}

func TestDiscover(t *testing.T) {
	t.Run("finds matefile in current directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := writeMatefile(t, tmpDir, "output: app\n")

		loader := newTestLoader(t)
		got, err := loader.Discover(tmpDir)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("walks up to parent directories", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := writeMatefile(t, tmpDir, "output: app\n")

		nested := filepath.Join(tmpDir, "src", "util")
		require.NoError(t, os.MkdirAll(nested, 0o750))

		loader := newTestLoader(t)
		got, err := loader.Discover(nested)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("nearest matefile wins", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeMatefile(t, tmpDir, "output: outer\n")

		inner := filepath.Join(tmpDir, "sub")
		require.NoError(t, os.MkdirAll(inner, 0o750))
		innerPath := writeMatefile(t, inner, "output: inner\n")

		loader := newTestLoader(t)
		got, err := loader.Discover(inner)
		require.NoError(t, err)
		assert.Equal(t, innerPath, got)
	})

	t.Run("missing matefile", func(t *testing.T) {
		tmpDir := t.TempDir()

		loader := newTestLoader(t)
		_, err := loader.Discover(tmpDir)
		require.ErrorIs(t, err, domain.ErrConfigNotFound)
	})
}
