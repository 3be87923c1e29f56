// Package domain contains the core types for the mate build tool.
package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// ProjectType determines how compiled objects are combined into the final artifact.
type ProjectType string

const (
	// Executable links objects into a runnable binary under dist/bin.
	Executable ProjectType = "executable"

	// StaticLibrary archives objects into a static library under dist/lib.
	StaticLibrary ProjectType = "static-library"

	// SharedLibrary links objects into a shared library under dist/lib.
	SharedLibrary ProjectType = "shared-library"
)

// Valid reports whether t is a recognized project type.
func (t ProjectType) Valid() bool {
	switch t {
	case Executable, StaticLibrary, SharedLibrary:
		return true
	}
	return false
}

// IsLibrary reports whether the artifact lands in the lib directory.
func (t ProjectType) IsLibrary() bool {
	return t == StaticLibrary || t == SharedLibrary
}

// InstallSubdir returns the directory name the artifact lives under,
// both inside dist and inside the install prefix.
func (t ProjectType) InstallSubdir() string {
	if t.IsLibrary() {
		return LibDirName
	}
	return BinDirName
}

// Config is the fully resolved build configuration for one project.
// Tool commands are argv slices; the loader splits user-facing command
// strings before a Config is handed to the rest of the application.
type Config struct {
	// Root is the directory containing the matefile. All project-relative
	// paths resolve against it.
	Root string

	// SourceDir is the directory containing sources and headers, relative to Root.
	SourceDir string

	// BuildDir is the directory object files are written to, relative to Root.
	BuildDir string

	// DistDir is the directory the linked artifact and exported headers are
	// staged in, relative to Root.
	DistDir string

	// Compiler is the command prefix used to compile a single source file.
	Compiler []string

	// CompilerArgs are extra arguments appended to every compiler invocation.
	CompilerArgs []string

	// Linker is the command prefix used to link objects into the artifact.
	Linker []string

	// LinkerArgs are extra arguments appended after the object files when linking.
	LinkerArgs []string

	// Archiver is the command used instead of the linker for static libraries.
	Archiver []string

	// Output is the file name of the final artifact.
	Output string

	// ObjectExt is the extension given to compiled object files, without the dot.
	ObjectExt string

	// InstallPrefix is the absolute directory installs copy into.
	InstallPrefix string

	// Type selects the link strategy and the artifact's directory.
	Type ProjectType

	// Sources are the files to compile, relative to SourceDir.
	Sources []string

	// Headers are the files exported to the include directory, relative to SourceDir.
	Headers []string
}

// DefaultConfig returns a Config with every tool and directory set to its
// conventional default. Loaded matefiles overlay onto this.
func DefaultConfig() Config {
	return Config{
		SourceDir:     "src",
		BuildDir:      "build",
		DistDir:       "dist",
		Compiler:      []string{"cc", "-c"},
		CompilerArgs:  []string{"-O2"},
		Linker:        []string{"ld"},
		Archiver:      []string{"ar"},
		Output:        "output",
		ObjectExt:     "o",
		InstallPrefix: "/usr",
		Type:          Executable,
	}
}

// Validate checks that the configuration describes a buildable project.
func (c Config) Validate() error {
	if len(c.Sources) == 0 {
		return ErrNoSources
	}

	if c.Output == "" {
		return ErrNoOutput
	}

	if !c.Type.Valid() {
		return zerr.With(ErrInvalidProjectType, "type", string(c.Type))
	}

	if len(c.Compiler) == 0 {
		return zerr.With(ErrEmptyCommand, "tool", "compiler")
	}

	if c.Type == StaticLibrary {
		if len(c.Archiver) == 0 {
			return zerr.With(ErrEmptyCommand, "tool", "archiver")
		}
	} else if len(c.Linker) == 0 {
		return zerr.With(ErrEmptyCommand, "tool", "linker")
	}

	return nil
}

// SourcePath returns the compiler-facing path of a source or header file.
func (c Config) SourcePath(name string) string {
	return filepath.Join(c.Root, c.SourceDir, name)
}

// ObjectPath maps a source file to its object file under the build directory.
// Directory structure in the source path is flattened into the file name by
// replacing path separators with dots, so "net/tcp.c" becomes
// "build/net.tcp.c.o". The mapping is pure; build and clean both derive
// object paths from the source list, no manifest of produced files is kept.
func (c Config) ObjectPath(src string) string {
	flat := strings.ReplaceAll(filepath.ToSlash(src), "/", ".")
	return filepath.Join(c.Root, c.BuildDir, flat+"."+c.ObjectExt)
}

// ObjectPaths maps every configured source to its object path, in source order.
func (c Config) ObjectPaths() []string {
	objs := make([]string, len(c.Sources))
	for i, src := range c.Sources {
		objs[i] = c.ObjectPath(src)
	}
	return objs
}

// TargetPath returns the linked artifact's path inside the dist tree.
func (c Config) TargetPath() string {
	return filepath.Join(c.Root, c.DistDir, c.Type.InstallSubdir(), c.Output)
}

// InstallPath returns the artifact's path inside the install prefix.
func (c Config) InstallPath() string {
	return filepath.Join(c.InstallPrefix, c.Type.InstallSubdir(), c.Output)
}

// HeaderDistPath returns a header's staged path inside the dist tree.
func (c Config) HeaderDistPath(name string) string {
	return filepath.Join(c.Root, c.DistDir, IncludeDirName, name)
}

// HeaderInstallPath returns a header's path inside the install prefix.
func (c Config) HeaderInstallPath(name string) string {
	return filepath.Join(c.InstallPrefix, IncludeDirName, name)
}

// Tree returns the directories created before a build, in creation order.
func (c Config) Tree() []string {
	dist := filepath.Join(c.Root, c.DistDir)
	return []string{
		filepath.Join(c.Root, c.BuildDir),
		dist,
		filepath.Join(dist, IncludeDirName),
		filepath.Join(dist, BinDirName),
		filepath.Join(dist, LibDirName),
	}
}
