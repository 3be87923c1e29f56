package domain

import "go.trai.ch/zerr"

var (
	// ErrNoSources is returned when a matefile declares no source files.
	ErrNoSources = zerr.New("no source files configured")

	// ErrNoOutput is returned when a matefile declares no output name.
	ErrNoOutput = zerr.New("no output name configured")

	// ErrInvalidProjectType is returned when the project type is not recognized.
	ErrInvalidProjectType = zerr.New("invalid project type, expected 'executable', 'static-library' or 'shared-library'")

	// ErrEmptyCommand is returned when a tool command template resolves to no argv.
	ErrEmptyCommand = zerr.New("empty command template")

	// ErrBadCommandTemplate is returned when a tool command template cannot be split into argv.
	ErrBadCommandTemplate = zerr.New("malformed command template")

	// ErrSourceGlobFailed is returned when a source pattern cannot be expanded.
	ErrSourceGlobFailed = zerr.New("failed to expand source pattern")

	// ErrNoGlobMatches is returned when a source pattern matches no files.
	ErrNoGlobMatches = zerr.New("source pattern matched no files")

	// ErrConfigReadFailed is returned when the matefile cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read matefile")

	// ErrConfigParseFailed is returned when the matefile cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse matefile")

	// ErrConfigNotFound is returned when no matefile exists in the working directory or any parent.
	ErrConfigNotFound = zerr.New("could not find matefile")

	// ErrUnknownCommand is returned when the CLI is invoked with an unregistered command name.
	ErrUnknownCommand = zerr.New("unknown command")

	// ErrCompileFailed is returned when the compiler exits with a non-zero status.
	ErrCompileFailed = zerr.New("compilation failed")

	// ErrLinkFailed is returned when the linker or archiver exits with a non-zero status.
	ErrLinkFailed = zerr.New("linking failed")

	// ErrTreeSetupFailed is returned when the build and dist directories cannot be created.
	ErrTreeSetupFailed = zerr.New("failed to create output directories")

	// ErrUnsupportedPlatform is returned when a command is not available on the host platform.
	ErrUnsupportedPlatform = zerr.New("command is not supported on this platform")
)
