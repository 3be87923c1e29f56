// Package ports defines the core interfaces for the application.
package ports

import "context"

// Runner defines the interface for invoking external build tools.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes argv synchronously with the process's stdout and stderr
	// attached, so tool diagnostics interleave with progress output.
	//
	// A non-zero exit status is reported as a *domain.ExitError carrying the
	// verbatim code. Other failures (tool not found, context cancelled)
	// return ordinary errors.
	Run(ctx context.Context, argv []string) error
}
