package ports

import "go.trai.ch/mate/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the matefile at path, resolves defaults, command templates
	// and source globs, and validates the result. The returned Config's Root
	// is the matefile's directory.
	Load(path string) (domain.Config, error)

	// Discover walks up from cwd to find the nearest matefile.
	// It returns the matefile's path.
	Discover(cwd string) (string, error)
}
