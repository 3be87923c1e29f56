package app

import "go.trai.ch/mate/internal/core/ports"

// Components contains the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// SetVerbose switches the logger into debug-level output when the concrete
// logger supports it.
func (c *Components) SetVerbose(verbose bool) {
	if l, ok := c.Logger.(interface{ SetVerbose(bool) }); ok {
		l.SetVerbose(verbose)
	}
}
