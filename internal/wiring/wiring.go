// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mate/internal/adapters/config"
	_ "go.trai.ch/mate/internal/adapters/console"
	_ "go.trai.ch/mate/internal/adapters/fsops"
	_ "go.trai.ch/mate/internal/adapters/logger"
	_ "go.trai.ch/mate/internal/adapters/shell"
	_ "go.trai.ch/mate/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/mate/internal/app"
)
