// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/focal/internal/adapters/backend"
	_ "go.trai.ch/focal/internal/adapters/buildfile"
	_ "go.trai.ch/focal/internal/adapters/cache"
	_ "go.trai.ch/focal/internal/adapters/config"
	_ "go.trai.ch/focal/internal/adapters/discovery"
	_ "go.trai.ch/focal/internal/adapters/linear"
	_ "go.trai.ch/focal/internal/adapters/logger"
	_ "go.trai.ch/focal/internal/adapters/shell"
	_ "go.trai.ch/focal/internal/adapters/toolchain"
	_ "go.trai.ch/focal/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/focal/internal/app"
	_ "go.trai.ch/focal/internal/engine/scheduler"
)
