// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bento/internal/adapters/config"
	_ "go.trai.ch/bento/internal/adapters/fs"
	_ "go.trai.ch/bento/internal/adapters/linear"
	_ "go.trai.ch/bento/internal/adapters/logger"
	_ "go.trai.ch/bento/internal/adapters/metrics"
	_ "go.trai.ch/bento/internal/adapters/shell"
	_ "go.trai.ch/bento/internal/adapters/telemetry"
	_ "go.trai.ch/bento/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/bento/internal/app"
)
