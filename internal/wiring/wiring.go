// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sassy/internal/adapters/backend/libsass"
	_ "go.trai.ch/sassy/internal/adapters/config"
	_ "go.trai.ch/sassy/internal/adapters/fs"
	_ "go.trai.ch/sassy/internal/adapters/logger"
	_ "go.trai.ch/sassy/internal/adapters/metrics"
	_ "go.trai.ch/sassy/internal/adapters/minify"
	_ "go.trai.ch/sassy/internal/adapters/probe"
	_ "go.trai.ch/sassy/internal/adapters/project"
	_ "go.trai.ch/sassy/internal/adapters/registry"
	_ "go.trai.ch/sassy/internal/adapters/shell"
	_ "go.trai.ch/sassy/internal/adapters/telemetry"
	_ "go.trai.ch/sassy/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/sassy/internal/app"
	_ "go.trai.ch/sassy/internal/engine/orchestrator"
	_ "go.trai.ch/sassy/internal/engine/router"
	_ "go.trai.ch/sassy/internal/engine/selector"
)
