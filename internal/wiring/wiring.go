// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/recomp/internal/adapters/config"
	_ "go.trai.ch/recomp/internal/adapters/facts"
	_ "go.trai.ch/recomp/internal/adapters/fs"
	_ "go.trai.ch/recomp/internal/adapters/logger"
	_ "go.trai.ch/recomp/internal/adapters/snapshot"
	_ "go.trai.ch/recomp/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/recomp/internal/app"
	_ "go.trai.ch/recomp/internal/engine/collector"
)
