// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pmk/internal/adapters/config"
	_ "go.trai.ch/pmk/internal/adapters/fs"
	_ "go.trai.ch/pmk/internal/adapters/logger"
	_ "go.trai.ch/pmk/internal/adapters/pkgconfig"
	_ "go.trai.ch/pmk/internal/adapters/shell"
	_ "go.trai.ch/pmk/internal/adapters/state"
	_ "go.trai.ch/pmk/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/pmk/internal/app"
	_ "go.trai.ch/pmk/internal/engine/builder"
	_ "go.trai.ch/pmk/internal/engine/dispatcher"
)
