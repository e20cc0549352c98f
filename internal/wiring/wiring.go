// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bazelify/internal/adapters/fs"
	_ "go.trai.ch/bazelify/internal/adapters/logger"
	_ "go.trai.ch/bazelify/internal/adapters/pubspec"
	_ "go.trai.ch/bazelify/internal/adapters/searchpath"
	// Register app nodes.
	_ "go.trai.ch/bazelify/internal/app"
)
