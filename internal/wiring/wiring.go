// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/shirhatti/cad/internal/adapters/config"
	_ "github.com/shirhatti/cad/internal/adapters/fs"
	_ "github.com/shirhatti/cad/internal/adapters/logger"
	_ "github.com/shirhatti/cad/internal/adapters/oci"
	_ "github.com/shirhatti/cad/internal/adapters/shell"
	_ "github.com/shirhatti/cad/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "github.com/shirhatti/cad/internal/app"
)
