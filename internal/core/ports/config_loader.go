// Package ports defines the core interfaces for the application.
package ports

import "github.com/shirhatti/cad/internal/core/domain"

// ConfigLoader loads the pipeline settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path, falling back to defaults
	// when it does not exist, and applies environment overrides.
	Load(path string) (*domain.Settings, error)
}
