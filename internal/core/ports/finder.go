package ports

import "github.com/shirhatti/cad/internal/core/domain"

// ModelFinder discovers .scad sources under a base directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=finder.go -destination=mocks/mock_finder.go -package=mocks
type ModelFinder interface {
	// Find returns the models matching the filter, sorted by path.
	Find(basePath string, filter domain.ModelFilter) ([]domain.Model, error)
}
