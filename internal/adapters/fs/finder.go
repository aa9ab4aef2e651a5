package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shirhatti/cad/internal/core/domain"
	"github.com/shirhatti/cad/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModelFinder = (*Finder)(nil)

// Finder discovers .scad sources under a base directory using the Walker.
type Finder struct {
	walker *Walker
}

// NewFinder creates a new Finder.
func NewFinder(walker *Walker) *Finder {
	return &Finder{walker: walker}
}

// Find returns the models under basePath matching the filter, sorted by path.
func (f *Finder) Find(basePath string, filter domain.ModelFilter) ([]domain.Model, error) {
	if _, err := os.Stat(basePath); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "base path not accessible"), "path", basePath)
	}

	var models []domain.Model
	for path := range f.walker.WalkFiles(basePath) {
		if !strings.HasSuffix(path, domain.ScadExt) {
			continue
		}
		if filter.Excluded(filepath.Base(path)) {
			continue
		}

		rel, err := filepath.Rel(basePath, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
		}
		models = append(models, domain.NewModel(rel))
	}

	sort.Slice(models, func(i, j int) bool {
		return models[i].Path.String() < models[j].Path.String()
	})
	return models, nil
}
