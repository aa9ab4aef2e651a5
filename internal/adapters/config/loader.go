// Package config provides the configuration loader for cad.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shirhatti/cad/internal/core/domain"
	"github.com/shirhatti/cad/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Defaults applied when cad.yaml is absent or partial.
const (
	DefaultFilename  = "cad.yaml"
	defaultBasePath  = "projects"
	defaultOutputDir = "artifacts"
	defaultStatePath = ".cad/state.json"
	defaultCamera    = "0,0,0,55,0,25,500"
	defaultRegistry  = "ghcr.io"
	defaultBranch    = "main"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file with
// environment overrides. The registry cache is configured entirely from
// the environment so CI enables it without touching the checkout.
type FileConfigLoader struct{}

// NewLoader creates a new FileConfigLoader.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{}
}

// Load reads the configuration file at path. A missing file is not an
// error; defaults apply. A present but malformed file is fatal.
func (l *FileConfigLoader) Load(path string) (*domain.Settings, error) {
	if path == "" {
		path = DefaultFilename
	}

	var cadfile Cadfile

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Zero-config operation is supported.
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	default:
		if err := yaml.Unmarshal(data, &cadfile); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
		}
	}

	settings := fromCadfile(&cadfile)
	applyEnv(settings)
	return settings, nil
}

func fromCadfile(c *Cadfile) *domain.Settings {
	s := &domain.Settings{
		BasePath:  orDefault(c.BasePath, defaultBasePath),
		OutputDir: orDefault(c.OutputDir, defaultOutputDir),
		Jobs:      c.Jobs,
		StatePath: orDefault(c.StatePath, defaultStatePath),
		Camera: domain.CameraSettings{
			Position: orDefault(c.Camera.Position, defaultCamera),
		},
		Profiles: domain.ProfileSettings{
			LocalDir: c.Profiles.LocalDir,
			Machine:  c.Profiles.Machine,
			Process:  c.Profiles.Process,
			Filament: c.Profiles.Filament,
		},
		SliceExclusions: make(map[string]string, len(c.Slice.Exclude)),
		Registry: domain.RegistrySettings{
			Host:       defaultRegistry,
			MainBranch: orDefault(c.Registry.MainBranch, defaultBranch),
		},
	}

	// Config names real source paths; the pipeline looks exclusions up by
	// flattened output name.
	for path, reason := range c.Slice.Exclude {
		s.SliceExclusions[domain.OutputName(filepath.ToSlash(path))] = reason
	}

	return s
}

// applyEnv overlays the CI environment: the cache is enabled when a
// repository is known and not explicitly bypassed.
func applyEnv(s *domain.Settings) {
	if host := os.Getenv("REGISTRY"); host != "" {
		s.Registry.Host = host
	}
	s.Registry.Repository = os.Getenv("GITHUB_REPOSITORY")
	s.Registry.Branch = os.Getenv("GITHUB_REF_NAME")
	s.Registry.Enabled = s.Registry.Repository != "" && os.Getenv("SKIP_CACHE") != "1"
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
