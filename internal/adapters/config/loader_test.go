package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shirhatti/cad/internal/adapters/config"
)

func clearRegistryEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"REGISTRY", "GITHUB_REPOSITORY", "GITHUB_REF_NAME", "SKIP_CACHE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearRegistryEnv(t)

	loader := config.NewLoader()
	settings, err := loader.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if settings.BasePath != "projects" {
		t.Errorf("BasePath = %q", settings.BasePath)
	}
	if settings.OutputDir != "artifacts" {
		t.Errorf("OutputDir = %q", settings.OutputDir)
	}
	if settings.StatePath != ".cad/state.json" {
		t.Errorf("StatePath = %q", settings.StatePath)
	}
	if settings.Registry.Host != "ghcr.io" {
		t.Errorf("Registry.Host = %q", settings.Registry.Host)
	}
	if settings.Registry.Enabled {
		t.Error("cache must be disabled without GITHUB_REPOSITORY")
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	clearRegistryEnv(t)

	path := filepath.Join(t.TempDir(), "cad.yaml")
	content := `
basePath: models
outputDir: out
jobs: 4
camera:
  position: "1,2,3,40,0,20,300"
profiles:
  localDir: profiles
  machine: profiles/machine.json
  process: profiles/process.json
  filament: profiles/filament.json
slice:
  exclude:
    rack/fragile_part.scad: "warps without supports"
registry:
  mainBranch: trunk
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	settings, err := config.NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if settings.BasePath != "models" || settings.OutputDir != "out" || settings.Jobs != 4 {
		t.Errorf("unexpected settings: %+v", settings)
	}
	if settings.Camera.Position != "1,2,3,40,0,20,300" {
		t.Errorf("Camera = %q", settings.Camera.Position)
	}
	if got := settings.Profiles.Chain(); len(got) != 3 || got[0] != "profiles/machine.json" {
		t.Errorf("Chain = %v", got)
	}
	if settings.Registry.MainBranch != "trunk" {
		t.Errorf("MainBranch = %q", settings.Registry.MainBranch)
	}

	// Exclusions are keyed by flattened output name, not source path.
	reason, ok := settings.SliceExclusions["rack__fragile_part"]
	if !ok || reason != "warps without supports" {
		t.Errorf("SliceExclusions = %v", settings.SliceExclusions)
	}
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cad.yaml")
	if err := os.WriteFile(path, []byte("basePath: [unclosed"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := config.NewLoader().Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestLoad_EnvironmentOverlay(t *testing.T) {
	clearRegistryEnv(t)
	t.Setenv("GITHUB_REPOSITORY", "alice/models")
	t.Setenv("GITHUB_REF_NAME", "main")
	t.Setenv("REGISTRY", "registry.example.com")

	settings, err := config.NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !settings.Registry.Enabled {
		t.Error("cache must be enabled when a repository is configured")
	}
	if settings.Registry.Host != "registry.example.com" {
		t.Errorf("Host = %q", settings.Registry.Host)
	}
	if settings.Registry.Repository != "alice/models" {
		t.Errorf("Repository = %q", settings.Registry.Repository)
	}
	if !settings.Registry.OnMainBranch() {
		t.Error("expected main branch")
	}
}

func TestLoad_SkipCacheDisables(t *testing.T) {
	clearRegistryEnv(t)
	t.Setenv("GITHUB_REPOSITORY", "alice/models")
	t.Setenv("SKIP_CACHE", "1")

	settings, err := config.NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.Registry.Enabled {
		t.Error("SKIP_CACHE=1 must disable the cache")
	}
}
