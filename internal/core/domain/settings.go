package domain

import "path/filepath"

// Settings is the resolved pipeline configuration: the cad.yaml file with
// environment overrides applied.
type Settings struct {
	// BasePath is the directory searched for .scad sources.
	BasePath string
	// OutputDir receives the stl/, preview/, gcode/ and logs/ trees.
	OutputDir string
	// Jobs bounds pipeline parallelism. Zero means NumCPU.
	Jobs int

	Camera          CameraSettings
	Profiles        ProfileSettings
	SliceExclusions map[string]string
	Registry        RegistrySettings
	// StatePath locates the local build-info index.
	StatePath string
}

// ModelSourcePath returns the on-disk path of a model's source file.
func (s *Settings) ModelSourcePath(m Model) string {
	return filepath.Join(s.BasePath, filepath.FromSlash(m.Path.String()))
}

// CameraSettings configures preview image rendering.
type CameraSettings struct {
	// Position is passed verbatim as --camera.
	Position string
}

// ProfileSettings names the slicer configuration chain: machine, process
// and filament profile files, plus the directory of local overrides that
// participates in the slice cache key.
type ProfileSettings struct {
	LocalDir string
	Machine  string
	Process  string
	Filament string
}

// Chain returns the profile list in the machine;process;filament order
// the slicer expects.
func (p ProfileSettings) Chain() []string {
	return []string{p.Machine, p.Process, p.Filament}
}

// RegistrySettings describes the artifact store used as cache backend.
// The cache is enabled only when a repository is configured and not
// explicitly bypassed; every failure against it degrades to doing the
// work locally.
type RegistrySettings struct {
	// Host is the registry hostname, e.g. "ghcr.io".
	Host string
	// Repository is the owner/name pair the cache lives under.
	Repository string
	// Branch is the current branch, if known.
	Branch string
	// MainBranch is the branch whose builds update the floating latest tag.
	MainBranch string
	// Enabled gates all cache traffic.
	Enabled bool
}

// OnMainBranch reports whether pushes should also update the latest alias.
func (r RegistrySettings) OnMainBranch() bool {
	return r.MainBranch != "" && r.Branch == r.MainBranch
}

// RenderRepo returns the registry repository for a model's render artifacts.
func (r RegistrySettings) RenderRepo(m Model) string {
	return r.repo("renders", m)
}

// SliceRepo returns the registry repository for a model's slice artifacts.
func (r RegistrySettings) SliceRepo(m Model) string {
	return r.repo("slices", m)
}

func (r RegistrySettings) repo(kind string, m Model) string {
	ref := r.Host + "/" + r.Repository + "/" + kind
	if p := m.Project.String(); p != "" {
		ref += "/" + p
	}
	return ref + "/" + m.Basename()
}
