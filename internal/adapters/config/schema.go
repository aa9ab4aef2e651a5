package config

// Cadfile represents the structure of the cad.yaml configuration file.
type Cadfile struct {
	Version   string      `yaml:"version"`
	BasePath  string      `yaml:"basePath"`
	OutputDir string      `yaml:"outputDir"`
	Jobs      int         `yaml:"jobs"`
	StatePath string      `yaml:"statePath"`
	Camera    CameraDTO   `yaml:"camera"`
	Profiles  ProfilesDTO `yaml:"profiles"`
	Slice     SliceDTO    `yaml:"slice"`
	Registry  RegistryDTO `yaml:"registry"`
}

// CameraDTO configures the preview render camera.
type CameraDTO struct {
	Position string `yaml:"position"`
}

// ProfilesDTO names the slicer profile chain.
type ProfilesDTO struct {
	LocalDir string `yaml:"localDir"`
	Machine  string `yaml:"machine"`
	Process  string `yaml:"process"`
	Filament string `yaml:"filament"`
}

// SliceDTO holds slicing options.
type SliceDTO struct {
	// Exclude maps model source paths to the reason they are skipped.
	Exclude map[string]string `yaml:"exclude"`
}

// RegistryDTO holds artifact-registry options not sourced from the environment.
type RegistryDTO struct {
	MainBranch string `yaml:"mainBranch"`
}
