package domain

import "time"

// ArtifactKind distinguishes the two cached pipeline stages.
type ArtifactKind string

const (
	// KindRender is the mesh-plus-preview artifact set produced by the renderer.
	KindRender ArtifactKind = "render"
	// KindSlice is the manufacturing artifact set produced by the slicer.
	KindSlice ArtifactKind = "slice"
)

// BuildInfo records a locally produced (or locally fetched) artifact set.
// It lets a rerun skip the registry round-trip entirely when the key is
// unchanged and the outputs are still on disk. The registry stays the
// source of truth across machines.
type BuildInfo struct {
	ModelName string       `json:"model_name,omitzero"`
	Kind      ArtifactKind `json:"kind,omitzero"`
	CacheKey  string       `json:"cache_key,omitzero"`
	Outputs   []string     `json:"outputs,omitempty"`
	Timestamp time.Time    `json:"timestamp,omitzero"`
}

// IndexKey is the key under which this entry is stored in the local index.
func (b BuildInfo) IndexKey() string {
	return string(b.Kind) + "/" + b.ModelName
}
