package ports

import (
	"context"

	"github.com/shirhatti/cad/internal/core/domain"
)

// ArtifactStore is the remote content-addressed blob store backing the
// cache. Keys are opaque tags; two writers computing the same tag also
// computed the same content, so concurrent pushes are benign.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ArtifactStore interface {
	// Pull fetches the blob set tagged ref into dir. Any failure, from
	// not-found to a network blip, is an error; callers treat all of them
	// as a cache miss.
	Pull(ctx context.Context, ref, dir string) error

	// Push uploads the given files as a blob set tagged ref.
	Push(ctx context.Context, ref string, files []string) error
}

// BuildInfoStore is the local index of artifact sets this machine has
// already produced or fetched.
type BuildInfoStore interface {
	// Get retrieves the entry for a kind/model pair.
	// Returns nil, nil if not found.
	Get(kind domain.ArtifactKind, modelName string) (*domain.BuildInfo, error)

	// Put stores the entry.
	Put(info domain.BuildInfo) error
}
