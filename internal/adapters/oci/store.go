// Package oci implements the artifact store against an OCI registry via ORAS.
package oci

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/shirhatti/cad/internal/core/ports"
	"go.trai.ch/zerr"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/file"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/retry"
)

const (
	// artifactType tags manifests pushed by this tool.
	artifactType = "application/vnd.cad.artifact.v1"
	// layerMediaType is used for every file blob; the registry is a dumb
	// byte store here and content types carry no meaning.
	layerMediaType = "application/octet-stream"
)

var _ ports.ArtifactStore = (*Store)(nil)

// Store implements ports.ArtifactStore backed by an OCI registry.
// There is one operator and one registry, so a single token covers
// every repository the store touches.
type Store struct {
	username string
	token    string
}

// New creates a Store authenticating with the given token, if any.
// An empty token means anonymous access.
func New(token string) *Store {
	return &Store{username: "token", token: token}
}

// NewFromEnv creates a Store using the CI-provided registry token.
func NewFromEnv() *Store {
	return New(os.Getenv("GITHUB_TOKEN"))
}

// Pull fetches the blob set tagged ref into dir.
func (s *Store) Pull(ctx context.Context, ref, dir string) error {
	repoName, tag, err := splitRef(ref)
	if err != nil {
		return err
	}

	repo, err := s.repository(repoName)
	if err != nil {
		return err
	}

	store, err := file.New(dir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file store"), "dir", dir)
	}
	defer store.Close() //nolint:errcheck // Best effort close in defer

	if _, err := oras.Copy(ctx, repo, tag, store, tag, oras.DefaultCopyOptions); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to pull artifact set"), "ref", ref)
	}
	return nil
}

// Push uploads the given files as a blob set tagged ref.
func (s *Store) Push(ctx context.Context, ref string, files []string) error {
	repoName, tag, err := splitRef(ref)
	if err != nil {
		return err
	}

	repo, err := s.repository(repoName)
	if err != nil {
		return err
	}

	store, err := file.New("")
	if err != nil {
		return zerr.Wrap(err, "failed to open file store")
	}
	defer store.Close() //nolint:errcheck // Best effort close in defer

	layers := make([]ocispec.Descriptor, 0, len(files))
	for _, path := range files {
		desc, err := store.Add(ctx, filepath.Base(path), layerMediaType, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to stage file"), "path", path)
		}
		layers = append(layers, desc)
	}

	manifest, err := oras.PackManifest(ctx, store, oras.PackManifestVersion1_1, artifactType,
		oras.PackManifestOptions{Layers: layers})
	if err != nil {
		return zerr.Wrap(err, "failed to pack manifest")
	}

	if err := store.Tag(ctx, manifest, tag); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to tag manifest"), "tag", tag)
	}

	if _, err := oras.Copy(ctx, store, tag, repo, tag, oras.DefaultCopyOptions); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to push artifact set"), "ref", ref)
	}
	return nil
}

func (s *Store) repository(name string) (*remote.Repository, error) {
	repo, err := remote.NewRepository(name)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid repository reference"), "repository", name)
	}

	client := &auth.Client{
		Client: retry.DefaultClient,
		Cache:  auth.NewCache(),
	}
	if s.token != "" {
		username, token := s.username, s.token
		client.Credential = func(_ context.Context, _ string) (auth.Credential, error) {
			return auth.Credential{Username: username, Password: token}, nil
		}
	}
	repo.Client = client
	return repo, nil
}

// splitRef separates "host/repo/path:tag" into repository and tag.
func splitRef(ref string) (string, string, error) {
	i := strings.LastIndex(ref, ":")
	// Guard against a colon that belongs to a port in the host part.
	if i < 0 || strings.Contains(ref[i+1:], "/") {
		return "", "", zerr.With(zerr.New("reference has no tag"), "ref", ref)
	}
	return ref[:i], ref[i+1:], nil
}
