package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/shirhatti/cad/internal/core/ports"
	"go.trai.ch/zerr"
)

// noTreeSentinel stands in for the hash of a profile directory that does
// not exist, so its absence is itself part of the cache key.
const noTreeSentinel = "no-local-tree"

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes XXHash-based content hashes for cache keys.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// FileHash computes the hash of a single file's content.
func (h *Hasher) FileHash(path string) (string, error) {
	sum, err := h.fileSum(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", sum), nil
}

// ModelHash hashes a .scad file plus all its transitive include/use
// dependencies, so a change in any shared library invalidates every model
// that pulls it in.
func (h *Hasher) ModelHash(path string) (string, error) {
	hasher := xxhash.New()

	if err := h.hashFileInto(hasher, path); err != nil {
		return "", err
	}
	for _, dep := range Dependencies(path) {
		if err := h.hashFileInto(hasher, dep); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// TreeHash hashes every regular file under root in sorted walk order.
// A missing root yields a fixed sentinel rather than an error.
func (h *Hasher) TreeHash(root string) (string, error) {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return h.StringHash(noTreeSentinel), nil
		}
		return "", zerr.With(zerr.Wrap(err, "failed to stat tree root"), "path", root)
	}

	hasher := xxhash.New()
	for path := range h.walker.WalkFiles(root) {
		if err := h.hashFileInto(hasher, path); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// StringHash hashes an in-memory string.
func (h *Hasher) StringHash(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}

func (h *Hasher) fileSum(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return hasher.Sum64(), nil
}

func (h *Hasher) hashFileInto(hasher *xxhash.Digest, path string) error {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(hasher, f); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	_, _ = hasher.Write([]byte{0}) // Separator
	return nil
}
