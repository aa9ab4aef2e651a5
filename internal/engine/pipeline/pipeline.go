// Package pipeline orchestrates the render and slice stages across the
// model tree, with a content-addressed cache in front of both.
//
// The cache key for a stage is derived from the tool version and the
// full content the stage consumes, so a hit is only possible when the
// stage would reproduce the same bytes anyway. Every cache failure from
// lookup to population degrades to doing the work locally; the only
// fatal failures are the external tools themselves.
package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/shirhatti/cad/internal/core/domain"
	"github.com/shirhatti/cad/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Output subdirectories under the configured output directory.
const (
	stlDir     = "stl"
	previewDir = "preview"
	gcodeDir   = "gcode"
	logsDir    = "logs"
)

// latestTag is the floating alias updated by main-branch builds.
const latestTag = "latest"

// OutputVerifier checks that a previously recorded artifact set is still
// on disk.
type OutputVerifier interface {
	OutputsExist(paths []string) (bool, error)
}

// Pipeline runs the cached render and slice stages.
type Pipeline struct {
	settings  *domain.Settings
	renderer  ports.Renderer
	slicer    ports.Slicer
	hasher    ports.Hasher
	store     ports.ArtifactStore
	index     ports.BuildInfoStore
	verifier  OutputVerifier
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a Pipeline. The artifact store may be nil when the cache
// is disabled; the local index and verifier are always required.
func New(
	settings *domain.Settings,
	renderer ports.Renderer,
	slicer ports.Slicer,
	hasher ports.Hasher,
	store ports.ArtifactStore,
	index ports.BuildInfoStore,
	verifier OutputVerifier,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Pipeline {
	return &Pipeline{
		settings:  settings,
		renderer:  renderer,
		slicer:    slicer,
		hasher:    hasher,
		store:     store,
		index:     index,
		verifier:  verifier,
		logger:    logger,
		telemetry: telemetry,
	}
}

func (p *Pipeline) jobs() int {
	if p.settings.Jobs > 0 {
		return p.settings.Jobs
	}
	return runtime.NumCPU()
}

func (p *Pipeline) cacheEnabled() bool {
	return p.settings.Registry.Enabled && p.store != nil
}

// forEach runs fn for every item with bounded parallelism, collecting
// the first error but letting independent items finish.
func forEach[T any](ctx context.Context, jobs int, items []T, fn func(context.Context, T) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, item := range items {
		g.Go(func() error {
			return fn(ctx, item)
		})
	}
	return g.Wait()
}

// record starts a telemetry vertex and attaches it to the context so
// lower layers can stream output into it.
func (p *Pipeline) record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	ctx, vtx := p.telemetry.Record(ctx, name)
	return ports.ContextWithVertex(ctx, vtx), vtx
}

// upToDate reports whether the local index already recorded this exact
// key and the recorded outputs are still present.
func (p *Pipeline) upToDate(kind domain.ArtifactKind, name, key string) bool {
	info, err := p.index.Get(kind, name)
	if err != nil || info == nil || info.CacheKey != key {
		return false
	}
	ok, err := p.verifier.OutputsExist(info.Outputs)
	return err == nil && ok
}

// restore pulls ref into a scratch directory and moves the named files
// into place. required files must all be present for the pull to count
// as a hit; optional ones are moved when found.
func (p *Pipeline) restore(ctx context.Context, ref string, required, optional map[string]string) (bool, error) {
	scratch, err := os.MkdirTemp("", "cad-pull-*")
	if err != nil {
		return false, zerr.Wrap(err, "failed to create scratch directory")
	}
	defer os.RemoveAll(scratch)

	if err := p.store.Pull(ctx, ref, scratch); err != nil {
		return false, err
	}

	for name := range required {
		if _, err := os.Stat(filepath.Join(scratch, name)); err != nil {
			return false, zerr.With(zerr.New("pulled artifact is missing a file"), "file", name)
		}
	}
	for name, dst := range required {
		if err := installFile(filepath.Join(scratch, name), dst); err != nil {
			return false, err
		}
	}
	for name, dst := range optional {
		src := filepath.Join(scratch, name)
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if err := installFile(src, dst); err != nil {
			return false, err
		}
	}
	return true, nil
}

// push uploads files under ref, and under the latest alias on the main
// branch. Failures are logged, never returned: a populated cache is an
// optimization, not a product.
func (p *Pipeline) push(ctx context.Context, repo, key string, files []string) {
	if err := p.store.Push(ctx, repo+":"+key, files); err != nil {
		p.logger.Warn("cache push failed: " + err.Error())
		return
	}
	if p.settings.Registry.OnMainBranch() {
		if err := p.store.Push(ctx, repo+":"+latestTag, files); err != nil {
			p.logger.Warn("latest alias push failed: " + err.Error())
		}
	}
}

// installFile moves src to dst, creating parent directories. A rename
// across filesystems falls back to a copy.
func installFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create output directory")
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src) //nolint:gosec // src lives in our scratch directory
	if err != nil {
		return zerr.Wrap(err, "failed to open pulled file")
	}
	defer in.Close()

	out, err := os.Create(dst) //nolint:gosec // dst is under the configured output directory
	if err != nil {
		return zerr.Wrap(err, "failed to create output file")
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return zerr.Wrap(err, "failed to copy pulled file")
	}
	return out.Close()
}
