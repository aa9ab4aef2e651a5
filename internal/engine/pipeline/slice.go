package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shirhatti/cad/internal/core/domain"
	"go.trai.ch/zerr"
)

// SliceAll slices every mesh under the output directory. Meshes listed
// in the exclusion map are skipped with their configured reason. The
// slice cache key covers the slicer version, the local profile
// overrides and the mesh itself, so a re-render that reproduced the
// same mesh still hits the slice cache.
func (p *Pipeline) SliceAll(ctx context.Context) error {
	meshes, err := p.findMeshes()
	if err != nil {
		return err
	}
	if len(meshes) == 0 {
		return zerr.Wrap(domain.ErrNoModels, "no meshes to slice, render first")
	}

	version, err := p.slicer.Version(ctx)
	if err != nil {
		return err
	}
	versionHash := p.hasher.StringHash(version)

	profilesHash, err := p.hasher.TreeHash(p.settings.Profiles.LocalDir)
	if err != nil {
		return zerr.Wrap(err, "failed to hash profile overrides")
	}

	return forEach(ctx, p.jobs(), meshes, func(ctx context.Context, stlPath string) error {
		return p.sliceOne(ctx, stlPath, versionHash, profilesHash)
	})
}

func (p *Pipeline) findMeshes() ([]string, error) {
	dir := filepath.Join(p.settings.OutputDir, stlDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read mesh directory")
	}

	var meshes []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".stl") {
			continue
		}
		meshes = append(meshes, filepath.Join(dir, e.Name()))
	}
	sort.Strings(meshes)
	return meshes, nil
}

func (p *Pipeline) sliceOne(ctx context.Context, stlPath, versionHash, profilesHash string) error {
	name := strings.TrimSuffix(filepath.Base(stlPath), ".stl")

	if reason, ok := p.settings.SliceExclusions[name]; ok {
		p.logger.Info("skipping slice of " + name + ": " + reason)
		return nil
	}

	outPath := filepath.Join(p.settings.OutputDir, gcodeDir, name+".3mf")
	logPath := filepath.Join(p.settings.OutputDir, logsDir, name+".log")

	contentHash, err := p.hasher.FileHash(stlPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to hash mesh"), "mesh", name)
	}
	key := domain.SliceKey(versionHash, profilesHash, contentHash)

	ctx, vtx := p.record(ctx, "slice "+name)

	if p.upToDate(domain.KindSlice, name, key) {
		vtx.Cached()
		vtx.Complete(nil)
		return nil
	}

	// The model identity is recovered from the flattened mesh name so the
	// registry repository matches the one the render stage used.
	m := domain.NewModel(domain.ModelPath(name) + domain.ScadExt)

	if p.cacheEnabled() {
		repo := p.settings.Registry.SliceRepo(m)
		hit, err := p.restore(ctx, repo+":"+key,
			map[string]string{name + ".3mf": outPath},
			map[string]string{name + ".log": logPath},
		)
		if err != nil {
			p.logger.Warn("cache lookup failed for " + name + ": " + err.Error())
		}
		if hit {
			vtx.Cached()
			vtx.Complete(nil)
			return p.recordOutputs(domain.KindSlice, name, key, outPath, logPath)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create slice output directory")
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create slice log directory")
	}

	if err := p.slicer.Slice(ctx, stlPath, outPath, logPath); err != nil {
		vtx.Complete(err)
		return err
	}

	if p.cacheEnabled() {
		files := []string{outPath}
		if _, err := os.Stat(logPath); err == nil {
			files = append(files, logPath)
		}
		p.push(ctx, p.settings.Registry.SliceRepo(m), key, files)
	}

	vtx.Complete(nil)
	return p.recordOutputs(domain.KindSlice, name, key, outPath, logPath)
}
