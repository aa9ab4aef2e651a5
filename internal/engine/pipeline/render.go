package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/shirhatti/cad/internal/core/domain"
	"go.trai.ch/zerr"
)

// RenderAll renders every model, oldest cache hits first in the sense
// that each model independently checks the cache before touching the
// renderer. The tool version is resolved once; an unresolvable renderer
// fails the whole run before any model is attempted.
func (p *Pipeline) RenderAll(ctx context.Context, models []domain.Model) error {
	if len(models) == 0 {
		return domain.ErrNoModels
	}

	version, err := p.renderer.Version(ctx)
	if err != nil {
		return err
	}
	versionHash := p.hasher.StringHash(version)

	return forEach(ctx, p.jobs(), models, func(ctx context.Context, m domain.Model) error {
		return p.renderOne(ctx, m, versionHash)
	})
}

func (p *Pipeline) renderOne(ctx context.Context, m domain.Model, versionHash string) error {
	name := m.Name.String()
	scadPath := p.settings.ModelSourcePath(m)
	stlPath := filepath.Join(p.settings.OutputDir, stlDir, name+".stl")
	pngPath := filepath.Join(p.settings.OutputDir, previewDir, name+".png")

	contentHash, err := p.hasher.ModelHash(scadPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to hash model"), "model", name)
	}
	key := domain.RenderKey(versionHash, contentHash)

	ctx, vtx := p.record(ctx, "render "+name)

	if p.upToDate(domain.KindRender, name, key) {
		vtx.Cached()
		vtx.Complete(nil)
		return nil
	}

	if p.cacheEnabled() {
		repo := p.settings.Registry.RenderRepo(m)
		hit, err := p.restore(ctx, repo+":"+key,
			map[string]string{name + ".stl": stlPath},
			map[string]string{name + ".png": pngPath},
		)
		if err != nil {
			p.logger.Warn("cache lookup failed for " + name + ": " + err.Error())
		}
		if hit {
			vtx.Cached()
			vtx.Complete(nil)
			return p.recordOutputs(domain.KindRender, name, key, stlPath, pngPath)
		}
	}

	for _, dir := range []string{filepath.Dir(stlPath), filepath.Dir(pngPath)} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return zerr.Wrap(err, "failed to create render output directory")
		}
	}

	if err := p.renderer.Render(ctx, scadPath, stlPath, pngPath); err != nil {
		vtx.Complete(err)
		return err
	}

	if p.cacheEnabled() {
		files := []string{stlPath}
		if _, err := os.Stat(pngPath); err == nil {
			files = append(files, pngPath)
		}
		p.push(ctx, p.settings.Registry.RenderRepo(m), key, files)
	}

	vtx.Complete(nil)
	return p.recordOutputs(domain.KindRender, name, key, stlPath, pngPath)
}

// recordOutputs writes the local index entry. The preview is listed only
// when it exists, since a failed preview does not fail a render.
func (p *Pipeline) recordOutputs(kind domain.ArtifactKind, name, key string, primary, preview string) error {
	outputs := []string{primary}
	if preview != "" {
		if _, err := os.Stat(preview); err == nil {
			outputs = append(outputs, preview)
		}
	}
	return p.index.Put(domain.BuildInfo{
		ModelName: name,
		Kind:      kind,
		CacheKey:  key,
		Outputs:   outputs,
		Timestamp: time.Now().UTC(),
	})
}
