package pipeline

import (
	"context"
	"sync"

	"github.com/shirhatti/cad/internal/core/domain"
	"go.trai.ch/zerr"
)

// CheckAll compiles every model without producing output. All models are
// attempted; the returned error reports how many failed.
func (p *Pipeline) CheckAll(ctx context.Context, models []domain.Model) error {
	if len(models) == 0 {
		return domain.ErrNoModels
	}

	var mu sync.Mutex
	var failed int

	err := forEach(ctx, p.jobs(), models, func(ctx context.Context, m domain.Model) error {
		scadPath := p.settings.ModelSourcePath(m)
		ctx, vtx := p.record(ctx, "check "+m.Name.String())
		checkErr := p.renderer.Check(ctx, scadPath)
		vtx.Complete(checkErr)
		if checkErr != nil {
			p.logger.Error(zerr.With(checkErr, "model", m.Name.String()))
			mu.Lock()
			failed++
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return err
	}

	if failed > 0 {
		return zerr.With(zerr.With(domain.ErrChecksFailed, "failed", failed), "total", len(models))
	}
	return nil
}

// TestAll runs every _test.scad file and collects the results. Like
// CheckAll it never stops at the first failure.
func (p *Pipeline) TestAll(ctx context.Context, models []domain.Model) ([]domain.TestResult, error) {
	if len(models) == 0 {
		return nil, domain.ErrNoModels
	}

	var mu sync.Mutex
	results := make([]domain.TestResult, 0, len(models))

	err := forEach(ctx, p.jobs(), models, func(ctx context.Context, m domain.Model) error {
		scadPath := p.settings.ModelSourcePath(m)
		ctx, vtx := p.record(ctx, "test "+m.Name.String())
		res, runErr := p.renderer.RunTest(ctx, m, scadPath)
		if runErr != nil {
			vtx.Complete(runErr)
			return runErr
		}
		if res.Passed {
			vtx.Complete(nil)
		} else {
			vtx.Complete(zerr.With(domain.ErrTestsFailed, "model", m.Name.String()))
		}
		mu.Lock()
		results = append(results, res)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return results, err
	}

	for _, r := range results {
		if !r.Passed {
			return results, domain.ErrTestsFailed
		}
	}
	return results, nil
}
