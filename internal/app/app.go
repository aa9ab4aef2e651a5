// Package app implements the application layer for cad.
package app

import (
	"context"
	"slices"

	"github.com/shirhatti/cad/internal/adapters/cas"
	"github.com/shirhatti/cad/internal/adapters/fs"
	"github.com/shirhatti/cad/internal/adapters/lint"
	"github.com/shirhatti/cad/internal/adapters/orca"
	"github.com/shirhatti/cad/internal/adapters/scad"
	"github.com/shirhatti/cad/internal/adapters/shell"
	"github.com/shirhatti/cad/internal/core/domain"
	"github.com/shirhatti/cad/internal/core/ports"
	"github.com/shirhatti/cad/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App wires configuration, model discovery and the pipeline together.
// Tool adapters are built per invocation because their binaries and
// settings come from the loaded configuration and command flags.
type App struct {
	loader    ports.ConfigLoader
	finder    ports.ModelFinder
	hasher    ports.Hasher
	store     ports.ArtifactStore
	logger    ports.Logger
	telemetry ports.Telemetry
	runner    *shell.Runner
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	finder ports.ModelFinder,
	hasher ports.Hasher,
	store ports.ArtifactStore,
	logger ports.Logger,
	telemetry ports.Telemetry,
	runner *shell.Runner,
) *App {
	return &App{
		loader:    loader,
		finder:    finder,
		hasher:    hasher,
		store:     store,
		logger:    logger,
		telemetry: telemetry,
		runner:    runner,
	}
}

// Options carries the flags shared by every subcommand.
type Options struct {
	// ConfigPath overrides the configuration file location.
	ConfigPath string
	// Models restricts the run to the named models. Names match either
	// the flattened output name or the source path.
	Models []string
	// Jobs overrides the configured parallelism when positive.
	Jobs int
	// OutputDir overrides the configured artifact directory when set.
	OutputDir string
	// RenderBinary and SliceBinary override tool discovery on PATH.
	RenderBinary string
	SliceBinary  string
}

func (a *App) load(opts Options) (*domain.Settings, error) {
	settings, err := a.loader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if opts.Jobs > 0 {
		settings.Jobs = opts.Jobs
	}
	if opts.OutputDir != "" {
		settings.OutputDir = opts.OutputDir
	}
	return settings, nil
}

func (a *App) models(settings *domain.Settings, filter domain.ModelFilter, names []string) ([]domain.Model, error) {
	models, err := a.finder.Find(settings.BasePath, filter)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return models, nil
	}

	var selected []domain.Model
	for _, m := range models {
		if slices.Contains(names, m.Name.String()) || slices.Contains(names, m.Path.String()) {
			selected = append(selected, m)
		}
	}
	if len(selected) == 0 {
		return nil, zerr.With(domain.ErrModelNotFound, "names", names)
	}
	return selected, nil
}

func (a *App) pipeline(settings *domain.Settings, opts Options) (*pipeline.Pipeline, error) {
	index, err := cas.NewStore(settings.StatePath)
	if err != nil {
		return nil, err
	}
	renderer := scad.NewRenderer(opts.RenderBinary, settings.Camera, a.runner, a.logger)
	slicer := orca.NewSlicer(opts.SliceBinary, settings.Profiles, a.runner, a.logger)
	return pipeline.New(
		settings, renderer, slicer, a.hasher,
		a.store, index, fs.NewVerifier(), a.logger, a.telemetry,
	), nil
}

// List returns the discovered models matching the filter.
func (a *App) List(_ context.Context, opts Options, filter domain.ModelFilter) ([]domain.Model, error) {
	settings, err := a.load(opts)
	if err != nil {
		return nil, err
	}
	return a.models(settings, filter, opts.Models)
}

// Render renders the selected models, consulting the cache first.
func (a *App) Render(ctx context.Context, opts Options) error {
	settings, err := a.load(opts)
	if err != nil {
		return err
	}
	models, err := a.models(settings, domain.ModelFilter{}, opts.Models)
	if err != nil {
		return err
	}
	p, err := a.pipeline(settings, opts)
	if err != nil {
		return err
	}
	return p.RenderAll(ctx, models)
}

// Slice slices every rendered mesh, consulting the cache first.
func (a *App) Slice(ctx context.Context, opts Options) error {
	settings, err := a.load(opts)
	if err != nil {
		return err
	}
	p, err := a.pipeline(settings, opts)
	if err != nil {
		return err
	}
	return p.SliceAll(ctx)
}

// Check compiles every selected renderable model without producing
// artifacts. Tests, libs, constants and reference files are excluded.
func (a *App) Check(ctx context.Context, opts Options) error {
	settings, err := a.load(opts)
	if err != nil {
		return err
	}
	models, err := a.models(settings, domain.ModelFilter{}, opts.Models)
	if err != nil {
		return err
	}
	p, err := a.pipeline(settings, opts)
	if err != nil {
		return err
	}
	return p.CheckAll(ctx, models)
}

// Test runs every _test.scad file and returns the per-file results.
func (a *App) Test(ctx context.Context, opts Options) ([]domain.TestResult, error) {
	settings, err := a.load(opts)
	if err != nil {
		return nil, err
	}
	models, err := a.models(settings, domain.ModelFilter{OnlyTests: true}, opts.Models)
	if err != nil {
		return nil, err
	}
	p, err := a.pipeline(settings, opts)
	if err != nil {
		return nil, err
	}
	return p.TestAll(ctx, models)
}

// Lint checks the selected models for Customizer compliance.
func (a *App) Lint(_ context.Context, opts Options) ([]lint.Result, error) {
	settings, err := a.load(opts)
	if err != nil {
		return nil, err
	}
	models, err := a.models(settings, domain.ModelFilter{}, opts.Models)
	if err != nil {
		return nil, err
	}

	results := make([]lint.Result, 0, len(models))
	failed := 0
	for _, m := range models {
		res := lint.File(settings.ModelSourcePath(m))
		if !res.Passed() {
			failed++
		}
		results = append(results, res)
	}
	if failed > 0 {
		return results, zerr.With(zerr.With(domain.ErrLintFailed, "failed", failed), "total", len(models))
	}
	return results, nil
}

// Close flushes the progress display.
func (a *App) Close() error {
	return a.telemetry.Close()
}
