// Package scad wraps the OpenSCAD renderer binary.
package scad

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/shirhatti/cad/internal/adapters/shell"
	"github.com/shirhatti/cad/internal/core/domain"
	"github.com/shirhatti/cad/internal/core/ports"
	"go.trai.ch/zerr"
)

const defaultBinary = "openscad"

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer by invoking the openscad binary.
type Renderer struct {
	binary string
	camera domain.CameraSettings
	runner *shell.Runner
	logger ports.Logger

	versionOnce sync.Once
	version     string
	versionErr  error
}

// NewRenderer creates a Renderer. binary may be empty, in which case
// openscad is resolved from PATH at first use.
func NewRenderer(binary string, camera domain.CameraSettings, runner *shell.Runner, logger ports.Logger) *Renderer {
	return &Renderer{
		binary: binary,
		camera: camera,
		runner: runner,
		logger: logger,
	}
}

// resolve locates the renderer binary.
func (r *Renderer) resolve() (string, error) {
	if r.binary != "" {
		return r.binary, nil
	}
	path, err := exec.LookPath(defaultBinary)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrToolNotFound, "openscad not on PATH"), "tool", defaultBinary)
	}
	r.binary = path
	return path, nil
}

// Version returns the renderer's version string. OpenSCAD prints it to
// stderr; the result is cached for the process lifetime since the cache
// key derivation asks repeatedly.
func (r *Renderer) Version(ctx context.Context) (string, error) {
	r.versionOnce.Do(func() {
		bin, err := r.resolve()
		if err != nil {
			r.versionErr = err
			return
		}
		res, err := r.runner.Run(ctx, bin, "--version")
		if err != nil && res == nil {
			r.versionErr = zerr.Wrap(err, "failed to query renderer version")
			return
		}
		v := strings.TrimSpace(res.Stderr)
		if v == "" {
			v = strings.TrimSpace(res.Stdout)
		}
		if v == "" {
			v = "unknown"
		}
		r.version = v
	})
	return r.version, r.versionErr
}

// Render produces the mesh and the preview image. The preview is best
// effort: its failure is logged as a warning and the render still counts
// as successful.
func (r *Renderer) Render(ctx context.Context, scadPath, stlPath, pngPath string) error {
	bin, err := r.resolve()
	if err != nil {
		return err
	}

	if res, err := r.runner.Run(ctx, bin, "-o", stlPath, scadPath); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrRenderFailed, "mesh export failed"),
			"model", scadPath), "stderr", tail(res.Stderr, 5))
	}

	args := []string{
		"-o", pngPath,
		"--autocenter", "--viewall",
		"--camera=" + r.camera.Position,
		scadPath,
	}
	if _, err := r.runner.Run(ctx, bin, args...); err != nil {
		r.logger.Warn("preview render failed for " + scadPath + " (continuing)")
	}

	return nil
}

// Check validates that the model compiles by exporting CSG to the null sink.
func (r *Renderer) Check(ctx context.Context, scadPath string) error {
	bin, err := r.resolve()
	if err != nil {
		return err
	}

	if res, err := r.runner.Run(ctx, bin, "--export-format", "csg", "-o", os.DevNull, scadPath); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrChecksFailed, "model does not compile"),
			"model", scadPath), "stderr", tail(res.Stderr, 5))
	}
	return nil
}

// RunTest executes a _test.scad file with hard warnings enabled and
// interprets the assertion output.
func (r *Renderer) RunTest(ctx context.Context, model domain.Model, scadPath string) (domain.TestResult, error) {
	result := domain.TestResult{Model: model}

	bin, err := r.resolve()
	if err != nil {
		return result, err
	}

	res, runErr := r.runner.Run(ctx, bin, "--hardwarnings", "-o", os.DevNull, "--export-format", "csg", scadPath)
	if res == nil {
		return result, zerr.Wrap(runErr, "failed to run test")
	}

	for _, line := range strings.Split(res.Stderr, "\n") {
		if strings.HasPrefix(line, "ECHO:") {
			result.Echoes = append(result.Echoes, line)
		}
	}

	switch {
	case strings.Contains(res.Stderr, "Assertion") && strings.Contains(res.Stderr, "failed"):
		result.Reason = "assertion failed"
	case runErr != nil:
		result.Reason = "renderer exited non-zero"
	default:
		result.Passed = true
	}

	return result, nil
}

// tail returns the last n lines of s, the part of tool output worth
// attaching to an error.
func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
