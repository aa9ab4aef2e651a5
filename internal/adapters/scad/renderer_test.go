package scad_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/shirhatti/cad/internal/adapters/scad"
	"github.com/shirhatti/cad/internal/adapters/shell"
	"github.com/shirhatti/cad/internal/core/domain"
	"github.com/shirhatti/cad/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// fakeTool writes an executable shell script standing in for openscad.
func fakeTool(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "openscad")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil { //nolint:gosec // test fixture
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func newRenderer(t *testing.T, binary string) *scad.Renderer {
	t.Helper()
	t.Setenv("DISPLAY", ":0")

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	return scad.NewRenderer(binary, domain.CameraSettings{Position: "0,0,0,55,0,25,500"}, shell.NewRunner(logger), logger)
}

func TestVersion_FromStderr(t *testing.T) {
	bin := fakeTool(t, `echo "OpenSCAD version 2021.01" >&2`)
	r := newRenderer(t, bin)

	got, err := r.Version(context.Background())
	if err != nil {
		t.Fatalf("Version failed: %v", err)
	}
	if got != "OpenSCAD version 2021.01" {
		t.Errorf("Version = %q", got)
	}

	// Cached on second call.
	again, err := r.Version(context.Background())
	if err != nil || again != got {
		t.Errorf("second Version = %q, %v", again, err)
	}
}

func TestVersion_MissingBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	r := newRenderer(t, "")

	if _, err := r.Version(context.Background()); !errors.Is(err, domain.ErrToolNotFound) {
		t.Errorf("err = %v, want ErrToolNotFound", err)
	}
}

func TestRender_MeshFailureIsFatal(t *testing.T) {
	bin := fakeTool(t, `echo "ERROR: syntax error" >&2; exit 1`)
	r := newRenderer(t, bin)

	dir := t.TempDir()
	err := r.Render(context.Background(), "model.scad",
		filepath.Join(dir, "m.stl"), filepath.Join(dir, "m.png"))
	if !errors.Is(err, domain.ErrRenderFailed) {
		t.Errorf("err = %v, want ErrRenderFailed", err)
	}
}

func TestRender_PreviewFailureIsNot(t *testing.T) {
	// Succeed for the mesh export, fail for the PNG.
	bin := fakeTool(t, `case "$*" in *png*) exit 1;; *) exit 0;; esac`)
	r := newRenderer(t, bin)

	dir := t.TempDir()
	err := r.Render(context.Background(), "model.scad",
		filepath.Join(dir, "m.stl"), filepath.Join(dir, "m.png"))
	if err != nil {
		t.Errorf("preview failure must not fail the render: %v", err)
	}
}

func TestCheck_Failure(t *testing.T) {
	bin := fakeTool(t, `exit 1`)
	r := newRenderer(t, bin)

	if err := r.Check(context.Background(), "model.scad"); !errors.Is(err, domain.ErrChecksFailed) {
		t.Errorf("err = %v, want ErrChecksFailed", err)
	}
}

func TestRunTest_PassCollectsEchoes(t *testing.T) {
	bin := fakeTool(t, `echo 'ECHO: "width ok"' >&2; echo 'ECHO: "wall ok"' >&2`)
	r := newRenderer(t, bin)

	m := domain.NewModel("rack/bracket_test.scad")
	res, err := r.RunTest(context.Background(), m, "rack/bracket_test.scad")
	if err != nil {
		t.Fatalf("RunTest failed: %v", err)
	}
	if !res.Passed {
		t.Errorf("expected pass, reason = %q", res.Reason)
	}
	if len(res.Echoes) != 2 {
		t.Errorf("Echoes = %v", res.Echoes)
	}
}

func TestRunTest_AssertionFailure(t *testing.T) {
	bin := fakeTool(t, `echo "ERROR: Assertion (width) failed in file bracket_test.scad" >&2; exit 1`)
	r := newRenderer(t, bin)

	m := domain.NewModel("rack/bracket_test.scad")
	res, err := r.RunTest(context.Background(), m, "rack/bracket_test.scad")
	if err != nil {
		t.Fatalf("RunTest failed: %v", err)
	}
	if res.Passed {
		t.Error("expected failure")
	}
	if res.Reason != "assertion failed" {
		t.Errorf("Reason = %q", res.Reason)
	}
}
