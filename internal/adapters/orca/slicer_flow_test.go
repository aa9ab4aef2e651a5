package orca_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/shirhatti/cad/internal/adapters/orca"
	"github.com/shirhatti/cad/internal/adapters/shell"
	"github.com/shirhatti/cad/internal/core/domain"
	"github.com/shirhatti/cad/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func fakeSlicer(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "orca-slicer")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil { //nolint:gosec // test fixture
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func newSlicer(t *testing.T, binary string) *orca.Slicer {
	t.Helper()
	t.Setenv("DISPLAY", ":0")

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	profiles := domain.ProfileSettings{
		Machine:  "profiles/machine.json",
		Process:  "profiles/process.json",
		Filament: "profiles/filament.json",
	}
	return orca.NewSlicer(binary, profiles, shell.NewRunner(logger), logger)
}

func TestSlice_WritesOutputAndLog(t *testing.T) {
	// Arguments: --load-settings S --slice 0 --export-3mf OUT IN.
	bin := fakeSlicer(t, `echo "slicing $7" ; echo "3mf" > "$6"`)
	s := newSlicer(t, bin)

	dir := t.TempDir()
	stl := filepath.Join(dir, "m.stl")
	out := filepath.Join(dir, "m.3mf")
	logPath := filepath.Join(dir, "m.log")
	if err := os.WriteFile(stl, []byte("solid"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := s.Slice(context.Background(), stl, out, logPath); err != nil {
		t.Fatalf("Slice failed: %v", err)
	}

	if _, err := os.Stat(out); err != nil {
		t.Errorf("output not written: %v", err)
	}
	logData, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log not written: %v", err)
	}
	if len(logData) == 0 {
		t.Error("log is empty")
	}
}

func TestSlice_MissingOutputIsFailure(t *testing.T) {
	// Exits zero but produces nothing, which OrcaSlicer is known to do.
	bin := fakeSlicer(t, `exit 0`)
	s := newSlicer(t, bin)

	dir := t.TempDir()
	stl := filepath.Join(dir, "m.stl")
	if err := os.WriteFile(stl, []byte("solid"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	err := s.Slice(context.Background(), stl, filepath.Join(dir, "m.3mf"), filepath.Join(dir, "m.log"))
	if !errors.Is(err, domain.ErrSliceFailed) {
		t.Errorf("err = %v, want ErrSliceFailed", err)
	}
}

func TestVersion_MissingSlicer(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	s := newSlicer(t, "")

	if _, err := s.Version(context.Background()); !errors.Is(err, domain.ErrToolNotFound) {
		t.Errorf("err = %v, want ErrToolNotFound", err)
	}
}
