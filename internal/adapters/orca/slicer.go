// Package orca wraps the OrcaSlicer binary.
package orca

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/shirhatti/cad/internal/adapters/shell"
	"github.com/shirhatti/cad/internal/core/domain"
	"github.com/shirhatti/cad/internal/core/ports"
	"go.trai.ch/zerr"
)

const defaultBinary = "orca-slicer"

var _ ports.Slicer = (*Slicer)(nil)

// Slicer implements ports.Slicer by invoking the orca-slicer binary.
type Slicer struct {
	binary   string
	profiles domain.ProfileSettings
	runner   *shell.Runner
	logger   ports.Logger

	versionOnce sync.Once
	version     string
	versionErr  error
}

// NewSlicer creates a Slicer. binary may be empty, in which case
// orca-slicer is resolved from PATH at first use.
func NewSlicer(binary string, profiles domain.ProfileSettings, runner *shell.Runner, logger ports.Logger) *Slicer {
	return &Slicer{
		binary:   binary,
		profiles: profiles,
		runner:   runner,
		logger:   logger,
	}
}

func (s *Slicer) resolve() (string, error) {
	if s.binary != "" {
		return s.binary, nil
	}
	path, err := exec.LookPath(defaultBinary)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrToolNotFound, "orca-slicer not on PATH"), "tool", defaultBinary)
	}
	s.binary = path
	return path, nil
}

// Version extracts the slicer's version from its help output; the binary
// has no dedicated version flag. The whole matching line goes into the
// cache key, build metadata and all.
func (s *Slicer) Version(ctx context.Context) (string, error) {
	s.versionOnce.Do(func() {
		bin, err := s.resolve()
		if err != nil {
			s.versionErr = err
			return
		}
		res, _ := s.runner.Run(ctx, bin, "--help")
		s.version = ParseVersion(res.Combined())
	})
	return s.version, s.versionErr
}

// ParseVersion scans help output for a version-looking line.
func ParseVersion(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(strings.ToLower(line), "v") && strings.Contains(line, ".") {
			return strings.TrimSpace(line)
		}
	}
	return "unknown"
}

// Slice converts the mesh at stlPath into a 3MF project at outPath,
// writing the tool's combined output to logPath. OrcaSlicer reports some
// failures only by producing nothing, so absence of the output file is
// treated as failure regardless of exit status.
func (s *Slicer) Slice(ctx context.Context, stlPath, outPath, logPath string) error {
	bin, err := s.resolve()
	if err != nil {
		return err
	}

	absIn, err := filepath.Abs(stlPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve input path"), "path", stlPath)
	}
	absOut, err := filepath.Abs(outPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve output path"), "path", outPath)
	}

	settings := strings.Join(s.profiles.Chain(), ";")
	res, runErr := s.runner.Run(ctx, bin,
		"--load-settings", settings,
		"--slice", "0",
		"--export-3mf", absOut,
		absIn,
	)

	if werr := os.WriteFile(logPath, []byte(res.Combined()), 0o644); werr != nil { //nolint:gosec // operator-owned log dir
		s.logger.Warn("failed to write slicer log: " + werr.Error())
	}

	if _, err := os.Stat(absOut); err != nil {
		zerrOut := zerr.With(zerr.Wrap(domain.ErrSliceFailed, "no output produced"), "model", stlPath)
		if runErr != nil {
			zerrOut = zerr.With(zerrOut, "exec_error", runErr.Error())
		}
		return zerr.With(zerrOut, "log", logPath)
	}
	return nil
}
