// Package shell runs external tools, hiding headless-display plumbing.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/shirhatti/cad/internal/core/ports"
	"go.trai.ch/zerr"
)

// Result holds the captured output of a finished tool invocation.
// Output is captured rather than streamed because callers parse it
// (version strings, ECHO lines, assertion failures).
type Result struct {
	Stdout string
	Stderr string
}

// Combined returns stdout followed by stderr, the form written to log files.
func (r *Result) Combined() string {
	return r.Stdout + r.Stderr
}

// Runner executes external tools via os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run invokes name with args and captures its output. On a non-zero exit
// the Result is still populated alongside the error so callers can report
// the tool's own diagnostics.
//
// On Linux without a display the invocation is wrapped in
// xvfb-run --auto-servernum when available; both the renderer and the
// slicer need a (virtual) display even for batch exports.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	cmdName, cmdArgs := r.wrapHeadless(name, args)

	r.logger.Info("exec: " + name + " " + strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, cmdName, cmdArgs...) //nolint:gosec // tool path resolved by adapter

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// When the pipeline attached a progress vertex to the context, stream
	// the tool's output onto the tape as well.
	if vtx, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = io.MultiWriter(&stdout, vtx.Stdout())
		cmd.Stderr = io.MultiWriter(&stderr, vtx.Stderr())
	}

	err := cmd.Run()
	res := &Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return res, zerr.With(zerr.With(zerr.Wrap(err, "command failed"), "command", name), "exit_code", exitCode)
	}
	return res, nil
}

// wrapHeadless prepends the virtual framebuffer wrapper when required.
func (r *Runner) wrapHeadless(name string, args []string) (string, []string) {
	if runtime.GOOS != "linux" {
		return name, args
	}
	if os.Getenv("DISPLAY") != "" {
		return name, args
	}
	xvfb, err := exec.LookPath("xvfb-run")
	if err != nil {
		return name, args
	}
	return xvfb, append([]string{"--auto-servernum", name}, args...)
}
