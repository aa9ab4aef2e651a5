// Package telemetry provides progress-recording implementations.
package telemetry

import (
	"context"
	"io"

	"github.com/shirhatti/cad/internal/core/ports"
)

// NoOp is a ports.Telemetry that records nothing. It backs scripted runs
// and tests, where a progress display would only get in the way.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := &noOpVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

type noOpVertex struct{}

func (v *noOpVertex) Stdout() io.Writer  { return io.Discard }
func (v *noOpVertex) Stderr() io.Writer  { return io.Discard }
func (v *noOpVertex) Cached()            {}
func (v *noOpVertex) Complete(err error) {}
