package ports

import (
	"context"

	"github.com/shirhatti/cad/internal/core/domain"
)

// Renderer wraps the external CAD renderer.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Version returns the renderer's reported version string. The string is
	// hashed whole into cache keys, so no normalization is applied.
	Version(ctx context.Context) (string, error)

	// Render converts the model source into a mesh at stlPath and a preview
	// image at pngPath. A failed mesh render is an error; a failed preview
	// render is not, since the mesh is the product.
	Render(ctx context.Context, scadPath, stlPath, pngPath string) error

	// Check validates that the model source compiles, without keeping output.
	Check(ctx context.Context, scadPath string) error

	// RunTest executes a _test.scad file and interprets its assertion output.
	// A failing test is reported in the result, not as an error; the error
	// covers only inability to run the tool.
	RunTest(ctx context.Context, model domain.Model, scadPath string) (domain.TestResult, error)
}
