package ports

import "context"

// Slicer wraps the external mesh-to-manufacturing-format slicer.
//
//go:generate go run go.uber.org/mock/mockgen -source=slicer.go -destination=mocks/mock_slicer.go -package=mocks
type Slicer interface {
	// Version returns the slicer's reported version string.
	Version(ctx context.Context) (string, error)

	// Slice converts the mesh at stlPath into a 3MF at outPath, writing the
	// tool's combined output to logPath. Slice fails if the tool exits
	// non-zero or produces no output file.
	Slice(ctx context.Context, stlPath, outPath, logPath string) error
}
