package domain

import "go.trai.ch/zerr"

var (
	// ErrToolNotFound is returned when an external binary cannot be located.
	ErrToolNotFound = zerr.New("external tool not found")

	// ErrModelNotFound is returned when a requested model is not in the source tree.
	ErrModelNotFound = zerr.New("model not found")

	// ErrNoModels is returned when discovery yields nothing to operate on.
	ErrNoModels = zerr.New("no models found")

	// ErrRenderFailed is returned when the renderer exits unsuccessfully.
	ErrRenderFailed = zerr.New("render failed")

	// ErrSliceFailed is returned when the slicer exits unsuccessfully or
	// produces no output file.
	ErrSliceFailed = zerr.New("slice failed")

	// ErrChecksFailed is returned when one or more models fail validation.
	ErrChecksFailed = zerr.New("model validation failed")

	// ErrTestsFailed is returned when one or more assertion tests fail.
	ErrTestsFailed = zerr.New("model tests failed")

	// ErrLintFailed is returned when linting reports errors.
	ErrLintFailed = zerr.New("lint failed")
)
