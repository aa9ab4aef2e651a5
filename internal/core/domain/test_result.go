package domain

// TestResult is the outcome of running one _test.scad file through the
// renderer's assertion harness.
type TestResult struct {
	Model  Model
	Passed bool
	// Echoes are the ECHO: lines the test emitted, surfaced for visibility.
	Echoes []string
	// Reason describes the failure, e.g. an assertion message or exit code.
	Reason string
}
