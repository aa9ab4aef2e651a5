package lint_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shirhatti/cad/internal/adapters/lint"
)

func lintContent(t *testing.T, content string) lint.Result {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.scad")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return lint.File(path)
}

func hasWarning(r lint.Result, substr string) bool {
	for _, f := range r.Warnings {
		if strings.Contains(f.Message, substr) {
			return true
		}
	}
	return false
}

func hasError(r lint.Result, substr string) bool {
	for _, f := range r.Errors {
		if strings.Contains(f.Message, substr) {
			return true
		}
	}
	return false
}

func TestFile_CleanModelPasses(t *testing.T) {
	result := lintContent(t, `/* [Dimensions] */
// Outer width in millimetres
width = 40; // [10:100]
// Wall thickness
wall = 2; // [1:0.5:5]

/* [Options] */
// Add mounting holes
mounting_holes = true;

module bracket() {
    cube([width, wall, 10]);
}
bracket();
`)

	if !result.Passed() {
		t.Fatalf("expected pass, got errors: %v", result.Errors)
	}
	// The boolean has no annotation, which is only worth a warning.
	if !hasWarning(result, "no UI annotation") {
		t.Errorf("expected annotation warning, got: %v", result.Warnings)
	}
}

func TestFile_NoParametersIsError(t *testing.T) {
	result := lintContent(t, `module thing() { cube(1); }
thing();
`)
	if result.Passed() {
		t.Fatal("expected failure")
	}
	if !hasError(result, "not customizable") {
		t.Errorf("errors = %v", result.Errors)
	}
}

func TestFile_InvalidAnnotationIsError(t *testing.T) {
	result := lintContent(t, `/* [Main] */
// The size
size = 10; // [not a real annotation
`)
	if !hasError(result, "invalid annotation") {
		t.Errorf("errors = %v", result.Errors)
	}
}

func TestFile_MissingDescriptionWarns(t *testing.T) {
	result := lintContent(t, `/* [Main] */
size = 10; // [1:100]
`)
	if !hasWarning(result, "lacks a description") {
		t.Errorf("warnings = %v", result.Warnings)
	}
}

func TestFile_NoTabsWarnsOnce(t *testing.T) {
	result := lintContent(t, `// First
a = 1; // [1:10]
// Second
b = 2; // [1:10]
`)
	count := 0
	for _, f := range result.Warnings {
		if strings.Contains(f.Message, "organized into tabs") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("tab warning issued %d times, want once", count)
	}
}

func TestFile_ComputedDefaultWarns(t *testing.T) {
	result := lintContent(t, `/* [Main] */
// The width
width = 40; // [10:100]
// Derived height
height = width * 2;
`)
	if !hasWarning(result, "computed expression") {
		t.Errorf("warnings = %v", result.Warnings)
	}
}

func TestFile_VariableReferenceWarns(t *testing.T) {
	result := lintContent(t, `/* [Main] */
// The width
width = 40; // [10:100]
// Alias
w = width;
`)
	if !hasWarning(result, "references another variable") {
		t.Errorf("warnings = %v", result.Warnings)
	}
}

func TestFile_HiddenTabSkipsChecks(t *testing.T) {
	result := lintContent(t, `/* [Main] */
// The width
width = 40; // [10:100]

/* [Hidden] */
internal_factor = width * 3;
fudge = 0.01;
`)
	if hasWarning(result, "internal_factor") || hasWarning(result, "fudge") {
		t.Errorf("Hidden tab parameters must not be checked: %v", result.Warnings)
	}
}

func TestFile_ParameterAfterModuleWarns(t *testing.T) {
	result := lintContent(t, `/* [Main] */
// The width
width = 40; // [10:100]

module thing() { cube(width); }

// Too late to customize
late = 5; // [1:10]
`)
	if !hasWarning(result, "after module declarations") {
		t.Errorf("warnings = %v", result.Warnings)
	}
}

func TestFile_SpecialVariablesIgnored(t *testing.T) {
	result := lintContent(t, `/* [Main] */
// The width
width = 40; // [10:100]

$fn = 64;
`)
	for _, f := range append(result.Warnings, result.Errors...) {
		if strings.Contains(f.Message, "$fn") || strings.Contains(f.Message, "fn") && strings.Contains(f.Message, "'") {
			t.Errorf("special variable flagged: %v", f)
		}
	}
}

func TestFile_DropdownAnnotation(t *testing.T) {
	result := lintContent(t, `/* [Main] */
// Finish style
finish = "matte"; // [matte:Matte, gloss:Glossy]
`)
	if !result.Passed() {
		t.Errorf("errors = %v", result.Errors)
	}
	if hasWarning(result, "finish") {
		t.Errorf("valid dropdown flagged: %v", result.Warnings)
	}
}

func TestFile_UnreadableIsError(t *testing.T) {
	result := lint.File(filepath.Join(t.TempDir(), "missing.scad"))
	if result.Passed() {
		t.Fatal("expected failure for unreadable file")
	}
	if !hasError(result, "could not read") {
		t.Errorf("errors = %v", result.Errors)
	}
}
