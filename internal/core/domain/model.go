// Package domain holds the core types for the cad pipeline.
package domain

import (
	"path/filepath"
	"strings"
)

// ScadExt is the file extension of parametric model sources.
const ScadExt = ".scad"

// Suffixes that mark non-renderable .scad files.
const (
	TestSuffix      = "_test" + ScadExt
	ConstantsSuffix = "_constants" + ScadExt
	ReferenceSuffix = "_reference" + ScadExt
	LibSuffix       = "_lib" + ScadExt
)

// Model represents a single renderable parametric model in the source tree.
// It uses InternedString for fields that are repeated across the pipeline,
// the index and telemetry to save memory.
type Model struct {
	// Name is the flattened output name, e.g. "rack__retention_bracket".
	Name InternedString
	// Path is the source path relative to the configured base directory.
	Path InternedString
	// Project is the subdirectory the model lives in, e.g. "rack".
	Project InternedString
}

// NewModel builds a Model from a source path relative to the base directory.
func NewModel(relPath string) Model {
	rel := filepath.ToSlash(relPath)
	return Model{
		Name:    NewInternedString(OutputName(rel)),
		Path:    NewInternedString(rel),
		Project: NewInternedString(projectOf(rel)),
	}
}

// Basename returns the model's file name without extension.
func (m Model) Basename() string {
	base := filepath.Base(m.Path.String())
	return strings.TrimSuffix(base, ScadExt)
}

// OutputName flattens a relative source path into an artifact name,
// e.g. "rack/retention_bracket.scad" becomes "rack__retention_bracket".
func OutputName(relPath string) string {
	trimmed := strings.TrimSuffix(filepath.ToSlash(relPath), ScadExt)
	return strings.ReplaceAll(trimmed, "/", "__")
}

// ModelPath is the inverse of OutputName: "rack__retention_bracket"
// becomes "rack/retention_bracket".
func ModelPath(outputName string) string {
	return strings.ReplaceAll(outputName, "__", "/")
}

func projectOf(relPath string) string {
	dir := filepath.ToSlash(filepath.Dir(relPath))
	if dir == "." {
		return ""
	}
	return dir
}

// ModelFilter selects categories of .scad files during discovery.
type ModelFilter struct {
	IncludeTests     bool
	IncludeLibs      bool
	IncludeConstants bool
	IncludeReference bool
	OnlyTests        bool
}

// Excluded reports whether the given file name is filtered out.
func (f ModelFilter) Excluded(name string) bool {
	if f.OnlyTests {
		return !strings.HasSuffix(name, TestSuffix)
	}
	switch {
	case strings.HasSuffix(name, TestSuffix):
		return !f.IncludeTests
	case strings.HasSuffix(name, LibSuffix):
		return !f.IncludeLibs
	case strings.HasSuffix(name, ConstantsSuffix):
		return !f.IncludeConstants
	case strings.HasSuffix(name, ReferenceSuffix):
		return !f.IncludeReference
	}
	return false
}
