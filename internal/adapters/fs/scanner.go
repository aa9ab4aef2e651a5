package fs

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// includePattern matches OpenSCAD include <file> and use <file> statements.
var includePattern = regexp.MustCompile(`(?:include|use)\s*<([^>]+)>`)

// Dependencies returns every file the .scad source at path transitively
// includes or uses, resolved relative to each including file. Referenced
// files that do not exist are silently skipped; the renderer will complain
// about those on its own. The result is sorted and deduplicated so it can
// feed a deterministic hash.
func Dependencies(path string) []string {
	seen := make(map[string]bool)
	collectDeps(path, seen)
	delete(seen, cleanAbs(path))

	deps := make([]string, 0, len(seen))
	for dep := range seen {
		deps = append(deps, dep)
	}
	sort.Strings(deps)
	return deps
}

func collectDeps(path string, seen map[string]bool) {
	abs := cleanAbs(path)
	if seen[abs] {
		return
	}
	seen[abs] = true

	content, err := os.ReadFile(abs) //nolint:gosec // path comes from the model tree
	if err != nil {
		return
	}

	base := filepath.Dir(abs)
	for _, match := range includePattern.FindAllSubmatch(content, -1) {
		dep := filepath.Join(base, string(match[1]))
		if _, err := os.Stat(dep); err != nil {
			continue
		}
		collectDeps(dep, seen)
	}
}

func cleanAbs(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
