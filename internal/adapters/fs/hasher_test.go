package fs_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/shirhatti/cad/internal/adapters/fs"
)

var hexHash = regexp.MustCompile(`^[0-9a-f]{16}$`)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func TestFileHash_Deterministic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.scad")
	writeFile(t, path, "cube(10);")

	h := fs.NewHasher(fs.NewWalker())

	first, err := h.FileHash(path)
	if err != nil {
		t.Fatalf("FileHash failed: %v", err)
	}
	if !hexHash.MatchString(first) {
		t.Fatalf("FileHash returned %q, want 16 hex chars", first)
	}

	second, err := h.FileHash(path)
	if err != nil {
		t.Fatalf("FileHash failed: %v", err)
	}
	if first != second {
		t.Errorf("hash not deterministic: %q vs %q", first, second)
	}
}

func TestFileHash_ChangesWithContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.scad")
	writeFile(t, path, "cube(10);")

	h := fs.NewHasher(fs.NewWalker())

	before, err := h.FileHash(path)
	if err != nil {
		t.Fatalf("FileHash failed: %v", err)
	}

	writeFile(t, path, "cube(11);")

	after, err := h.FileHash(path)
	if err != nil {
		t.Fatalf("FileHash failed: %v", err)
	}
	if before == after {
		t.Error("hash unchanged after content change")
	}
}

func TestModelHash_CoversDependencies(t *testing.T) {
	dir := t.TempDir()
	lib := filepath.Join(dir, "shared_lib.scad")
	model := filepath.Join(dir, "model.scad")
	writeFile(t, lib, "module helper() { cube(1); }")
	writeFile(t, model, "include <shared_lib.scad>\nhelper();")

	h := fs.NewHasher(fs.NewWalker())

	before, err := h.ModelHash(model)
	if err != nil {
		t.Fatalf("ModelHash failed: %v", err)
	}

	// Touch only the dependency; the model hash must still flip.
	writeFile(t, lib, "module helper() { cube(2); }")

	after, err := h.ModelHash(model)
	if err != nil {
		t.Fatalf("ModelHash failed: %v", err)
	}
	if before == after {
		t.Error("model hash unchanged after dependency change")
	}
}

func TestModelHash_DiffersFromFileHash(t *testing.T) {
	dir := t.TempDir()
	lib := filepath.Join(dir, "shared_lib.scad")
	model := filepath.Join(dir, "model.scad")
	writeFile(t, lib, "module helper() {}")
	writeFile(t, model, "use <shared_lib.scad>\nhelper();")

	h := fs.NewHasher(fs.NewWalker())

	modelHash, err := h.ModelHash(model)
	if err != nil {
		t.Fatalf("ModelHash failed: %v", err)
	}
	fileHash, err := h.FileHash(model)
	if err != nil {
		t.Fatalf("FileHash failed: %v", err)
	}
	if modelHash == fileHash {
		t.Error("model hash should differ from the bare file hash when dependencies exist")
	}
}

func TestTreeHash_MissingRootSentinel(t *testing.T) {
	h := fs.NewHasher(fs.NewWalker())

	first, err := h.TreeHash(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("TreeHash failed: %v", err)
	}
	second, err := h.TreeHash(filepath.Join(t.TempDir(), "also-missing"))
	if err != nil {
		t.Fatalf("TreeHash failed: %v", err)
	}
	if first != second {
		t.Error("missing roots must hash to the same sentinel")
	}
	if !hexHash.MatchString(first) {
		t.Errorf("sentinel hash %q is not 16 hex chars", first)
	}
}

func TestTreeHash_ChangesWithTree(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "machine.json"), `{"nozzle": 0.4}`)

	h := fs.NewHasher(fs.NewWalker())

	before, err := h.TreeHash(dir)
	if err != nil {
		t.Fatalf("TreeHash failed: %v", err)
	}

	writeFile(t, filepath.Join(dir, "process.json"), `{"layer_height": 0.2}`)

	after, err := h.TreeHash(dir)
	if err != nil {
		t.Fatalf("TreeHash failed: %v", err)
	}
	if before == after {
		t.Error("tree hash unchanged after adding a file")
	}
}

func TestStringHash_Format(t *testing.T) {
	h := fs.NewHasher(fs.NewWalker())
	got := h.StringHash("OpenSCAD version 2021.01")
	if !hexHash.MatchString(got) {
		t.Errorf("StringHash returned %q, want 16 hex chars", got)
	}
	if got == h.StringHash("OpenSCAD version 2024.10") {
		t.Error("different strings must not collide trivially")
	}
}
