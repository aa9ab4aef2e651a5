package cas_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shirhatti/cad/internal/adapters/cas"
	"github.com/shirhatti/cad/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")

	store, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	info := domain.BuildInfo{
		ModelName: "rack__bracket",
		Kind:      domain.KindRender,
		CacheKey:  "aaaabbbb-111122223333",
		Outputs:   []string{"artifacts/stl/rack__bracket.stl"},
		Timestamp: time.Now().UTC(),
	}
	if err := store.Put(info); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(domain.KindRender, "rack__bracket")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.CacheKey != info.CacheKey {
		t.Errorf("CacheKey = %q, want %q", got.CacheKey, info.CacheKey)
	}
}

func TestStore_MissReturnsNil(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	got, err := store.Get(domain.KindSlice, "unknown")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("Get returned %+v, want nil", got)
	}
}

func TestStore_KindsAreDistinct(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := store.Put(domain.BuildInfo{ModelName: "m", Kind: domain.KindRender, CacheKey: "r"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Put(domain.BuildInfo{ModelName: "m", Kind: domain.KindSlice, CacheKey: "s"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	render, _ := store.Get(domain.KindRender, "m")
	slice, _ := store.Get(domain.KindSlice, "m")
	if render == nil || slice == nil || render.CacheKey == slice.CacheKey {
		t.Errorf("render = %+v, slice = %+v", render, slice)
	}
}

func TestStore_Persistence(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "nested", "state.json")

	store1, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	info := domain.BuildInfo{
		ModelName: "desk__tray",
		Kind:      domain.KindSlice,
		CacheKey:  "aaaabbbb-55556666-111122223333",
		Outputs:   []string{"artifacts/gcode/desk__tray.3mf"},
		Timestamp: time.Now().UTC(),
	}
	if err := store1.Put(info); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// A fresh store over the same file sees the entry.
	store2, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	got, err := store2.Get(domain.KindSlice, "desk__tray")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || got.CacheKey != info.CacheKey {
		t.Errorf("got %+v, want persisted entry", got)
	}
}
