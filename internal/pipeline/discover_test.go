package pipeline_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"rustgen/internal/pipeline"
	"rustgen/manifest"
)

func TestCollectManifestsWalksDirectories(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "proto", "v1")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	b := writeManifest(t, nested, "b"+manifest.Extension, pointManifest)
	a := writeManifest(t, dir, "a"+manifest.Extension, pointManifest)
	// посторонние файлы не подбираются
	writeManifest(t, dir, "noise.rs", "fn main() {}")
	writeManifest(t, dir, "config.toml", "x = 1")

	got, err := pipeline.CollectManifests([]string{dir})
	if err != nil {
		t.Fatalf("CollectManifests failed: %v", err)
	}
	want := []string{a, b}
	if len(got) != len(want) {
		t.Fatalf("expected %d manifests, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("manifest %d mismatch: want %q, got %q", i, want[i], got[i])
		}
	}
}

func TestCollectManifestsDeduplicates(t *testing.T) {
	dir := t.TempDir()
	a := writeManifest(t, dir, "a"+manifest.Extension, pointManifest)

	got, err := pipeline.CollectManifests([]string{dir, a})
	if err != nil {
		t.Fatalf("CollectManifests failed: %v", err)
	}
	if len(got) != 1 || got[0] != a {
		t.Fatalf("expected exactly %q once, got %v", a, got)
	}
}

func TestCollectManifestsRejectsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	stray := writeManifest(t, dir, "config.toml", "x = 1")

	_, err := pipeline.CollectManifests([]string{stray})
	if !errors.Is(err, manifest.ErrNotManifest) {
		t.Fatalf("expected ErrNotManifest, got %v", err)
	}
}

func TestCollectManifestsMissingPath(t *testing.T) {
	_, err := pipeline.CollectManifests([]string{filepath.Join(t.TempDir(), "absent")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestCollectWatchDirs(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "proto")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	file := writeManifest(t, nested, "a"+manifest.Extension, pointManifest)

	got, err := pipeline.CollectWatchDirs([]string{dir, file})
	if err != nil {
		t.Fatalf("CollectWatchDirs failed: %v", err)
	}
	want := []string{dir, nested}
	if len(got) != len(want) {
		t.Fatalf("expected dirs %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dir %d mismatch: want %q, got %q", i, want[i], got[i])
		}
	}
}
