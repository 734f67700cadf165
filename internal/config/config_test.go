package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults for missing file, got %+v", cfg)
	}
}

func TestLoadInvalidFileReportsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("{not yaml:::"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err == nil {
		t.Fatal("Expected an error for an unparsable file")
	}
	if cfg != Default() {
		t.Errorf("Expected defaults alongside the error, got %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "sandbox.yaml")

	want := Default()
	want.Window.Width = 1600
	want.Physics.BroadPhase = "quadtree"
	want.Overlay.ShowGrid = true

	if err := SaveTo(path, want); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}
	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  broad_phase: sweep\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Physics.BroadPhase != "sweep" {
		t.Errorf("Expected overridden broad phase, got %q", cfg.Physics.BroadPhase)
	}
	if cfg.Window.Width != Default().Window.Width {
		t.Errorf("Expected default window width kept, got %d", cfg.Window.Width)
	}
}
