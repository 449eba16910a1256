package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGLBMissingFile(t *testing.T) {
	if _, err := LoadGLB(filepath.Join(t.TempDir(), "missing.glb")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadGLBCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.glb")
	if err := os.WriteFile(path, []byte("not a glb container"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGLB(path); err == nil {
		t.Error("expected an error for corrupt data")
	}
}
