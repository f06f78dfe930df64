package paths

import (
	"path/filepath"
	"testing"
)

func TestDefaultStorePathUsesHome(t *testing.T) {
	t.Setenv("HOME", filepath.Join("/tmp", "test-home"))

	path, err := DefaultStorePath()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := filepath.Join("/tmp", "test-home", ".local", "share", "tasktrack", "tasks.json")
	if path != expected {
		t.Fatalf("expected %s, got %s", expected, path)
	}
}

func TestGlobalConfigPathUsesHome(t *testing.T) {
	t.Setenv("HOME", filepath.Join("/tmp", "test-home"))

	path, err := GlobalConfigPath()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := filepath.Join("/tmp", "test-home", ".config", "tasktrack", "config.toml")
	if path != expected {
		t.Fatalf("expected %s, got %s", expected, path)
	}
}
