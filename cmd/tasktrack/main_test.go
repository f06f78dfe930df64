package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/amonks/tasktrack/internal/config"
)

func TestResolveStorePath(t *testing.T) {
	restore := rootStorePath
	defer func() { rootStorePath = restore }()

	t.Setenv("HOME", t.TempDir())

	rootStorePath = "/explicit/tasks.json"
	got, err := resolveStorePath(&config.Config{})
	if err != nil {
		t.Fatalf("resolveStorePath: %v", err)
	}
	if got != "/explicit/tasks.json" {
		t.Errorf("flag path = %q, want /explicit/tasks.json", got)
	}

	rootStorePath = ""
	cfg := &config.Config{}
	cfg.Store.Path = "/configured/tasks.json"
	got, err = resolveStorePath(cfg)
	if err != nil {
		t.Fatalf("resolveStorePath: %v", err)
	}
	if got != "/configured/tasks.json" {
		t.Errorf("config path = %q, want /configured/tasks.json", got)
	}

	got, err = resolveStorePath(&config.Config{})
	if err != nil {
		t.Fatalf("resolveStorePath: %v", err)
	}
	if want := filepath.Join(".local", "share", "tasktrack", "tasks.json"); !strings.HasSuffix(got, want) {
		t.Errorf("default path = %q, want suffix %q", got, want)
	}
}
