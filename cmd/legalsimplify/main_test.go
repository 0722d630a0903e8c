package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveConfigPath(t *testing.T) {
	dir := t.TempDir()

	// No cwd config.yaml: default path stands.
	if got := resolveConfigPath(defaultConfigPath, dir); got != defaultConfigPath {
		t.Errorf("got %s, want default path", got)
	}

	// cwd config.yaml wins over the default.
	local := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(local, []byte("debug: true\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if got := resolveConfigPath(defaultConfigPath, dir); got != local {
		t.Errorf("got %s, want %s", got, local)
	}

	// An explicit path is never overridden.
	explicit := filepath.Join(dir, "other.yaml")
	if got := resolveConfigPath(explicit, dir); got != explicit {
		t.Errorf("got %s, want %s", got, explicit)
	}
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("summary:\n  default_points: 7\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, resolved, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if resolved != path {
		t.Errorf("resolved path: got %s, want %s", resolved, path)
	}
	if cfg.Summary.DefaultPoints != 7 {
		t.Errorf("default_points: got %d, want 7", cfg.Summary.DefaultPoints)
	}
}

func TestLoadConfig_MissingExplicitPathFails(t *testing.T) {
	if _, _, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}
