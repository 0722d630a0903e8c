package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  host: "127.0.0.1"
  port: 9000
summary:
  default_points: 3
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9000 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Summary.DefaultPoints != 3 {
		t.Errorf("default_points: got %d, want 3", cfg.Summary.DefaultPoints)
	}
	if cfg.Debug {
		t.Error("debug should default to false when unset")
	}
	if cfg.Upload.MaxFileBytes != 10<<20 {
		t.Errorf("max_file_bytes default: got %d", cfg.Upload.MaxFileBytes)
	}
}

func TestLoad_debugTrue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
debug: true
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Error("debug should be true when set in config")
	}
}

func TestLoad_missingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_invalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name       string
		points     int
		wantPoints int
	}{
		{"zero uses default", 0, 5},
		{"in range kept", 7, 7},
		{"negative clamped", -3, 1},
		{"too large clamped", 50, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Summary.DefaultPoints = tt.points
			ApplyDefaults(cfg)
			if cfg.Summary.DefaultPoints != tt.wantPoints {
				t.Errorf("default_points: got %d, want %d", cfg.Summary.DefaultPoints, tt.wantPoints)
			}
		})
	}

	cfg := &Config{}
	ApplyDefaults(cfg)
	if cfg.Server.Host != "localhost" || cfg.Server.Port != 8080 {
		t.Errorf("server defaults: %+v", cfg.Server)
	}
	if cfg.Summary.Scoring.KeywordWeight != 3 {
		t.Errorf("scoring defaults not applied: %+v", cfg.Summary.Scoring)
	}
}
