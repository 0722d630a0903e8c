// Package config provides configuration loading and structs for the LegalSimplify server.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aatif-shaikh19/LegalSimplify/internal/summary"
)

// Config holds all configuration for the application.
type Config struct {
	Debug   bool          `yaml:"debug"`
	Server  ServerConfig  `yaml:"server"`
	Summary SummaryConfig `yaml:"summary"`
	Upload  UploadConfig  `yaml:"upload"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// SummaryConfig holds the default summary length and scoring constants.
type SummaryConfig struct {
	DefaultPoints int                   `yaml:"default_points"`
	Scoring       summary.ScoringConfig `yaml:"scoring"`
}

// UploadConfig bounds uploaded file size. The functional core imposes no
// limit; this is server hygiene only.
type UploadConfig struct {
	MaxFileBytes int64 `yaml:"max_file_bytes"`
}

// Load reads and parses the config file at path and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}
