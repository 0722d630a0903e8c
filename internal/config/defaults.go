package config

import "github.com/aatif-shaikh19/LegalSimplify/internal/summary"

// ApplyDefaults sets default values for any zero values in cfg. Out-of-range
// point counts are clamped rather than rejected.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Summary.DefaultPoints == 0 {
		cfg.Summary.DefaultPoints = 5
	}
	if cfg.Summary.DefaultPoints < 1 {
		cfg.Summary.DefaultPoints = 1
	}
	if cfg.Summary.DefaultPoints > summary.MaxPoints {
		cfg.Summary.DefaultPoints = summary.MaxPoints
	}
	cfg.Summary.Scoring.ApplyDefaults()
	if cfg.Upload.MaxFileBytes == 0 {
		cfg.Upload.MaxFileBytes = 10 << 20 // 10 MiB
	}
}
