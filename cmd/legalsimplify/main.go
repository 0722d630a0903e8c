// Package main is the LegalSimplify server entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/aatif-shaikh19/LegalSimplify/internal/config"
	"github.com/aatif-shaikh19/LegalSimplify/internal/server"
	"github.com/aatif-shaikh19/LegalSimplify/internal/session"
	"github.com/aatif-shaikh19/LegalSimplify/internal/summary"
	"github.com/aatif-shaikh19/LegalSimplify/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/legalsimplify/config.yaml"

// resolveConfigPath prefers config.yaml in cwd over the system default, so
// running from the project directory picks up the project's config. An
// explicitly passed path is always used as-is.
func resolveConfigPath(path, cwd string) string {
	if path != defaultConfigPath || cwd == "" {
		return path
	}
	fallback := filepath.Join(cwd, "config.yaml")
	if _, err := os.Stat(fallback); err == nil {
		return fallback
	}
	return path
}

// loadConfig loads the config at path, or built-in defaults when neither the
// given path nor a cwd config.yaml exists. The server has no required
// settings, so a missing file is not an error.
func loadConfig(path string) (*config.Config, string, error) {
	if cwd, err := os.Getwd(); err == nil {
		path = resolveConfigPath(path, cwd)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) && path == defaultConfigPath {
		cfg := &config.Config{}
		config.ApplyDefaults(cfg)
		return cfg, "(defaults)", nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "serve":
		runServe()
	case "version", "--version", "-v":
		fmt.Printf("legalsimplify version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServe() {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (request handling, scoring, etc.)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
		zap.Int("default_points", cfg.Summary.DefaultPoints),
	)

	summarizer := summary.NewSummarizer(&cfg.Summary.Scoring)
	store := session.NewStore(summarizer, cfg.Summary.DefaultPoints)
	srv := server.NewServer(store, cfg, logger)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func printUsage() {
	fmt.Println(`legalsimplify - Plain-language summaries and risk flags for legal text

Usage:
  legalsimplify serve [flags]     Start the HTTP server
  legalsimplify version           Show version
  legalsimplify help              Show this help

Serve Flags:
  --config string    Config file path (default: /usr/local/etc/legalsimplify/config.yaml)
  --debug            Enable debug logging (request handling, scoring, etc.)

Examples:
  legalsimplify serve
  legalsimplify serve --config ./config.yaml --debug`)
}
