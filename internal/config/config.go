// Package config defines the run configuration for the undeath search
// driver: board path, worker pool sizing, and output location, loadable
// from an optional YAML file and overlaid with CLI flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls one run of the chain driver.
type Config struct {
	// Board is the path to the target board file to search predecessors
	// for.
	Board string `yaml:"board"`
	// Workers bounds how many Sequences are advanced concurrently per
	// macro-step.
	Workers int `yaml:"workers"`
	// MicroStepSize is the budget passed to every Searcher.Search call.
	MicroStepSize int `yaml:"micro_step_size"`
	// MaxAttempts caps how many Sequences are advanced per macro-step.
	MaxAttempts int `yaml:"max_attempts"`
	// OutDir is the parent directory new run directories are created
	// under.
	OutDir string `yaml:"out_dir"`
	// SnapshotEvery persists the best chain once every this many
	// macro-steps.
	SnapshotEvery int `yaml:"snapshot_every"`
	// LogLevel is a zerolog level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Workers:       6,
		MicroStepSize: 100_000,
		MaxAttempts:   100,
		OutDir:        ".",
		SnapshotEvery: 1,
		LogLevel:      "info",
	}
}

// Load reads a YAML file at path and overlays it onto DefaultConfig. A
// missing file is not an error — callers get the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
