// Copyright 2026 DOM JSON Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config provides configuration management for domtrim.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Global Config: $HOME/.domtrim/config.yaml
// 3. Project Config: ./.domtrim.yaml
// 4. Environment Variables: DOMTRIM_*
package config

import (
	"fmt"
)

// Config represents the complete application configuration.
type Config struct {
	Prune  PruneConfig  `yaml:"prune"`
	Split  SplitConfig  `yaml:"split"`
	Output OutputConfig `yaml:"output"`
	Global GlobalConfig `yaml:"global"`
}

// PruneConfig contains pruning settings.
type PruneConfig struct {
	// Rules is the path to a custom rule-table file. Empty selects the
	// built-in table.
	Rules string `yaml:"rules"`
	// MaxPasses is the fixed-point pass ceiling.
	MaxPasses int `yaml:"max_passes"`
}

// SplitConfig contains chunk-splitting settings.
type SplitConfig struct {
	// MaxBytes is the compact-serialized chunk budget.
	MaxBytes int `yaml:"max_bytes"`
	// OutputDir is where chunk files are written.
	OutputDir string `yaml:"output_dir"`
}

// OutputConfig contains rendering settings.
type OutputConfig struct {
	// Layout is "compact" or "indented".
	Layout string `yaml:"layout"`
}

// GlobalConfig contains global application settings.
type GlobalConfig struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Prune.MaxPasses < 0 {
		return &ConfigError{Field: "prune.max_passes", Err: fmt.Errorf("must not be negative: %d", c.Prune.MaxPasses)}
	}
	if c.Split.MaxBytes <= 0 {
		return &ConfigError{Field: "split.max_bytes", Err: fmt.Errorf("must be positive: %d", c.Split.MaxBytes)}
	}
	switch c.Output.Layout {
	case "compact", "indented":
	default:
		return &ConfigError{Field: "output.layout", Err: fmt.Errorf("must be compact or indented: %q", c.Output.Layout)}
	}
	switch c.Global.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "global.log_level", Err: fmt.Errorf("unknown level %q", c.Global.LogLevel)}
	}
	return nil
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Path  string
	Field string
	Err   error
}

// Error returns the error message.
func (e *ConfigError) Error() string {
	switch {
	case e.Path != "" && e.Field != "":
		return fmt.Sprintf("config %s: field %s: %v", e.Path, e.Field, e.Err)
	case e.Path != "":
		return fmt.Sprintf("config %s: %v", e.Path, e.Err)
	case e.Field != "":
		return fmt.Sprintf("config field %s: %v", e.Field, e.Err)
	default:
		return fmt.Sprintf("config: %v", e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error { return e.Err }
