// Copyright 2026 DOM JSON Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix is the prefix for all environment variables.
	EnvPrefix = "DOMTRIM"
	// ProjectConfigFile is the project-level config file name.
	ProjectConfigFile = ".domtrim.yaml"
	// GlobalConfigDir is the global config directory name.
	GlobalConfigDir = ".domtrim"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Loader loads configuration from files and environment.
type Loader struct {
	projectRoot string
	skipGlobal  bool
}

// NewLoader creates a new config loader.
func NewLoader() *Loader {
	return &Loader{}
}

// WithProjectRoot sets the project root directory.
func (l *Loader) WithProjectRoot(root string) *Loader {
	l.projectRoot = root
	return l
}

// SkipGlobal skips loading global config.
func (l *Loader) SkipGlobal() *Loader {
	l.skipGlobal = true
	return l
}

// Load loads configuration with full precedence order:
// 1. Defaults
// 2. Global Config ($HOME/.domtrim/config.yaml)
// 3. Project Config (./.domtrim.yaml)
// 4. Environment Variables (DOMTRIM_*)
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	// Global and project configs are optional; their absence is not an
	// error.
	if !l.skipGlobal {
		if globalCfg, err := l.loadGlobalConfig(); err == nil {
			mergeConfig(cfg, globalCfg)
		}
	}
	if projectCfg, err := l.loadProjectConfig(); err == nil {
		mergeConfig(cfg, projectCfg)
	}

	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific path on top of the
// defaults.
func (l *Loader) LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadGlobalConfig loads global config from $HOME/.domtrim/config.yaml.
func (l *Loader) loadGlobalConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return l.LoadFromPath(filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFile))
}

// loadProjectConfig loads project config from ./.domtrim.yaml.
func (l *Loader) loadProjectConfig() (*Config, error) {
	root := l.projectRoot
	if root == "" {
		root = "."
	}
	return l.LoadFromPath(filepath.Join(root, ProjectConfigFile))
}

// applyEnvOverrides applies environment variable overrides.
// Format: DOMTRIM_SECTION__KEY=value
func (l *Loader) applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("DOMTRIM_PRUNE__RULES"); v != "" {
		cfg.Prune.Rules = v
	}
	if v := os.Getenv("DOMTRIM_PRUNE__MAX_PASSES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ConfigError{Field: "prune.max_passes", Err: err}
		}
		cfg.Prune.MaxPasses = n
	}
	if v := os.Getenv("DOMTRIM_SPLIT__MAX_BYTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ConfigError{Field: "split.max_bytes", Err: err}
		}
		cfg.Split.MaxBytes = n
	}
	if v := os.Getenv("DOMTRIM_SPLIT__OUTPUT_DIR"); v != "" {
		cfg.Split.OutputDir = v
	}
	if v := os.Getenv("DOMTRIM_OUTPUT__LAYOUT"); v != "" {
		cfg.Output.Layout = v
	}
	if v := os.Getenv("DOMTRIM_GLOBAL__LOG_LEVEL"); v != "" {
		cfg.Global.LogLevel = v
	}
	return nil
}

// mergeConfig merges src into dst (src overrides dst).
func mergeConfig(dst, src *Config) {
	if src.Prune.Rules != "" {
		dst.Prune.Rules = src.Prune.Rules
	}
	if src.Prune.MaxPasses > 0 {
		dst.Prune.MaxPasses = src.Prune.MaxPasses
	}
	if src.Split.MaxBytes > 0 {
		dst.Split.MaxBytes = src.Split.MaxBytes
	}
	if src.Split.OutputDir != "" {
		dst.Split.OutputDir = src.Split.OutputDir
	}
	if src.Output.Layout != "" {
		dst.Output.Layout = src.Output.Layout
	}
	if src.Global.LogLevel != "" {
		dst.Global.LogLevel = src.Global.LogLevel
	}
}
