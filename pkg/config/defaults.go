// Copyright 2026 DOM JSON Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

// Default sizes and ceilings used when no config file is present.
const (
	// DefaultMaxPasses is the pruning pass ceiling; convergence is
	// normally reached in single digits.
	DefaultMaxPasses = 1000
	// DefaultSplitMaxBytes is the chunk budget (4 MiB).
	DefaultSplitMaxBytes = 4 << 20
)

// DefaultConfig returns the default configuration.
// These values are used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Prune: PruneConfig{
			MaxPasses: DefaultMaxPasses,
		},
		Split: SplitConfig{
			MaxBytes:  DefaultSplitMaxBytes,
			OutputDir: "chunks",
		},
		Output: OutputConfig{
			Layout: "indented",
		},
		Global: GlobalConfig{
			LogLevel: "info",
		},
	}
}
