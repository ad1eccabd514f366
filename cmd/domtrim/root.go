// Package main provides the domtrim CLI application.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dom-json-toolkit/domtrim/pkg/config"
	"github.com/dom-json-toolkit/domtrim/pkg/observability"
	"github.com/dom-json-toolkit/domtrim/pkg/tree"
	"github.com/dom-json-toolkit/domtrim/pkg/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "domtrim",
	Short: "DOM snapshot JSON toolkit",
	Long: `domtrim - a toolkit for working with serialized DOM snapshots.

It prunes framework and styling noise out of JSON trees, compacts and
expands documents, extracts and locates subtrees by key, reports key and
value usage, and splits oversized documents into byte-budgeted chunks.`,
	Version:       version.FullString(),
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// rootFlags holds the persistent flags shared by all subcommands
type rootFlags struct {
	config   string
	logLevel string
}

var rootOpts rootFlags

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootOpts.config, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&rootOpts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// loadConfig resolves the effective configuration and a logger for it.
func loadConfig() (*config.Config, observability.Logger, error) {
	loader := config.NewLoader()

	var cfg *config.Config
	var err error
	if rootOpts.config != "" {
		cfg, err = loader.LoadFromPath(rootOpts.config)
	} else {
		cfg, err = loader.Load()
	}
	if err != nil {
		return nil, nil, err
	}

	if rootOpts.logLevel != "" {
		cfg.Global.LogLevel = rootOpts.logLevel
	}
	return cfg, observability.NewLogger(cfg.Global.LogLevel), nil
}

// openInput opens an input path, with "-" meaning stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// createOutput opens an output path, with "" or "-" meaning stdout.
func createOutput(path string) (io.WriteCloser, bool, error) {
	if path == "" || path == "-" {
		return os.Stdout, false, nil
	}
	f, err := os.Create(path)
	return f, true, err
}

// layoutFor maps a config layout name onto the tree codec.
func layoutFor(name string) tree.Layout {
	if name == "compact" {
		return tree.Compact
	}
	return tree.Indented
}
