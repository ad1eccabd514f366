// Package main provides the domtrim CLI application.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dom-json-toolkit/domtrim/pkg/errors"
	"github.com/dom-json-toolkit/domtrim/pkg/observability"
	"github.com/dom-json-toolkit/domtrim/pkg/split"
)

// splitCmd represents the split command
var splitCmd = &cobra.Command{
	Use:   "split <input>",
	Short: "Split a document into byte-budgeted chunk files",
	Long: `Split divides a document into chunks whose compact serialization fits
the byte budget, writing chunk_N.json files and a manifest.json into the
output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}

		maxBytes := cfg.Split.MaxBytes
		if cmd.Flags().Changed("max-size") {
			maxBytes = splitOpts.maxSize
		}
		if maxBytes <= 0 {
			return errors.ValidationError(fmt.Sprintf("max-size must be positive: %d", maxBytes), nil)
		}
		outDir := cfg.Split.OutputDir
		if splitOpts.outDir != "" {
			outDir = splitOpts.outDir
		}

		node, err := decodeArg(args[0])
		if err != nil {
			return err
		}

		chunks := split.New(maxBytes).Split(node)
		manifest, err := split.WriteChunks(outDir, chunks)
		if err != nil {
			return err
		}

		for _, c := range manifest.Chunks {
			log.Info("wrote chunk",
				observability.String("file", c.File),
				observability.Int("bytes", c.Bytes))
		}
		log.Info("split finished",
			observability.String("set_id", manifest.SetID),
			observability.Int("chunks", manifest.ChunkCount),
			observability.Int("total_bytes", manifest.TotalBytes),
			observability.String("dir", outDir))
		return nil
	},
}

// splitFlags holds the flags for the split command
type splitFlags struct {
	outDir  string
	maxSize int
}

var splitOpts splitFlags

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().StringVarP(&splitOpts.outDir, "out-dir", "d", "", "Output directory for chunk files")
	splitCmd.Flags().IntVar(&splitOpts.maxSize, "max-size", 0, "Chunk budget in bytes of compact JSON")
}
