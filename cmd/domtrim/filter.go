// Package main provides the domtrim CLI application.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dom-json-toolkit/domtrim/pkg/filter"
	"github.com/dom-json-toolkit/domtrim/pkg/observability"
	"github.com/dom-json-toolkit/domtrim/pkg/tree"
)

// filterCmd represents the filter command
var filterCmd = &cobra.Command{
	Use:   "filter <input> <keys-file>",
	Short: "Extract subtrees under the given keys",
	Long: `Filter keeps the entire subtree under every key listed in the keys
file (one key per line) and drops everything else. When nothing matches
the output is null.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}

		keys, err := filter.LoadKeys(args[1])
		if err != nil {
			return err
		}
		f := filter.New(keys)
		log.Info("loaded filter keys",
			observability.Int("count", len(keys)),
			observability.String("keys", strings.Join(f.Keys(), ", ")))

		in, err := openInput(args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		node, err := tree.Decode(in)
		if err != nil {
			return err
		}

		out, closeOut, err := createOutput(filterOpts.output)
		if err != nil {
			return err
		}
		if closeOut {
			defer out.Close()
		}

		result := tree.Null()
		if filtered, ok := f.Apply(node); ok {
			result = filtered
		}
		if err := tree.Encode(out, result, layoutFor(cfg.Output.Layout)); err != nil {
			return err
		}
		_, err = out.Write([]byte("\n"))
		return err
	},
}

type filterFlags struct {
	output string
}

var filterOpts filterFlags

func init() {
	rootCmd.AddCommand(filterCmd)

	filterCmd.Flags().StringVarP(&filterOpts.output, "output", "o", "", "Output file (defaults to stdout)")
}
