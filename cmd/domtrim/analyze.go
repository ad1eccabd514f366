// Package main provides the domtrim CLI application.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dom-json-toolkit/domtrim/pkg/analyze"
	"github.com/dom-json-toolkit/domtrim/pkg/tree"
)

// keysCmd represents the keys command
var keysCmd = &cobra.Command{
	Use:   "keys <input>",
	Short: "Report key usage frequency with sample values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		node, err := decodeArg(args[0])
		if err != nil {
			return err
		}
		analyze.PrintKeys(os.Stdout, analyze.Keys(node))
		return nil
	},
}

// valuesCmd represents the values command
var valuesCmd = &cobra.Command{
	Use:   "values <input>",
	Short: "Report interesting string content (long values, paths, URLs)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		node, err := decodeArg(args[0])
		if err != nil {
			return err
		}
		analyze.PrintValues(os.Stdout, analyze.Values(node))
		return nil
	},
}

func decodeArg(path string) (tree.Node, error) {
	in, err := openInput(path)
	if err != nil {
		return tree.Node{}, err
	}
	defer in.Close()
	return tree.Decode(in)
}

func init() {
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(valuesCmd)
}
