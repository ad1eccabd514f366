// Package main provides the domtrim CLI application.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dom-json-toolkit/domtrim/pkg/compactor"
)

// compactCmd represents the compact command
var compactCmd = &cobra.Command{
	Use:   "compact <input>",
	Short: "Remove insignificant whitespace from a JSON document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		out, closeOut, err := createOutput(compactOpts.output)
		if err != nil {
			return err
		}
		if closeOut {
			defer out.Close()
		}

		if err := compactor.Compact(in, out); err != nil {
			return err
		}
		// Terminal friendliness when writing to stdout.
		if !closeOut {
			_, err = out.Write([]byte("\n"))
		}
		return err
	},
}

// expandCmd represents the expand command
var expandCmd = &cobra.Command{
	Use:   "expand <input>",
	Short: "Re-render a JSON document with stable indentation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		out, closeOut, err := createOutput(expandOpts.output)
		if err != nil {
			return err
		}
		if closeOut {
			defer out.Close()
		}

		if err := compactor.Expand(in, out); err != nil {
			return err
		}
		_, err = out.Write([]byte("\n"))
		return err
	},
}

type compactFlags struct {
	output string
}

var (
	compactOpts compactFlags
	expandOpts  compactFlags
)

func init() {
	rootCmd.AddCommand(compactCmd)
	rootCmd.AddCommand(expandCmd)

	compactCmd.Flags().StringVarP(&compactOpts.output, "output", "o", "", "Output file (defaults to stdout)")
	expandCmd.Flags().StringVarP(&expandOpts.output, "output", "o", "", "Output file (defaults to stdout)")
}
