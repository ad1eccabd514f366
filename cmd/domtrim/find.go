// Package main provides the domtrim CLI application.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dom-json-toolkit/domtrim/pkg/finder"
	"github.com/dom-json-toolkit/domtrim/pkg/tree"
)

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find <input>",
	Short: "Locate every occurrence of the named keys",
	Long: `Find walks the document and reports each value stored under one of
the searched keys, grouping identical values and listing where they
occur.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if findOpts.objects == "" {
			return fmt.Errorf("--objects is required")
		}
		var keys []string
		for _, k := range strings.Split(findOpts.objects, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		if len(keys) == 0 {
			return fmt.Errorf("--objects lists no keys")
		}

		in, err := openInput(args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		node, err := tree.Decode(in)
		if err != nil {
			return err
		}

		fmt.Printf("Searching for objects: %s\n", strings.Join(keys, ", "))
		finder.Find(node, keys).Print(os.Stdout)
		return nil
	},
}

type findFlags struct {
	objects string
}

var findOpts findFlags

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().StringVar(&findOpts.objects, "objects", "", "Comma-separated list of key names to find")
}
