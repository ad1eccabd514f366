// Package main provides the domtrim CLI application.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dom-json-toolkit/domtrim/pkg/observability"
	"github.com/dom-json-toolkit/domtrim/pkg/prune"
	"github.com/dom-json-toolkit/domtrim/pkg/rules"
	"github.com/dom-json-toolkit/domtrim/pkg/tree"
)

// pruneCmd represents the prune command
var pruneCmd = &cobra.Command{
	Use:   "prune <input>",
	Short: "Prune noise out of a DOM snapshot",
	Long: `Prune repeatedly strips framework markers, styling values, boilerplate
metadata and empty containers from a JSON tree until it stops changing
or the pass ceiling is reached. A tree can prune away entirely; the
output is then null.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
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

		table, err := resolveTable(cfg.Prune.Rules)
		if err != nil {
			return err
		}

		maxPasses := cfg.Prune.MaxPasses
		if cmd.Flags().Changed("max-passes") {
			maxPasses = pruneOpts.maxPasses
		}

		engine := prune.New(table)
		res, err := engine.RunContext(cmd.Context(), node, maxPasses)
		if err != nil {
			return err
		}

		if !res.Converged {
			log.Warn("did not converge", observability.Int("passes", res.Passes))
		}
		log.Info("prune finished",
			observability.Int("passes", res.Passes),
			observability.Bool("converged", res.Converged),
			observability.Bool("absent", res.Absent))

		out, closeOut, err := createOutput(pruneOpts.output)
		if err != nil {
			return err
		}
		if closeOut {
			defer out.Close()
		}

		result := tree.Null()
		if !res.Absent {
			result = res.Tree
		}
		if err := tree.Encode(out, result, layoutFor(cfg.Output.Layout)); err != nil {
			return err
		}
		_, err = out.Write([]byte("\n"))
		return err
	},
}

// resolveTable picks the rule table: --rules flag, then config, then the
// built-in default.
func resolveTable(configured string) (*rules.Table, error) {
	path := pruneOpts.rules
	if path == "" {
		path = configured
	}
	if path == "" {
		return rules.Default(), nil
	}
	return rules.Load(path)
}

// pruneFlags holds the flags for the prune command
type pruneFlags struct {
	output    string
	rules     string
	maxPasses int
}

var pruneOpts pruneFlags

func init() {
	rootCmd.AddCommand(pruneCmd)

	pruneCmd.Flags().StringVarP(&pruneOpts.output, "output", "o", "", "Output file (defaults to stdout)")
	pruneCmd.Flags().StringVar(&pruneOpts.rules, "rules", "", "Path to a custom rule-table file")
	pruneCmd.Flags().IntVar(&pruneOpts.maxPasses, "max-passes", prune.DefaultMaxPasses, "Pass ceiling for the fixed-point loop")
}
