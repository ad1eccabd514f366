package finder

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/dom-json-toolkit/domtrim/pkg/tree"
)

var (
	headerStyle = color.New(color.FgCyan, color.Bold)
	countStyle  = color.New(color.FgYellow, color.Bold)
	pathStyle   = color.New(color.FgBlue)
)

// Print writes the report in the structured findings format.
func (r *Report) Print(w io.Writer) {
	for _, key := range r.Keys {
		total := r.Total(key)
		if total == 0 {
			fmt.Fprintf(w, "\nNo instances of %q found.\n", key)
			continue
		}
		fmt.Fprintf(w, "\nFound %s total instance(s) of %q:\n",
			countStyle.Sprint(total), key)
		fmt.Fprintln(w, headerStyle.Sprint(strings.Repeat("=", 50)))

		for i, g := range r.Groups[key] {
			plural := "s"
			if g.Count() == 1 {
				plural = ""
			}
			fmt.Fprintf(w, "\nUnique Object %d (found %d time%s):\n", i+1, g.Count(), plural)
			fmt.Fprintln(w, "Content:")
			fmt.Fprintln(w, tree.EncodeString(g.Value, tree.Indented))
			if g.Count() > 1 {
				fmt.Fprintln(w, "\nPaths:")
				for _, p := range g.Paths {
					fmt.Fprintf(w, "- %s\n", pathStyle.Sprint(p))
				}
			}
		}
	}
}
