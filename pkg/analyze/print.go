package analyze

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/dom-json-toolkit/domtrim/pkg/tree"
)

const sampleWidth = 100

var (
	titleStyle = color.New(color.FgCyan, color.Bold)
	keyStyle   = color.New(color.FgYellow, color.Bold)
	pathStyle  = color.New(color.FgBlue)
)

// PrintKeys writes the key-frequency report.
func PrintKeys(w io.Writer, usages []KeyUsage) {
	fmt.Fprintln(w, titleStyle.Sprint("\nKey Analysis"))
	fmt.Fprintln(w, strings.Repeat("=", 50))

	for _, u := range usages {
		fmt.Fprintf(w, "\nKey: %s\n", keyStyle.Sprint(u.Key))
		fmt.Fprintf(w, "Count: %d\n", u.Count)
		if len(u.Samples) == 0 {
			continue
		}
		fmt.Fprintln(w, "Sample values:")
		for _, s := range u.Samples {
			fmt.Fprintf(w, "  At %s:\n", pathStyle.Sprint(s.Path))
			rendered := tree.EncodeString(s.Value, tree.Compact)
			if len(rendered) > sampleWidth {
				fmt.Fprintf(w, "  -> %s\n", rendered[:sampleWidth])
				fmt.Fprintln(w, "    ...")
			} else {
				fmt.Fprintf(w, "  -> %s\n", rendered)
			}
		}
	}
}

// PrintValues writes the interesting-content report.
func PrintValues(w io.Writer, groups []ValueGroup) {
	fmt.Fprintln(w, titleStyle.Sprint("\nInteresting Content"))
	fmt.Fprintln(w, strings.Repeat("=", 50))

	for _, g := range groups {
		fmt.Fprintf(w, "\nFound %d times: %s\n", g.Count(), g.Content)
		if g.Count() > 1 {
			fmt.Fprintln(w, "Locations:")
			for _, p := range g.Paths {
				fmt.Fprintf(w, "  - %s\n", pathStyle.Sprint(p))
			}
		}
		fmt.Fprintln(w)
	}
}
