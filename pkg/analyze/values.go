package analyze

import (
	"sort"
	"strings"

	"github.com/dom-json-toolkit/domtrim/pkg/tree"
)

// interestingLength is the string length past which a value is always
// reported.
const interestingLength = 50

// ValueGroup collects the locations of one interesting string.
type ValueGroup struct {
	Content string
	Paths   []string
}

// Count returns the occurrence count of the group.
func (g ValueGroup) Count() int { return len(g.Paths) }

// interesting reports whether a string value deserves a human look: long
// strings, path-like or file-like tokens, and URLs. Framework noise is
// skipped outright.
func interesting(s string) bool {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "__") || strings.HasPrefix(s, "[object") {
		return false
	}
	return len(s) > interestingLength ||
		strings.Contains(s, "/") ||
		strings.Contains(s, ".") ||
		strings.HasPrefix(s, "http") ||
		strings.HasPrefix(s, "/api")
}

// Values walks the tree collecting interesting string values grouped by
// content, most frequent first, first-seen order within a frequency.
func Values(n tree.Node) []ValueGroup {
	index := map[string]int{}
	var groups []ValueGroup

	tree.Walk(n, func(path, key string, node tree.Node) {
		if node.Kind() != tree.KindString || !interesting(node.Str()) {
			return
		}
		if i, ok := index[node.Str()]; ok {
			groups[i].Paths = append(groups[i].Paths, path)
			return
		}
		index[node.Str()] = len(groups)
		groups = append(groups, ValueGroup{Content: node.Str(), Paths: []string{path}})
	})

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count() > groups[j].Count()
	})
	return groups
}
