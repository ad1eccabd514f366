// Package analyze produces exploratory reports over a document: key
// frequency with sample values, and a scan for content worth a human
// look. These reports guide rule-table tuning.
package analyze

import (
	"sort"

	"github.com/dom-json-toolkit/domtrim/pkg/tree"
)

// maxSamples bounds the sample values retained per key.
const maxSamples = 3

// Sample is one recorded value occurrence for a key.
type Sample struct {
	Path  string
	Value tree.Node
}

// KeyUsage aggregates the occurrences of one key name anywhere in the
// document.
type KeyUsage struct {
	Key     string
	Count   int
	Samples []Sample
}

// Keys walks the tree and reports every object key, most frequent first,
// ties broken by key name.
func Keys(n tree.Node) []KeyUsage {
	usage := map[string]*KeyUsage{}

	tree.Walk(n, func(path, key string, node tree.Node) {
		if key == "" {
			return
		}
		u := usage[key]
		if u == nil {
			u = &KeyUsage{Key: key}
			usage[key] = u
		}
		u.Count++
		if len(u.Samples) < maxSamples {
			u.Samples = append(u.Samples, Sample{Path: path, Value: node})
		}
	})

	out := make([]KeyUsage, 0, len(usage))
	for _, u := range usage {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}
