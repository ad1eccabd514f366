// Package finder locates every occurrence of named keys in a document and
// groups the values found under them by identity, so repeated structures
// show up once with their locations.
package finder

import (
	"sort"
	"strconv"

	"github.com/dom-json-toolkit/domtrim/pkg/tree"
)

// Occurrence is one place a searched key was found.
type Occurrence struct {
	Value tree.Node
	Path  string
}

// Group collects all occurrences of one unique value under one key.
type Group struct {
	Value tree.Node
	Paths []string
}

// Count returns the number of occurrences in the group.
func (g Group) Count() int { return len(g.Paths) }

// Report holds groups per searched key, keys in the order requested,
// groups in first-seen order.
type Report struct {
	Keys   []string
	Groups map[string][]Group
}

// Total returns the occurrence count across all groups of one key.
func (r *Report) Total(key string) int {
	n := 0
	for _, g := range r.Groups[key] {
		n += g.Count()
	}
	return n
}

// Find walks the tree collecting every value stored under one of the
// searched keys. Identical values (by canonical serialization) are
// grouped together.
func Find(n tree.Node, keys []string) *Report {
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}

	rep := &Report{Keys: keys, Groups: make(map[string][]Group, len(keys))}
	index := map[string]map[string]int{} // key -> canonical -> group index

	var visit func(n tree.Node, path string)
	visit = func(n tree.Node, path string) {
		switch n.Kind() {
		case tree.KindObject:
			for _, f := range n.Fields() {
				p := join(path, f.Key)
				if want[f.Key] {
					id := canonical(f.Value)
					byID := index[f.Key]
					if byID == nil {
						byID = map[string]int{}
						index[f.Key] = byID
					}
					if i, ok := byID[id]; ok {
						rep.Groups[f.Key][i].Paths = append(rep.Groups[f.Key][i].Paths, p)
					} else {
						byID[id] = len(rep.Groups[f.Key])
						rep.Groups[f.Key] = append(rep.Groups[f.Key], Group{
							Value: f.Value,
							Paths: []string{p},
						})
					}
				}
				visit(f.Value, p)
			}
		case tree.KindArray:
			for i, el := range n.Elems() {
				visit(el, join(path, strconv.Itoa(i)))
			}
		}
	}
	visit(n, "")
	return rep
}

func join(path, seg string) string {
	if path == "" {
		return seg
	}
	return path + "/" + seg
}

// canonical renders a node compactly with object keys sorted, giving a
// stable identity for grouping.
func canonical(n tree.Node) string {
	return tree.EncodeString(sorted(n), tree.Compact)
}

func sorted(n tree.Node) tree.Node {
	switch n.Kind() {
	case tree.KindObject:
		fields := append([]tree.Field(nil), n.Fields()...)
		sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })
		for i := range fields {
			fields[i].Value = sorted(fields[i].Value)
		}
		return tree.Object(fields...)
	case tree.KindArray:
		elems := make([]tree.Node, n.Len())
		for i, el := range n.Elems() {
			elems[i] = sorted(el)
		}
		return tree.Array(elems...)
	default:
		return n
	}
}
