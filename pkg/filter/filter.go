// Package filter extracts subtrees by key: a matched key keeps its entire
// value untouched, everything else is searched deeper and dropped when
// nothing beneath it matches.
package filter

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dom-json-toolkit/domtrim/pkg/errors"
	"github.com/dom-json-toolkit/domtrim/pkg/tree"
)

// Filter holds the set of key names to keep.
type Filter struct {
	keep map[string]bool
}

// New creates a filter from a list of key names.
func New(keys []string) *Filter {
	keep := make(map[string]bool, len(keys))
	for _, k := range keys {
		keep[k] = true
	}
	return &Filter{keep: keep}
}

// Keys returns the keep set in sorted order.
func (f *Filter) Keys() []string {
	out := make([]string, 0, len(f.keep))
	for k := range f.keep {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Apply filters the tree. The second return is false when nothing
// matched anywhere, i.e. the result is absent.
func (f *Filter) Apply(n tree.Node) (tree.Node, bool) {
	switch n.Kind() {
	case tree.KindObject:
		kept := make([]tree.Field, 0, n.Len())
		for _, fld := range n.Fields() {
			if f.keep[fld.Key] {
				// Keep the whole subtree unfiltered.
				kept = append(kept, fld)
				continue
			}
			v, ok := f.Apply(fld.Value)
			if ok {
				kept = append(kept, tree.Field{Key: fld.Key, Value: v})
			}
		}
		if len(kept) == 0 {
			return tree.Node{}, false
		}
		return tree.Object(kept...), true
	case tree.KindArray:
		kept := make([]tree.Node, 0, n.Len())
		for _, el := range n.Elems() {
			v, ok := f.Apply(el)
			if ok {
				kept = append(kept, v)
			}
		}
		if len(kept) == 0 {
			return tree.Node{}, false
		}
		return tree.Array(kept...), true
	default:
		// Bare scalars only survive under a matched key.
		return tree.Node{}, false
	}
}

// LoadKeys reads key names from a text file, one per line, skipping blank
// lines.
func LoadKeys(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.IOError(fmt.Sprintf("opening keys file %s", path), err)
	}
	defer f.Close()

	var keys []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			keys = append(keys, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.IOError(fmt.Sprintf("reading keys file %s", path), err)
	}
	return keys, nil
}
