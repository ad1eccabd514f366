// Package compactor re-renders JSON documents: compact for machine
// consumption, indented for humans. Both directions go through the tree
// codec so the output is always well-formed.
package compactor

import (
	"io"

	"github.com/dom-json-toolkit/domtrim/pkg/tree"
)

// Compact reads one JSON document from r and writes it to w without
// insignificant whitespace.
func Compact(r io.Reader, w io.Writer) error {
	node, err := tree.Decode(r)
	if err != nil {
		return err
	}
	return tree.Encode(w, node, tree.Compact)
}

// Expand reads one JSON document from r and writes it to w with stable
// two-space indentation.
func Expand(r io.Reader, w io.Writer) error {
	node, err := tree.Decode(r)
	if err != nil {
		return err
	}
	return tree.Encode(w, node, tree.Indented)
}
