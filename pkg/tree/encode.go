// Copyright 2026 DOM JSON Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package tree

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

// Layout selects how Encode renders a tree.
type Layout int

const (
	// Compact renders without insignificant whitespace.
	Compact Layout = iota
	// Indented renders with two-space indentation and one field per line.
	Indented
)

const indentUnit = "  "

// Encode writes the JSON rendering of node to w.
func Encode(w io.Writer, node Node, layout Layout) error {
	bw := bufio.NewWriter(w)
	if err := encodeNode(bw, node, layout, 0); err != nil {
		return err
	}
	return bw.Flush()
}

// EncodeString renders node to a string.
func EncodeString(node Node, layout Layout) string {
	var sb strings.Builder
	// strings.Builder writes cannot fail.
	_ = Encode(&sb, node, layout)
	return sb.String()
}

// Size returns the byte length of the compact rendering, the measure used
// for chunk budgets and shrink accounting.
func Size(node Node) int {
	return len(EncodeString(node, Compact))
}

func encodeNode(w *bufio.Writer, node Node, layout Layout, depth int) error {
	switch node.kind {
	case KindNull:
		_, err := w.WriteString("null")
		return err
	case KindBool:
		_, err := w.WriteString(strconv.FormatBool(node.b))
		return err
	case KindNumber:
		_, err := w.WriteString(node.str)
		return err
	case KindString:
		return writeQuoted(w, node.str)
	case KindArray:
		return encodeArray(w, node, layout, depth)
	case KindObject:
		return encodeObject(w, node, layout, depth)
	}
	return nil
}

func encodeArray(w *bufio.Writer, node Node, layout Layout, depth int) error {
	if len(node.elems) == 0 {
		_, err := w.WriteString("[]")
		return err
	}
	if err := w.WriteByte('['); err != nil {
		return err
	}
	for i, e := range node.elems {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if err := newlineIndent(w, layout, depth+1); err != nil {
			return err
		}
		if err := encodeNode(w, e, layout, depth+1); err != nil {
			return err
		}
	}
	if err := newlineIndent(w, layout, depth); err != nil {
		return err
	}
	return w.WriteByte(']')
}

func encodeObject(w *bufio.Writer, node Node, layout Layout, depth int) error {
	if len(node.fields) == 0 {
		_, err := w.WriteString("{}")
		return err
	}
	if err := w.WriteByte('{'); err != nil {
		return err
	}
	for i, f := range node.fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if err := newlineIndent(w, layout, depth+1); err != nil {
			return err
		}
		if err := writeQuoted(w, f.Key); err != nil {
			return err
		}
		if err := w.WriteByte(':'); err != nil {
			return err
		}
		if layout == Indented {
			if err := w.WriteByte(' '); err != nil {
				return err
			}
		}
		if err := encodeNode(w, f.Value, layout, depth+1); err != nil {
			return err
		}
	}
	if err := newlineIndent(w, layout, depth); err != nil {
		return err
	}
	return w.WriteByte('}')
}

func newlineIndent(w *bufio.Writer, layout Layout, depth int) error {
	if layout != Indented {
		return nil
	}
	if err := w.WriteByte('\n'); err != nil {
		return err
	}
	for i := 0; i < depth; i++ {
		if _, err := w.WriteString(indentUnit); err != nil {
			return err
		}
	}
	return nil
}

func writeQuoted(w *bufio.Writer, s string) error {
	// encoding/json handles escaping rules; a bare string always marshals.
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
