// Copyright 2026 DOM JSON Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package split divides a document into chunks whose compact serialization
// fits a byte budget. Oversized strings are windowed, oversized "children"
// arrays are split with the parent envelope re-carried on every chunk, and
// oversized nested objects multiply the chunk set.
package split

import (
	"unicode/utf8"

	"github.com/dom-json-toolkit/domtrim/pkg/tree"
)

// childrenKey is the array field whose elements are distributed across
// chunks under a copy of the surrounding envelope.
const childrenKey = "children"

// Splitter splits documents against one byte budget.
type Splitter struct {
	maxBytes int
}

// New creates a splitter with the given chunk budget in bytes.
func New(maxBytes int) *Splitter {
	return &Splitter{maxBytes: maxBytes}
}

// Split returns the chunk list for a document. A document within budget
// comes back as a single chunk. Only objects are divisible; any other
// top-level value is returned whole. A non-positive budget disables
// splitting entirely.
func (s *Splitter) Split(n tree.Node) []tree.Node {
	if s.maxBytes <= 0 || n.Kind() != tree.KindObject {
		return []tree.Node{n}
	}
	return s.splitObject(n)
}

func (s *Splitter) needsSplit(n tree.Node) bool {
	switch n.Kind() {
	case tree.KindObject, tree.KindArray:
		return tree.Size(n) > s.maxBytes
	case tree.KindString:
		return len(n.Str()) > s.maxBytes
	default:
		return false
	}
}

// splitString windows a string into budget-sized pieces, backing off to
// rune boundaries so every piece stays valid UTF-8.
func (s *Splitter) splitString(v string) []string {
	var out []string
	for len(v) > 0 {
		end := s.maxBytes
		if end >= len(v) {
			out = append(out, v)
			break
		}
		for end > 0 && !utf8.RuneStart(v[end]) {
			end--
		}
		if end == 0 {
			// A single rune larger than the budget; emit it whole.
			_, size := utf8.DecodeRuneInString(v)
			end = size
		}
		out = append(out, v[:end])
		v = v[end:]
	}
	return out
}

// splitArray distributes elems over envelope copies, each chunk holding as
// many consecutive elements as the budget allows. Oversized object
// elements are split recursively and placed one sub-chunk per envelope.
func (s *Splitter) splitArray(elems []tree.Node, envelope []tree.Field) []tree.Node {
	var chunks []tree.Node
	var current []tree.Node

	wrap := func(children []tree.Node) tree.Node {
		fields := make([]tree.Field, 0, len(envelope)+1)
		fields = append(fields, envelope...)
		fields = append(fields, tree.Field{Key: childrenKey, Value: tree.Array(children...)})
		return tree.Object(fields...)
	}

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, wrap(current))
			current = nil
		}
	}

	for _, item := range elems {
		if item.Kind() == tree.KindObject && s.needsSplit(item) {
			flush()
			for _, sub := range s.splitObject(item) {
				chunks = append(chunks, wrap([]tree.Node{sub}))
			}
			continue
		}
		current = append(current, item)
		if tree.Size(wrap(current)) > s.maxBytes {
			last := current[len(current)-1]
			current = current[:len(current)-1]
			flush()
			current = []tree.Node{last}
		}
	}
	flush()
	return chunks
}

func (s *Splitter) splitObject(n tree.Node) []tree.Node {
	if !s.needsSplit(n) {
		return []tree.Node{n}
	}

	chunks := []tree.Node{n.Clone()}
	for _, f := range n.Fields() {
		if !s.needsSplit(f.Value) {
			continue
		}
		switch f.Value.Kind() {
		case tree.KindString:
			pieces := s.splitString(f.Value.Str())
			var next []tree.Node
			for _, piece := range pieces {
				for _, existing := range chunks {
					next = append(next, replaceField(existing, f.Key, tree.String(piece)))
				}
			}
			chunks = next
		case tree.KindArray:
			if f.Key == childrenKey {
				envelope := make([]tree.Field, 0, n.Len()-1)
				for _, g := range n.Fields() {
					if g.Key != childrenKey {
						envelope = append(envelope, g)
					}
				}
				chunks = s.splitArray(f.Value.Elems(), envelope)
			}
		case tree.KindObject:
			nested := s.splitObject(f.Value)
			if len(nested) > 1 {
				var next []tree.Node
				for _, sub := range nested {
					for _, existing := range chunks {
						next = append(next, replaceField(existing, f.Key, sub))
					}
				}
				chunks = next
			}
		}
	}
	return chunks
}

// replaceField returns a copy of obj with key set to val, preserving
// field order.
func replaceField(obj tree.Node, key string, val tree.Node) tree.Node {
	fields := append([]tree.Field(nil), obj.Fields()...)
	for i := range fields {
		if fields[i].Key == key {
			fields[i] = tree.Field{Key: key, Value: val}
			return tree.Object(fields...)
		}
	}
	fields = append(fields, tree.Field{Key: key, Value: val})
	return tree.Object(fields...)
}
