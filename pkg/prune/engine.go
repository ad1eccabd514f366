// Copyright 2026 DOM JSON Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package prune implements the iterative tree-pruning engine: a rule-driven
// post-order rewrite applied repeatedly until the tree stops changing or a
// pass budget runs out.
package prune

import (
	"context"
	"strings"

	"github.com/dom-json-toolkit/domtrim/pkg/rules"
	"github.com/dom-json-toolkit/domtrim/pkg/tree"
)

// DefaultMaxPasses is the pass ceiling used when the caller does not set
// one. Realistic trees converge in single digits.
const DefaultMaxPasses = 1000

// protectedKey is the one key never eligible for pruning: it carries the
// node-type identity of a DOM snapshot entry.
const protectedKey = "nodeName"

// Engine prunes trees against one rule table. Engines are stateless
// between calls and safe for concurrent use on distinct trees.
type Engine struct {
	table *rules.Table
}

// New creates an engine. A nil table selects the built-in default.
func New(table *rules.Table) *Engine {
	if table == nil {
		table = rules.Default()
	}
	return &Engine{table: table}
}

// Table returns the engine's rule table.
func (e *Engine) Table() *rules.Table { return e.table }

// Result is the outcome of a Run.
type Result struct {
	// Tree is the pruned tree. Meaningless when Absent is true.
	Tree tree.Node
	// Absent reports that nothing survived: the whole input pruned away.
	// Distinct from an empty object or array.
	Absent bool
	// Passes is the number of passes that changed the tree.
	Passes int
	// Converged reports that a fixed point was reached within the pass
	// ceiling. A false value is a normal result, not an error.
	Converged bool
}

// ShouldPrune decides whether a value should disappear from its parent.
// key is the object key the value sits under, or "" for array elements
// and bare scalars.
//
// Booleans and numbers are always prunable: in a DOM snapshot they are
// presentational flags and dimension noise. The policy is deliberately
// aggressive and downstream output depends on it.
func (e *Engine) ShouldPrune(n tree.Node, key string) bool {
	if key == protectedKey {
		return false
	}

	switch n.Kind() {
	case tree.KindNull:
		return true
	case tree.KindArray, tree.KindObject:
		return n.Len() == 0
	case tree.KindBool:
		return true
	case tree.KindNumber:
		return true
	case tree.KindString:
		if n.Str() == "" {
			return true
		}
		v := strings.TrimSpace(n.Str())
		if e.table.DOMTextValue(v) {
			return true
		}
		switch strings.ToLower(v) {
		case "null", "undefined":
			return true
		}
		// A multi-token string is a candidate class list; it is pruned
		// only when every token matches a style pattern.
		if strings.Contains(v, " ") {
			tokens := strings.Fields(v)
			all := true
			for _, tok := range tokens {
				if !e.table.StyleToken(tok) {
					all = false
					break
				}
			}
			if all {
				return true
			}
		}
	}
	return false
}

// pruneNode rewrites one node post-order. The second return is false when
// the node is absent, i.e. nothing of it survives.
func (e *Engine) pruneNode(n tree.Node) (tree.Node, bool) {
	switch n.Kind() {
	case tree.KindObject:
		return e.pruneObject(n)
	case tree.KindArray:
		return e.pruneArray(n)
	default:
		if e.ShouldPrune(n, "") {
			return tree.Node{}, false
		}
		return n, true
	}
}

func (e *Engine) pruneObject(n tree.Node) (tree.Node, bool) {
	fields := n.Fields()

	// An object carrying nothing but its node-type identity is noise.
	if len(fields) == 1 && fields[0].Key == protectedKey {
		return tree.Node{}, false
	}

	kept := make([]tree.Field, 0, len(fields))
	for _, f := range fields {
		if e.table.RemoveKey(f.Key) {
			continue
		}
		if e.table.CSSKey(f.Key) {
			continue
		}
		v, present := e.pruneNode(f.Value)
		if !present {
			continue
		}
		kept = append(kept, tree.Field{Key: f.Key, Value: v})
	}

	if len(kept) == 0 {
		return tree.Node{}, false
	}
	allPrunable := true
	for _, f := range kept {
		if !e.ShouldPrune(f.Value, f.Key) {
			allPrunable = false
			break
		}
	}
	if allPrunable {
		return tree.Node{}, false
	}
	return tree.Object(kept...), true
}

func (e *Engine) pruneArray(n tree.Node) (tree.Node, bool) {
	kept := make([]tree.Node, 0, n.Len())
	for _, el := range n.Elems() {
		if e.ShouldPrune(el, "") {
			continue
		}
		v, present := e.pruneNode(el)
		if !present {
			continue
		}
		kept = append(kept, v)
	}

	if len(kept) == 0 {
		return tree.Node{}, false
	}
	allPrunable := true
	for _, el := range kept {
		if !e.ShouldPrune(el, "") {
			allPrunable = false
			break
		}
	}
	if allPrunable {
		return tree.Node{}, false
	}
	return tree.Array(kept...), true
}

// Run prunes the tree to a fixed point, or until maxPasses passes have
// changed it. The input is cloned first and never mutated. Passes counts
// only passes that changed something: a run whose first pass is already a
// no-op reports zero passes and convergence.
func (e *Engine) Run(n tree.Node, maxPasses int) Result {
	res, _ := e.RunContext(context.Background(), n, maxPasses)
	return res
}

// RunContext is Run with a cancellation point between passes. A pass is
// the atomic unit of work; ctx is only consulted at pass boundaries.
func (e *Engine) RunContext(ctx context.Context, n tree.Node, maxPasses int) (Result, error) {
	current := n.Clone()
	currentAbsent := false
	passes := 0
	converged := false

	for passes < maxPasses {
		if err := ctx.Err(); err != nil {
			return Result{Tree: current, Absent: currentAbsent, Passes: passes}, err
		}

		var next tree.Node
		nextAbsent := false
		if currentAbsent {
			nextAbsent = true
		} else {
			var present bool
			next, present = e.pruneNode(current)
			nextAbsent = !present
		}

		if nextAbsent == currentAbsent && (nextAbsent || tree.Equal(current, next)) {
			converged = true
			break
		}
		current, currentAbsent = next, nextAbsent
		passes++
	}

	return Result{
		Tree:      current,
		Absent:    currentAbsent,
		Passes:    passes,
		Converged: converged,
	}, nil
}
