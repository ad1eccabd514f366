// Copyright 2026 DOM JSON Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package rules implements the immutable, categorized rule table that
// drives prune decisions. Entries are classified once at build time into
// exact strings, literal values, and compiled patterns.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dom-json-toolkit/domtrim/pkg/errors"
	"github.com/dom-json-toolkit/domtrim/pkg/tree"
)

// MatcherKind tags the variant of a Matcher.
type MatcherKind int

const (
	// Exact matches a string by equality.
	Exact MatcherKind = iota
	// Literal matches a tree value (scalar, empty container, or a small
	// fixed object) by structural equality.
	Literal
	// Pattern matches a string against a compiled regular expression
	// anchored at the start of the string.
	Pattern
)

// Matcher is one rule entry.
type Matcher struct {
	kind    MatcherKind
	exact   string
	literal tree.Node
	pattern *regexp.Regexp
}

// Kind returns the matcher variant.
func (m Matcher) Kind() MatcherKind { return m.kind }

// MatchString tests a key or string value. Literal matchers only match
// when their literal is itself a string.
func (m Matcher) MatchString(s string) bool {
	switch m.kind {
	case Exact:
		return m.exact == s
	case Pattern:
		return m.pattern.MatchString(s)
	case Literal:
		return m.literal.Kind() == tree.KindString && m.literal.Str() == s
	}
	return false
}

// MatchNode tests a tree value.
func (m Matcher) MatchNode(n tree.Node) bool {
	switch m.kind {
	case Exact:
		return n.Kind() == tree.KindString && n.Str() == m.exact
	case Pattern:
		return n.Kind() == tree.KindString && m.pattern.MatchString(n.Str())
	case Literal:
		return tree.Equal(m.literal, n)
	}
	return false
}

func exactMatcher(s string) Matcher {
	return Matcher{kind: Exact, exact: s}
}

func literalMatcher(n tree.Node) Matcher {
	return Matcher{kind: Literal, literal: n}
}

// patternMatcher compiles expr anchored at the start of the subject, the
// match discipline the rule data was written for: prefix rules carry
// their own meaning and full-token rules end in $.
func patternMatcher(expr string) (Matcher, error) {
	anchored := expr
	if !strings.HasPrefix(expr, "^") {
		anchored = "^(?:" + expr + ")"
	}
	re, err := regexp.Compile(anchored)
	if err != nil {
		return Matcher{}, errors.ConfigError(fmt.Sprintf("invalid pattern %q", expr), err)
	}
	return Matcher{kind: Pattern, pattern: re}, nil
}
