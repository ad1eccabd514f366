// Copyright 2026 DOM JSON Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package rules

import (
	"fmt"

	"github.com/dom-json-toolkit/domtrim/pkg/errors"
	"github.com/dom-json-toolkit/domtrim/pkg/tree"
)

// Category names understood by the prune engine. A custom source may add
// further categories; they are built and exposed but not consulted.
const (
	// CategoryFrameworkKeys holds patterns for framework-internal key names.
	CategoryFrameworkKeys = "framework_keys"
	// CategoryFeatureFlagKeys holds exact feature-flag key names.
	CategoryFeatureFlagKeys = "feature_flag_keys"
	// CategoryTechnicalKeys holds exact boilerplate key names.
	CategoryTechnicalKeys = "technical_keys"
	// CategoryEncodedKeys holds patterns detecting base64-looking keys.
	CategoryEncodedKeys = "encoded_keys"
	// CategoryStyleClasses holds patterns detecting utility style classes.
	CategoryStyleClasses = "style_classes"
	// CategoryHTMLAttributes holds literal presentational attribute noise.
	CategoryHTMLAttributes = "html_attributes"
	// CategoryTechnicalMetadata holds exact boilerplate metadata strings.
	CategoryTechnicalMetadata = "technical_metadata"
	// CategoryEmptyTechnical holds literal empty framework carriers.
	CategoryEmptyTechnical = "empty_technical"
	// CategoryTechnicalValues holds literal values treated as noise.
	CategoryTechnicalValues = "technical_values"
	// CategoryFrameworkValues holds patterns for framework-internal values.
	CategoryFrameworkValues = "framework_values"
	// CategoryEncodedValues holds patterns detecting base64-looking values.
	CategoryEncodedValues = "encoded_values"
	// CategoryCSSKeys holds exact CSS-association key names.
	CategoryCSSKeys = "css_keys"
	// CategoryCSSValues holds patterns for CSS class tokens.
	CategoryCSSValues = "css_values"
	// CategoryRemoveKeys holds key names removed unconditionally.
	CategoryRemoveKeys = "remove_keys"
	// CategoryDOMTextValues holds exact DOM text-node noise strings.
	CategoryDOMTextValues = "dom_text_values"
)

// patternCategories lists the categories whose string entries are
// interpreted as regular expressions rather than exact strings.
var patternCategories = map[string]bool{
	CategoryFrameworkKeys:   true,
	CategoryEncodedKeys:     true,
	CategoryStyleClasses:    true,
	CategoryFrameworkValues: true,
	CategoryEncodedValues:   true,
	CategoryCSSValues:       true,
}

// Source is the raw shape of a rule table: category name to a list of
// strings, pattern strings, and literal values. It is what the loader
// produces from a JSON or YAML rule file.
type Source map[string][]interface{}

// Table is an immutable categorized matcher set. Safe for concurrent
// reads; never mutated after Build returns.
type Table struct {
	categories map[string][]Matcher

	// Fast-path sets for the categories the engine consults per node.
	removeKeys    map[string]bool
	cssKeys       map[string]bool
	domTextValues map[string]bool
	styleTokens   []Matcher
}

// Build constructs a Table from a source, classifying every entry by kind
// and compiling patterns. Invalid patterns and unrepresentable entries
// fail fast with a configuration error.
func Build(source Source) (*Table, error) {
	t := &Table{
		categories:    make(map[string][]Matcher, len(source)),
		removeKeys:    map[string]bool{},
		cssKeys:       map[string]bool{},
		domTextValues: map[string]bool{},
	}
	for category, entries := range source {
		matchers := make([]Matcher, 0, len(entries))
		for _, entry := range entries {
			m, err := buildEntry(category, entry)
			if err != nil {
				return nil, err
			}
			matchers = append(matchers, m)
		}
		t.categories[category] = matchers
	}

	for _, m := range t.categories[CategoryRemoveKeys] {
		if m.kind == Exact {
			t.removeKeys[m.exact] = true
		}
	}
	for _, m := range t.categories[CategoryCSSKeys] {
		if m.kind == Exact {
			t.cssKeys[m.exact] = true
		}
	}
	for _, m := range t.categories[CategoryDOMTextValues] {
		if m.kind == Exact {
			t.domTextValues[m.exact] = true
		}
	}
	t.styleTokens = t.categories[CategoryCSSValues]
	return t, nil
}

func buildEntry(category string, entry interface{}) (Matcher, error) {
	switch v := entry.(type) {
	case string:
		if patternCategories[category] {
			return patternMatcher(v)
		}
		return exactMatcher(v), nil
	case nil, bool, int, int64, float64:
		n, err := tree.FromGo(v)
		if err != nil {
			return Matcher{}, errors.ConfigError(
				fmt.Sprintf("category %q: bad literal entry", category), err)
		}
		return literalMatcher(n), nil
	case []interface{}, map[string]interface{}:
		n, err := tree.FromGo(v)
		if err != nil {
			return Matcher{}, errors.ConfigError(
				fmt.Sprintf("category %q: bad literal entry", category), err)
		}
		return literalMatcher(n), nil
	default:
		return Matcher{}, errors.ConfigError(
			fmt.Sprintf("category %q: entry of type %T is not a string, literal, or pattern", category, entry), nil)
	}
}

// MatchesCategory reports whether any matcher in category matches the
// given key or string value.
func (t *Table) MatchesCategory(category, s string) bool {
	for _, m := range t.categories[category] {
		if m.MatchString(s) {
			return true
		}
	}
	return false
}

// MatchesNode reports whether any matcher in category matches the value.
func (t *Table) MatchesNode(category string, n tree.Node) bool {
	for _, m := range t.categories[category] {
		if m.MatchNode(n) {
			return true
		}
	}
	return false
}

// Categories returns the category names present in the table.
func (t *Table) Categories() []string {
	out := make([]string, 0, len(t.categories))
	for c := range t.categories {
		out = append(out, c)
	}
	return out
}

// RemoveKey reports whether key is dropped from objects unconditionally.
func (t *Table) RemoveKey(key string) bool { return t.removeKeys[key] }

// CSSKey reports whether key is a CSS-association key name.
func (t *Table) CSSKey(key string) bool { return t.cssKeys[key] }

// DOMTextValue reports whether s is a known DOM text-node noise string.
func (t *Table) DOMTextValue(s string) bool { return t.domTextValues[s] }

// StyleToken reports whether a single class token matches any CSS value
// pattern.
func (t *Table) StyleToken(token string) bool {
	for _, m := range t.styleTokens {
		if m.MatchString(token) {
			return true
		}
	}
	return false
}
