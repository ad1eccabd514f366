// Copyright 2026 DOM JSON Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package rules

// DefaultSource returns the built-in rule data: the accumulated noise
// inventory of serialized DOM snapshots (framework internals, feature
// flags, utility class strings, boilerplate metadata). A custom rule file
// replaces this wholesale, it is not merged.
func DefaultSource() Source {
	return Source{
		CategoryFrameworkKeys: {
			`^__react`,
			`^_owner$`,
			`^_payload$`,
			`^_response$`,
			`^_chunks$`,
			`^_stringDecoder$`,
			`^\[object\s.*\]$`,
		},
		CategoryFeatureFlagKeys: {
			"console_supported",
			"claudeai_supported",
			"phone_verification_supported",
			"stripe_address_supported",
			"mm_pdf",
		},
		CategoryTechnicalKeys: {
			"rule_id",
			"group",
			"value",
			"name", // only noise alongside rule_id/group
			"props",
			"type",
			"index",
		},
		CategoryEncodedKeys: {
			`^[A-Za-z0-9+/]{20,}={0,2}$`,
		},
		CategoryStyleClasses: {
			`^(flex|grid|text-|bg-|p-|m-|gap-|border-|rounded-|shadow-|transition-|overflow-)`,
			`(sm|md|lg|xl|2xl)$`,
		},
		CategoryHTMLAttributes: {
			map[string]interface{}{"height": "0"},
			map[string]interface{}{"width": "0"},
			map[string]interface{}{"display": "none"},
			map[string]interface{}{"visibility": "hidden"},
			"noscript",
			"iframe",
		},
		CategoryTechnicalMetadata: {
			"undefined",
			"null",
			"[object Object]",
			"_owner",
			"__reactFiber",
			"__reactProps",
			"console_supported",
			"claudeai_supported",
			"phone_verification_supported",
			"stripe_address_supported",
		},
		CategoryEmptyTechnical: {
			map[string]interface{}{"props": map[string]interface{}{}},
			map[string]interface{}{"_chunks": map[string]interface{}{}},
			map[string]interface{}{"_stringDecoder": map[string]interface{}{}},
		},
		CategoryTechnicalValues: {
			nil,
			[]interface{}{},
			map[string]interface{}{},
			"",
			false,
			"undefined",
			"null",
			"[object Object]",
			true, // boolean flags like console_supported=true
			0,    // zero dimensions
			"0",
		},
		CategoryFrameworkValues: {
			`^__react`,
			`^\[object\s.*\]$`,
			`^_[a-zA-Z]+`,
		},
		CategoryEncodedValues: {
			`^[A-Za-z0-9+/]{20,}={0,2}$`,
		},
		CategoryCSSKeys: {
			"className",
			"style",
			"css",
			"tailwind",
		},
		CategoryCSSValues: {
			`^(mx|my|px|py|m|p|gap)-[0-9\.]+$`,
			`^flex(-[a-z]+)*$`,
			`^grid(-[a-z]+)*$`,
			`^(block|inline|hidden)$`,
			`^(mb|mt|ml|mr)-[0-9\.]+$`,
			`^space-(x|y)-[0-9\.]+$`,
			`^gap-[0-9\.]+$`,
		},
		CategoryRemoveKeys: {
			"height",
			"width",
			"constructor",
			"fill",
			"viewBox",
		},
		CategoryDOMTextValues: {
			"#text",
			"#comment",
			"fulfilled",
			"[object Object]",
			"UnserializableObject",
			"\n",
			"LINK",
			"default",
		},
	}
}

// Default builds the built-in table. The default rule data always
// compiles; a failure here is a programming error.
func Default() *Table {
	t, err := Build(DefaultSource())
	if err != nil {
		panic("rules: default table failed to build: " + err.Error())
	}
	return t
}
