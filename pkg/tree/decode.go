// Copyright 2026 DOM JSON Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dom-json-toolkit/domtrim/pkg/errors"
)

// Parse decodes a single JSON document into a Node, preserving object
// field order. Malformed input yields an ErrParse error with a
// line:column location.
func Parse(data []byte) (Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	node, err := parseValue(dec)
	if err != nil {
		return Node{}, parseErr(data, dec, err)
	}

	// Anything after the document is an error.
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected data after top-level value")
		}
		return Node{}, parseErr(data, dec, err)
	}
	return node, nil
}

// Decode reads all of r and parses it as one JSON document.
func Decode(r io.Reader) (Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Node{}, errors.IOError("reading input", err)
	}
	return Parse(data)
}

func parseValue(dec *json.Decoder) (Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return Node{}, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return Node{}, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case string:
		return String(t), nil
	case json.Number:
		return Number(t.String()), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return Node{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func parseObject(dec *json.Decoder) (Node, error) {
	var fields []Field
	seen := map[string]int{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Node{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Node{}, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		val, err := parseValue(dec)
		if err != nil {
			return Node{}, err
		}
		// Duplicate keys keep the last value, in the original position.
		if idx, dup := seen[key]; dup {
			fields[idx].Value = val
			continue
		}
		seen[key] = len(fields)
		fields = append(fields, Field{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return Node{}, err
	}
	return Object(fields...), nil
}

func parseArray(dec *json.Decoder) (Node, error) {
	var elems []Node
	for dec.More() {
		val, err := parseValue(dec)
		if err != nil {
			return Node{}, err
		}
		elems = append(elems, val)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return Node{}, err
	}
	return Array(elems...), nil
}

// parseErr wraps a decoder error with the line and column of the offset
// where decoding stopped.
func parseErr(data []byte, dec *json.Decoder, err error) error {
	offset := dec.InputOffset()
	if syn, ok := err.(*json.SyntaxError); ok {
		offset = syn.Offset
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, col := lineCol(data, offset)
	return errors.ParseError("invalid JSON", line, col, err)
}

func lineCol(data []byte, offset int64) (line, col int) {
	line, col = 1, 1
	for i := int64(0); i < offset && i < int64(len(data)); i++ {
		if data[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
