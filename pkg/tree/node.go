// Package tree implements the JSON-like document model shared by all
// domtrim tools: a closed tagged-variant node type with an order-preserving
// object representation, plus the codec that reads and writes it.
package tree

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/dom-json-toolkit/domtrim/pkg/errors"
)

// Kind identifies the shape of a Node.
type Kind int

const (
	// KindNull is the JSON null value.
	KindNull Kind = iota
	// KindBool is a JSON boolean.
	KindBool
	// KindNumber is a JSON number, kept as its literal text.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindArray is a JSON array.
	KindArray
	// KindObject is a JSON object with field order preserved.
	KindObject
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field is one key/value pair of an object node.
type Field struct {
	Key   string
	Value Node
}

// Node is one value in a document tree. The zero value is null.
type Node struct {
	kind   Kind
	str    string // string value, or number literal
	b      bool
	elems  []Node
	fields []Field
}

// Null returns the null node.
func Null() Node { return Node{kind: KindNull} }

// Bool returns a boolean node.
func Bool(v bool) Node { return Node{kind: KindBool, b: v} }

// String returns a string node.
func String(v string) Node { return Node{kind: KindString, str: v} }

// Number returns a number node from a JSON number literal.
// The literal is not validated; use FromFloat for computed values.
func Number(literal string) Node { return Node{kind: KindNumber, str: literal} }

// FromFloat returns a number node, rejecting non-finite values which have
// no JSON representation.
func FromFloat(v float64) (Node, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Node{}, errors.UnsupportedValue(fmt.Sprintf("non-finite number %v", v))
	}
	return Number(formatFloat(v)), nil
}

// Array returns an array node holding the given elements.
func Array(elems ...Node) Node {
	return Node{kind: KindArray, elems: elems}
}

// Object returns an object node holding the given fields in order.
func Object(fields ...Field) Node {
	return Node{kind: KindObject, fields: fields}
}

// Kind reports the node's shape.
func (n Node) Kind() Kind { return n.kind }

// IsScalar reports whether the node is null, bool, number, or string.
func (n Node) IsScalar() bool {
	return n.kind == KindNull || n.kind == KindBool || n.kind == KindNumber || n.kind == KindString
}

// Str returns the string value of a string node, or the literal of a
// number node.
func (n Node) Str() string { return n.str }

// BoolValue returns the value of a boolean node.
func (n Node) BoolValue() bool { return n.b }

// NumberValue returns the number literal as a json.Number.
func (n Node) NumberValue() json.Number { return json.Number(n.str) }

// Len returns the element count of an array or the field count of an
// object; zero for scalars.
func (n Node) Len() int {
	switch n.kind {
	case KindArray:
		return len(n.elems)
	case KindObject:
		return len(n.fields)
	default:
		return 0
	}
}

// Elems returns the elements of an array node. The caller must not mutate
// the returned slice.
func (n Node) Elems() []Node { return n.elems }

// Fields returns the fields of an object node in document order. The
// caller must not mutate the returned slice.
func (n Node) Fields() []Field { return n.fields }

// Field looks up a key in an object node.
func (n Node) Field(key string) (Node, bool) {
	for _, f := range n.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Node{}, false
}

// Clone returns a deep copy of the node.
func (n Node) Clone() Node {
	out := n
	switch n.kind {
	case KindArray:
		out.elems = make([]Node, len(n.elems))
		for i, e := range n.elems {
			out.elems[i] = e.Clone()
		}
	case KindObject:
		out.fields = make([]Field, len(n.fields))
		for i, f := range n.fields {
			out.fields[i] = Field{Key: f.Key, Value: f.Value.Clone()}
		}
	}
	return out
}

// Equal reports deep structural equality. Object field order is
// significant for nothing but rendering, so fields are compared by key.
func Equal(a, b Node) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber, KindString:
		return a.str == b.str
	case KindArray:
		if len(a.elems) != len(b.elems) {
			return false
		}
		for i := range a.elems {
			if !Equal(a.elems[i], b.elems[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.fields) != len(b.fields) {
			return false
		}
		bf := make(map[string]Node, len(b.fields))
		for _, f := range b.fields {
			bf[f.Key] = f.Value
		}
		for _, f := range a.fields {
			v, ok := bf[f.Key]
			if !ok || !Equal(f.Value, v) {
				return false
			}
		}
		return true
	}
	return false
}

// FromGo converts an encoding/json-shaped Go value (map[string]any, []any,
// string, float64, json.Number, bool, nil) into a Node. Map keys are
// emitted in sorted order since Go maps carry none. Values outside the
// data model surface an UnsupportedValue error.
func FromGo(v interface{}) (Node, error) {
	switch val := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case json.Number:
		return Number(val.String()), nil
	case float64:
		return FromFloat(val)
	case int:
		return Number(fmt.Sprintf("%d", val)), nil
	case int64:
		return Number(fmt.Sprintf("%d", val)), nil
	case []interface{}:
		elems := make([]Node, 0, len(val))
		for _, e := range val {
			n, err := FromGo(e)
			if err != nil {
				return Node{}, err
			}
			elems = append(elems, n)
		}
		return Array(elems...), nil
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]Field, 0, len(keys))
		for _, k := range keys {
			n, err := FromGo(val[k])
			if err != nil {
				return Node{}, err
			}
			fields = append(fields, Field{Key: k, Value: n})
		}
		return Object(fields...), nil
	default:
		return Node{}, errors.UnsupportedValue(fmt.Sprintf("unrepresentable value of type %T", v))
	}
}
