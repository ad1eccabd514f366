package tree

import "strconv"

// Visitor receives each node during a Walk together with the /-joined
// path of keys and array indices leading to it. The root path is "".
type Visitor func(path string, key string, node Node)

// Walk traverses the tree depth-first in document order, calling v for
// every node. For object values key is the field name; for array elements
// and the root it is empty.
func Walk(node Node, v Visitor) {
	walk(node, "", "", v)
}

func walk(node Node, path, key string, v Visitor) {
	v(path, key, node)
	switch node.kind {
	case KindObject:
		for _, f := range node.fields {
			walk(f.Value, joinPath(path, f.Key), f.Key, v)
		}
	case KindArray:
		for i, e := range node.elems {
			walk(e, joinPath(path, strconv.Itoa(i)), "", v)
		}
	}
}

func joinPath(path, seg string) string {
	if path == "" {
		return seg
	}
	return path + "/" + seg
}
