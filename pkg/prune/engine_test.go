package prune_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dom-json-toolkit/domtrim/pkg/prune"
	"github.com/dom-json-toolkit/domtrim/pkg/rules"
	"github.com/dom-json-toolkit/domtrim/pkg/tree"
)

func mustParse(t *testing.T, src string) tree.Node {
	t.Helper()
	node, err := tree.Parse([]byte(src))
	require.NoError(t, err)
	return node
}

func TestShouldPruneScalars(t *testing.T) {
	e := prune.New(nil)

	tests := []struct {
		name string
		node tree.Node
		key  string
		want bool
	}{
		{"null", tree.Null(), "", true},
		{"empty string", tree.String(""), "", true},
		{"empty array", tree.Array(), "", true},
		{"empty object", tree.Object(), "", true},
		{"bool true", tree.Bool(true), "", true},
		{"bool false", tree.Bool(false), "", true},
		{"number", tree.Number("42"), "", true},
		{"zero", tree.Number("0"), "", true},
		{"dom text marker", tree.String("#text"), "", true},
		{"comment marker", tree.String("#comment"), "", true},
		{"padded marker", tree.String("  #text  "), "", true},
		{"null string", tree.String("NULL"), "", true},
		{"undefined string", tree.String("Undefined"), "", true},
		{"real content", tree.String("Hello world, actual text"), "", false},
		{"single class token", tree.String("some-token"), "", false},
		{"nonempty object", tree.Object(tree.Field{Key: "a", Value: tree.Bool(true)}), "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, e.ShouldPrune(tc.node, tc.key))
		})
	}
}

func TestNodeNameIsProtected(t *testing.T) {
	e := prune.New(nil)

	// Even values that would always prune survive under nodeName.
	assert.False(t, e.ShouldPrune(tree.Null(), "nodeName"))
	assert.False(t, e.ShouldPrune(tree.Bool(true), "nodeName"))
	assert.False(t, e.ShouldPrune(tree.String("#text"), "nodeName"))
}

func TestAllOrNothingClassPruning(t *testing.T) {
	e := prune.New(nil)

	// Every token a style class: the whole string goes.
	assert.True(t, e.ShouldPrune(tree.String("flex p-4 gap-2"), ""))
	// One real token preserves the entire string.
	assert.False(t, e.ShouldPrune(tree.String("flex p-4 submit-button"), ""))
	assert.False(t, e.ShouldPrune(tree.String("Hello world"), ""))
}

func TestRunSoleNodeNameCollapses(t *testing.T) {
	e := prune.New(nil)

	res := e.Run(mustParse(t, `{"nodeName": "div"}`), 10)
	assert.True(t, res.Absent)
	assert.True(t, res.Converged)
}

func TestRunDropsCSSKeyAndKeepsText(t *testing.T) {
	e := prune.New(nil)

	res := e.Run(mustParse(t, `{"nodeName": "div", "className": "flex p-4", "text": "Hello"}`), 10)
	require.False(t, res.Absent)
	assert.Equal(t, `{"nodeName":"div","text":"Hello"}`,
		tree.EncodeString(res.Tree, tree.Compact))
}

func TestRunRemovesBooleanAndNumberLeaves(t *testing.T) {
	e := prune.New(nil)

	in := mustParse(t, `{"a": true, "b": 0, "c": "real content with enough length to not look like noise at all"}`)
	res := e.Run(in, 10)
	require.False(t, res.Absent)
	assert.Equal(t,
		`{"c":"real content with enough length to not look like noise at all"}`,
		tree.EncodeString(res.Tree, tree.Compact))
	assert.Equal(t, 1, res.Passes)
	assert.True(t, res.Converged)
}

func TestRunAllPrunableListIsAbsent(t *testing.T) {
	e := prune.New(nil)

	res := e.Run(mustParse(t, `[{}, [], null, "#text"]`), 10)
	assert.True(t, res.Absent)
}

func TestRunZeroPassesIsIdentity(t *testing.T) {
	e := prune.New(nil)

	in := mustParse(t, `{"a": true, "nodeName": "div"}`)
	res := e.Run(in, 0)
	require.False(t, res.Absent)
	assert.True(t, tree.Equal(in, res.Tree))
	assert.Equal(t, 0, res.Passes)
	assert.False(t, res.Converged)
}

func TestRunRemoveKeys(t *testing.T) {
	e := prune.New(nil)

	in := mustParse(t, `{"nodeName": "svg", "viewBox": "0 0 24 24", "fill": "currentColor", "title": "an icon that matters"}`)
	res := e.Run(in, 10)
	require.False(t, res.Absent)
	assert.Equal(t, `{"nodeName":"svg","title":"an icon that matters"}`,
		tree.EncodeString(res.Tree, tree.Compact))
}

func TestRunCascadingCollapse(t *testing.T) {
	e := prune.New(nil)

	// Post-order recursion collapses a pure nesting chain bottom-up
	// within a single pass.
	in := mustParse(t, `{"wrapper": {"child": {"nodeName": "span"}}}`)
	res := e.Run(in, 10)
	assert.True(t, res.Absent)
	assert.True(t, res.Converged)
	assert.Equal(t, 1, res.Passes)
}

func TestRunMultiPassConvergence(t *testing.T) {
	e := prune.New(nil)

	// Dropping "t" leaves the inner node sole-nodeName only on the next
	// pass, and its disappearance exposes the outer node one pass later
	// again: three changing passes to the fixed point.
	in := mustParse(t, `{"w1": {"nodeName": "b", "inner": {"nodeName": "a", "t": "#text"}}}`)
	res := e.Run(in, 10)
	assert.True(t, res.Absent)
	assert.True(t, res.Converged)
	assert.Equal(t, 3, res.Passes)
}

func TestIdempotenceAtFixedPoint(t *testing.T) {
	e := prune.New(nil)

	in := mustParse(t, `{
		"nodeName": "main",
		"children": [
			{"nodeName": "div", "className": "flex p-4"},
			{"nodeName": "p", "text": "Some article text worth keeping around"},
			{"a": true, "b": []}
		],
		"meta": {"index": 3, "visible": false}
	}`)
	res := e.Run(in, 100)
	require.True(t, res.Converged)
	require.False(t, res.Absent)

	again := e.Run(res.Tree, 100)
	require.False(t, again.Absent)
	assert.True(t, tree.Equal(res.Tree, again.Tree))
	assert.Equal(t, 0, again.Passes)
	assert.True(t, again.Converged)
}

func TestMonotonicShrink(t *testing.T) {
	e := prune.New(nil)

	in := mustParse(t, `{
		"nodeName": "body",
		"children": [
			{"nodeName": "div", "className": "grid gap-2", "children": [{"nodeName": "span"}]},
			{"nodeName": "section", "text": "long enough content to survive every pass", "index": 9}
		]
	}`)

	prevSize := tree.Size(in)
	for passes := 1; passes <= 6; passes++ {
		res := e.Run(in, passes)
		if res.Absent {
			break
		}
		size := tree.Size(res.Tree)
		assert.LessOrEqual(t, size, prevSize, "pass %d grew the tree", passes)
		prevSize = size
	}
}

func TestTerminationWithinCeiling(t *testing.T) {
	e := prune.New(nil)

	in := mustParse(t, `{"w1": {"nodeName": "b", "inner": {"nodeName": "a", "t": "#text"}}}`)
	res := e.Run(in, 2)
	// The cascade needs three changing passes; with a ceiling of two the
	// result is still a normal annotated outcome, not an error.
	assert.False(t, res.Converged)
	assert.Equal(t, 2, res.Passes)
}

func TestRunContextCancellation(t *testing.T) {
	e := prune.New(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.RunContext(ctx, mustParse(t, `{"a": true}`), 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCustomTable(t *testing.T) {
	table, err := rules.Build(rules.Source{
		rules.CategoryRemoveKeys:    {"secret"},
		rules.CategoryCSSKeys:       {},
		rules.CategoryCSSValues:     {},
		rules.CategoryDOMTextValues: {"IGNORED"},
	})
	require.NoError(t, err)
	e := prune.New(table)

	res := e.Run(mustParse(t, `{"secret": "value that would otherwise stay", "note": "IGNORED", "keep": "ordinary text"}`), 10)
	require.False(t, res.Absent)
	assert.Equal(t, `{"keep":"ordinary text"}`,
		tree.EncodeString(res.Tree, tree.Compact))
}

func TestEngineSharedAcrossTrees(t *testing.T) {
	// One engine, concurrent runs on independent trees. Parsing happens
	// here so the goroutines never touch require.
	e := prune.New(nil)
	in := mustParse(t, `{"nodeName": "div", "x": true}`)
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			res := e.Run(in.Clone(), 10)
			assert.True(t, res.Absent)
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
}
