package finder_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dom-json-toolkit/domtrim/pkg/finder"
	"github.com/dom-json-toolkit/domtrim/pkg/tree"
)

func mustParse(t *testing.T, src string) tree.Node {
	t.Helper()
	node, err := tree.Parse([]byte(src))
	require.NoError(t, err)
	return node
}

func TestFindGroupsIdenticalValues(t *testing.T) {
	in := mustParse(t, `{
		"a": {"target": {"x": 1, "y": 2}},
		"b": [{"target": {"y": 2, "x": 1}}],
		"c": {"target": {"x": 9}}
	}`)

	rep := finder.Find(in, []string{"target"})
	require.Equal(t, 3, rep.Total("target"))

	groups := rep.Groups["target"]
	require.Len(t, groups, 2)

	// Key order differences do not separate identical objects.
	assert.Equal(t, 2, groups[0].Count())
	assert.Equal(t, []string{"a/target", "b/0/target"}, groups[0].Paths)

	assert.Equal(t, 1, groups[1].Count())
	assert.Equal(t, []string{"c/target"}, groups[1].Paths)
}

func TestFindSearchesInsideMatches(t *testing.T) {
	in := mustParse(t, `{"outer": {"inner": 1, "outer": {"inner": 2}}}`)

	rep := finder.Find(in, []string{"outer"})
	assert.Equal(t, 2, rep.Total("outer"))
}

func TestFindMissingKey(t *testing.T) {
	rep := finder.Find(mustParse(t, `{"a": 1}`), []string{"nope"})
	assert.Equal(t, 0, rep.Total("nope"))
}

func TestPrintReport(t *testing.T) {
	in := mustParse(t, `{"a": {"id": 7}, "b": {"id": 7}}`)
	rep := finder.Find(in, []string{"id", "ghost"})

	var buf bytes.Buffer
	rep.Print(&buf)
	out := buf.String()

	assert.Contains(t, out, `Found 2 total instance(s) of "id"`)
	assert.Contains(t, out, "Unique Object 1 (found 2 times)")
	assert.Contains(t, out, "- a/id")
	assert.Contains(t, out, "- b/id")
	assert.Contains(t, out, `No instances of "ghost" found.`)
}
