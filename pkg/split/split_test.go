package split_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dom-json-toolkit/domtrim/pkg/split"
	"github.com/dom-json-toolkit/domtrim/pkg/tree"
)

func mustParse(t *testing.T, src string) tree.Node {
	t.Helper()
	node, err := tree.Parse([]byte(src))
	require.NoError(t, err)
	return node
}

func TestSplitSmallDocumentIsOneChunk(t *testing.T) {
	in := mustParse(t, `{"nodeName": "div", "children": [1, 2, 3]}`)

	chunks := split.New(1 << 20).Split(in)
	require.Len(t, chunks, 1)
	assert.True(t, tree.Equal(in, chunks[0]))
}

func TestSplitNonObjectPassesThrough(t *testing.T) {
	in := mustParse(t, `[1, 2, 3]`)
	chunks := split.New(4).Split(in)
	require.Len(t, chunks, 1)
	assert.True(t, tree.Equal(in, chunks[0]))
}

func TestSplitChildrenCarriesEnvelope(t *testing.T) {
	in := mustParse(t, `{
		"nodeName": "ul",
		"children": [
			{"text": "aaaaaaaaaaaaaaaaaaaa"},
			{"text": "bbbbbbbbbbbbbbbbbbbb"},
			{"text": "ccccccccccccccccccc"},
			{"text": "dddddddddddddddddddd"}
		]
	}`)

	budget := 100
	chunks := split.New(budget).Split(in)
	require.Greater(t, len(chunks), 1)

	var total int
	for _, c := range chunks {
		assert.LessOrEqual(t, tree.Size(c), budget)
		// Every chunk re-carries the envelope.
		name, ok := c.Field("nodeName")
		require.True(t, ok)
		assert.Equal(t, "ul", name.Str())
		children, ok := c.Field("children")
		require.True(t, ok)
		total += children.Len()
	}
	assert.Equal(t, 4, total)
}

func TestSplitNonPositiveBudgetDisablesSplitting(t *testing.T) {
	in := mustParse(t, `{"a": "hello", "children": [{"b": "world"}]}`)

	for _, budget := range []int{0, -1} {
		chunks := split.New(budget).Split(in)
		require.Len(t, chunks, 1)
		assert.True(t, tree.Equal(in, chunks[0]))
	}
}

func TestSplitLongStringWindows(t *testing.T) {
	long := strings.Repeat("x", 50)
	in := tree.Object(tree.Field{Key: "blob", Value: tree.String(long)})

	chunks := split.New(20).Split(in)
	require.Greater(t, len(chunks), 1)

	var rebuilt strings.Builder
	for _, c := range chunks {
		v, ok := c.Field("blob")
		require.True(t, ok)
		assert.LessOrEqual(t, len(v.Str()), 20)
		rebuilt.WriteString(v.Str())
	}
	assert.Equal(t, long, rebuilt.String())
}

func TestSplitStringKeepsRunesIntact(t *testing.T) {
	long := strings.Repeat("é", 30) // two bytes per rune
	in := tree.Object(tree.Field{Key: "blob", Value: tree.String(long)})

	chunks := split.New(15).Split(in)
	var rebuilt strings.Builder
	for _, c := range chunks {
		v, _ := c.Field("blob")
		assert.True(t, strings.ToValidUTF8(v.Str(), "") == v.Str(), "chunk holds invalid UTF-8")
		rebuilt.WriteString(v.Str())
	}
	assert.Equal(t, long, rebuilt.String())
}

func TestWriteChunks(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "chunks")
	chunks := []tree.Node{
		mustParse(t, `{"a": 1}`),
		mustParse(t, `{"b": 2}`),
	}

	manifest, err := split.WriteChunks(dir, chunks)
	require.NoError(t, err)

	assert.Equal(t, 2, manifest.ChunkCount)
	assert.NotEmpty(t, manifest.SetID)
	require.Len(t, manifest.Chunks, 2)
	assert.Equal(t, "chunk_1.json", manifest.Chunks[0].File)
	assert.Equal(t, manifest.Chunks[0].Bytes+manifest.Chunks[1].Bytes, manifest.TotalBytes)

	for _, c := range manifest.Chunks {
		_, err := os.Stat(filepath.Join(dir, c.File))
		assert.NoError(t, err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	require.NoError(t, err)
	var onDisk split.Manifest
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, manifest.SetID, onDisk.SetID)
}
