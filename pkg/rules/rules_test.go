package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dom-json-toolkit/domtrim/pkg/errors"
	"github.com/dom-json-toolkit/domtrim/pkg/rules"
	"github.com/dom-json-toolkit/domtrim/pkg/tree"
)

func TestDefaultTableBuilds(t *testing.T) {
	table := rules.Default()
	require.NotNil(t, table)
	assert.NotEmpty(t, table.Categories())
}

func TestFrameworkKeyPatterns(t *testing.T) {
	table := rules.Default()

	assert.True(t, table.MatchesCategory(rules.CategoryFrameworkKeys, "__reactFiber$abc"))
	assert.True(t, table.MatchesCategory(rules.CategoryFrameworkKeys, "_owner"))
	assert.True(t, table.MatchesCategory(rules.CategoryFrameworkKeys, "[object Object]"))
	assert.False(t, table.MatchesCategory(rules.CategoryFrameworkKeys, "owner"))
	assert.False(t, table.MatchesCategory(rules.CategoryFrameworkKeys, "_ownerName"))
}

func TestPatternsAnchorAtStart(t *testing.T) {
	table := rules.Default()

	// Prefix patterns extend past the match.
	assert.True(t, table.MatchesCategory(rules.CategoryStyleClasses, "text-lg"))
	assert.True(t, table.MatchesCategory(rules.CategoryStyleClasses, "flex-col"))
	// But a match may not start mid-string.
	assert.False(t, table.MatchesCategory(rules.CategoryFrameworkKeys, "prefix__react"))
}

func TestEncodedValuePattern(t *testing.T) {
	table := rules.Default()

	assert.True(t, table.MatchesCategory(rules.CategoryEncodedValues,
		"SGVsbG8gV29ybGQhIFRoaXMgaXMgYmFzZTY0=="))
	assert.False(t, table.MatchesCategory(rules.CategoryEncodedValues, "short=="))
	assert.False(t, table.MatchesCategory(rules.CategoryEncodedValues,
		"this has spaces so it is not base64 at all"))
}

func TestStyleToken(t *testing.T) {
	table := rules.Default()

	for _, tok := range []string{"p-4", "mx-2.5", "flex", "flex-col", "grid", "hidden", "gap-1", "space-x-4"} {
		assert.True(t, table.StyleToken(tok), tok)
	}
	for _, tok := range []string{"Hello", "p-", "flexible", "gridlock", "button"} {
		assert.False(t, table.StyleToken(tok), tok)
	}
}

func TestKeySets(t *testing.T) {
	table := rules.Default()

	assert.True(t, table.RemoveKey("viewBox"))
	assert.True(t, table.RemoveKey("height"))
	assert.False(t, table.RemoveKey("nodeName"))

	assert.True(t, table.CSSKey("className"))
	assert.True(t, table.CSSKey("style"))
	assert.False(t, table.CSSKey("text"))

	assert.True(t, table.DOMTextValue("#text"))
	assert.True(t, table.DOMTextValue("fulfilled"))
	assert.False(t, table.DOMTextValue("Hello"))
}

func TestLiteralMatchers(t *testing.T) {
	table := rules.Default()

	assert.True(t, table.MatchesNode(rules.CategoryTechnicalValues, tree.Null()))
	assert.True(t, table.MatchesNode(rules.CategoryTechnicalValues, tree.Bool(true)))
	assert.True(t, table.MatchesNode(rules.CategoryTechnicalValues, tree.Object()))
	assert.True(t, table.MatchesNode(rules.CategoryTechnicalValues, tree.Array()))
	assert.True(t, table.MatchesNode(rules.CategoryTechnicalValues, tree.String("undefined")))
	assert.False(t, table.MatchesNode(rules.CategoryTechnicalValues, tree.String("content")))

	attr := tree.Object(tree.Field{Key: "display", Value: tree.String("none")})
	assert.True(t, table.MatchesNode(rules.CategoryHTMLAttributes, attr))
}

func TestBuildRejectsInvalidPattern(t *testing.T) {
	_, err := rules.Build(rules.Source{
		rules.CategoryCSSValues: {`(unclosed`},
	})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrConfig))
}

func TestBuildRejectsBadEntry(t *testing.T) {
	_, err := rules.Build(rules.Source{
		"custom": {func() {}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrConfig))
}

func TestLoadReaderYAML(t *testing.T) {
	src := `
css_keys:
  - className
  - style
css_values:
  - "^x-[0-9]+$"
remove_keys:
  - junk
dom_text_values:
  - "#noise"
`
	table, err := rules.LoadReader(strings.NewReader(src))
	require.NoError(t, err)

	assert.True(t, table.CSSKey("className"))
	assert.True(t, table.StyleToken("x-12"))
	assert.False(t, table.StyleToken("p-4")) // custom table replaces defaults
	assert.True(t, table.RemoveKey("junk"))
	assert.True(t, table.DOMTextValue("#noise"))
}

func TestLoadReaderJSON(t *testing.T) {
	src := `{"css_keys": ["style"], "technical_values": [null, true, 0, ""]}`
	table, err := rules.LoadReader(strings.NewReader(src))
	require.NoError(t, err)

	assert.True(t, table.CSSKey("style"))
	assert.True(t, table.MatchesNode(rules.CategoryTechnicalValues, tree.Bool(true)))
}

func TestLoadReaderRejectsWrongShape(t *testing.T) {
	_, err := rules.LoadReader(strings.NewReader(`css_keys: notalist`))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrConfig))
}
