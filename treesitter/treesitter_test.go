package treesitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_json "github.com/tree-sitter/tree-sitter-json/bindings/go"

	"github.com/clarete/treetest"
)

func jsonLanguage() *sitter.Language {
	return sitter.NewLanguage(tree_sitter_json.Language())
}

func TestParseNamedOnly(t *testing.T) {
	expr, err := Parse(jsonLanguage(), []byte(`[1, null]`), true)
	require.NoError(t, err)

	expected := treetest.NewNonTerminal("document",
		treetest.NewNonTerminal("array",
			treetest.NewTerminalValue("number", "1"),
			treetest.NewTerminalValue("null", "null"),
		),
	)
	assert.True(t, treetest.Equal(expected, expr), "got %s", expr)
}

func TestParseAllNodes(t *testing.T) {
	expr, err := Parse(jsonLanguage(), []byte(`[1, null]`), false)
	require.NoError(t, err)
	assert.Equal(t, `(document
  (array
    ([: [)
    (number: 1)
    (,: ,)
    (null: null)
    (]: ])
  )
)`, expr.String())
}

func TestSingleChildIsNotCollapsed(t *testing.T) {
	source := []byte(`{"a": 1}`)
	expr, err := Parse(jsonLanguage(), source, true)
	require.NoError(t, err)

	// document > object > pair, each with a single named child
	document, ok := expr.(*treetest.NonTerminal)
	require.True(t, ok)
	require.Equal(t, 1, document.Len())
	object, ok := document.Child(0).(*treetest.NonTerminal)
	require.True(t, ok)
	assert.Equal(t, "object", object.Name())
	require.Equal(t, 1, object.Len())
	pair, ok := object.Child(0).(*treetest.NonTerminal)
	require.True(t, ok)
	assert.Equal(t, "pair", pair.Name())
}

func TestExpectationMatchesParserOutput(t *testing.T) {
	test, err := treetest.ParseTestCase(`Array
===
[true, "x"]
===
(document
  (array
    (true: "true")
    (string
      (string_content: "x"))))
`)
	require.NoError(t, err)

	expr, err := Parse(jsonLanguage(), []byte(test.Code), true)
	require.NoError(t, err)
	assert.Equal(t, test.Expression.String(), expr.String())
	assert.True(t, treetest.Equal(test.Expression, expr))
}
