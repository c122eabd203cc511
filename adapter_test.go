package treetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arena is a parse tree that refers to its nodes by index, the way
// parsers that keep all nodes in a flat slice do
type arena struct {
	names    []string
	texts    []string
	children [][]int
}

func (a *arena) add(name, text string, children ...int) int {
	a.names = append(a.names, name)
	a.texts = append(a.texts, text)
	a.children = append(a.children, children)
	return len(a.names) - 1
}

func (a *arena) Name(id int) string    { return a.names[id] }
func (a *arena) Text(id int) string    { return a.texts[id] }
func (a *arena) Children(id int) []int { return a.children[id] }

func TestAdaptTree(t *testing.T) {
	t.Run("leaf becomes a valued terminal", func(t *testing.T) {
		a := &arena{}
		root := a.add("number", "42")
		expr := AdaptTree[int](a, root)
		assert.True(t, Equal(NewTerminalValue("number", "42"), expr))
	})

	t.Run("leaf that matched nothing still has a value", func(t *testing.T) {
		a := &arena{}
		root := a.add("empty", "")
		expr := AdaptTree[int](a, root)
		term, ok := expr.(*Terminal)
		require.True(t, ok)
		value, hasValue := term.Value()
		assert.True(t, hasValue)
		assert.Equal(t, "", value)
	})

	t.Run("single child is not collapsed", func(t *testing.T) {
		a := &arena{}
		number := a.add("number", "1")
		root := a.add("expression", "1", number)
		expr := AdaptTree[int](a, root)
		n, ok := expr.(*NonTerminal)
		require.True(t, ok, "expected *NonTerminal, got %T", expr)
		require.Equal(t, 1, n.Len())
		assert.True(t, Equal(NewTerminalValue("number", "1"), n.Child(0)))
	})

	t.Run("children keep their order", func(t *testing.T) {
		a := &arena{}
		left := a.add("number", "1")
		op := a.add("plus", "+")
		right := a.add("number", "2")
		sum := a.add("sum", "1+2", left, op, right)
		root := a.add("program", "1+2", sum)

		expected := NewNonTerminal("program",
			NewNonTerminal("sum",
				NewTerminalValue("number", "1"),
				NewTerminalValue("plus", "+"),
				NewTerminalValue("number", "2"),
			),
		)
		expr := AdaptTree[int](a, root)
		assert.True(t, Equal(expected, expr), "got %s", expr)
		assert.Equal(t, 3, Depth[int](a, root))
		assert.Equal(t, 1, Depth[int](a, left))
	})
}

func TestAdaptParsedNodes(t *testing.T) {
	node, err := NewTestFileParser(`(a: "x")`).ParseSingleExpression()
	require.NoError(t, err)

	expr := Adapt(node)
	assert.Equal(t, `(expression
  (rule_name: a)
  (rule_value_str
    (rule_value: x)
  )
)`, expr.String())
	assert.Equal(t, 3, Depth[*Node](parseNodeTree[*Node]{}, node))
}
