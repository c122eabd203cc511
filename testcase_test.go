package treetest

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNonTerminal(t *testing.T, expr Expression, name string) []Expression {
	t.Helper()
	n, ok := expr.(*NonTerminal)
	require.True(t, ok, "expected non-terminal expression but found %s", expr)
	assert.Equal(t, name, n.Name())
	return n.Children()
}

func assertTerminal(t *testing.T, expr Expression, name string, value *string) {
	t.Helper()
	term, ok := expr.(*Terminal)
	require.True(t, ok, "expected terminal expression but found %s", expr)
	assert.Equal(t, name, term.Name())
	actual, hasValue := term.Value()
	if value == nil {
		assert.False(t, hasValue, "terminal has value %q but none was expected", actual)
		return
	}
	require.True(t, hasValue, "terminal has no value but %q was expected", *value)
	assert.Equal(t, *value, actual)
}

func str(s string) *string { return &s }

const functionTest = `My Test
=======
fn x() int {
  return 1;
}
=======
(source_file
  (function_definition
    (identifier: "x")
    (parameter_list)
    (primitive_type: "int")
    (block
      (return_statement
        (number: "1")
      )
    )
  )
)
`

func assertFunctionTest(t *testing.T, test *TestCase) {
	t.Helper()
	assert.Equal(t, "My Test", test.Name)
	assert.Equal(t, "fn x() int {\n  return 1;\n}", test.Code)

	children := assertNonTerminal(t, test.Expression, "source_file")
	require.Len(t, children, 1)
	children = assertNonTerminal(t, children[0], "function_definition")
	require.Len(t, children, 4)
	assertTerminal(t, children[0], "identifier", str("x"))
	assertTerminal(t, children[1], "parameter_list", nil)
	assertTerminal(t, children[2], "primitive_type", str("int"))
	children = assertNonTerminal(t, children[3], "block")
	require.Len(t, children, 1)
	children = assertNonTerminal(t, children[0], "return_statement")
	require.Len(t, children, 1)
	assertTerminal(t, children[0], "number", str("1"))

	assert.True(t, Equal(functionExpression(), test.Expression))
}

func TestParseTestCase(t *testing.T) {
	t.Run("compact", func(t *testing.T) {
		test, err := ParseTestCase(functionTest)
		require.NoError(t, err)
		assertFunctionTest(t, test)
	})

	t.Run("blank lines between sections", func(t *testing.T) {
		data, err := os.ReadFile("testdata/function.txt")
		require.NoError(t, err)
		test, err := ParseTestCase(string(data))
		require.NoError(t, err)
		assertFunctionTest(t, test)
	})

	t.Run("format what was parsed", func(t *testing.T) {
		test, err := ParseTestCase(functionTest)
		require.NoError(t, err)
		assert.Equal(t, `(source_file
  (function_definition
    (identifier: x)
    (parameter_list)
    (primitive_type: int)
    (block
      (return_statement
        (number: 1)
      )
    )
  )
)`, test.Expression.String())
	})

	t.Run("decoder settings apply", func(t *testing.T) {
		_, err := (&Decoder{MaxDepth: 3}).ParseTestCase(functionTest)
		require.Error(t, err)
		assert.Equal(t, "maximum expression depth 3 exceeded", err.Error())
	})

	t.Run("parsing errors come from the parser", func(t *testing.T) {
		_, err := ParseTestCase("My Test\n=======\n")
		require.Error(t, err)
		var parsingErr ParsingError
		assert.True(t, errors.As(err, &parsingErr))
	})
}

func TestParseExpression(t *testing.T) {
	expr, err := ParseExpression(`(a (b: "c") (d))`)
	require.NoError(t, err)
	assert.True(t, Equal(NewNonTerminal("a", NewTerminalValue("b", "c"), NewTerminal("d")), expr))

	_, err = ParseExpression(`(a`)
	require.Error(t, err)
}

func TestNewTestCase(t *testing.T) {
	t.Run("sections are trimmed", func(t *testing.T) {
		node := branch(Rule_TestCase,
			leaf(Rule_TestName, "  A name \t"),
			leaf(Rule_Div, "==="),
			leaf(Rule_Code, "\n\n  code\n"),
			leaf(Rule_Div, "==="),
			sexpr("a"),
		)
		test, err := NewTestCase(node)
		require.NoError(t, err)
		assert.Equal(t, "A name", test.Name)
		assert.Equal(t, "code", test.Code)
		assert.True(t, Equal(NewTerminal("a"), test.Expression))
	})

	for _, test := range []struct {
		Name          string
		Sections      []SyntaxNode
		ExpectedError string
	}{
		{
			Name:          "no sections",
			ExpectedError: "missing test name",
		},
		{
			Name:          "name only",
			Sections:      []SyntaxNode{leaf(Rule_TestName, "n")},
			ExpectedError: "missing divider",
		},
		{
			Name:          "no code",
			Sections:      []SyntaxNode{leaf(Rule_TestName, "n"), leaf(Rule_Div, "=")},
			ExpectedError: "missing code",
		},
		{
			Name:          "no second divider",
			Sections:      []SyntaxNode{leaf(Rule_TestName, "n"), leaf(Rule_Div, "="), leaf(Rule_Code, "c")},
			ExpectedError: "missing divider",
		},
		{
			Name: "no expression",
			Sections: []SyntaxNode{
				leaf(Rule_TestName, "n"), leaf(Rule_Div, "="), leaf(Rule_Code, "c"), leaf(Rule_Div, "="),
			},
			ExpectedError: "missing expression",
		},
		{
			Name:          "sections out of order",
			Sections:      []SyntaxNode{leaf(Rule_TestName, "n"), leaf(Rule_Code, "c")},
			ExpectedError: "expected rule div, found code in ",
		},
		{
			Name: "expression of the wrong kind",
			Sections: []SyntaxNode{
				leaf(Rule_TestName, "n"), leaf(Rule_Div, "="), leaf(Rule_Code, "c"), leaf(Rule_Div, "="), leaf(Rule_Code, "c"),
			},
			ExpectedError: "expected rule expression, found code in ",
		},
		{
			Name: "expression that doesn't decode",
			Sections: []SyntaxNode{
				leaf(Rule_TestName, "n"), leaf(Rule_Div, "="), leaf(Rule_Code, "c"), leaf(Rule_Div, "="),
				branch(Rule_Expression, leaf(Rule_Value, "v")),
			},
			ExpectedError: "missing rule name: expected rule rule_name, found rule_value in ",
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			tc, err := NewTestCase(branch(Rule_TestCase, test.Sections...))
			require.Error(t, err)
			assert.Nil(t, tc)

			var modelErr *ModelError
			require.True(t, errors.As(err, &modelErr))
			assert.Contains(t, err.Error(), test.ExpectedError)
		})
	}
}
