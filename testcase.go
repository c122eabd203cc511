package treetest

import "strings"

// TestCase is a test file after parsing: the name of the test, the
// code to feed the parser under test and the tree it should produce.
type TestCase struct {
	Name       string
	Code       string
	Expression Expression
}

// NewTestCase assembles a TestCase with the default decoder
func NewTestCase(node SyntaxNode) (*TestCase, error) {
	return (&Decoder{MaxDepth: DefaultMaxDepth}).TestCase(node)
}

// ParseTestCase parses `input` as a test file and assembles it with
// the default decoder
func ParseTestCase(input string) (*TestCase, error) {
	return (&Decoder{MaxDepth: DefaultMaxDepth}).ParseTestCase(input)
}

// ParseExpression parses and decodes a single S-expression with the
// default decoder
func ParseExpression(input string) (Expression, error) {
	return (&Decoder{MaxDepth: DefaultMaxDepth}).ParseExpression(input)
}

// ParseExpression parses and decodes a single S-expression.  The
// parser stops as soon as nesting goes past MaxDepth.
func (d *Decoder) ParseExpression(input string) (Expression, error) {
	node, err := d.parser(input).ParseSingleExpression()
	if err != nil {
		return nil, err
	}
	return d.Decode(node)
}

func (d *Decoder) ParseTestCase(input string) (*TestCase, error) {
	node, err := d.parser(input).Parse()
	if err != nil {
		return nil, err
	}
	return d.TestCase(node)
}

func (d *Decoder) parser(input string) *TestFileParser {
	p := NewTestFileParser(input)
	p.MaxDepth = d.MaxDepth
	return p
}

// TestCase reads the sections of a test case node in order: name,
// divider, code, divider and expression.
func (d *Decoder) TestCase(node SyntaxNode) (*TestCase, error) {
	sections := node.Children()
	next := func(rule Rule, missing string) (SyntaxNode, error) {
		if len(sections) == 0 {
			return nil, newModelError("missing %s", missing)
		}
		section := sections[0]
		sections = sections[1:]
		if err := expectRule(section, rule); err != nil {
			return nil, err
		}
		return section, nil
	}

	name, err := next(Rule_TestName, "test name")
	if err != nil {
		return nil, err
	}
	if _, err := next(Rule_Div, "divider"); err != nil {
		return nil, err
	}
	code, err := next(Rule_Code, "code")
	if err != nil {
		return nil, err
	}
	if _, err := next(Rule_Div, "divider"); err != nil {
		return nil, err
	}
	exprNode, err := next(Rule_Expression, "expression")
	if err != nil {
		return nil, err
	}
	expr, err := d.Decode(exprNode)
	if err != nil {
		return nil, err
	}
	return &TestCase{
		Name:       strings.TrimSpace(name.Text()),
		Code:       strings.TrimSpace(code.Text()),
		Expression: expr,
	}, nil
}
