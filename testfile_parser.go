package treetest

import "fmt"

// TestFileParser splits a test file into its sections and parses the
// S-expression describing the expected tree:
//
//	My Test
//	=======
//	fn x() int { return 1; }
//	=======
//	(source_file
//	  (identifier: "x"))
//
// The output is a tree of *Node values typed with Rule.
type TestFileParser struct {
	BaseParser

	// MaxDepth is how many expressions can be nested within each
	// other before parsing stops.  Zero disables the check.
	MaxDepth int

	depth int
}

func NewTestFileParser(input string) *TestFileParser {
	p := &TestFileParser{MaxDepth: DefaultMaxDepth}
	p.SetInput([]rune(input))
	return p
}

// Parse kicks off parsing a whole test file
func (p *TestFileParser) Parse() (*Node, error) {
	node, err := p.ParseTestCase()
	if err != nil {
		return nil, asParsingError(err)
	}
	return node, nil
}

// ParseSingleExpression parses input that contains nothing but one
// expression, surrounded by optional spacing
func (p *TestFileParser) ParseSingleExpression() (*Node, error) {
	node, err := p.ParseExpression()
	if err != nil {
		return nil, asParsingError(err)
	}
	if err := p.parseEnd(); err != nil {
		return nil, asParsingError(err)
	}
	return node, nil
}

// GR: TestCase <- Spacing TestName Div Code Div Expression Spacing EOF
func (p *TestFileParser) ParseTestCase() (*Node, error) {
	p.ParseSpacing()
	start := p.Location()
	name, err := p.ParseTestName()
	if err != nil {
		return nil, p.Throw("Missing test name", start)
	}
	items := []*Node{name}
	for _, section := range []struct {
		parse   func() (*Node, error)
		missing string
	}{
		{p.ParseDiv, "Missing divider after test name"},
		{p.ParseCode, "Missing code"},
		{p.ParseDiv, "Missing divider after code"},
		{p.ParseExpression, "Missing expression"},
	} {
		pos := p.Location()
		node, err := section.parse()
		if err != nil {
			if isthrown(err) {
				return nil, err
			}
			p.Backtrack(pos)
			return nil, p.Throw(section.missing, pos)
		}
		items = append(items, node)
	}
	if err := p.parseEnd(); err != nil {
		return nil, err
	}
	return p.node(Rule_TestCase, items, start, p.Location()), nil
}

// GR: TestName <- (!NL .)+
func (p *TestFileParser) ParseTestName() (*Node, error) {
	start := p.Location()
	if _, err := OneOrMore(p, p.notNewLine); err != nil {
		return nil, err
	}
	end := p.Location()
	return p.node(Rule_TestName, nil, start, end), nil
}

// GR: Div <- Spacing '='+ (!NL Space)* (NL / EOF)
func (p *TestFileParser) ParseDiv() (*Node, error) {
	p.ParseSpacing()
	start := p.Location()
	if _, err := OneOrMore(p, p.ExpectRuneFn('=')); err != nil {
		return nil, err
	}
	end := p.Location()
	ZeroOrMore(p, func(p Parser) (rune, error) {
		return ChoiceRune(p, []rune{' ', '\t', '\r'})
	})
	if _, err := Choice(p, []ParserFn[rune]{
		p.ExpectRuneFn('\n'),
		func(p Parser) (rune, error) { return 0, p.(*TestFileParser).parseEOF() },
	}); err != nil {
		return nil, err
	}
	return p.node(Rule_Div, nil, start, end), nil
}

// GR: Code <- !Div (!(NL Div) .)*
func (p *TestFileParser) ParseCode() (*Node, error) {
	start := p.Location()
	if _, err := And(p, func(p Parser) (*Node, error) {
		return p.(*TestFileParser).ParseDiv()
	}); err == nil {
		return p.node(Rule_Code, nil, start, start), nil
	}
	if _, err := ZeroOrMore(p, func(p Parser) (rune, error) {
		if _, err := Not(p, func(p Parser) (*Node, error) {
			if _, err := p.ExpectRune('\n'); err != nil {
				return nil, err
			}
			return p.(*TestFileParser).ParseDiv()
		}); err != nil {
			return 0, err
		}
		return p.Any()
	}); err != nil {
		return nil, err
	}
	end := p.Location()
	return p.node(Rule_Code, nil, start, end), nil
}

// GR: Expression <- Spacing '(' Spacing RuleName Spacing (ValueStr / SubExpressions)? Spacing ')'
func (p *TestFileParser) ParseExpression() (*Node, error) {
	p.ParseSpacing()
	start := p.Location()
	if _, err := p.ExpectRune('('); err != nil {
		return nil, err
	}
	p.depth++
	defer func() { p.depth-- }()
	if p.MaxDepth > 0 && p.depth > p.MaxDepth {
		return nil, p.Throw(fmt.Sprintf("Maximum expression depth %d exceeded", p.MaxDepth), start)
	}
	p.ParseSpacing()
	name, err := p.ParseRuleName()
	if err != nil {
		return nil, p.Throw("Missing rule name", start)
	}
	items := []*Node{name}
	p.ParseSpacing()
	inner, err := Optional(p, func(p Parser) (*Node, error) {
		return Choice(p, []ParserFn[*Node]{
			func(p Parser) (*Node, error) { return p.(*TestFileParser).ParseValueStr() },
			func(p Parser) (*Node, error) { return p.(*TestFileParser).ParseSubExpressions() },
		})
	})
	if err != nil {
		return nil, err
	}
	if inner != nil {
		items = append(items, inner)
	}
	p.ParseSpacing()
	if _, err := p.ExpectRune(')'); err != nil {
		return nil, p.Throw(fmt.Sprintf("Expected ')' closing `%s`, got %s", name.Text(), quoteRune(p.Peek())), start)
	}
	end := p.Location()
	return p.node(Rule_Expression, items, start, end), nil
}

// GR: SubExpressions <- '(' Spacing ')' / Expression+
func (p *TestFileParser) ParseSubExpressions() (*Node, error) {
	start := p.Location()
	items, err := Choice(p, []ParserFn[[]*Node]{
		func(p Parser) ([]*Node, error) {
			if _, err := p.ExpectRune('('); err != nil {
				return nil, err
			}
			p.(*TestFileParser).ParseSpacing()
			if _, err := p.ExpectRune(')'); err != nil {
				return nil, err
			}
			return nil, nil
		},
		func(p Parser) ([]*Node, error) {
			return OneOrMore(p, func(p Parser) (*Node, error) {
				return p.(*TestFileParser).ParseExpression()
			})
		},
	})
	if err != nil {
		return nil, err
	}
	end := p.Location()
	return p.node(Rule_SubExpressions, items, start, end), nil
}

// GR: ValueStr <- ':' Spacing ('"' Value? '"')?
func (p *TestFileParser) ParseValueStr() (*Node, error) {
	start := p.Location()
	if _, err := p.ExpectRune(':'); err != nil {
		return nil, err
	}
	p.ParseSpacing()
	value, err := Optional(p, func(p Parser) (*Node, error) {
		return p.(*TestFileParser).parseQuoted()
	})
	if err != nil {
		return nil, err
	}
	var items []*Node
	if value != nil {
		items = append(items, value)
	}
	end := p.Location()
	return p.node(Rule_ValueStr, items, start, end), nil
}

// parseQuoted returns the Value node between the quotes, or nil when
// the string is empty
func (p *TestFileParser) parseQuoted() (*Node, error) {
	start := p.Location()
	if _, err := p.ExpectRune('"'); err != nil {
		return nil, err
	}
	value, err := Optional(p, func(p Parser) (*Node, error) {
		return p.(*TestFileParser).ParseValue()
	})
	if err != nil {
		return nil, err
	}
	if _, err := p.ExpectRune('"'); err != nil {
		return nil, p.Throw("Unterminated string", start)
	}
	return value, nil
}

// GR: Value <- ('\\' . / !'"' .)+
func (p *TestFileParser) ParseValue() (*Node, error) {
	start := p.Location()
	if _, err := OneOrMore(p, func(p Parser) (rune, error) {
		return Choice(p, []ParserFn[rune]{
			func(p Parser) (rune, error) {
				if _, err := p.ExpectRune('\\'); err != nil {
					return 0, err
				}
				return p.Any()
			},
			func(p Parser) (rune, error) {
				if _, err := Not(p, p.ExpectRuneFn('"')); err != nil {
					return 0, err
				}
				return p.Any()
			},
		})
	}); err != nil {
		return nil, err
	}
	end := p.Location()
	return p.node(Rule_Value, nil, start, end), nil
}

// GR: RuleName <- [a-zA-Z_] [a-zA-Z0-9_]*
func (p *TestFileParser) ParseRuleName() (*Node, error) {
	start := p.Location()
	if _, err := Choice(p, []ParserFn[rune]{
		p.ExpectRangeFn('a', 'z'),
		p.ExpectRangeFn('A', 'Z'),
		p.ExpectRuneFn('_'),
	}); err != nil {
		return nil, err
	}
	ZeroOrMore(p, func(p Parser) (rune, error) {
		return Choice(p, []ParserFn[rune]{
			p.ExpectRangeFn('a', 'z'),
			p.ExpectRangeFn('A', 'Z'),
			p.ExpectRangeFn('0', '9'),
			p.ExpectRuneFn('_'),
		})
	})
	end := p.Location()
	return p.node(Rule_RuleName, nil, start, end), nil
}

// GR: Spacing <- (' ' / '\t' / '\r' / '\n')*
func (p *TestFileParser) ParseSpacing() {
	ZeroOrMore(p, func(p Parser) (rune, error) {
		return ChoiceRune(p, []rune{' ', '\t', '\r', '\n'})
	})
}

func (p *TestFileParser) notNewLine(_ Parser) (rune, error) {
	if _, err := Not(p, p.ExpectRuneFn('\n')); err != nil {
		return 0, err
	}
	return p.Any()
}

func (p *TestFileParser) parseEOF() error {
	_, err := Not(p, func(p Parser) (rune, error) { return p.Any() })
	return err
}

// parseEnd consumes trailing spacing and fails if anything is left
func (p *TestFileParser) parseEnd() error {
	p.ParseSpacing()
	if err := p.parseEOF(); err != nil {
		return p.Throw(fmt.Sprintf("Unexpected %s after expression", quoteRune(p.Peek())), p.Location())
	}
	return nil
}

func (p *TestFileParser) node(rule Rule, items []*Node, start, end Location) *Node {
	return newSourceNode(rule, p.input, items, NewSpan(start, end))
}

// asParsingError turns a backtracking error that made it to the top
// level into the error returned to callers
func asParsingError(err error) error {
	if e, ok := err.(backtrackingError); ok {
		return ParsingError{Message: e.Message, Span: e.Span}
	}
	return err
}
