package treetest

import "fmt"

const eof = -1

// BaseParser holds the cursor over the input runes and implements the
// primitive matchers the combinators in parser.go are built on.
type BaseParser struct {
	cursor int
	line   int
	column int
	input  []rune
}

// SetInput replaces the input and rewinds the cursor
func (p *BaseParser) SetInput(input []rune) {
	p.input = input
	p.cursor, p.line, p.column = 0, 0, 0
}

// Location returns in which line/column/cursor the parser's input is currently in
func (p BaseParser) Location() Location {
	return Location{
		Line:   p.line,
		Column: p.column,
		Cursor: p.cursor,
	}
}

// Peek returns the character under the input cursor, or eof if the entire input has been consumed
func (p *BaseParser) Peek() rune {
	if p.cursor >= len(p.input) {
		return eof
	}
	return p.input[p.cursor]
}

// Backtrack resets the internal parser state to the Location l
func (p *BaseParser) Backtrack(l Location) {
	p.cursor = l.Cursor
	p.line = l.Line
	p.column = l.Column
}

func (p *BaseParser) ExpectRune(v rune) (rune, error) {
	c := p.Peek()
	if c == v {
		return p.Any()
	}
	return 0, p.NewError(fmt.Sprintf("Expected %s, got %s", quoteRune(v), quoteRune(c)))
}

func (p *BaseParser) ExpectRuneFn(v rune) ParserFn[rune] {
	return func(p Parser) (rune, error) { return p.ExpectRune(v) }
}

func (p *BaseParser) ExpectRange(l, r rune) (rune, error) {
	c := p.Peek()
	if c >= l && c <= r {
		return p.Any()
	}
	return 0, p.NewError(fmt.Sprintf("Expected char between %s and %s, got %s", quoteRune(l), quoteRune(r), quoteRune(c)))
}

func (p *BaseParser) ExpectRangeFn(l, r rune) ParserFn[rune] {
	return func(p Parser) (rune, error) { return p.ExpectRange(l, r) }
}

func (p *BaseParser) NewError(msg string) error {
	l := p.Location()
	return backtrackingError{Message: msg, Span: NewSpan(l, l)}
}

// Throw returns an error that can't be caught by the backtracking
// operators and will stop the parser right away
func (p *BaseParser) Throw(msg string, start Location) error {
	return ParsingError{Message: msg, Span: NewSpan(start, p.Location())}
}

// Any matches any rune under the input cursor, and will throw an error on EOF
func (p *BaseParser) Any() (rune, error) {
	c := p.Peek()
	if c == eof {
		return 0, p.NewError("Unexpected EOF")
	}
	p.cursor++
	p.column++
	if c == '\n' {
		p.column = 0
		p.line++
	}
	return c, nil
}

func quoteRune(r rune) string {
	if r == eof {
		return "EOF"
	}
	return fmt.Sprintf("%q", r)
}
