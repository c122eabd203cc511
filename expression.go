package treetest

import (
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Expression is a syntax tree in the shape both the hand written
// expectations and the parser output get converted to.  The only
// implementations are *Terminal and *NonTerminal.
type Expression interface {
	Name() string
	String() string

	isExpression()
}

// Terminal is a leaf.  It may or may not carry a value, and an empty
// value is not the same as no value at all.
type Terminal struct {
	name     string
	value    string
	hasValue bool
}

func NewTerminal(name string) *Terminal {
	return &Terminal{name: name}
}

func NewTerminalValue(name, value string) *Terminal {
	return &Terminal{name: name, value: value, hasValue: true}
}

func (t *Terminal) Name() string { return t.name }

// Value returns the text associated with the terminal and whether
// there's any
func (t *Terminal) Value() (string, bool) { return t.value, t.hasValue }

func (t *Terminal) String() string { return FormatString(t) }
func (t *Terminal) isExpression()  {}

// NonTerminal is an inner node with its children in source order
type NonTerminal struct {
	name     string
	children []Expression
}

func NewNonTerminal(name string, children ...Expression) *NonTerminal {
	return &NonTerminal{name: name, children: append([]Expression{}, children...)}
}

func (n *NonTerminal) Name() string { return n.name }

// Children returns a copy of the child list, so the tree can't be
// changed from the outside
func (n *NonTerminal) Children() []Expression {
	return append([]Expression{}, n.children...)
}

// Len is the number of children
func (n *NonTerminal) Len() int { return len(n.children) }

// Child returns the i-th child
func (n *NonTerminal) Child(i int) Expression { return n.children[i] }

func (n *NonTerminal) String() string { return FormatString(n) }
func (n *NonTerminal) isExpression()  {}

// Equal reports whether both trees have the same shape, names and
// values.  A terminal without value never equals one with an empty
// value, and a childless NonTerminal never equals a Terminal, even
// though they print the same.
func Equal(a, b Expression) bool {
	return cmp.Equal(a, b, cmp.AllowUnexported(Terminal{}, NonTerminal{}), cmpopts.EquateEmpty())
}

// FormatString renders `expr` with the default formatter settings
func FormatString(expr Expression) string {
	var s strings.Builder
	// a strings.Builder never fails to write
	_ = NewFormatter(&s).Format(expr)
	return s.String()
}
