package treetest

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is the SyntaxNode emitted by TestFileParser
type Node struct {
	rule  Rule
	text  string
	span  Span
	Items []*Node

	// nodes built by the parser point at its input and only copy
	// their text out of it when asked
	source []rune
}

func NewNode(rule Rule, text string, items []*Node, span Span) *Node {
	return &Node{rule: rule, text: text, Items: items, span: span}
}

func newSourceNode(rule Rule, source []rune, items []*Node, span Span) *Node {
	return &Node{rule: rule, source: source, Items: items, span: span}
}

func (n *Node) Rule() Rule { return n.rule }
func (n *Node) Span() Span { return n.span }

func (n *Node) Text() string {
	if n.source != nil {
		return string(n.source[n.span.Start.Cursor:n.span.End.Cursor])
	}
	return n.text
}

func (n *Node) Children() []SyntaxNode {
	children := make([]SyntaxNode, len(n.Items))
	for i, item := range n.Items {
		children[i] = item
	}
	return children
}

// These make *Node a ParseNode, so the parser's own output can go
// through Adapt like any other parser under test.

func (n *Node) RuleName() string    { return n.rule.String() }
func (n *Node) MatchedText() string { return n.Text() }
func (n *Node) ChildNodes() []*Node { return n.Items }

func (n *Node) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "<%s ", n.rule)
	if len(n.Items) == 0 {
		s.WriteString(strconv.Quote(n.Text()))
	} else {
		s.WriteString("[")
		for i, item := range n.Items {
			if i > 0 {
				s.WriteString(", ")
			}
			s.WriteString(item.String())
		}
		s.WriteString("]")
	}
	fmt.Fprintf(&s, " @ %s>", n.span)
	return s.String()
}
