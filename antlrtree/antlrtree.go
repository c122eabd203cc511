// Package antlrtree adapts ANTLR parse trees so they can be compared
// against the expectations written in test files.
package antlrtree

import (
	"strconv"

	"github.com/antlr4-go/antlr/v4"

	"github.com/clarete/treetest"
)

// ErrorNodeName names the nodes ANTLR inserts while recovering from
// syntax errors
const ErrorNodeName = "ERROR"

// Tree implements treetest.Tree over ANTLR parse trees.  Rule contexts
// are named after the grammar rule, terminals after their token type.
type Tree struct {
	RuleNames     []string
	SymbolicNames []string
	LiteralNames  []string
}

// New takes the names from a generated parser
func New(recognizer antlr.Recognizer) Tree {
	return Tree{
		RuleNames:     recognizer.GetRuleNames(),
		SymbolicNames: recognizer.GetSymbolicNames(),
		LiteralNames:  recognizer.GetLiteralNames(),
	}
}

func (t Tree) Name(node antlr.Tree) string {
	switch n := node.(type) {
	case antlr.ErrorNode:
		return ErrorNodeName
	case antlr.TerminalNode:
		return t.tokenName(n.GetSymbol().GetTokenType())
	case antlr.RuleContext:
		if i := n.GetRuleIndex(); i >= 0 && i < len(t.RuleNames) {
			return t.RuleNames[i]
		}
		return "rule" + strconv.Itoa(n.GetRuleIndex())
	}
	return "unknown"
}

func (t Tree) Text(node antlr.Tree) string {
	if n, ok := node.(antlr.ParseTree); ok {
		return n.GetText()
	}
	return ""
}

func (t Tree) Children(node antlr.Tree) []antlr.Tree {
	return node.GetChildren()
}

// tokenName prefers the symbolic name of a token type and falls back
// to its literal, e.g. `'['` for tokens declared inline in a rule.
func (t Tree) tokenName(tokenType int) string {
	if tokenType == antlr.TokenEOF {
		return "EOF"
	}
	if tokenType >= 0 && tokenType < len(t.SymbolicNames) && t.SymbolicNames[tokenType] != "" {
		return t.SymbolicNames[tokenType]
	}
	if tokenType >= 0 && tokenType < len(t.LiteralNames) && t.LiteralNames[tokenType] != "" {
		return t.LiteralNames[tokenType]
	}
	return "token" + strconv.Itoa(tokenType)
}

// Adapt converts the parse tree under `root` using the rule and token
// names known to `recognizer`
func Adapt(recognizer antlr.Recognizer, root antlr.Tree) treetest.Expression {
	return treetest.AdaptTree[antlr.Tree](New(recognizer), root)
}
