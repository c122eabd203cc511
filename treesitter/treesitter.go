// Package treesitter adapts tree-sitter parse trees so they can be
// compared against the expectations written in test files.
package treesitter

import (
	"errors"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/clarete/treetest"
)

var errNoTree = errors.New("tree-sitter returned no tree")

// Tree implements treetest.Tree over tree-sitter nodes.  Nodes are
// named after their kind and valued with the source they span.
type Tree struct {
	// Source is the input the tree was parsed from
	Source []byte

	// NamedOnly skips anonymous nodes such as punctuation and
	// keywords, the way tree-sitter's own S-expressions do
	NamedOnly bool
}

func (t Tree) Name(node *sitter.Node) string { return node.Kind() }
func (t Tree) Text(node *sitter.Node) string { return node.Utf8Text(t.Source) }

func (t Tree) Children(node *sitter.Node) []*sitter.Node {
	count := node.ChildCount()
	if t.NamedOnly {
		count = node.NamedChildCount()
	}
	children := make([]*sitter.Node, 0, count)
	for i := uint(0); i < count; i++ {
		var child *sitter.Node
		if t.NamedOnly {
			child = node.NamedChild(i)
		} else {
			child = node.Child(i)
		}
		if child != nil {
			children = append(children, child)
		}
	}
	return children
}

// Adapt converts the whole `tree` parsed from `source`
func Adapt(tree *sitter.Tree, source []byte, namedOnly bool) treetest.Expression {
	t := Tree{Source: source, NamedOnly: namedOnly}
	return treetest.AdaptTree[*sitter.Node](t, tree.RootNode())
}

// Parse runs a tree-sitter parser for `language` over `source` and
// adapts the result
func Parse(language *sitter.Language, source []byte, namedOnly bool) (treetest.Expression, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(language); err != nil {
		return nil, err
	}
	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, errNoTree
	}
	defer tree.Close()

	return Adapt(tree, source, namedOnly), nil
}
