package treetest

// Tree gives access to the nodes of a parse tree produced by a parser
// under test.  `N` is whatever the parser uses to refer to a node: a
// pointer, an index into an arena, an interface value.
type Tree[N any] interface {
	// Name is the symbolic name of the rule that produced the node
	Name(node N) string

	// Text is the input matched by the node
	Text(node N) string

	// Children returns the nodes directly under `node`, in order
	Children(node N) []N
}

// ParseNode is implemented by node types that can describe
// themselves without an external Tree
type ParseNode[N any] interface {
	RuleName() string
	MatchedText() string
	ChildNodes() []N
}

type parseNodeTree[N ParseNode[N]] struct{}

func (parseNodeTree[N]) Name(node N) string  { return node.RuleName() }
func (parseNodeTree[N]) Text(node N) string  { return node.MatchedText() }
func (parseNodeTree[N]) Children(node N) []N { return node.ChildNodes() }

// Adapt converts a self describing parse tree into an Expression.  See
// AdaptTree.
func Adapt[N ParseNode[N]](root N) Expression {
	return AdaptTree[N](parseNodeTree[N]{}, root)
}

// AdaptTree converts the parse tree under `root` into an Expression.
// Nodes without children become a Terminal valued with the text they
// matched, and every other node becomes a NonTerminal, including the
// ones with a single child.  It never fails.
func AdaptTree[N any](t Tree[N], root N) Expression {
	name := t.Name(root)
	children := t.Children(root)
	if len(children) == 0 {
		return NewTerminalValue(name, t.Text(root))
	}
	exprs := make([]Expression, len(children))
	for i, child := range children {
		exprs[i] = AdaptTree(t, child)
	}
	return &NonTerminal{name: name, children: exprs}
}

// Depth returns the height of the tree under `root`, a single node
// being 1.  Callers adapting untrusted input can use it to refuse
// trees that are too deep before calling AdaptTree.
func Depth[N any](t Tree[N], root N) int {
	deepest := 0
	for _, child := range t.Children(root) {
		deepest = max(deepest, Depth(t, child))
	}
	return deepest + 1
}
