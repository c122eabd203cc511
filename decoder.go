package treetest

// Decoder turns the syntax tree of a hand written expectation into an
// Expression.
type Decoder struct {
	// MaxDepth is how many expressions can be nested within each
	// other.  Zero disables the check.
	MaxDepth int
}

// NewDecoder creates a decoder with the `decode.*` settings of `cfg`
func NewDecoder(cfg *Config) *Decoder {
	return &Decoder{MaxDepth: cfg.GetInt("decode.max_depth")}
}

// DecodeExpression decodes `node` with the default depth limit
func DecodeExpression(node SyntaxNode) (Expression, error) {
	return (&Decoder{MaxDepth: DefaultMaxDepth}).Decode(node)
}

// Decode converts an expression node.  The first child must be the
// rule name, the optional second one decides the variant:
//
//	(name)             Terminal without value
//	(name: "value")    Terminal with value
//	(name:)            Terminal with the empty string as value
//	(name (child) ...) NonTerminal
func (d *Decoder) Decode(node SyntaxNode) (Expression, error) {
	return d.decode(node, 1)
}

func (d *Decoder) decode(node SyntaxNode, depth int) (Expression, error) {
	if d.MaxDepth > 0 && depth > d.MaxDepth {
		return nil, newModelError("maximum expression depth %d exceeded", d.MaxDepth)
	}
	children := node.Children()
	if len(children) == 0 {
		return nil, newModelError("missing rule name in %s", describe(node))
	}
	first := children[0]
	if first.Rule() != Rule_RuleName {
		return nil, newModelError("missing rule name: expected rule %s, found %s in %s",
			Rule_RuleName, first.Rule(), describe(first))
	}
	name := first.Text()
	if name == "" {
		return nil, newModelError("missing rule name: empty %s in %s", Rule_RuleName, describe(node))
	}
	if len(children) == 1 {
		return NewTerminal(name), nil
	}

	switch second := children[1]; second.Rule() {
	case Rule_SubExpressions:
		items := second.Children()
		exprs := make([]Expression, 0, len(items))
		for _, item := range items {
			expr, err := d.decode(item, depth+1)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, expr)
		}
		return &NonTerminal{name: name, children: exprs}, nil

	case Rule_ValueStr:
		value := ""
		if inner := second.Children(); len(inner) > 0 {
			if err := expectRule(inner[0], Rule_Value); err != nil {
				return nil, err
			}
			value = inner[0].Text()
		}
		return NewTerminalValue(name, value), nil

	default:
		return nil, newModelError("unexpected rule kind: %s in %s", second.Rule(), describe(second))
	}
}

func expectRule(node SyntaxNode, rule Rule) error {
	if node.Rule() != rule {
		return newModelError("expected rule %s, found %s in %s", rule, node.Rule(), describe(node))
	}
	return nil
}
