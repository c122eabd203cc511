package treetest

// Rule identifies the kind of a node in a parsed test file
type Rule int

const (
	Rule_Unknown Rule = iota
	Rule_TestCase
	Rule_TestName
	Rule_Div
	Rule_Code
	Rule_Expression
	Rule_SubExpressions
	Rule_RuleName
	Rule_ValueStr
	Rule_Value
)

var ruleNames = map[Rule]string{
	Rule_Unknown:        "unknown",
	Rule_TestCase:       "test_case",
	Rule_TestName:       "test_name",
	Rule_Div:            "div",
	Rule_Code:           "code",
	Rule_Expression:     "expression",
	Rule_SubExpressions: "sub_expressions",
	Rule_RuleName:       "rule_name",
	Rule_ValueStr:       "rule_value_str",
	Rule_Value:          "rule_value",
}

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return ruleNames[Rule_Unknown]
}

// SyntaxNode is what the decoder and the test case assembler read
// from.  Anything that splits a test file into typed nodes can feed
// them, the parser in testfile_parser.go is just the default one.
type SyntaxNode interface {
	// Rule is the kind of the node
	Rule() Rule

	// Text is the input matched by the node
	Text() string

	// Children returns the nodes nested within this one, in input
	// order
	Children() []SyntaxNode
}
