package treetest

import (
	"fmt"

	"github.com/alecthomas/repr"
)

// ModelError is returned when a syntax tree can't be turned into an
// Expression or a TestCase.  It's the only error the decoder and the
// test case assembler produce.
type ModelError struct {
	Message string
}

func newModelError(format string, args ...any) *ModelError {
	return &ModelError{Message: fmt.Sprintf(format, args...)}
}

func (e *ModelError) Error() string {
	return e.Message
}

// ParsingError is the error thrown when the test file parser can't
// finish successfully
type ParsingError struct {
	Message string
	Span    Span
}

// String returns the human readable representation of a parsing error
func (e ParsingError) Error() string {
	return fmt.Sprintf("%s @ %s", e.Message, e.Span)
}

// backtrackingError is an internal error type that is captured by the
// Choice operator
type backtrackingError struct {
	Message string
	Span    Span
}

func (e backtrackingError) Error() string {
	return fmt.Sprintf("%s @ %s", e.Message, e.Span)
}

func isthrown(err error) bool {
	_, ok := err.(ParsingError)
	return ok
}

// describe renders a syntax node for error messages.  Nodes that
// don't know how to print themselves are dumped with repr.
func describe(node SyntaxNode) string {
	if s, ok := node.(fmt.Stringer); ok {
		return s.String()
	}
	return repr.String(node)
}
