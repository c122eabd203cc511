package treetest

import "fmt"

// Location is a position within the input.  Line and Column are
// zero-based, Cursor is the rune offset from the start of the input.
type Location struct {
	Line   int
	Column int
	Cursor int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line+1, l.Column+1)
}

// Span is the half-open region between two locations
type Span struct {
	Start Location
	End   Location
}

func NewSpan(start, end Location) Span {
	return Span{Start: start, End: end}
}

// String renders the span with one-based lines and columns, collapsing
// the line number when both ends sit on the same line.
func (s Span) String() string {
	startLine, startCol := s.Start.Line+1, s.Start.Column+1
	endLine, endCol := s.End.Line+1, s.End.Column+1
	if startLine == endLine {
		if startCol == endCol {
			return fmt.Sprintf("%d:%d", startLine, startCol)
		}
		return fmt.Sprintf("%d:%d..%d", startLine, startCol, endCol)
	}
	return fmt.Sprintf("%d:%d..%d:%d", startLine, startCol, endLine, endCol)
}
