package treetest

import (
	"io"
	"strings"

	"github.com/clarete/treetest/ascii"
)

const defaultIndent = "  "

// FormatFn decorates a piece of output with a color.  It receives
// each name, value and punctuation mark separately.
type FormatFn func(text, color string) string

// Formatter writes expressions as indented S-expressions:
//
//	(source_file
//	  (identifier: x)
//	  (parameter_list)
//	)
//
// A Terminal without value and a NonTerminal without children are
// both written as `(name)`.  Values are written as they are, without
// quotes.  A Formatter is not safe for concurrent use.
type Formatter struct {
	writer io.Writer
	indent string
	level  int
	color  string
	format FormatFn
	err    error
}

// NewFormatter creates a formatter writing to `w` with a two space
// indent, starting at level zero and without color.
func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{
		writer: w,
		indent: defaultIndent,
		format: ascii.Colorize,
	}
}

// NewFormatterFromConfig reads `format.indent` (number of spaces) and
// `format.color` (a color name known to ascii.Lookup) from `cfg`.
// Unknown color names leave the output uncolored and negative indents
// count as zero.
func NewFormatterFromConfig(w io.Writer, cfg *Config) *Formatter {
	f := NewFormatter(w).WithIndent(strings.Repeat(" ", max(cfg.GetInt("format.indent"), 0)))
	if color, ok := ascii.Lookup(cfg.GetString("format.color")); ok {
		f = f.WithColor(color)
	}
	return f
}

func (f *Formatter) WithIndent(indent string) *Formatter {
	f.indent = indent
	return f
}

// WithLevel sets the nesting level the first line is written at
func (f *Formatter) WithLevel(level int) *Formatter {
	f.level = level
	return f
}

// WithColor sets the color passed to the FormatFn.  The empty string
// turns coloring off.
func (f *Formatter) WithColor(color string) *Formatter {
	f.color = color
	return f
}

func (f *Formatter) WithFormatFn(fn FormatFn) *Formatter {
	f.format = fn
	return f
}

// Format writes `expr` to the underlying writer.  Writing stops at
// the first error, which is then returned.
func (f *Formatter) Format(expr Expression) error {
	f.err = nil
	f.visit(expr)
	return f.err
}

func (f *Formatter) visit(expr Expression) {
	f.writeIndent()
	f.writeStyled("(")
	switch e := expr.(type) {
	case *Terminal:
		f.writeStyled(e.name)
		if e.hasValue {
			f.writeStyled(": ")
			f.writeStyled(e.value)
		}
		f.writeStyled(")")
	case *NonTerminal:
		f.writeStyled(e.name)
		if len(e.children) == 0 {
			f.writeStyled(")")
			return
		}
		f.write("\n")
		f.level++
		for _, child := range e.children {
			f.visit(child)
			f.write("\n")
		}
		f.level--
		f.writeIndent()
		f.writeStyled(")")
	}
}

func (f *Formatter) writeIndent() {
	for i := 0; i < f.level; i++ {
		f.write(f.indent)
	}
}

func (f *Formatter) writeStyled(s string) {
	if f.color != "" && f.format != nil {
		s = f.format(s, f.color)
	}
	f.write(s)
}

func (f *Formatter) write(s string) {
	if f.err != nil {
		return
	}
	_, f.err = io.WriteString(f.writer, s)
}
