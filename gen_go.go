package treetest

import (
	"fmt"
	"strings"
)

// goCodeEmitter writes the Go code that builds an Expression with the
// constructors of this package
type goCodeEmitter struct {
	output      *strings.Builder
	qualifier   string
	indentLevel int
}

func newGoCodeEmitter(qualifier string) *goCodeEmitter {
	return &goCodeEmitter{output: &strings.Builder{}, qualifier: qualifier}
}

func (g *goCodeEmitter) visit(expr Expression) {
	switch e := expr.(type) {
	case *Terminal:
		if e.hasValue {
			g.write(fmt.Sprintf("%sNewTerminalValue(%q, %q)", g.qualifier, e.name, e.value))
			return
		}
		g.write(fmt.Sprintf("%sNewTerminal(%q)", g.qualifier, e.name))
	case *NonTerminal:
		if len(e.children) == 0 {
			g.write(fmt.Sprintf("%sNewNonTerminal(%q)", g.qualifier, e.name))
			return
		}
		g.write(fmt.Sprintf("%sNewNonTerminal(%q,\n", g.qualifier, e.name))
		g.indent()
		for _, child := range e.children {
			g.writeIndent()
			g.visit(child)
			g.write(",\n")
		}
		g.unindent()
		g.writei(")")
	}
}

func (g *goCodeEmitter) writei(s string) {
	g.writeIndent()
	g.write(s)
}

func (g *goCodeEmitter) write(s string) {
	g.output.WriteString(s)
}

func (g *goCodeEmitter) writeIndent() {
	for i := 0; i < g.indentLevel; i++ {
		g.output.WriteString("\t")
	}
}

func (g *goCodeEmitter) indent() {
	g.indentLevel++
}

func (g *goCodeEmitter) unindent() {
	g.indentLevel--
}

func (g *goCodeEmitter) String() string {
	return g.output.String()
}

// GenGo returns a Go expression that rebuilds `expr`, handy for
// turning the output of a parser into a fixture.  `qualifier` is
// prepended to each constructor, e.g. "treetest." when the code lives
// outside of this package.
func GenGo(expr Expression, qualifier string) string {
	g := newGoCodeEmitter(qualifier)
	g.visit(expr)
	return g.String()
}
