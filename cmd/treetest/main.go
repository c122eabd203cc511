package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/clarete/treetest"
	"github.com/clarete/treetest/ascii"
)

func main() {
	var (
		color      = flag.String("color", "", "Color of the printed trees, one of: "+strings.Join(ascii.Names(), ", "))
		indent     = flag.Int("indent", 2, "Spaces per nesting level")
		maxDepth   = flag.Int("max-depth", treetest.DefaultMaxDepth, "Deepest expression accepted, 0 disables the limit")
		emitGo     = flag.Bool("go", false, "Print the Go code that builds each tree instead of the tree")
		repl       = flag.Bool("repl", false, "Read expressions interactively")
		showConfig = flag.Bool("show-config", false, "Print the configuration before running")
	)
	flag.Parse()

	if *color != "" {
		if _, ok := ascii.Lookup(*color); !ok {
			log.Fatalf("Unknown color `%s`", *color)
		}
	}

	if *indent < 0 {
		log.Fatalf("Indent can't be negative: %d", *indent)
	}
	if *maxDepth < 0 {
		log.Fatalf("Max depth can't be negative: %d", *maxDepth)
	}

	cfg := treetest.NewConfig()
	cfg.SetString("format.color", *color)
	cfg.SetInt("format.indent", *indent)
	cfg.SetInt("decode.max_depth", *maxDepth)
	cfg.SetBool("output.go", *emitGo)

	if *showConfig {
		cfg.Debug(os.Stderr)
	}

	app := &app{cfg: cfg, out: os.Stdout}

	if *repl {
		if err := app.runPrompt(); err != nil {
			log.Fatal(err)
		}
		return
	}

	if flag.NArg() == 0 {
		log.Fatal("No test files informed")
	}

	failed := false
	for _, path := range flag.Args() {
		if err := app.runFile(path); err != nil {
			log.Printf("%s: %s", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

type app struct {
	cfg *treetest.Config
	out io.Writer
}

func (a *app) runFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("can't read test file: %w", err)
	}
	test, err := treetest.NewDecoder(a.cfg).ParseTestCase(string(data))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, ascii.Color(ascii.Bold, "=== %s", test.Name))
	fmt.Fprintln(a.out, test.Code)
	fmt.Fprintln(a.out, ascii.Color(ascii.Gray, "---"))
	return a.print(test.Expression)
}

func (a *app) runPrompt() error {
	rl, err := readline.New("treetest> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	decoder := treetest.NewDecoder(a.cfg)
	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		expr, err := decoder.ParseExpression(line)
		if err != nil {
			fmt.Fprintln(rl.Stderr(), err)
			continue
		}
		if err := a.print(expr); err != nil {
			return err
		}
	}
}

func (a *app) print(expr treetest.Expression) error {
	if a.cfg.GetBool("output.go") {
		_, err := fmt.Fprintln(a.out, treetest.GenGo(expr, "treetest."))
		return err
	}
	if err := treetest.NewFormatterFromConfig(a.out, a.cfg).Format(expr); err != nil {
		return err
	}
	_, err := fmt.Fprintln(a.out)
	return err
}
