package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/go-wisp/internal/builtins"
	"github.com/cwbudde/go-wisp/internal/evaluator"
	"github.com/cwbudde/go-wisp/internal/parser"
	"github.com/cwbudde/go-wisp/internal/resolver"
	"github.com/cwbudde/go-wisp/internal/scanner"
)

// runREPL starts a line-buffered read-eval-print loop: one statement
// or expression per line, sharing a single evaluator so declarations
// persist across lines, until the user types "exit".
func runREPL() {
	ev := evaluator.New(os.Stdout, nil)
	builtins.NewDefaultRegistry().Install(ev.Globals)

	scan := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "exit" {
			return
		}
		if line == "" {
			fmt.Print("> ")
			continue
		}
		evalLine(ev, line)
		fmt.Print("> ")
	}
}

func evalLine(ev *evaluator.Evaluator, line string) {
	sc := scanner.New(line)
	tokens, scanErrs := sc.ScanTokens()
	if len(scanErrs) > 0 {
		reportAll(scanErrs)
		return
	}

	p := parser.New(tokens)
	stmts, parseErrs := p.Parse()
	if len(parseErrs) > 0 {
		reportAll(parseErrs)
		return
	}

	table, resolveErrs := resolver.Resolve(stmts)
	if len(resolveErrs) > 0 {
		reportAll(resolveErrs)
		return
	}
	ev.MergeTable(table)

	if err := ev.Run(stmts); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func reportAll(errs []error) {
	for _, err := range errs {
		fmt.Fprintln(os.Stderr, err)
	}
}
