// Package wisp wires the scanner, parser, resolver, and evaluator into
// a single pipeline for running a program, and classifies failures
// into the exit-code contract the CLI enforces.
//
// Grounded on the teacher's cmd/dwscript/cmd/run.go pipeline shape
// (lex -> parse -> optional semantic pass -> interpret), collapsed
// into one reusable driver package rather than living inline in the
// cobra command, since Wisp has no unit loader or type-check toggle to
// interleave between parse and run.
package wisp

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/go-wisp/internal/builtins"
	"github.com/cwbudde/go-wisp/internal/errors"
	"github.com/cwbudde/go-wisp/internal/evaluator"
	"github.com/cwbudde/go-wisp/internal/parser"
	"github.com/cwbudde/go-wisp/internal/resolver"
	"github.com/cwbudde/go-wisp/internal/scanner"
	"github.com/cwbudde/go-wisp/pkg/ast"
)

// ExitCode mirrors the sysexits.h-derived contract: 0 success, 64
// usage error, 65 scan/parse/resolver error, 66 file-read error, 70
// runtime error, 74 I/O error.
type ExitCode int

const (
	ExitOK       ExitCode = 0
	ExitUsage    ExitCode = 64
	ExitSyntax   ExitCode = 65
	ExitNoInput  ExitCode = 66
	ExitRuntime  ExitCode = 70
	ExitIOError  ExitCode = 74
)

// Result is the outcome of running one program.
type Result struct {
	Code ExitCode
	Err  error
}

// ok reports a successful run.
func ok() Result { return Result{Code: ExitOK} }

// Compile scans, parses, and resolves source, returning the resolved
// AST and side table, or a syntax-category Result describing the
// first class of failure encountered. Errors within a single stage are
// all collected before compilation stops; only the first later stage
// that produces any error halts the pipeline.
func Compile(source string) ([]ast.Stmt, resolver.Table, Result) {
	sc := scanner.New(source)
	tokens, scanErrs := sc.ScanTokens()
	if len(scanErrs) > 0 {
		return nil, nil, Result{Code: ExitSyntax, Err: joinErrors(scanErrs)}
	}

	p := parser.New(tokens)
	stmts, parseErrs := p.Parse()
	if len(parseErrs) > 0 {
		return nil, nil, Result{Code: ExitSyntax, Err: joinErrors(parseErrs)}
	}

	table, resolveErrs := resolver.Resolve(stmts)
	if len(resolveErrs) > 0 {
		return nil, nil, Result{Code: ExitSyntax, Err: joinErrors(resolveErrs)}
	}

	return stmts, table, ok()
}

// Run compiles and executes source, writing `print` output to out and
// dynamic-error diagnostics are left on the returned Result for the
// caller to render.
func Run(source string, out io.Writer) Result {
	return RunTraced(source, out, nil)
}

// RunTraced behaves like Run, additionally logging every function call
// and return to trace when trace is non-nil.
func RunTraced(source string, out, trace io.Writer) Result {
	stmts, table, res := Compile(source)
	if res.Err != nil {
		return res
	}

	ev := evaluator.New(out, table)
	if trace != nil {
		ev.SetTrace(trace)
	}
	builtins.NewDefaultRegistry().Install(ev.Globals)

	if err := ev.Run(stmts); err != nil {
		if errors.IsCategory(err, errors.CategoryIO) {
			return Result{Code: ExitIOError, Err: err}
		}
		return Result{Code: ExitRuntime, Err: err}
	}
	return ok()
}

func joinErrors(errs []error) error {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("%s", strings.Join(msgs, "\n"))
}
