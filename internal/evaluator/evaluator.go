// Package evaluator tree-walks a resolved program and produces its
// observable effects: printed output, returned values, and errors.
//
// Grounded on the teacher's internal/interp/evaluator.Evaluator (an
// Eval(node, ctx) tree-walker holding an environment and a call
// stack), with the teacher's side-table-free scope walk replaced by
// resolver.Table lookups, since Wisp statically resolves local
// variable distance instead of walking the environment chain for
// every read.
package evaluator

import (
	"fmt"
	"io"

	"github.com/cwbudde/go-wisp/internal/errors"
	"github.com/cwbudde/go-wisp/internal/resolver"
	"github.com/cwbudde/go-wisp/internal/runtime"
	"github.com/cwbudde/go-wisp/pkg/ast"
	"github.com/cwbudde/go-wisp/pkg/token"
)

// Evaluator executes a resolved AST against a mutable runtime state.
type Evaluator struct {
	Globals *runtime.Environment
	env     *runtime.Environment
	table   resolver.Table
	out     io.Writer
	calls   *callStack
	trace   io.Writer
}

// New creates an Evaluator with an empty global scope. Callers
// register native bindings into ev.Globals before running a program.
func New(out io.Writer, table resolver.Table) *Evaluator {
	globals := runtime.NewEnvironment()
	return &Evaluator{
		Globals: globals,
		env:     globals,
		table:   table,
		out:     out,
		calls:   newCallStack(DefaultMaxRecursionDepth),
	}
}

// SetMaxRecursionDepth overrides the call-stack depth limit; used by
// tests that probe the stack-overflow error path with a small bound.
func (e *Evaluator) SetMaxRecursionDepth(depth int) {
	e.calls = newCallStack(depth)
}

// SetTrace turns on call-stack tracing: every function call and return
// is logged to w with its current nesting depth. Passing nil (the
// default) disables tracing.
func (e *Evaluator) SetTrace(w io.Writer) {
	e.trace = w
}

// MergeTable adds another resolver pass's side table into e's. Used by
// the REPL, which resolves each line independently against a table of
// its own: distinct lines produce distinct AST node pointers, so the
// merge never collides.
func (e *Evaluator) MergeTable(table resolver.Table) {
	if e.table == nil {
		e.table = make(resolver.Table, len(table))
	}
	for expr, distance := range table {
		e.table[expr] = distance
	}
}

// Run executes a top-level program: every statement shares e.Globals
// as its outermost scope.
func (e *Evaluator) Run(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := e.execute(stmt); err != nil {
			if sig, ok := asSignal(err); ok {
				return errors.NewInternalError(token.Position{}, "uncaught %s at top level", sig.Error())
			}
			return err
		}
	}
	return nil
}

// CallFunction implements runtime.Interpreter: it runs fn's body with
// args bound to its declared parameters, in an environment enclosing
// fn's closure. Satisfies the call protocol every Callable shares.
func (e *Evaluator) CallFunction(fn *runtime.Function, args []runtime.Value) (runtime.Value, error) {
	pos := fn.Decl.Keyword.Pos
	if err := e.calls.push(fn.Name(), pos); err != nil {
		return nil, errors.NewRuntimeError(pos, "%s", err.Error())
	}
	if e.trace != nil {
		fmt.Fprintf(e.trace, "%*senter %s (depth %d)\n", 2*(e.calls.depth()-1), "", fn.Name(), e.calls.depth())
	}
	defer func() {
		if e.trace != nil {
			fmt.Fprintf(e.trace, "%*sleave %s (depth %d)\n", 2*(e.calls.depth()-1), "", fn.Name(), e.calls.depth())
		}
		e.calls.pop()
	}()

	callEnv := runtime.NewEnclosedEnvironment(fn.Closure)
	for i, param := range fn.Decl.Params {
		var arg runtime.Value = runtime.NilValue
		if i < len(args) {
			arg = args[i]
		}
		callEnv.Define(param.Name.Literal, arg)
	}

	// thisValue resolves `this` one link out from the parameter scope
	// this call just bound — valid only when fn is a bound method,
	// i.e. Bind already defined `this` directly in fn.Closure.
	thisValue := func() runtime.Value {
		if v, ok := callEnv.GetAt(1, "this"); ok {
			return v
		}
		return runtime.NilValue
	}

	err := e.executeBlock(fn.Decl.Body, callEnv)
	if err != nil {
		if ret, ok := err.(*returnSignal); ok {
			if fn.IsInitializer {
				return thisValue(), nil
			}
			return ret.Value, nil
		}
		return nil, err
	}
	if fn.IsInitializer {
		return thisValue(), nil
	}
	return runtime.NilValue, nil
}

func (e *Evaluator) print(v runtime.Value) {
	fmt.Fprintln(e.out, v.Display())
}
