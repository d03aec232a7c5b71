package evaluator

import (
	"github.com/cwbudde/go-wisp/internal/runtime"
	"github.com/cwbudde/go-wisp/pkg/ast"
)

// execute runs a single statement in the evaluator's current
// environment, one case per statement variant.
func (e *Evaluator) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := e.evaluate(s.Expression)
		return err

	case *ast.PrintStmt:
		v, err := e.evaluate(s.Expression)
		if err != nil {
			return err
		}
		e.print(v)
		return nil

	case *ast.VarStmt:
		var val runtime.Value = runtime.NilValue
		if s.Initializer != nil {
			v, err := e.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			val = v
		}
		e.env.Define(s.Name.Literal, val)
		return nil

	case *ast.BlockStmt:
		return e.executeBlock(s.Statements, runtime.NewEnclosedEnvironment(e.env))

	case *ast.IfStmt:
		cond, err := e.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if runtime.Truthy(cond) {
			return e.execute(s.Then)
		}
		if s.Else != nil {
			return e.execute(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := e.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !runtime.Truthy(cond) {
				return nil
			}
			if err := e.execute(s.Body); err != nil {
				if _, ok := err.(breakSignal); ok {
					return nil
				}
				if _, ok := err.(continueSignal); ok {
					continue
				}
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := &runtime.Function{Decl: s.Decl, Closure: e.env}
		e.env.Define(s.Decl.Name.Literal, fn)
		return nil

	case *ast.ReturnStmt:
		var val runtime.Value = runtime.NilValue
		if s.Value != nil {
			v, err := e.evaluate(s.Value)
			if err != nil {
				return err
			}
			val = v
		}
		return &returnSignal{Value: val}

	case *ast.BreakStmt:
		return breakSignal{}

	case *ast.ContinueStmt:
		return continueSignal{}

	case *ast.ClassStmt:
		return e.executeClass(s)

	default:
		return nil
	}
}

// executeBlock runs stmts with env as the current environment,
// restoring the previous environment on every exit path including
// signals and errors.
func (e *Evaluator) executeBlock(stmts []ast.Stmt, env *runtime.Environment) error {
	previous := e.env
	e.env = env
	defer func() { e.env = previous }()

	for _, stmt := range stmts {
		if err := e.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}
