package evaluator

import (
	"github.com/cwbudde/go-wisp/internal/errors"
	"github.com/cwbudde/go-wisp/internal/runtime"
	"github.com/cwbudde/go-wisp/pkg/ast"
)

func (e *Evaluator) evalCall(x *ast.Call) (runtime.Value, error) {
	callee, err := e.evaluate(x.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]runtime.Value, len(x.Args))
	for i, a := range x.Args {
		v, err := e.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(runtime.Callable)
	if !ok {
		return nil, errors.NewTypeError(x.Paren.Pos, errors.ErrMsgNotCallable)
	}

	if arity := callable.Arity(); arity >= 0 && len(args) != arity {
		return nil, errors.NewArgumentError(x.Paren.Pos, errors.ErrMsgArityMismatch, arity, len(args))
	}

	return callable.Call(e, args)
}
