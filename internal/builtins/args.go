package builtins

import (
	"github.com/cwbudde/go-wisp/internal/errors"
	"github.com/cwbudde/go-wisp/internal/runtime"
	"github.com/cwbudde/go-wisp/pkg/token"
)

func argNumber(args []runtime.Value, i int, fnName string) (runtime.Number, error) {
	n, ok := args[i].(runtime.Number)
	if !ok {
		return 0, errors.NewArgumentError(token.Position{}, "%s: argument %d must be a number, got %s", fnName, i+1, args[i].TypeName())
	}
	return n, nil
}

func argString(args []runtime.Value, i int, fnName string) (string, error) {
	s, ok := args[i].(runtime.String)
	if !ok {
		return "", errors.NewArgumentError(token.Position{}, "%s: argument %d must be a string, got %s", fnName, i+1, args[i].TypeName())
	}
	return string(s), nil
}
