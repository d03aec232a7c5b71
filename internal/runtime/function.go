package runtime

import (
	"fmt"

	"github.com/cwbudde/go-wisp/pkg/ast"
)

// Function is a user-defined function or method value: the declaration
// node plus the environment captured at definition time (its closure).
type Function struct {
	Decl          *ast.FunctionDecl
	Closure       *Environment
	IsInitializer bool
}

func (f *Function) TypeName() string { return "function" }

func (f *Function) Display() string {
	name := "anonymous"
	if f.Decl != nil && f.Decl.Name.Literal != "" {
		name = f.Decl.Name.Literal
	}
	return fmt.Sprintf("<fn %s>", name)
}

func (f *Function) Arity() int {
	if f.Decl == nil {
		return 0
	}
	return len(f.Decl.Params)
}

func (f *Function) Name() string {
	if f.Decl == nil {
		return "anonymous"
	}
	return f.Decl.Name.Literal
}

func (f *Function) Call(interp Interpreter, args []Value) (Value, error) {
	return interp.CallFunction(f, args)
}

// Bind returns a new Function whose closure encloses f's closure with a
// fresh scope binding `this` to instance. Shared by PropertyGet method
// lookup and Super.method lookup.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{Decl: f.Decl, Closure: env, IsInitializer: f.IsInitializer}
}
