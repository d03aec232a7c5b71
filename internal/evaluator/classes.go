package evaluator

import (
	"github.com/cwbudde/go-wisp/internal/errors"
	"github.com/cwbudde/go-wisp/internal/runtime"
	"github.com/cwbudde/go-wisp/pkg/ast"
)

// executeClass builds a Class value and binds it to its own name,
// mirroring the teacher's OOP engine's two-step bind: a placeholder
// definition first (so methods that reference the class by name see a
// real binding once construction finishes), then the finished value.
func (e *Evaluator) executeClass(s *ast.ClassStmt) error {
	var superclass *runtime.Class
	if s.Superclass != nil {
		v, err := e.lookupVariable(s.Superclass, s.Superclass.Name)
		if err != nil {
			return err
		}
		sc, ok := v.(*runtime.Class)
		if !ok {
			return errors.NewTypeError(s.Superclass.Name.Pos, errors.ErrMsgSuperclassMustBeClass)
		}
		superclass = sc
	}

	e.env.Define(s.Name.Literal, runtime.NilValue)

	methodEnv := e.env
	if superclass != nil {
		methodEnv = runtime.NewEnclosedEnvironment(e.env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*runtime.Function, len(s.Methods))
	for _, decl := range s.Methods {
		methods[decl.Name.Literal] = &runtime.Function{
			Decl:          decl,
			Closure:       methodEnv,
			IsInitializer: decl.Name.Literal == "init",
		}
	}

	// Static methods share methodEnv (so they can see `super`) but are
	// never Bind-wrapped with a `this` scope, matching the resolver
	// resolving them before the `this` scope opens.
	statics := make(map[string]*runtime.Function, len(s.StaticMethods))
	for _, decl := range s.StaticMethods {
		statics[decl.Name.Literal] = &runtime.Function{Decl: decl, Closure: methodEnv}
	}

	class := &runtime.Class{
		ClassName:     s.Name.Literal,
		Superclass:    superclass,
		Methods:       methods,
		StaticMethods: statics,
	}

	e.env.Assign(s.Name.Literal, class)
	return nil
}
