package resolver

import (
	"github.com/cwbudde/go-wisp/internal/errors"
	"github.com/cwbudde/go-wisp/pkg/ast"
)

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

// resolveStmt walks a single statement, one case per statement variant.
func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name.Literal)

	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.loopDepth++
		r.resolveStmt(s.Body)
		r.loopDepth--

	case *ast.FunctionStmt:
		// Declare+define the function's own name in the enclosing
		// scope eagerly, so the body can refer to itself recursively.
		r.declare(s.Decl.Name)
		r.define(s.Decl.Name.Literal)
		r.resolveFunction(s.Decl, ctxFunction)

	case *ast.ReturnStmt:
		if r.currentFunction == ctxNone {
			r.error(s.Keyword.Pos, "ReturnOutsideFunction", errors.ErrMsgReturnOutsideFunction)
		}
		if s.Value != nil {
			if r.currentFunction == ctxInitializer {
				r.error(s.Keyword.Pos, "ReturnValueFromInit", errors.ErrMsgReturnValueFromInit)
			}
			r.resolveExpr(s.Value)
		}

	case *ast.BreakStmt:
		if r.loopDepth == 0 {
			r.error(s.Keyword.Pos, "BreakOutsideLoop", errors.ErrMsgBreakOutsideLoop)
		}

	case *ast.ContinueStmt:
		if r.loopDepth == 0 {
			r.error(s.Keyword.Pos, "ContinueOutsideLoop", errors.ErrMsgContinueOutsideLoop)
		}

	case *ast.ClassStmt:
		r.resolveClass(s)

	default:
		// Unreachable for a well-formed tree produced by internal/parser.
	}
}

// resolveFunction resolves a function/method body inside a single
// scope holding its parameters. The body's statements are resolved
// directly in that same scope rather than a nested one, matching
// CallFunction at runtime: it binds parameters into callEnv and runs
// the body statements in callEnv directly, never pushing a second
// environment for the body unless a statement is itself a block.
func (r *Resolver) resolveFunction(decl *ast.FunctionDecl, ctx functionContext) {
	enclosingFunction := r.currentFunction
	r.currentFunction = ctx
	defer func() { r.currentFunction = enclosingFunction }()

	r.beginScope()
	for _, param := range decl.Params {
		r.declare(param.Name)
		r.define(param.Name.Literal)
	}
	r.resolveStmts(decl.Body)
	r.endScope()
}

func (r *Resolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classInClass
	defer func() { r.currentClass = enclosingClass }()

	// The class's own name is visible to its methods for recursive
	// self-reference, matching FunctionStmt's eager declare+define.
	r.declare(s.Name)
	r.define(s.Name.Literal)

	hasSuperclass := s.Superclass != nil
	if hasSuperclass {
		if s.Superclass.Name.Literal == s.Name.Literal {
			r.error(s.Superclass.Name.Pos, "SelfInheritance", "a class cannot inherit from itself")
		}
		r.currentClass = classInSubclass
		r.resolveExpr(s.Superclass)
		r.beginScope()
		r.defineToken("super")
	}

	// Static methods have no implicit `this` binding: they are invoked
	// on the class itself, never on an instance. Resolve them before
	// opening the `this` scope so a stray `this` reference cannot
	// accidentally resolve to the enclosing instance scope.
	for _, method := range s.StaticMethods {
		r.resolveStaticMethod(method)
	}

	r.beginScope()
	r.defineToken("this")

	for _, method := range s.Methods {
		ctx := ctxMethod
		if method.Name.Literal == "init" {
			ctx = ctxInitializer
		}
		r.resolveFunction(method, ctx)
	}

	r.endScope() // this

	if hasSuperclass {
		r.endScope() // super
	}
}

// resolveStaticMethod resolves a static method body without the
// surrounding `this` scope instance methods get.
func (r *Resolver) resolveStaticMethod(decl *ast.FunctionDecl) {
	enclosingFunction := r.currentFunction
	r.currentFunction = ctxFunction
	defer func() { r.currentFunction = enclosingFunction }()

	r.beginScope()
	for _, param := range decl.Params {
		r.declare(param.Name)
		r.define(param.Name.Literal)
	}
	r.resolveStmts(decl.Body)
	r.endScope()
}
