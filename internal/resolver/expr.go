package resolver

import (
	"github.com/cwbudde/go-wisp/internal/errors"
	"github.com/cwbudde/go-wisp/pkg/ast"
)

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		// no names to resolve

	case *ast.Grouping:
		r.resolveExpr(e.Expr)

	case *ast.Unary:
		r.resolveExpr(e.Operand)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Variable:
		if !r.inGlobalScope() {
			if state, ok := r.scopes[len(r.scopes)-1][e.Name.Literal]; ok && state == declared {
				r.error(e.Name.Pos, "ReadInInitializer", errors.ErrMsgReadInInitializer, e.Name.Literal)
			}
		}
		r.resolveLocal(e, e.Name.Literal)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Literal)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.PropertyGet:
		r.resolveExpr(e.Object)

	case *ast.PropertySet:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.This:
		if r.currentClass == classNone {
			r.error(e.Keyword.Pos, "ThisOutsideClass", errors.ErrMsgThisOutsideClass)
			return
		}
		r.resolveLocal(e, "this")

	case *ast.Super:
		switch r.currentClass {
		case classNone:
			r.error(e.Keyword.Pos, "SuperOutsideClass", errors.ErrMsgSuperOutsideClass)
			return
		case classInClass:
			r.error(e.Keyword.Pos, "SuperWithoutSuperclass", errors.ErrMsgSuperWithoutSuperclass)
			return
		}
		r.resolveLocal(e, "super")

	default:
		// Unreachable for a well-formed tree produced by internal/parser.
	}
}
