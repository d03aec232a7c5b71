package ast

import (
	"fmt"
	"strings"
)

// Print renders a parenthesized Lisp-like dump of a statement list, used
// by the `--dump-ast` CLI flag the way the teacher's `program.String()`
// backs `dwscript run --dump-ast`.
func Print(stmts []Stmt) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(printStmt(s))
		b.WriteByte('\n')
	}
	return b.String()
}

func printStmt(s Stmt) string {
	switch n := s.(type) {
	case *ExpressionStmt:
		return printExpr(n.Expression)
	case *PrintStmt:
		return paren("print", printExpr(n.Expression))
	case *VarStmt:
		if n.Initializer == nil {
			return paren("var", n.Name.Literal)
		}
		return paren("var", n.Name.Literal, printExpr(n.Initializer))
	case *BlockStmt:
		parts := make([]string, len(n.Statements))
		for i, st := range n.Statements {
			parts[i] = printStmt(st)
		}
		return paren("block", parts...)
	case *IfStmt:
		if n.Else == nil {
			return paren("if", printExpr(n.Condition), printStmt(n.Then))
		}
		return paren("if", printExpr(n.Condition), printStmt(n.Then), printStmt(n.Else))
	case *WhileStmt:
		return paren("while", printExpr(n.Condition), printStmt(n.Body))
	case *FunctionStmt:
		return paren("fn", n.Decl.Name.Literal)
	case *ReturnStmt:
		if n.Value == nil {
			return "(return)"
		}
		return paren("return", printExpr(n.Value))
	case *BreakStmt:
		return "(break)"
	case *ContinueStmt:
		return "(continue)"
	case *ClassStmt:
		return paren("class", n.Name.Literal)
	default:
		return fmt.Sprintf("<unknown stmt %T>", s)
	}
}

func printExpr(e Expr) string {
	switch n := e.(type) {
	case *Literal:
		return fmt.Sprintf("%v", n.Value)
	case *Grouping:
		return paren("group", printExpr(n.Expr))
	case *Unary:
		return paren(n.Operator.Literal, printExpr(n.Operand))
	case *Binary:
		return paren(n.Operator.Literal, printExpr(n.Left), printExpr(n.Right))
	case *Logical:
		return paren(n.Operator.Literal, printExpr(n.Left), printExpr(n.Right))
	case *Variable:
		return n.Name.Literal
	case *Assign:
		return paren("=", n.Name.Literal, printExpr(n.Value))
	case *Call:
		parts := make([]string, 0, len(n.Args)+1)
		parts = append(parts, printExpr(n.Callee))
		for _, a := range n.Args {
			parts = append(parts, printExpr(a))
		}
		return paren("call", parts...)
	case *PropertyGet:
		return paren(".", printExpr(n.Object), n.Name.Literal)
	case *PropertySet:
		return paren("=", paren(".", printExpr(n.Object), n.Name.Literal), printExpr(n.Value))
	case *This:
		return "this"
	case *Super:
		return paren("super", n.Method.Literal)
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func paren(name string, parts ...string) string {
	return "(" + name + " " + strings.Join(parts, " ") + ")"
}
