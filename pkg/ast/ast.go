// Package ast defines the expression and statement tree that the parser
// produces and the resolver/evaluator consume.
//
// Node identity. Every Expr is a distinct pointer allocated by the
// parser; the resolver's side table keys off the Expr interface value
// itself (pointer identity), which is stable for the lifetime of the
// tree. Nodes are never shared between trees and are never mutated
// after parsing.
package ast

import "github.com/cwbudde/go-wisp/pkg/token"

// Node is the common interface for every AST node.
type Node interface {
	Pos() token.Position
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}
