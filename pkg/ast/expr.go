package ast

import "github.com/cwbudde/go-wisp/pkg/token"

// Literal is a number, string, boolean, or nil constant.
type Literal struct {
	Token token.Token
	Value any
}

func (e *Literal) Pos() token.Position { return e.Token.Pos }
func (*Literal) exprNode()             {}

// Grouping is a parenthesized expression, kept distinct from its inner
// expression so the printer can round-trip source faithfully.
type Grouping struct {
	OpenParen token.Token
	Expr      Expr
}

func (e *Grouping) Pos() token.Position { return e.OpenParen.Pos }
func (*Grouping) exprNode()             {}

// Unary is a prefix operator applied to a single operand (`-x`, `!x`).
type Unary struct {
	Operator token.Token
	Operand  Expr
}

func (e *Unary) Pos() token.Position { return e.Operator.Pos }
func (*Unary) exprNode()             {}

// Binary is an infix arithmetic or comparison expression.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *Binary) Pos() token.Position { return e.Operator.Pos }
func (*Binary) exprNode()             {}

// Logical is `and`/`or`, which short-circuit unlike Binary.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *Logical) Pos() token.Position { return e.Operator.Pos }
func (*Logical) exprNode()             {}

// Variable is a bare identifier reference.
type Variable struct {
	Name token.Token
}

func (e *Variable) Pos() token.Position { return e.Name.Pos }
func (*Variable) exprNode()             {}

// Assign is `name = value`.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (e *Assign) Pos() token.Position { return e.Name.Pos }
func (*Assign) exprNode()             {}

// Call is `callee(args...)`.
type Call struct {
	Callee Expr
	Paren  token.Token // closing paren, used for error line reporting
	Args   []Expr
}

func (e *Call) Pos() token.Position { return e.Callee.Pos() }
func (*Call) exprNode()             {}

// PropertyGet is `object.name`.
type PropertyGet struct {
	Object Expr
	Name   token.Token
}

func (e *PropertyGet) Pos() token.Position { return e.Name.Pos }
func (*PropertyGet) exprNode()             {}

// PropertySet is `object.name = value`.
type PropertySet struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (e *PropertySet) Pos() token.Position { return e.Name.Pos }
func (*PropertySet) exprNode()             {}

// This is a `this` reference inside a method body.
type This struct {
	Keyword token.Token
}

func (e *This) Pos() token.Position { return e.Keyword.Pos }
func (*This) exprNode()             {}

// Super is `super.method`.
type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (e *Super) Pos() token.Position { return e.Keyword.Pos }
func (*Super) exprNode()             {}
