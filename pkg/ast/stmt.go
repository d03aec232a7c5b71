package ast

import "github.com/cwbudde/go-wisp/pkg/token"

// ExpressionStmt evaluates an expression for its side effects and
// discards the result.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) Pos() token.Position { return s.Expression.Pos() }
func (*ExpressionStmt) stmtNode()             {}

// PrintStmt writes the display form of its operand followed by a newline.
type PrintStmt struct {
	Keyword    token.Token
	Expression Expr
}

func (s *PrintStmt) Pos() token.Position { return s.Keyword.Pos }
func (*PrintStmt) stmtNode()             {}

// VarStmt is a `var name = initializer;` declaration. Initializer may
// be nil.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (s *VarStmt) Pos() token.Position { return s.Name.Pos }
func (*VarStmt) stmtNode()             {}

// BlockStmt is a `{ ... }` sequence that introduces a new lexical scope.
type BlockStmt struct {
	OpenBrace  token.Token
	Statements []Stmt
}

func (s *BlockStmt) Pos() token.Position { return s.OpenBrace.Pos }
func (*BlockStmt) stmtNode()             {}

// IfStmt is `if (cond) then [else else]`. Else may be nil.
type IfStmt struct {
	Keyword   token.Token
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (s *IfStmt) Pos() token.Position { return s.Keyword.Pos }
func (*IfStmt) stmtNode()             {}

// WhileStmt is `while (cond) body`. The parser also uses this node to
// desugar `for` loops (init + WhileStmt + increment wrapped in a block).
type WhileStmt struct {
	Keyword   token.Token
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) Pos() token.Position { return s.Keyword.Pos }
func (*WhileStmt) stmtNode()             {}

// Param is a single function or method parameter.
type Param struct {
	Name token.Token
}

// FunctionDecl is the shared shape for `fn name(params) body`, used
// both for statement-level function declarations and for class methods.
type FunctionDecl struct {
	Keyword token.Token
	Name    token.Token // zero Token for anonymous lambdas, if ever added
	Params  []Param
	Body    []Stmt
	IsStatic bool
}

func (d *FunctionDecl) Pos() token.Position { return d.Keyword.Pos }

// FunctionStmt declares a function in the enclosing scope.
type FunctionStmt struct {
	Decl *FunctionDecl
}

func (s *FunctionStmt) Pos() token.Position { return s.Decl.Pos() }
func (*FunctionStmt) stmtNode()             {}

// ReturnStmt is `return [value];`. Value may be nil.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (s *ReturnStmt) Pos() token.Position { return s.Keyword.Pos }
func (*ReturnStmt) stmtNode()             {}

// BreakStmt is `break;`.
type BreakStmt struct {
	Keyword token.Token
}

func (s *BreakStmt) Pos() token.Position { return s.Keyword.Pos }
func (*BreakStmt) stmtNode()             {}

// ContinueStmt is `continue;`.
type ContinueStmt struct {
	Keyword token.Token
}

func (s *ContinueStmt) Pos() token.Position { return s.Keyword.Pos }
func (*ContinueStmt) stmtNode()             {}

// ClassStmt is `class Name (< Super)? { methods... }`.
type ClassStmt struct {
	Keyword      token.Token
	Name         token.Token
	Superclass   *Variable // nil if no superclass clause
	Methods      []*FunctionDecl
	StaticMethods []*FunctionDecl
}

func (s *ClassStmt) Pos() token.Position { return s.Keyword.Pos }
func (*ClassStmt) stmtNode()             {}
