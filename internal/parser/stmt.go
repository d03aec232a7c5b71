package parser

import (
	"github.com/cwbudde/go-wisp/pkg/ast"
	"github.com/cwbudde/go-wisp/pkg/token"
)

func (p *Parser) declaration() (ast.Stmt, error) {
	switch {
	case p.match(token.VAR):
		return p.varDeclaration()
	case p.match(token.FN):
		return p.functionDeclaration("function")
	case p.match(token.CLASS):
		return p.classDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.IDENT, "expected variable name")
	if err != nil {
		return nil, err
	}
	var init ast.Expr
	if p.match(token.EQUAL) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &ast.VarStmt{Name: name, Initializer: init}, nil
}

func (p *Parser) functionDeclaration(kind string) (*ast.FunctionStmt, error) {
	decl, err := p.functionBody(kind)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionStmt{Decl: decl}, nil
}

// functionBody parses `name(params) { body }` — shared by top-level
// function declarations and class methods, which reuse the same
// FunctionDecl node.
func (p *Parser) functionBody(kind string) (*ast.FunctionDecl, error) {
	keyword := p.previous()
	name, err := p.consume(token.IDENT, "expected "+kind+" name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LPAREN, "expected '(' after "+kind+" name"); err != nil {
		return nil, err
	}
	var params []ast.Param
	if !p.check(token.RPAREN) {
		for {
			pname, err := p.consume(token.IDENT, "expected parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, ast.Param{Name: pname})
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(token.RPAREN, "expected ')' after parameters"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LBRACE, "expected '{' before "+kind+" body"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDecl{Keyword: keyword, Name: name, Params: params, Body: body}, nil
}

func (p *Parser) classDeclaration() (ast.Stmt, error) {
	keyword := p.previous()
	name, err := p.consume(token.IDENT, "expected class name")
	if err != nil {
		return nil, err
	}
	var super *ast.Variable
	if p.match(token.LESS) {
		superName, err := p.consume(token.IDENT, "expected superclass name")
		if err != nil {
			return nil, err
		}
		super = &ast.Variable{Name: superName}
	}
	if _, err := p.consume(token.LBRACE, "expected '{' before class body"); err != nil {
		return nil, err
	}
	var methods, statics []*ast.FunctionDecl
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		isStatic := p.match(token.STATIC)
		if _, err := p.consume(token.FN, "expected method declaration"); err != nil {
			return nil, err
		}
		decl, err := p.functionBody("method")
		if err != nil {
			return nil, err
		}
		decl.IsStatic = isStatic
		if isStatic {
			statics = append(statics, decl)
		} else {
			methods = append(methods, decl)
		}
	}
	if _, err := p.consume(token.RBRACE, "expected '}' after class body"); err != nil {
		return nil, err
	}
	return &ast.ClassStmt{Keyword: keyword, Name: name, Superclass: super, Methods: methods, StaticMethods: statics}, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.LBRACE):
		open := p.previous()
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.BlockStmt{OpenBrace: open, Statements: stmts}, nil
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.BREAK):
		return p.breakStatement()
	case p.match(token.CONTINUE):
		return p.continueStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	keyword := p.previous()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "expected ';' after value"); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Keyword: keyword, Expression: expr}, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expression: expr}, nil
}

// block parses statements up to (not including) the closing '}', which
// the caller already consumed the matching '{' for.
func (p *Parser) block() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(token.RBRACE, "expected '}' after block"); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) ifStatement() (ast.Stmt, error) {
	keyword := p.previous()
	if _, err := p.consume(token.LPAREN, "expected '(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RPAREN, "expected ')' after if condition"); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Keyword: keyword, Condition: cond, Then: then, Else: elseBranch}, nil
}

func (p *Parser) whileStatement() (ast.Stmt, error) {
	keyword := p.previous()
	if _, err := p.consume(token.LPAREN, "expected '(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RPAREN, "expected ')' after while condition"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Keyword: keyword, Condition: cond, Body: body}, nil
}

// forStatement desugars `for (init; cond; incr) body` into
// `{ init while (cond) { body incr } }` entirely here: there is no
// ast.For node, so the resolver and evaluator never see a for loop.
func (p *Parser) forStatement() (ast.Stmt, error) {
	keyword := p.previous()
	if _, err := p.consume(token.LPAREN, "expected '(' after 'for'"); err != nil {
		return nil, err
	}

	var init ast.Stmt
	var err error
	switch {
	case p.match(token.SEMICOLON):
		init = nil
	case p.match(token.VAR):
		init, err = p.varDeclaration()
	default:
		init, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "expected ';' after loop condition"); err != nil {
		return nil, err
	}

	var incr ast.Expr
	if !p.check(token.RPAREN) {
		incr, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.RPAREN, "expected ')' after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	// incr sits inside the loop body block, so a continue re-evaluates
	// the condition without running it; this follows continue's literal
	// contract of restarting the condition, not the increment.
	if incr != nil {
		body = &ast.BlockStmt{OpenBrace: keyword, Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: incr}}}
	}
	if cond == nil {
		cond = &ast.Literal{Token: keyword, Value: true}
	}
	loop := ast.Stmt(&ast.WhileStmt{Keyword: keyword, Condition: cond, Body: body})
	if init != nil {
		loop = &ast.BlockStmt{OpenBrace: keyword, Statements: []ast.Stmt{init, loop}}
	}
	return loop, nil
}

func (p *Parser) returnStatement() (ast.Stmt, error) {
	keyword := p.previous()
	var value ast.Expr
	var err error
	if !p.check(token.SEMICOLON) {
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "expected ';' after return value"); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}, nil
}

func (p *Parser) breakStatement() (ast.Stmt, error) {
	keyword := p.previous()
	if _, err := p.consume(token.SEMICOLON, "expected ';' after 'break'"); err != nil {
		return nil, err
	}
	return &ast.BreakStmt{Keyword: keyword}, nil
}

func (p *Parser) continueStatement() (ast.Stmt, error) {
	keyword := p.previous()
	if _, err := p.consume(token.SEMICOLON, "expected ';' after 'continue'"); err != nil {
		return nil, err
	}
	return &ast.ContinueStmt{Keyword: keyword}, nil
}
