package parser

import (
	"github.com/cwbudde/go-wisp/pkg/ast"
	"github.com/cwbudde/go-wisp/pkg/token"
)

// Precedence climbs, lowest to highest: assignment, or, and, equality,
// comparison, term, factor, unary, call, primary.

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}
	if p.match(token.EQUAL) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}, nil
		case *ast.PropertyGet:
			return &ast.PropertySet{Object: target.Object, Name: target.Name, Value: value}, nil
		default:
			return nil, &ParseError{Pos: equals.Pos, Message: "invalid assignment target"}
		}
	}
	return expr, nil
}

func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(token.OR) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(token.AND) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(token.PLUS, token.MINUS) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(token.STAR, token.SLASH) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: op, Operand: operand}, nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(token.LPAREN):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(token.DOT):
			name, err := p.consume(token.IDENT, "expected property name after '.'")
			if err != nil {
				return nil, err
			}
			expr = &ast.PropertyGet{Object: expr, Name: name}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren, err := p.consume(token.RPAREN, "expected ')' after arguments")
	if err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Paren: paren, Args: args}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Token: p.previous(), Value: false}, nil
	case p.match(token.TRUE):
		return &ast.Literal{Token: p.previous(), Value: true}, nil
	case p.match(token.NIL):
		return &ast.Literal{Token: p.previous(), Value: nil}, nil
	case p.match(token.NUMBER, token.STRING):
		t := p.previous()
		return &ast.Literal{Token: t, Value: t.Value}, nil
	case p.match(token.THIS):
		return &ast.This{Keyword: p.previous()}, nil
	case p.match(token.SUPER):
		keyword := p.previous()
		if _, err := p.consume(token.DOT, "expected '.' after 'super'"); err != nil {
			return nil, err
		}
		method, err := p.consume(token.IDENT, "expected superclass method name")
		if err != nil {
			return nil, err
		}
		return &ast.Super{Keyword: keyword, Method: method}, nil
	case p.match(token.IDENT):
		return &ast.Variable{Name: p.previous()}, nil
	case p.match(token.LPAREN):
		open := p.previous()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RPAREN, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return &ast.Grouping{OpenParen: open, Expr: expr}, nil
	default:
		return nil, &ParseError{Pos: p.peek().Pos, Message: "expected expression"}
	}
}
