package parser

import (
	"github.com/pontaoski/golox/ast"
	"github.com/pontaoski/golox/types"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(types.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}
		}

		p.report(equals, "Invalid assignment target.")
	}

	return expr
}

func (p *Parser) or() ast.Expr {
	return p.logical(p.and, types.OR)
}

func (p *Parser) and() ast.Expr {
	return p.logical(p.equality, types.AND)
}

func (p *Parser) logical(operand func() ast.Expr, kind types.TokenKind) ast.Expr {
	expr := operand()
	for p.match(kind) {
		op := p.previous()
		right := operand()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

// binary parses one left-associative precedence tier.
func (p *Parser) binary(operand func() ast.Expr, kinds ...types.TokenKind) ast.Expr {
	expr := operand()
	for p.match(kinds...) {
		op := p.previous()
		right := operand()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	return p.binary(p.comparison, types.BANG_EQUAL, types.EQUAL_EQUAL)
}

func (p *Parser) comparison() ast.Expr {
	return p.binary(p.term, types.GREATER, types.GREATER_EQUAL, types.LESS, types.LESS_EQUAL)
}

func (p *Parser) term() ast.Expr {
	return p.binary(p.factor, types.MINUS, types.PLUS)
}

func (p *Parser) factor() ast.Expr {
	return p.binary(p.unary, types.SLASH, types.STAR)
}

func (p *Parser) unary() ast.Expr {
	if p.match(types.BANG, types.MINUS, types.PLUS) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: op, Right: right}
	}

	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for p.match(types.LPAREN) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(types.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.report(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(types.COMMA) {
				break
			}
		}
	}

	paren := p.consume(types.RPAREN, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(types.FALSE):
		return &ast.Literal{Value: false}
	case p.match(types.TRUE):
		return &ast.Literal{Value: true}
	case p.match(types.NIL):
		return &ast.Literal{Value: nil}
	case p.match(types.NUMBER, types.STRING):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(types.IDENT):
		return &ast.Variable{Name: p.previous()}
	case p.match(types.FUN):
		keyword := p.previous()
		p.consume(types.LPAREN, "Expect '(' after 'fun'.")
		return &ast.Lambda{Function: p.functionBody("lambda", keyword)}
	case p.match(types.LPAREN):
		expr := p.expression()
		p.consume(types.RPAREN, "Expect ')' after expression.")
		return &ast.Grouping{Expression: expr}
	}

	panic(p.error(p.peek(), "Expect expression."))
}
