package parser

import (
	"github.com/pontaoski/golox/errors"
	"github.com/pontaoski/golox/types"
)

func (p *Parser) match(kinds ...types.TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind types.TokenKind, message string) types.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.error(p.peek(), message))
}

func (p *Parser) check(kind types.TokenKind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) checkNext(kind types.TokenKind) bool {
	if p.isAtEnd() || p.current+1 >= len(p.tokens) {
		return false
	}
	return p.tokens[p.current+1].Kind == kind
}

func (p *Parser) advance() types.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == types.EOF
}

func (p *Parser) peek() types.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() types.Token {
	return p.tokens[p.current-1]
}

// report records a diagnostic without unwinding.
func (p *Parser) report(tok types.Token, message string) {
	p.rep.TokenError(tok, message)
}

func (p *Parser) error(tok types.Token, message string) parseError {
	p.report(tok, message)
	return parseError{errors.SyntaxError{Token: tok, Message: message}}
}

// synchronize discards tokens until the start of the next statement.
func (p *Parser) synchronize() {
	plog.Debugf("synchronizing after error at %s", p.peek().Pos)
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Kind == types.SEMICOLON {
			return
		}

		switch p.peek().Kind {
		case types.CLASS, types.FUN, types.VAR, types.FOR, types.IF,
			types.WHILE, types.PRINT, types.RETURN, types.BREAK:
			return
		}

		p.advance()
	}
}
