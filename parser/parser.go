package parser

import (
	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/golox/ast"
	"github.com/pontaoski/golox/errors"
	"github.com/pontaoski/golox/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/golox", "parser")

const maxArgs = 255

// parseError unwinds the parser to the nearest statement boundary. It has
// already been reported by the time it is raised.
type parseError struct {
	errors.SyntaxError
}

type Parser struct {
	tokens  []types.Token
	current int
	rep     *errors.Reporter
}

func NewParser(tokens []types.Token, rep *errors.Reporter) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != types.EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line()
		}
		tokens = append(tokens, types.Token{Kind: types.EOF, Pos: types.Position{Line: line}})
	}
	return &Parser{tokens: tokens, rep: rep}
}

// Parse returns every statement it could parse. Syntax errors go to the
// reporter and never stop the parse, so callers must consult
// Reporter.HadError before using the result. The returned error is only set
// for internal failures.
func (p *Parser) Parse() (stmts []ast.Stmt, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if ok {
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()

	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, nil
}

func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	if p.check(types.FUN) && p.checkNext(types.IDENT) {
		p.advance()
		return p.function("function")
	}
	if p.match(types.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(types.IDENT, "Expect variable name.")

	var initializer ast.Expr
	if p.match(types.EQUAL) {
		initializer = p.expression()
	}

	p.consume(types.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.Var{Name: name, Initializer: initializer}
}

func (p *Parser) function(kind string) *ast.Function {
	name := p.consume(types.IDENT, "Expect "+kind+" name.")
	p.consume(types.LPAREN, "Expect '(' after "+kind+" name.")
	return p.functionBody(kind, name)
}

// functionBody parses from just past the opening paren. Lambdas enter here
// directly with the `fun` keyword standing in for the name.
func (p *Parser) functionBody(kind string, name types.Token) *ast.Function {
	var params []types.Token
	if !p.check(types.RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.report(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(types.IDENT, "Expect parameter name."))
			if !p.match(types.COMMA) {
				break
			}
		}
	}
	p.consume(types.RPAREN, "Expect ')' after parameters.")
	p.consume(types.LBRACE, "Expect '{' before "+kind+" body.")

	return &ast.Function{
		Name:   name,
		Params: params,
		Body:   p.block(),
	}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(types.FOR):
		return p.forStatement()
	case p.match(types.IF):
		return p.ifStatement()
	case p.match(types.PRINT):
		return p.printStatement()
	case p.match(types.BREAK):
		return p.breakStatement()
	case p.match(types.RETURN):
		return p.returnStatement()
	case p.match(types.WHILE):
		return p.whileStatement()
	case p.match(types.LBRACE):
		return &ast.Block{Statements: p.block()}
	}
	return p.expressionStatement()
}

// forStatement desugars `for (init; cond; incr) body` into
// `{ init; while (cond) { body; incr; } }`.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(types.LPAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(types.SEMICOLON):
	case p.match(types.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(types.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(types.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(types.RPAREN) {
		increment = p.expression()
	}
	p.consume(types.RPAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.Expression{Expression: increment}}}
	}
	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	body = &ast.While{Condition: condition, Body: body}
	if initializer != nil {
		body = &ast.Block{Statements: []ast.Stmt{initializer, body}}
	}

	return body
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(types.LPAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(types.RPAREN, "Expect ')' after if condition.")

	then := p.statement()
	var elseBranch ast.Stmt
	if p.match(types.ELSE) {
		elseBranch = p.statement()
	}

	return &ast.If{Condition: condition, ThenBranch: then, ElseBranch: elseBranch}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(types.SEMICOLON, "Expect ';' after value.")
	return &ast.Print{Expression: value}
}

func (p *Parser) breakStatement() ast.Stmt {
	keyword := p.previous()
	p.consume(types.SEMICOLON, "Expect ';' after 'break'.")
	return &ast.Break{Keyword: keyword}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()

	var value ast.Expr
	if !p.check(types.SEMICOLON) {
		value = p.expression()
	}

	p.consume(types.SEMICOLON, "Expect ';' after return value.")
	return &ast.Return{Keyword: keyword, Value: value}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(types.LPAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(types.RPAREN, "Expect ')' after condition.")

	return &ast.While{Condition: condition, Body: p.statement()}
}

// block should be called when the parser is past the opening brace
func (p *Parser) block() []ast.Stmt {
	statements := []ast.Stmt{}

	for !p.check(types.RBRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}

	p.consume(types.RBRACE, "Expect '}' after block.")
	return statements
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(types.SEMICOLON, "Expect ';' after expression.")
	return &ast.Expression{Expression: expr}
}
