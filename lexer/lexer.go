package lexer

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/ztrue/tracerr"

	"github.com/pontaoski/golox/errors"
	"github.com/pontaoski/golox/types"
)

type Lexer struct {
	pos    types.Position
	start  types.Position
	reader *bufio.Reader
	lexeme strings.Builder
	rep    *errors.Reporter
	err    error
}

func NewLexer(reader io.Reader, filename string, rep *errors.Reporter) *Lexer {
	return &Lexer{
		pos:    types.Position{Line: 1, Column: 0, Filename: filename},
		reader: bufio.NewReader(reader),
		rep:    rep,
	}
}

// Err returns the first read error other than io.EOF.
func (l *Lexer) Err() error {
	return l.err
}

func (l *Lexer) newline() {
	l.pos.Line++
	l.pos.Column = 0
}

func (l *Lexer) read() (rune, bool) {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err != io.EOF && l.err == nil {
			l.err = tracerr.Wrap(err)
		}
		return 0, false
	}
	l.pos.Column++
	l.lexeme.WriteRune(r)
	return r, true
}

func (l *Lexer) peekByte(n int) byte {
	byt, err := l.reader.Peek(n)
	if err != nil || len(byt) < n {
		return 0
	}
	return byt[n-1]
}

func (l *Lexer) match(expected byte) bool {
	if l.peekByte(1) != expected {
		return false
	}
	l.read()
	return true
}

func (l *Lexer) kinded(kind types.TokenKind) types.Token {
	return types.Token{
		Kind:   kind,
		Lexeme: l.lexeme.String(),
		Pos:    l.start,
	}
}

func firstChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func otherChar(r rune) bool {
	return firstChar(r) || unicode.IsDigit(r)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

var single = map[rune]types.TokenKind{
	'(': types.LPAREN,
	')': types.RPAREN,
	'{': types.LBRACE,
	'}': types.RBRACE,
	',': types.COMMA,
	'.': types.DOT,
	'-': types.MINUS,
	'+': types.PLUS,
	';': types.SEMICOLON,
	'*': types.STAR,
}

// withEqual lists the operators that gain a trailing '=' variant.
var withEqual = map[rune][2]types.TokenKind{
	'!': {types.BANG, types.BANG_EQUAL},
	'=': {types.EQUAL, types.EQUAL_EQUAL},
	'<': {types.LESS, types.LESS_EQUAL},
	'>': {types.GREATER, types.GREATER_EQUAL},
}

func (l *Lexer) lexIdent() types.Token {
	for {
		r, _, err := l.reader.ReadRune()
		if err != nil {
			break
		}
		if !otherChar(r) {
			if err := l.reader.UnreadRune(); err != nil {
				panic(err)
			}
			break
		}
		l.pos.Column++
		l.lexeme.WriteRune(r)
	}

	tok := l.kinded(types.IDENT)
	if kind, ok := types.Keywords[tok.Lexeme]; ok {
		tok.Kind = kind
	}
	return tok
}

func (l *Lexer) lexNumber() types.Token {
	for isDigit(l.peekByte(1)) {
		l.read()
	}
	if l.peekByte(1) == '.' && isDigit(l.peekByte(2)) {
		l.read()
		for isDigit(l.peekByte(1)) {
			l.read()
		}
	}

	tok := l.kinded(types.NUMBER)
	value, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		l.rep.Error(l.start.Line, "Invalid number literal.")
	}
	tok.Literal = value
	return tok
}

func (l *Lexer) lexString() (types.Token, bool) {
	for {
		r, ok := l.read()
		if !ok {
			l.rep.Error(l.pos.Line, "Unterminated string.")
			return types.Token{}, false
		}
		switch r {
		case '"':
			tok := l.kinded(types.STRING)
			tok.Literal = tok.Lexeme[1 : len(tok.Lexeme)-1]
			return tok, true
		case '\n':
			l.newline()
		}
	}
}

// Lex returns the next token. At end of input it keeps returning EOF.
func (l *Lexer) Lex() types.Token {
	for {
		l.lexeme.Reset()
		r, ok := l.read()
		l.start = l.pos
		if !ok {
			return l.kinded(types.EOF)
		}

		if kind, ok := single[r]; ok {
			return l.kinded(kind)
		}
		if kinds, ok := withEqual[r]; ok {
			if l.match('=') {
				return l.kinded(kinds[1])
			}
			return l.kinded(kinds[0])
		}

		switch r {
		case ' ', '\r', '\t':
			continue
		case '\n':
			l.newline()
			continue
		case '/':
			if l.match('/') {
				for b := l.peekByte(1); b != '\n' && b != 0; b = l.peekByte(1) {
					l.read()
				}
				continue
			}
			return l.kinded(types.SLASH)
		case '"':
			if tok, ok := l.lexString(); ok {
				return tok
			}
			continue
		}

		switch {
		case r >= '0' && r <= '9':
			return l.lexNumber()
		case firstChar(r):
			return l.lexIdent()
		}

		l.rep.Error(l.pos.Line, "Unexpected character.")
	}
}

// LexAll drains the input into a slice terminated by a single EOF token.
func (l *Lexer) LexAll() []types.Token {
	var tokens []types.Token
	for {
		tok := l.Lex()
		tokens = append(tokens, tok)
		if tok.Kind == types.EOF {
			return tokens
		}
	}
}
