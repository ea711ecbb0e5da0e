package errors

import (
	"fmt"

	"github.com/pontaoski/golox/types"
)

// ScanError is reported by the lexer for input it cannot tokenize.
type ScanError struct {
	Line    int
	Message string
}

func (e ScanError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// SyntaxError covers both parser and resolver diagnostics. They share one
// channel and both block execution.
type SyntaxError struct {
	Token   types.Token
	Message string
}

func (e SyntaxError) where() string {
	if e.Token.Kind == types.EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", e.Token.Lexeme)
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Token.Line(), e.where(), e.Message)
}

type RuntimeError struct {
	Token   types.Token
	Message string
}

func NewRuntimeError(tok types.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{
		Token:   tok,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line())
}
