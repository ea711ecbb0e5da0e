package errors

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/tevino/abool/v2"

	"github.com/pontaoski/golox/types"
)

// Reporter is the diagnostic channel shared by the lexer, parser, resolver
// and interpreter of a single session.
type Reporter struct {
	out   io.Writer
	paint *color.Color

	hadError        *abool.AtomicBool
	hadRuntimeError *abool.AtomicBool

	Diagnostics []error
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:             out,
		paint:           color.New(color.FgRed),
		hadError:        abool.NewBool(false),
		hadRuntimeError: abool.NewBool(false),
	}
}

// DisableColor forces plain output regardless of the terminal.
func (r *Reporter) DisableColor() {
	r.paint.DisableColor()
}

func (r *Reporter) emit(err error) {
	r.Diagnostics = append(r.Diagnostics, err)
	if r.out != nil {
		r.paint.Fprintln(r.out, err.Error())
	}
}

func (r *Reporter) Error(line int, message string) {
	r.emit(ScanError{Line: line, Message: message})
	r.hadError.Set()
}

func (r *Reporter) TokenError(tok types.Token, message string) {
	r.emit(SyntaxError{Token: tok, Message: message})
	r.hadError.Set()
}

func (r *Reporter) RuntimeError(err *RuntimeError) {
	r.emit(err)
	r.hadRuntimeError.Set()
}

func (r *Reporter) HadError() bool {
	return r.hadError.IsSet()
}

func (r *Reporter) HadRuntimeError() bool {
	return r.hadRuntimeError.IsSet()
}

// Reset clears the flags and collected diagnostics; the REPL calls it
// before every input.
func (r *Reporter) Reset() {
	r.hadError.UnSet()
	r.hadRuntimeError.UnSet()
	r.Diagnostics = nil
}

func (r *Reporter) String() string {
	return fmt.Sprintf("Reporter{errors: %d, syntax: %t, runtime: %t}", len(r.Diagnostics), r.HadError(), r.HadRuntimeError())
}
