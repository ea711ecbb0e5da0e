// Package driver runs Lox source through the lexer, parser, resolver and
// interpreter, and maps the outcome onto process exit statuses.
package driver

import (
	"io"
	"strings"

	"github.com/coreos/pkg/capnslog"

	"github.com/pontaoski/golox/errors"
	"github.com/pontaoski/golox/interpreter"
	"github.com/pontaoski/golox/lexer"
	"github.com/pontaoski/golox/parser"
	"github.com/pontaoski/golox/reader"
	"github.com/pontaoski/golox/resolver"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/golox", "driver")

// Status is a process exit status, following sysexits.h.
type Status int

const (
	StatusOK      Status = 0
	StatusUsage   Status = 64
	StatusStatic  Status = 65
	StatusRuntime Status = 70
	StatusIO      Status = 74
)

type Options struct {
	// Diagnostics receives error reports. Nil discards them.
	Diagnostics io.Writer
	Color       bool
	Filename    string
	Host        interpreter.Host
}

// Session is one interpreter plus the error state of the inputs run
// through it. Globals persist between Run calls.
type Session struct {
	rep      *errors.Reporter
	interp   *interpreter.Interpreter
	filename string
}

func NewSession(opts Options) *Session {
	rep := errors.NewReporter(opts.Diagnostics)
	if !opts.Color {
		rep.DisableColor()
	}
	filename := opts.Filename
	if filename == "" {
		filename = "<stdin>"
	}
	return &Session{
		rep:      rep,
		interp:   interpreter.New(rep, opts.Host),
		filename: filename,
	}
}

func (s *Session) Reporter() *errors.Reporter {
	return s.rep
}

// Run executes source. Each phase runs only if the previous one reported
// nothing. The error is non-nil only for failures that are not Lox
// diagnostics.
func (s *Session) Run(source string) (Status, error) {
	tokens := lexer.NewLexer(strings.NewReader(source), s.filename, s.rep).LexAll()

	stmts, err := parser.NewParser(tokens, s.rep).Parse()
	if err != nil {
		return StatusStatic, err
	}
	if s.rep.HadError() {
		plog.Debugf("%s: stopping after parse, %d diagnostics", s.filename, len(s.rep.Diagnostics))
		return StatusStatic, nil
	}

	locals := resolver.New(s.rep).Resolve(stmts)
	if s.rep.HadError() {
		plog.Debugf("%s: stopping after resolve, %d diagnostics", s.filename, len(s.rep.Diagnostics))
		return StatusStatic, nil
	}

	if err := s.interp.Interpret(stmts, locals); err != nil {
		if s.rep.HadRuntimeError() {
			return StatusRuntime, nil
		}
		return StatusRuntime, err
	}
	return StatusOK, nil
}

// RunFile runs the script at path, or in when path is reader.Stdin.
func (s *Session) RunFile(path string, in io.Reader) (Status, error) {
	source, err := reader.ReadSource(path, in)
	if err != nil {
		return StatusIO, err
	}
	s.filename = path
	return s.Run(source)
}

// RunLine is Run for interactive input: the error state is cleared first
// so one bad line does not poison the next.
func (s *Session) RunLine(line string) (Status, error) {
	s.rep.Reset()
	return s.Run(line)
}
