package interpreter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/golox/ast"
	"github.com/pontaoski/golox/errors"
	"github.com/pontaoski/golox/resolver"
	"github.com/pontaoski/golox/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/golox", "interpreter")

// Host is everything the native functions touch outside the interpreter.
// Zero fields fall back to the process's stdio, os.Exit and time.Now.
type Host struct {
	Stdout io.Writer
	Stdin  io.Reader
	Exit   func(code int)
	Now    func() time.Time
}

type flow int

const (
	flowNormal flow = iota
	flowReturn
	flowBreak
)

// completion is how a statement finished. Return and break travel outward
// as values until a call boundary or loop consumes them.
type completion struct {
	flow    flow
	value   Value
	keyword types.Token
}

var normal = completion{}

type Interpreter struct {
	globals *Environment
	env     *Environment
	locals  resolver.Locals
	host    Host
	stdin   *bufio.Reader
	rep     *errors.Reporter
}

func New(rep *errors.Reporter, host Host) *Interpreter {
	if host.Stdout == nil {
		host.Stdout = os.Stdout
	}
	if host.Stdin == nil {
		host.Stdin = os.Stdin
	}
	if host.Exit == nil {
		host.Exit = os.Exit
	}
	if host.Now == nil {
		host.Now = time.Now
	}

	globals := NewEnvironment(nil)
	addNatives(globals)

	return &Interpreter{
		globals: globals,
		env:     globals,
		locals:  resolver.Locals{},
		host:    host,
		stdin:   bufio.NewReader(host.Stdin),
		rep:     rep,
	}
}

func (i *Interpreter) Globals() *Environment {
	return i.globals
}

func errBreakOutsideLoop(keyword types.Token) error {
	return errors.NewRuntimeError(keyword, "Can't break outside of a loop.")
}

// Interpret runs stmts against the global environment. locals is merged
// into the distances already known, so one interpreter can serve many
// REPL lines. The first runtime error is reported and ends the run.
func (i *Interpreter) Interpret(stmts []ast.Stmt, locals resolver.Locals) error {
	for expr, depth := range locals {
		i.locals[expr] = depth
	}

	for _, stmt := range stmts {
		c, err := i.execute(stmt)
		if err == nil && c.flow == flowBreak {
			err = errBreakOutsideLoop(c.keyword)
		}
		if err == nil {
			continue
		}

		if rerr, ok := err.(*errors.RuntimeError); ok {
			i.rep.RuntimeError(rerr)
			return rerr
		}
		return tracerr.Wrap(err)
	}
	return nil
}

// executeScope runs the body of a scope-opening statement in env. The
// previous environment is restored however the body exits.
func (i *Interpreter) executeScope(stmt ast.Stmt, env *Environment) (completion, error) {
	body, _ := ast.ScopeBody(stmt)

	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, s := range body {
		c, err := i.execute(s)
		if err != nil || c.flow != flowNormal {
			return c, err
		}
	}
	return normal, nil
}

func (i *Interpreter) execute(stmt ast.Stmt) (completion, error) {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := i.evaluate(s.Expression)
		return normal, err
	case *ast.Print:
		v, err := i.evaluate(s.Expression)
		if err != nil {
			return normal, err
		}
		fmt.Fprintln(i.host.Stdout, Stringify(v))
		return normal, nil
	case *ast.Var:
		var value Value
		if s.Initializer != nil {
			v, err := i.evaluate(s.Initializer)
			if err != nil {
				return normal, err
			}
			value = v
		}
		i.env.Define(s.Name.Lexeme, value)
		return normal, nil
	case *ast.Block:
		return i.executeScope(s, NewEnvironment(i.env))
	case *ast.If:
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return normal, err
		}
		if isTruthy(cond) {
			return i.execute(s.ThenBranch)
		}
		if s.ElseBranch != nil {
			return i.execute(s.ElseBranch)
		}
		return normal, nil
	case *ast.While:
		return i.executeWhile(s)
	case *ast.Function:
		i.env.Define(s.Name.Lexeme, &Function{declaration: s, closure: i.env})
		return normal, nil
	case *ast.Return:
		var value Value
		if s.Value != nil {
			v, err := i.evaluate(s.Value)
			if err != nil {
				return normal, err
			}
			value = v
		}
		return completion{flow: flowReturn, value: value, keyword: s.Keyword}, nil
	case *ast.Break:
		return completion{flow: flowBreak, keyword: s.Keyword}, nil
	}

	panic(fmt.Sprintf("unhandled statement %T", stmt))
}

func (i *Interpreter) executeWhile(s *ast.While) (completion, error) {
	for {
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return normal, err
		}
		if !isTruthy(cond) {
			return normal, nil
		}

		c, err := i.execute(s.Body)
		if err != nil {
			return normal, err
		}
		switch c.flow {
		case flowBreak:
			return normal, nil
		case flowReturn:
			return c, nil
		}
	}
}
