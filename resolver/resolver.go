// Package resolver computes, for every local variable reference, how many
// scopes separate it from its declaration.
package resolver

import (
	"github.com/coreos/pkg/capnslog"
	"github.com/edwingeng/deque"

	"github.com/pontaoski/golox/ast"
	"github.com/pontaoski/golox/errors"
	"github.com/pontaoski/golox/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/golox", "resolver")

// Locals maps a Variable or Assign node to its scope distance. References
// missing from the map are globals.
type Locals map[ast.Expr]int

type functionKind int

const (
	noFunction functionKind = iota
	inFunction
	inLambda
)

// scope maps a name to whether its initializer has finished resolving.
type scope map[string]bool

type Resolver struct {
	scopes  deque.Deque
	current functionKind
	locals  Locals
	rep     *errors.Reporter
}

func New(rep *errors.Reporter) *Resolver {
	return &Resolver{
		scopes: deque.NewDeque(),
		locals: Locals{},
		rep:    rep,
	}
}

// Resolve walks stmts and returns the distances found so far. Binding
// errors are reported and do not stop the walk.
func (r *Resolver) Resolve(stmts []ast.Stmt) Locals {
	r.resolveStmts(stmts)
	return r.locals
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) beginScope() {
	r.scopes.PushBack(scope{})
}

func (r *Resolver) endScope() {
	r.scopes.PopBack()
}

func (r *Resolver) innermost() (scope, bool) {
	if r.scopes.Empty() {
		return nil, false
	}
	return r.scopes.Back().(scope), true
}

func (r *Resolver) declare(name types.Token) {
	s, ok := r.innermost()
	if !ok {
		return
	}
	if _, exists := s[name.Lexeme]; exists {
		r.rep.TokenError(name, "Already a variable with this name in this scope.")
		return
	}
	s[name.Lexeme] = false
}

func (r *Resolver) define(name types.Token) {
	s, ok := r.innermost()
	if !ok {
		return
	}
	s[name.Lexeme] = true
}

func (r *Resolver) resolveLocal(expr ast.Expr, name types.Token) {
	depth := r.scopes.Len()
	for i := depth - 1; i >= 0; i-- {
		if _, ok := r.scopes.Peek(i).(scope)[name.Lexeme]; ok {
			r.locals[expr] = depth - 1 - i
			plog.Debugf("%s: '%s' resolved at distance %d", name.Pos, name.Lexeme, depth-1-i)
			return
		}
	}
}

// resolveScope opens the scope stmt introduces, binds params in it and
// resolves the scope's body.
func (r *Resolver) resolveScope(stmt ast.Stmt, params []types.Token) {
	body, ok := ast.ScopeBody(stmt)
	if !ok {
		return
	}

	r.beginScope()
	defer r.endScope()

	for _, param := range params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(body)
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosing := r.current
	r.current = kind
	defer func() { r.current = enclosing }()

	r.resolveScope(fn, fn.Params)
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.resolveScope(s, nil)
	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, inFunction)
	case *ast.Expression:
		r.resolveExpr(s.Expression)
	case *ast.Print:
		r.resolveExpr(s.Expression)
	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}
	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	case *ast.Return:
		if r.current == noFunction {
			r.rep.TokenError(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	case *ast.Break:
		// Checked at run time.
	default:
		panic("unhandled statement")
	}
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		if s, ok := r.innermost(); ok {
			if defined, declared := s[e.Name.Lexeme]; declared && !defined {
				r.rep.TokenError(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}
	case *ast.Grouping:
		r.resolveExpr(e.Expression)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Lambda:
		r.resolveFunction(e.Function, inLambda)
	case *ast.Literal:
	default:
		panic("unhandled expression")
	}
}
