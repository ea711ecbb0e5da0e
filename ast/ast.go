// Package ast holds the syntax tree produced by the parser. The node types
// live in nodes_gen.go and are generated from nodes.def.
package ast

import "github.com/pontaoski/golox/types"

//go:generate sh -c "cd ../tool && go run . ../ast/nodes.def ../ast/nodes_gen.go"

// ScopeBody reports whether stmt opens a lexical scope and, if so, returns
// the statements that run inside it. Blocks and function bodies are the
// only such constructs; the resolver and the interpreter both open scopes
// through this function so their distances agree.
func ScopeBody(stmt Stmt) ([]Stmt, bool) {
	switch s := stmt.(type) {
	case *Block:
		return s.Statements, true
	case *Function:
		return s.Body, true
	}
	return nil, false
}

// IsLambda reports whether fn was written as an anonymous function
// expression. Lambdas carry the `fun` keyword as their name token.
func (fn *Function) IsLambda() bool {
	return fn.Name.Kind == types.FUN
}
