package main

import (
	"strings"
	"testing"
)

const sample = `
package ast

import "github.com/pontaoski/golox/types"

sum Expr {
	Binary(Left Expr, Operator types.Token, Right Expr)
	Call(Callee Expr, Arguments []Expr)
	Lambda(Function *Function)
	Literal(Value any)
}
`

func TestParse(t *testing.T) {
	decls, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if decls.Package != "ast" {
		t.Fatalf("package: got %q", decls.Package)
	}
	if len(decls.Sums) != 1 || len(decls.Sums[0].Variants) != 4 {
		t.Fatalf("unexpected shape: %#v", decls.Sums)
	}

	binary := decls.Sums[0].Variants[0]
	if binary.Fields[1].Pkg != "types" || binary.Fields[1].Kind != "Token" {
		t.Fatalf("qualified field parsed as %#v", binary.Fields[1])
	}
	call := decls.Sums[0].Variants[1]
	if !call.Fields[1].Slice {
		t.Fatalf("expected slice field, got %#v", call.Fields[1])
	}
	lambda := decls.Sums[0].Variants[2]
	if !lambda.Fields[0].Ptr {
		t.Fatalf("expected pointer field, got %#v", lambda.Fields[0])
	}
}

func TestGenerate(t *testing.T) {
	decls, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out := Generate(decls)

	for _, want := range []string{
		"Code generated by adtGen. DO NOT EDIT.",
		"package ast",
		"type Expr interface",
		"isExpr()",
		"type Binary struct",
		"Operator types.Token",
		"Arguments []Expr",
		"Function *Function",
		"func (*Literal) isExpr() {}",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("generated code is missing %q:\n%s", want, out)
		}
	}
}
