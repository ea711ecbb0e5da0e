package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func formatLiteral(v any) string {
	switch lit := v.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(lit, 'f', -1, 64)
	case string:
		return strconv.Quote(lit)
	default:
		return fmt.Sprint(lit)
	}
}

func parenthesize(name string, parts ...string) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, part := range parts {
		b.WriteByte(' ')
		b.WriteString(part)
	}
	b.WriteByte(')')
	return b.String()
}

// PrintExpr renders e in prefix form, e.g. `(+ 1 (* 2 3))`.
func PrintExpr(e Expr) string {
	switch expr := e.(type) {
	case *Literal:
		return formatLiteral(expr.Value)
	case *Grouping:
		return parenthesize("group", PrintExpr(expr.Expression))
	case *Unary:
		return parenthesize(expr.Operator.Lexeme, PrintExpr(expr.Right))
	case *Binary:
		return parenthesize(expr.Operator.Lexeme, PrintExpr(expr.Left), PrintExpr(expr.Right))
	case *Logical:
		return parenthesize(expr.Operator.Lexeme, PrintExpr(expr.Left), PrintExpr(expr.Right))
	case *Variable:
		return expr.Name.Lexeme
	case *Assign:
		return parenthesize("=", expr.Name.Lexeme, PrintExpr(expr.Value))
	case *Call:
		parts := []string{PrintExpr(expr.Callee)}
		for _, arg := range expr.Arguments {
			parts = append(parts, PrintExpr(arg))
		}
		return parenthesize("call", parts...)
	case *Lambda:
		return printFunction("lambda", expr.Function)
	case nil:
		return "nil"
	}

	panic(fmt.Sprintf("unhandled expression %T", e))
}

func printFunction(head string, fn *Function) string {
	var params []string
	for _, param := range fn.Params {
		params = append(params, param.Lexeme)
	}
	parts := []string{"(" + strings.Join(params, " ") + ")"}
	for _, stmt := range fn.Body {
		parts = append(parts, PrintStmt(stmt))
	}
	return parenthesize(head, parts...)
}

// PrintStmt renders s in the same prefix form as PrintExpr.
func PrintStmt(s Stmt) string {
	switch stmt := s.(type) {
	case *Expression:
		return parenthesize(";", PrintExpr(stmt.Expression))
	case *Print:
		return parenthesize("print", PrintExpr(stmt.Expression))
	case *Var:
		if stmt.Initializer == nil {
			return parenthesize("var", stmt.Name.Lexeme)
		}
		return parenthesize("var", stmt.Name.Lexeme, PrintExpr(stmt.Initializer))
	case *Block:
		var parts []string
		for _, inner := range stmt.Statements {
			parts = append(parts, PrintStmt(inner))
		}
		return parenthesize("block", parts...)
	case *If:
		if stmt.ElseBranch == nil {
			return parenthesize("if", PrintExpr(stmt.Condition), PrintStmt(stmt.ThenBranch))
		}
		return parenthesize("if", PrintExpr(stmt.Condition), PrintStmt(stmt.ThenBranch), PrintStmt(stmt.ElseBranch))
	case *While:
		return parenthesize("while", PrintExpr(stmt.Condition), PrintStmt(stmt.Body))
	case *Function:
		return printFunction("fun "+stmt.Name.Lexeme, stmt)
	case *Return:
		if stmt.Value == nil {
			return "(return)"
		}
		return parenthesize("return", PrintExpr(stmt.Value))
	case *Break:
		return "(break)"
	}

	panic(fmt.Sprintf("unhandled statement %T", s))
}
