package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pontaoski/golox/ast"
	"github.com/pontaoski/golox/errors"
	"github.com/pontaoski/golox/lexer"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *errors.Reporter) {
	t.Helper()
	rep := errors.NewReporter(nil)
	tokens := lexer.NewLexer(strings.NewReader(src), "test", rep).LexAll()
	stmts, err := NewParser(tokens, rep).Parse()
	if err != nil {
		t.Fatalf("internal parser error: %v", err)
	}
	return stmts, rep
}

func printed(stmts []ast.Stmt) []string {
	var out []string
	for _, stmt := range stmts {
		out = append(out, ast.PrintStmt(stmt))
	}
	return out
}

func TestParseClean(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1+2*3;", "(; (+ 1 (* 2 3)))"},
		{"1-2-3;", "(; (- (- 1 2) 3))"},
		{"a = b = 3;", "(; (= a (= b 3)))"},
		{"a or b and c;", "(; (or a (and b c)))"},
		{"!-x == +y;", "(; (== (! (- x)) (+ y)))"},
		{"f(1)(2, 3);", "(; (call (call f 1) 2 3))"},
		{"(1 + 2) * 3 >= 4 != true;", "(; (!= (>= (* (group (+ 1 2)) 3) 4) true))"},
		{`print "hi";`, `(print "hi")`},
		{"var x;", "(var x)"},
		{"var x = nil;", "(var x nil)"},
		{"if (a) print 1; else print 2;", "(if a (print 1) (print 2))"},
		{"while (a) { break; }", "(while a (block (break)))"},
		{"fun add(a, b) { return a + b; }", "(fun add (a b) (return (+ a b)))"},
		{"fun f() { return; }", "(fun f () (return))"},
		{"var f = fun (x) { return x; };", "(var f (lambda (x) (return x)))"},
		{"fun () {};", "(; (lambda ()))"},
	}

	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			stmts, rep := parse(t, c.src)
			if rep.HadError() {
				t.Fatalf("unexpected diagnostics: %v", rep.Diagnostics)
			}
			got := printed(stmts)
			if len(got) != 1 || got[0] != c.want {
				t.Fatalf("got %v, want %q", got, c.want)
			}
		})
	}
}

func TestForDesugaring(t *testing.T) {
	stmts, rep := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	if rep.HadError() {
		t.Fatalf("unexpected diagnostics: %v", rep.Diagnostics)
	}
	want := "(block (var i 0) (while (< i 3) (block (print i) (; (= i (+ i 1))))))"
	if got := ast.PrintStmt(stmts[0]); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	stmts, _ = parse(t, "for (;;) break;")
	if got, want := ast.PrintStmt(stmts[0]), "(while true (break))"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCallStoresClosingParen(t *testing.T) {
	stmts, rep := parse(t, "f(1,\n2\n);")
	if rep.HadError() {
		t.Fatalf("unexpected diagnostics: %v", rep.Diagnostics)
	}
	call := stmts[0].(*ast.Expression).Expression.(*ast.Call)
	if call.Paren.Lexeme != ")" || call.Paren.Line() != 3 {
		t.Fatalf("got paren %v", call.Paren)
	}
}

func TestRecovery(t *testing.T) {
	src := "var a = ;\nprint 1;\nvar = 2;\nprint 2;"
	stmts, rep := parse(t, src)
	if !rep.HadError() {
		t.Fatalf("expected errors")
	}
	if len(rep.Diagnostics) != 2 {
		t.Fatalf("expected one diagnostic per bad statement, got %v", rep.Diagnostics)
	}
	if got := rep.Diagnostics[0].Error(); got != "[line 1] Error at ';': Expect expression." {
		t.Fatalf("got %q", got)
	}
	if got := rep.Diagnostics[1].Error(); got != "[line 3] Error at '=': Expect variable name." {
		t.Fatalf("got %q", got)
	}
	got := printed(stmts)
	if len(got) != 2 || got[0] != "(print 1)" || got[1] != "(print 2)" {
		t.Fatalf("expected the good statements to survive, got %v", got)
	}
}

func TestRecoveryInsideBlock(t *testing.T) {
	stmts, rep := parse(t, "{ print ; print 1; }\nprint 2;")
	if len(rep.Diagnostics) != 1 {
		t.Fatalf("got %v", rep.Diagnostics)
	}
	got := printed(stmts)
	if len(got) != 2 || got[0] != "(block (print 1))" {
		t.Fatalf("got %v", got)
	}
}

func TestErrorAtEnd(t *testing.T) {
	_, rep := parse(t, "print 1")
	if len(rep.Diagnostics) != 1 {
		t.Fatalf("got %v", rep.Diagnostics)
	}
	if got := rep.Diagnostics[0].Error(); got != "[line 1] Error at end: Expect ';' after value." {
		t.Fatalf("got %q", got)
	}
}

func TestInvalidAssignmentTarget(t *testing.T) {
	stmts, rep := parse(t, "a + b = c;\nprint 1;")
	if len(rep.Diagnostics) != 1 {
		t.Fatalf("got %v", rep.Diagnostics)
	}
	if !strings.Contains(rep.Diagnostics[0].Error(), "Invalid assignment target.") {
		t.Fatalf("got %q", rep.Diagnostics[0])
	}
	// Non-fatal: both statements are still produced.
	if len(stmts) != 2 {
		t.Fatalf("got %v", printed(stmts))
	}
}

func TestTooManyArguments(t *testing.T) {
	var args []string
	for i := 0; i < 256; i++ {
		args = append(args, fmt.Sprint(i))
	}
	stmts, rep := parse(t, "f("+strings.Join(args, ", ")+");")
	if len(rep.Diagnostics) != 1 {
		t.Fatalf("got %v", rep.Diagnostics)
	}
	if !strings.Contains(rep.Diagnostics[0].Error(), "Can't have more than 255 arguments.") {
		t.Fatalf("got %q", rep.Diagnostics[0])
	}
	call := stmts[0].(*ast.Expression).Expression.(*ast.Call)
	if len(call.Arguments) != 256 {
		t.Fatalf("expected all arguments to be kept, got %d", len(call.Arguments))
	}
}

func TestTooManyParameters(t *testing.T) {
	var params []string
	for i := 0; i < 256; i++ {
		params = append(params, fmt.Sprintf("p%d", i))
	}
	stmts, rep := parse(t, "fun f("+strings.Join(params, ", ")+") {}\nprint 1;")
	if len(rep.Diagnostics) != 1 {
		t.Fatalf("got %v", rep.Diagnostics)
	}
	if got := rep.Diagnostics[0].Error(); got != "[line 1] Error at 'p255': Can't have more than 255 parameters." {
		t.Fatalf("got %q", got)
	}
	if len(stmts) != 2 {
		t.Fatalf("expected the declaration and the print, got %v", printed(stmts))
	}
	if fn := stmts[0].(*ast.Function); len(fn.Params) != 256 {
		t.Fatalf("expected all parameters to be kept, got %d", len(fn.Params))
	}
	if _, ok := stmts[1].(*ast.Print); !ok {
		t.Fatalf("statement after the declaration is %T", stmts[1])
	}
}

func TestMissingEOF(t *testing.T) {
	rep := errors.NewReporter(nil)
	stmts, err := NewParser(nil, rep).Parse()
	if err != nil || len(stmts) != 0 || rep.HadError() {
		t.Fatalf("empty input: %v %v %v", stmts, err, rep.Diagnostics)
	}
}
