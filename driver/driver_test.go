package driver

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pontaoski/golox/interpreter"
)

func newSession(stdout, diag *bytes.Buffer) *Session {
	return NewSession(Options{
		Diagnostics: diag,
		Filename:    "test.lox",
		Host: interpreter.Host{
			Stdout: stdout,
			Stdin:  strings.NewReader(""),
		},
	})
}

func TestRunStatuses(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		status Status
		out    string
		diag   string
	}{
		{"ok", "print 1 + 2 * 3;", StatusOK, "7\n", ""},
		{"lex error", "print 1; @", StatusStatic, "", "[line 1] Error: Unexpected character.\n"},
		{"parse error", "print 1", StatusStatic, "", "[line 1] Error at end: Expect ';' after value.\n"},
		{"resolve error", "return 1;", StatusStatic, "", "[line 1] Error at 'return': Can't return from top-level code.\n"},
		{"duplicate local", "{ var a = 1; var a = 2; }", StatusStatic, "", "[line 1] Error at 'a': Already a variable with this name in this scope.\n"},
		{"runtime error", "print 1;\nprint -nil;", StatusRuntime, "1\n", "Operand must be a number.\n[line 2]\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out, diag bytes.Buffer
			status, err := newSession(&out, &diag).Run(c.src)
			if err != nil {
				t.Fatalf("unexpected internal error: %v", err)
			}
			if status != c.status {
				t.Errorf("status = %d, want %d", status, c.status)
			}
			if out.String() != c.out {
				t.Errorf("output = %q, want %q", out.String(), c.out)
			}
			if diag.String() != c.diag {
				t.Errorf("diagnostics = %q, want %q", diag.String(), c.diag)
			}
		})
	}
}

func TestSyntaxErrorSkipsResolve(t *testing.T) {
	var out, diag bytes.Buffer
	s := newSession(&out, &diag)

	status, _ := s.Run("return 1; print;")
	if status != StatusStatic {
		t.Fatalf("status = %d", status)
	}
	if n := len(s.Reporter().Diagnostics); n != 1 {
		t.Errorf("got %d diagnostics, want only the syntax error: %v", n, s.Reporter().Diagnostics)
	}
}

func TestRunLineKeepsGlobals(t *testing.T) {
	var out, diag bytes.Buffer
	s := newSession(&out, &diag)

	lines := []string{
		"var a = 1;",
		"print a +;",
		"print nope;",
		"fun inc() { a = a + 1; return a; }",
		"print inc();",
	}
	want := []Status{StatusOK, StatusStatic, StatusRuntime, StatusOK, StatusOK}

	for i, line := range lines {
		status, err := s.RunLine(line)
		if err != nil {
			t.Fatalf("%q: %v", line, err)
		}
		if status != want[i] {
			t.Errorf("%q: status = %d, want %d", line, status, want[i])
		}
	}

	if out.String() != "2\n" {
		t.Errorf("output = %q, want %q", out.String(), "2\n")
	}
	if s.Reporter().HadError() || s.Reporter().HadRuntimeError() {
		t.Error("error state leaked into the last line")
	}
}

func TestRunFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "golox-driver")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "counter.lox")
	src := `
fun makeCounter() {
  var i = 0;
  fun count() { i = i + 1; return i; }
  return count;
}
var counter = makeCounter();
print counter();
print counter();
`
	if err := ioutil.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	var out, diag bytes.Buffer
	status, err := newSession(&out, &diag).RunFile(path, nil)
	if err != nil || status != StatusOK {
		t.Fatalf("RunFile = %d, %v (%s)", status, err, diag.String())
	}
	if out.String() != "1\n2\n" {
		t.Errorf("output = %q", out.String())
	}

	status, err = newSession(&out, &diag).RunFile(filepath.Join(dir, "missing.lox"), nil)
	if err == nil || status != StatusIO {
		t.Errorf("missing file: status %d, err %v", status, err)
	}
}
