package interpreter

import (
	"fmt"
	"strconv"

	"github.com/pontaoski/golox/ast"
)

// Value is nil, bool, float64, string or Callable.
type Value interface{}

type Callable interface {
	Arity() int
	Call(interp *Interpreter, args []Value) (Value, error)
	String() string
}

// Function is a user-defined function together with the environment it was
// declared in.
type Function struct {
	declaration *ast.Function
	closure     *Environment
}

func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

func (f *Function) Call(interp *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	c, err := interp.executeScope(f.declaration, env)
	if err != nil {
		return nil, err
	}

	switch c.flow {
	case flowReturn:
		return c.value, nil
	case flowBreak:
		return nil, errBreakOutsideLoop(c.keyword)
	}
	return nil, nil
}

func (f *Function) String() string {
	if f.declaration.IsLambda() {
		return "<fn lambda>"
	}
	return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme)
}

type NativeFunction struct {
	Name   string
	ArityN int
	Fn     func(interp *Interpreter, args []Value) (Value, error)
}

func (n *NativeFunction) Arity() int {
	return n.ArityN
}

func (n *NativeFunction) Call(interp *Interpreter, args []Value) (Value, error) {
	return n.Fn(interp, args)
}

func (n *NativeFunction) String() string {
	return "<native fn>"
}

// isTruthy treats nil and false as false and everything else, including 0
// and the empty string, as true.
func isTruthy(v Value) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	}
	return true
}

func isEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil {
		return false
	}
	return a == b
}

// Stringify renders v the way `print` does.
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case string:
		return val
	case Callable:
		return val.String()
	}
	return fmt.Sprint(v)
}
