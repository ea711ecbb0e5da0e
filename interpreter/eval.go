package interpreter

import (
	"fmt"

	"github.com/pontaoski/golox/ast"
	"github.com/pontaoski/golox/errors"
	"github.com/pontaoski/golox/types"
)

func (i *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return i.evaluate(e.Expression)
	case *ast.Unary:
		return i.evaluateUnary(e)
	case *ast.Binary:
		return i.evaluateBinary(e)
	case *ast.Logical:
		left, err := i.evaluate(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Operator.Kind == types.OR {
			if isTruthy(left) {
				return left, nil
			}
		} else if !isTruthy(left) {
			return left, nil
		}
		return i.evaluate(e.Right)
	case *ast.Variable:
		return i.lookUpVariable(e.Name, e)
	case *ast.Assign:
		value, err := i.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := i.locals[e]; ok {
			i.env.AssignAt(distance, e.Name, value)
			return value, nil
		}
		if err := i.globals.Assign(e.Name, value); err != nil {
			return nil, err
		}
		return value, nil
	case *ast.Call:
		return i.evaluateCall(e)
	case *ast.Lambda:
		return &Function{declaration: e.Function, closure: i.env}, nil
	}

	panic(fmt.Sprintf("unhandled expression %T", expr))
}

func (i *Interpreter) lookUpVariable(name types.Token, expr ast.Expr) (Value, error) {
	if distance, ok := i.locals[expr]; ok {
		return i.env.GetAt(distance, name)
	}
	return i.globals.Get(name)
}

func checkNumber(op types.Token, operand Value) (float64, error) {
	if n, ok := operand.(float64); ok {
		return n, nil
	}
	return 0, errors.NewRuntimeError(op, "Operand must be a number.")
}

func checkNumbers(op types.Token, left, right Value) (float64, float64, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, errors.NewRuntimeError(op, "Operands must be numbers.")
	}
	return l, r, nil
}

func (i *Interpreter) evaluateUnary(e *ast.Unary) (Value, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case types.BANG:
		return !isTruthy(right), nil
	case types.MINUS:
		n, err := checkNumber(e.Operator, right)
		if err != nil {
			return nil, err
		}
		return -n, nil
	case types.PLUS:
		return checkNumber(e.Operator, right)
	}

	panic(fmt.Sprintf("unhandled unary operator %s", e.Operator.Kind))
}

func (i *Interpreter) evaluateBinary(e *ast.Binary) (Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	op := e.Operator
	switch op.Kind {
	case types.EQUAL_EQUAL:
		return isEqual(left, right), nil
	case types.BANG_EQUAL:
		return !isEqual(left, right), nil
	case types.PLUS:
		return add(op, left, right)
	}

	l, r, err := checkNumbers(op, left, right)
	if err != nil {
		return nil, err
	}

	switch op.Kind {
	case types.MINUS:
		return l - r, nil
	case types.STAR:
		return l * r, nil
	case types.SLASH:
		if r == 0 {
			return nil, errors.NewRuntimeError(op, "Division by zero is not allowed.")
		}
		return l / r, nil
	case types.GREATER:
		return l > r, nil
	case types.GREATER_EQUAL:
		return l >= r, nil
	case types.LESS:
		return l < r, nil
	case types.LESS_EQUAL:
		return l <= r, nil
	}

	panic(fmt.Sprintf("unhandled binary operator %s", op.Kind))
}

// add implements `+`: numeric addition, or concatenation when either side
// is a string.
func add(op types.Token, left, right Value) (Value, error) {
	if l, ok := left.(float64); ok {
		if r, ok := right.(float64); ok {
			return l + r, nil
		}
	}

	_, lstr := left.(string)
	_, rstr := right.(string)
	if lstr || rstr {
		return Stringify(left) + Stringify(right), nil
	}

	return nil, errors.NewRuntimeError(op, "Operands must be two numbers or two strings.")
}

func (i *Interpreter) evaluateCall(e *ast.Call) (Value, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(e.Arguments))
	for _, arg := range e.Arguments {
		v, err := i.evaluate(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, errors.NewRuntimeError(e.Paren, "Can only call functions.")
	}
	if len(args) != fn.Arity() {
		return nil, errors.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}

	plog.Debugf("line %d: calling %s with %d arguments", e.Paren.Line(), fn, len(args))

	result, err := fn.Call(i, args)
	if err != nil {
		if _, ok := err.(*errors.RuntimeError); !ok {
			err = errors.NewRuntimeError(e.Paren, "%s", err.Error())
		}
		return nil, err
	}
	return result, nil
}
