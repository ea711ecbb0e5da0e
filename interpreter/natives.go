package interpreter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ztrue/tracerr"
)

func addNatives(env *Environment) {
	funcs := []func() *NativeFunction{
		newClock,
		newPrintln,
		newReadLine,
		newExit,
		newToNumber,
	}
	for _, fn := range funcs {
		native := fn()
		env.Define(native.Name, native)
	}
}

// clock returns milliseconds since the Unix epoch.
func newClock() *NativeFunction {
	return &NativeFunction{
		Name:   "clock",
		ArityN: 0,
		Fn: func(interp *Interpreter, args []Value) (Value, error) {
			return float64(interp.host.Now().UnixNano() / int64(time.Millisecond)), nil
		},
	}
}

func newPrintln() *NativeFunction {
	return &NativeFunction{
		Name:   "println",
		ArityN: 1,
		Fn: func(interp *Interpreter, args []Value) (Value, error) {
			if _, err := fmt.Fprintln(interp.host.Stdout, Stringify(args[0])); err != nil {
				return nil, tracerr.Wrap(err)
			}
			return nil, nil
		},
	}
}

// readLine yields the next input line without its terminator, or nil once
// the input is exhausted.
func newReadLine() *NativeFunction {
	return &NativeFunction{
		Name:   "readLine",
		ArityN: 0,
		Fn: func(interp *Interpreter, args []Value) (Value, error) {
			line, err := interp.stdin.ReadString('\n')
			if err != nil && err != io.EOF {
				return nil, tracerr.Wrap(err)
			}
			if err == io.EOF && line == "" {
				return nil, nil
			}
			return strings.TrimRight(line, "\r\n"), nil
		},
	}
}

func newExit() *NativeFunction {
	return &NativeFunction{
		Name:   "exit",
		ArityN: 1,
		Fn: func(interp *Interpreter, args []Value) (Value, error) {
			code, ok := args[0].(float64)
			if !ok {
				return nil, fmt.Errorf("Exit code must be a number.")
			}
			plog.Debugf("exit(%d) requested", int(code))
			interp.host.Exit(int(code))
			return nil, nil
		},
	}
}

// toNumber parses its argument as a number, yielding nil when it is not a
// string or does not parse.
func newToNumber() *NativeFunction {
	return &NativeFunction{
		Name:   "toNumber",
		ArityN: 1,
		Fn: func(interp *Interpreter, args []Value) (Value, error) {
			text, ok := args[0].(string)
			if !ok {
				return nil, nil
			}
			n, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
			if err != nil {
				return nil, nil
			}
			return n, nil
		},
	}
}
