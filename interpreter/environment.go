package interpreter

import (
	"sort"

	"github.com/pontaoski/golox/errors"
	"github.com/pontaoski/golox/types"
)

// Environment is one link of the runtime scope chain.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// NewEnvironment creates a new environment, optionally nested under a parent.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		values:    make(map[string]Value),
		enclosing: enclosing,
	}
}

// Enclosing exposes the lexical parent (nil for globals).
func (e *Environment) Enclosing() *Environment {
	return e.enclosing
}

// Define binds name in this environment, replacing any existing binding.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

func undefined(name types.Token) error {
	return errors.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// Get retrieves a binding, searching outward through the scope chain.
func (e *Environment) Get(name types.Token) (Value, error) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values[name.Lexeme]; ok {
			return v, nil
		}
	}
	return nil, undefined(name)
}

// Assign updates the nearest existing binding. It never creates one.
func (e *Environment) Assign(name types.Token, value Value) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = value
			return nil
		}
	}
	return undefined(name)
}

func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

func (e *Environment) GetAt(distance int, name types.Token) (Value, error) {
	v, ok := e.Ancestor(distance).values[name.Lexeme]
	if !ok {
		return nil, undefined(name)
	}
	return v, nil
}

func (e *Environment) AssignAt(distance int, name types.Token, value Value) {
	e.Ancestor(distance).values[name.Lexeme] = value
}

// Names returns the bindings of this environment only, sorted.
func (e *Environment) Names() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
