package interp

import "fmt"

// Uninitialized is the sentinel bound by `var name;` with no
// initializer. Reading it is a runtime error distinct from reading an
// undeclared name.
var Uninitialized = &uninitialized{}

type uninitialized struct{}

// Environment is a single frame in the lexical scope chain: a map of
// bindings plus a pointer to the enclosing frame. A fresh Environment is
// created on block entry, on function/lambda invocation, and once at
// the bottom as globals; it lives as long as any closure still
// references it.
type Environment struct {
	values map[string]interface{}
	parent *Environment
}

// NewEnvironment builds an Environment whose parent is enclosing (nil
// for globals).
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]interface{}), parent: enclosing}
}

// Define binds name to value in this frame, unconditionally. Shadowing
// an outer binding of the same name is allowed.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// ancestor walks distance parent links and returns the frame reached.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.parent
	}
	return env
}

// GetAt reads name directly from the frame at distance, as computed by
// the resolver, which guarantees the binding exists. Returns an error if
// the binding still holds the Uninitialized sentinel.
func (e *Environment) GetAt(distance int, name string) (interface{}, error) {
	v := e.ancestor(distance).values[name]
	if v == Uninitialized {
		return nil, fmt.Errorf("Uninitialized variable '%s'.", name)
	}
	return v, nil
}

// AssignAt writes value directly into the frame at distance.
func (e *Environment) AssignAt(distance int, name string, value interface{}) {
	e.ancestor(distance).values[name] = value
}

// Get looks up name starting at this frame and walking toward globals.
// Used only for unresolved (global) references.
func (e *Environment) Get(name string) (interface{}, error) {
	if v, ok := e.values[name]; ok {
		if v == Uninitialized {
			return nil, fmt.Errorf("Uninitialized variable '%s'.", name)
		}
		return v, nil
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign updates the nearest enclosing binding of name, walking toward
// globals. Reports an error if name was never declared anywhere in the
// chain.
func (e *Environment) Assign(name string, value interface{}) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.parent != nil {
		return e.parent.Assign(name, value)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}
