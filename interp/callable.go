package interp

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
)

// UserFunction is a named function value: a declaration plus the
// environment captured at the point of declaration (the closure).
type UserFunction struct {
	decl    *ast.FunctionStmt
	closure *Environment
}

func (f *UserFunction) Arity() int { return len(f.decl.Params) }

func (f *UserFunction) Call(i *Interpreter, args []interface{}) (interface{}, error) {
	env := NewEnvironment(f.closure)
	for idx, param := range f.decl.Params {
		env.Define(param.Lexeme, args[idx])
	}
	sig, err := i.executeBlock(f.decl.Body, env)
	if err != nil {
		return nil, err
	}
	if sig.kind == signalReturn {
		return sig.value, nil
	}
	if sig.kind == signalBreak {
		return nil, newRuntimeError(sig.tok, "'break' statements are only allowed inside loops.")
	}
	return nil, nil
}

func (f *UserFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.decl.Name.Lexeme)
}

// Lambda is an anonymous function value; identical mechanics to
// UserFunction without a declared name.
type Lambda struct {
	decl    *ast.LambdaExpr
	closure *Environment
}

func (f *Lambda) Arity() int { return len(f.decl.Params) }

func (f *Lambda) Call(i *Interpreter, args []interface{}) (interface{}, error) {
	env := NewEnvironment(f.closure)
	for idx, param := range f.decl.Params {
		env.Define(param.Lexeme, args[idx])
	}
	sig, err := i.executeBlock(f.decl.Body, env)
	if err != nil {
		return nil, err
	}
	if sig.kind == signalReturn {
		return sig.value, nil
	}
	if sig.kind == signalBreak {
		return nil, newRuntimeError(sig.tok, "'break' statements are only allowed inside loops.")
	}
	return nil, nil
}

func (f *Lambda) String() string { return "<fn lambda>" }

// NativeFunction wraps a Go function as a Lox-callable intrinsic:
// clock, str, and type all take this shape.
type NativeFunction struct {
	name  string
	arity int
	fn    func(i *Interpreter, args []interface{}) (interface{}, error)
}

func (f *NativeFunction) Arity() int { return f.arity }

func (f *NativeFunction) Call(i *Interpreter, args []interface{}) (interface{}, error) {
	return f.fn(i, args)
}

func (f *NativeFunction) String() string { return "<native fn>" }

// Class constructs bare instances only: no user-visible methods,
// no `this`/`super` binding.
type Class struct {
	decl *ast.ClassStmt
}

func (c *Class) Arity() int { return 0 }

func (c *Class) Call(i *Interpreter, args []interface{}) (interface{}, error) {
	return &Instance{class: c, fields: make(map[string]interface{})}, nil
}

func (c *Class) String() string { return c.decl.Name.Lexeme }

// Instance is a bare class instance: a set of fields with no method
// dispatch. Fields have no property-access syntax to read or write them
// through yet; ast.ClassStmt parses a declaration only.
type Instance struct {
	class  *Class
	fields map[string]interface{}
}

func (inst *Instance) String() string {
	return fmt.Sprintf("<instance %s>", inst.class.decl.Name.Lexeme)
}
