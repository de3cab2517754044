/*
Package interp implements the tree-walking evaluator: given the AST and
the resolver's scope-distance table, it executes statements in program
order against a chain of Environments, producing side effects (print)
and propagating runtime errors and the two control-flow signals
(Return, Break) without conflating either with an actual failure.
*/
package interp

import (
	"fmt"
	"time"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/report"
	"github.com/akashmaji946/golox/token"
)

// Printer is implemented by whatever receives `print` output; the CLI
// wires this to stdout, tests wire it to a buffer.
type Printer interface {
	Println(s string)
}

// Interpreter walks the AST with a current Environment pointer and a
// distinct globals pointer, so restoring the environment after a block
// exits is a pointer swap rather than a scope-chain search.
type Interpreter struct {
	globals *Environment
	env     *Environment
	locals  map[ast.Expr]int
	rep     *report.Reporter
	out     Printer
}

// New builds an Interpreter with a fresh globals environment seeded
// with the native intrinsics, and locals set to the resolver's
// scope-distance table for the program about to run.
func New(locals map[ast.Expr]int, rep *report.Reporter, out Printer) *Interpreter {
	globals := NewEnvironment(nil)
	i := &Interpreter{globals: globals, env: globals, locals: locals, rep: rep, out: out}
	i.defineNatives()
	return i
}

func (i *Interpreter) defineNatives() {
	i.globals.Define("clock", &NativeFunction{
		name: "clock", arity: 0,
		fn: func(_ *Interpreter, _ []interface{}) (interface{}, error) {
			return float64(time.Now().UnixNano()) / 1e9, nil
		},
	})
	i.globals.Define("str", &NativeFunction{
		name: "str", arity: 1,
		fn: func(_ *Interpreter, args []interface{}) (interface{}, error) {
			return stringify(args[0]), nil
		},
	})
	i.globals.Define("type", &NativeFunction{
		name: "type", arity: 1,
		fn: func(_ *Interpreter, args []interface{}) (interface{}, error) {
			return typeName(args[0]), nil
		},
	})
}

// MergeLocals folds a freshly resolved program's scope-distance table
// into the running interpreter's table. The REPL resolves and
// interprets one line at a time against a single long-lived
// Interpreter, so each line's locals must accumulate rather than
// replace — earlier lines' AST nodes (and any closures still holding
// them) remain valid map keys for the interpreter's lifetime.
func (i *Interpreter) MergeLocals(locals map[ast.Expr]int) {
	for k, v := range locals {
		i.locals[k] = v
	}
}

// Interpret executes every top-level statement in order. A runtime
// error aborts remaining execution and is reported through the
// Reporter.
func (i *Interpreter) Interpret(stmts []ast.Stmt) {
	for _, s := range stmts {
		sig, err := i.execute(s)
		if err != nil {
			i.reportRuntimeError(err)
			return
		}
		if sig.kind == signalBreak {
			// No enclosing While caught it: break used outside a loop.
			i.rep.RuntimeError(sig.tok.Line, "'break' statements are only allowed inside loops.")
			return
		}
		if sig.kind != signalNone {
			// Return escaping every enclosing function call is
			// unreachable in a well-formed program: the resolver
			// statically rejects return outside a function.
			i.rep.RuntimeError(0, "return used outside a function.")
			return
		}
	}
}

func (i *Interpreter) reportRuntimeError(err error) {
	if rerr, ok := err.(*runtimeError); ok {
		i.rep.RuntimeError(rerr.token.Line, rerr.message)
		return
	}
	i.rep.RuntimeError(0, err.Error())
}

// ---- statement execution ----

func (i *Interpreter) execute(s ast.Stmt) (signal, error) {
	res, err := s.AcceptStmt(i)
	if err != nil {
		return normalSignal, err
	}
	if sig, ok := res.(signal); ok {
		return sig, nil
	}
	return normalSignal, nil
}

// executeBlock installs env as current, runs stmts, and restores the
// prior environment on every exit path — normal completion, a
// propagating signal, or an error — so a caller never observes a stale
// environment after a block.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) (signal, error) {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, s := range stmts {
		sig, err := i.execute(s)
		if err != nil {
			return normalSignal, err
		}
		if sig.kind != signalNone {
			return sig, nil
		}
	}
	return normalSignal, nil
}

func (i *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) (interface{}, error) {
	_, err := i.eval(s.Expr)
	return normalSignal, err
}

func (i *Interpreter) VisitPrintStmt(s *ast.PrintStmt) (interface{}, error) {
	v, err := i.eval(s.Expr)
	if err != nil {
		return normalSignal, err
	}
	i.out.Println(stringify(v))
	return normalSignal, nil
}

func (i *Interpreter) VisitVarStmt(s *ast.VarStmt) (interface{}, error) {
	var value interface{} = Uninitialized
	if s.Initializer != nil {
		v, err := i.eval(s.Initializer)
		if err != nil {
			return normalSignal, err
		}
		value = v
	}
	i.env.Define(s.Name.Lexeme, value)
	return normalSignal, nil
}

func (i *Interpreter) VisitBlockStmt(s *ast.BlockStmt) (interface{}, error) {
	return i.executeBlock(s.Stmts, NewEnvironment(i.env))
}

func (i *Interpreter) VisitIfStmt(s *ast.IfStmt) (interface{}, error) {
	cond, err := i.eval(s.Cond)
	if err != nil {
		return normalSignal, err
	}
	if isTruthy(cond) {
		return i.execute(s.Then)
	}
	if s.Else != nil {
		return i.execute(s.Else)
	}
	return normalSignal, nil
}

func (i *Interpreter) VisitWhileStmt(s *ast.WhileStmt) (interface{}, error) {
	for {
		cond, err := i.eval(s.Cond)
		if err != nil {
			return normalSignal, err
		}
		if !isTruthy(cond) {
			return normalSignal, nil
		}
		sig, err := i.execute(s.Body)
		if err != nil {
			return normalSignal, err
		}
		switch sig.kind {
		case signalBreak:
			return normalSignal, nil
		case signalReturn:
			return sig, nil
		}
	}
}

func (i *Interpreter) VisitBreakStmt(s *ast.BreakStmt) (interface{}, error) {
	return signal{kind: signalBreak, tok: s.Keyword}, nil
}

func (i *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) (interface{}, error) {
	fn := &UserFunction{decl: s, closure: i.env}
	i.env.Define(s.Name.Lexeme, fn)
	return normalSignal, nil
}

func (i *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) (interface{}, error) {
	var value interface{}
	if s.Value != nil {
		v, err := i.eval(s.Value)
		if err != nil {
			return normalSignal, err
		}
		value = v
	}
	return signal{kind: signalReturn, value: value, tok: s.Keyword}, nil
}

func (i *Interpreter) VisitClassStmt(s *ast.ClassStmt) (interface{}, error) {
	i.env.Define(s.Name.Lexeme, &Class{decl: s})
	return normalSignal, nil
}

// ---- expression evaluation ----

func (i *Interpreter) eval(e ast.Expr) (interface{}, error) {
	return e.AcceptExpr(i)
}

func (i *Interpreter) VisitLiteralExpr(e *ast.LiteralExpr) (interface{}, error) {
	return e.Value, nil
}

func (i *Interpreter) VisitGroupingExpr(e *ast.GroupingExpr) (interface{}, error) {
	return i.eval(e.Inner)
}

func (i *Interpreter) VisitUnaryExpr(e *ast.UnaryExpr) (interface{}, error) {
	right, err := i.eval(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.Minus:
		n, ok := right.(float64)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operand must be a number.")
		}
		return -n, nil
	case token.Bang:
		return !isTruthy(right), nil
	}
	return nil, newRuntimeError(e.Op, "Unknown unary operator.")
}

func (i *Interpreter) VisitBinaryExpr(e *ast.BinaryExpr) (interface{}, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.Plus:
		if ln, lok := left.(float64); lok {
			if rn, rok := right.(float64); rok {
				return ln + rn, nil
			}
			return nil, newRuntimeError(e.Op, "Operands must be two numbers or two strings, or either of each.")
		}
		if ls, lok := left.(string); lok {
			if rs, rok := right.(string); rok {
				return ls + rs, nil
			}
			return ls + stringify(right), nil
		}
		if rs, rok := right.(string); rok {
			return stringify(left) + rs, nil
		}
		return nil, newRuntimeError(e.Op, "Operands must be two numbers or two strings, or either of each.")

	case token.Minus:
		ln, rn, err := bothNumbers(left, right, e.Op)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil

	case token.Star:
		ln, rn, err := bothNumbers(left, right, e.Op)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil

	case token.Slash:
		ln, rn, err := bothNumbers(left, right, e.Op)
		if err != nil {
			return nil, err
		}
		if rn == 0 {
			return nil, newRuntimeError(e.Op, "Attempting division by zero.")
		}
		return ln / rn, nil

	case token.Greater:
		ln, rn, err := bothNumbers(left, right, e.Op)
		if err != nil {
			return nil, err
		}
		return ln > rn, nil
	case token.GreaterEqual:
		ln, rn, err := bothNumbers(left, right, e.Op)
		if err != nil {
			return nil, err
		}
		return ln >= rn, nil
	case token.Less:
		ln, rn, err := bothNumbers(left, right, e.Op)
		if err != nil {
			return nil, err
		}
		return ln < rn, nil
	case token.LessEqual:
		ln, rn, err := bothNumbers(left, right, e.Op)
		if err != nil {
			return nil, err
		}
		return ln <= rn, nil

	case token.BangEqual:
		return !isEqual(left, right), nil
	case token.EqualEqual:
		return isEqual(left, right), nil
	}
	return nil, newRuntimeError(e.Op, "Unknown binary operator.")
}

func bothNumbers(left, right interface{}, op token.Token) (float64, float64, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, newRuntimeError(op, "Operands must be numbers.")
	}
	return ln, rn, nil
}

func (i *Interpreter) VisitLogicalExpr(e *ast.LogicalExpr) (interface{}, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.Or {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return i.eval(e.Right)
}

func (i *Interpreter) VisitTernaryExpr(e *ast.TernaryExpr) (interface{}, error) {
	cond, err := i.eval(e.Cond)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return i.eval(e.Then)
	}
	return i.eval(e.Else)
}

func (i *Interpreter) VisitVariableExpr(e *ast.VariableExpr) (interface{}, error) {
	return i.lookUpVariable(e.Name, e)
}

func (i *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (interface{}, error) {
	if dist, ok := i.locals[expr]; ok {
		v, err := i.env.GetAt(dist, name.Lexeme)
		if err != nil {
			return nil, newRuntimeError(name, err.Error())
		}
		return v, nil
	}
	v, err := i.globals.Get(name.Lexeme)
	if err != nil {
		return nil, newRuntimeError(name, err.Error())
	}
	return v, nil
}

func (i *Interpreter) VisitAssignExpr(e *ast.AssignExpr) (interface{}, error) {
	value, err := i.eval(e.Value)
	if err != nil {
		return nil, err
	}
	if dist, ok := i.locals[e]; ok {
		i.env.AssignAt(dist, e.Name.Lexeme, value)
		return value, nil
	}
	if err := i.globals.Assign(e.Name.Lexeme, value); err != nil {
		return nil, newRuntimeError(e.Name, err.Error())
	}
	return value, nil
}

func (i *Interpreter) VisitCallExpr(e *ast.CallExpr) (interface{}, error) {
	callee, err := i.eval(e.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]interface{}, len(e.Args))
	for idx, a := range e.Args {
		v, err := i.eval(a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}
	fn, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, newRuntimeError(e.Paren, fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)))
	}
	return fn.Call(i, args)
}

func (i *Interpreter) VisitLambdaExpr(e *ast.LambdaExpr) (interface{}, error) {
	return &Lambda{decl: e, closure: i.env}, nil
}
