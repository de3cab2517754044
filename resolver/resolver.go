/*
Package resolver performs the static lexical-scope pass between parsing
and interpretation. For every variable reference it computes the number
of scope hops between the reference and the scope that declares it, and
records that distance keyed by the referencing ast.Expr node itself —
each *ast.VariableExpr / *ast.AssignExpr is a distinct Go pointer, so the
node's identity doubles as a stable map key (see ast/expr.go).

The interpreter later uses these precomputed distances (its locals map) to reach
directly into the right Environment frame instead of walking the chain
and guessing, which is what makes closures and shadowing behave
consistently regardless of when a block happens to run.

The resolver also tracks declared-but-unused locals and reports a
warning when a block closes with names nobody read.
*/
package resolver

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/report"
	"github.com/akashmaji946/golox/token"
)

// functionType tracks what kind of function body is currently being
// resolved, so a "return" can be checked for context. "break" outside a
// loop is not a static error here — it's a runtime signal-escape, caught
// at the point it fails to reach an enclosing loop (see interp).
type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionLambda
)

// binding records whether a declared name has been read and the line
// it was declared on, for the unused-variable warning.
type binding struct {
	token token.Token
	ready bool
	used  bool
}

// lexicalScope is a single entry on the resolver's scope stack. names
// preserves declaration order so that the unused-variable warning can
// be emitted innermost-declaration-first, matching the order a reader
// would expect when several locals in the same block go unused.
type lexicalScope struct {
	bindings map[string]*binding
	names    []string
}

func newLexicalScope() *lexicalScope {
	return &lexicalScope{bindings: make(map[string]*binding)}
}

// Resolver walks the AST produced by parser.Parse and annotates it with
// scope-distance information for the interpreter.
type Resolver struct {
	rep    *report.Reporter
	scopes []*lexicalScope
	locals map[ast.Expr]int
	curFn  functionType

	globals      map[string]*binding
	globalsOrder []string
}

// New builds a Resolver. Diagnostics are sent to rep.
func New(rep *report.Reporter) *Resolver {
	return &Resolver{
		rep:     rep,
		locals:  make(map[ast.Expr]int),
		globals: make(map[string]*binding),
	}
}

// Resolve walks every top-level statement and returns the computed
// scope-distance table, keyed by the referencing expression node. Once
// the whole program has been walked, it warns about any top-level
// variable that was declared but never read, in declaration order.
func (r *Resolver) Resolve(stmts []ast.Stmt) map[ast.Expr]int {
	r.resolveStmts(stmts)
	for _, name := range r.globalsOrder {
		if b := r.globals[name]; !b.used {
			r.rep.Warn(fmt.Sprintf("%s is not used anywhere.", name))
		}
	}
	return r.locals
}

// ---- scope stack ----

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, newLexicalScope())
}

// endScope pops the innermost scope, warning about any name declared
// there that was never read. Names are visited most-recently-declared
// first, so "b is not used anywhere." precedes "a is not used
// anywhere." when b shadowed-in after a in the same block.
func (r *Resolver) endScope() {
	scope := r.scopes[len(r.scopes)-1]
	for i := len(scope.names) - 1; i >= 0; i-- {
		name := scope.names[i]
		if b := scope.bindings[name]; !b.used {
			r.rep.Warn(fmt.Sprintf("%s is not used anywhere.", name))
		}
	}
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare adds name to the innermost scope as not-yet-initialized; a
// reference to it from within its own initializer is an error. At the
// top level (no open scope) it instead records name for the
// end-of-program unused-global warning; the name itself is still
// resolved dynamically through the environment's globals map.
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		if _, ok := r.globals[name.Lexeme]; !ok {
			r.globalsOrder = append(r.globalsOrder, name.Lexeme)
		}
		r.globals[name.Lexeme] = &binding{token: name}
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope.bindings[name.Lexeme]; ok {
		r.rep.ErrorAtToken(name.Line, false, name.Lexeme, "Already a variable with this name in this scope.")
	}
	scope.bindings[name.Lexeme] = &binding{token: name}
	scope.names = append(scope.names, name.Lexeme)
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1].bindings[name.Lexeme].ready = true
}

// resolveLocal walks outward from the innermost scope looking for name,
// recording the hop distance for expr the moment it is found. A miss
// leaves expr unrecorded, which the interpreter treats as "look in the
// global environment".
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if b, ok := r.scopes[i].bindings[name.Lexeme]; ok {
			b.used = true
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	if b, ok := r.globals[name.Lexeme]; ok {
		b.used = true
	}
}

// ---- statements ----

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	if s == nil {
		return
	}
	_, _ = s.AcceptStmt(r)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	if e == nil {
		return
	}
	_, _ = e.AcceptExpr(r)
}

func (r *Resolver) VisitExpressionStmt(s *ast.ExpressionStmt) (interface{}, error) {
	r.resolveExpr(s.Expr)
	return nil, nil
}

func (r *Resolver) VisitPrintStmt(s *ast.PrintStmt) (interface{}, error) {
	r.resolveExpr(s.Expr)
	return nil, nil
}

func (r *Resolver) VisitVarStmt(s *ast.VarStmt) (interface{}, error) {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
	return nil, nil
}

func (r *Resolver) VisitBlockStmt(s *ast.BlockStmt) (interface{}, error) {
	r.beginScope()
	r.resolveStmts(s.Stmts)
	r.endScope()
	return nil, nil
}

func (r *Resolver) VisitIfStmt(s *ast.IfStmt) (interface{}, error) {
	r.resolveExpr(s.Cond)
	r.resolveStmt(s.Then)
	if s.Else != nil {
		r.resolveStmt(s.Else)
	}
	return nil, nil
}

func (r *Resolver) VisitWhileStmt(s *ast.WhileStmt) (interface{}, error) {
	r.resolveExpr(s.Cond)
	r.resolveStmt(s.Body)
	return nil, nil
}

// VisitBreakStmt resolves nothing: whether a break reaches an enclosing
// loop is a dynamic property (it can be buried inside an if-branch that
// a given run never takes), so it's checked at runtime instead of here.
func (r *Resolver) VisitBreakStmt(s *ast.BreakStmt) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.FunctionStmt) (interface{}, error) {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s.Params, s.Body, functionFunction)
	return nil, nil
}

func (r *Resolver) resolveFunction(params []token.Token, body []ast.Stmt, kind functionType) {
	enclosingFn := r.curFn
	r.curFn = kind
	r.beginScope()
	for _, p := range params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(body)
	r.endScope()
	r.curFn = enclosingFn
}

func (r *Resolver) VisitReturnStmt(s *ast.ReturnStmt) (interface{}, error) {
	if r.curFn == functionNone {
		r.rep.ErrorAtToken(s.Keyword.Line, false, s.Keyword.Lexeme, "Can't return from top-level code.")
	}
	if s.Value != nil {
		r.resolveExpr(s.Value)
	}
	return nil, nil
}

func (r *Resolver) VisitClassStmt(s *ast.ClassStmt) (interface{}, error) {
	r.declare(s.Name)
	r.define(s.Name)
	for _, m := range s.Methods {
		r.resolveFunction(m.Params, m.Body, functionFunction)
	}
	return nil, nil
}

// ---- expressions ----

func (r *Resolver) VisitLiteralExpr(e *ast.LiteralExpr) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(e *ast.GroupingExpr) (interface{}, error) {
	r.resolveExpr(e.Inner)
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(e *ast.UnaryExpr) (interface{}, error) {
	r.resolveExpr(e.Operand)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.BinaryExpr) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.LogicalExpr) (interface{}, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitTernaryExpr(e *ast.TernaryExpr) (interface{}, error) {
	r.resolveExpr(e.Cond)
	r.resolveExpr(e.Then)
	r.resolveExpr(e.Else)
	return nil, nil
}

func (r *Resolver) VisitVariableExpr(e *ast.VariableExpr) (interface{}, error) {
	if len(r.scopes) > 0 {
		if b, ok := r.scopes[len(r.scopes)-1].bindings[e.Name.Lexeme]; ok && !b.ready {
			r.rep.ErrorAtToken(e.Name.Line, false, e.Name.Lexeme, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e, e.Name)
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(e *ast.AssignExpr) (interface{}, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(e *ast.CallExpr) (interface{}, error) {
	r.resolveExpr(e.Callee)
	for _, a := range e.Args {
		r.resolveExpr(a)
	}
	return nil, nil
}

func (r *Resolver) VisitLambdaExpr(e *ast.LambdaExpr) (interface{}, error) {
	r.resolveFunction(e.Params, e.Body, functionLambda)
	return nil, nil
}

