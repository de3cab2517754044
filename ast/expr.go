// Package ast defines the Expr and Stmt sum types produced by the parser
// and walked by the resolver and interpreter.
//
// Each concrete node is a distinct pointer type, so a node's own address
// doubles as a stable identity key — the resolver relies on this to key
// its scope-distance map (see interp.Interpreter.locals) without risking
// collisions between two structurally identical expressions.
package ast

import "github.com/akashmaji946/golox/token"

// Expr is implemented by every expression node.
type Expr interface {
	AcceptExpr(v ExprVisitor) (interface{}, error)
}

// ExprVisitor dispatches on the concrete Expr variant via a fixed,
// compiler-checked set of methods — one per variant in the grammar,
// rather than a runtime dispatch registry.
type ExprVisitor interface {
	VisitLiteralExpr(*LiteralExpr) (interface{}, error)
	VisitGroupingExpr(*GroupingExpr) (interface{}, error)
	VisitUnaryExpr(*UnaryExpr) (interface{}, error)
	VisitBinaryExpr(*BinaryExpr) (interface{}, error)
	VisitLogicalExpr(*LogicalExpr) (interface{}, error)
	VisitTernaryExpr(*TernaryExpr) (interface{}, error)
	VisitVariableExpr(*VariableExpr) (interface{}, error)
	VisitAssignExpr(*AssignExpr) (interface{}, error)
	VisitCallExpr(*CallExpr) (interface{}, error)
	VisitLambdaExpr(*LambdaExpr) (interface{}, error)
}

// LiteralExpr is a compile-time constant: a number, a string, a boolean,
// or nil.
type LiteralExpr struct {
	Value interface{}
}

func (e *LiteralExpr) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

// GroupingExpr is a parenthesized sub-expression, kept as its own node so
// that printers and future passes can tell `(a)` from `a`.
type GroupingExpr struct {
	Inner Expr
}

func (e *GroupingExpr) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitGroupingExpr(e) }

// UnaryExpr is a prefix operator applied to a single operand: `-x`, `!x`.
type UnaryExpr struct {
	Op      token.Token
	Operand Expr
}

func (e *UnaryExpr) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

// BinaryExpr is an infix operator: arithmetic, comparison, or equality.
type BinaryExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *BinaryExpr) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

// LogicalExpr is `and`/`or`; unlike BinaryExpr its right operand is not
// always evaluated.
type LogicalExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *LogicalExpr) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitLogicalExpr(e) }

// TernaryExpr is the `cond ? then : else` conditional. Op is the `?`
// token, retained for error-location reporting.
type TernaryExpr struct {
	Op   token.Token
	Cond Expr
	Then Expr
	Else Expr
}

func (e *TernaryExpr) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitTernaryExpr(e) }

// VariableExpr reads the value bound to Name.
type VariableExpr struct {
	Name token.Token
}

func (e *VariableExpr) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitVariableExpr(e) }

// AssignExpr writes Value into the binding for Name and evaluates to
// Value.
type AssignExpr struct {
	Name  token.Token
	Value Expr
}

func (e *AssignExpr) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitAssignExpr(e) }

// CallExpr invokes Callee with Args. Paren is retained purely for error
// reporting (the location of the call, not of the callee).
type CallExpr struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (e *CallExpr) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitCallExpr(e) }

// LambdaExpr is an anonymous function literal. Keyword is the `fun`
// token, retained for error-location reporting.
type LambdaExpr struct {
	Keyword token.Token
	Params  []token.Token
	Body    []Stmt
}

func (e *LambdaExpr) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitLambdaExpr(e) }
