package ast

import "github.com/akashmaji946/golox/token"

// Stmt is implemented by every statement node.
type Stmt interface {
	AcceptStmt(v StmtVisitor) (interface{}, error)
}

// StmtVisitor dispatches on the concrete Stmt variant.
type StmtVisitor interface {
	VisitExpressionStmt(*ExpressionStmt) (interface{}, error)
	VisitPrintStmt(*PrintStmt) (interface{}, error)
	VisitVarStmt(*VarStmt) (interface{}, error)
	VisitBlockStmt(*BlockStmt) (interface{}, error)
	VisitIfStmt(*IfStmt) (interface{}, error)
	VisitWhileStmt(*WhileStmt) (interface{}, error)
	VisitBreakStmt(*BreakStmt) (interface{}, error)
	VisitFunctionStmt(*FunctionStmt) (interface{}, error)
	VisitReturnStmt(*ReturnStmt) (interface{}, error)
	VisitClassStmt(*ClassStmt) (interface{}, error)
}

// ExpressionStmt evaluates Expr and discards the result.
type ExpressionStmt struct {
	Expr Expr
}

func (s *ExpressionStmt) AcceptStmt(v StmtVisitor) (interface{}, error) {
	return v.VisitExpressionStmt(s)
}

// PrintStmt evaluates Expr and writes its stringified form followed by a
// newline.
type PrintStmt struct {
	Expr Expr
}

func (s *PrintStmt) AcceptStmt(v StmtVisitor) (interface{}, error) { return v.VisitPrintStmt(s) }

// VarStmt declares Name, binding it to Initializer's value, or to the
// Uninitialized sentinel when Initializer is nil.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (s *VarStmt) AcceptStmt(v StmtVisitor) (interface{}, error) { return v.VisitVarStmt(s) }

// BlockStmt executes Stmts in a fresh environment scoped to the block.
type BlockStmt struct {
	Stmts []Stmt
}

func (s *BlockStmt) AcceptStmt(v StmtVisitor) (interface{}, error) { return v.VisitBlockStmt(s) }

// IfStmt executes Then when Cond is truthy, Else otherwise (Else may be
// nil).
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

func (s *IfStmt) AcceptStmt(v StmtVisitor) (interface{}, error) { return v.VisitIfStmt(s) }

// WhileStmt loops Body while Cond is truthy. `for` desugars into this
// node (see parser.Parser.forStatement).
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

func (s *WhileStmt) AcceptStmt(v StmtVisitor) (interface{}, error) { return v.VisitWhileStmt(s) }

// BreakStmt unwinds to the nearest enclosing WhileStmt. Keyword is
// retained for error-location reporting when no loop encloses it.
type BreakStmt struct {
	Keyword token.Token
}

func (s *BreakStmt) AcceptStmt(v StmtVisitor) (interface{}, error) { return v.VisitBreakStmt(s) }

// FunctionStmt declares a named function in the enclosing scope.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FunctionStmt) AcceptStmt(v StmtVisitor) (interface{}, error) { return v.VisitFunctionStmt(s) }

// ReturnStmt unwinds the nearest enclosing function call with Value
// (defaulting to nil when Value is nil). Keyword is retained for
// error-location reporting.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (s *ReturnStmt) AcceptStmt(v StmtVisitor) (interface{}, error) { return v.VisitReturnStmt(s) }

// ClassStmt declares a class by name. Methods is reserved for a future
// revision: this interpreter constructs bare instances only, with no
// method binding, this, or super.
type ClassStmt struct {
	Name    token.Token
	Methods []*FunctionStmt
}

func (s *ClassStmt) AcceptStmt(v StmtVisitor) (interface{}, error) { return v.VisitClassStmt(s) }
