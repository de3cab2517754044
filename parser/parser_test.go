package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/report"
	"github.com/akashmaji946/golox/scanner"
	"github.com/akashmaji946/golox/token"
)

func parse(t *testing.T, source string) ([]ast.Stmt, *report.Reporter) {
	t.Helper()
	rep := report.New()
	tokens := scanner.New(source, rep).ScanTokens()
	stmts := New(tokens, rep).Parse()
	return stmts, rep
}

func TestParse_VarDeclWithInitializer(t *testing.T) {
	stmts, rep := parse(t, `var a = 1;`)
	require.False(t, rep.HadError())
	require.Len(t, stmts, 1)
	v, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "a", v.Name.Lexeme)
	lit, ok := v.Initializer.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, 1.0, lit.Value)
}

func TestParse_VarDeclWithoutInitializer(t *testing.T) {
	stmts, rep := parse(t, `var a;`)
	require.False(t, rep.HadError())
	require.Len(t, stmts, 1)
	v := stmts[0].(*ast.VarStmt)
	assert.Nil(t, v.Initializer)
}

func TestParse_PrecedenceClimbsCorrectly(t *testing.T) {
	stmts, rep := parse(t, `1 + 2 * 3;`)
	require.False(t, rep.HadError())
	require.Len(t, stmts, 1)
	es := stmts[0].(*ast.ExpressionStmt)
	bin := es.Expr.(*ast.BinaryExpr)
	assert.Equal(t, token.Plus, bin.Op.Kind)
	left := bin.Left.(*ast.LiteralExpr)
	assert.Equal(t, 1.0, left.Value)
	right := bin.Right.(*ast.BinaryExpr)
	assert.Equal(t, token.Star, right.Op.Kind)
}

func TestParse_TernaryIsRightAssociativeAboveEquality(t *testing.T) {
	stmts, rep := parse(t, `true ? 1 : 2 == 2;`)
	require.False(t, rep.HadError())
	es := stmts[0].(*ast.ExpressionStmt)
	tern, ok := es.Expr.(*ast.TernaryExpr)
	require.True(t, ok)
	_, ok = tern.Else.(*ast.BinaryExpr)
	assert.True(t, ok)
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	stmts, rep := parse(t, `a = b = 1;`)
	require.False(t, rep.HadError())
	es := stmts[0].(*ast.ExpressionStmt)
	assign, ok := es.Expr.(*ast.AssignExpr)
	require.True(t, ok)
	assert.Equal(t, "a", assign.Name.Lexeme)
	inner, ok := assign.Value.(*ast.AssignExpr)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetReportsButDoesNotPanic(t *testing.T) {
	stmts, rep := parse(t, `1 = 2;`)
	require.True(t, rep.HadError())
	require.Len(t, stmts, 1)
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	stmts, rep := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.False(t, rep.HadError())
	require.Len(t, stmts, 1)
	block := stmts[0].(*ast.BlockStmt)
	require.Len(t, block.Stmts, 2)
	_, ok := block.Stmts[0].(*ast.VarStmt)
	assert.True(t, ok)
	whileStmt, ok := block.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok)
	bodyBlock, ok := whileStmt.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, bodyBlock.Stmts, 2)
}

func TestParse_ForWithoutConditionDefaultsToTrue(t *testing.T) {
	stmts, rep := parse(t, `for (;;) break;`)
	require.False(t, rep.HadError())
	whileStmt := stmts[0].(*ast.WhileStmt)
	lit, ok := whileStmt.Cond.(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParse_FunctionDeclaration(t *testing.T) {
	stmts, rep := parse(t, `fun add(a, b) { return a + b; }`)
	require.False(t, rep.HadError())
	fn := stmts[0].(*ast.FunctionStmt)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	require.Len(t, fn.Body, 1)
}

func TestParse_LambdaExpression(t *testing.T) {
	stmts, rep := parse(t, `var f = fun (x) { return x; };`)
	require.False(t, rep.HadError())
	v := stmts[0].(*ast.VarStmt)
	_, ok := v.Initializer.(*ast.LambdaExpr)
	assert.True(t, ok)
}

func TestParse_ClassDeclaration(t *testing.T) {
	stmts, rep := parse(t, `class Foo { bar() { return 1; } }`)
	require.False(t, rep.HadError())
	c := stmts[0].(*ast.ClassStmt)
	assert.Equal(t, "Foo", c.Name.Lexeme)
	require.Len(t, c.Methods, 1)
	assert.Equal(t, "bar", c.Methods[0].Name.Lexeme)
}

func TestParse_CallExpression(t *testing.T) {
	stmts, rep := parse(t, `clock();`)
	require.False(t, rep.HadError())
	es := stmts[0].(*ast.ExpressionStmt)
	call, ok := es.Expr.(*ast.CallExpr)
	require.True(t, ok)
	assert.Empty(t, call.Args)
}

func TestParse_LeadingBinaryOperatorReportsDiagnostic(t *testing.T) {
	_, rep := parse(t, `+ 2;`)
	require.True(t, rep.HadError())
}

func TestParse_ErrorRecoveryContinuesPastSynchronizePoint(t *testing.T) {
	stmts, rep := parse(t, "+ 2;\nvar ok = 1;")
	require.True(t, rep.HadError())
	require.Len(t, stmts, 1)
	v, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "ok", v.Name.Lexeme)
}

func TestParse_MissingSemicolonReportsExpectError(t *testing.T) {
	_, rep := parse(t, `print 1`)
	require.True(t, rep.HadError())
}

func TestParse_IfElseStatement(t *testing.T) {
	stmts, rep := parse(t, `if (true) print 1; else print 2;`)
	require.False(t, rep.HadError())
	ifStmt := stmts[0].(*ast.IfStmt)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParse_BlockStatement(t *testing.T) {
	stmts, rep := parse(t, `{ var a = 1; print a; }`)
	require.False(t, rep.HadError())
	block := stmts[0].(*ast.BlockStmt)
	require.Len(t, block.Stmts, 2)
}
