package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/report"
	"github.com/akashmaji946/golox/resolver"
	"github.com/akashmaji946/golox/scanner"
)

// linePrinter collects each Println call as its own line, joined with
// "\n" and a trailing newline, matching the interpreter's stdout shape.
type linePrinter struct {
	buf bytes.Buffer
}

func (p *linePrinter) Println(s string) {
	p.buf.WriteString(s)
	p.buf.WriteString("\n")
}

func run(t *testing.T, source string) (string, *report.Reporter) {
	t.Helper()
	rep := report.New()
	var errBuf bytes.Buffer
	rep.SetOutput(&errBuf)

	tokens := scanner.New(source, rep).ScanTokens()
	stmts := parser.New(tokens, rep).Parse()
	require.False(t, rep.HadError(), "unexpected scan/parse error: %s", errBuf.String())

	locals := resolver.New(rep).Resolve(stmts)
	require.False(t, rep.HadError(), "unexpected resolve error: %s", errBuf.String())

	out := &linePrinter{}
	New(locals, rep, out).Interpret(filterNil(stmts))
	return out.buf.String(), rep
}

func filterNil(stmts []ast.Stmt) []ast.Stmt {
	var out []ast.Stmt
	for _, s := range stmts {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func TestInterpret_PrintLiteralsAndArithmetic(t *testing.T) {
	out, rep := run(t, `print "one"; print true; print 2 + 1;`)
	require.False(t, rep.HadRuntimeError())
	assert.Equal(t, "one\ntrue\n3\n", out)
}

func TestInterpret_ForLoopCounting(t *testing.T) {
	out, rep := run(t, `for (var i = 0; i < 5; i = i + 1) print i;`)
	require.False(t, rep.HadRuntimeError())
	assert.Equal(t, "0\n1\n2\n3\n4\n", out)
}

func TestInterpret_VariableBinding(t *testing.T) {
	out, rep := run(t, `var x = "lox"; print x;`)
	require.False(t, rep.HadRuntimeError())
	assert.Equal(t, "lox\n", out)
}

func TestInterpret_FibonacciWithBreak(t *testing.T) {
	out, rep := run(t, `
		var a = 0;
		var b = 1;
		while (true) {
			if (a > 13) break;
			print a;
			var next = a + b;
			a = b;
			b = next;
		}
	`)
	require.False(t, rep.HadRuntimeError())
	assert.Equal(t, "0\n1\n1\n2\n3\n5\n8\n13\n", out)
}

func TestInterpret_BreakOutsideLoopIsARuntimeError(t *testing.T) {
	var errBuf bytes.Buffer
	rep := report.New()
	rep.SetOutput(&errBuf)

	tokens := scanner.New(`break;`, rep).ScanTokens()
	stmts := parser.New(tokens, rep).Parse()
	require.False(t, rep.HadError())

	locals := resolver.New(rep).Resolve(stmts)
	require.False(t, rep.HadError(), "break outside a loop must not be a resolver error")

	out := &linePrinter{}
	New(locals, rep, out).Interpret(filterNil(stmts))
	assert.True(t, rep.HadRuntimeError())
	assert.Contains(t, errBuf.String(), "'break' statements are only allowed inside loops.")
}

func TestInterpret_BreakInsideFunctionWithNoLoopIsARuntimeError(t *testing.T) {
	out, rep := run(t, `
		fun f() { break; }
		f();
	`)
	assert.True(t, rep.HadRuntimeError())
	assert.Equal(t, "", out)
}

func TestInterpret_ClosuresCaptureDeclarationEnvironment(t *testing.T) {
	out, rep := run(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		var counter = makeCounter();
		print counter();
		print counter();
	`)
	require.False(t, rep.HadRuntimeError())
	assert.Equal(t, "1\n2\n", out)
}

func TestInterpret_ScopeShadowingCanonicalSequence(t *testing.T) {
	out, rep := run(t, `
		var a = "global a";
		var b = "global b";
		var c = "global c";
		{
			var a = "outer a";
			var b = "outer b";
			{
				var a = "inner a";
				print a;
				print b;
				print c;
			}
			print a;
			print b;
			print c;
		}
		print a;
		print b;
		print c;
	`)
	require.False(t, rep.HadRuntimeError())
	expected := strings.Join([]string{
		"inner a", "outer b", "global c",
		"outer a", "outer b", "global c",
		"global a", "global b", "global c",
	}, "\n") + "\n"
	assert.Equal(t, expected, out)
}

func TestInterpret_DivisionByZeroIsRuntimeError(t *testing.T) {
	rep := report.New()
	var errBuf bytes.Buffer
	rep.SetOutput(&errBuf)
	tokens := scanner.New(`print 1 / 0;`, rep).ScanTokens()
	stmts := parser.New(tokens, rep).Parse()
	locals := resolver.New(rep).Resolve(stmts)
	out := &linePrinter{}
	New(locals, rep, out).Interpret(filterNil(stmts))
	assert.True(t, rep.HadRuntimeError())
	assert.Contains(t, errBuf.String(), "Attempting division by zero.")
}

func TestInterpret_StringNumberConcatenation(t *testing.T) {
	out, rep := run(t, `print "count: " + 3;`)
	require.False(t, rep.HadRuntimeError())
	assert.Equal(t, "count: 3\n", out)
}

func TestInterpret_LogicalOperatorsShortCircuit(t *testing.T) {
	out, rep := run(t, `
		fun loud(v) { print v; return v; }
		print false and loud("right and");
		print true or loud("right or");
	`)
	require.False(t, rep.HadRuntimeError())
	assert.Equal(t, "false\ntrue\n", out)
}

func TestInterpret_NumberStringificationDropsTrailingZero(t *testing.T) {
	out, rep := run(t, `print 1.0; print 0.5 + 0.5;`)
	require.False(t, rep.HadRuntimeError())
	assert.Equal(t, "1\n1\n", out)
}

func TestInterpret_TernaryExpression(t *testing.T) {
	out, rep := run(t, `print true ? "yes" : "no";`)
	require.False(t, rep.HadRuntimeError())
	assert.Equal(t, "yes\n", out)
}

func TestInterpret_ClassConstructsBareInstance(t *testing.T) {
	out, rep := run(t, `
		class Point {}
		var p = Point();
		print type(p);
	`)
	require.False(t, rep.HadRuntimeError())
	assert.Equal(t, "instance\n", out)
}

func TestInterpret_NativeTypeAndStr(t *testing.T) {
	out, rep := run(t, `
		print type(1);
		print type("s");
		print type(nil);
		print str(1);
	`)
	require.False(t, rep.HadRuntimeError())
	assert.Equal(t, "number\nstring\nnil\n1\n", out)
}
