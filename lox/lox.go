/*
Package lox is the single entry point the CLI and REPL shells call
through: Run(source) drives scanner -> parser -> resolver -> interp in
sequence, mapping the Reporter's accumulated state to ExitOK,
ExitStaticErr or ExitRuntimeErr below (ExitUsage is left to the CLI).

Nothing outside this package knows about tokens, the AST, or scope
distances — a file-mode driver, a REPL loop, or a one-connection-per-
socket server all just call Run with a fresh or shared Runtime.
*/
package lox

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/interp"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/report"
	"github.com/akashmaji946/golox/resolver"
	"github.com/akashmaji946/golox/scanner"
)

// Exit codes returned by Run, per the driver contract.
const (
	ExitOK         = 0
	ExitUsage      = 64
	ExitStaticErr  = 65
	ExitRuntimeErr = 70
)

// Runtime holds the state that persists across multiple Run calls
// within one process: the Reporter (whose error flags Run resets at
// the start of each call) and the interpreter's globals (so a REPL
// session's variables survive from one line to the next).
type Runtime struct {
	rep     *report.Reporter
	interp  *interp.Interpreter
	out     interp.Printer
	verbose bool
}

// NewRuntime builds a Runtime that prints through out and reports
// diagnostics through rep. Each Runtime is single-threaded: concurrent
// Run calls on the same Runtime are not supported (see the interpreter's
// concurrency model).
func NewRuntime(rep *report.Reporter, out interp.Printer) *Runtime {
	return &Runtime{rep: rep, out: out}
}

// Run scans, parses, resolves, and interprets source as one program.
// Diagnostics accumulate on the Runtime's Reporter; the returned code
// reflects the worst outcome reached (static error outranks a clean
// run with no evaluation attempted; a runtime error is only possible
// once scanning/parsing/resolving all succeeded).
func (r *Runtime) Run(source string) int {
	r.rep.Reset()

	tokens := scanner.New(source, r.rep).ScanTokens()
	stmts := parser.New(tokens, r.rep).Parse()
	if r.rep.HadError() {
		return ExitStaticErr
	}

	locals := resolver.New(r.rep).Resolve(stmts)
	if r.rep.HadError() {
		return ExitStaticErr
	}

	if r.interp == nil {
		r.interp = interp.New(locals, r.rep, r.out)
	} else {
		r.interp.MergeLocals(locals)
	}
	r.interp.Interpret(filterNil(stmts))
	if r.rep.HadRuntimeError() {
		return ExitRuntimeErr
	}
	return ExitOK
}

// SetVerbose toggles the Runtime's ambient logging level between Info
// and Debug (see report.Reporter.SetVerbose); it never affects the
// diagnostic output written by Run.
func (r *Runtime) SetVerbose(verbose bool) {
	r.verbose = verbose
	r.rep.SetVerbose(verbose)
}

// Verbose reports whether debug-level ambient logging is enabled.
func (r *Runtime) Verbose() bool { return r.verbose }

// Reporter exposes the Runtime's diagnostic reporter, e.g. so the CLI
// can check HadError/HadRuntimeError after a file-mode run.
func (r *Runtime) Reporter() *report.Reporter { return r.rep }

func filterNil(stmts []ast.Stmt) []ast.Stmt {
	var out []ast.Stmt
	for _, s := range stmts {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}
