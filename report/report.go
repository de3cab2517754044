/*
Package report implements the diagnostic reporter that formats and counts
the core's errors and warnings. The core never writes to stderr
directly; it hands diagnostics to a Reporter instead.

Every Error/Warn call goes through a logrus.Logger fitted with
diagnosticFormatter, a custom logrus.Formatter that reproduces the interpreter's
exact wire format — logrus supplies leveling, a configurable output
writer, and hook points; diagnosticFormatter supplies the byte-exact text.
*/
package report

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// Reporter accumulates and emits scan/parse/resolve diagnostics and
// runtime errors. It tracks whether any error-level diagnostic has been
// seen, independent of warnings, via separate hadError / hadRuntimeError
// flags.
type Reporter struct {
	log             *logrus.Logger
	hadError        bool
	hadRuntimeError bool
	static          *multierror.Error
}

// New builds a Reporter writing through a logrus.Logger configured with
// diagnosticFormatter.
func New() *Reporter {
	log := logrus.New()
	log.SetFormatter(&diagnosticFormatter{})
	log.SetLevel(logrus.InfoLevel)
	return &Reporter{log: log}
}

// HadError reports whether any static (scan/parse/resolve) error-level
// diagnostic has been recorded.
func (r *Reporter) HadError() bool { return r.hadError }

// HadRuntimeError reports whether a runtime error has been recorded.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeError }

// StaticErrors returns every static error recorded so far, aggregated in
// encounter order, or nil if none were recorded.
func (r *Reporter) StaticErrors() error {
	return r.static.ErrorOrNil()
}

// Reset clears both error flags and the accumulated static errors;
// lox.Runtime.Run calls it at the start of every run, so each REPL or
// serve line starts with a clean slate.
func (r *Reporter) Reset() {
	r.hadError = false
	r.hadRuntimeError = false
	r.static = nil
}

// ErrorAtLine reports a line-only static diagnostic: "[line] Error: message".
func (r *Reporter) ErrorAtLine(line int, message string) {
	r.report(line, "", message)
}

// ErrorAtToken reports a static diagnostic located at a token, using
// " at end" for EOF and " at '<lexeme>'" otherwise.
func (r *Reporter) ErrorAtToken(line int, atEOF bool, lexeme, message string) {
	where := " at '" + lexeme + "'"
	if atEOF {
		where = " at end"
	}
	r.report(line, where, message)
}

func (r *Reporter) report(line int, where, message string) {
	r.hadError = true
	r.static = multierror.Append(r.static, fmt.Errorf("[%d] Error%s: %s", line, where, message))
	r.log.WithFields(logrus.Fields{
		"kind": kindStatic, "line": line, "where": where,
	}).Error(message)
}

// RuntimeError reports a runtime error: "message\n[line N]". Sets
// HadRuntimeError.
func (r *Reporter) RuntimeError(line int, message string) {
	r.hadRuntimeError = true
	r.log.WithFields(logrus.Fields{
		"kind": kindRuntime, "line": line,
	}).Error(message)
}

// Warn reports a non-fatal diagnostic (the resolver's unused-variable
// notice). It never sets HadError.
func (r *Reporter) Warn(message string) {
	r.log.WithFields(logrus.Fields{"kind": kindWarn}).Warn(message)
}

// Infof logs an ambient operational message (CLI startup, REPL
// connect/disconnect) at Info level; additive only, never replacing the
// diagnostic lines written by ErrorAtLine/ErrorAtToken/RuntimeError/Warn.
func (r *Reporter) Infof(format string, args ...interface{}) {
	r.log.Infof(format, args...)
}

// Debugf logs a verbose-only operational message.
func (r *Reporter) Debugf(format string, args ...interface{}) {
	r.log.Debugf(format, args...)
}

// SetVerbose raises or lowers the logger's level between Info and
// Debug; the diagnostic lines are unaffected since they are emitted at
// Error/Warn regardless.
func (r *Reporter) SetVerbose(verbose bool) {
	if verbose {
		r.log.SetLevel(logrus.DebugLevel)
	} else {
		r.log.SetLevel(logrus.InfoLevel)
	}
}

// SetOutput redirects where formatted diagnostics and logs are written;
// defaults to os.Stderr via logrus.New().
func (r *Reporter) SetOutput(w io.Writer) {
	r.log.SetOutput(w)
}
