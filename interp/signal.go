package interp

import "github.com/akashmaji946/golox/token"

// signalKind distinguishes a normal statement-execution outcome from
// the two non-error unwinding signals the language defines. Modeling
// these as explicit tagged return values — rather than panic/recover —
// keeps control flow out of the error path; a runtimeError is the only
// thing that represents an actual failure.
type signalKind int

const (
	signalNone signalKind = iota
	signalReturn
	signalBreak
)

// signal is threaded back up through statement execution by every
// recursive call; a block, loop, or function body inspects it to decide
// whether to keep executing, unwind to its own boundary, or propagate
// further. tok is the originating break/return keyword, carried along so
// that a signal which escapes every consumer able to catch it (a break
// reaching past the nearest enclosing loop) can still be reported against
// the right source line.
type signal struct {
	kind  signalKind
	value interface{}
	tok   token.Token
}

var normalSignal = signal{kind: signalNone}
