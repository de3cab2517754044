package interp

import "github.com/akashmaji946/golox/token"

// runtimeError carries the token at fault alongside the message, so the
// top-level catch in Interpret can report "<message>\n[line N]" using
// the token's line the way the Reporter's wire format requires.
type runtimeError struct {
	token   token.Token
	message string
}

func (e *runtimeError) Error() string { return e.message }

func newRuntimeError(tok token.Token, message string) *runtimeError {
	return &runtimeError{token: tok, message: message}
}
