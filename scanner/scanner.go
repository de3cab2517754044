/*
Package scanner implements the Lox lexical analyzer: it turns source text
into an ordered sequence of token.Token, ending with exactly one EOF.

Errors are non-fatal: an unrecognized character or an unterminated string
is reported through the Reporter and scanning continues, so that a single
pass can surface every lexical problem in the source rather than just the
first one.
*/
package scanner

import (
	"strconv"

	"github.com/akashmaji946/golox/report"
	"github.com/akashmaji946/golox/token"
)

// Scanner turns source text into tokens.
type Scanner struct {
	source  string
	tokens  []token.Token
	start   int
	current int
	line    int
	rep     *report.Reporter
}

// New builds a Scanner over source. Diagnostics are sent to rep.
func New(source string, rep *report.Reporter) *Scanner {
	return &Scanner{source: source, line: 1, rep: rep}
}

// ScanTokens runs the scanner to completion and returns every token,
// terminated by a single EOF sentinel.
func (s *Scanner) ScanTokens() []token.Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.New(token.EOF, "", nil, s.line))
	return s.tokens
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(token.LeftParen, nil)
	case ')':
		s.addToken(token.RightParen, nil)
	case '{':
		s.addToken(token.LeftBrace, nil)
	case '}':
		s.addToken(token.RightBrace, nil)
	case ',':
		s.addToken(token.Comma, nil)
	case '.':
		s.addToken(token.Dot, nil)
	case '-':
		s.addToken(token.Minus, nil)
	case '+':
		s.addToken(token.Plus, nil)
	case ';':
		s.addToken(token.Semicolon, nil)
	case '*':
		s.addToken(token.Star, nil)
	case '?':
		s.addToken(token.Question, nil)
	case ':':
		s.addToken(token.Colon, nil)

	case '!':
		s.addToken(s.twoChar('=', token.BangEqual, token.Bang), nil)
	case '=':
		s.addToken(s.twoChar('=', token.EqualEqual, token.Equal), nil)
	case '<':
		s.addToken(s.twoChar('=', token.LessEqual, token.Less), nil)
	case '>':
		s.addToken(s.twoChar('=', token.GreaterEqual, token.Greater), nil)

	case '/':
		switch {
		case s.match('/'):
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		case s.match('*'):
			s.blockComment()
		default:
			s.addToken(token.Slash, nil)
		}

	case ' ', '\r', '\t':
		// ignored
	case '\n':
		s.line++

	case '"':
		s.string()

	default:
		switch {
		case isDigit(c):
			s.number()
		case isAlpha(c):
			s.identifier()
		default:
			s.rep.ErrorAtLine(s.line, "Unexpected character.")
		}
	}
}

func (s *Scanner) twoChar(expected byte, ifMatch, otherwise token.Kind) token.Kind {
	if s.match(expected) {
		return ifMatch
	}
	return otherwise
}

// blockComment consumes a /* ... */ comment. Block comments do not nest;
// a newline inside one still advances the line counter.
func (s *Scanner) blockComment() {
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance()
			s.advance()
			return
		}
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
}

func (s *Scanner) string() {
	startLine := s.line
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.isAtEnd() {
		s.rep.ErrorAtLine(startLine, "Unterminated string.")
		return
	}
	s.advance() // closing quote
	value := s.source[s.start+1 : s.current-1]
	s.addToken(token.String, value)
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	value, _ := strconv.ParseFloat(s.source[s.start:s.current], 64)
	s.addToken(token.Number, value)
}

func (s *Scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	kind, ok := token.Keywords[text]
	if !ok {
		kind = token.Identifier
	}
	s.addToken(kind, nil)
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(kind token.Kind, literal interface{}) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, token.New(kind, text, literal, s.line))
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
