package scanner

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/report"
	"github.com/akashmaji946/golox/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestScanTokens_EndsWithEOF(t *testing.T) {
	rep := report.New()
	tokens := New("print 1;", rep).ScanTokens()
	require.NotEmpty(t, tokens)
	assert.Equal(t, token.EOF, tokens[len(tokens)-1].Kind)
	assert.False(t, rep.HadError())
}

func TestScanTokens_Punctuation(t *testing.T) {
	rep := report.New()
	tokens := New("(){},.-+;/ *?:", rep).ScanTokens()
	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon,
		token.Slash, token.Star, token.Question, token.Colon, token.EOF,
	}, kinds(tokens))
}

func TestScanTokens_TwoCharOperators(t *testing.T) {
	rep := report.New()
	tokens := New("! != = == < <= > >=", rep).ScanTokens()
	assert.Equal(t, []token.Kind{
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Less, token.LessEqual, token.Greater, token.GreaterEqual, token.EOF,
	}, kinds(tokens))
}

func TestScanTokens_NumberLiteral(t *testing.T) {
	rep := report.New()
	tokens := New("1.5", rep).ScanTokens()
	require.Len(t, tokens, 2)
	assert.Equal(t, token.Number, tokens[0].Kind)
	assert.Equal(t, 1.5, tokens[0].Literal)
}

func TestScanTokens_StringLiteral(t *testing.T) {
	rep := report.New()
	tokens := New(`"hello\nworld"`, rep).ScanTokens()
	require.Len(t, tokens, 2)
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, `hello\nworld`, tokens[0].Literal)
}

func TestScanTokens_StringSpansLinesAndUpdatesLineCounter(t *testing.T) {
	rep := report.New()
	tokens := New("\"a\nb\" 1", rep).ScanTokens()
	require.Len(t, tokens, 3)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanTokens_UnterminatedStringReportsAtOpeningLine(t *testing.T) {
	rep := report.New()
	var buf bytes.Buffer
	rep.SetOutput(&buf)
	New("\n\"abc", rep).ScanTokens()
	assert.True(t, rep.HadError())
	assert.Equal(t, "[2] Error: Unterminated string.\n", buf.String())
}

func TestScanTokens_Keywords(t *testing.T) {
	rep := report.New()
	tokens := New("and class else false for fun if nil or print return super this true var while break", rep).ScanTokens()
	assert.Equal(t, []token.Kind{
		token.And, token.Class, token.Else, token.False, token.For, token.Fun,
		token.If, token.Nil, token.Or, token.Print, token.Return, token.Super,
		token.This, token.True, token.Var, token.While, token.Break, token.EOF,
	}, kinds(tokens))
}

func TestScanTokens_LineComment(t *testing.T) {
	rep := report.New()
	tokens := New("1 // comment\n2", rep).ScanTokens()
	require.Len(t, tokens, 3)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanTokens_BlockCommentDoesNotNestAndTracksLines(t *testing.T) {
	rep := report.New()
	tokens := New("/* a\nb */ 1", rep).ScanTokens()
	require.Len(t, tokens, 2)
	assert.Equal(t, 2, tokens[0].Line)

	tokens = New("/* a /* b */ 1", rep).ScanTokens()
	assert.Equal(t, []token.Kind{token.Number, token.EOF}, kinds(tokens))
}

func TestScanTokens_UnexpectedCharacterIsNonFatal(t *testing.T) {
	rep := report.New()
	tokens := New("1 @ 2", rep).ScanTokens()
	assert.True(t, rep.HadError())
	assert.Equal(t, []token.Kind{token.Number, token.Number, token.EOF}, kinds(tokens))
}

func TestScanTokens_LineNumbersAreMonotonic(t *testing.T) {
	rep := report.New()
	tokens := New("1\n2\n3", rep).ScanTokens()
	prev := 0
	for _, tok := range tokens {
		assert.GreaterOrEqual(t, tok.Line, prev)
		prev = tok.Line
	}
}
