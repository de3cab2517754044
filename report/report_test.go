package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorAtLine_FormatsAndSetsHadError(t *testing.T) {
	rep := New()
	var buf bytes.Buffer
	rep.SetOutput(&buf)

	rep.ErrorAtLine(3, "Unexpected character.")

	assert.True(t, rep.HadError())
	assert.Equal(t, "[3] Error: Unexpected character.\n", buf.String())
}

func TestErrorAtToken_AtEndUsesAtEndWhere(t *testing.T) {
	rep := New()
	var buf bytes.Buffer
	rep.SetOutput(&buf)

	rep.ErrorAtToken(7, true, "", "Expect expression.")

	assert.Equal(t, "[7] Error at end: Expect expression.\n", buf.String())
}

func TestErrorAtToken_WithLexemeQuotesIt(t *testing.T) {
	rep := New()
	var buf bytes.Buffer
	rep.SetOutput(&buf)

	rep.ErrorAtToken(2, false, "+", "Expect expression.")

	assert.Equal(t, "[2] Error at '+': Expect expression.\n", buf.String())
}

func TestRuntimeError_FormatsMessageThenLine(t *testing.T) {
	rep := New()
	var buf bytes.Buffer
	rep.SetOutput(&buf)

	rep.RuntimeError(5, "Undefined variable 'x'.")

	assert.True(t, rep.HadRuntimeError())
	assert.Equal(t, "Undefined variable 'x'.\n[line 5]\n", buf.String())
}

func TestWarn_HasNoPrefixAndDoesNotSetHadError(t *testing.T) {
	rep := New()
	var buf bytes.Buffer
	rep.SetOutput(&buf)

	rep.Warn("b is not used anywhere.")

	assert.False(t, rep.HadError())
	assert.Equal(t, "b is not used anywhere.\n", buf.String())
}

func TestReset_ClearsErrorFlagsAndStaticErrors(t *testing.T) {
	rep := New()
	var buf bytes.Buffer
	rep.SetOutput(&buf)

	rep.ErrorAtLine(1, "bad")
	rep.RuntimeError(1, "bad")
	assert.True(t, rep.HadError())
	assert.True(t, rep.HadRuntimeError())

	rep.Reset()

	assert.False(t, rep.HadError())
	assert.False(t, rep.HadRuntimeError())
	assert.Nil(t, rep.StaticErrors())
}

func TestStaticErrors_AggregatesInEncounterOrder(t *testing.T) {
	rep := New()
	var buf bytes.Buffer
	rep.SetOutput(&buf)

	rep.ErrorAtLine(1, "first")
	rep.ErrorAtLine(2, "second")

	err := rep.StaticErrors()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "second")
	assert.Less(t, strings.Index(err.Error(), "first"), strings.Index(err.Error(), "second"))
}
