package lox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/golox/report"
)

type linePrinter struct {
	buf bytes.Buffer
}

func (p *linePrinter) Println(s string) {
	p.buf.WriteString(s)
	p.buf.WriteString("\n")
}

func TestRun_CleanProgramExitsZero(t *testing.T) {
	rep := report.New()
	var errBuf bytes.Buffer
	rep.SetOutput(&errBuf)
	out := &linePrinter{}
	rt := NewRuntime(rep, out)

	code := rt.Run(`print "hi";`)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "hi\n", out.buf.String())
}

func TestRun_ParseErrorExits65(t *testing.T) {
	rep := report.New()
	var errBuf bytes.Buffer
	rep.SetOutput(&errBuf)
	out := &linePrinter{}
	rt := NewRuntime(rep, out)

	code := rt.Run(`+ 2;`)
	assert.Equal(t, ExitStaticErr, code)
}

func TestRun_RuntimeErrorExits70(t *testing.T) {
	rep := report.New()
	var errBuf bytes.Buffer
	rep.SetOutput(&errBuf)
	out := &linePrinter{}
	rt := NewRuntime(rep, out)

	code := rt.Run(`print 1 / 0;`)
	assert.Equal(t, ExitRuntimeErr, code)
}

func TestRun_VariablesPersistAcrossRunCallsOnSameRuntime(t *testing.T) {
	rep := report.New()
	var errBuf bytes.Buffer
	rep.SetOutput(&errBuf)
	out := &linePrinter{}
	rt := NewRuntime(rep, out)

	assert.Equal(t, ExitOK, rt.Run(`var counter = 1;`))
	assert.Equal(t, ExitOK, rt.Run(`print counter;`))
	assert.Equal(t, "1\n", out.buf.String())
}

func TestRun_ResetClearsStaticErrorFlagBetweenLines(t *testing.T) {
	rep := report.New()
	var errBuf bytes.Buffer
	rep.SetOutput(&errBuf)
	out := &linePrinter{}
	rt := NewRuntime(rep, out)

	rt.Run(`+ 2;`)
	assert.True(t, rep.HadError())
	rt.Run(`print 1;`)
	assert.False(t, rep.HadError())
}
