package report

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// diagnostic kind, stashed in each logrus.Entry's fields so diagnosticFormatter
// knows which of the two wire formats to produce.
type kind string

const (
	kindStatic  kind = "static"
	kindRuntime kind = "runtime"
	kindWarn    kind = "warn"
)

// diagnosticFormatter is a logrus.Formatter that reproduces the interpreter's
// diagnostic formats byte-for-byte:
//
//	static:  "[<line>] Error<where>: <message>\n"
//	runtime: "<message>\n[line <line>]\n"
//	warn:    "<message>\n"
//
// logrus handles level filtering and the output writer; this type owns
// only the text layout.
type diagnosticFormatter struct{}

func (f *diagnosticFormatter) Format(e *logrus.Entry) ([]byte, error) {
	k, _ := e.Data["kind"].(kind)
	switch k {
	case kindStatic:
		line, _ := e.Data["line"].(int)
		where, _ := e.Data["where"].(string)
		return []byte(fmt.Sprintf("[%d] Error%s: %s\n", line, where, e.Message)), nil
	case kindRuntime:
		line, _ := e.Data["line"].(int)
		return []byte(fmt.Sprintf("%s\n[line %d]\n", e.Message, line)), nil
	case kindWarn:
		return []byte(e.Message + "\n"), nil
	default:
		return []byte(fmt.Sprintf("%s\n", e.Message)), nil
	}
}
