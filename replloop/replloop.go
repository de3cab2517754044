/*
Package replloop implements the interactive shells around lox.Runtime:
an in-process REPL using readline for line editing and colored output,
and a TCP "serve" mode that hands each connection its own isolated
Runtime so concurrent sessions never share variables.
*/
package replloop

import (
	"bufio"
	"io"
	"net"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/golox/lox"
	"github.com/akashmaji946/golox/report"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const (
	banner = `
   _        _
  | | ___  | |_ __  _ __
  | |/ _ \ | \ \/ \/ /
  | | (_) || |\  /\  /
  |_|\___/ |_| \/  \/
`
	line = "--------------------------------------------------------------"
)

// Repl is a readline-backed interactive shell over one lox.Runtime.
// Unlike the file driver, it never exits on a scan/parse/runtime
// error — each line's Reporter state is reset and the prompt returns.
type Repl struct {
	Version string
	Prompt  string
}

// NewRepl builds a Repl with the given version banner and prompt.
func NewRepl(version, prompt string) *Repl {
	return &Repl{Version: version, Prompt: prompt}
}

// printBanner writes the startup banner and basic usage instructions.
func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintf(w, "golox %s\n", r.Version)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Type Lox code and press enter. Ctrl+D or '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", line)
}

// Start runs the REPL loop against stdin/stdout-shaped streams. It owns
// one lox.Runtime for the whole session, so variables declared on one
// line are visible on the next.
func (r *Repl) Start(out io.Writer) {
	r.printBanner(out)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(out, "Could not start line editor: %v\n", err)
		return
	}
	defer rl.Close()

	rep := report.New()
	rep.SetOutput(out)
	runtime := lox.NewRuntime(rep, &linePrinter{w: out})

	rep.Infof("REPL session connected")
	defer rep.Infof("REPL session disconnected")

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl+D, readline.ErrInterrupt on Ctrl+C
			yellowColor.Fprintln(out, "Goodbye!")
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			yellowColor.Fprintln(out, "Goodbye!")
			return
		}
		rl.SaveHistory(line)
		runWithRecovery(out, rep, runtime, line)
	}
}

// runWithRecovery runs one line through runtime, catching a panic so a
// bug in an experimental feature reports as a runtime error instead of
// taking down the REPL session.
func runWithRecovery(w io.Writer, rep *report.Reporter, runtime *lox.Runtime, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(w, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()
	runtime.Run(line)
}

// linePrinter adapts an io.Writer to interp.Printer.
type linePrinter struct{ w io.Writer }

func (p *linePrinter) Println(s string) {
	io.WriteString(p.w, s)
	io.WriteString(p.w, "\n")
}

// Serve listens on addr and hands each accepted connection its own
// goroutine and its own Runtime — sessions are fully isolated, so one
// client's variables and declarations never leak into another's.
func Serve(addr string, version string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			continue
		}
		go serveConn(conn, version)
	}
}

func serveConn(conn net.Conn, version string) {
	defer conn.Close()
	cyanColor.Fprintf(conn, "Connected to golox %s. Type '.exit' to disconnect.\n", version)

	rep := report.New()
	rep.SetOutput(conn)
	runtime := lox.NewRuntime(rep, &linePrinter{w: conn})

	rep.Infof("connection accepted from %s", conn.RemoteAddr())
	defer rep.Infof("connection closed from %s", conn.RemoteAddr())

	scanner := bufio.NewScanner(conn)
	for {
		conn.Write([]byte("golox> "))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == ".exit" {
			yellowColor.Fprintln(conn, "Goodbye!")
			return
		}
		runWithRecovery(conn, rep, runtime, line)
	}
}
