/*
Command golox is the CLI front door: a bare invocation or `golox repl`
starts an interactive session, `golox <path>` runs a file once, `golox
serve <port>` opens a TCP REPL server, and `golox version` prints the
build version. All four are thin shells around lox.Runtime.Run — see
package lox for the actual pipeline.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/golox/lox"
	"github.com/akashmaji946/golox/replloop"
	"github.com/akashmaji946/golox/report"
)

const (
	version = "0.1.0"
	author  = "akashmaji946 (golox)"
	license = "MIT"
)

var verbose bool

// topLevelReporter backs the startup/connect logging that runs before a
// per-run Reporter exists; it writes to stderr at Info/Debug level only
// and never the diagnostic stream, since nothing has been parsed yet.
var topLevelReporter = report.New()

func main() {
	root := &cobra.Command{
		Use:   "golox [script]",
		Short: "golox is a tree-walking interpreter for Lox",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			topLevelReporter.SetVerbose(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runFile(args[0])
			}
			topLevelReporter.Infof("starting golox %s in REPL mode", version)
			replloop.NewRepl(version, "golox> ").Start(os.Stdout)
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	root.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "start an interactive REPL session",
		RunE: func(cmd *cobra.Command, args []string) error {
			topLevelReporter.Infof("starting golox %s in REPL mode", version)
			replloop.NewRepl(version, "golox> ").Start(os.Stdout)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "serve <port>",
		Short: "start a TCP REPL server, one isolated session per connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := ":" + args[0]
			topLevelReporter.Infof("starting golox %s in serve mode on %s", version, addr)
			color.New(color.FgCyan).Printf("golox %s listening on %s\n", version, addr)
			return replloop.Serve(addr, version)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "print the golox version, author, and license",
		RunE: func(cmd *cobra.Command, args []string) error {
			showVersion()
			return nil
		},
	})

	if err := root.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(lox.ExitUsage)
	}
}

// showVersion prints the name/version/license/author banner.
func showVersion() {
	cyan := color.New(color.FgCyan)
	cyan.Println("golox - A tree-walking interpreter for Lox")
	cyan.Printf("Version: %s\n", version)
	cyan.Printf("License: %s\n", license)
	cyan.Printf("Author : %s\n", author)
}

// linePrinter adapts an io.Writer to interp.Printer for file-mode runs.
type linePrinter struct{ w io.Writer }

func (p *linePrinter) Println(s string) {
	fmt.Fprintln(p.w, s)
}

func runFile(path string) error {
	topLevelReporter.Infof("starting golox %s in file mode on %s", version, path)

	source, err := os.ReadFile(path)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		os.Exit(lox.ExitUsage)
	}

	rep := report.New()
	rep.SetOutput(os.Stderr)
	rep.SetVerbose(verbose)

	runtime := lox.NewRuntime(rep, &linePrinter{w: os.Stdout})
	code := runFileWithRecovery(runtime, rep, string(source))
	os.Exit(code)
	return nil
}

// runFileWithRecovery catches a panic escaping the interpreter so a bug
// in an experimental feature can't crash the process outright; it is
// reported as a runtime error and the process still exits non-zero.
func runFileWithRecovery(runtime *lox.Runtime, rep *report.Reporter, source string) (code int) {
	defer func() {
		if recovered := recover(); recovered != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			code = lox.ExitRuntimeErr
		}
	}()
	return runtime.Run(source)
}
