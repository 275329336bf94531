package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"fern"
	"fern/trace"
)

const (
	appName     = "fern"
	historyFile = ".fern_history"
	prompt      = ">> "
)

func main() {
	expr := flag.String("e", "", "Evaluate a single expression and print its value")
	traceEnabled := flag.Bool("trace", false, "Enable execution tracing")
	traceFilter := flag.String("trace-filter", "", "Trace filter pattern (glob, e.g., 'fib*' or 'make_*')")
	flag.Usage = usage
	flag.Parse()

	// Initialize tracer
	if *traceEnabled {
		var filters []string
		if *traceFilter != "" {
			filters = strings.Split(*traceFilter, ",")
			for i := range filters {
				filters[i] = strings.TrimSpace(filters[i])
			}
		}
		trace.Init(true, filters, os.Stderr)
	} else {
		trace.Init(false, nil, nil)
	}

	runner := fern.NewRunner(os.Stdout, os.Stderr)

	if *expr != "" {
		os.Exit(evalOneShot(runner, *expr))
	}

	switch flag.NArg() {
	case 0:
		os.Exit(repl(runner))
	case 1:
		os.Exit(runFile(runner, flag.Arg(0)))
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  %s [flags]            Start the REPL.
  %s [flags] <file>     Run a script.
  %s -e <expr>          Evaluate an expression and print its value.

Flags:
  -trace                Enable execution tracing
  -trace-filter <glob>  Trace only functions matching the pattern(s)
`, appName, appName, appName)
}

// evalOneShot handles -e: statement-looking input runs as a program,
// anything else evaluates as an expression and prints its value
func evalOneShot(runner *fern.Runner, code string) int {
	code = strings.TrimSpace(code)
	if strings.HasSuffix(code, ";") || strings.HasSuffix(code, "}") {
		if !runner.Run(code) {
			return 1
		}
		return 0
	}
	val, ok := runner.Eval(code)
	if !ok {
		return 1
	}
	fmt.Println(val.String())
	return 0
}

func runFile(runner *fern.Runner, path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
		return 1
	}
	if !runner.Run(string(src)) {
		return 1
	}
	return 0
}

func repl(runner *fern.Runner) int {
	fmt.Printf("Fern REPL. Ctrl+D or :quit exits.\n")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return 1
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		if code == ":quit" {
			return 0
		}
		ln.AppendHistory(line)

		// A line that ends like a statement runs as one; anything else
		// is treated as an expression and its value is echoed
		if strings.HasSuffix(code, ";") || strings.HasSuffix(code, "}") {
			runner.Run(code)
			continue
		}
		if val, ok := runner.Eval(code); ok {
			fmt.Println(val.String())
		}
	}
}
