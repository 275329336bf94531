// Package fern implements the Fern scripting language: a lexer, a
// recursive-descent parser, a static resolver, and a tree-walking
// interpreter, plus a Runner that wires the pipeline together for
// hosts like the CLI and the conformance harness.
package fern

import (
	"fmt"
	"io"

	"fern/interp"
	"fern/parser"
	"fern/types"
)

// Runner drives the full pipeline over a persistent interpreter.
// Program output goes to out; diagnostics from every stage go to
// errOut. State accumulates across Run calls, which is what lets a
// REPL see bindings from earlier lines.
type Runner struct {
	interp *interp.Interpreter
	errOut io.Writer
}

// NewRunner creates a runner writing program output to out and
// diagnostics to errOut
func NewRunner(out, errOut io.Writer) *Runner {
	return &Runner{
		interp: interp.NewInterpreter(out),
		errOut: errOut,
	}
}

// Interpreter exposes the underlying interpreter (used by hosts to
// pre-bind additional natives)
func (r *Runner) Interpreter() *interp.Interpreter {
	return r.interp
}

// Run executes a program. Each stage runs only when every earlier
// stage reported no diagnostics, and a failing stage reports all of
// its diagnostics, not just the first. Returns true when the program
// ran to completion.
func (r *Runner) Run(source string) bool {
	lexer := parser.NewLexer(source)
	tokens, lexErrs := lexer.Tokens()
	if len(lexErrs) > 0 {
		for _, err := range lexErrs {
			fmt.Fprintln(r.errOut, err.Error())
		}
		return false
	}

	stmts, parseErrs := parser.NewParser(tokens).Parse()
	if len(parseErrs) > 0 {
		for _, err := range parseErrs {
			fmt.Fprintln(r.errOut, err.Error())
		}
		return false
	}

	if !r.resolve(stmts) {
		return false
	}

	if err := r.interp.Interpret(stmts); err != nil {
		fmt.Fprintf(r.errOut, "runtime: %s\n", err.Error())
		return false
	}
	return true
}

// Eval evaluates a single expression and returns its value. Used for
// the -e flag and for REPL lines that are expressions rather than
// statements.
func (r *Runner) Eval(source string) (types.Value, bool) {
	lexer := parser.NewLexer(source)
	tokens, lexErrs := lexer.Tokens()
	if len(lexErrs) > 0 {
		for _, err := range lexErrs {
			fmt.Fprintln(r.errOut, err.Error())
		}
		return nil, false
	}

	expr, parseErrs := parser.NewParser(tokens).ParseExpression()
	if len(parseErrs) > 0 {
		for _, err := range parseErrs {
			fmt.Fprintln(r.errOut, err.Error())
		}
		return nil, false
	}

	// Resolution runs over statements, so the expression rides in a
	// synthetic expression statement
	if !r.resolve([]parser.Stmt{&parser.ExprStmt{Pos: expr.Position(), Expr: expr}}) {
		return nil, false
	}

	result := r.interp.Evaluate(expr)
	if result.IsError() {
		fmt.Fprintf(r.errOut, "runtime: %s\n", result.Err.Error())
		return nil, false
	}
	return result.Val, true
}

func (r *Runner) resolve(stmts []parser.Stmt) bool {
	resolveErrs := interp.NewResolver(r.interp).Resolve(stmts)
	if len(resolveErrs) > 0 {
		for _, err := range resolveErrs {
			fmt.Fprintln(r.errOut, err.Error())
		}
		return false
	}
	return true
}
