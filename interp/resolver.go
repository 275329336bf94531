package interp

import (
	"fmt"

	"fern/parser"
)

// functionContext tracks whether resolution is inside a function body,
// which is what makes a return statement legal
type functionContext int

const (
	funcNone functionContext = iota
	funcFunction
)

// Resolver walks the syntax tree before execution, annotating every
// variable reference with the number of scope hops to its declaration
// and rejecting programs that misuse declarations or placement-sensitive
// statements. It collects every error it finds rather than stopping at
// the first.
type Resolver struct {
	interp    *Interpreter
	scopes    []map[string]bool
	function  functionContext
	loopDepth int
	errors    []*ResolveError
}

// NewResolver creates a resolver recording scope distances into the
// given interpreter
func NewResolver(interp *Interpreter) *Resolver {
	return &Resolver{interp: interp}
}

// Resolve analyzes a program and returns all semantic errors found.
// Distances are recorded as a side effect; they are only meaningful
// when no errors are returned.
func (r *Resolver) Resolve(stmts []parser.Stmt) []*ResolveError {
	// The program's own top level is a scope too, so declaration rules
	// like self-referential initializers apply there as well
	r.beginScope()
	r.resolveStatements(stmts)
	r.endScope()
	return r.errors
}

// ==========================================================================
// STATEMENTS
// ==========================================================================

func (r *Resolver) resolveStatements(stmts []parser.Stmt) {
	for _, stmt := range stmts {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt parser.Stmt) {
	switch s := stmt.(type) {
	case *parser.ExprStmt:
		r.resolveExpr(s.Expr)
	case *parser.PrintStmt:
		r.resolveExpr(s.Expr)
	case *parser.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *parser.BlockStmt:
		r.beginScope()
		r.resolveStatements(s.Statements)
		r.endScope()
	case *parser.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}
	case *parser.WhileStmt:
		r.resolveExpr(s.Condition)
		r.loopDepth++
		r.resolveStmt(s.Body)
		r.loopDepth--
		if s.Finally != nil {
			// The finally clause runs after the loop is done, so a
			// break inside it has no loop to terminate
			r.resolveStmt(s.Finally)
		}
	case *parser.FunctionStmt:
		// Defined before the body resolves so the function can call
		// itself recursively
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s)
	case *parser.ClassStmt:
		r.declare(s.Name)
		r.define(s.Name)
		for _, method := range s.Methods {
			r.resolveFunction(method)
		}
	case *parser.ReturnStmt:
		if r.function == funcNone {
			r.errorAt(s.Keyword, "cannot return from top-level code")
		}
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	case *parser.BreakStmt:
		if r.loopDepth == 0 {
			r.errorAt(s.Keyword, "cannot break outside of a loop")
		}
	}
}

// resolveFunction resolves a function body in a fresh scope holding the
// parameters. Loop depth resets across the boundary: a break inside a
// function cannot terminate a loop in its caller.
func (r *Resolver) resolveFunction(fn *parser.FunctionStmt) {
	enclosingFunction := r.function
	enclosingLoopDepth := r.loopDepth
	r.function = funcFunction
	r.loopDepth = 0

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(fn.Body)
	r.endScope()

	r.function = enclosingFunction
	r.loopDepth = enclosingLoopDepth
}

// ==========================================================================
// EXPRESSIONS
// ==========================================================================

func (r *Resolver) resolveExpr(expr parser.Expr) {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		// Nothing to resolve
	case *parser.GroupingExpr:
		r.resolveExpr(e.Expr)
	case *parser.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][e.Name.Raw]; declared && !defined {
				r.errorAt(e.Name, "cannot read variable %s in its own initializer", e.Name.Raw)
			}
		}
		r.resolveLocal(e, e.Name)
	case *parser.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *parser.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *parser.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *parser.UnaryExpr:
		r.resolveExpr(e.Right)
	case *parser.CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}
	case *parser.GetExpr:
		r.resolveExpr(e.Object)
	case *parser.SetExpr:
		r.resolveExpr(e.Object)
		r.resolveExpr(e.Value)
	}
}

// resolveLocal records the hop count from the current scope to the one
// declaring the name. A name declared in no lexical scope resolves at
// runtime against the global table instead.
func (r *Resolver) resolveLocal(expr parser.Expr, name parser.Token) {
	for n := len(r.scopes) - 1; n >= 0; n-- {
		if _, ok := r.scopes[n][name.Raw]; ok {
			r.interp.Resolve(expr, len(r.scopes)-1-n)
			return
		}
	}
}

// ==========================================================================
// SCOPES
// ==========================================================================

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare marks a name as existing but not yet usable in the current
// scope. Declaring the same name twice in one scope is an error.
func (r *Resolver) declare(name parser.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Raw]; ok {
		r.errorAt(name, "variable %s already declared in this scope", name.Raw)
	}
	scope[name.Raw] = false
}

// define marks a declared name as fully initialized and usable
func (r *Resolver) define(name parser.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Raw] = true
}

func (r *Resolver) errorAt(tok parser.Token, format string, args ...interface{}) {
	r.errors = append(r.errors, &ResolveError{
		Token:   tok,
		Message: fmt.Sprintf(format, args...),
	})
}
