package interp

import (
	"fmt"
	"io"

	"fern/parser"
	"fern/types"
)

// Interpreter executes statements against a mutable current-environment
// register. Variable references resolved by the Resolver are looked up
// by direct ancestor hop; unresolved references fall back to the global
// table and are validated at runtime.
type Interpreter struct {
	globals *Environment
	env     *Environment
	locals  map[parser.Expr]int
	out     io.Writer
}

// NewInterpreter creates an interpreter writing program output to out.
// The global scope is pre-populated with the clock native.
func NewInterpreter(out io.Writer) *Interpreter {
	globals := NewEnvironment()
	globals.Define("clock", clockNative())
	return &Interpreter{
		globals: globals,
		env:     globals,
		locals:  make(map[parser.Expr]int),
		out:     out,
	}
}

// Globals exposes the global environment (used by embedding hosts to
// pre-bind additional natives)
func (i *Interpreter) Globals() *Environment {
	return i.globals
}

// Resolve records the scope distance for a variable reference or
// assignment target. Called by the Resolver; resolution is
// deterministic, so re-resolving the same node writes the same value.
func (i *Interpreter) Resolve(expr parser.Expr, distance int) {
	i.locals[expr] = distance
}

// Interpret executes statements in order, stopping the whole run at the
// first runtime error. A Break or Return reaching this level means the
// Resolver failed to reject it statically: an internal invariant
// violation, reported as such rather than as a user error.
func (i *Interpreter) Interpret(stmts []parser.Stmt) *types.RuntimeError {
	for _, stmt := range stmts {
		result := i.execute(stmt)
		switch result.Flow {
		case types.FlowError:
			return result.Err
		case types.FlowBreak, types.FlowReturn:
			return &types.RuntimeError{
				Message: fmt.Sprintf("internal invariant violation: unhandled %s reached the top level", result.Flow),
				Line:    stmt.Position().Line,
				Column:  stmt.Position().Column,
			}
		}
	}
	return nil
}

// Evaluate evaluates a single expression against the current
// environment. Used by hosts that accept bare expressions, like the
// REPL and the -e flag.
func (i *Interpreter) Evaluate(expr parser.Expr) types.Result {
	return i.eval(expr)
}

// execute evaluates a single statement
func (i *Interpreter) execute(stmt parser.Stmt) types.Result {
	switch s := stmt.(type) {
	case *parser.ExprStmt:
		result := i.eval(s.Expr)
		if !result.IsNormal() {
			return result
		}
		return types.Ok(types.NewNil())
	case *parser.PrintStmt:
		return i.executePrint(s)
	case *parser.VarStmt:
		return i.executeVar(s)
	case *parser.BlockStmt:
		return i.executeBlock(s.Statements, NewNestedEnvironment(i.env))
	case *parser.IfStmt:
		return i.executeIf(s)
	case *parser.WhileStmt:
		return i.executeWhile(s)
	case *parser.FunctionStmt:
		i.env.Define(s.Name.Raw, &FunctionValue{Decl: s, Closure: i.env})
		return types.Ok(types.NewNil())
	case *parser.ClassStmt:
		return i.executeClass(s)
	case *parser.ReturnStmt:
		return i.executeReturn(s)
	case *parser.BreakStmt:
		return types.Break()
	default:
		return types.Failf("", stmt.Position().Line, stmt.Position().Column,
			"internal invariant violation: unknown statement %T", stmt)
	}
}

// evalStatements executes statements in order, propagating the first
// abrupt completion without executing the rest
func (i *Interpreter) evalStatements(stmts []parser.Stmt) types.Result {
	for _, stmt := range stmts {
		result := i.execute(stmt)
		if !result.IsNormal() {
			return result
		}
	}
	return types.Ok(types.NewNil())
}

// executeBlock runs statements in the given environment, restoring the
// previous one afterwards
func (i *Interpreter) executeBlock(stmts []parser.Stmt, env *Environment) types.Result {
	prev := i.env
	i.env = env
	result := i.evalStatements(stmts)
	i.env = prev
	return result
}

// executePrint writes the value's textual rendering plus a line break
// to the output channel
func (i *Interpreter) executePrint(s *parser.PrintStmt) types.Result {
	result := i.eval(s.Expr)
	if !result.IsNormal() {
		return result
	}
	fmt.Fprintln(i.out, result.Val.String())
	return types.Ok(types.NewNil())
}

// executeVar declares a variable in the current scope, initialized to
// nil when no initializer is given
func (i *Interpreter) executeVar(s *parser.VarStmt) types.Result {
	var value types.Value = types.NewNil()
	if s.Initializer != nil {
		result := i.eval(s.Initializer)
		if !result.IsNormal() {
			return result
		}
		value = result.Val
	}
	i.env.Define(s.Name.Raw, value)
	return types.Ok(types.NewNil())
}

// executeIf evaluates the condition and executes exactly one branch
func (i *Interpreter) executeIf(s *parser.IfStmt) types.Result {
	cond := i.eval(s.Condition)
	if !cond.IsNormal() {
		return cond
	}
	if cond.Val.Truthy() {
		return i.execute(s.ThenBranch)
	}
	if s.ElseBranch != nil {
		return i.execute(s.ElseBranch)
	}
	return types.Ok(types.NewNil())
}

// executeWhile loops while the condition is truthy. A Break unwinding
// out of the body is caught and swallowed here; a Return propagates to
// the enclosing call frame. The finally clause runs exactly once after
// the loop exits by condition, break, or return; runtime errors abort
// without running it.
func (i *Interpreter) executeWhile(s *parser.WhileStmt) types.Result {
	exit := types.Ok(types.NewNil())
	for {
		cond := i.eval(s.Condition)
		if !cond.IsNormal() {
			return cond
		}
		if !cond.Val.Truthy() {
			break
		}

		body := i.execute(s.Body)
		if body.IsNormal() {
			continue
		}
		if body.IsError() {
			return body
		}
		if body.IsReturn() {
			exit = body
		}
		// Break is swallowed: it terminates only this loop
		break
	}

	if s.Finally != nil {
		fin := i.execute(s.Finally)
		if !fin.IsNormal() {
			return fin
		}
	}
	return exit
}

// executeClass binds a class descriptor. Method declarations are parsed
// and retained but not wired into call dispatch.
func (i *Interpreter) executeClass(s *parser.ClassStmt) types.Result {
	methods := make(map[string]*FunctionValue, len(s.Methods))
	for _, method := range s.Methods {
		methods[method.Name.Raw] = &FunctionValue{Decl: method, Closure: i.env}
	}
	i.env.Define(s.Name.Raw, &ClassValue{Name: s.Name.Raw, Methods: methods})
	return types.Ok(types.NewNil())
}

// executeReturn evaluates the optional value and starts a Return unwind
func (i *Interpreter) executeReturn(s *parser.ReturnStmt) types.Result {
	var value types.Value = types.NewNil()
	if s.Value != nil {
		result := i.eval(s.Value)
		if !result.IsNormal() {
			return result
		}
		value = result.Val
	}
	return types.Return(value)
}
