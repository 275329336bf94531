package types

import "fmt"

// ControlFlow represents the completion state of evaluating a statement
// or expression. Break and Return share the propagation channel with
// errors but are structurally distinct: they are control flow, never
// user-visible failures.
type ControlFlow int

const (
	FlowNormal ControlFlow = iota // fell through normally
	FlowBreak                     // break statement unwinding to the nearest loop
	FlowReturn                    // return statement unwinding to the nearest call frame
	FlowError                     // runtime error, fatal to the run
)

// String returns the name of the control flow state
func (f ControlFlow) String() string {
	switch f {
	case FlowNormal:
		return "normal"
	case FlowBreak:
		return "break"
	case FlowReturn:
		return "return"
	case FlowError:
		return "error"
	default:
		return "unknown"
	}
}

// Result represents the outcome of evaluating an expression or statement.
// It unifies normal values, abrupt completion (break/return), and runtime
// errors so statement execution propagates all three by ordinary checks.
type Result struct {
	Val  Value         // the value (Flow == FlowNormal or FlowReturn)
	Flow ControlFlow   // completion state
	Err  *RuntimeError // only set when Flow == FlowError
}

// Ok creates a Result for normal completion with a value
func Ok(v Value) Result {
	return Result{Val: v, Flow: FlowNormal}
}

// Return creates a Result for a return statement
func Return(v Value) Result {
	return Result{Val: v, Flow: FlowReturn}
}

// Break creates a Result for a break statement
func Break() Result {
	return Result{Flow: FlowBreak}
}

// Fail creates a Result carrying a runtime error
func Fail(err *RuntimeError) Result {
	return Result{Flow: FlowError, Err: err}
}

// Failf creates a runtime error Result positioned at line/column with the
// offending lexeme
func Failf(lexeme string, line, column int, format string, args ...interface{}) Result {
	return Fail(&RuntimeError{
		Message: fmt.Sprintf(format, args...),
		Lexeme:  lexeme,
		Line:    line,
		Column:  column,
	})
}

// IsNormal returns true if this is normal completion
func (r Result) IsNormal() bool {
	return r.Flow == FlowNormal
}

// IsBreak returns true if this is a break unwinding
func (r Result) IsBreak() bool {
	return r.Flow == FlowBreak
}

// IsReturn returns true if this is a return unwinding
func (r Result) IsReturn() bool {
	return r.Flow == FlowReturn
}

// IsError returns true if this is a runtime error
func (r Result) IsError() bool {
	return r.Flow == FlowError
}
