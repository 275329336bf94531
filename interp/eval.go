package interp

import (
	"fern/parser"
	"fern/trace"
	"fern/types"
)

// eval evaluates an expression and returns a Result
func (i *Interpreter) eval(expr parser.Expr) types.Result {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		return types.Ok(e.Value)
	case *parser.GroupingExpr:
		return i.eval(e.Expr)
	case *parser.VariableExpr:
		return i.lookUpVariable(e.Name, e)
	case *parser.AssignExpr:
		return i.evalAssign(e)
	case *parser.LogicalExpr:
		return i.evalLogical(e)
	case *parser.BinaryExpr:
		return i.evalBinary(e)
	case *parser.UnaryExpr:
		return i.evalUnary(e)
	case *parser.CallExpr:
		return i.evalCall(e)
	case *parser.GetExpr:
		return i.evalGet(e)
	case *parser.SetExpr:
		return i.evalSet(e)
	default:
		pos := expr.Position()
		return types.Failf("", pos.Line, pos.Column,
			"internal invariant violation: unknown expression %T", expr)
	}
}

// lookUpVariable reads a variable through its resolved distance when
// the Resolver recorded one, else through the global table. A miss at a
// resolved distance is a resolver/interpreter inconsistency.
func (i *Interpreter) lookUpVariable(name parser.Token, expr parser.Expr) types.Result {
	if distance, ok := i.locals[expr]; ok {
		val, ok := i.env.GetAt(distance, name.Raw)
		if !ok {
			return failAt(name, "internal invariant violation: %q not found at resolved distance %d", name.Raw, distance)
		}
		return types.Ok(val)
	}
	val, ok := i.globals.Get(name.Raw)
	if !ok {
		return failAt(name, "attempted to access undefined variable %s", name.Raw)
	}
	return types.Ok(val)
}

// evalAssign evaluates the right-hand side and writes it through the
// resolved distance or the global table. Assignment never creates a
// binding; the result is the assigned value.
func (i *Interpreter) evalAssign(e *parser.AssignExpr) types.Result {
	result := i.eval(e.Value)
	if !result.IsNormal() {
		return result
	}

	if distance, ok := i.locals[e]; ok {
		if !i.env.AssignAt(distance, e.Name.Raw, result.Val) {
			return failAt(e.Name, "internal invariant violation: %q not found at resolved distance %d", e.Name.Raw, distance)
		}
		return types.Ok(result.Val)
	}
	if !i.globals.Assign(e.Name.Raw, result.Val) {
		return failAt(e.Name, "attempted to assign to undefined variable %s", e.Name.Raw)
	}
	return types.Ok(result.Val)
}

// evalLogical implements short-circuiting 'and'/'or'. The short-circuit
// path yields a coerced boolean, not the original left operand; only
// the non-short-circuit path yields the right operand's value as-is.
func (i *Interpreter) evalLogical(e *parser.LogicalExpr) types.Result {
	left := i.eval(e.Left)
	if !left.IsNormal() {
		return left
	}

	switch e.Operator.Type {
	case parser.TOKEN_OR:
		if left.Val.Truthy() {
			return types.Ok(types.NewBool(true))
		}
	case parser.TOKEN_AND:
		if !left.Val.Truthy() {
			return types.Ok(types.NewBool(false))
		}
	default:
		return failAt(e.Operator, "invalid operator %q in logical expression", e.Operator.Raw)
	}

	return i.eval(e.Right)
}

// evalBinary evaluates both operands, then dispatches on the operator
func (i *Interpreter) evalBinary(e *parser.BinaryExpr) types.Result {
	left := i.eval(e.Left)
	if !left.IsNormal() {
		return left
	}
	right := i.eval(e.Right)
	if !right.IsNormal() {
		return right
	}

	switch e.Operator.Type {
	case parser.TOKEN_PLUS:
		return evalAdd(e.Operator, left.Val, right.Val)
	case parser.TOKEN_MINUS:
		return evalSubtract(e.Operator, left.Val, right.Val)
	case parser.TOKEN_STAR:
		return evalMultiply(e.Operator, left.Val, right.Val)
	case parser.TOKEN_SLASH:
		return evalDivide(e.Operator, left.Val, right.Val)
	case parser.TOKEN_GT, parser.TOKEN_GE, parser.TOKEN_LT, parser.TOKEN_LE:
		return evalComparison(e.Operator, left.Val, right.Val)
	case parser.TOKEN_EQ:
		return types.Ok(types.NewBool(looseEquals(left.Val, right.Val)))
	case parser.TOKEN_BANG_EQ:
		return types.Ok(types.NewBool(!looseEquals(left.Val, right.Val)))
	default:
		return failAt(e.Operator, "invalid binary operator %q", e.Operator.Raw)
	}
}

// evalUnary evaluates the operand, then applies - or !
func (i *Interpreter) evalUnary(e *parser.UnaryExpr) types.Result {
	right := i.eval(e.Right)
	if !right.IsNormal() {
		return right
	}

	switch e.Operator.Type {
	case parser.TOKEN_MINUS:
		return evalUnaryMinus(e.Operator, right.Val)
	case parser.TOKEN_BANG:
		return evalUnaryNot(right.Val)
	default:
		return failAt(e.Operator, "invalid unary operator %q", e.Operator.Raw)
	}
}

// evalCall evaluates the callee and arguments left to right, checks the
// callee is callable and (for functions) that the argument count equals
// its arity exactly, then dispatches
func (i *Interpreter) evalCall(e *parser.CallExpr) types.Result {
	callee := i.eval(e.Callee)
	if !callee.IsNormal() {
		return callee
	}

	args := make([]types.Value, 0, len(e.Args))
	for _, argExpr := range e.Args {
		arg := i.eval(argExpr)
		if !arg.IsNormal() {
			return arg
		}
		args = append(args, arg.Val)
	}

	callable, ok := callee.Val.(Callable)
	if !ok {
		return failAt(e.Paren, "can only call functions and classes, not %s", callee.Val.Type())
	}

	// Classes ignore their arguments: no constructor hook is wired up
	if _, isClass := callable.(*ClassValue); !isClass {
		if len(args) != callable.Arity() {
			return failAt(e.Paren, "expected %d arguments but got %d", callable.Arity(), len(args))
		}
	}

	name := callableName(callable)
	trace.Call(name, args)
	result := callable.Call(i, args)
	trace.Return(name, result)
	return result
}

// callableName names a callable for tracing
func callableName(c Callable) string {
	switch v := c.(type) {
	case *FunctionValue:
		return v.Decl.Name.Raw
	case *NativeFunction:
		return v.Name
	case *ClassValue:
		return v.Name
	default:
		return c.String()
	}
}

// evalGet reads a field off an instance. Reading an undeclared field is
// a runtime error.
func (i *Interpreter) evalGet(e *parser.GetExpr) types.Result {
	object := i.eval(e.Object)
	if !object.IsNormal() {
		return object
	}

	inst, ok := object.Val.(*InstanceValue)
	if !ok {
		return failAt(e.Name, "only instances have properties, not %s", object.Val.Type())
	}
	val, ok := inst.Fields[e.Name.Raw]
	if !ok {
		return failAt(e.Name, "undefined property %q", e.Name.Raw)
	}
	return types.Ok(val)
}

// evalSet writes a field on an instance, creating it if absent
func (i *Interpreter) evalSet(e *parser.SetExpr) types.Result {
	object := i.eval(e.Object)
	if !object.IsNormal() {
		return object
	}

	inst, ok := object.Val.(*InstanceValue)
	if !ok {
		return failAt(e.Name, "only instances have properties, not %s", object.Val.Type())
	}

	value := i.eval(e.Value)
	if !value.IsNormal() {
		return value
	}
	inst.Fields[e.Name.Raw] = value.Val
	return types.Ok(value.Val)
}
