package interp

import (
	"strconv"

	"fern/parser"
	"fern/types"
)

// ============================================================================
// UNARY OPERATORS
// ============================================================================

// evalUnaryMinus implements unary negation: -x
// The operand must be a number.
func evalUnaryMinus(op parser.Token, operand types.Value) types.Result {
	if num, ok := operand.(types.NumberValue); ok {
		return types.Ok(types.NewNumber(-num.Val))
	}
	return failAt(op, "unary operator '-' not supported on %s", operand.Type())
}

// evalUnaryNot implements logical NOT: !x
// Applies truthiness coercion, then negates.
func evalUnaryNot(operand types.Value) types.Result {
	return types.Ok(types.NewBool(!operand.Truthy()))
}

// ============================================================================
// ARITHMETIC OPERATORS
// ============================================================================

// evalAdd implements addition: left + right
// Numbers add; if either operand is a string, the other operand's
// textual rendering is concatenated onto it.
func evalAdd(op parser.Token, left, right types.Value) types.Result {
	if l, ok := left.(types.NumberValue); ok {
		if r, ok := right.(types.NumberValue); ok {
			return types.Ok(types.NewNumber(l.Val + r.Val))
		}
	}
	if _, ok := left.(types.StrValue); ok {
		return types.Ok(types.NewStr(left.String() + right.String()))
	}
	if _, ok := right.(types.StrValue); ok {
		return types.Ok(types.NewStr(left.String() + right.String()))
	}
	return failAt(op, "invalid operands %s, %s for +", left.Type(), right.Type())
}

// evalSubtract implements subtraction: left - right
func evalSubtract(op parser.Token, left, right types.Value) types.Result {
	l, lok := left.(types.NumberValue)
	r, rok := right.(types.NumberValue)
	if !lok || !rok {
		return failAt(op, "invalid operands %s, %s for -", left.Type(), right.Type())
	}
	return types.Ok(types.NewNumber(l.Val - r.Val))
}

// evalMultiply implements multiplication: left * right
func evalMultiply(op parser.Token, left, right types.Value) types.Result {
	l, lok := left.(types.NumberValue)
	r, rok := right.(types.NumberValue)
	if !lok || !rok {
		return failAt(op, "invalid operands %s, %s for *", left.Type(), right.Type())
	}
	return types.Ok(types.NewNumber(l.Val * r.Val))
}

// evalDivide implements division: left / right
// Division by the numeric value 0 is a runtime error, not infinity.
func evalDivide(op parser.Token, left, right types.Value) types.Result {
	l, lok := left.(types.NumberValue)
	r, rok := right.(types.NumberValue)
	if !lok || !rok {
		return failAt(op, "invalid operands %s, %s for /", left.Type(), right.Type())
	}
	if r.Val == 0 {
		return failAt(op, "cannot divide by 0 in %s / 0", l.String())
	}
	return types.Ok(types.NewNumber(l.Val / r.Val))
}

// ============================================================================
// EQUALITY AND ORDERING
// ============================================================================

// looseEquals implements the language's == relation. It is deliberately
// coercive and asymmetric across kinds:
//   - numbers compare numerically
//   - a number equals a string when the string parses as that number
//   - strings compare by content, booleans by value
//   - false equals nil
//   - functions and classes are never equal to anything
//   - instances compare by class and field map
func looseEquals(left, right types.Value) bool {
	switch l := left.(type) {
	case types.NumberValue:
		switch r := right.(type) {
		case types.NumberValue:
			return l.Val == r.Val
		case types.StrValue:
			num, ok := parseNumber(r.Value())
			return ok && l.Val == num
		}
		return false
	case types.StrValue:
		switch r := right.(type) {
		case types.StrValue:
			return l.Value() == r.Value()
		case types.NumberValue:
			num, ok := parseNumber(l.Value())
			return ok && num == r.Val
		}
		return false
	case types.BoolValue:
		switch r := right.(type) {
		case types.BoolValue:
			return l.Val == r.Val
		case types.NilValue:
			return !l.Val
		}
		return false
	case types.NilValue:
		switch r := right.(type) {
		case types.NilValue:
			return true
		case types.BoolValue:
			return !r.Val
		}
		return false
	case *InstanceValue:
		return l.Equal(right)
	}
	// Functions and classes fall through: never equal
	return false
}

// evalComparison implements the ordering operators > >= < <=
// using the same cross-type coercions as equality
func evalComparison(op parser.Token, left, right types.Value) types.Result {
	cmp, ok := compareValues(left, right)
	if !ok {
		return failAt(op, "invalid operands %s, %s for %s", left.Type(), right.Type(), op.Raw)
	}
	switch op.Type {
	case parser.TOKEN_GT:
		return types.Ok(types.NewBool(cmp > 0))
	case parser.TOKEN_GE:
		return types.Ok(types.NewBool(cmp >= 0))
	case parser.TOKEN_LT:
		return types.Ok(types.NewBool(cmp < 0))
	case parser.TOKEN_LE:
		return types.Ok(types.NewBool(cmp <= 0))
	}
	return failAt(op, "invalid comparison operator %q", op.Raw)
}

// compareValues orders two values: -1, 0, or 1. The second return is
// false when the pair has no defined ordering.
func compareValues(left, right types.Value) (int, bool) {
	switch l := left.(type) {
	case types.NumberValue:
		switch r := right.(type) {
		case types.NumberValue:
			return compareFloats(l.Val, r.Val), true
		case types.StrValue:
			if num, ok := parseNumber(r.Value()); ok {
				return compareFloats(l.Val, num), true
			}
		}
	case types.StrValue:
		switch r := right.(type) {
		case types.StrValue:
			switch {
			case l.Value() < r.Value():
				return -1, true
			case l.Value() > r.Value():
				return 1, true
			}
			return 0, true
		case types.NumberValue:
			if num, ok := parseNumber(l.Value()); ok {
				return compareFloats(num, r.Val), true
			}
		}
	case types.BoolValue:
		if r, ok := right.(types.BoolValue); ok {
			return compareBools(l.Val, r.Val), true
		}
		if _, ok := right.(types.NilValue); ok {
			// nil orders like false
			return compareBools(l.Val, false), true
		}
	case types.NilValue:
		if r, ok := right.(types.BoolValue); ok {
			return compareBools(false, r.Val), true
		}
		if _, ok := right.(types.NilValue); ok {
			return 0, true
		}
	}
	return 0, false
}

func compareFloats(a, b float32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

// parseNumber parses a string as a 32-bit float for coercive
// equality/ordering against numbers
func parseNumber(s string) (float32, bool) {
	val, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return float32(val), true
}

// failAt builds a runtime error Result positioned at a token
func failAt(tok parser.Token, format string, args ...interface{}) types.Result {
	return types.Failf(tok.Raw, tok.Position.Line, tok.Position.Column, format, args...)
}
