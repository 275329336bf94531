package types

import "strconv"

// NumberValue represents a Fern number (32-bit float)
type NumberValue struct {
	Val float32
}

// NewNumber creates a new NumberValue
func NewNumber(val float32) NumberValue {
	return NumberValue{Val: val}
}

// Type returns the type code for numbers
func (n NumberValue) Type() TypeCode {
	return TYPE_NUMBER
}

// String returns the default decimal rendering: whole numbers print
// without a decimal point (10, not 10.0)
func (n NumberValue) String() string {
	return strconv.FormatFloat(float64(n.Val), 'f', -1, 32)
}

// Equal checks strict same-kind equality
func (n NumberValue) Equal(other Value) bool {
	o, ok := other.(NumberValue)
	return ok && n.Val == o.Val
}

// Truthy returns true: every number is truthy, including 0
func (n NumberValue) Truthy() bool {
	return true
}
