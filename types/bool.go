package types

// BoolValue represents a Fern boolean
type BoolValue struct {
	Val bool
}

// NewBool creates a new BoolValue
func NewBool(val bool) BoolValue {
	return BoolValue{Val: val}
}

// Type returns the type code for booleans
func (b BoolValue) Type() TypeCode {
	return TYPE_BOOL
}

// String returns the literal representation
func (b BoolValue) String() string {
	if b.Val {
		return "true"
	}
	return "false"
}

// Equal checks strict same-kind equality
func (b BoolValue) Equal(other Value) bool {
	o, ok := other.(BoolValue)
	return ok && b.Val == o.Val
}

// Truthy returns the boolean itself
func (b BoolValue) Truthy() bool {
	return b.Val
}
