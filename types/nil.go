package types

// NilValue represents the Fern nil value
type NilValue struct{}

// NewNil creates the nil value
func NewNil() NilValue {
	return NilValue{}
}

// Type returns the type code for nil
func (n NilValue) Type() TypeCode {
	return TYPE_NIL
}

// String returns "nil"
func (n NilValue) String() string {
	return "nil"
}

// Equal checks strict same-kind equality: nil equals only nil
func (n NilValue) Equal(other Value) bool {
	_, ok := other.(NilValue)
	return ok
}

// Truthy returns false: nil is always falsy
func (n NilValue) Truthy() bool {
	return false
}
