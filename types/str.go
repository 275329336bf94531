package types

// StrValue represents a Fern string
type StrValue struct {
	val string
}

// NewStr creates a new string value
func NewStr(s string) StrValue {
	return StrValue{val: s}
}

// Type returns the type code for strings
func (s StrValue) Type() TypeCode {
	return TYPE_STRING
}

// String returns the string contents verbatim (no quoting)
func (s StrValue) String() string {
	return s.val
}

// Equal checks strict same-kind equality by content
func (s StrValue) Equal(other Value) bool {
	o, ok := other.(StrValue)
	return ok && s.val == o.val
}

// Truthy returns true: every string is truthy, including ""
func (s StrValue) Truthy() bool {
	return true
}

// Value returns the internal string value
func (s StrValue) Value() string {
	return s.val
}
