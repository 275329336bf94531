package types

// Value is the interface all Fern runtime values implement.
// String returns the value's printed rendering: numbers in default
// decimal form, strings verbatim, booleans as true/false, nil as "nil".
type Value interface {
	Type() TypeCode
	String() string
	Equal(Value) bool // strict same-kind equality (the language's coercive == lives in interp)
	Truthy() bool
}
