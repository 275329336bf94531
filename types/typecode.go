package types

// TypeCode identifies a runtime value kind
type TypeCode int

const (
	TYPE_NUMBER TypeCode = iota
	TYPE_STRING
	TYPE_BOOL
	TYPE_NIL
	TYPE_FUNCTION
	TYPE_CLASS
	TYPE_INSTANCE
)

// String returns the string representation of the type code
func (t TypeCode) String() string {
	switch t {
	case TYPE_NUMBER:
		return "NUMBER"
	case TYPE_STRING:
		return "STRING"
	case TYPE_BOOL:
		return "BOOL"
	case TYPE_NIL:
		return "NIL"
	case TYPE_FUNCTION:
		return "FUNCTION"
	case TYPE_CLASS:
		return "CLASS"
	case TYPE_INSTANCE:
		return "INSTANCE"
	default:
		return "UNKNOWN"
	}
}
