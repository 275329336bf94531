package interp

import (
	"fmt"

	"fern/parser"
)

// ResolveError is a semantic error found before execution: a bad
// declaration or a misplaced return/break
type ResolveError struct {
	Token   parser.Token
	Message string
}

// Error renders the error with the offending token and its position
func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolver: %s, caused by %s %q at line %d column %d",
		e.Message, e.Token.Type, e.Token.Raw, e.Token.Position.Line, e.Token.Position.Column)
}
