package types

import "fmt"

// RuntimeError is a fatal runtime error with the source position of the
// token that caused it. The first one reported aborts the current run.
type RuntimeError struct {
	Message string
	Lexeme  string
	Line    int
	Column  int
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s, caused by %q at line %d column %d", e.Message, e.Lexeme, e.Line, e.Column)
}
