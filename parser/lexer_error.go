package parser

import "fmt"

// LexError is a lexical error with its source position
type LexError struct {
	Position Position
	Message  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer: line %d column %d: %s", e.Position.Line, e.Position.Column, e.Message)
}

// error records a lexical error at the given position
func (l *Lexer) error(pos Position, format string, args ...interface{}) {
	l.errors = append(l.errors, &LexError{
		Position: pos,
		Message:  fmt.Sprintf(format, args...),
	})
}
