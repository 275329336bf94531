package parser

import "fmt"

// ParseError is a syntax error reported against the offending token.
// The parser collects every ParseError found in one pass; any occurrence
// prevents resolution and execution.
type ParseError struct {
	Token   Token
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parser: %s, caused by %s %q at line %d column %d",
		e.Message, e.Token.Type, e.Token.Raw, e.Token.Position.Line, e.Token.Position.Column)
}

// errorAt records a syntax error against a token and returns it so the
// caller can unwind into panic-mode recovery
func (p *Parser) errorAt(tok Token, message string) *ParseError {
	err := &ParseError{Token: tok, Message: message}
	p.errors = append(p.errors, err)
	return err
}

// synchronize discards tokens until the next statement boundary: just
// past a semicolon, or in front of a keyword that starts a statement.
// This bounds error cascades to one report per genuine mistake.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == TOKEN_SEMICOLON {
			return
		}
		switch p.current().Type {
		case TOKEN_CLASS, TOKEN_FUNCT, TOKEN_VAR, TOKEN_FOR,
			TOKEN_IF, TOKEN_WHILE, TOKEN_PRINT, TOKEN_RETURN:
			return
		}
		p.advance()
	}
}
