package parser

// readString reads a double-quoted string literal. There are no escape
// sequences; the string runs to the next '"'. Reaching end of input first
// is a lexical error.
func (l *Lexer) readString(pos Position) Token {
	l.readChar() // skip opening quote
	start := l.position
	for l.ch != '"' {
		if l.ch == 0 {
			literal := l.input[start:l.position]
			l.error(pos, "invalid string literal %q: expected '\"', found end of file", literal)
			return Token{Type: TOKEN_STRING, Raw: literal, Position: pos}
		}
		l.readChar()
	}
	raw := l.input[start:l.position]
	l.readChar() // skip closing quote
	return Token{Type: TOKEN_STRING, Raw: raw, Position: pos}
}

// readNumber reads a numeric literal: digits with at most one decimal
// point, which must be followed by a digit. A letter immediately after
// the literal is a lexical error.
func (l *Lexer) readNumber(pos Position) Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' {
		if !isDigit(l.peekChar()) {
			l.readChar()
			literal := l.input[start:l.position]
			l.error(pos, "invalid numeric literal %q: invalid symbol '.'", literal)
			return Token{Type: TOKEN_NUMBER, Raw: literal, Position: pos}
		}
		l.readChar() // consume '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if isLetter(l.ch) {
		literal := l.input[start:l.position]
		l.error(pos, "invalid numeric literal %q: invalid symbol %q", literal, string(l.ch))
		// Skip the trailing junk so scanning can continue cleanly
		for isLetter(l.ch) || isDigit(l.ch) {
			l.readChar()
		}
		return Token{Type: TOKEN_NUMBER, Raw: literal, Position: pos}
	}
	return Token{Type: TOKEN_NUMBER, Raw: l.input[start:l.position], Position: pos}
}
