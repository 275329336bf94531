package parser

// Lexer tokenizes Fern source code
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int
	errors       []*LexError
}

// NewLexer creates a new Lexer instance
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// Errors returns the lexical errors collected so far
func (l *Lexer) Errors() []*LexError {
	return l.errors
}

// Tokens scans the whole input and returns the token stream, always
// terminated by an EOF token, together with any lexical errors.
func (l *Lexer) Tokens() ([]Token, []*LexError) {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			break
		}
	}
	return tokens, l.errors
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NUL
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipWhitespace skips over whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// skipLineComment skips a // comment to end of line
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// skipBlockComment skips a /* ... */ comment; an unclosed block
// comment simply runs to end of input
func (l *Lexer) skipBlockComment() {
	l.readChar() // skip '*'
	for l.ch != 0 {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return
		}
		l.readChar()
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()
		if l.ch == '/' && l.peekChar() == '/' {
			l.skipLineComment()
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar()
			l.skipBlockComment()
			continue
		}
		break
	}

	pos := Position{Line: l.line, Column: l.column}

	switch l.ch {
	case 0:
		return Token{Type: TOKEN_EOF, Raw: "", Position: pos}
	case '(':
		l.readChar()
		return Token{Type: TOKEN_LPAREN, Raw: "(", Position: pos}
	case ')':
		l.readChar()
		return Token{Type: TOKEN_RPAREN, Raw: ")", Position: pos}
	case '{':
		l.readChar()
		return Token{Type: TOKEN_LBRACE, Raw: "{", Position: pos}
	case '}':
		l.readChar()
		return Token{Type: TOKEN_RBRACE, Raw: "}", Position: pos}
	case ',':
		l.readChar()
		return Token{Type: TOKEN_COMMA, Raw: ",", Position: pos}
	case '.':
		l.readChar()
		return Token{Type: TOKEN_DOT, Raw: ".", Position: pos}
	case ';':
		l.readChar()
		return Token{Type: TOKEN_SEMICOLON, Raw: ";", Position: pos}
	case '-':
		l.readChar()
		return Token{Type: TOKEN_MINUS, Raw: "-", Position: pos}
	case '+':
		l.readChar()
		return Token{Type: TOKEN_PLUS, Raw: "+", Position: pos}
	case '*':
		l.readChar()
		return Token{Type: TOKEN_STAR, Raw: "*", Position: pos}
	case '/':
		l.readChar()
		return Token{Type: TOKEN_SLASH, Raw: "/", Position: pos}
	case '!':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return Token{Type: TOKEN_BANG_EQ, Raw: "!=", Position: pos}
		}
		return Token{Type: TOKEN_BANG, Raw: "!", Position: pos}
	case '=':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return Token{Type: TOKEN_EQ, Raw: "==", Position: pos}
		}
		return Token{Type: TOKEN_ASSIGN, Raw: "=", Position: pos}
	case '>':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return Token{Type: TOKEN_GE, Raw: ">=", Position: pos}
		}
		return Token{Type: TOKEN_GT, Raw: ">", Position: pos}
	case '<':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return Token{Type: TOKEN_LE, Raw: "<=", Position: pos}
		}
		return Token{Type: TOKEN_LT, Raw: "<", Position: pos}
	case '"':
		return l.readString(pos)
	}

	if isDigit(l.ch) {
		return l.readNumber(pos)
	}
	if isLetter(l.ch) {
		return l.readIdentifier(pos)
	}

	ch := l.ch
	l.readChar()
	l.error(pos, "unrecognised symbol %q", string(ch))
	// Resynchronize on the next token
	return l.NextToken()
}

// readIdentifier reads an identifier or keyword token
func (l *Lexer) readIdentifier(pos Position) Token {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	raw := l.input[start:l.position]
	return Token{Type: LookupKeyword(raw), Raw: raw, Position: pos}
}

// isLetter returns true if the character is a letter or underscore
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit returns true if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
