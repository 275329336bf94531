package parser

// TokenType represents different types of lexical tokens
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota

	// Punctuation
	TOKEN_LPAREN // (
	TOKEN_RPAREN // )
	TOKEN_LBRACE // {
	TOKEN_RBRACE // }
	TOKEN_COMMA  // ,
	TOKEN_DOT    // .
	TOKEN_SEMICOLON

	// Operators
	TOKEN_MINUS // -
	TOKEN_PLUS  // +
	TOKEN_SLASH // /
	TOKEN_STAR  // *
	TOKEN_BANG  // !
	TOKEN_BANG_EQ
	TOKEN_ASSIGN // =
	TOKEN_EQ     // ==
	TOKEN_GT     // >
	TOKEN_GE     // >=
	TOKEN_LT     // <
	TOKEN_LE     // <=

	// Literals
	TOKEN_IDENTIFIER
	TOKEN_STRING
	TOKEN_NUMBER

	// Keywords
	TOKEN_AND
	TOKEN_CLASS
	TOKEN_ELSE
	TOKEN_FALSE
	TOKEN_FUNCT
	TOKEN_FINALLY
	TOKEN_FOR
	TOKEN_IF
	TOKEN_NIL
	TOKEN_OR
	TOKEN_PRINT
	TOKEN_RETURN
	TOKEN_BREAK
	TOKEN_SUPER
	TOKEN_THIS
	TOKEN_TRUE
	TOKEN_VAR
	TOKEN_WHILE
)

// Position represents a position in the source code
type Position struct {
	Line   int
	Column int
}

// Token represents a lexical token
type Token struct {
	Type     TokenType
	Raw      string
	Position Position
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_LPAREN:
		return "LPAREN"
	case TOKEN_RPAREN:
		return "RPAREN"
	case TOKEN_LBRACE:
		return "LBRACE"
	case TOKEN_RBRACE:
		return "RBRACE"
	case TOKEN_COMMA:
		return "COMMA"
	case TOKEN_DOT:
		return "DOT"
	case TOKEN_SEMICOLON:
		return "SEMICOLON"
	case TOKEN_MINUS:
		return "MINUS"
	case TOKEN_PLUS:
		return "PLUS"
	case TOKEN_SLASH:
		return "SLASH"
	case TOKEN_STAR:
		return "STAR"
	case TOKEN_BANG:
		return "BANG"
	case TOKEN_BANG_EQ:
		return "BANG_EQ"
	case TOKEN_ASSIGN:
		return "ASSIGN"
	case TOKEN_EQ:
		return "EQ"
	case TOKEN_GT:
		return "GT"
	case TOKEN_GE:
		return "GE"
	case TOKEN_LT:
		return "LT"
	case TOKEN_LE:
		return "LE"
	case TOKEN_IDENTIFIER:
		return "IDENTIFIER"
	case TOKEN_STRING:
		return "STRING"
	case TOKEN_NUMBER:
		return "NUMBER"
	case TOKEN_AND:
		return "AND"
	case TOKEN_CLASS:
		return "CLASS"
	case TOKEN_ELSE:
		return "ELSE"
	case TOKEN_FALSE:
		return "FALSE"
	case TOKEN_FUNCT:
		return "FUNCT"
	case TOKEN_FINALLY:
		return "FINALLY"
	case TOKEN_FOR:
		return "FOR"
	case TOKEN_IF:
		return "IF"
	case TOKEN_NIL:
		return "NIL"
	case TOKEN_OR:
		return "OR"
	case TOKEN_PRINT:
		return "PRINT"
	case TOKEN_RETURN:
		return "RETURN"
	case TOKEN_BREAK:
		return "BREAK"
	case TOKEN_SUPER:
		return "SUPER"
	case TOKEN_THIS:
		return "THIS"
	case TOKEN_TRUE:
		return "TRUE"
	case TOKEN_VAR:
		return "VAR"
	case TOKEN_WHILE:
		return "WHILE"
	default:
		return "UNKNOWN"
	}
}

// keywords maps keyword strings to their token types
var keywords = map[string]TokenType{
	"and":     TOKEN_AND,
	"class":   TOKEN_CLASS,
	"else":    TOKEN_ELSE,
	"false":   TOKEN_FALSE,
	"funct":   TOKEN_FUNCT,
	"finally": TOKEN_FINALLY,
	"for":     TOKEN_FOR,
	"if":      TOKEN_IF,
	"nil":     TOKEN_NIL,
	"or":      TOKEN_OR,
	"print":   TOKEN_PRINT,
	"return":  TOKEN_RETURN,
	"break":   TOKEN_BREAK,
	"super":   TOKEN_SUPER,
	"this":    TOKEN_THIS,
	"true":    TOKEN_TRUE,
	"var":     TOKEN_VAR,
	"while":   TOKEN_WHILE,
}

// LookupKeyword checks if an identifier is a keyword
func LookupKeyword(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENTIFIER
}
