package parser

import (
	"strconv"

	"fern/types"
)

// maxArity caps parameter and argument list lengths
const maxArity = 255

// Parser parses a token sequence into a statement list. It never fails
// outright: syntax errors are collected and panic-mode recovery resumes
// at the next statement boundary, so one Parse surfaces every error.
type Parser struct {
	tokens []Token
	pos    int
	errors []*ParseError
}

// NewParser creates a Parser over a token stream. The stream must be
// terminated by an EOF token, as produced by Lexer.Tokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses the whole token stream and returns the statements plus
// every syntax error found
func (p *Parser) Parse() ([]Stmt, []*ParseError) {
	var statements []Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}
	return statements, p.errors
}

// current returns the token under examination
func (p *Parser) current() Token {
	return p.tokens[p.pos]
}

// previous returns the most recently consumed token
func (p *Parser) previous() Token {
	return p.tokens[p.pos-1]
}

// isAtEnd reports whether the parser has reached the EOF token
func (p *Parser) isAtEnd() bool {
	return p.current().Type == TOKEN_EOF
}

// advance consumes and returns the current token
func (p *Parser) advance() Token {
	tok := p.current()
	if !p.isAtEnd() {
		p.pos++
	}
	return tok
}

// check reports whether the current token has the given type
func (p *Parser) check(t TokenType) bool {
	return p.current().Type == t
}

// match consumes the current token if it has one of the given types
func (p *Parser) match(ts ...TokenType) bool {
	for _, t := range ts {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// require consumes the current token if it has the required type,
// otherwise records and returns a syntax error
func (p *Parser) require(t TokenType, message string) (Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return Token{}, p.errorAt(p.current(), message)
}

// ParseExpression parses a single expression (used by tests and the
// one-shot eval driver)
func (p *Parser) ParseExpression() (Expr, []*ParseError) {
	expr, err := p.expression()
	if err != nil {
		return nil, p.errors
	}
	return expr, p.errors
}

// expression parses at the lowest precedence tier: assignment
func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

// assignment parses right-associative assignment. The left-hand side is
// parsed as an ordinary expression first; it is a valid target only if
// it turned out to be a variable reference or a property access.
func (p *Parser) assignment() (Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(TOKEN_ASSIGN) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		switch target := expr.(type) {
		case *VariableExpr:
			return &AssignExpr{Name: target.Name, Value: value}, nil
		case *GetExpr:
			return &SetExpr{Object: target.Object, Name: target.Name, Value: value}, nil
		}

		// Report but keep going: the surrounding statement is still parseable
		p.errorAt(equals, "invalid assignment target")
	}

	return expr, nil
}

// or parses logical-or, folding left-associatively
func (p *Parser) or() (Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(TOKEN_OR) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

// and parses logical-and
func (p *Parser) and() (Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(TOKEN_AND) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

// equality parses == and !=
func (p *Parser) equality() (Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(TOKEN_EQ, TOKEN_BANG_EQ) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

// comparison parses > >= < <=
func (p *Parser) comparison() (Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(TOKEN_GT, TOKEN_GE, TOKEN_LT, TOKEN_LE) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

// term parses + and -
func (p *Parser) term() (Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(TOKEN_PLUS, TOKEN_MINUS) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

// factor parses * and /
func (p *Parser) factor() (Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(TOKEN_STAR, TOKEN_SLASH) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

// unary parses ! and unary -
func (p *Parser) unary() (Expr, error) {
	if p.match(TOKEN_BANG, TOKEN_MINUS) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Operator: op, Right: right}, nil
	}
	return p.call()
}

// call parses the call/property-access tier: after a primary, greedily
// consume call argument lists and '.' property accesses. The greedy loop
// is what allows chains like a.b.c() and f()().
func (p *Parser) call() (Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		if p.match(TOKEN_LPAREN) {
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		} else if p.match(TOKEN_DOT) {
			name, err := p.require(TOKEN_IDENTIFIER, "expect property name after '.'")
			if err != nil {
				return nil, err
			}
			expr = &GetExpr{Object: expr, Name: name}
		} else {
			break
		}
	}

	return expr, nil
}

// finishCall parses the argument list after the opening parenthesis
func (p *Parser) finishCall(callee Expr) (Expr, error) {
	var args []Expr
	if !p.check(TOKEN_RPAREN) {
		for {
			if len(args) >= maxArity {
				// Report but keep parsing the argument
				p.errorAt(p.current(), "can't have more than 255 arguments")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(TOKEN_COMMA) {
				break
			}
		}
	}
	paren, err := p.require(TOKEN_RPAREN, "expect ')' after arguments")
	if err != nil {
		return nil, err
	}
	return &CallExpr{Callee: callee, Paren: paren, Args: args}, nil
}

// primary parses literals, variables, and grouping
func (p *Parser) primary() (Expr, error) {
	tok := p.advance()
	switch tok.Type {
	case TOKEN_FALSE:
		return &LiteralExpr{Pos: tok.Position, Value: types.NewBool(false)}, nil
	case TOKEN_TRUE:
		return &LiteralExpr{Pos: tok.Position, Value: types.NewBool(true)}, nil
	case TOKEN_NIL:
		return &LiteralExpr{Pos: tok.Position, Value: types.NewNil()}, nil
	case TOKEN_NUMBER:
		val, err := strconv.ParseFloat(tok.Raw, 32)
		if err != nil {
			return nil, p.errorAt(tok, "invalid number literal")
		}
		return &LiteralExpr{Pos: tok.Position, Value: types.NewNumber(float32(val))}, nil
	case TOKEN_STRING:
		return &LiteralExpr{Pos: tok.Position, Value: types.NewStr(tok.Raw)}, nil
	case TOKEN_IDENTIFIER:
		return &VariableExpr{Name: tok}, nil
	case TOKEN_LPAREN:
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.require(TOKEN_RPAREN, "expect ')'"); err != nil {
			return nil, err
		}
		return &GroupingExpr{Pos: tok.Position, Expr: expr}, nil
	default:
		return nil, p.errorAt(tok, "expected expression")
	}
}
