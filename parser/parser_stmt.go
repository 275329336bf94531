package parser

import (
	"fmt"

	"fern/types"
)

// declaration parses a declaration or falls through to a statement
func (p *Parser) declaration() (Stmt, error) {
	switch {
	case p.match(TOKEN_VAR):
		return p.varDeclaration()
	case p.match(TOKEN_FUNCT):
		return p.function("funct")
	case p.match(TOKEN_CLASS):
		return p.classDeclaration()
	default:
		return p.statement()
	}
}

// varDeclaration parses: var name ( = initializer )? ;
func (p *Parser) varDeclaration() (Stmt, error) {
	name, err := p.require(TOKEN_IDENTIFIER, "expected variable name")
	if err != nil {
		return nil, err
	}

	var initializer Expr
	if p.match(TOKEN_ASSIGN) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.require(TOKEN_SEMICOLON, "expect ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name, Initializer: initializer}, nil
}

// function parses a funct declaration or class method: the name, a
// parenthesized parameter list capped at 255 names, and a brace body
func (p *Parser) function(kind string) (*FunctionStmt, error) {
	name, err := p.require(TOKEN_IDENTIFIER, fmt.Sprintf("expected %s name", kind))
	if err != nil {
		return nil, err
	}
	if _, err := p.require(TOKEN_LPAREN, fmt.Sprintf("expect '(' after %s name", kind)); err != nil {
		return nil, err
	}

	var params []Token
	if !p.check(TOKEN_RPAREN) {
		for {
			if len(params) >= maxArity {
				p.errorAt(p.current(), "can't have more than 255 parameters")
			}
			param, err := p.require(TOKEN_IDENTIFIER, "expected parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(TOKEN_COMMA) {
				break
			}
		}
	}
	if _, err := p.require(TOKEN_RPAREN, "expect ')' after parameters"); err != nil {
		return nil, err
	}

	if _, err := p.require(TOKEN_LBRACE, fmt.Sprintf("expect '{' before %s body", kind)); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &FunctionStmt{Name: name, Params: params, Body: body}, nil
}

// classDeclaration parses: class Name { method* }
// Method declarations reuse the funct grammar minus the keyword.
func (p *Parser) classDeclaration() (Stmt, error) {
	name, err := p.require(TOKEN_IDENTIFIER, "expected class name")
	if err != nil {
		return nil, err
	}
	if _, err := p.require(TOKEN_LBRACE, "expect '{' before class body"); err != nil {
		return nil, err
	}

	var methods []*FunctionStmt
	for !p.check(TOKEN_RBRACE) && !p.isAtEnd() {
		method, err := p.function("method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}

	if _, err := p.require(TOKEN_RBRACE, "expect '}' after class body"); err != nil {
		return nil, err
	}
	return &ClassStmt{Name: name, Methods: methods}, nil
}

// statement parses a non-declaration statement
func (p *Parser) statement() (Stmt, error) {
	switch {
	case p.match(TOKEN_IF):
		return p.ifStatement()
	case p.match(TOKEN_WHILE):
		return p.whileStatement()
	case p.match(TOKEN_FOR):
		return p.forStatement()
	case p.match(TOKEN_PRINT):
		return p.printStatement()
	case p.match(TOKEN_RETURN):
		return p.returnStatement()
	case p.match(TOKEN_BREAK):
		return p.breakStatement()
	case p.match(TOKEN_LBRACE):
		pos := p.previous().Position
		statements, err := p.block()
		if err != nil {
			return nil, err
		}
		return &BlockStmt{Pos: pos, Statements: statements}, nil
	default:
		return p.expressionStatement()
	}
}

// ifStatement parses: if ( condition ) statement ( else statement )?
func (p *Parser) ifStatement() (Stmt, error) {
	pos := p.previous().Position
	if _, err := p.require(TOKEN_LPAREN, "expect '(' to open 'if' condition"); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.require(TOKEN_RPAREN, "expect ')' to close 'if' condition"); err != nil {
		return nil, err
	}

	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch Stmt
	if p.match(TOKEN_ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &IfStmt{Pos: pos, Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}, nil
}

// whileStatement parses: while ( condition ) statement ( finally statement )?
// The finally clause runs exactly once after the loop exits.
func (p *Parser) whileStatement() (Stmt, error) {
	pos := p.previous().Position
	if _, err := p.require(TOKEN_LPAREN, "expect '(' to open 'while' condition"); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.require(TOKEN_RPAREN, "expect ')' to close 'while' condition"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	var finally Stmt
	if p.match(TOKEN_FINALLY) {
		finally, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &WhileStmt{Pos: pos, Condition: condition, Body: body, Finally: finally}, nil
}

// forStatement parses a for loop and desugars it at parse time into an
// equivalent while: the increment is appended inside the loop body via a
// wrapping block, a missing condition defaults to true, and an
// initializer wraps the whole construct in an outer block so its
// variable is scoped to the loop only
func (p *Parser) forStatement() (Stmt, error) {
	pos := p.previous().Position
	if _, err := p.require(TOKEN_LPAREN, "expect '(' to open 'for' clause"); err != nil {
		return nil, err
	}

	var initializer Stmt
	var err error
	switch {
	case p.match(TOKEN_SEMICOLON):
		initializer = nil
	case p.match(TOKEN_VAR):
		initializer, err = p.varDeclaration()
		if err != nil {
			return nil, err
		}
	default:
		initializer, err = p.expressionStatement()
		if err != nil {
			return nil, err
		}
	}

	var condition Expr
	if !p.check(TOKEN_SEMICOLON) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.require(TOKEN_SEMICOLON, "expect ';' after 'for' loop condition"); err != nil {
		return nil, err
	}

	var increment Expr
	if !p.check(TOKEN_RPAREN) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.require(TOKEN_RPAREN, "expect ')' to close 'for' clause"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &BlockStmt{Pos: pos, Statements: []Stmt{
			body,
			&ExprStmt{Pos: increment.Position(), Expr: increment},
		}}
	}

	if condition == nil {
		condition = &LiteralExpr{Pos: pos, Value: types.NewBool(true)}
	}
	body = &WhileStmt{Pos: pos, Condition: condition, Body: body}

	if initializer != nil {
		body = &BlockStmt{Pos: pos, Statements: []Stmt{initializer, body}}
	}

	return body, nil
}

// printStatement parses: print expression ;
func (p *Parser) printStatement() (Stmt, error) {
	pos := p.previous().Position
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.require(TOKEN_SEMICOLON, "expect ';' after value"); err != nil {
		return nil, err
	}
	return &PrintStmt{Pos: pos, Expr: value}, nil
}

// returnStatement parses: return expression? ;
func (p *Parser) returnStatement() (Stmt, error) {
	keyword := p.previous()
	var value Expr
	var err error
	if !p.check(TOKEN_SEMICOLON) {
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.require(TOKEN_SEMICOLON, "expect ';' after return value"); err != nil {
		return nil, err
	}
	return &ReturnStmt{Keyword: keyword, Value: value}, nil
}

// breakStatement parses: break ;
func (p *Parser) breakStatement() (Stmt, error) {
	keyword := p.previous()
	if _, err := p.require(TOKEN_SEMICOLON, "expect ';' after 'break'"); err != nil {
		return nil, err
	}
	return &BreakStmt{Keyword: keyword}, nil
}

// block parses statements until the closing brace. The opening brace
// has already been consumed.
func (p *Parser) block() ([]Stmt, error) {
	var statements []Stmt
	for !p.check(TOKEN_RBRACE) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.require(TOKEN_RBRACE, "expect '}' to close a block"); err != nil {
		return nil, err
	}
	return statements, nil
}

// expressionStatement parses a bare expression followed by ';'
func (p *Parser) expressionStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.require(TOKEN_SEMICOLON, "expect ';' after expression"); err != nil {
		return nil, err
	}
	return &ExprStmt{Pos: expr.Position(), Expr: expr}, nil
}
