package parser

import "fern/types"

// Node is the base interface for all AST nodes
type Node interface {
	Position() Position
}

// Expr represents an expression node
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node
type Stmt interface {
	Node
	stmtNode()
}

// LiteralExpr wraps an already-materialized runtime value
type LiteralExpr struct {
	Pos   Position
	Value types.Value
}

func (e *LiteralExpr) Position() Position { return e.Pos }
func (e *LiteralExpr) exprNode()          {}

// VariableExpr represents a variable reference
type VariableExpr struct {
	Name Token
}

func (e *VariableExpr) Position() Position { return e.Name.Position }
func (e *VariableExpr) exprNode()          {}

// AssignExpr represents assignment to a variable: name = expr
type AssignExpr struct {
	Name  Token
	Value Expr
}

func (e *AssignExpr) Position() Position { return e.Name.Position }
func (e *AssignExpr) exprNode()          {}

// LogicalExpr represents short-circuiting 'and'/'or'
type LogicalExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func (e *LogicalExpr) Position() Position { return e.Operator.Position }
func (e *LogicalExpr) exprNode()          {}

// BinaryExpr represents a binary operation
type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func (e *BinaryExpr) Position() Position { return e.Operator.Position }
func (e *BinaryExpr) exprNode()          {}

// UnaryExpr represents a unary operation: -x or !x
type UnaryExpr struct {
	Operator Token
	Right    Expr
}

func (e *UnaryExpr) Position() Position { return e.Operator.Position }
func (e *UnaryExpr) exprNode()          {}

// CallExpr represents a call: callee(args)
// Paren is the closing parenthesis, kept for error positions
type CallExpr struct {
	Callee Expr
	Paren  Token
	Args   []Expr
}

func (e *CallExpr) Position() Position { return e.Paren.Position }
func (e *CallExpr) exprNode()          {}

// GetExpr represents property access: object.name
type GetExpr struct {
	Object Expr
	Name   Token
}

func (e *GetExpr) Position() Position { return e.Name.Position }
func (e *GetExpr) exprNode()          {}

// SetExpr represents property assignment: object.name = value
type SetExpr struct {
	Object Expr
	Name   Token
	Value  Expr
}

func (e *SetExpr) Position() Position { return e.Name.Position }
func (e *SetExpr) exprNode()          {}

// GroupingExpr represents a parenthesized expression
type GroupingExpr struct {
	Pos  Position
	Expr Expr
}

func (e *GroupingExpr) Position() Position { return e.Pos }
func (e *GroupingExpr) exprNode()          {}

// Statement AST nodes

// ExprStmt represents an expression used as a statement
type ExprStmt struct {
	Pos  Position
	Expr Expr
}

func (s *ExprStmt) Position() Position { return s.Pos }
func (s *ExprStmt) stmtNode()          {}

// PrintStmt represents a print statement
type PrintStmt struct {
	Pos  Position
	Expr Expr
}

func (s *PrintStmt) Position() Position { return s.Pos }
func (s *PrintStmt) stmtNode()          {}

// VarStmt represents a variable declaration with optional initializer
type VarStmt struct {
	Name        Token
	Initializer Expr // nil means the variable starts as nil
}

func (s *VarStmt) Position() Position { return s.Name.Position }
func (s *VarStmt) stmtNode()          {}

// BlockStmt represents a brace-delimited block
type BlockStmt struct {
	Pos        Position
	Statements []Stmt
}

func (s *BlockStmt) Position() Position { return s.Pos }
func (s *BlockStmt) stmtNode()          {}

// IfStmt represents if/else
type IfStmt struct {
	Pos        Position
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt // nil if absent
}

func (s *IfStmt) Position() Position { return s.Pos }
func (s *IfStmt) stmtNode()          {}

// WhileStmt represents a while loop with an optional finally clause
// executed once after the loop exits
type WhileStmt struct {
	Pos       Position
	Condition Expr
	Body      Stmt
	Finally   Stmt // nil if absent
}

func (s *WhileStmt) Position() Position { return s.Pos }
func (s *WhileStmt) stmtNode()          {}

// FunctionStmt represents a funct declaration (also used for class methods)
type FunctionStmt struct {
	Name   Token
	Params []Token
	Body   []Stmt
}

func (s *FunctionStmt) Position() Position { return s.Name.Position }
func (s *FunctionStmt) stmtNode()          {}

// ClassStmt represents a class declaration
type ClassStmt struct {
	Name    Token
	Methods []*FunctionStmt
}

func (s *ClassStmt) Position() Position { return s.Name.Position }
func (s *ClassStmt) stmtNode()          {}

// ReturnStmt represents a return statement with optional value
type ReturnStmt struct {
	Keyword Token
	Value   Expr // nil means return nil
}

func (s *ReturnStmt) Position() Position { return s.Keyword.Position }
func (s *ReturnStmt) stmtNode()          {}

// BreakStmt represents a break statement
type BreakStmt struct {
	Keyword Token
}

func (s *BreakStmt) Position() Position { return s.Keyword.Position }
func (s *BreakStmt) stmtNode()          {}
