package parser

import (
	"testing"

	"fern/types"
)

// parseExpr parses a single expression, failing the test on any error
func parseExpr(t *testing.T, input string) Expr {
	t.Helper()
	tokens, lexErrs := NewLexer(input).Tokens()
	if len(lexErrs) != 0 {
		t.Fatalf("lexical errors: %v", lexErrs)
	}
	expr, parseErrs := NewParser(tokens).ParseExpression()
	if len(parseErrs) != 0 {
		t.Fatalf("parse errors: %v", parseErrs)
	}
	return expr
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  types.Value
	}{
		{"42", types.NewNumber(42)},
		{"3.5", types.NewNumber(3.5)},
		{`"hi"`, types.NewStr("hi")},
		{"true", types.NewBool(true)},
		{"false", types.NewBool(false)},
		{"nil", types.NewNil()},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr := parseExpr(t, tt.input)
			lit, ok := expr.(*LiteralExpr)
			if !ok {
				t.Fatalf("parsed %T, want *LiteralExpr", expr)
			}
			if !lit.Value.Equal(tt.want) {
				t.Errorf("value = %s, want %s", lit.Value, tt.want)
			}
		})
	}
}

func TestParsePrecedence(t *testing.T) {
	// 1 + 2 * 3 groups as 1 + (2 * 3)
	expr := parseExpr(t, "1 + 2 * 3")
	add, ok := expr.(*BinaryExpr)
	if !ok || add.Operator.Type != TOKEN_PLUS {
		t.Fatalf("root = %T %v, want + BinaryExpr", expr, expr)
	}
	mul, ok := add.Right.(*BinaryExpr)
	if !ok || mul.Operator.Type != TOKEN_STAR {
		t.Fatalf("right = %T, want * BinaryExpr", add.Right)
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	// 10 - 2 - 3 groups as (10 - 2) - 3
	expr := parseExpr(t, "10 - 2 - 3")
	outer, ok := expr.(*BinaryExpr)
	if !ok || outer.Operator.Type != TOKEN_MINUS {
		t.Fatalf("root = %T, want - BinaryExpr", expr)
	}
	inner, ok := outer.Left.(*BinaryExpr)
	if !ok || inner.Operator.Type != TOKEN_MINUS {
		t.Fatalf("left = %T, want - BinaryExpr", outer.Left)
	}
	lit, ok := outer.Right.(*LiteralExpr)
	if !ok || !lit.Value.Equal(types.NewNumber(3)) {
		t.Errorf("right = %v, want 3", outer.Right)
	}
}

func TestParseGroupingBeatsPrecedence(t *testing.T) {
	// (1 + 2) * 3 keeps the addition inside the grouping
	expr := parseExpr(t, "(1 + 2) * 3")
	mul, ok := expr.(*BinaryExpr)
	if !ok || mul.Operator.Type != TOKEN_STAR {
		t.Fatalf("root = %T, want * BinaryExpr", expr)
	}
	if _, ok := mul.Left.(*GroupingExpr); !ok {
		t.Fatalf("left = %T, want *GroupingExpr", mul.Left)
	}
}

func TestParseComparisonAndEquality(t *testing.T) {
	// 1 < 2 == true groups as (1 < 2) == true
	expr := parseExpr(t, "1 < 2 == true")
	eq, ok := expr.(*BinaryExpr)
	if !ok || eq.Operator.Type != TOKEN_EQ {
		t.Fatalf("root = %T, want == BinaryExpr", expr)
	}
	lt, ok := eq.Left.(*BinaryExpr)
	if !ok || lt.Operator.Type != TOKEN_LT {
		t.Fatalf("left = %T, want < BinaryExpr", eq.Left)
	}
}

func TestParseUnaryChain(t *testing.T) {
	expr := parseExpr(t, "!!ready")
	outer, ok := expr.(*UnaryExpr)
	if !ok || outer.Operator.Type != TOKEN_BANG {
		t.Fatalf("root = %T, want ! UnaryExpr", expr)
	}
	inner, ok := outer.Right.(*UnaryExpr)
	if !ok || inner.Operator.Type != TOKEN_BANG {
		t.Fatalf("inner = %T, want ! UnaryExpr", outer.Right)
	}
	if _, ok := inner.Right.(*VariableExpr); !ok {
		t.Fatalf("operand = %T, want *VariableExpr", inner.Right)
	}
}

func TestParseLogicalPrecedence(t *testing.T) {
	// a or b and c groups as a or (b and c)
	expr := parseExpr(t, "a or b and c")
	or, ok := expr.(*LogicalExpr)
	if !ok || or.Operator.Type != TOKEN_OR {
		t.Fatalf("root = %T, want or LogicalExpr", expr)
	}
	and, ok := or.Right.(*LogicalExpr)
	if !ok || and.Operator.Type != TOKEN_AND {
		t.Fatalf("right = %T, want and LogicalExpr", or.Right)
	}
}

func TestParseAssignmentRightAssociative(t *testing.T) {
	// a = b = 3 groups as a = (b = 3)
	expr := parseExpr(t, "a = b = 3")
	outer, ok := expr.(*AssignExpr)
	if !ok || outer.Name.Raw != "a" {
		t.Fatalf("root = %T, want AssignExpr to a", expr)
	}
	inner, ok := outer.Value.(*AssignExpr)
	if !ok || inner.Name.Raw != "b" {
		t.Fatalf("value = %T, want AssignExpr to b", outer.Value)
	}
}

func TestParseCalls(t *testing.T) {
	// f(1)(2) is a call on the result of a call
	expr := parseExpr(t, "f(1)(2)")
	outer, ok := expr.(*CallExpr)
	if !ok {
		t.Fatalf("root = %T, want *CallExpr", expr)
	}
	if len(outer.Args) != 1 {
		t.Fatalf("outer args = %d, want 1", len(outer.Args))
	}
	inner, ok := outer.Callee.(*CallExpr)
	if !ok {
		t.Fatalf("callee = %T, want *CallExpr", outer.Callee)
	}
	if _, ok := inner.Callee.(*VariableExpr); !ok {
		t.Fatalf("inner callee = %T, want *VariableExpr", inner.Callee)
	}
}

func TestParsePropertyChain(t *testing.T) {
	expr := parseExpr(t, "a.b.c")
	outer, ok := expr.(*GetExpr)
	if !ok || outer.Name.Raw != "c" {
		t.Fatalf("root = %T, want GetExpr .c", expr)
	}
	inner, ok := outer.Object.(*GetExpr)
	if !ok || inner.Name.Raw != "b" {
		t.Fatalf("object = %T, want GetExpr .b", outer.Object)
	}
}

func TestParsePropertyAssignment(t *testing.T) {
	expr := parseExpr(t, "p.x = 1")
	set, ok := expr.(*SetExpr)
	if !ok || set.Name.Raw != "x" {
		t.Fatalf("root = %T, want SetExpr .x", expr)
	}
	if _, ok := set.Object.(*VariableExpr); !ok {
		t.Fatalf("object = %T, want *VariableExpr", set.Object)
	}
}

func TestParseMixedCallsAndProperties(t *testing.T) {
	// getHandler().run(1, 2) chains a get between two calls
	expr := parseExpr(t, "getHandler().run(1, 2)")
	call, ok := expr.(*CallExpr)
	if !ok {
		t.Fatalf("root = %T, want *CallExpr", expr)
	}
	if len(call.Args) != 2 {
		t.Errorf("args = %d, want 2", len(call.Args))
	}
	get, ok := call.Callee.(*GetExpr)
	if !ok || get.Name.Raw != "run" {
		t.Fatalf("callee = %T, want GetExpr .run", call.Callee)
	}
	if _, ok := get.Object.(*CallExpr); !ok {
		t.Fatalf("object = %T, want *CallExpr", get.Object)
	}
}
