package parser

import (
	"strings"
	"testing"
)

// parseErrors parses input and returns only the errors
func parseErrors(t *testing.T, input string) []*ParseError {
	t.Helper()
	tokens, lexErrs := NewLexer(input).Tokens()
	if len(lexErrs) != 0 {
		t.Fatalf("lexical errors: %v", lexErrs)
	}
	_, errs := NewParser(tokens).Parse()
	return errs
}

func TestParseErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"missing var semicolon", "var x 5;", "expect ';' after variable declaration"},
		{"missing var name", "var = 1;", "expected variable name"},
		{"missing print value", "print ;", "expected expression"},
		{"missing if paren", "if a < 1 print a;", "expect '(' to open 'if' condition"},
		{"unclosed block", "{ print 1;", "expect '}' to close a block"},
		{"invalid assignment target", "1 + 2 = 3;", "invalid assignment target"},
		{"missing funct body", "funct f() print 1;", "expect '{' before funct body"},
		{"missing break semicolon", "while (true) break", "expect ';' after 'break'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := parseErrors(t, tt.input)
			if len(errs) == 0 {
				t.Fatal("expected parse errors, got none")
			}
			if got := errs[0].Error(); !strings.Contains(got, tt.contains) {
				t.Errorf("error = %q, want substring %q", got, tt.contains)
			}
		})
	}
}

func TestParseCollectsMultipleErrors(t *testing.T) {
	// Panic-mode recovery resumes at the next statement boundary, so
	// both bad statements are reported in one pass
	errs := parseErrors(t, `
		var x 5;
		print "fine";
		print ;
	`)
	if len(errs) != 2 {
		t.Fatalf("errors = %d, want 2: %v", len(errs), errs)
	}
}

func TestParseRecoversGoodStatements(t *testing.T) {
	tokens, _ := NewLexer(`
		var x 5;
		print "fine";
	`).Tokens()
	stmts, errs := NewParser(tokens).Parse()
	if len(errs) != 1 {
		t.Fatalf("errors = %d, want 1: %v", len(errs), errs)
	}
	if len(stmts) != 1 {
		t.Fatalf("recovered statements = %d, want 1", len(stmts))
	}
	if _, ok := stmts[0].(*PrintStmt); !ok {
		t.Errorf("recovered = %T, want *PrintStmt", stmts[0])
	}
}

func TestParseErrorPosition(t *testing.T) {
	errs := parseErrors(t, "var x\n5;")
	if len(errs) == 0 {
		t.Fatal("expected parse errors, got none")
	}
	err := errs[0]
	if err.Token.Position.Line != 2 {
		t.Errorf("error line = %d, want 2", err.Token.Position.Line)
	}
}

func TestParseSynchronizeStopsAtKeywords(t *testing.T) {
	// The bad expression swallows tokens up to the var keyword, which
	// anchors recovery even without a semicolon
	tokens, _ := NewLexer("print + +\nvar ok = 1;").Tokens()
	stmts, errs := NewParser(tokens).Parse()
	if len(errs) == 0 {
		t.Fatal("expected parse errors, got none")
	}
	if len(stmts) != 1 {
		t.Fatalf("recovered statements = %d, want 1", len(stmts))
	}
	if _, ok := stmts[0].(*VarStmt); !ok {
		t.Errorf("recovered = %T, want *VarStmt", stmts[0])
	}
}
