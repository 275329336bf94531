package interp

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fern/parser"
	"fern/types"
)

// run parses, resolves, and executes a program, returning its printed
// output lines and the runtime error, if any
func run(t *testing.T, src string) ([]string, *types.RuntimeError) {
	t.Helper()
	stmts := parseSource(t, src)

	var out bytes.Buffer
	i := NewInterpreter(&out)
	if errs := NewResolver(i).Resolve(stmts); len(errs) != 0 {
		t.Fatalf("resolve errors: %v", errs)
	}
	err := i.Interpret(stmts)

	text := strings.TrimSuffix(out.String(), "\n")
	if text == "" {
		return nil, err
	}
	return strings.Split(text, "\n"), err
}

// runOK runs a program and fails the test on a runtime error
func runOK(t *testing.T, src string) []string {
	t.Helper()
	lines, err := run(t, src)
	if err != nil {
		t.Fatalf("runtime error: %v", err)
	}
	return lines
}

func TestInterpretPrint(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			"values",
			`print 42; print "hi"; print true; print nil;`,
			[]string{"42", "hi", "true", "nil"},
		},
		{
			"arithmetic",
			"print 2 + 3 * 4;",
			[]string{"14"},
		},
		{
			"string concatenation with numbers",
			`print "x" + 1; print 1 + "x";`,
			[]string{"x1", "1x"},
		},
		{
			"whole numbers print without decimal point",
			"print 10 / 4; print 8 / 4;",
			[]string{"2.5", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runOK(t, tt.src)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInterpretVariablesAndScoping(t *testing.T) {
	got := runOK(t, `
		var a = "outer";
		{
			var a = "inner";
			print a;
		}
		print a;
	`)
	want := []string{"inner", "outer"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpretClosureCapturesDefinitionScope(t *testing.T) {
	got := runOK(t, `
		funct make_counter() {
			var n = 0;
			funct inc() {
				n = n + 1;
				return n;
			}
			return inc;
		}
		var c = make_counter();
		c();
		print c();
	`)
	want := []string{"2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpretClosureIsStable(t *testing.T) {
	// The function sees the binding resolved at its definition even
	// after a later declaration shadows it
	got := runOK(t, `
		var a = "global";
		{
			funct show() {
				print a;
			}
			show();
			var a = "block";
			show();
		}
	`)
	want := []string{"global", "global"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpretBreakExitsNearestLoop(t *testing.T) {
	got := runOK(t, `
		var i = 0;
		while (i < 2) {
			var j = 0;
			while (j < 10) {
				if (j == 1) break;
				j = j + 1;
			}
			print j;
			i = i + 1;
		}
		print "outer done";
	`)
	want := []string{"1", "1", "outer done"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpretWhileFinally(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			"condition exit",
			`var i = 0; while (i < 2) { print i; i = i + 1; } finally print "fin";`,
			[]string{"0", "1", "fin"},
		},
		{
			"never entered",
			`while (false) print "body"; finally print "fin";`,
			[]string{"fin"},
		},
		{
			"break exit",
			`while (true) break; finally print "fin";`,
			[]string{"fin"},
		},
		{
			"return passes through finally",
			`funct f() { while (true) return "ret"; finally print "fin"; } print f();`,
			[]string{"fin", "ret"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runOK(t, tt.src)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInterpretFinallySkippedOnError(t *testing.T) {
	lines, err := run(t, `while (true) { print "body"; print 1 / 0; } finally print "fin";`)
	if err == nil {
		t.Fatal("expected runtime error")
	}
	want := []string{"body"}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpretCoerciveEquality(t *testing.T) {
	got := runOK(t, `
		print "10" == 10;
		print 10 == "10";
		print "abc" == 10;
		print nil == false;
		print nil == nil;
		print "10" != 10;
	`)
	want := []string{"true", "true", "false", "true", "true", "false"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpretLogicalOperators(t *testing.T) {
	// Short-circuiting yields a coerced boolean; falling through yields
	// the right operand untouched
	got := runOK(t, `
		print 1 or 2;
		print nil or 2;
		print nil and 2;
		print 1 and "x";
	`)
	want := []string{"true", "2", "false", "x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpretRuntimeErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		contains string
	}{
		{"division by zero", "print 1 / 0;", "cannot divide by 0 in 1 / 0"},
		{"undefined variable", "print ghost;", "attempted to access undefined variable ghost"},
		{"assign to undefined", "ghost = 1;", "attempted to assign to undefined variable ghost"},
		{"negate a string", `print -"abc";`, "unary operator '-' not supported"},
		{"subtract strings", `print "a" - "b";`, "invalid operands"},
		{"call a number", "print 7();", "can only call functions and classes"},
		{"arity mismatch", "funct f(a, b) {} f(1);", "expected 2 arguments but got 1"},
		{"property on number", "print (1).x;", "only instances have properties"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.src)
			if err == nil {
				t.Fatal("expected runtime error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.contains)
			}
		})
	}
}

func TestInterpretErrorCarriesPosition(t *testing.T) {
	_, err := run(t, "var a = 1;\nprint a / 0;")
	if err == nil {
		t.Fatal("expected runtime error")
	}
	if err.Line != 2 {
		t.Errorf("line = %d, want 2", err.Line)
	}
	if err.Lexeme != "/" {
		t.Errorf("lexeme = %q, want /", err.Lexeme)
	}
}

func TestInterpretClasses(t *testing.T) {
	got := runOK(t, `
		class Point {}
		var p = Point();
		p.x = 3;
		p.y = p.x + 1;
		print p.x + p.y;
		print p;
	`)
	want := []string{"7", "<Point instance>"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpretInstanceEquality(t *testing.T) {
	got := runOK(t, `
		class P {}
		class Q {}
		var a = P();
		var b = P();
		print a == b;
		a.x = 1;
		print a == b;
		b.x = 1;
		print a == b;
		print P() == Q();
	`)
	want := []string{"true", "false", "true", "false"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpretRecursion(t *testing.T) {
	got := runOK(t, `
		funct fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
		print fib(12);
	`)
	want := []string{"144"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpretClockNative(t *testing.T) {
	i := NewInterpreter(io.Discard)
	val, ok := i.Globals().Get("clock")
	if !ok {
		t.Fatal("clock not bound")
	}
	clock, ok := val.(Callable)
	if !ok {
		t.Fatalf("clock is %T, want Callable", val)
	}
	if clock.Arity() != 0 {
		t.Errorf("arity = %d, want 0", clock.Arity())
	}

	result := clock.Call(i, nil)
	if !result.IsNormal() {
		t.Fatalf("clock call failed: %v", result.Err)
	}
	num, ok := result.Val.(types.NumberValue)
	if !ok {
		t.Fatalf("clock returned %T, want NumberValue", result.Val)
	}
	if num.Val <= 0 {
		t.Errorf("clock = %v, want positive milliseconds", num.Val)
	}
}

func TestInterpretRejectsUnhandledUnwind(t *testing.T) {
	// A break fed straight to Interpret, bypassing the resolver, is an
	// internal defect and must surface as one rather than execute
	i := NewInterpreter(io.Discard)
	stmt := &parser.BreakStmt{Keyword: parser.Token{
		Type: parser.TOKEN_BREAK, Raw: "break",
		Position: parser.Position{Line: 1, Column: 1},
	}}
	err := i.Interpret([]parser.Stmt{stmt})
	if err == nil {
		t.Fatal("expected an internal invariant error")
	}
	if !strings.Contains(err.Message, "internal invariant violation") {
		t.Errorf("message = %q", err.Message)
	}
}

func TestEvaluateExpression(t *testing.T) {
	i := NewInterpreter(io.Discard)
	stmts := parseSource(t, "var base = 40;")
	if errs := NewResolver(i).Resolve(stmts); len(errs) != 0 {
		t.Fatalf("resolve errors: %v", errs)
	}
	if err := i.Interpret(stmts); err != nil {
		t.Fatalf("runtime error: %v", err)
	}

	tokens, _ := parser.NewLexer("base + 2").Tokens()
	expr, perrs := parser.NewParser(tokens).ParseExpression()
	if len(perrs) != 0 {
		t.Fatalf("parse errors: %v", perrs)
	}

	result := i.Evaluate(expr)
	if !result.IsNormal() {
		t.Fatalf("evaluate failed: %v", result.Err)
	}
	if !result.Val.Equal(types.NewNumber(42)) {
		t.Errorf("value = %s, want 42", result.Val)
	}
}
