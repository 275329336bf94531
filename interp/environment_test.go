package interp

import (
	"testing"

	"fern/types"
)

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Define("a", types.NewNumber(1))

	val, ok := env.Get("a")
	if !ok {
		t.Fatal("a not found")
	}
	if !val.Equal(types.NewNumber(1)) {
		t.Errorf("a = %s, want 1", val)
	}

	if _, ok := env.Get("missing"); ok {
		t.Error("missing found, want not found")
	}
}

func TestEnvironmentRedefineShadowsInPlace(t *testing.T) {
	env := NewEnvironment()
	env.Define("a", types.NewNumber(1))
	env.Define("a", types.NewStr("two"))

	val, _ := env.Get("a")
	if !val.Equal(types.NewStr("two")) {
		t.Errorf("a = %s, want two", val)
	}
}

func TestEnvironmentChainLookup(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("a", types.NewNumber(1))
	inner := NewNestedEnvironment(outer)

	val, ok := inner.Get("a")
	if !ok || !val.Equal(types.NewNumber(1)) {
		t.Errorf("a through chain = %v %v, want 1", val, ok)
	}

	// Shadowing hides the outer binding without touching it
	inner.Define("a", types.NewNumber(2))
	val, _ = inner.Get("a")
	if !val.Equal(types.NewNumber(2)) {
		t.Errorf("shadowed a = %s, want 2", val)
	}
	val, _ = outer.Get("a")
	if !val.Equal(types.NewNumber(1)) {
		t.Errorf("outer a = %s, want 1", val)
	}
}

func TestEnvironmentAssign(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("a", types.NewNumber(1))
	inner := NewNestedEnvironment(outer)

	// Assignment writes through to the defining scope
	if !inner.Assign("a", types.NewNumber(9)) {
		t.Fatal("assign to a failed")
	}
	val, _ := outer.Get("a")
	if !val.Equal(types.NewNumber(9)) {
		t.Errorf("outer a = %s, want 9", val)
	}

	// Assignment never creates a binding
	if inner.Assign("b", types.NewNumber(1)) {
		t.Error("assign to undefined b succeeded")
	}
	if _, ok := inner.Get("b"); ok {
		t.Error("b exists after failed assign")
	}
}

func TestEnvironmentGetAt(t *testing.T) {
	g := NewEnvironment()
	g.Define("a", types.NewStr("global"))
	mid := NewNestedEnvironment(g)
	mid.Define("a", types.NewStr("mid"))
	leaf := NewNestedEnvironment(mid)

	tests := []struct {
		distance int
		want     string
	}{
		{1, "mid"},
		{2, "global"},
	}
	for _, tt := range tests {
		val, ok := leaf.GetAt(tt.distance, "a")
		if !ok {
			t.Fatalf("GetAt(%d) missed", tt.distance)
		}
		if !val.Equal(types.NewStr(tt.want)) {
			t.Errorf("GetAt(%d) = %s, want %s", tt.distance, val, tt.want)
		}
	}

	// GetAt looks only at the exact scope, never its ancestors
	if _, ok := leaf.GetAt(0, "a"); ok {
		t.Error("GetAt(0) found a, want miss")
	}
	// Walking past the root is a miss, not a panic
	if _, ok := leaf.GetAt(5, "a"); ok {
		t.Error("GetAt(5) found a, want miss")
	}
}

func TestEnvironmentAssignAt(t *testing.T) {
	g := NewEnvironment()
	g.Define("a", types.NewNumber(1))
	mid := NewNestedEnvironment(g)
	mid.Define("a", types.NewNumber(2))
	leaf := NewNestedEnvironment(mid)

	if !leaf.AssignAt(2, "a", types.NewNumber(10)) {
		t.Fatal("AssignAt(2) failed")
	}
	val, _ := g.GetAt(0, "a")
	if !val.Equal(types.NewNumber(10)) {
		t.Errorf("global a = %s, want 10", val)
	}
	val, _ = mid.GetAt(0, "a")
	if !val.Equal(types.NewNumber(2)) {
		t.Errorf("mid a = %s, want 2 (untouched)", val)
	}

	if leaf.AssignAt(0, "a", types.NewNumber(0)) {
		t.Error("AssignAt(0) wrote into a scope without the binding")
	}
}
