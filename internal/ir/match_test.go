package ir

import (
	"testing"
)

func TestExprMatch_Simple(t *testing.T) {
	pattern := NewBinOp(OpAdd, NewVariable("x0", Int32), NewVariable("y0", Int32))
	subject := NewBinOp(OpAdd, NewVariable("_x_0", Int32), NewVariable("z", Int32))

	bindings, ok := ExprMatch(pattern, subject)
	if !ok {
		t.Fatalf("expected match")
	}
	if !Equal(bindings["x0"], NewVariable("_x_0", Int32)) {
		t.Errorf("x0 bound to %s", bindings["x0"])
	}
	if !Equal(bindings["y0"], NewVariable("z", Int32)) {
		t.Errorf("y0 bound to %s", bindings["y0"])
	}
}

func TestExprMatch_ConflictingRebind(t *testing.T) {
	// x0 - x0 should only match subject - subject when both sides are
	// structurally identical.
	pattern := NewBinOp(OpSub, NewVariable("x0", Int32), NewVariable("x0", Int32))
	subject := NewBinOp(OpSub, NewVariable("a", Int32), NewVariable("b", Int32))
	if _, ok := ExprMatch(pattern, subject); ok {
		t.Fatalf("expected conflicting rebind to reject the match")
	}
}

func TestExprMatch_NonWildcardMustMatchStructurally(t *testing.T) {
	pattern := NewBinOp(OpAdd, NewVariable("acc", Int32), NewVariable("y0", Int32))
	subject := NewBinOp(OpAdd, NewVariable("other", Int32), NewVariable("z", Int32))
	if _, ok := ExprMatch(pattern, subject); ok {
		t.Fatalf("non-wildcard identifiers must match exactly")
	}
}

func TestIsWildcardName(t *testing.T) {
	cases := map[string]bool{
		"x0": true, "y12": true, "x": false, "yy0": false, "x0y": false, "acc": false,
	}
	for name, want := range cases {
		if got := IsWildcardName(name); got != want {
			t.Errorf("IsWildcardName(%q) = %v, want %v", name, got, want)
		}
	}
}
