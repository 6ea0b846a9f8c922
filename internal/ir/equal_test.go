package ir

import "testing"

func TestEqual_AlphaRenamedLets(t *testing.T) {
	a := NewLet("a", NewIntLit(Int32, 1), NewVariable("a", Int32))
	b := NewLet("b", NewIntLit(Int32, 1), NewVariable("b", Int32))
	if !Equal(a, b) {
		t.Fatalf("expected alpha-equivalent lets to compare equal")
	}
}

func TestEqual_FreeVariablesNotRenamed(t *testing.T) {
	a := NewVariable("x", Int32)
	b := NewVariable("y", Int32)
	if Equal(a, b) {
		t.Fatalf("free variables with different names must not compare equal")
	}
}

func TestEqual_NestedLetDifferentBinding(t *testing.T) {
	a := NewLet("a", NewIntLit(Int32, 1), NewLet("b", NewIntLit(Int32, 2), NewBinOp(OpAdd, NewVariable("a", Int32), NewVariable("b", Int32))))
	b := NewLet("p", NewIntLit(Int32, 1), NewLet("q", NewIntLit(Int32, 2), NewBinOp(OpAdd, NewVariable("p", Int32), NewVariable("q", Int32))))
	if !Equal(a, b) {
		t.Fatalf("expected nested alpha-equivalent lets to compare equal")
	}
	c := NewLet("p", NewIntLit(Int32, 1), NewLet("q", NewIntLit(Int32, 2), NewBinOp(OpAdd, NewVariable("q", Int32), NewVariable("p", Int32))))
	if Equal(a, c) {
		t.Fatalf("swapped bound-variable usage must not compare equal")
	}
}

func TestEqual_Structural(t *testing.T) {
	a := NewBinOp(OpAdd, NewVariable("x", Int32), NewIntLit(Int32, 3))
	b := NewBinOp(OpAdd, NewVariable("x", Int32), NewIntLit(Int32, 3))
	c := NewBinOp(OpAdd, NewIntLit(Int32, 3), NewVariable("x", Int32))
	if !Equal(a, b) {
		t.Fatalf("identical trees must compare equal")
	}
	if Equal(a, c) {
		t.Fatalf("Equal must not treat commutative operands as interchangeable")
	}
}
