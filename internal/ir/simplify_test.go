package ir

import "testing"

func TestSimplify_ConstantFolding(t *testing.T) {
	e := NewBinOp(OpAdd, NewIntLit(Int32, 2), NewIntLit(Int32, 3))
	got := Simplify(e)
	want := NewIntLit(Int32, 5)
	if !Equal(got, want) {
		t.Fatalf("Simplify(2+3) = %s, want %s", got, want)
	}
}

func TestSimplify_Identities(t *testing.T) {
	x := NewVariable("x", Int32)
	tests := []struct {
		name string
		expr Expr
		want Expr
	}{
		{"x+0", NewBinOp(OpAdd, x, NewIntLit(Int32, 0)), x},
		{"0+x", NewBinOp(OpAdd, NewIntLit(Int32, 0), x), x},
		{"x*1", NewBinOp(OpMul, x, NewIntLit(Int32, 1)), x},
		{"x*0", NewBinOp(OpMul, x, NewIntLit(Int32, 0)), NewIntLit(Int32, 0)},
		{"x-0", NewBinOp(OpSub, x, NewIntLit(Int32, 0)), x},
		{"x-x", NewBinOp(OpSub, x, x), NewIntLit(Int32, 0)},
		{"min(x,x)", NewBinOp(OpMin, x, x), x},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Simplify(tt.expr)
			if !Equal(got, tt.want) {
				t.Fatalf("Simplify(%s) = %s, want %s", tt.expr, got, tt.want)
			}
		})
	}
}

func TestSimplify_NestedFold(t *testing.T) {
	x := NewVariable("x", Int32)
	// (x + 0) * 1 -> x
	e := NewBinOp(OpMul, NewBinOp(OpAdd, x, NewIntLit(Int32, 0)), NewIntLit(Int32, 1))
	got := Simplify(e)
	if !Equal(got, x) {
		t.Fatalf("Simplify((x+0)*1) = %s, want x", got)
	}
}

func TestSimplify_SelectWithConstantCondition(t *testing.T) {
	x := NewVariable("x", Int32)
	y := NewVariable("y", Int32)
	e := NewSelect(litBool(true), x, y)
	got := Simplify(e)
	if !Equal(got, x) {
		t.Fatalf("Simplify(select(true,x,y)) = %s, want x", got)
	}
}
