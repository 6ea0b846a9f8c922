package ir

// Simplify applies constant folding and the standard algebraic identities
// (x+0, x*1, x*0, double negation, and so on) bottom-up until a fixed
// point. It is the first canonicalisation step, and the form the
// equivalence check's testable properties are phrased against: two
// expressions are considered equal once they're equal after the
// simplifier runs.
func Simplify(expr Expr) Expr {
	prev := expr
	for {
		next := simplifyOnce(prev)
		if Equal(next, prev) {
			return next
		}
		prev = next
	}
}

func simplifyOnce(expr Expr) Expr {
	switch e := expr.(type) {
	case *IntLit, *UIntLit, *FloatLit, *StringLit, *Variable:
		return expr
	case *Cast:
		v := simplifyOnce(e.Value)
		if v.Type().Equals(e.typ) {
			return v
		}
		if lit, ok := v.(*IntLit); ok {
			return foldCast(e.typ, lit)
		}
		return NewCast(e.typ, v)
	case *Call:
		args := make([]Expr, len(e.Args))
		changed := false
		for i, a := range e.Args {
			args[i] = simplifyOnce(a)
			changed = changed || !Equal(args[i], a)
		}
		if !changed {
			return e
		}
		return NewCall(e.typ, e.Name, args, e.ValueIndex, e.Kind)
	case *UnOp:
		x := simplifyOnce(e.X)
		if inner, ok := x.(*UnOp); ok && inner.Op == OpNot && e.Op == OpNot {
			return inner.X
		}
		if lit, ok := x.(boolLit); ok {
			return litBool(!lit.boolValue())
		}
		return NewUnOp(e.Op, x)
	case *Select:
		cond := simplifyOnce(e.Cond)
		t := simplifyOnce(e.True)
		f := simplifyOnce(e.False)
		if lit, ok := cond.(boolLit); ok {
			if lit.boolValue() {
				return t
			}
			return f
		}
		if Equal(t, f) {
			return t
		}
		return NewSelect(cond, t, f)
	case *Let:
		value := simplifyOnce(e.Value)
		body := simplifyOnce(e.Body)
		if !ExprUsesVar(body, e.Name) {
			return body
		}
		return NewLet(e.Name, value, body)
	case *BinOp:
		return simplifyBinOp(e)
	default:
		return expr
	}
}

func simplifyBinOp(e *BinOp) Expr {
	x := simplifyOnce(e.X)
	y := simplifyOnce(e.Y)

	if folded, ok := foldConstants(e.Op, x, y); ok {
		return folded
	}

	switch e.Op {
	case OpAdd:
		if isZero(x) {
			return y
		}
		if isZero(y) {
			return x
		}
	case OpSub:
		if isZero(y) {
			return x
		}
		if Equal(x, y) {
			return zeroLike(x)
		}
	case OpMul:
		if isZero(x) {
			return x
		}
		if isZero(y) {
			return y
		}
		if isOne(x) {
			return y
		}
		if isOne(y) {
			return x
		}
	case OpDiv:
		if isOne(y) {
			return x
		}
	case OpMin, OpMax:
		if Equal(x, y) {
			return x
		}
	case OpAnd:
		if isTrueLit(x) {
			return y
		}
		if isTrueLit(y) {
			return x
		}
		if isFalseLit(x) || isFalseLit(y) {
			return litBool(false)
		}
	case OpOr:
		if isFalseLit(x) {
			return y
		}
		if isFalseLit(y) {
			return x
		}
		if isTrueLit(x) || isTrueLit(y) {
			return litBool(true)
		}
	case OpEQ:
		if Equal(x, y) {
			return litBool(true)
		}
	case OpNE:
		if Equal(x, y) {
			return litBool(false)
		}
	}
	return NewBinOp(e.Op, x, y)
}

// boolLit is satisfied by the literal representation used for Bool
// results (we reuse IntLit with a Bool type, 0/1, to avoid a dedicated
// node the data model does not list).
type boolLit interface {
	boolValue() bool
}

func (l *IntLit) boolValue() bool { return l.Value != 0 }

func litBool(v bool) Expr {
	if v {
		return &IntLit{typ: Bool(), Value: 1}
	}
	return &IntLit{typ: Bool(), Value: 0}
}

func isTrueLit(e Expr) bool {
	l, ok := e.(boolLit)
	return ok && l.boolValue()
}

func isFalseLit(e Expr) bool {
	l, ok := e.(boolLit)
	return ok && !l.boolValue()
}

func isZero(e Expr) bool {
	switch l := e.(type) {
	case *IntLit:
		return l.Value == 0
	case *UIntLit:
		return l.Value == 0
	case *FloatLit:
		return l.Value == 0
	}
	return false
}

func isOne(e Expr) bool {
	switch l := e.(type) {
	case *IntLit:
		return l.Value == 1
	case *UIntLit:
		return l.Value == 1
	case *FloatLit:
		return l.Value == 1
	}
	return false
}

func zeroLike(e Expr) Expr {
	t := e.Type()
	switch t.Kind {
	case KindUInt:
		return NewUIntLit(t, 0)
	case KindFloat:
		return NewFloatLit(t, 0)
	default:
		return NewIntLit(t, 0)
	}
}

func foldCast(t Type, lit *IntLit) Expr {
	switch t.Kind {
	case KindFloat:
		return NewFloatLit(t, float64(lit.Value))
	case KindUInt:
		return NewUIntLit(t, uint64(lit.Value))
	default:
		return NewIntLit(t, lit.Value)
	}
}

// foldConstants evaluates op on two literal operands of matching kind; ok
// is false when x or y is not a foldable literal pair (including mixed
// kinds, which Simplify never folds across — the cast layer is
// responsible for unification).
func foldConstants(op Op, x, y Expr) (Expr, bool) {
	switch a := x.(type) {
	case *IntLit:
		b, ok := y.(*IntLit)
		if !ok {
			return nil, false
		}
		return foldInt(op, a, b)
	case *UIntLit:
		b, ok := y.(*UIntLit)
		if !ok {
			return nil, false
		}
		return foldUInt(op, a, b)
	case *FloatLit:
		b, ok := y.(*FloatLit)
		if !ok {
			return nil, false
		}
		return foldFloat(op, a, b)
	}
	return nil, false
}

func foldInt(op Op, a, b *IntLit) (Expr, bool) {
	switch op {
	case OpAdd:
		return NewIntLit(a.typ, a.Value+b.Value), true
	case OpSub:
		return NewIntLit(a.typ, a.Value-b.Value), true
	case OpMul:
		return NewIntLit(a.typ, a.Value*b.Value), true
	case OpDiv:
		if b.Value == 0 {
			return nil, false
		}
		return NewIntLit(a.typ, a.Value/b.Value), true
	case OpMod:
		if b.Value == 0 {
			return nil, false
		}
		return NewIntLit(a.typ, a.Value%b.Value), true
	case OpMin:
		if a.Value < b.Value {
			return a, true
		}
		return b, true
	case OpMax:
		if a.Value > b.Value {
			return a, true
		}
		return b, true
	case OpEQ:
		return litBool(a.Value == b.Value), true
	case OpNE:
		return litBool(a.Value != b.Value), true
	case OpLT:
		return litBool(a.Value < b.Value), true
	case OpLE:
		return litBool(a.Value <= b.Value), true
	case OpGT:
		return litBool(a.Value > b.Value), true
	case OpGE:
		return litBool(a.Value >= b.Value), true
	}
	return nil, false
}

func foldUInt(op Op, a, b *UIntLit) (Expr, bool) {
	switch op {
	case OpAdd:
		return NewUIntLit(a.typ, a.Value+b.Value), true
	case OpSub:
		return NewUIntLit(a.typ, a.Value-b.Value), true
	case OpMul:
		return NewUIntLit(a.typ, a.Value*b.Value), true
	case OpDiv:
		if b.Value == 0 {
			return nil, false
		}
		return NewUIntLit(a.typ, a.Value/b.Value), true
	case OpMod:
		if b.Value == 0 {
			return nil, false
		}
		return NewUIntLit(a.typ, a.Value%b.Value), true
	case OpMin:
		if a.Value < b.Value {
			return a, true
		}
		return b, true
	case OpMax:
		if a.Value > b.Value {
			return a, true
		}
		return b, true
	case OpEQ:
		return litBool(a.Value == b.Value), true
	case OpNE:
		return litBool(a.Value != b.Value), true
	case OpLT:
		return litBool(a.Value < b.Value), true
	case OpLE:
		return litBool(a.Value <= b.Value), true
	case OpGT:
		return litBool(a.Value > b.Value), true
	case OpGE:
		return litBool(a.Value >= b.Value), true
	}
	return nil, false
}

func foldFloat(op Op, a, b *FloatLit) (Expr, bool) {
	switch op {
	case OpAdd:
		return NewFloatLit(a.typ, a.Value+b.Value), true
	case OpSub:
		return NewFloatLit(a.typ, a.Value-b.Value), true
	case OpMul:
		return NewFloatLit(a.typ, a.Value*b.Value), true
	case OpDiv:
		if b.Value == 0 {
			return nil, false
		}
		return NewFloatLit(a.typ, a.Value/b.Value), true
	case OpMin:
		if a.Value < b.Value {
			return a, true
		}
		return b, true
	case OpMax:
		if a.Value > b.Value {
			return a, true
		}
		return b, true
	case OpEQ:
		return litBool(a.Value == b.Value), true
	case OpNE:
		return litBool(a.Value != b.Value), true
	case OpLT:
		return litBool(a.Value < b.Value), true
	case OpLE:
		return litBool(a.Value <= b.Value), true
	case OpGT:
		return litBool(a.Value > b.Value), true
	case OpGE:
		return litBool(a.Value >= b.Value), true
	}
	return nil, false
}
