package ir

// alphaScope tracks the Let-bound names currently in scope while
// comparing two trees, so that `let a = ... in a` and `let b = ... in b`
// compare equal but free variables of the same textual name still have
// to actually be the same name: equality is structural modulo
// alpha-renaming of Let-bound names.
type alphaScope struct {
	// parallel stacks: names[i] in the left tree corresponds to names[i]
	// in the right tree at the same binding depth.
	left, right []string
}

func (s *alphaScope) push(l, r string) *alphaScope {
	return &alphaScope{left: append(append([]string{}, s.left...), l), right: append(append([]string{}, s.right...), r)}
}

// index returns the bound-index of name in side (s.left or s.right), or -1
// if it is free at this scope.
func (s *alphaScope) index(side []string, name string) int {
	for i := len(side) - 1; i >= 0; i-- {
		if side[i] == name {
			return i
		}
	}
	return -1
}

// Equal reports whether a and b are structurally equal, treating
// corresponding Let-bound names as interchangeable.
func Equal(a, b Expr) bool {
	return equalScoped(a, b, &alphaScope{})
}

func equalScoped(a, b Expr, scope *alphaScope) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch x := a.(type) {
	case *IntLit:
		y, ok := b.(*IntLit)
		return ok && x.typ.Equals(y.typ) && x.Value == y.Value
	case *UIntLit:
		y, ok := b.(*UIntLit)
		return ok && x.typ.Equals(y.typ) && x.Value == y.Value
	case *FloatLit:
		y, ok := b.(*FloatLit)
		return ok && x.typ.Equals(y.typ) && x.Value == y.Value
	case *StringLit:
		y, ok := b.(*StringLit)
		return ok && x.Value == y.Value
	case *Variable:
		y, ok := b.(*Variable)
		if !ok || !x.typ.Equals(y.typ) {
			return false
		}
		li, ri := scope.index(scope.left, x.Name), scope.index(scope.right, y.Name)
		if li == -1 && ri == -1 {
			return x.Name == y.Name
		}
		return li == ri
	case *Cast:
		y, ok := b.(*Cast)
		return ok && x.typ.Equals(y.typ) && equalScoped(x.Value, y.Value, scope)
	case *Call:
		y, ok := b.(*Call)
		if !ok || x.Name != y.Name || x.ValueIndex != y.ValueIndex || x.Kind != y.Kind || !x.typ.Equals(y.typ) {
			return false
		}
		if len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !equalScoped(x.Args[i], y.Args[i], scope) {
				return false
			}
		}
		return true
	case *BinOp:
		y, ok := b.(*BinOp)
		return ok && x.Op == y.Op && equalScoped(x.X, y.X, scope) && equalScoped(x.Y, y.Y, scope)
	case *UnOp:
		y, ok := b.(*UnOp)
		return ok && x.Op == y.Op && equalScoped(x.X, y.X, scope)
	case *Select:
		y, ok := b.(*Select)
		return ok && equalScoped(x.Cond, y.Cond, scope) && equalScoped(x.True, y.True, scope) && equalScoped(x.False, y.False, scope)
	case *Let:
		y, ok := b.(*Let)
		if !ok {
			return false
		}
		if !equalScoped(x.Value, y.Value, scope) {
			return false
		}
		return equalScoped(x.Body, y.Body, scope.push(x.Name, y.Name))
	default:
		return false
	}
}
