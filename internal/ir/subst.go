package ir

// Substitute replaces free occurrences of name with value in expr,
// respecting Let-shadowing (a Let that rebinds name stops the
// replacement from reaching its body). Every call builds a fresh tree;
// expr is never mutated.
func Substitute(name string, value Expr, expr Expr) Expr {
	return SubstituteMap(map[string]Expr{name: value}, expr)
}

// SubstituteMap is the simultaneous, map-form version of Substitute: every
// replacement happens in one pass over expr, so a substitution whose
// right-hand side mentions another key is not itself re-substituted and
// bindings cannot "see" each other's results. C4's pattern rebuild
// depends on exactly this simultaneous semantics.
func SubstituteMap(subs map[string]Expr, expr Expr) Expr {
	if len(subs) == 0 || expr == nil {
		return expr
	}
	switch e := expr.(type) {
	case *IntLit, *UIntLit, *FloatLit, *StringLit:
		return expr
	case *Variable:
		if v, ok := subs[e.Name]; ok {
			return v
		}
		return e
	case *Cast:
		return NewCast(e.typ, SubstituteMap(subs, e.Value))
	case *Call:
		args := make([]Expr, len(e.Args))
		for i, a := range e.Args {
			args[i] = SubstituteMap(subs, a)
		}
		return NewCall(e.typ, e.Name, args, e.ValueIndex, e.Kind)
	case *BinOp:
		return NewBinOp(e.Op, SubstituteMap(subs, e.X), SubstituteMap(subs, e.Y))
	case *UnOp:
		return NewUnOp(e.Op, SubstituteMap(subs, e.X))
	case *Select:
		return NewSelect(SubstituteMap(subs, e.Cond), SubstituteMap(subs, e.True), SubstituteMap(subs, e.False))
	case *Let:
		newValue := SubstituteMap(subs, e.Value)
		if _, shadowed := subs[e.Name]; shadowed {
			// The let rebinds a name we're substituting; remove it from
			// the map for the body only.
			inner := make(map[string]Expr, len(subs))
			for k, v := range subs {
				if k != e.Name {
					inner[k] = v
				}
			}
			return NewLet(e.Name, newValue, SubstituteMap(inner, e.Body))
		}
		return NewLet(e.Name, newValue, SubstituteMap(subs, e.Body))
	default:
		return expr
	}
}

// SubstituteInAllLets eliminates every Let node in expr by inlining each
// binding into its body, so the result is let-free. Nested lets are
// resolved bottom-up so a Let whose Value itself contains lets is fully
// flattened before being inlined.
func SubstituteInAllLets(expr Expr) Expr {
	if expr == nil {
		return nil
	}
	switch e := expr.(type) {
	case *IntLit, *UIntLit, *FloatLit, *StringLit, *Variable:
		return expr
	case *Cast:
		return NewCast(e.typ, SubstituteInAllLets(e.Value))
	case *Call:
		args := make([]Expr, len(e.Args))
		for i, a := range e.Args {
			args[i] = SubstituteInAllLets(a)
		}
		return NewCall(e.typ, e.Name, args, e.ValueIndex, e.Kind)
	case *BinOp:
		return NewBinOp(e.Op, SubstituteInAllLets(e.X), SubstituteInAllLets(e.Y))
	case *UnOp:
		return NewUnOp(e.Op, SubstituteInAllLets(e.X))
	case *Select:
		return NewSelect(SubstituteInAllLets(e.Cond), SubstituteInAllLets(e.True), SubstituteInAllLets(e.False))
	case *Let:
		value := SubstituteInAllLets(e.Value)
		body := SubstituteInAllLets(e.Body)
		return Substitute(e.Name, value, body)
	default:
		return expr
	}
}
