package ir

import (
	"regexp"
)

// wildcardName matches pattern variables x0, x1, ..., y0, y1, ... — "x"
// or "y" followed by one or more digits. Variables with names of this
// shape are treated as wildcards wherever a pattern is matched.
var wildcardName = regexp.MustCompile(`^[xy][0-9]+$`)

// IsWildcardName reports whether name has wildcard shape.
func IsWildcardName(name string) bool {
	return wildcardName.MatchString(name)
}

// ExprMatch attempts to match pattern (which may contain wildcard
// Variables) against subject, returning the accumulated wildcard
// bindings on success. C4 layers the x/y-scope constraints on top of
// these raw bindings.
func ExprMatch(pattern, subject Expr) (map[string]Expr, bool) {
	bindings := map[string]Expr{}
	if matchInto(pattern, subject, bindings) {
		return bindings, true
	}
	return nil, false
}

func matchInto(pattern, subject Expr, bindings map[string]Expr) bool {
	if v, ok := pattern.(*Variable); ok && IsWildcardName(v.Name) {
		if existing, bound := bindings[v.Name]; bound {
			return Equal(existing, subject)
		}
		bindings[v.Name] = subject
		return true
	}

	switch p := pattern.(type) {
	case *IntLit:
		s, ok := subject.(*IntLit)
		return ok && p.typ.Equals(s.typ) && p.Value == s.Value
	case *UIntLit:
		s, ok := subject.(*UIntLit)
		return ok && p.typ.Equals(s.typ) && p.Value == s.Value
	case *FloatLit:
		s, ok := subject.(*FloatLit)
		return ok && p.typ.Equals(s.typ) && p.Value == s.Value
	case *StringLit:
		s, ok := subject.(*StringLit)
		return ok && p.Value == s.Value
	case *Variable:
		s, ok := subject.(*Variable)
		return ok && p.Name == s.Name && p.typ.Equals(s.typ)
	case *Cast:
		s, ok := subject.(*Cast)
		return ok && p.typ.Equals(s.typ) && matchInto(p.Value, s.Value, bindings)
	case *Call:
		s, ok := subject.(*Call)
		if !ok || p.Name != s.Name || p.ValueIndex != s.ValueIndex || p.Kind != s.Kind || len(p.Args) != len(s.Args) {
			return false
		}
		for i := range p.Args {
			if !matchInto(p.Args[i], s.Args[i], bindings) {
				return false
			}
		}
		return true
	case *BinOp:
		s, ok := subject.(*BinOp)
		return ok && p.Op == s.Op && matchInto(p.X, s.X, bindings) && matchInto(p.Y, s.Y, bindings)
	case *UnOp:
		s, ok := subject.(*UnOp)
		return ok && p.Op == s.Op && matchInto(p.X, s.X, bindings)
	case *Select:
		s, ok := subject.(*Select)
		return ok && matchInto(p.Cond, s.Cond, bindings) && matchInto(p.True, s.True, bindings) && matchInto(p.False, s.False, bindings)
	case *Let:
		s, ok := subject.(*Let)
		return ok && p.Name == s.Name && matchInto(p.Value, s.Value, bindings) && matchInto(p.Body, s.Body, bindings)
	default:
		return false
	}
}
