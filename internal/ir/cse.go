package ir

import "fmt"

// CommonSubexpressionElimination rewrites expr so that every
// non-trivial subtree occurring more than once is bound once via a Let
// and referenced thereafter by variable. Atomic nodes (literals,
// variables) are never let-bound — duplicating a leaf costs nothing and
// bloats nothing.
//
// The fresh names it introduces come from gen; callers that need
// deterministic output across repeated runs (tests, the prover itself)
// should pass a freshly-seeded *Generator.
func CommonSubexpressionElimination(expr Expr, gen *Generator) Expr {
	counts := map[string]int{}
	countOccurrences(expr, counts)

	st := &cseState{
		counts: counts,
		bound:  map[string]string{},
		values: map[string]Expr{},
	}
	rewritten := st.rewrite(expr, gen)

	result := rewritten
	for i := len(st.order) - 1; i >= 0; i-- {
		key := st.order[i]
		name := st.bound[key]
		if !ExprUsesVar(result, name) {
			continue
		}
		result = NewLet(name, st.values[key], result)
	}
	return result
}

// cseState holds all per-call mutable bookkeeping for
// CommonSubexpressionElimination; it is local to one call so concurrent
// callers never share state.
type cseState struct {
	counts map[string]int
	bound  map[string]string // structural key -> let-bound name
	values map[string]Expr   // structural key -> rewritten expression
	order  []string          // keys in first-seen order
}

func countOccurrences(expr Expr, counts map[string]int) {
	if expr == nil || isAtomic(expr) {
		return
	}
	counts[structuralKey(expr)]++
	for _, c := range children(expr) {
		countOccurrences(c, counts)
	}
}

func (st *cseState) rewrite(expr Expr, gen *Generator) Expr {
	if expr == nil || isAtomic(expr) {
		return expr
	}
	kids := children(expr)
	newKids := make([]Expr, len(kids))
	for i, c := range kids {
		newKids[i] = st.rewrite(c, gen)
	}
	rebuilt := rebuild(expr, newKids)

	key := structuralKey(expr)
	if st.counts[key] < 2 {
		return rebuilt
	}
	name, ok := st.bound[key]
	if !ok {
		name = gen.Fresh("_cse")
		st.bound[key] = name
		st.values[key] = rebuilt
		st.order = append(st.order, key)
	}
	return NewVariable(name, rebuilt.Type())
}

func isAtomic(expr Expr) bool {
	switch expr.(type) {
	case *IntLit, *UIntLit, *FloatLit, *StringLit, *Variable:
		return true
	default:
		return false
	}
}

func children(expr Expr) []Expr {
	switch e := expr.(type) {
	case *Cast:
		return []Expr{e.Value}
	case *Call:
		return e.Args
	case *BinOp:
		return []Expr{e.X, e.Y}
	case *UnOp:
		return []Expr{e.X}
	case *Select:
		return []Expr{e.Cond, e.True, e.False}
	case *Let:
		return []Expr{e.Value, e.Body}
	default:
		return nil
	}
}

func rebuild(expr Expr, kids []Expr) Expr {
	switch e := expr.(type) {
	case *Cast:
		return NewCast(e.typ, kids[0])
	case *Call:
		return NewCall(e.typ, e.Name, kids, e.ValueIndex, e.Kind)
	case *BinOp:
		return NewBinOp(e.Op, kids[0], kids[1])
	case *UnOp:
		return NewUnOp(e.Op, kids[0])
	case *Select:
		return NewSelect(kids[0], kids[1], kids[2])
	case *Let:
		return NewLet(e.Name, kids[0], kids[1])
	default:
		return expr
	}
}

// structuralKey is a cheap, collision-resistant-enough key for detecting
// repeated subexpressions during CSE. It is not used for the prover's
// Equal checks, which remain fully structural.
func structuralKey(expr Expr) string {
	return fmt.Sprintf("%T:%s", expr, expr.String())
}
