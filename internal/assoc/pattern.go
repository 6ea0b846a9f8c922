package assoc

import (
	"fmt"

	"github.com/sunholo/assocprove/internal/ir"
)

// matchPatternTable implements C4: wildcard-match each
// candidate pattern of matching arity against exprs, enforce that every
// xi wildcard bound to exactly the declared self-reference variable and
// every yi wildcard is free of the whole x-scope, and on the first full
// match rebuild the canonical per-index operator forms by simultaneous
// substitution.
func matchPatternTable(tr *tracer, exprs []ir.Expr, xParts []ir.Expr, opXNames, opYNames []string, table []AssociativePattern) (AssociativeOp, bool) {
	n := len(exprs)
	xScope := map[string]bool{}
	for _, name := range opXNames {
		xScope[name] = true
	}

candidates:
	for _, candidate := range table {
		if candidate.Arity() != n {
			continue
		}
		bindings := map[string]ir.Expr{}
		for i := 0; i < n; i++ {
			m, matched := ir.ExprMatch(candidate.Ops[i], exprs[i])
			if !matched {
				continue candidates
			}
			for name, bound := range m {
				if existing, seen := bindings[name]; seen {
					if !ir.Equal(existing, bound) {
						continue candidates // conflicting rebinding
					}
					continue
				}
				bindings[name] = bound
			}
		}

		for i := 0; i < n; i++ {
			// xParts[i] is nil when index i has no self-reference of its
			// own (it entered this subgraph purely as another index's
			// dependency target). buildAssociativeOp needs a real xi for
			// every index in the candidate's arity, so a candidate can
			// only be used when every index actually has one -- checked
			// unconditionally, not just when the candidate happens to
			// bind wildcard xi.
			if xParts[i] == nil {
				continue candidates
			}
			bound, has := bindings[wildcardX(i)]
			if !has {
				continue
			}
			if !ir.Equal(bound, ir.NewVariable(opXNames[i], xParts[i].Type())) {
				continue candidates
			}
		}
		for i := 0; i < n; i++ {
			if bound, has := bindings[wildcardY(i)]; has && ir.ExprUsesVars(bound, xScope) {
				continue candidates
			}
		}

		tr.logf(2, "C4 matched pattern %q", candidate.Name)
		return buildAssociativeOp(candidate, bindings, xParts, opXNames, opYNames), true
	}
	tr.logf(2, "C4 exhausted table, no match for arity %d", n)
	return AssociativeOp{}, false
}

func wildcardX(i int) string { return fmt.Sprintf("x%d", i) }
func wildcardY(i int) string { return fmt.Sprintf("y%d", i) }

// buildAssociativeOp renders the matched candidate's template into the
// concrete per-index operator forms, renaming every wildcard to the
// caller's fresh op_x/op_y names in a single simultaneous substitution
// pass — a naive sequential substitution can misbehave when one
// y-binding's expression contains another's name, e.g. argmin-style
// patterns.
func buildAssociativeOp(candidate AssociativePattern, bindings map[string]ir.Expr, xParts []ir.Expr, opXNames, opYNames []string) AssociativeOp {
	n := candidate.Arity()
	rename := map[string]ir.Expr{}
	xs := make([]Replacement, n)
	ys := make([]Replacement, n)

	for i := 0; i < n; i++ {
		rename[wildcardX(i)] = ir.NewVariable(opXNames[i], xParts[i].Type())
		xs[i] = Replacement{Var: opXNames[i], Expr: xParts[i]}

		if bound, has := bindings[wildcardY(i)]; has {
			rename[wildcardY(i)] = ir.NewVariable(opYNames[i], bound.Type())
			ys[i] = Replacement{Var: opYNames[i], Expr: bound}
		}
	}

	ops := make([]ir.Expr, n)
	identities := make([]ir.Expr, n)
	for i := 0; i < n; i++ {
		ops[i] = ir.SubstituteMap(rename, candidate.Ops[i])
		identities[i] = ir.SubstituteMap(rename, candidate.Identities[i])
	}

	return AssociativeOp{
		Pattern: AssociativePattern{
			Name:          candidate.Name,
			Ops:           ops,
			Identities:    identities,
			IsCommutative: candidate.IsCommutative,
		},
		Xs:            xs,
		Ys:            ys,
		IsAssociative: true,
	}
}
