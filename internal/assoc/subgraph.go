package assoc

import (
	"fmt"
	"sort"

	"github.com/sunholo/assocprove/internal/errors"
	"github.com/sunholo/assocprove/internal/ir"
)

// dependencyGraph is C5's view of the tuple: vertex i has
// an edge to j when element i's body references a self-call at index j,
// including the self-loop i->i recorded whenever element i has its own
// x_part.
type dependencyGraph struct {
	n     int
	edges []map[int]bool
}

func buildDependencyGraph(xParts []ir.Expr, xDeps []map[int]bool) *dependencyGraph {
	n := len(xParts)
	g := &dependencyGraph{n: n, edges: make([]map[int]bool, n)}
	for i := 0; i < n; i++ {
		g.edges[i] = map[int]bool{}
		if xParts[i] != nil {
			g.edges[i][i] = true
		}
		for j := range xDeps[i] {
			g.edges[i][j] = true
		}
	}
	return g
}

// reach computes the set of indices transitively reachable from i,
//"transitive closure". i is always included, whether or
// not it has a self-loop edge, since an index is trivially reachable
// from itself in zero steps.
func (g *dependencyGraph) reach(i int) map[int]bool {
	seen := map[int]bool{i: true}
	stack := []int{i}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for j := range g.edges[cur] {
			if !seen[j] {
				seen[j] = true
				stack = append(stack, j)
			}
		}
	}
	return seen
}

// hasCrossElementEdges reports whether the graph has any edge i->j with
// j != i ("if graph has no cross-element edges or N ==
// 1" shortcut condition).
func (g *dependencyGraph) hasCrossElementEdges() bool {
	for i, js := range g.edges {
		for j := range js {
			if j != i {
				return true
			}
		}
	}
	return false
}

// minimalSubgraphs implementssubgraph extraction:
// discard any reach(i) that is a proper subset of some other reach(j),
// deduplicate what remains, and return each surviving set sorted
// ascending.
func minimalSubgraphs(g *dependencyGraph) [][]int {
	reaches := make([]map[int]bool, g.n)
	for i := 0; i < g.n; i++ {
		reaches[i] = g.reach(i)
	}

	keep := make([]bool, g.n)
	for i := range keep {
		keep[i] = true
	}
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			if i == j {
				continue
			}
			if isProperSubset(reaches[i], reaches[j]) {
				keep[i] = false
			}
		}
	}

	seenKeys := map[string]bool{}
	var out [][]int
	for i := 0; i < g.n; i++ {
		if !keep[i] {
			continue
		}
		s := sortedIndices(reaches[i])
		key := fmt.Sprint(s)
		if seenKeys[key] {
			continue
		}
		seenKeys[key] = true
		out = append(out, s)
	}
	return out
}

func isProperSubset(a, b map[int]bool) bool {
	if len(a) >= len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func sortedIndices(s map[int]bool) []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// proveBySubgraphs implements the remainder of C5: per-subgraph proof
// via C4, plus a merge pass that checks every index written by more
// than one subgraph agrees. A subgraph larger than 2 or a subgraph C4
// cannot match fails the whole prover — not a fatal assertion, just the
// ordinary "could not prove it" outcome.
func proveBySubgraphs(tr *tracer, g *dependencyGraph, exprs, xParts []ir.Expr, opXNames, opYNames []string, table []AssociativePattern) (AssociativeOp, bool) {
	n := g.n
	ops := make([]ir.Expr, n)
	identities := make([]ir.Expr, n)
	xs := make([]Replacement, n)
	ys := make([]Replacement, n)
	written := make([]bool, n)
	commutative := true

	subgraphs := minimalSubgraphs(g)
	tr.logCount(2, "C5 minimal subgraphs", len(subgraphs))

	for _, s := range subgraphs {
		if len(s) > 2 {
			tr.reject(errors.ASC003, "subgraph", s, "subgraph %v exceeds the supported size of 2", s)
			return AssociativeOp{}, false
		}

		subExprs := make([]ir.Expr, len(s))
		subXParts := make([]ir.Expr, len(s))
		subXNames := make([]string, len(s))
		subYNames := make([]string, len(s))
		for k, idx := range s {
			subExprs[k] = exprs[idx]
			subXParts[k] = xParts[idx]
			subXNames[k] = opXNames[idx]
			subYNames[k] = opYNames[idx]
		}

		var op AssociativeOp
		var ok bool
		if len(s) == 1 {
			var res elementResult
			res, ok = extractSingleElement(tr, subExprs[0], subXParts[0], subXNames[0], subYNames[0], table)
			if ok {
				op = AssociativeOp{
					Pattern: AssociativePattern{Ops: []ir.Expr{res.Op}, Identities: []ir.Expr{res.Identity}, IsCommutative: res.Commutative},
					Xs:      []Replacement{res.X},
					Ys:      []Replacement{res.Y},
				}
			}
		} else {
			op, ok = matchPatternTable(tr, subExprs, subXParts, subXNames, subYNames, table)
		}
		if !ok {
			tr.reject(errors.ASC002, "subgraph", s, "subgraph %v: no pattern matched", s)
			return AssociativeOp{}, false
		}
		tr.record("subgraph", s, fmt.Sprintf("matched pattern %q", op.Pattern.Name))

		for k, idx := range s {
			if written[idx] {
				if !ir.Equal(ops[idx], op.Pattern.Ops[k]) ||
					!ir.Equal(identities[idx], op.Pattern.Identities[k]) ||
					!replacementEqual(xs[idx], op.Xs[k]) ||
					!replacementEqual(ys[idx], op.Ys[k]) {
					tr.reject(errors.ASC004, "subgraph", []int{idx}, "conflicting results for index %d across overlapping subgraphs", idx)
					return AssociativeOp{}, false
				}
				continue
			}
			ops[idx] = op.Pattern.Ops[k]
			identities[idx] = op.Pattern.Identities[k]
			xs[idx] = op.Xs[k]
			ys[idx] = op.Ys[k]
			written[idx] = true
		}
		commutative = commutative && op.Pattern.IsCommutative
	}

	for i := 0; i < n; i++ {
		if !written[i] {
			fatalAssertion(errors.FAT002, "subgraph", "index %d covered by no minimal subgraph", i)
		}
	}

	return AssociativeOp{
		Pattern: AssociativePattern{
			Name:          "subgraph",
			Ops:           ops,
			Identities:    identities,
			IsCommutative: commutative,
		},
		Xs:            xs,
		Ys:            ys,
		IsAssociative: true,
	}, true
}

func replacementEqual(a, b Replacement) bool {
	if a.Var != b.Var {
		return false
	}
	if a.Expr == nil || b.Expr == nil {
		return a.Expr == nil && b.Expr == nil
	}
	return ir.Equal(a.Expr, b.Expr)
}
