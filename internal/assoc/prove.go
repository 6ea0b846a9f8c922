package assoc

import (
	"github.com/sunholo/assocprove/internal/errors"
	"github.com/sunholo/assocprove/internal/ir"
	"github.com/sunholo/assocprove/internal/schema"
)

// Prove is the pure entry point:
// prove_associativity(func_name, args, exprs) -> AssociativeOp. It is
// Prove with default (silent, built-in-table-only) Options; use
// ProveWithOptions for tracing or a supplementary pattern table.
func Prove(funcName string, args []ir.Expr, exprs []ir.Expr) AssociativeOp {
	return ProveWithOptions(funcName, args, exprs, DefaultOptions())
}

// ProveWithOptions implements C6: it sequences C1-C5 over
// every tuple element and returns a validated AssociativeOp, or the
// zero-value non-associative result the instant any element or subgraph
// fails to prove. Verbosity and CollectTrace never change the verdict;
// ExtraPatterns can, since they add candidates that C3's fallback and
// C4 consult after the built-in table.
func ProveWithOptions(funcName string, args []ir.Expr, exprs []ir.Expr, opts Options) AssociativeOp {
	op, _ := proveTraced(funcName, args, exprs, opts)
	return op
}

// ProveTraced behaves exactly like ProveWithOptions, additionally
// returning a machine-readable schema.ProofTrace when opts.CollectTrace
// is set (nil otherwise). The trace is export-only: it never feeds back
// into the proof itself.
func ProveTraced(funcName string, args []ir.Expr, exprs []ir.Expr, opts Options) (AssociativeOp, *schema.ProofTrace) {
	return proveTraced(funcName, args, exprs, opts)
}

func proveTraced(funcName string, args []ir.Expr, exprs []ir.Expr, opts Options) (AssociativeOp, *schema.ProofTrace) {
	n := len(exprs)
	tr := newTracer(opts.Verbosity)
	if opts.CollectTrace {
		tr.trace = schema.NewProofTrace(funcName, n)
	}
	tr.logCount(1, "C6 proving tuple of arity", n)

	lhsArgs := make([]ir.Expr, len(args))
	for i, a := range args {
		lhsArgs[i] = ir.Simplify(a)
	}

	gen := ir.NewGenerator()
	opXNames := make([]string, n)
	opYNames := make([]string, n)
	for i := 0; i < n; i++ {
		opXNames[i] = gen.Fresh("_x")
		opYNames[i] = gen.Fresh("_y")
	}

	canon := make([]ir.Expr, n)
	xParts := make([]ir.Expr, n)
	xDeps := make([]map[int]bool, n)

	// Element processing order is unspecified but deterministic; the
	// reference traverses high-to-low so fresh-name collisions with
	// user-facing names are less likely.
	for i := n - 1; i >= 0; i-- {
		e := ir.Simplify(exprs[i])
		e = ir.CommonSubexpressionElimination(e, gen)
		e = ir.SubstituteInAllLets(e)

		rewritten, res := rewriteSelfReferences(tr, funcName, lhsArgs, i, opXNames, e)
		if !res.IsSolvable {
			tr.reject(errors.ASC001, "rewrite", []int{i}, "self-reference rewrite failed at index %d", i)
			return finishTrace(tr, nonAssociative)
		}
		tr.record("rewrite", []int{i}, "self-reference rewrite succeeded")
		xParts[i] = res.XPart
		xDeps[i] = res.XDependencies
		canon[i] = canonicalise(tr, rewritten, opXNames[i], gen)
		tr.record("canon", []int{i}, "canonicalised")
	}

	g := buildDependencyGraph(xParts, xDeps)
	table := resolveTable(opts)

	if n == 1 || !g.hasCrossElementEdges() {
		return finishTrace(tr, proveElementwise(tr, canon, xParts, opXNames, opYNames, table))
	}

	op, ok := proveBySubgraphs(tr, g, canon, xParts, opXNames, opYNames, table)
	if !ok {
		return finishTrace(tr, nonAssociative)
	}
	return finishTrace(tr, op)
}

func finishTrace(tr *tracer, op AssociativeOp) (AssociativeOp, *schema.ProofTrace) {
	if tr.trace == nil {
		return op, nil
	}
	if op.IsAssociative {
		tr.trace.Verdict = "associative"
	} else {
		tr.trace.Verdict = "not_associative"
	}
	return op, tr.trace
}

// proveElementwise is the independent-case shortcut: every tuple index
// is self-independent (or the tuple is a singleton), so C3 runs
// directly per element with no subgraph analysis.
func proveElementwise(tr *tracer, canon, xParts []ir.Expr, opXNames, opYNames []string, table []AssociativePattern) AssociativeOp {
	n := len(canon)
	ops := make([]ir.Expr, n)
	identities := make([]ir.Expr, n)
	xs := make([]Replacement, n)
	ys := make([]Replacement, n)
	commutative := true

	for i := 0; i < n; i++ {
		res, ok := extractSingleElement(tr, canon[i], xParts[i], opXNames[i], opYNames[i], table)
		if !ok {
			tr.reject(errors.ASC002, "extract", []int{i}, "no associative pattern matched at index %d", i)
			return nonAssociative
		}
		tr.record("extract", []int{i}, "associative pattern matched")
		ops[i] = res.Op
		identities[i] = res.Identity
		xs[i] = res.X
		ys[i] = res.Y
		commutative = commutative && res.Commutative
	}

	return AssociativeOp{
		Pattern: AssociativePattern{
			Name:          "elementwise",
			Ops:           ops,
			Identities:    identities,
			IsCommutative: commutative,
		},
		Xs:            xs,
		Ys:            ys,
		IsAssociative: true,
	}
}
