package assoc

import "github.com/sunholo/assocprove/internal/ir"

// builtinOp describes one row of the built-in operator table.
// canonicalOp is the operator recorded in the synthesized pattern; for
// every row except Sub it equals matchOp. Sub is matched as-is but
// reported in the canonical `x + y` form with y negated — it is
// associative only after this normalisation.
type builtinOp struct {
	matchOp      ir.Op
	canonicalOp  ir.Op
	identity     func(ir.Type) ir.Expr
	commutative  bool
	negateY      bool
}

var builtinOps = []builtinOp{
	{matchOp: ir.OpAdd, canonicalOp: ir.OpAdd, identity: zeroIdentity, commutative: true},
	{matchOp: ir.OpSub, canonicalOp: ir.OpAdd, identity: zeroIdentity, commutative: false, negateY: true},
	{matchOp: ir.OpMul, canonicalOp: ir.OpMul, identity: oneIdentity, commutative: true},
	{matchOp: ir.OpMin, canonicalOp: ir.OpMin, identity: func(t ir.Type) ir.Expr { return t.Max() }, commutative: true},
	{matchOp: ir.OpMax, canonicalOp: ir.OpMax, identity: func(t ir.Type) ir.Expr { return t.Min() }, commutative: true},
	{matchOp: ir.OpAnd, canonicalOp: ir.OpAnd, identity: func(ir.Type) ir.Expr { return litTrue() }, commutative: true},
	{matchOp: ir.OpOr, canonicalOp: ir.OpOr, identity: func(ir.Type) ir.Expr { return litFalse() }, commutative: true},
}

func zeroIdentity(t ir.Type) ir.Expr {
	switch {
	case t.IsFloat():
		return ir.NewFloatLit(t, 0)
	case t.Kind == ir.KindUInt:
		return ir.NewUIntLit(t, 0)
	default:
		return ir.NewIntLit(t, 0)
	}
}

func oneIdentity(t ir.Type) ir.Expr {
	switch {
	case t.IsFloat():
		return ir.NewFloatLit(t, 1)
	case t.Kind == ir.KindUInt:
		return ir.NewUIntLit(t, 1)
	default:
		return ir.NewIntLit(t, 1)
	}
}

func litTrue() ir.Expr  { return ir.NewIntLit(ir.Bool(), 1) }
func litFalse() ir.Expr { return ir.NewIntLit(ir.Bool(), 0) }

// elementResult is what extractSingleElement (C3) and matchSubgraph (C4)
// both produce for one tuple index, before C6 assembles the final
// per-tuple AssociativeOp.
type elementResult struct {
	Op         ir.Expr // pattern.Ops[i], already in canonical x/y-wildcard form... here substituted to opXName/opYName directly since this is a single-index result, not a template
	Identity   ir.Expr
	X          Replacement
	Y          Replacement
	Commutative bool
}

// extractSingleElement implements C3 for one canonicalised
// tuple element. ok is false when neither a built-in operator nor (for
// i32 elements) a single-element pattern-table lookup succeeds.
func extractSingleElement(tr *tracer, e ir.Expr, xPart ir.Expr, opXName, opYName string, table []AssociativePattern) (elementResult, bool) {
	if xPart == nil {
		// No self-reference at this index: trivially associative via the
		// "always return y" operator.
		tr.logf(3, "C3 index has no self-reference, trivial y-pattern")
		return elementResult{
			Op:       ir.NewVariable(opYName, e.Type()),
			Identity: zeroIdentity(e.Type()),
			X:        Replacement{},
			Y:        Replacement{Var: opYName, Expr: e},
		}, true
	}

	bin, ok := e.(*ir.BinOp)
	if ok {
		xVar := ir.NewVariable(opXName, xPart.Type())
		for _, row := range builtinOps {
			if bin.Op != row.matchOp {
				continue
			}
			if !ir.Equal(bin.X, xVar) {
				continue
			}
			if ir.ExprUsesVar(bin.Y, opXName) {
				continue
			}
			y := bin.Y
			if row.negateY {
				y = negate(y)
			}
			tr.logf(3, "C3 matched built-in op %s", row.matchOp)
			return elementResult{
				Op:          ir.NewBinOp(row.canonicalOp, ir.NewVariable(opXName, xPart.Type()), ir.NewVariable(opYName, y.Type())),
				Identity:    row.identity(xPart.Type()),
				X:           Replacement{Var: opXName, Expr: xPart},
				Y:           Replacement{Var: opYName, Expr: y},
				Commutative: row.commutative,
			}, true
		}
	}

	if xPart.Type().Kind == ir.KindInt && xPart.Type().Bits() == 32 {
		tr.logf(3, "C3 falling back to single-element pattern table for i32")
		if res, ok := matchSingleElementTable(tr, e, xPart, opXName, opYName, table); ok {
			return res, true
		}
	}
	return elementResult{}, false
}

func negate(e ir.Expr) ir.Expr {
	t := e.Type()
	return ir.Simplify(ir.NewBinOp(ir.OpSub, zeroIdentity(t), e))
}

// matchSingleElementTable narrows the pattern table to arity-1 entries
// and reuses C4's full matching machinery, dispatching to it with a
// single-element table keyed on the outermost constructor.
func matchSingleElementTable(tr *tracer, e ir.Expr, xPart ir.Expr, opXName, opYName string, table []AssociativePattern) (elementResult, bool) {
	op, ok := matchPatternTable(tr, []ir.Expr{e}, []ir.Expr{xPart}, []string{opXName}, []string{opYName}, filterArity(table, 1))
	if !ok {
		return elementResult{}, false
	}
	return elementResult{
		Op:          op.Pattern.Ops[0],
		Identity:    op.Pattern.Identities[0],
		X:           op.Xs[0],
		Y:           op.Ys[0],
		Commutative: op.Pattern.IsCommutative,
	}, true
}

func filterArity(table []AssociativePattern, n int) []AssociativePattern {
	var out []AssociativePattern
	for _, p := range table {
		if p.Arity() == n {
			out = append(out, p)
		}
	}
	return out
}
