package assoc

import "github.com/sunholo/assocprove/internal/ir"

// wx/wy construct the wildcard variables a table entry is written
// against. The type carried by a wildcard Variable is never inspected by
// ir.ExprMatch (wildcards match any expr regardless of type), so Int32 is
// used as a placeholder throughout this file.
func wx(i int) ir.Expr { return ir.NewVariable(wildcardX(i), ir.Int32) }
func wy(i int) ir.Expr { return ir.NewVariable(wildcardY(i), ir.Int32) }

// defaultTable is the built-in, always-consulted pattern table: a static
// ordered list of AssociativePatterns whose contents are an
// implementation detail. Entries with more constraints are listed
// first, so a more specific shape never loses to a looser one that
// happens to match the same expression.
var defaultTable = []AssociativePattern{
	{
		// 1-D argmin: carries (running minimum, index of running minimum).
		// Must precede any looser arity-2 min-shaped entry because its
		// second component pins down the select/compare shape exactly.
		Name: "argmin",
		Ops: []ir.Expr{
			ir.NewBinOp(ir.OpMin, wx(0), wy(0)),
			ir.NewSelect(ir.NewBinOp(ir.OpLT, wx(0), wy(0)), wx(1), wy(1)),
		},
		Identities: []ir.Expr{
			ir.Int32.Max(),
			ir.NewIntLit(ir.Int32, 0),
		},
		IsCommutative: false,
	},
	{
		// 1-D argmax, the dual of argmin.
		Name: "argmax",
		Ops: []ir.Expr{
			ir.NewBinOp(ir.OpMax, wx(0), wy(0)),
			ir.NewSelect(ir.NewBinOp(ir.OpGT, wx(0), wy(0)), wx(1), wy(1)),
		},
		Identities: []ir.Expr{
			ir.Int32.Min(),
			ir.NewIntLit(ir.Int32, 0),
		},
		IsCommutative: false,
	},
	{
		// Complex multiplication: (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
		Name: "complex_mul",
		// The second component's operand order (x0*y1 + x1*y0, not
		// x1*y0 + x0*y1) matches the literal shape the canonicaliser
		// leaves in place: SolveExpression's commutative swap for the
		// *other* tuple index's own variable fails to fully reassociate
		// through the enclosing Mul, so C2 keeps the original, unswapped
		// operand order rather than the partially-reassociated one.
		Ops: []ir.Expr{
			ir.NewBinOp(ir.OpSub, ir.NewBinOp(ir.OpMul, wx(0), wy(0)), ir.NewBinOp(ir.OpMul, wx(1), wy(1))),
			ir.NewBinOp(ir.OpAdd, ir.NewBinOp(ir.OpMul, wx(0), wy(1)), ir.NewBinOp(ir.OpMul, wx(1), wy(0))),
		},
		Identities: []ir.Expr{
			ir.NewIntLit(ir.Int32, 1),
			ir.NewIntLit(ir.Int32, 0),
		},
		IsCommutative: true,
	},
}

// singleElementTable holds arity-1 entries consulted by C3's fallback
// path, which dispatches to C4 with a single-element table when the
// built-in i32 operator table doesn't match. Kept separate from
// defaultTable because C3 narrows its candidate set to exactly this
// arity and these shapes are otherwise unreachable (any arity-1 shape
// the built-in operator table already covers is matched before this
// table is ever consulted).
var singleElementTable = []AssociativePattern{
	{
		// Saturating combine for a running "at least one side is zero"
		// accumulator expressed as select(x0==0, 0, y0) — equivalent to
		// a custom zero-annihilating operator that standard Add/Mul don't
		// capture: once any zero has appeared, the reduction stays zero.
		Name: "zero_annihilating_select",
		Ops: []ir.Expr{
			ir.NewSelect(ir.NewBinOp(ir.OpEQ, wx(0), ir.NewIntLit(ir.Int32, 0)), ir.NewIntLit(ir.Int32, 0), wy(0)),
		},
		Identities: []ir.Expr{
			// Any nonzero e satisfies op(e, y) == y (a left identity only:
			// op(x, e) is 0 or e, not x); the table fixes 1.
			ir.NewIntLit(ir.Int32, 1),
		},
		IsCommutative: false,
	},
}

// BuiltinTable returns the built-in, always-consulted pattern table. It
// is exported so the CLI and tests can display or property-test it
// without reaching into package internals.
func BuiltinTable() []AssociativePattern {
	out := make([]AssociativePattern, len(defaultTable))
	copy(out, defaultTable)
	return out
}

// resolveTable is C6's view of the static ordered list of
// AssociativePatterns for every supported (element-type, arity)
// combination: the arity-2+ built-ins, the arity-1 built-ins C3 falls
// back to, and any caller-supplied supplementary entries, in that
// order. Every consumer (C3's fallback, C4, C5's singleton path)
// filters this single list by arity via AssociativePattern.Arity(), so
// one combined table suffices.
func resolveTable(opts Options) []AssociativePattern {
	table := append([]AssociativePattern{}, defaultTable...)
	table = append(table, singleElementTable...)
	table = append(table, opts.ExtraPatterns...)
	return table
}
