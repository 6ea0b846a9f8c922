package assoc

import "github.com/sunholo/assocprove/internal/ir"

// canonicalise implements C2: simplify, eliminate common
// subexpressions, inline every Let so the result is let-free, then ask
// the external linear solver to migrate opXName to the left of the
// outermost operator. The solver's failure is not fatal — canon.go
// simply leaves the expression as the simplified/let-free form and lets
// C3/C4 attempt to match it as-is.
func canonicalise(tr *tracer, expr ir.Expr, opXName string, gen *ir.Generator) ir.Expr {
	e := ir.Simplify(expr)
	e = ir.CommonSubexpressionElimination(e, gen)
	e = ir.SubstituteInAllLets(e)
	e = ir.Simplify(e)

	if opXName != "" && ir.ExprUsesVar(e, opXName) {
		solved := ir.SolveExpression(e, opXName)
		if !solved.Failed {
			e = solved.Result
		} else {
			tr.logf(3, "C2 solve_expression failed to isolate %s, leaving shape unchanged", opXName)
		}
	}
	tr.logf(4, "C2 canonicalised %s -> %s", opXName, e)
	return e
}
