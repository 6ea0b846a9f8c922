package ir

// SolveResult is the outcome of SolveExpression: Failed is true when the
// variable could not be isolated, in which case Result equals the input
// expression unchanged and the prover continues with the unsolved form.
type SolveResult struct {
	Result Expr
	Failed bool
}

// SolveExpression rewrites e so that varName appears, where possible, as
// the left operand of the outermost binary operator — flattening nested
// associative/commutative operators and swapping commutative operands as
// needed. It is the single-variable linear solver the canonicaliser
// depends on to normalise `x + 3` and `3 + x` to the same shape and to
// flatten `(a + x) + b` to `x + (a + b)`.
func SolveExpression(e Expr, varName string) SolveResult {
	if !ExprUsesVar(e, varName) {
		return SolveResult{Result: e, Failed: true}
	}
	if v, ok := e.(*Variable); ok && v.Name == varName {
		return SolveResult{Result: e, Failed: false}
	}
	bin, ok := e.(*BinOp)
	if !ok {
		return SolveResult{Result: e, Failed: true}
	}

	leftHas := ExprUsesVar(bin.X, varName)
	rightHas := ExprUsesVar(bin.Y, varName)

	switch {
	case leftHas && rightHas:
		// varName appears on both sides; not a linear occurrence, can't
		// isolate it as a single operand.
		return SolveResult{Result: e, Failed: true}

	case !leftHas && !rightHas:
		return SolveResult{Result: e, Failed: true}

	case rightHas && !leftHas:
		if !bin.Op.Commutative() {
			// e.g. `a - x`: x is on the right of a non-commutative
			// operator, which is a structurally different operation from
			// `x - a` and is not something the solver may rewrite.
			return SolveResult{Result: e, Failed: true}
		}
		return SolveExpression(NewBinOp(bin.Op, bin.Y, bin.X), varName)

	default: // leftHas && !rightHas
		if v, ok := bin.X.(*Variable); ok && v.Name == varName {
			return SolveResult{Result: e, Failed: false}
		}
		inner, ok := bin.X.(*BinOp)
		if !ok || inner.Op != bin.Op || !bin.Op.Associative() {
			return SolveResult{Result: e, Failed: true}
		}
		// (v ⊕ a) ⊕ Y  ==  v ⊕ (a ⊕ Y), for associative ⊕.
		solvedInner := SolveExpression(inner, varName)
		if solvedInner.Failed {
			return SolveResult{Result: e, Failed: true}
		}
		solvedBin, ok := solvedInner.Result.(*BinOp)
		if !ok {
			return SolveResult{Result: e, Failed: true}
		}
		v, ok := solvedBin.X.(*Variable)
		if !ok || v.Name != varName {
			return SolveResult{Result: e, Failed: true}
		}
		return SolveResult{
			Result: NewBinOp(bin.Op, v, NewBinOp(bin.Op, solvedBin.Y, bin.Y)),
			Failed: false,
		}
	}
}
