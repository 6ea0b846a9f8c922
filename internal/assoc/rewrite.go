package assoc

import "github.com/sunholo/assocprove/internal/ir"

// rewriteResult is C1's per-element output: whether the self-reference
// rewrite succeeded, which other tuple indices this element's body
// depends on through self-calls, and the original sub-expression (before
// rewriting) that stood at this element's own self-reference, if any.
type rewriteResult struct {
	IsSolvable    bool
	XDependencies map[int]bool
	XPart         ir.Expr
}

// rewriteSelfReferences implements C1: it replaces every
// self-call `funcName(args)[k]` whose args structurally equal lhsArgs
// with the fresh variable opXNames[k], records which indices k the
// element depends on, and rejects calls that cannot be self-references
// in a sound way (argument mismatch, non-Internal recursive-looking
// call, or a self-call to this very valueIndex appearing inside a
// Select's condition).
func rewriteSelfReferences(tr *tracer, funcName string, lhsArgs []ir.Expr, valueIndex int, opXNames []string, expr ir.Expr) (ir.Expr, rewriteResult) {
	st := &rewriteState{
		funcName:   funcName,
		lhsArgs:    lhsArgs,
		valueIndex: valueIndex,
		opXNames:   opXNames,
		deps:       map[int]bool{},
		ok:         true,
	}
	out := st.visit(expr, false)
	tr.logf(4, "C1 rewrite index=%d solvable=%v deps=%v", valueIndex, st.ok, st.deps)
	return out, rewriteResult{IsSolvable: st.ok, XDependencies: st.deps, XPart: st.xPart}
}

type rewriteState struct {
	funcName   string
	lhsArgs    []ir.Expr
	valueIndex int
	opXNames   []string
	deps       map[int]bool
	xPart      ir.Expr
	ok         bool
}

// visit walks expr. inCond is true exactly while descending into the
// condition of an enclosing Select; it is passed explicitly rather than
// kept as state on rewriteState, to avoid an object-state flag that
// could leak across sibling subtrees.
func (st *rewriteState) visit(expr ir.Expr, inCond bool) ir.Expr {
	if !st.ok {
		return expr // short-circuit: stop doing further work after rejection
	}
	switch e := expr.(type) {
	case *ir.IntLit, *ir.UIntLit, *ir.FloatLit, *ir.StringLit, *ir.Variable:
		return expr
	case *ir.Cast:
		return ir.NewCast(e.Type(), st.visit(e.Value, inCond))
	case *ir.Call:
		if e.Name == st.funcName {
			if e.Kind != ir.CallInternal || !sameArgs(e.Args, st.lhsArgs) {
				st.ok = false
				return expr
			}
			if inCond && e.ValueIndex == st.valueIndex {
				st.ok = false
				return expr
			}
			if e.ValueIndex == st.valueIndex {
				st.xPart = e
			} else {
				st.deps[e.ValueIndex] = true
			}
			if e.ValueIndex < 0 || e.ValueIndex >= len(st.opXNames) {
				st.ok = false
				return expr
			}
			return ir.NewVariable(st.opXNames[e.ValueIndex], e.Type())
		}
		args := make([]ir.Expr, len(e.Args))
		for i, a := range e.Args {
			args[i] = st.visit(a, inCond)
		}
		return ir.NewCall(e.Type(), e.Name, args, e.ValueIndex, e.Kind)
	case *ir.BinOp:
		return ir.NewBinOp(e.Op, st.visit(e.X, inCond), st.visit(e.Y, inCond))
	case *ir.UnOp:
		return ir.NewUnOp(e.Op, st.visit(e.X, inCond))
	case *ir.Select:
		cond := st.visit(e.Cond, true)
		t := st.visit(e.True, false)
		f := st.visit(e.False, false)
		return ir.NewSelect(cond, t, f)
	case *ir.Let:
		value := st.visit(e.Value, inCond)
		body := st.visit(e.Body, inCond)
		return ir.NewLet(e.Name, value, body)
	default:
		return expr
	}
}

func sameArgs(a, b []ir.Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ir.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

