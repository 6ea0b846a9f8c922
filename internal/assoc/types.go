// Package assoc implements the associativity prover: given an update
// definition of a pure, possibly tuple-valued function in terms of
// itself and other inputs, it decides whether the update can be
// reinterpreted as repeated application of an associative binary
// operator with a known identity.
//
// The pipeline is C1 (self-reference rewriter) -> C2 (canonicaliser) ->
// C3 (single-element extractor) / C5+C4 (dependency solver + pattern
// matcher for tuples with cross-element self-reference) -> a validated
// AssociativeOp. Prove is the only entry point a caller needs.
package assoc

import "github.com/sunholo/assocprove/internal/ir"

// Replacement is the concrete sub-expression a wildcard or self-reference
// slot binds to. An empty Var with a nil Expr encodes "no self-reference
// at this tuple index".
type Replacement struct {
	Var  string
	Expr ir.Expr
}

// Defined reports whether this replacement names an actual binding.
func (r Replacement) Defined() bool { return r.Var != "" }

// AssociativePattern is a template expressed with wildcards x0..x_{N-1}
// and y0..y_{N-1}, one Ops/Identities entry per tuple element, alongside
// whether the pattern is commutative.
type AssociativePattern struct {
	Name         string // diagnostic only, not part of the proof
	Ops          []ir.Expr
	Identities   []ir.Expr
	IsCommutative bool
}

// Arity is the tuple width this pattern proves associativity for.
func (p AssociativePattern) Arity() int { return len(p.Ops) }

// AssociativeOp is the result value of a proof attempt. When
// IsAssociative is false every other field is meaningless — this is the
// single outcome channel a caller should ever inspect.
type AssociativeOp struct {
	Pattern       AssociativePattern
	Xs            []Replacement
	Ys            []Replacement
	IsAssociative bool
}

// Associative reports the prover's one-bit verdict.
func (op AssociativeOp) Associative() bool { return op.IsAssociative }

// Commutative reports the by-product commutativity the prover is not
// required to establish but reports anyway when it falls out of the
// proof. Meaningless when !IsAssociative.
func (op AssociativeOp) Commutative() bool {
	return op.IsAssociative && op.Pattern.IsCommutative
}

// nonAssociative is the canonical failure value every rejection path
// collapses to.
var nonAssociative = AssociativeOp{}
