// Package ir is the expression intermediate representation the
// associativity prover operates over. It also carries the IR library's
// collaborators: a simplifier, CSE, let-substitution, a single-variable
// linear solver, a wildcard matcher, free-variable queries, structural
// equality, and a fresh-name generator.
//
// Expr nodes are immutable once built; every rewrite in this package
// constructs new nodes rather than mutating in place, so a tree may be
// shared by multiple parents without risk.
package ir

import "fmt"

// Expr is the base interface for every expression variant this package
// defines. Equality is structural modulo alpha-renaming of Let-bound
// names; see Equal.
type Expr interface {
	Type() Type
	String() string
	exprNode()
}

// CallKind distinguishes a self-recursive call to the function under
// proof (Internal) from any other kind of call. Only Internal calls to
// the function being defined are eligible for self-reference rewriting;
// any other kind makes the update unsolvable.
type CallKind int

const (
	CallInternal CallKind = iota
	CallExtern
	CallPureExtern
)

func (k CallKind) String() string {
	switch k {
	case CallInternal:
		return "internal"
	case CallExtern:
		return "extern"
	case CallPureExtern:
		return "pure_extern"
	default:
		return "unknown"
	}
}

// Op enumerates the binary/unary operators an expression tree may use.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpMod Op = "%"
	OpMin Op = "min"
	OpMax Op = "max"
	OpAnd Op = "&&"
	OpOr  Op = "||"
	OpNot Op = "!"
	OpEQ  Op = "=="
	OpNE  Op = "!="
	OpLT  Op = "<"
	OpLE  Op = "<="
	OpGT  Op = ">"
	OpGE  Op = ">="
)

// Commutative reports whether swapping operands of op preserves meaning.
// Used by the solver (SolveExpression).
func (op Op) Commutative() bool {
	switch op {
	case OpAdd, OpMul, OpMin, OpMax, OpAnd, OpOr, OpEQ, OpNE:
		return true
	default:
		return false
	}
}

// Associative reports whether op's own tree shape can be re-associated,
// i.e. (a op b) op c == a op (b op c) as a *syntactic* rewrite rule usable
// by SolveExpression while hunting for the self-reference. This is a
// conservative, purely structural notion — it does not certify semantic
// associativity on its own (that is the prover's job).
func (op Op) Associative() bool {
	switch op {
	case OpAdd, OpMul, OpMin, OpMax, OpAnd, OpOr:
		return true
	default:
		return false
	}
}

// --- literals ---

type IntLit struct {
	typ   Type
	Value int64
}

func NewIntLit(t Type, v int64) *IntLit { return &IntLit{typ: t, Value: v} }
func (l *IntLit) Type() Type            { return l.typ }
func (l *IntLit) String() string        { return fmt.Sprintf("%d", l.Value) }
func (*IntLit) exprNode()               {}

type UIntLit struct {
	typ   Type
	Value uint64
}

func NewUIntLit(t Type, v uint64) *UIntLit { return &UIntLit{typ: t, Value: v} }
func (l *UIntLit) Type() Type              { return l.typ }
func (l *UIntLit) String() string          { return fmt.Sprintf("%du", l.Value) }
func (*UIntLit) exprNode()                 {}

type FloatLit struct {
	typ   Type
	Value float64
}

func NewFloatLit(t Type, v float64) *FloatLit { return &FloatLit{typ: t, Value: v} }
func (l *FloatLit) Type() Type                { return l.typ }
func (l *FloatLit) String() string            { return fmt.Sprintf("%gf", l.Value) }
func (*FloatLit) exprNode()                   {}

type StringLit struct {
	Value string
}

func NewStringLit(v string) *StringLit { return &StringLit{Value: v} }
func (l *StringLit) Type() Type        { return Str() }
func (l *StringLit) String() string    { return fmt.Sprintf("%q", l.Value) }
func (*StringLit) exprNode()           {}

// --- variables ---

// Variable is a typed variable reference: a function parameter, a
// Let-bound name, a freshly-synthesized self-reference placeholder
// (_x_i), or a wildcard (x0, y0, ...) when the tree is used as a pattern.
type Variable struct {
	Name string
	typ  Type
}

func NewVariable(name string, t Type) *Variable { return &Variable{Name: name, typ: t} }
func (v *Variable) Type() Type                  { return v.typ }
func (v *Variable) String() string              { return v.Name }
func (*Variable) exprNode()                     {}

// --- cast ---

type Cast struct {
	typ   Type
	Value Expr
}

func NewCast(t Type, v Expr) *Cast { return &Cast{typ: t, Value: v} }
func (c *Cast) Type() Type         { return c.typ }
func (c *Cast) String() string     { return fmt.Sprintf("cast<%s>(%s)", c.typ, c.Value) }
func (*Cast) exprNode()            {}

// --- self-call ---

// Call is a call expression. When Name equals the function under proof
// and Kind is CallInternal, it is potentially a self-reference; see
// internal/assoc's rewriter.
type Call struct {
	typ        Type
	Name       string
	Args       []Expr
	ValueIndex int
	Kind       CallKind
}

func NewCall(t Type, name string, args []Expr, valueIndex int, kind CallKind) *Call {
	return &Call{typ: t, Name: name, Args: args, ValueIndex: valueIndex, Kind: kind}
}
func (c *Call) Type() Type { return c.typ }
func (c *Call) String() string {
	return fmt.Sprintf("%s(%s)[%d]", c.Name, joinExprs(c.Args), c.ValueIndex)
}
func (*Call) exprNode() {}

func joinExprs(es []Expr) string {
	s := ""
	for i, e := range es {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s
}

// --- binary / unary ops ---

// BinOp covers Add, Sub, Mul, Div, Mod, Min, Max, And, Or, EQ, NE, LT, LE,
// GT, GE: every binary variant besides Select and Let.
type BinOp struct {
	typ  Type
	Op   Op
	X, Y Expr
}

func NewBinOp(op Op, x, y Expr) *BinOp {
	return &BinOp{typ: resultType(op, x, y), Op: op, X: x, Y: y}
}

func resultType(op Op, x, y Expr) Type {
	switch op {
	case OpAnd, OpOr, OpEQ, OpNE, OpLT, OpLE, OpGT, OpGE:
		return Bool()
	default:
		return x.Type()
	}
}

func (b *BinOp) Type() Type     { return b.typ }
func (b *BinOp) String() string { return fmt.Sprintf("(%s %s %s)", b.X, b.Op, b.Y) }
func (*BinOp) exprNode()        {}

// UnOp covers Not (logical negation). Spec.md §3 lists no other unary
// operator.
type UnOp struct {
	Op Op
	X  Expr
}

func NewUnOp(op Op, x Expr) *UnOp { return &UnOp{Op: op, X: x} }
func (u *UnOp) Type() Type        { return Bool() }
func (u *UnOp) String() string    { return fmt.Sprintf("%s%s", u.Op, u.X) }
func (*UnOp) exprNode()           {}

// --- select / let ---

type Select struct {
	Cond, True, False Expr
}

func NewSelect(cond, t, f Expr) *Select { return &Select{Cond: cond, True: t, False: f} }
func (s *Select) Type() Type            { return s.True.Type() }
func (s *Select) String() string {
	return fmt.Sprintf("select(%s, %s, %s)", s.Cond, s.True, s.False)
}
func (*Select) exprNode() {}

type Let struct {
	Name  string
	Value Expr
	Body  Expr
}

func NewLet(name string, value, body Expr) *Let { return &Let{Name: name, Value: value, Body: body} }
func (l *Let) Type() Type                       { return l.Body.Type() }
func (l *Let) String() string {
	return fmt.Sprintf("let %s = %s in %s", l.Name, l.Value, l.Body)
}
func (*Let) exprNode() {}
