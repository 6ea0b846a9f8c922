package ir

import (
	"fmt"
	"math"
)

// Kind identifies the primitive family a Type belongs to.
type Kind int

const (
	KindInt Kind = iota
	KindUInt
	KindFloat
	KindBool
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUInt:
		return "uint"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Type is a primitive scalar type: a signed/unsigned integer of width
// 1/8/16/32/64, a float16/32/64, a bool, or a string. Bool is modeled as
// its own kind rather than as int(1) because it has no min/max of
// arithmetic significance.
type Type struct {
	Kind  Kind
	Width int // bit width for Int/UInt/Float; unused for Bool/String
}

func Int(width int) Type    { return Type{Kind: KindInt, Width: width} }
func UInt(width int) Type   { return Type{Kind: KindUInt, Width: width} }
func Float(width int) Type  { return Type{Kind: KindFloat, Width: width} }
func Bool() Type            { return Type{Kind: KindBool} }
func Str() Type             { return Type{Kind: KindString} }

var (
	Int32  = Int(32)
	Int64  = Int(64)
	UInt32 = UInt(32)
)

func (t Type) IsInt() bool    { return t.Kind == KindInt || t.Kind == KindUInt }
func (t Type) IsSigned() bool { return t.Kind == KindInt }
func (t Type) IsFloat() bool  { return t.Kind == KindFloat }
func (t Type) IsBool() bool   { return t.Kind == KindBool }
func (t Type) IsString() bool { return t.Kind == KindString }
func (t Type) Bits() int      { return t.Width }

func (t Type) Equals(o Type) bool {
	return t.Kind == o.Kind && t.Width == o.Width
}

func (t Type) String() string {
	switch t.Kind {
	case KindBool, KindString:
		return t.Kind.String()
	default:
		return fmt.Sprintf("%s%d", t.Kind, t.Width)
	}
}

// Min returns the literal expression for this type's minimum representable
// value. Used to synthesize the identity of Max (type.min) and as a
// building block for type.max below.
func (t Type) Min() Expr {
	switch t.Kind {
	case KindInt:
		return &IntLit{typ: t, Value: signedMin(t.Width)}
	case KindUInt:
		return &UIntLit{typ: t, Value: 0}
	case KindFloat:
		return &FloatLit{typ: t, Value: negInf}
	default:
		panic(fmt.Sprintf("ir: Type.Min() undefined for %s", t))
	}
}

// Max returns the literal expression for this type's maximum representable
// value; it is the identity element for Min, just as Min is for Max.
func (t Type) Max() Expr {
	switch t.Kind {
	case KindInt:
		return &IntLit{typ: t, Value: signedMax(t.Width)}
	case KindUInt:
		return &UIntLit{typ: t, Value: unsignedMax(t.Width)}
	case KindFloat:
		return &FloatLit{typ: t, Value: posInf}
	default:
		panic(fmt.Sprintf("ir: Type.Max() undefined for %s", t))
	}
}

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

func signedMax(width int) int64 {
	if width >= 64 {
		return 1<<63 - 1
	}
	return int64(1)<<(uint(width)-1) - 1
}

func signedMin(width int) int64 {
	if width >= 64 {
		return -1 << 63
	}
	return -(int64(1) << (uint(width) - 1))
}

func unsignedMax(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(width) - 1
}
