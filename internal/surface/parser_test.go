package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/assocprove/internal/ir"
)

func TestParseExpr_Sum(t *testing.T) {
	e, errs := ParseExpr("y + z + f(i)[0]", "f")
	require.Empty(t, errs)

	bin, ok := e.(*ir.BinOp)
	require.True(t, ok)
	assert.Equal(t, ir.OpAdd, bin.Op)

	call, ok := bin.Y.(*ir.Call)
	require.True(t, ok)
	assert.Equal(t, "f", call.Name)
	assert.Equal(t, ir.CallInternal, call.Kind)
	assert.Equal(t, 0, call.ValueIndex)
}

func TestParseExpr_SelectAndExternalCall(t *testing.T) {
	e, errs := ParseExpr("select(f(i)[0] < g(i), f(i)[1], rx)", "f")
	require.Empty(t, errs)

	sel, ok := e.(*ir.Select)
	require.True(t, ok)

	cond, ok := sel.Cond.(*ir.BinOp)
	require.True(t, ok)
	assert.Equal(t, ir.OpLT, cond.Op)

	g, ok := cond.Y.(*ir.Call)
	require.True(t, ok)
	assert.Equal(t, ir.CallPureExtern, g.Kind)
}

func TestParseExpr_CastAndMin(t *testing.T) {
	e, errs := ParseExpr("min(f(i)[0], y + cast<i16>(z))", "f")
	require.Empty(t, errs)

	bin, ok := e.(*ir.BinOp)
	require.True(t, ok)
	assert.Equal(t, ir.OpMin, bin.Op)

	add, ok := bin.Y.(*ir.BinOp)
	require.True(t, ok)
	cast, ok := add.Y.(*ir.Cast)
	require.True(t, ok)
	assert.Equal(t, ir.Int(16), cast.Type())
}

func TestParseExpr_ReportsTrailingGarbage(t *testing.T) {
	_, errs := ParseExpr("1 + 2 )", "f")
	assert.NotEmpty(t, errs)
}
