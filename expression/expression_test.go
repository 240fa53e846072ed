package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelsql/scalarexpr/catalog"
	"github.com/kestrelsql/scalarexpr/optoken"
	"github.com/kestrelsql/scalarexpr/types"
	"github.com/kestrelsql/scalarexpr/value"
)

func intCol(name string) catalog.ColumnRef {
	return catalog.NewSynthetic(name, types.New(types.Integer))
}

func intConst(n int64) *ScalarExpression {
	return NewConstant(value.New(n, types.New(types.Integer)))
}

func TestFieldAccessorsPanicOnWrongKind(t *testing.T) {
	c := NewConstant(value.New(int64(1), types.New(types.Integer)))
	require.Panics(t, func() { c.Left() })
	require.Panics(t, func() { c.Column() })

	col := NewColumnRef(intCol("a"))
	require.Panics(t, func() { col.Constant() })
}

func TestAliasNameVsExprMutualExclusion(t *testing.T) {
	base := NewColumnRef(intCol("a"))
	named := NewAliasName(base, "x")
	name, ok := named.AliasName()
	require.True(t, ok)
	require.Equal(t, "x", name)
	require.Nil(t, named.AliasExpr())

	labelExpr := NewColumnRef(intCol("label"))
	exprAlias := NewAliasExpr(base, labelExpr)
	_, ok = exprAlias.AliasName()
	require.False(t, ok)
	require.Same(t, labelExpr, exprAlias.AliasExpr())
}

func TestBinaryFieldAccess(t *testing.T) {
	left := NewColumnRef(intCol("a"))
	right := intConst(1)
	op, err := optoken.FromBinaryToken("+")
	require.NoError(t, err)
	bin := NewBinary(op, left, right, types.New(types.Integer))

	require.Equal(t, KindBinary, bin.Kind())
	require.Same(t, left, bin.Left())
	require.Same(t, right, bin.Right())
	require.True(t, bin.BinaryOp().Is(optoken.BinaryPlus.Kind()))
}

func TestNewEmptyOnlyReadableAsKind(t *testing.T) {
	empty := NewEmpty()
	require.Equal(t, KindEmpty, empty.Kind())
	require.Panics(t, func() { empty.Expr() })
}
