package value

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/kestrelsql/scalarexpr/types"
)

func TestStringRendering(t *testing.T) {
	require.Equal(t, "NULL", Null(types.New(types.Integer)).String())
	require.Equal(t, "1", New(int64(1), types.New(types.Integer)).String())
	require.Equal(t, "'abc'", New("abc", types.NewVarchar(nil, types.Characters)).String())
	require.Equal(t, "true", New(true, types.New(types.Boolean)).String())
	require.Equal(t, "1.5", New(decimal.RequireFromString("1.50"), types.NewDecimal(3, 2)).String())
}

func TestIsNull(t *testing.T) {
	require.True(t, Null(types.New(types.Integer)).IsNull())
	require.False(t, New(int64(1), types.New(types.Integer)).IsNull())
}

func TestLogicalType(t *testing.T) {
	v := New(int64(1), types.New(types.Bigint))
	require.Equal(t, types.Bigint, v.LogicalType().Tag())
}
