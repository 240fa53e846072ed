package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsUnsignedNumeric(t *testing.T) {
	require.True(t, New(UInteger).IsUnsignedNumeric())
	require.True(t, New(UBigint).IsUnsignedNumeric())
	require.False(t, New(Integer).IsUnsignedNumeric())
	require.False(t, New(Boolean).IsUnsignedNumeric())
}

func TestSignedCounterpart(t *testing.T) {
	cases := []struct {
		in  Tag
		out Tag
	}{
		{UTinyint, Tinyint},
		{USmallint, Smallint},
		{UInteger, Integer},
		{UBigint, Bigint},
	}
	for _, c := range cases {
		require.Equal(t, New(c.out), New(c.in).SignedCounterpart())
	}
}

func TestSignedCounterpartPanicsOnNonUnsigned(t *testing.T) {
	require.Panics(t, func() {
		New(Integer).SignedCounterpart()
	})
}

func TestMaxLogicalTypeWidening(t *testing.T) {
	got, err := MaxLogicalType(New(Integer), New(Bigint))
	require.NoError(t, err)
	require.Equal(t, New(Bigint), got)
}

func TestMaxLogicalTypeSameType(t *testing.T) {
	got, err := MaxLogicalType(New(Boolean), New(Boolean))
	require.NoError(t, err)
	require.Equal(t, New(Boolean), got)
}

func TestMaxLogicalTypeNullPropagates(t *testing.T) {
	got, err := MaxLogicalType(New(SQLNull), New(Varchar))
	require.NoError(t, err)
	require.Equal(t, Varchar, got.Tag())
}

func TestMaxLogicalTypeIncompatible(t *testing.T) {
	_, err := MaxLogicalType(New(Boolean), NewVarchar(nil, Characters))
	require.Error(t, err)
}

func TestMaxLogicalTypeVarcharLength(t *testing.T) {
	short := uint32(10)
	long := uint32(255)
	got, err := MaxLogicalType(NewVarchar(&short, Characters), NewVarchar(&long, Characters))
	require.NoError(t, err)
	require.Equal(t, &long, got.VarcharLen())
}

func TestMaxLogicalTypeVarcharUnboundedWins(t *testing.T) {
	short := uint32(10)
	got, err := MaxLogicalType(NewVarchar(&short, Characters), NewVarchar(nil, Characters))
	require.NoError(t, err)
	require.Nil(t, got.VarcharLen())
}

func TestStringRendering(t *testing.T) {
	require.Equal(t, "Integer", New(Integer).String())
	len10 := uint32(10)
	require.Equal(t, "Varchar(10, characters)", NewVarchar(&len10, Characters).String())
	require.Equal(t, "Varchar(None, characters)", NewVarchar(nil, Characters).String())
	require.Equal(t, "Decimal(10, 2)", NewDecimal(10, 2).String())
}
