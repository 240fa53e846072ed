package value

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/kestrelsql/scalarexpr/types"
)

func TestValueGobRoundTrip(t *testing.T) {
	cases := []ValueRef{
		New(int64(5), types.New(types.Integer)),
		New("hi", types.NewVarchar(nil, types.Characters)),
		New(decimal.RequireFromString("1.50"), types.NewDecimal(10, 2)),
		Null(types.New(types.Integer)),
	}

	for _, want := range cases {
		var buf bytes.Buffer
		require.NoError(t, gob.NewEncoder(&buf).Encode(want))

		var got Value
		require.NoError(t, gob.NewDecoder(&buf).Decode(&got))
		require.Equal(t, want.String(), got.String())
		require.Equal(t, want.IsNull(), got.IsNull())
	}
}
