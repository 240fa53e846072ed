package types

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogicalTypeGobRoundTrip(t *testing.T) {
	cases := []LogicalType{
		New(Integer),
		New(Boolean),
		NewDecimal(10, 2),
		NewVarchar(nil, Characters),
	}
	length := uint32(10)
	cases = append(cases, NewVarchar(&length, Octets))

	for _, want := range cases {
		var buf bytes.Buffer
		require.NoError(t, gob.NewEncoder(&buf).Encode(want))

		var got LogicalType
		require.NoError(t, gob.NewDecoder(&buf).Decode(&got))
		require.True(t, want.Equal(got))
	}
}
