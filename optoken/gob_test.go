package optoken

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinaryOperatorGobRoundTrip(t *testing.T) {
	escape := byte('\\')
	cases := []BinaryOperator{BinaryPlus, BinaryEq, NewLike(&escape), NewNotLike(nil)}

	for _, want := range cases {
		var buf bytes.Buffer
		require.NoError(t, gob.NewEncoder(&buf).Encode(want))

		var got BinaryOperator
		require.NoError(t, gob.NewDecoder(&buf).Decode(&got))
		require.Equal(t, want.String(), got.String())
	}
}
