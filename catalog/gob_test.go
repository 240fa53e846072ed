package catalog

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/kestrelsql/scalarexpr/types"
)

func TestColumnGobRoundTrip(t *testing.T) {
	id := uuid.New()
	def := "0"
	want := New(id, "t.a", types.New(types.Integer), NewColumnDesc(true, true, &def))

	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(want))

	var got Column
	require.NoError(t, gob.NewDecoder(&buf).Decode(&got))

	require.Equal(t, want.Summary(), got.Summary())
	require.Equal(t, want.FullName(), got.FullName())
	require.Equal(t, want.Desc(), got.Desc())
}

func TestSyntheticColumnGobRoundTripPreservesNameKeyedSummary(t *testing.T) {
	want := NewSynthetic("(a + 1)", types.New(types.Integer))

	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(want))

	var got Column
	require.NoError(t, gob.NewDecoder(&buf).Decode(&got))

	require.Equal(t, want.Summary(), got.Summary())
	require.Equal(t, NewSynthetic("(a + 1)", types.New(types.Integer)).Summary(), got.Summary())
}
