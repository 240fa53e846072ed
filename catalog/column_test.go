package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/kestrelsql/scalarexpr/types"
)

func TestSummaryDistinguishesSameNameDifferentOrigin(t *testing.T) {
	a := New(uuid.New(), "t.a", types.New(types.Integer), ColumnDesc{})
	b := New(uuid.New(), "t.a", types.New(types.Integer), ColumnDesc{})

	require.Equal(t, a.FullName(), b.FullName())
	require.NotEqual(t, a.Summary(), b.Summary())
}

func TestSummaryStableForSameColumn(t *testing.T) {
	id := uuid.New()
	a := New(id, "t.a", types.New(types.Integer), ColumnDesc{})
	require.Equal(t, a.Summary(), a.Summary())
}

func TestNewSyntheticIsNullable(t *testing.T) {
	col := NewSynthetic("(a + 1)", types.New(types.Integer))
	require.True(t, col.Desc().Nullable)
}

// TestNewSyntheticSummaryIsNameKeyed is the fix the reference rewriter
// depends on: two independently synthesised pseudo-columns for the same
// rendering and type must compare equal even though each call mints a
// distinct *Column, so that the same composite expression computed at
// two different plan levels matches as the same output column.
func TestNewSyntheticSummaryIsNameKeyed(t *testing.T) {
	a := NewSynthetic("(a + 1)", types.New(types.Integer))
	b := NewSynthetic("(a + 1)", types.New(types.Integer))

	require.NotSame(t, a, b)
	require.Equal(t, a.Summary(), b.Summary())
}

func TestNewSyntheticSummaryDiffersByNameOrType(t *testing.T) {
	base := NewSynthetic("(a + 1)", types.New(types.Integer))
	diffName := NewSynthetic("(a + 2)", types.New(types.Integer))
	diffType := NewSynthetic("(a + 1)", types.New(types.Bigint))

	require.NotEqual(t, base.Summary(), diffName.Summary())
	require.NotEqual(t, base.Summary(), diffType.Summary())
}

// TestSyntheticSummaryNeverCollidesWithRealColumn guards against a
// synthetic pseudo-column's name-keyed summary accidentally matching a
// real catalog column that happens to share the same rendered name.
func TestSyntheticSummaryNeverCollidesWithRealColumn(t *testing.T) {
	synth := NewSynthetic("t.a", types.New(types.Integer))
	real := New(uuid.New(), "t.a", types.New(types.Integer), ColumnDesc{})

	require.NotEqual(t, synth.Summary(), real.Summary())
}
