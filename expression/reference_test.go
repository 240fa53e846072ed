package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelsql/scalarexpr/optoken"
	"github.com/kestrelsql/scalarexpr/types"
)

func TestTryReferenceRewritesMatchingColumn(t *testing.T) {
	col := intCol("a")
	outputExprs := []*ScalarExpression{NewColumnRef(col)}

	expr := NewColumnRef(col)
	rewritten := TryReference(expr, outputExprs)

	require.Equal(t, KindReference, rewritten.Kind())
	require.Equal(t, 0, rewritten.ReferencePos())
}

func TestTryReferenceRewritesReusedCompositeSubtree(t *testing.T) {
	op, err := optoken.FromBinaryToken("+")
	require.NoError(t, err)

	col := intCol("a")
	sumExpr := NewBinary(op, NewColumnRef(col), intConst(1), types.New(types.Integer))
	outputExprs := []*ScalarExpression{sumExpr}

	minus, err := optoken.FromBinaryToken("-")
	require.NoError(t, err)
	outer := NewBinary(minus, sumExpr, intConst(2), types.New(types.Integer))

	rewritten := TryReference(outer, outputExprs)

	require.Equal(t, KindBinary, rewritten.Kind())
	require.Equal(t, KindReference, rewritten.Left().Kind())
	require.Equal(t, 0, rewritten.Left().ReferencePos())
	// the right side never matched anything in outputExprs and stays untouched.
	require.Equal(t, KindConstant, rewritten.Right().Kind())
}

// TestTryReferenceMatchesIndependentlyBuiltEqualSubtree is the real CSE
// case: two separately constructed Binary expressions that render
// identically (same column, same operator, same literal) but share no
// pointers and no catalog identity beyond the underlying ColumnRef. A
// synthetic pseudo-column's Summary() must be name/type-keyed, not
// per-call-UUID-keyed, for this match to succeed.
func TestTryReferenceMatchesIndependentlyBuiltEqualSubtree(t *testing.T) {
	op, err := optoken.FromBinaryToken("+")
	require.NoError(t, err)

	col := intCol("a")
	outputSum := NewBinary(op, NewColumnRef(col), intConst(1), types.New(types.Integer))
	outputExprs := []*ScalarExpression{outputSum}

	// A distinct *ScalarExpression tree, built independently, that
	// renders identically to outputSum.
	childSum := NewBinary(op, NewColumnRef(col), intConst(1), types.New(types.Integer))

	rewritten := TryReference(childSum, outputExprs)

	require.Equal(t, KindReference, rewritten.Kind())
	require.Equal(t, 0, rewritten.ReferencePos())
}

// TestTryReferenceFirstMatchWins verifies that when outputExprs
// contains two entries with equal output-column summaries, a matching
// subtree is rewritten to reference the first one, not the last.
func TestTryReferenceFirstMatchWins(t *testing.T) {
	op, err := optoken.FromBinaryToken("+")
	require.NoError(t, err)

	col := intCol("a")
	first := NewBinary(op, NewColumnRef(col), intConst(1), types.New(types.Integer))
	second := NewBinary(op, NewColumnRef(col), intConst(1), types.New(types.Integer))
	outputExprs := []*ScalarExpression{first, second}

	probe := NewBinary(op, NewColumnRef(col), intConst(1), types.New(types.Integer))
	rewritten := TryReference(probe, outputExprs)

	require.Equal(t, KindReference, rewritten.Kind())
	require.Equal(t, 0, rewritten.ReferencePos())
}

func TestTryReferenceLeavesNonMatchingTreeAlone(t *testing.T) {
	a := NewColumnRef(intCol("a"))
	b := NewColumnRef(intCol("b"))
	op, err := optoken.FromBinaryToken("+")
	require.NoError(t, err)
	expr := NewBinary(op, a, b, types.New(types.Integer))

	outputExprs := []*ScalarExpression{NewColumnRef(intCol("c"))}
	rewritten := TryReference(expr, outputExprs)

	require.Equal(t, KindBinary, rewritten.Kind())
	require.Equal(t, KindColumnRef, rewritten.Left().Kind())
	require.Equal(t, KindColumnRef, rewritten.Right().Kind())
}

func TestTryReferencePanicsOnEmpty(t *testing.T) {
	require.Panics(t, func() {
		TryReference(NewEmpty(), nil)
	})
}
