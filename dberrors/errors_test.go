package dberrors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindsAreDistinct(t *testing.T) {
	err := ErrTypeMismatch.New("a + b", "Integer vs Varchar")
	require.True(t, ErrTypeMismatch.Is(err))
	require.False(t, ErrUnsupported.Is(err))
	require.False(t, ErrUnsupportedOperator.Is(err))
	require.False(t, ErrInternalInvariant.Is(err))
}

func TestWrapPreservesIs(t *testing.T) {
	err := Wrap(ErrInternalInvariant.New("Empty reached in return_type"))
	require.Contains(t, err.Error(), "internal invariant violated")
	require.True(t, Is(ErrInternalInvariant, err))
}
