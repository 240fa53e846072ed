package agg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllowDistinct(t *testing.T) {
	require.True(t, Count.AllowDistinct())
	require.True(t, Sum.AllowDistinct())
	require.True(t, Avg.AllowDistinct())
	require.False(t, Min.AllowDistinct())
	require.False(t, Max.AllowDistinct())
}

func TestString(t *testing.T) {
	require.Equal(t, "Count", Count.String())
	require.Equal(t, "Sum", Sum.String())
}
