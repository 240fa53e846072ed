package optoken

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelsql/scalarexpr/dberrors"
)

func TestBinaryOperatorDisplay(t *testing.T) {
	require.Equal(t, "+", BinaryPlus.String())
	require.Equal(t, "mod", BinaryModulo.String())
	require.Equal(t, "<=>", BinarySpaceship.String())
	require.Equal(t, "like", NewLike(nil).String())
	esc := byte('\\')
	require.Equal(t, "like(escape: \\)", NewLike(&esc).String())
	require.Equal(t, "not like", NewNotLike(nil).String())
}

func TestUnaryOperatorDisplay(t *testing.T) {
	require.Equal(t, "+", UnaryPlus.String())
	require.Equal(t, "-", UnaryMinus.String())
	require.Equal(t, "!", UnaryNot.String())
}

func TestFromUnaryTokenUnsupported(t *testing.T) {
	_, err := FromUnaryToken("~")
	require.Error(t, err)
	require.True(t, dberrors.ErrUnsupported.Is(err))
}

func TestFromBinaryTokenSupported(t *testing.T) {
	op, err := FromBinaryToken("<=>")
	require.NoError(t, err)
	require.True(t, op.Is(Spaceship))
}

func TestFromBinaryTokenUnsupported(t *testing.T) {
	_, err := FromBinaryToken("###")
	require.Error(t, err)
	require.True(t, dberrors.ErrUnsupported.Is(err))
}
