package expression

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelsql/scalarexpr/expression/function/scala"
	"github.com/kestrelsql/scalarexpr/optoken"
	"github.com/kestrelsql/scalarexpr/types"
)

type fakeScalaFunc struct {
	name string
	ty   types.LogicalType
}

func (f fakeScalaFunc) Summary() scala.Summary        { return scala.Summary{Name: f.name} }
func (f fakeScalaFunc) ReturnType() types.LogicalType { return f.ty }

func TestScalarExpressionGobRoundTripPreservesShape(t *testing.T) {
	a := NewColumnRef(intCol("a"))
	op, err := optoken.FromBinaryToken("+")
	require.NoError(t, err)
	want := NewBinary(op, a, intConst(1), types.New(types.Integer))

	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(want))

	var got ScalarExpression
	require.NoError(t, gob.NewDecoder(&buf).Decode(&got))

	require.Equal(t, want.OutputName(), got.OutputName())
	require.Equal(t, KindBinary, got.Kind())
	require.Nil(t, got.BinaryEvaluator())
}

func TestScalarExpressionGobRoundTripThenRebind(t *testing.T) {
	a := NewColumnRef(intCol("a"))
	op, err := optoken.FromBinaryToken("+")
	require.NoError(t, err)
	tree := NewBinary(op, a, intConst(1), types.LogicalType{})
	require.NoError(t, BindEvaluator(tree, testFactory()))

	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(tree))

	var decoded ScalarExpression
	require.NoError(t, gob.NewDecoder(&buf).Decode(&decoded))
	require.Nil(t, decoded.BinaryEvaluator())

	require.NoError(t, BindEvaluator(&decoded, testFactory()))
	require.NotNil(t, decoded.BinaryEvaluator())
}

func TestScalarExpressionGobRoundTripScalaFunctionKeepsReturnType(t *testing.T) {
	a := NewColumnRef(intCol("a"))
	fn := NewScalaFunction([]*ScalarExpression{a}, fakeScalaFunc{name: "upper", ty: types.New(types.Varchar)})

	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(fn))

	var got ScalarExpression
	require.NoError(t, gob.NewDecoder(&buf).Decode(&got))

	require.Equal(t, "upper(a)", got.OutputName())
	require.Equal(t, types.Varchar, got.ReturnType().Tag())
}
