package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelsql/scalarexpr/catalog"
	"github.com/kestrelsql/scalarexpr/evaluator"
	"github.com/kestrelsql/scalarexpr/expression/agg"
	"github.com/kestrelsql/scalarexpr/optoken"
	"github.com/kestrelsql/scalarexpr/types"
	"github.com/kestrelsql/scalarexpr/value"
)

func testFactory() *evaluator.Factory {
	return evaluator.NewFactory(evaluator.DefaultFactoryOptions())
}

func TestBindEvaluatorWidensIntegerAgainstBigint(t *testing.T) {
	intCol := catalog.NewSynthetic("a", types.New(types.Integer))
	bigCol := catalog.NewSynthetic("b", types.New(types.Bigint))

	op, err := optoken.FromBinaryToken("+")
	require.NoError(t, err)
	bin := NewBinary(op, NewColumnRef(intCol), NewColumnRef(bigCol), types.LogicalType{})

	require.NoError(t, BindEvaluator(bin, testFactory()))

	require.Equal(t, types.Bigint, bin.Ty().Tag())
	require.Equal(t, KindTypeCast, bin.Left().Kind())
	require.Equal(t, types.Bigint, bin.Left().Ty().Tag())
	require.Equal(t, KindColumnRef, bin.Right().Kind())
	require.NotNil(t, bin.BinaryEvaluator())
}

func TestBindEvaluatorComparisonProducesBoolean(t *testing.T) {
	a := catalog.NewSynthetic("a", types.New(types.Integer))
	op, err := optoken.FromBinaryToken(">")
	require.NoError(t, err)
	bin := NewBinary(op, NewColumnRef(a), intConst(1), types.LogicalType{})

	require.NoError(t, BindEvaluator(bin, testFactory()))
	require.Equal(t, types.Boolean, bin.Ty().Tag())
}

func TestBindEvaluatorCastsUnsignedOperandForUnary(t *testing.T) {
	uCol := catalog.NewSynthetic("u", types.New(types.UInteger))
	// ty is the translator-assigned result type; the binder never
	// overwrites it, it only inserts the implicit signed cast the
	// evaluator factory needs underneath.
	unary := NewUnary(optoken.UnaryMinus, NewColumnRef(uCol), types.New(types.Integer))

	require.NoError(t, BindEvaluator(unary, testFactory()))

	require.Equal(t, types.Integer, unary.Ty().Tag())
	require.Equal(t, KindTypeCast, unary.Expr().Kind())
	require.Equal(t, types.Integer, unary.Expr().Ty().Tag())
	require.NotNil(t, unary.UnaryEvaluator())
}

func TestBindEvaluatorRecursesIntoAggregateArgs(t *testing.T) {
	a := catalog.NewSynthetic("a", types.New(types.UInteger))
	neg := NewUnary(optoken.UnaryMinus, NewColumnRef(a), types.LogicalType{})
	sum := NewAggCall(false, agg.Sum, []*ScalarExpression{neg}, types.New(types.Integer))

	require.NoError(t, BindEvaluator(sum, testFactory()))
	require.NotNil(t, sum.Args()[0].UnaryEvaluator())
}

func TestBindEvaluatorPanicsOnEmpty(t *testing.T) {
	require.Panics(t, func() {
		_ = BindEvaluator(NewEmpty(), testFactory())
	})
}

func TestBindEvaluatorRejectsIncompatibleTypes(t *testing.T) {
	a := catalog.NewSynthetic("a", types.New(types.Integer))
	b := catalog.NewSynthetic("b", types.NewVarchar(nil, types.Characters))
	op, err := optoken.FromBinaryToken("+")
	require.NoError(t, err)
	bin := NewBinary(op, NewColumnRef(a), NewColumnRef(b), types.LogicalType{})

	err = BindEvaluator(bin, testFactory())
	require.Error(t, err)
}

func TestBindEvaluatorConstantOperand(t *testing.T) {
	c := NewConstant(value.New(int64(5), types.New(types.Bigint)))
	require.NoError(t, BindEvaluator(c, testFactory()))
}
