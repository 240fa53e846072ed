package evaluator

import (
	"github.com/kestrelsql/scalarexpr/optoken"
	"github.com/kestrelsql/scalarexpr/types"
)

// Factory is the concrete EvaluatorFactory the binder resolves against.
// It is stateless beyond FactoryOptions, so a single Factory is safe to
// share across goroutines binding different trees concurrently...
// except binding itself mutates the tree it's called on and must still
// be serialised by the caller per expression tree.
type Factory struct {
	opts FactoryOptions
}

func NewFactory(opts FactoryOptions) *Factory {
	return &Factory{opts: opts}
}

// Binary resolves the evaluator for a Binary node once its operand type
// has been unified by the binder.
func (f *Factory) Binary(t types.LogicalType, op optoken.BinaryOperator) (BinaryEvaluator, error) {
	switch t.Tag() {
	case types.Tinyint, types.Smallint, types.Integer, types.Bigint:
		return newIntBinary[int64](op)
	case types.UTinyint, types.USmallint, types.UInteger, types.UBigint:
		return newIntBinary[uint64](op)
	case types.Float:
		return newFloatBinary[float64](op)
	case types.Double:
		return newFloatBinary[float64](op)
	case types.Decimal:
		return newDecimalBinary(op)
	case types.Boolean:
		return newBoolBinary(op)
	case types.Varchar:
		return newStringBinary(op, f.opts)
	default:
		return nil, unsupportedBinaryOp(op)
	}
}

// Unary resolves the evaluator for a Unary node once any unsigned
// operand has been cast to its signed counterpart by the binder: this
// factory method never receives an unsigned LogicalType.
func (f *Factory) Unary(t types.LogicalType, op optoken.UnaryOperator) (UnaryEvaluator, error) {
	switch t.Tag() {
	case types.Tinyint, types.Smallint, types.Integer, types.Bigint:
		return newSignedUnary[int64](op)
	case types.Float:
		return newFloatUnary[float64](op)
	case types.Double:
		return newFloatUnary[float64](op)
	case types.Decimal:
		return newDecimalUnary(op)
	case types.Boolean:
		return newBoolUnary(op)
	default:
		return nil, unsupportedUnaryOp(op)
	}
}
