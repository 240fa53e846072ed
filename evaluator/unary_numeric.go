package evaluator

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/kestrelsql/scalarexpr/dberrors"
	"github.com/kestrelsql/scalarexpr/optoken"
)

func unsupportedUnaryOp(op optoken.UnaryOperator) error {
	return dberrors.ErrUnsupportedOperator.New("this type", op.String())
}

type signedUnary[T constraints.Signed] struct {
	op optoken.UnaryOperator
}

// newSignedUnary builds the evaluator for a Unary node whose operand
// has already been widened to a signed type by BindEvaluator: this
// kernel never sees an unsigned operand.
func newSignedUnary[T constraints.Signed](op optoken.UnaryOperator) (UnaryEvaluator, error) {
	switch op {
	case optoken.UnaryPlus, optoken.UnaryMinus:
		return signedUnary[T]{op: op}, nil
	default:
		return nil, unsupportedUnaryOp(op)
	}
}

func (k signedUnary[T]) EvalUnary(operand interface{}) (interface{}, error) {
	if operand == nil {
		return nil, nil
	}
	v, ok := operand.(T)
	if !ok {
		return nil, dberrors.ErrUnsupportedOperator.New(fmt.Sprintf("%T", operand), k.op.String())
	}
	if k.op == optoken.UnaryMinus {
		return -v, nil
	}
	return v, nil
}

type floatUnary[T constraints.Float] struct {
	op optoken.UnaryOperator
}

func newFloatUnary[T constraints.Float](op optoken.UnaryOperator) (UnaryEvaluator, error) {
	switch op {
	case optoken.UnaryPlus, optoken.UnaryMinus:
		return floatUnary[T]{op: op}, nil
	default:
		return nil, unsupportedUnaryOp(op)
	}
}

func (k floatUnary[T]) EvalUnary(operand interface{}) (interface{}, error) {
	if operand == nil {
		return nil, nil
	}
	v, ok := operand.(T)
	if !ok {
		return nil, dberrors.ErrUnsupportedOperator.New(fmt.Sprintf("%T", operand), k.op.String())
	}
	if k.op == optoken.UnaryMinus {
		return -v, nil
	}
	return v, nil
}
