package evaluator

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/kestrelsql/scalarexpr/dberrors"
	"github.com/kestrelsql/scalarexpr/optoken"
)

// ErrDivideByZero is a runtime evaluation error, distinct from the
// bind-time dberrors taxonomy: it can only be known by looking at a
// row's actual values, not at the tree's shape or types.
var ErrDivideByZero = fmt.Errorf("division by zero")

type intBinary[T constraints.Integer] struct {
	op optoken.BinaryOperator
}

func newIntBinary[T constraints.Integer](op optoken.BinaryOperator) (BinaryEvaluator, error) {
	switch op.Kind() {
	case optoken.Plus, optoken.Minus, optoken.Multiply, optoken.Divide, optoken.Modulo,
		optoken.Gt, optoken.Lt, optoken.GtEq, optoken.LtEq, optoken.Spaceship, optoken.Eq, optoken.NotEq:
		return intBinary[T]{op: op}, nil
	default:
		return nil, unsupportedBinaryOp(op)
	}
}

func (k intBinary[T]) EvalBinary(left, right interface{}) (interface{}, error) {
	if left == nil || right == nil {
		return nil, nil
	}
	l, r, err := coerceIntPair[T](left, right, k.op)
	if err != nil {
		return nil, err
	}
	switch k.op.Kind() {
	case optoken.Plus:
		return l + r, nil
	case optoken.Minus:
		return l - r, nil
	case optoken.Multiply:
		return l * r, nil
	case optoken.Divide:
		if r == 0 {
			return nil, ErrDivideByZero
		}
		return l / r, nil
	case optoken.Modulo:
		if r == 0 {
			return nil, ErrDivideByZero
		}
		return l % r, nil
	case optoken.Gt:
		return l > r, nil
	case optoken.Lt:
		return l < r, nil
	case optoken.GtEq:
		return l >= r, nil
	case optoken.LtEq:
		return l <= r, nil
	case optoken.Eq, optoken.Spaceship:
		return l == r, nil
	case optoken.NotEq:
		return l != r, nil
	default:
		return nil, unsupportedBinaryOp(k.op)
	}
}

func coerceIntPair[T constraints.Integer](left, right interface{}, op optoken.BinaryOperator) (T, T, error) {
	l, ok := left.(T)
	if !ok {
		var zero T
		return zero, zero, dberrors.ErrUnsupportedOperator.New(fmt.Sprintf("%T", left), op.String())
	}
	r, ok := right.(T)
	if !ok {
		var zero T
		return zero, zero, dberrors.ErrUnsupportedOperator.New(fmt.Sprintf("%T", right), op.String())
	}
	return l, r, nil
}

func unsupportedBinaryOp(op optoken.BinaryOperator) error {
	return dberrors.ErrUnsupportedOperator.New("this type", op.String())
}

type floatBinary[T constraints.Float] struct {
	op optoken.BinaryOperator
}

func newFloatBinary[T constraints.Float](op optoken.BinaryOperator) (BinaryEvaluator, error) {
	switch op.Kind() {
	case optoken.Plus, optoken.Minus, optoken.Multiply, optoken.Divide,
		optoken.Gt, optoken.Lt, optoken.GtEq, optoken.LtEq, optoken.Spaceship, optoken.Eq, optoken.NotEq:
		return floatBinary[T]{op: op}, nil
	default:
		return nil, unsupportedBinaryOp(op)
	}
}

func (k floatBinary[T]) EvalBinary(left, right interface{}) (interface{}, error) {
	if left == nil || right == nil {
		return nil, nil
	}
	l, ok := left.(T)
	if !ok {
		return nil, dberrors.ErrUnsupportedOperator.New(fmt.Sprintf("%T", left), k.op.String())
	}
	r, ok := right.(T)
	if !ok {
		return nil, dberrors.ErrUnsupportedOperator.New(fmt.Sprintf("%T", right), k.op.String())
	}
	switch k.op.Kind() {
	case optoken.Plus:
		return l + r, nil
	case optoken.Minus:
		return l - r, nil
	case optoken.Multiply:
		return l * r, nil
	case optoken.Divide:
		if r == 0 {
			return nil, ErrDivideByZero
		}
		return l / r, nil
	case optoken.Gt:
		return l > r, nil
	case optoken.Lt:
		return l < r, nil
	case optoken.GtEq:
		return l >= r, nil
	case optoken.LtEq:
		return l <= r, nil
	case optoken.Eq, optoken.Spaceship:
		return l == r, nil
	case optoken.NotEq:
		return l != r, nil
	default:
		return nil, unsupportedBinaryOp(k.op)
	}
}
