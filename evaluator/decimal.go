package evaluator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kestrelsql/scalarexpr/dberrors"
	"github.com/kestrelsql/scalarexpr/optoken"
)

type decimalBinary struct {
	op optoken.BinaryOperator
}

func newDecimalBinary(op optoken.BinaryOperator) (BinaryEvaluator, error) {
	switch op.Kind() {
	case optoken.Plus, optoken.Minus, optoken.Multiply, optoken.Divide,
		optoken.Gt, optoken.Lt, optoken.GtEq, optoken.LtEq, optoken.Spaceship, optoken.Eq, optoken.NotEq:
		return decimalBinary{op: op}, nil
	default:
		return nil, unsupportedBinaryOp(op)
	}
}

func (k decimalBinary) EvalBinary(left, right interface{}) (interface{}, error) {
	if left == nil || right == nil {
		return nil, nil
	}
	l, ok := left.(decimal.Decimal)
	if !ok {
		return nil, dberrors.ErrUnsupportedOperator.New(fmt.Sprintf("%T", left), k.op.String())
	}
	r, ok := right.(decimal.Decimal)
	if !ok {
		return nil, dberrors.ErrUnsupportedOperator.New(fmt.Sprintf("%T", right), k.op.String())
	}
	switch k.op.Kind() {
	case optoken.Plus:
		return l.Add(r), nil
	case optoken.Minus:
		return l.Sub(r), nil
	case optoken.Multiply:
		return l.Mul(r), nil
	case optoken.Divide:
		if r.IsZero() {
			return nil, ErrDivideByZero
		}
		return l.Div(r), nil
	case optoken.Gt:
		return l.GreaterThan(r), nil
	case optoken.Lt:
		return l.LessThan(r), nil
	case optoken.GtEq:
		return l.GreaterThanOrEqual(r), nil
	case optoken.LtEq:
		return l.LessThanOrEqual(r), nil
	case optoken.Eq, optoken.Spaceship:
		return l.Equal(r), nil
	case optoken.NotEq:
		return !l.Equal(r), nil
	default:
		return nil, unsupportedBinaryOp(k.op)
	}
}

type decimalUnary struct {
	op optoken.UnaryOperator
}

func newDecimalUnary(op optoken.UnaryOperator) (UnaryEvaluator, error) {
	switch op {
	case optoken.UnaryPlus, optoken.UnaryMinus:
		return decimalUnary{op: op}, nil
	default:
		return nil, unsupportedUnaryOp(op)
	}
}

func (k decimalUnary) EvalUnary(operand interface{}) (interface{}, error) {
	if operand == nil {
		return nil, nil
	}
	v, ok := operand.(decimal.Decimal)
	if !ok {
		return nil, dberrors.ErrUnsupportedOperator.New(fmt.Sprintf("%T", operand), k.op.String())
	}
	if k.op == optoken.UnaryMinus {
		return v.Neg(), nil
	}
	return v, nil
}
