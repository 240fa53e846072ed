package evaluator

import (
	"fmt"

	"github.com/kestrelsql/scalarexpr/dberrors"
	"github.com/kestrelsql/scalarexpr/optoken"
)

type boolBinary struct {
	op optoken.BinaryOperator
}

func newBoolBinary(op optoken.BinaryOperator) (BinaryEvaluator, error) {
	switch op.Kind() {
	case optoken.And, optoken.Or, optoken.Xor, optoken.Eq, optoken.NotEq, optoken.Spaceship:
		return boolBinary{op: op}, nil
	default:
		return nil, unsupportedBinaryOp(op)
	}
}

func (k boolBinary) EvalBinary(left, right interface{}) (interface{}, error) {
	// SQL three-valued logic: AND/OR can resolve from a single known
	// operand even when the other is NULL (e.g. false && NULL == false).
	if k.op.Is(optoken.And) {
		if isFalse(left) || isFalse(right) {
			return false, nil
		}
		if left == nil || right == nil {
			return nil, nil
		}
		return left.(bool) && right.(bool), nil
	}
	if k.op.Is(optoken.Or) {
		if isTrue(left) || isTrue(right) {
			return true, nil
		}
		if left == nil || right == nil {
			return nil, nil
		}
		return left.(bool) || right.(bool), nil
	}
	if left == nil || right == nil {
		if k.op.Is(optoken.Spaceship) {
			return left == nil && right == nil, nil
		}
		return nil, nil
	}
	l, ok := left.(bool)
	if !ok {
		return nil, dberrors.ErrUnsupportedOperator.New(fmt.Sprintf("%T", left), k.op.String())
	}
	r, ok := right.(bool)
	if !ok {
		return nil, dberrors.ErrUnsupportedOperator.New(fmt.Sprintf("%T", right), k.op.String())
	}
	switch k.op.Kind() {
	case optoken.Xor:
		return l != r, nil
	case optoken.Eq, optoken.Spaceship:
		return l == r, nil
	case optoken.NotEq:
		return l != r, nil
	default:
		return nil, unsupportedBinaryOp(k.op)
	}
}

func isTrue(v interface{}) bool {
	b, ok := v.(bool)
	return ok && b
}

func isFalse(v interface{}) bool {
	b, ok := v.(bool)
	return ok && !b
}

type boolUnary struct{}

func newBoolUnary(op optoken.UnaryOperator) (UnaryEvaluator, error) {
	if op != optoken.UnaryNot {
		return nil, unsupportedUnaryOp(op)
	}
	return boolUnary{}, nil
}

func (boolUnary) EvalUnary(operand interface{}) (interface{}, error) {
	if operand == nil {
		return nil, nil
	}
	b, ok := operand.(bool)
	if !ok {
		return nil, dberrors.ErrUnsupportedOperator.New(fmt.Sprintf("%T", operand), optoken.UnaryNot.String())
	}
	return !b, nil
}
