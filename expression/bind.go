package expression

import (
	"github.com/sirupsen/logrus"

	"github.com/kestrelsql/scalarexpr/evaluator"
	"github.com/kestrelsql/scalarexpr/optoken"
	"github.com/kestrelsql/scalarexpr/types"
)

// BindEvaluator resolves every Binary/Unary node in expr against
// factory, inserting implicit TypeCast wrappers where operand types
// don't already agree. It mutates expr in place. Re-binding an already
// bound tree adds no further TypeCast: the casts from the first pass
// already give both operands the common type, so a second pass only
// resolves the same evaluators again.
func BindEvaluator(expr *ScalarExpression, factory *evaluator.Factory) error {
	switch expr.kind {
	case KindEmpty:
		panicEmptyReached("bind_evaluator")
	case KindConstant, KindColumnRef, KindReference:
		return nil
	case KindAlias:
		if err := BindEvaluator(expr.expr, factory); err != nil {
			return err
		}
		if expr.aliasExpr != nil {
			return BindEvaluator(expr.aliasExpr, factory)
		}
		return nil
	case KindTypeCast, KindIsNull:
		return BindEvaluator(expr.expr, factory)
	case KindUnary:
		return bindUnary(expr, factory)
	case KindBinary:
		return bindBinary(expr, factory)
	case KindTuple, KindCoalesce, KindScalaFunction, KindTableFunction, KindAggCall:
		return bindAll(expr.args, factory)
	case KindIn:
		if err := BindEvaluator(expr.expr, factory); err != nil {
			return err
		}
		return bindAll(expr.args, factory)
	case KindBetween:
		if err := BindEvaluator(expr.expr, factory); err != nil {
			return err
		}
		if err := BindEvaluator(expr.left, factory); err != nil {
			return err
		}
		return BindEvaluator(expr.right, factory)
	case KindSubString:
		if err := BindEvaluator(expr.expr, factory); err != nil {
			return err
		}
		if expr.subFrom != nil {
			if err := BindEvaluator(expr.subFrom, factory); err != nil {
				return err
			}
		}
		if expr.subFor != nil {
			return BindEvaluator(expr.subFor, factory)
		}
		return nil
	case KindPosition:
		if err := BindEvaluator(expr.expr, factory); err != nil {
			return err
		}
		return BindEvaluator(expr.posIn, factory)
	case KindTrim:
		if err := BindEvaluator(expr.expr, factory); err != nil {
			return err
		}
		if expr.trimWhat != nil {
			return BindEvaluator(expr.trimWhat, factory)
		}
		return nil
	case KindIf:
		if err := BindEvaluator(expr.condition, factory); err != nil {
			return err
		}
		if err := BindEvaluator(expr.left, factory); err != nil {
			return err
		}
		return BindEvaluator(expr.right, factory)
	case KindIfNull, KindNullIf:
		if err := BindEvaluator(expr.left, factory); err != nil {
			return err
		}
		return BindEvaluator(expr.right, factory)
	case KindCaseWhen:
		if expr.operand != nil {
			if err := BindEvaluator(expr.operand, factory); err != nil {
				return err
			}
		}
		for _, p := range expr.pairs {
			if err := BindEvaluator(p.When, factory); err != nil {
				return err
			}
			if err := BindEvaluator(p.Then, factory); err != nil {
				return err
			}
		}
		if expr.elseExpr != nil {
			return BindEvaluator(expr.elseExpr, factory)
		}
		return nil
	}
	return invariantViolation("bind_evaluator: unhandled Kind " + expr.kind.String())
}

func bindAll(args []*ScalarExpression, factory *evaluator.Factory) error {
	for _, a := range args {
		if err := BindEvaluator(a, factory); err != nil {
			return err
		}
	}
	return nil
}

// bindUnary casts an unsigned operand up to its signed counterpart
// before resolving the evaluator: the factory never sees an unsigned
// LogicalType.
func bindUnary(expr *ScalarExpression, factory *evaluator.Factory) error {
	if err := BindEvaluator(expr.expr, factory); err != nil {
		return err
	}
	operandTy := expr.expr.ReturnType()
	if operandTy.IsUnsignedNumeric() {
		signed := operandTy.SignedCounterpart()
		expr.expr = NewTypeCast(expr.expr, signed)
		operandTy = signed
	}
	ev, err := factory.Unary(operandTy, expr.unaryOp)
	if err != nil {
		return err
	}
	expr.unaryEvaluator = ev
	logrus.WithFields(logrus.Fields{"op": expr.unaryOp.String(), "type": operandTy.String()}).Debug("bound unary evaluator")
	return nil
}

func bindBinary(expr *ScalarExpression, factory *evaluator.Factory) error {
	if err := BindEvaluator(expr.left, factory); err != nil {
		return err
	}
	if err := BindEvaluator(expr.right, factory); err != nil {
		return err
	}
	leftTy := expr.left.ReturnType()
	rightTy := expr.right.ReturnType()
	commonTy, err := types.MaxLogicalType(leftTy, rightTy)
	if err != nil {
		return err
	}
	if !leftTy.Equal(commonTy) {
		expr.left = NewTypeCast(expr.left, commonTy)
	}
	if !rightTy.Equal(commonTy) {
		expr.right = NewTypeCast(expr.right, commonTy)
	}
	ev, err := factory.Binary(commonTy, expr.binaryOp)
	if err != nil {
		return err
	}
	expr.binaryEvaluator = ev
	expr.ty = binaryResultType(commonTy, expr.binaryOp)
	logrus.WithFields(logrus.Fields{"op": expr.binaryOp.String(), "type": commonTy.String()}).Debug("bound binary evaluator")
	return nil
}

// binaryResultType reports the Boolean result of a predicate operator,
// or the unified operand type itself for arithmetic/concatenation ops.
func binaryResultType(operandTy types.LogicalType, op optoken.BinaryOperator) types.LogicalType {
	switch op.Kind() {
	case optoken.Gt, optoken.Lt, optoken.GtEq, optoken.LtEq, optoken.Spaceship,
		optoken.Eq, optoken.NotEq, optoken.Like, optoken.NotLike,
		optoken.And, optoken.Or, optoken.Xor:
		return types.New(types.Boolean)
	default:
		return operandTy
	}
}
