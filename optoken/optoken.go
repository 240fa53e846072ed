// Package optoken defines the closed unary/binary operator enumerations
// and the mapping from an external parser's operator tokens into them.
// It has no dependency on the expression algebra so that both the
// expression package and the evaluator package can depend on it
// without a cycle.
package optoken

import (
	"fmt"

	"github.com/kestrelsql/scalarexpr/dberrors"
)

// UnaryOperator is the closed set of prefix operators a ScalarExpression
// Unary node can carry.
type UnaryOperator uint8

const (
	UnaryPlus UnaryOperator = iota
	UnaryMinus
	UnaryNot
)

func (op UnaryOperator) String() string {
	switch op {
	case UnaryPlus:
		return "+"
	case UnaryMinus:
		return "-"
	case UnaryNot:
		return "!"
	default:
		return "?"
	}
}

// BinaryOperator is the closed set of infix operators a ScalarExpression
// Binary node can carry. Like/NotLike additionally carry an optional
// single-character escape.
type BinaryOperator struct {
	kind   binaryKind
	escape *byte
}

type binaryKind uint8

const (
	Plus binaryKind = iota
	Minus
	Multiply
	Divide
	Modulo
	StringConcat
	Gt
	Lt
	GtEq
	LtEq
	Spaceship
	Eq
	NotEq
	Like
	NotLike
	And
	Or
	Xor
)

func simple(k binaryKind) BinaryOperator { return BinaryOperator{kind: k} }

var (
	BinaryPlus         = simple(Plus)
	BinaryMinus        = simple(Minus)
	BinaryMultiply     = simple(Multiply)
	BinaryDivide       = simple(Divide)
	BinaryModulo       = simple(Modulo)
	BinaryStringConcat = simple(StringConcat)
	BinaryGt           = simple(Gt)
	BinaryLt           = simple(Lt)
	BinaryGtEq         = simple(GtEq)
	BinaryLtEq         = simple(LtEq)
	BinarySpaceship    = simple(Spaceship)
	BinaryEq           = simple(Eq)
	BinaryNotEq        = simple(NotEq)
	BinaryAnd          = simple(And)
	BinaryOr           = simple(Or)
	BinaryXor          = simple(Xor)
)

// NewLike builds a Like operator, optionally carrying a single-character
// escape.
func NewLike(escape *byte) BinaryOperator { return BinaryOperator{kind: Like, escape: escape} }

// NewNotLike builds a NotLike operator, optionally carrying a
// single-character escape.
func NewNotLike(escape *byte) BinaryOperator { return BinaryOperator{kind: NotLike, escape: escape} }

func (op BinaryOperator) Kind() binaryKind { return op.kind }
func (op BinaryOperator) Escape() *byte    { return op.escape }

// Is reports whether op is of the given simple (escape-less) kind; for
// Like/NotLike it ignores the escape, matching the common case of
// dispatching purely on operator shape.
func (op BinaryOperator) Is(kind binaryKind) bool { return op.kind == kind }

func (op BinaryOperator) String() string {
	likeSuffix := func() string {
		if op.escape == nil {
			return ""
		}
		return fmt.Sprintf("(escape: %c)", *op.escape)
	}
	switch op.kind {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Modulo:
		return "mod"
	case StringConcat:
		return "&"
	case Gt:
		return ">"
	case Lt:
		return "<"
	case GtEq:
		return ">="
	case LtEq:
		return "<="
	case Spaceship:
		return "<=>"
	case Eq:
		return "="
	case NotEq:
		return "!="
	case And:
		return "&&"
	case Or:
		return "||"
	case Xor:
		return "^"
	case Like:
		return "like" + likeSuffix()
	case NotLike:
		return "not like" + likeSuffix()
	default:
		return "?"
	}
}

// FromUnaryToken maps an external parser token (given as its textual
// spelling) to a UnaryOperator. Any token outside the supported set
// fails with dberrors.ErrUnsupported; the translator must call this and
// propagate the error before the core ever sees an invalid node.
func FromUnaryToken(token string) (UnaryOperator, error) {
	switch token {
	case "+":
		return UnaryPlus, nil
	case "-":
		return UnaryMinus, nil
	case "NOT", "!":
		return UnaryNot, nil
	default:
		return 0, dberrors.ErrUnsupported.New(fmt.Sprintf("unary operator %q", token))
	}
}

// FromBinaryToken maps an external parser token to a BinaryOperator.
// Like/NotLike tokens never carry an escape through this path; callers
// needing an escape character build the operator with NewLike/NewNotLike
// directly once the parser has surfaced the ESCAPE clause.
func FromBinaryToken(token string) (BinaryOperator, error) {
	switch token {
	case "+":
		return BinaryPlus, nil
	case "-":
		return BinaryMinus, nil
	case "*":
		return BinaryMultiply, nil
	case "/":
		return BinaryDivide, nil
	case "%", "MOD":
		return BinaryModulo, nil
	case "||":
		return BinaryStringConcat, nil
	case ">":
		return BinaryGt, nil
	case "<":
		return BinaryLt, nil
	case ">=":
		return BinaryGtEq, nil
	case "<=":
		return BinaryLtEq, nil
	case "<=>":
		return BinarySpaceship, nil
	case "=":
		return BinaryEq, nil
	case "!=", "<>":
		return BinaryNotEq, nil
	case "LIKE":
		return NewLike(nil), nil
	case "NOT LIKE":
		return NewNotLike(nil), nil
	case "AND", "&&":
		return BinaryAnd, nil
	case "OR":
		return BinaryOr, nil
	case "XOR", "^":
		return BinaryXor, nil
	default:
		return BinaryOperator{}, dberrors.ErrUnsupported.New(fmt.Sprintf("binary operator %q", token))
	}
}
