package evaluator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kestrelsql/scalarexpr/dberrors"
	"github.com/kestrelsql/scalarexpr/optoken"
)

type stringBinary struct {
	op   optoken.BinaryOperator
	opts FactoryOptions
}

func newStringBinary(op optoken.BinaryOperator, opts FactoryOptions) (BinaryEvaluator, error) {
	switch op.Kind() {
	case optoken.StringConcat, optoken.Gt, optoken.Lt, optoken.GtEq, optoken.LtEq,
		optoken.Eq, optoken.NotEq, optoken.Spaceship, optoken.Like, optoken.NotLike:
		return stringBinary{op: op, opts: opts}, nil
	default:
		return nil, unsupportedBinaryOp(op)
	}
}

func (k stringBinary) EvalBinary(left, right interface{}) (interface{}, error) {
	if k.op.Is(optoken.Like) || k.op.Is(optoken.NotLike) {
		return k.evalLike(left, right)
	}
	if left == nil || right == nil {
		return nil, nil
	}
	l, err := k.asString(left)
	if err != nil {
		return nil, err
	}
	r, err := k.asString(right)
	if err != nil {
		return nil, err
	}
	switch k.op.Kind() {
	case optoken.StringConcat:
		return l + r, nil
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

func (k stringBinary) asString(v interface{}) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	if k.opts.ConcatCoercesNumeric && k.op.Is(optoken.StringConcat) {
		return fmt.Sprintf("%v", v), nil
	}
	return "", dberrors.ErrUnsupportedOperator.New(fmt.Sprintf("%T", v), k.op.String())
}

// evalLike implements SQL LIKE matching with '%'/'_' wildcards and an
// optional escape character, translated into filepath.Match's glob
// syntax the way small SQL engines commonly piggy-back on a glob
// matcher rather than writing their own backtracking matcher.
func (k stringBinary) evalLike(left, right interface{}) (interface{}, error) {
	if left == nil || right == nil {
		return nil, nil
	}
	l, ok := left.(string)
	if !ok {
		return nil, dberrors.ErrUnsupportedOperator.New(fmt.Sprintf("%T", left), k.op.String())
	}
	pattern, ok := right.(string)
	if !ok {
		return nil, dberrors.ErrUnsupportedOperator.New(fmt.Sprintf("%T", right), k.op.String())
	}
	matched := likeMatch(l, pattern, k.op.Escape())
	if k.op.Is(optoken.NotLike) {
		return !matched, nil
	}
	return matched, nil
}

func likeMatch(s, pattern string, escape *byte) bool {
	glob := translateLikePattern(pattern, escape)
	ok, err := filepath.Match(glob, s)
	if err != nil {
		return false
	}
	return ok
}

func translateLikePattern(pattern string, escape *byte) string {
	var b strings.Builder
	runes := []byte(pattern)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if escape != nil && c == *escape && i+1 < len(runes) {
			next := runes[i+1]
			if isGlobSpecial(next) {
				b.WriteByte('\\')
			}
			b.WriteByte(next)
			i++
			continue
		}
		switch c {
		case '%':
			b.WriteString("*")
		case '_':
			b.WriteString("?")
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isGlobSpecial(c byte) bool {
	switch c {
	case '*', '?', '[', ']', '\\':
		return true
	default:
		return false
	}
}
