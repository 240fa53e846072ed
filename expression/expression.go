// Package expression implements the scalar expression core: the closed
// algebra of node variants, the tree walkers derived from it, the
// reference rewriter and the evaluator binder.
//
// ScalarExpression a+1
// -> Binary{op: Plus, left: ColumnRef(a), right: Constant(1)}
package expression

import (
	"github.com/kestrelsql/scalarexpr/catalog"
	"github.com/kestrelsql/scalarexpr/evaluator"
	"github.com/kestrelsql/scalarexpr/expression/agg"
	"github.com/kestrelsql/scalarexpr/expression/function/scala"
	"github.com/kestrelsql/scalarexpr/expression/function/table"
	"github.com/kestrelsql/scalarexpr/optoken"
	"github.com/kestrelsql/scalarexpr/types"
	"github.com/kestrelsql/scalarexpr/value"
)

// Kind is the discriminant of the ScalarExpression tagged union: each
// variant is a tag plus the subset of fields that tag's payload uses.
type Kind uint8

const (
	KindConstant Kind = iota
	KindColumnRef
	KindEmpty
	KindReference
	KindAlias
	KindTypeCast
	KindIsNull
	KindUnary
	KindBinary
	KindTuple
	KindAggCall
	KindCoalesce
	KindScalaFunction
	KindTableFunction
	KindIn
	KindBetween
	KindSubString
	KindPosition
	KindTrim
	KindIf
	KindIfNull
	KindNullIf
	KindCaseWhen
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "Constant"
	case KindColumnRef:
		return "ColumnRef"
	case KindEmpty:
		return "Empty"
	case KindReference:
		return "Reference"
	case KindAlias:
		return "Alias"
	case KindTypeCast:
		return "TypeCast"
	case KindIsNull:
		return "IsNull"
	case KindUnary:
		return "Unary"
	case KindBinary:
		return "Binary"
	case KindTuple:
		return "Tuple"
	case KindAggCall:
		return "AggCall"
	case KindCoalesce:
		return "Coalesce"
	case KindScalaFunction:
		return "ScalaFunction"
	case KindTableFunction:
		return "TableFunction"
	case KindIn:
		return "In"
	case KindBetween:
		return "Between"
	case KindSubString:
		return "SubString"
	case KindPosition:
		return "Position"
	case KindTrim:
		return "Trim"
	case KindIf:
		return "If"
	case KindIfNull:
		return "IfNull"
	case KindNullIf:
		return "NullIf"
	case KindCaseWhen:
		return "CaseWhen"
	default:
		return "Unknown"
	}
}

// TrimSide is the optional WHERE clause of a Trim node.
type TrimSide uint8

const (
	TrimBoth TrimSide = iota
	TrimLeading
	TrimTrailing
)

// CaseBranch is one WHEN/THEN pair of a CaseWhen node.
type CaseBranch struct {
	When *ScalarExpression
	Then *ScalarExpression
}

// ScalarExpression is the recursive tagged union every scalar SQL
// expression is built from. Fields are grouped by which
// Kind(s) populate them; reading a field under the wrong Kind is a
// programming error, not a recoverable one. Callers are expected to
// dispatch on Kind() first, exactly as the walkers in this package do.
//
// Field reuse map:
//
//	constant            Constant
//	column              ColumnRef
//	refPos, expr        Reference (expr carries the original subtree)
//	aliasName, aliasExpr, expr   Alias (exactly one of aliasName/aliasExpr is set)
//	expr, ty            TypeCast
//	negated, expr       IsNull
//	unaryOp, expr, unaryEvaluator, ty   Unary
//	binaryOp, left, right, binaryEvaluator, ty   Binary
//	args                Tuple, Coalesce (ty), AggCall (distinct, aggKind, ty)
//	scalaInner, args    ScalaFunction
//	tableInner, args    TableFunction
//	negated, expr, args In
//	negated, expr, left, right   Between
//	expr, subFrom, subFor   SubString
//	expr, posIn         Position
//	expr, trimWhat, trimWhere, trimWherePresent   Trim
//	condition, left, right, ty   If
//	left, right, ty     IfNull, NullIf
//	operand, pairs, elseExpr, ty   CaseWhen
type ScalarExpression struct {
	kind Kind

	constant value.ValueRef
	column   catalog.ColumnRef

	refPos int

	expr  *ScalarExpression
	left  *ScalarExpression
	right *ScalarExpression

	aliasName *string
	aliasExpr *ScalarExpression

	ty types.LogicalType

	negated bool

	unaryOp        optoken.UnaryOperator
	unaryEvaluator evaluator.UnaryEvaluator

	binaryOp        optoken.BinaryOperator
	binaryEvaluator evaluator.BinaryEvaluator

	args []*ScalarExpression

	distinct bool
	aggKind  agg.Kind

	scalaInner scala.Descriptor
	tableInner table.Descriptor

	subFrom *ScalarExpression
	subFor  *ScalarExpression

	posIn *ScalarExpression

	trimWhat        *ScalarExpression
	trimWhere       TrimSide
	trimWherePresent bool

	condition *ScalarExpression

	operand       *ScalarExpression
	pairs         []CaseBranch
	elseExpr      *ScalarExpression

	// synthCol memoizes OutputColumn's pseudo-column for composite
	// expressions so that repeated calls on the same node return the
	// same *Column instead of allocating a new one. Matching does not
	// depend on it: a synthetic column's Summary() is keyed on name and
	// type.
	synthCol catalog.ColumnRef
}

func (e *ScalarExpression) Kind() Kind { return e.kind }

// --- Constructors -----------------------------------------------------

func NewConstant(v value.ValueRef) *ScalarExpression {
	return &ScalarExpression{kind: KindConstant, constant: v}
}

func NewColumnRef(col catalog.ColumnRef) *ScalarExpression {
	return &ScalarExpression{kind: KindColumnRef, column: col}
}

// NewEmpty builds the Empty sentinel. No walker in this package places
// it in a tree, and every walker, TryReference and BindEvaluator
// included, panics on reaching it.
func NewEmpty() *ScalarExpression {
	return &ScalarExpression{kind: KindEmpty}
}

// NewAliasName builds an Alias node whose label is a plain string.
func NewAliasName(expr *ScalarExpression, alias string) *ScalarExpression {
	return &ScalarExpression{kind: KindAlias, expr: expr, aliasName: &alias}
}

// NewAliasExpr builds an Alias node whose label is itself derived from
// another expression's OutputName.
func NewAliasExpr(expr *ScalarExpression, aliasExpr *ScalarExpression) *ScalarExpression {
	return &ScalarExpression{kind: KindAlias, expr: expr, aliasExpr: aliasExpr}
}

// AliasName returns the plain-string alias and true, or ("", false) if
// this Alias node's label is an expression alias.
func (e *ScalarExpression) AliasName() (string, bool) {
	e.mustBe(KindAlias)
	if e.aliasName != nil {
		return *e.aliasName, true
	}
	return "", false
}

// AliasExpr returns the expression-alias label, or nil if this Alias
// node's label is a plain string.
func (e *ScalarExpression) AliasExpr() *ScalarExpression {
	e.mustBe(KindAlias)
	return e.aliasExpr
}

func NewTypeCast(expr *ScalarExpression, ty types.LogicalType) *ScalarExpression {
	return &ScalarExpression{kind: KindTypeCast, expr: expr, ty: ty}
}

func NewIsNull(negated bool, expr *ScalarExpression) *ScalarExpression {
	return &ScalarExpression{kind: KindIsNull, negated: negated, expr: expr}
}

// NewUnary builds an unbound Unary node; evaluator is absent until
// BindEvaluator runs.
func NewUnary(op optoken.UnaryOperator, expr *ScalarExpression, ty types.LogicalType) *ScalarExpression {
	return &ScalarExpression{kind: KindUnary, unaryOp: op, expr: expr, ty: ty}
}

// NewBinary builds an unbound Binary node.
func NewBinary(op optoken.BinaryOperator, left, right *ScalarExpression, ty types.LogicalType) *ScalarExpression {
	return &ScalarExpression{kind: KindBinary, binaryOp: op, left: left, right: right, ty: ty}
}

func NewTuple(exprs []*ScalarExpression) *ScalarExpression {
	return &ScalarExpression{kind: KindTuple, args: exprs}
}

func NewAggCall(distinct bool, kind agg.Kind, args []*ScalarExpression, ty types.LogicalType) *ScalarExpression {
	return &ScalarExpression{kind: KindAggCall, distinct: distinct, aggKind: kind, args: args, ty: ty}
}

func NewCoalesce(exprs []*ScalarExpression, ty types.LogicalType) *ScalarExpression {
	return &ScalarExpression{kind: KindCoalesce, args: exprs, ty: ty}
}

func NewScalaFunction(args []*ScalarExpression, inner scala.Descriptor) *ScalarExpression {
	return &ScalarExpression{kind: KindScalaFunction, args: args, scalaInner: inner}
}

func NewTableFunction(args []*ScalarExpression, inner table.Descriptor) *ScalarExpression {
	return &ScalarExpression{kind: KindTableFunction, args: args, tableInner: inner}
}

func NewIn(negated bool, expr *ScalarExpression, args []*ScalarExpression) *ScalarExpression {
	return &ScalarExpression{kind: KindIn, negated: negated, expr: expr, args: args}
}

func NewBetween(negated bool, expr, left, right *ScalarExpression) *ScalarExpression {
	return &ScalarExpression{kind: KindBetween, negated: negated, expr: expr, left: left, right: right}
}

func NewSubString(expr, from, forExpr *ScalarExpression) *ScalarExpression {
	return &ScalarExpression{kind: KindSubString, expr: expr, subFrom: from, subFor: forExpr}
}

func NewPosition(expr, in *ScalarExpression) *ScalarExpression {
	return &ScalarExpression{kind: KindPosition, expr: expr, posIn: in}
}

// NewTrim builds a Trim node. trimWhat may be nil (defaults to a single
// space at render time). wherePresent distinguishes "no WHERE clause"
// from "WHERE BOTH" since both cases can otherwise look like a zero
// value.
func NewTrim(expr, trimWhat *ScalarExpression, where TrimSide, wherePresent bool) *ScalarExpression {
	return &ScalarExpression{kind: KindTrim, expr: expr, trimWhat: trimWhat, trimWhere: where, trimWherePresent: wherePresent}
}

func NewIf(condition, left, right *ScalarExpression, ty types.LogicalType) *ScalarExpression {
	return &ScalarExpression{kind: KindIf, condition: condition, left: left, right: right, ty: ty}
}

func NewIfNull(left, right *ScalarExpression, ty types.LogicalType) *ScalarExpression {
	return &ScalarExpression{kind: KindIfNull, left: left, right: right, ty: ty}
}

func NewNullIf(left, right *ScalarExpression, ty types.LogicalType) *ScalarExpression {
	return &ScalarExpression{kind: KindNullIf, left: left, right: right, ty: ty}
}

func NewCaseWhen(operand *ScalarExpression, pairs []CaseBranch, elseExpr *ScalarExpression, ty types.LogicalType) *ScalarExpression {
	return &ScalarExpression{kind: KindCaseWhen, operand: operand, pairs: pairs, elseExpr: elseExpr, ty: ty}
}

// newReference builds the positional-reference wrapper TryReference
// installs. It is unexported: the only legal way to produce a
// Reference node is through TryReference, never directly by a
// translator.
func newReference(original *ScalarExpression, pos int) *ScalarExpression {
	return &ScalarExpression{kind: KindReference, expr: original, refPos: pos}
}

func (e *ScalarExpression) mustBe(kinds ...Kind) {
	for _, k := range kinds {
		if e.kind == k {
			return
		}
	}
	panic(invariantViolation("field access on wrong Kind: have " + e.kind.String()))
}

// --- Field accessors (only meaningful under the documented Kind) -----

func (e *ScalarExpression) Constant() value.ValueRef   { e.mustBe(KindConstant); return e.constant }
func (e *ScalarExpression) Column() catalog.ColumnRef  { e.mustBe(KindColumnRef); return e.column }
func (e *ScalarExpression) ReferencePos() int          { e.mustBe(KindReference); return e.refPos }
func (e *ScalarExpression) ReferenceExpr() *ScalarExpression {
	e.mustBe(KindReference)
	return e.expr
}
func (e *ScalarExpression) Expr() *ScalarExpression {
	e.mustBe(KindAlias, KindTypeCast, KindIsNull, KindUnary, KindSubString, KindPosition, KindTrim)
	return e.expr
}
func (e *ScalarExpression) Ty() types.LogicalType {
	e.mustBe(KindTypeCast, KindUnary, KindBinary, KindAggCall, KindCoalesce, KindIf, KindIfNull, KindNullIf, KindCaseWhen)
	return e.ty
}
func (e *ScalarExpression) Negated() bool {
	e.mustBe(KindIsNull, KindIn, KindBetween)
	return e.negated
}
func (e *ScalarExpression) UnaryOp() optoken.UnaryOperator { e.mustBe(KindUnary); return e.unaryOp }
func (e *ScalarExpression) UnaryEvaluator() evaluator.UnaryEvaluator {
	e.mustBe(KindUnary)
	return e.unaryEvaluator
}
func (e *ScalarExpression) BinaryOp() optoken.BinaryOperator { e.mustBe(KindBinary); return e.binaryOp }
func (e *ScalarExpression) Left() *ScalarExpression {
	e.mustBe(KindBinary, KindBetween, KindIf, KindIfNull, KindNullIf)
	return e.left
}
func (e *ScalarExpression) Right() *ScalarExpression {
	e.mustBe(KindBinary, KindBetween, KindIf, KindIfNull, KindNullIf)
	return e.right
}
func (e *ScalarExpression) BinaryEvaluator() evaluator.BinaryEvaluator {
	e.mustBe(KindBinary)
	return e.binaryEvaluator
}
func (e *ScalarExpression) Args() []*ScalarExpression {
	e.mustBe(KindTuple, KindAggCall, KindCoalesce, KindScalaFunction, KindTableFunction, KindIn)
	return e.args
}
func (e *ScalarExpression) Distinct() bool      { e.mustBe(KindAggCall); return e.distinct }
func (e *ScalarExpression) AggKind() agg.Kind   { e.mustBe(KindAggCall); return e.aggKind }
func (e *ScalarExpression) ScalaInner() scala.Descriptor {
	e.mustBe(KindScalaFunction)
	return e.scalaInner
}
func (e *ScalarExpression) TableInner() table.Descriptor {
	e.mustBe(KindTableFunction)
	return e.tableInner
}
func (e *ScalarExpression) SubFrom() *ScalarExpression { e.mustBe(KindSubString); return e.subFrom }
func (e *ScalarExpression) SubFor() *ScalarExpression  { e.mustBe(KindSubString); return e.subFor }
func (e *ScalarExpression) PositionIn() *ScalarExpression { e.mustBe(KindPosition); return e.posIn }
func (e *ScalarExpression) TrimWhat() *ScalarExpression { e.mustBe(KindTrim); return e.trimWhat }
func (e *ScalarExpression) TrimWhere() (TrimSide, bool) {
	e.mustBe(KindTrim)
	return e.trimWhere, e.trimWherePresent
}
func (e *ScalarExpression) Condition() *ScalarExpression { e.mustBe(KindIf); return e.condition }
func (e *ScalarExpression) Operand() *ScalarExpression   { e.mustBe(KindCaseWhen); return e.operand }
func (e *ScalarExpression) Pairs() []CaseBranch          { e.mustBe(KindCaseWhen); return e.pairs }
func (e *ScalarExpression) ElseExpr() *ScalarExpression  { e.mustBe(KindCaseWhen); return e.elseExpr }

func (e *ScalarExpression) String() string { return e.OutputName() }
