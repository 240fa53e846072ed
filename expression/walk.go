package expression

import (
	"fmt"
	"strings"

	"github.com/kestrelsql/scalarexpr/catalog"
	"github.com/kestrelsql/scalarexpr/expression/agg"
	"github.com/kestrelsql/scalarexpr/types"
)

// ReturnType computes the resolved LogicalType of e. It is total over
// any tree that never contains Empty or TableFunction; both panic with
// an internal-invariant violation.
func (e *ScalarExpression) ReturnType() types.LogicalType {
	switch e.kind {
	case KindConstant:
		return e.constant.LogicalType()
	case KindColumnRef:
		return e.column.DataType()
	case KindBinary, KindUnary, KindTypeCast, KindAggCall,
		KindIf, KindIfNull, KindNullIf, KindCoalesce, KindCaseWhen:
		return e.ty
	case KindIsNull, KindIn, KindBetween:
		return types.New(types.Boolean)
	case KindSubString, KindTrim:
		return types.NewVarchar(nil, types.Characters)
	case KindPosition:
		return types.New(types.Integer)
	case KindAlias, KindReference:
		return e.expr.ReturnType()
	case KindTuple:
		return types.New(types.Tuple)
	case KindScalaFunction:
		return e.scalaInner.ReturnType()
	case KindEmpty:
		panicEmptyReached("return_type")
	case KindTableFunction:
		panicTableFunctionReached("return_type")
	}
	panic(invariantViolation("return_type: unhandled Kind " + e.kind.String()))
}

// OutputName renders e's deterministic canonical name. It is the
// matching key OutputColumn uses and must therefore stay stable across
// compilations of the same tree.
func (e *ScalarExpression) OutputName() string {
	switch e.kind {
	case KindConstant:
		return e.constant.String()
	case KindColumnRef:
		return e.column.FullName()
	case KindEmpty:
		panicEmptyReached("output_name")
	case KindReference:
		return e.expr.OutputName()
	case KindAlias:
		if e.aliasName != nil {
			return *e.aliasName
		}
		return fmt.Sprintf("(%s) as (%s)", e.expr.OutputName(), e.aliasExpr.OutputName())
	case KindTypeCast:
		return fmt.Sprintf("cast (%s as %s)", e.expr.OutputName(), e.ty)
	case KindIsNull:
		suffix := "is null"
		if e.negated {
			suffix = "is not null"
		}
		return fmt.Sprintf("%s %s", e.expr.OutputName(), suffix)
	case KindUnary:
		return fmt.Sprintf("%s%s", e.unaryOp, e.expr.OutputName())
	case KindBinary:
		return fmt.Sprintf("(%s %s %s)", e.left.OutputName(), e.binaryOp, e.right.OutputName())
	case KindAggCall:
		if isCountStar(e) {
			return "Count(*)"
		}
		distinctPrefix := ""
		if e.aggKind.AllowDistinct() && e.distinct {
			distinctPrefix = "distinct "
		}
		return fmt.Sprintf("%s(%s%s)", e.aggKind, distinctPrefix, joinOutputNames(e.args))
	case KindIn:
		opString := "in"
		if e.negated {
			opString = "not in"
		}
		return fmt.Sprintf("%s %s (%s)", e.expr.OutputName(), opString, joinOutputNames(e.args))
	case KindBetween:
		opString := "between"
		if e.negated {
			opString = "not between"
		}
		return fmt.Sprintf("%s %s [%s, %s]", e.expr.OutputName(), opString, e.left.OutputName(), e.right.OutputName())
	case KindSubString:
		part := func(tag string, sub *ScalarExpression) string {
			if sub == nil {
				return ""
			}
			return fmt.Sprintf(", %s: %s", tag, sub.OutputName())
		}
		return fmt.Sprintf("substring(%s%s%s)", e.expr.OutputName(), part("from", e.subFrom), part("for", e.subFor))
	case KindPosition:
		return fmt.Sprintf("position(%s in %s)", e.expr.OutputName(), e.posIn.OutputName())
	case KindTrim:
		trimWhatStr := " "
		if e.trimWhat != nil {
			trimWhatStr = e.trimWhat.OutputName()
		}
		var trimWhereStr string
		if e.trimWherePresent {
			switch e.trimWhere {
			case TrimBoth:
				trimWhereStr = fmt.Sprintf("both '%s' from", trimWhatStr)
			case TrimLeading:
				trimWhereStr = fmt.Sprintf("leading '%s' from", trimWhatStr)
			case TrimTrailing:
				trimWhereStr = fmt.Sprintf("trailing '%s' from", trimWhatStr)
			}
		} else if e.trimWhat != nil {
			trimWhereStr = fmt.Sprintf("'%s' from", trimWhatStr)
		}
		return fmt.Sprintf("trim(%s %s)", trimWhereStr, e.expr.OutputName())
	case KindTuple:
		return fmt.Sprintf("(%s)", joinOutputNames(e.args))
	case KindCoalesce:
		return fmt.Sprintf("coalesce(%s)", joinOutputNames(e.args))
	case KindScalaFunction:
		return fmt.Sprintf("%s(%s)", e.scalaInner.Summary().Name, joinOutputNames(e.args))
	case KindTableFunction:
		return fmt.Sprintf("%s(%s)", e.tableInner.Summary().Name, joinOutputNames(e.args))
	case KindIf:
		return fmt.Sprintf("if %s (%s, %s)", e.condition.OutputName(), e.left.OutputName(), e.right.OutputName())
	case KindIfNull:
		return fmt.Sprintf("ifnull(%s, %s)", e.left.OutputName(), e.right.OutputName())
	case KindNullIf:
		return fmt.Sprintf("nullif(%s, %s)", e.left.OutputName(), e.right.OutputName())
	case KindCaseWhen:
		var b strings.Builder
		b.WriteString("case ")
		if e.operand != nil {
			b.WriteString(e.operand.OutputName())
			b.WriteString(" ")
		}
		pairs := make([]string, len(e.pairs))
		for i, p := range e.pairs {
			pairs[i] = fmt.Sprintf("when %s then %s", p.When.OutputName(), p.Then.OutputName())
		}
		b.WriteString(strings.Join(pairs, " "))
		b.WriteString(" ")
		if e.elseExpr != nil {
			b.WriteString(fmt.Sprintf("else %s ", e.elseExpr.OutputName()))
		}
		b.WriteString("end")
		return b.String()
	}
	panic(invariantViolation("output_name: unhandled Kind " + e.kind.String()))
}

func joinOutputNames(exprs []*ScalarExpression) string {
	names := make([]string, len(exprs))
	for i, ex := range exprs {
		names[i] = ex.OutputName()
	}
	return strings.Join(names, ", ")
}

// OutputColumn returns e's own ColumnRef, or the inner ColumnRef if e
// is an expression-aliased Alias/Reference, or a freshly synthesised
// pseudo-column otherwise. This is the matching target the reference
// rewriter keys on.
func (e *ScalarExpression) OutputColumn() catalog.ColumnRef {
	switch e.kind {
	case KindColumnRef:
		return e.column
	case KindReference:
		return e.expr.OutputColumn()
	case KindAlias:
		if e.aliasExpr != nil {
			return e.expr.OutputColumn()
		}
	}
	if e.synthCol == nil {
		e.synthCol = catalog.NewSynthetic(e.OutputName(), e.ReturnType())
	}
	return e.synthCol
}

// ReferencedColumns collects every ColumnRef reachable in pre-order.
// When onlyColumnRef is false every sub-expression also contributes its
// own synthetic output column, presenting composite expressions as
// pseudo-columns upstream. Duplicates are preserved.
func (e *ScalarExpression) ReferencedColumns(onlyColumnRef bool) []catalog.ColumnRef {
	var out []catalog.ColumnRef
	e.collectColumns(&out, onlyColumnRef)
	return out
}

func (e *ScalarExpression) collectColumns(out *[]catalog.ColumnRef, onlyColumnRef bool) {
	if !onlyColumnRef {
		*out = append(*out, e.OutputColumn())
	}
	switch e.kind {
	case KindColumnRef:
		*out = append(*out, e.column)
	case KindAlias, KindTypeCast, KindIsNull, KindUnary:
		e.expr.collectColumns(out, onlyColumnRef)
	case KindBinary:
		e.left.collectColumns(out, onlyColumnRef)
		e.right.collectColumns(out, onlyColumnRef)
	case KindAggCall, KindScalaFunction, KindTableFunction, KindTuple, KindCoalesce:
		for _, a := range e.args {
			a.collectColumns(out, onlyColumnRef)
		}
	case KindIn:
		e.expr.collectColumns(out, onlyColumnRef)
		for _, a := range e.args {
			a.collectColumns(out, onlyColumnRef)
		}
	case KindBetween:
		e.expr.collectColumns(out, onlyColumnRef)
		e.left.collectColumns(out, onlyColumnRef)
		e.right.collectColumns(out, onlyColumnRef)
	case KindSubString:
		e.expr.collectColumns(out, onlyColumnRef)
		if e.subFrom != nil {
			e.subFrom.collectColumns(out, onlyColumnRef)
		}
		if e.subFor != nil {
			e.subFor.collectColumns(out, onlyColumnRef)
		}
	case KindPosition:
		e.expr.collectColumns(out, onlyColumnRef)
		e.posIn.collectColumns(out, onlyColumnRef)
	case KindTrim:
		e.expr.collectColumns(out, onlyColumnRef)
		if e.trimWhat != nil {
			e.trimWhat.collectColumns(out, onlyColumnRef)
		}
	case KindConstant:
	case KindReference, KindEmpty:
		panic(invariantViolation("referenced_columns: unreachable Kind " + e.kind.String()))
	case KindIf:
		e.condition.collectColumns(out, onlyColumnRef)
		e.left.collectColumns(out, onlyColumnRef)
		e.right.collectColumns(out, onlyColumnRef)
	case KindIfNull, KindNullIf:
		e.left.collectColumns(out, onlyColumnRef)
		e.right.collectColumns(out, onlyColumnRef)
	case KindCaseWhen:
		if e.operand != nil {
			e.operand.collectColumns(out, onlyColumnRef)
		}
		for _, p := range e.pairs {
			p.When.collectColumns(out, onlyColumnRef)
			p.Then.collectColumns(out, onlyColumnRef)
		}
		if e.elseExpr != nil {
			e.elseExpr.collectColumns(out, onlyColumnRef)
		}
	}
}

// HasAggCall reports whether e contains any AggCall node.
func (e *ScalarExpression) HasAggCall() bool {
	switch e.kind {
	case KindAggCall:
		return true
	case KindConstant, KindColumnRef:
		return false
	case KindAlias, KindTypeCast, KindIsNull, KindUnary:
		return e.expr.HasAggCall()
	case KindBinary:
		return e.left.HasAggCall() || e.right.HasAggCall()
	case KindIn:
		if e.expr.HasAggCall() {
			return true
		}
		return anyHasAggCall(e.args)
	case KindBetween:
		return e.expr.HasAggCall() || e.left.HasAggCall() || e.right.HasAggCall()
	case KindSubString:
		if e.expr.HasAggCall() {
			return true
		}
		if e.subFor != nil && e.subFor.HasAggCall() {
			return true
		}
		return e.subFrom != nil && e.subFrom.HasAggCall()
	case KindPosition:
		return e.expr.HasAggCall() || e.posIn.HasAggCall()
	case KindTrim:
		if e.expr.HasAggCall() {
			return true
		}
		return e.trimWhat != nil && e.trimWhat.HasAggCall()
	case KindReference, KindEmpty, KindTableFunction:
		panic(invariantViolation("has_agg_call: unreachable Kind " + e.kind.String()))
	case KindTuple, KindScalaFunction, KindCoalesce:
		return anyHasAggCall(e.args)
	case KindIf:
		return e.condition.HasAggCall() || e.left.HasAggCall() || e.right.HasAggCall()
	case KindIfNull, KindNullIf:
		return e.left.HasAggCall() || e.right.HasAggCall()
	case KindCaseWhen:
		if e.operand != nil && e.operand.HasAggCall() {
			return true
		}
		for _, p := range e.pairs {
			if p.When.HasAggCall() || p.Then.HasAggCall() {
				return true
			}
		}
		return e.elseExpr != nil && e.elseExpr.HasAggCall()
	}
	panic(invariantViolation("has_agg_call: unhandled Kind " + e.kind.String()))
}

func anyHasAggCall(exprs []*ScalarExpression) bool {
	for _, e := range exprs {
		if e.HasAggCall() {
			return true
		}
	}
	return false
}

// HasCountStar reports whether e contains the specific Count(*) shape
// the aggregation-kind enum recognises: an AggCall with kind Count
// that has either no arguments or a single Constant "*" placeholder
// argument (see isCountStar).
func (e *ScalarExpression) HasCountStar() bool {
	if e.kind == KindAggCall && isCountStar(e) {
		return true
	}
	switch e.kind {
	case KindAlias, KindTypeCast, KindIsNull, KindUnary:
		return e.expr.HasCountStar()
	case KindBinary:
		return e.left.HasCountStar() || e.right.HasCountStar()
	case KindAggCall, KindScalaFunction, KindCoalesce:
		return anyHasCountStar(e.args)
	case KindConstant, KindColumnRef:
		return false
	case KindIn:
		return e.expr.HasCountStar() || anyHasCountStar(e.args)
	case KindBetween:
		return e.expr.HasCountStar() || e.left.HasCountStar() || e.right.HasCountStar()
	case KindSubString:
		if e.expr.HasCountStar() {
			return true
		}
		if e.subFrom != nil && e.subFrom.HasCountStar() {
			return true
		}
		return e.subFor != nil && e.subFor.HasCountStar()
	case KindPosition:
		return e.expr.HasCountStar() || e.posIn.HasCountStar()
	case KindTrim:
		if e.expr.HasCountStar() {
			return true
		}
		return e.trimWhat != nil && e.trimWhat.HasCountStar()
	case KindEmpty, KindReference:
		panic(invariantViolation("has_count_star: unreachable Kind " + e.kind.String()))
	case KindTableFunction:
		panicTableFunctionReached("has_count_star")
	case KindTuple:
		return anyHasCountStar(e.args)
	case KindIf:
		return e.condition.HasCountStar() || e.left.HasCountStar() || e.right.HasCountStar()
	case KindIfNull, KindNullIf:
		return e.left.HasCountStar() || e.right.HasCountStar()
	case KindCaseWhen:
		if e.operand != nil && e.operand.HasCountStar() {
			return true
		}
		for _, p := range e.pairs {
			if p.When.HasCountStar() || p.Then.HasCountStar() {
				return true
			}
		}
		return e.elseExpr != nil && e.elseExpr.HasCountStar()
	}
	return false
}

func anyHasCountStar(exprs []*ScalarExpression) bool {
	for _, e := range exprs {
		if e.HasCountStar() {
			return true
		}
	}
	return false
}

// isCountStar recognises the COUNT(*) shape. Two translator conventions
// are accepted: a Count AggCall with no arguments (since "*" names no
// column), or a Count AggCall whose single argument is a Constant
// carrying the literal "*" placeholder.
func isCountStar(e *ScalarExpression) bool {
	if e.aggKind != agg.Count {
		return false
	}
	if len(e.args) == 0 {
		return true
	}
	return len(e.args) == 1 && isStarConstant(e.args[0])
}

func isStarConstant(e *ScalarExpression) bool {
	if e.kind != KindConstant {
		return false
	}
	s, ok := e.constant.Raw().(string)
	return ok && s == "*"
}

// --- UnpackAlias --------------------------------------------------

// UnpackAlias strips any number of nested Alias wrappers, both name
// aliases and expression aliases, returning the innermost non-alias
// expression. It consumes e: callers that still need the original tree
// should call UnpackAliasRef instead.
func UnpackAlias(e *ScalarExpression) *ScalarExpression {
	for e.kind == KindAlias {
		e = e.expr
	}
	return e
}

// UnpackAliasRef is the read-only form of UnpackAlias: it returns a
// pointer into the existing tree rather than consuming it.
func UnpackAliasRef(e *ScalarExpression) *ScalarExpression {
	for e.kind == KindAlias {
		e = e.expr
	}
	return e
}
