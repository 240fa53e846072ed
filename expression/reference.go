package expression

import "github.com/sirupsen/logrus"

// TryReference rewrites expr in place so that any subtree whose output
// column matches one of outputExprs's output columns is replaced by a
// Reference node carrying that subtree's position in outputExprs. This
// lets a downstream plan level read a value a previous level already
// computed instead of recomputing the whole subtree.
//
// Matching is keyed on Column.Summary(), not structural equality. A real
// catalog column's summary carries its catalog id, so two same-named
// columns from different tables never match; a composite subtree's
// synthetic output column is keyed on its rendered name and type, so
// two independently built subtrees that render identically do match.
func TryReference(expr *ScalarExpression, outputExprs []*ScalarExpression) *ScalarExpression {
	index := make(map[string]int, len(outputExprs))
	for i, oe := range outputExprs {
		summary := oe.OutputColumn().Summary()
		if _, seen := index[summary]; seen {
			continue
		}
		index[summary] = i
	}
	return tryReferenceNode(expr, index)
}

func tryReferenceNode(node *ScalarExpression, index map[string]int) *ScalarExpression {
	if node.kind == KindEmpty {
		panicEmptyReached("try_reference")
	}
	// A TableFunction has no ReturnType and so no output column to match;
	// only its arguments are candidates for rewriting.
	if node.kind != KindTableFunction {
		if pos, ok := index[node.OutputColumn().Summary()]; ok {
			logrus.WithFields(logrus.Fields{"pos": pos, "kind": node.kind.String()}).Debug("rewriting subtree to positional reference")
			return newReference(node, pos)
		}
	}

	switch node.kind {
	case KindConstant, KindColumnRef, KindReference:
		// terminal: nothing further to rewrite underneath.
	case KindAlias:
		node.expr = tryReferenceNode(node.expr, index)
		if node.aliasExpr != nil {
			node.aliasExpr = tryReferenceNode(node.aliasExpr, index)
		}
	case KindTypeCast, KindIsNull, KindUnary:
		node.expr = tryReferenceNode(node.expr, index)
	case KindBinary:
		node.left = tryReferenceNode(node.left, index)
		node.right = tryReferenceNode(node.right, index)
	case KindTuple, KindAggCall, KindCoalesce, KindScalaFunction, KindTableFunction:
		for i, a := range node.args {
			node.args[i] = tryReferenceNode(a, index)
		}
	case KindIn:
		node.expr = tryReferenceNode(node.expr, index)
		for i, a := range node.args {
			node.args[i] = tryReferenceNode(a, index)
		}
	case KindBetween:
		node.expr = tryReferenceNode(node.expr, index)
		node.left = tryReferenceNode(node.left, index)
		node.right = tryReferenceNode(node.right, index)
	case KindSubString:
		node.expr = tryReferenceNode(node.expr, index)
		if node.subFrom != nil {
			node.subFrom = tryReferenceNode(node.subFrom, index)
		}
		if node.subFor != nil {
			node.subFor = tryReferenceNode(node.subFor, index)
		}
	case KindPosition:
		node.expr = tryReferenceNode(node.expr, index)
		node.posIn = tryReferenceNode(node.posIn, index)
	case KindTrim:
		node.expr = tryReferenceNode(node.expr, index)
		if node.trimWhat != nil {
			node.trimWhat = tryReferenceNode(node.trimWhat, index)
		}
	case KindIf:
		node.condition = tryReferenceNode(node.condition, index)
		node.left = tryReferenceNode(node.left, index)
		node.right = tryReferenceNode(node.right, index)
	case KindIfNull, KindNullIf:
		node.left = tryReferenceNode(node.left, index)
		node.right = tryReferenceNode(node.right, index)
	case KindCaseWhen:
		if node.operand != nil {
			node.operand = tryReferenceNode(node.operand, index)
		}
		for i := range node.pairs {
			node.pairs[i].When = tryReferenceNode(node.pairs[i].When, index)
			node.pairs[i].Then = tryReferenceNode(node.pairs[i].Then, index)
		}
		if node.elseExpr != nil {
			node.elseExpr = tryReferenceNode(node.elseExpr, index)
		}
	default:
		panic(invariantViolation("try_reference: unhandled Kind " + node.kind.String()))
	}
	return node
}
