package expression

import (
	"github.com/kestrelsql/scalarexpr/catalog"
	"github.com/kestrelsql/scalarexpr/expression/agg"
	"github.com/kestrelsql/scalarexpr/expression/function/scala"
	"github.com/kestrelsql/scalarexpr/expression/function/table"
	"github.com/kestrelsql/scalarexpr/internal/gobcodec"
	"github.com/kestrelsql/scalarexpr/optoken"
	"github.com/kestrelsql/scalarexpr/types"
	"github.com/kestrelsql/scalarexpr/value"
)

// placeholderScalaFunc/placeholderTableFunc stand in for a
// ScalaFunction/TableFunction node's real registry entry across a
// decode: the registry is an external collaborator this module never
// owns, so only the function's name survives the round trip verbatim.
// placeholderScalaFunc also carries its descriptor's ReturnType, read
// off the live descriptor at encode time, so a decoded ScalaFunction
// node still answers ReturnType() correctly; placeholderTableFunc has
// no such value to carry since ReturnType on a TableFunction node is
// never callable in the first place (an internal-invariant violation),
// live descriptor or not. A caller reviving a decoded tree for
// evaluation is expected to look the live descriptor back up by name
// and swap it in before calling BindEvaluator again.
type placeholderScalaFunc struct {
	name string
	ty   types.LogicalType
}

func (p placeholderScalaFunc) Summary() scala.Summary        { return scala.Summary{Name: p.name} }
func (p placeholderScalaFunc) ReturnType() types.LogicalType { return p.ty }

type placeholderTableFunc struct {
	name string
	ty   types.LogicalType
}

func (p placeholderTableFunc) Summary() table.Summary        { return table.Summary{Name: p.name} }
func (p placeholderTableFunc) ReturnType() types.LogicalType { return p.ty }

// wireExpr is ScalarExpression's exported mirror for gob, which cannot
// reach unexported fields through reflection. Evaluator slots are not
// part of the wire form: they are bind-time caches the caller restores
// by calling BindEvaluator again after decode, the same as binding a
// freshly built tree.
type wireExpr struct {
	Kind Kind

	Constant value.ValueRef
	Column   catalog.ColumnRef

	RefPos int

	Expr  *wireExpr
	Left  *wireExpr
	Right *wireExpr

	AliasName *string
	AliasExpr *wireExpr

	Ty types.LogicalType

	Negated bool

	UnaryOp  optoken.UnaryOperator
	BinaryOp optoken.BinaryOperator

	Args []*wireExpr

	Distinct bool
	AggKind  agg.Kind

	ScalaName *string
	TableName *string

	SubFrom *wireExpr
	SubFor  *wireExpr

	PosIn *wireExpr

	TrimWhat         *wireExpr
	TrimWhere        TrimSide
	TrimWherePresent bool

	Condition *wireExpr

	Operand  *wireExpr
	Pairs    []wireCaseBranch
	ElseExpr *wireExpr
}

type wireCaseBranch struct {
	When *wireExpr
	Then *wireExpr
}

func toWire(e *ScalarExpression) *wireExpr {
	if e == nil {
		return nil
	}
	w := &wireExpr{
		Kind:             e.kind,
		Constant:         e.constant,
		Column:           e.column,
		RefPos:           e.refPos,
		Expr:             toWire(e.expr),
		Left:             toWire(e.left),
		Right:            toWire(e.right),
		AliasName:        e.aliasName,
		AliasExpr:        toWire(e.aliasExpr),
		Ty:               e.ty,
		Negated:          e.negated,
		UnaryOp:          e.unaryOp,
		BinaryOp:         e.binaryOp,
		Distinct:         e.distinct,
		AggKind:          e.aggKind,
		SubFrom:          toWire(e.subFrom),
		SubFor:           toWire(e.subFor),
		PosIn:            toWire(e.posIn),
		TrimWhat:         toWire(e.trimWhat),
		TrimWhere:        e.trimWhere,
		TrimWherePresent: e.trimWherePresent,
		Condition:        toWire(e.condition),
		Operand:          toWire(e.operand),
		ElseExpr:         toWire(e.elseExpr),
	}
	if len(e.args) > 0 {
		w.Args = make([]*wireExpr, len(e.args))
		for i, a := range e.args {
			w.Args[i] = toWire(a)
		}
	}
	if len(e.pairs) > 0 {
		w.Pairs = make([]wireCaseBranch, len(e.pairs))
		for i, p := range e.pairs {
			w.Pairs[i] = wireCaseBranch{When: toWire(p.When), Then: toWire(p.Then)}
		}
	}
	if e.scalaInner != nil {
		name := e.scalaInner.Summary().Name
		w.ScalaName = &name
		// ScalaFunction carries no e.ty of its own; its ReturnType comes
		// from the descriptor. Capture it here so a decoded placeholder
		// still answers ReturnType() correctly without a live registry.
		w.Ty = e.scalaInner.ReturnType()
	}
	if e.tableInner != nil {
		name := e.tableInner.Summary().Name
		w.TableName = &name
	}
	return w
}

func fromWire(w *wireExpr) *ScalarExpression {
	if w == nil {
		return nil
	}
	e := &ScalarExpression{
		kind:             w.Kind,
		constant:         w.Constant,
		column:           w.Column,
		refPos:           w.RefPos,
		expr:             fromWire(w.Expr),
		left:             fromWire(w.Left),
		right:            fromWire(w.Right),
		aliasName:        w.AliasName,
		aliasExpr:        fromWire(w.AliasExpr),
		ty:               w.Ty,
		negated:          w.Negated,
		unaryOp:          w.UnaryOp,
		binaryOp:         w.BinaryOp,
		distinct:         w.Distinct,
		aggKind:          w.AggKind,
		subFrom:          fromWire(w.SubFrom),
		subFor:           fromWire(w.SubFor),
		posIn:            fromWire(w.PosIn),
		trimWhat:         fromWire(w.TrimWhat),
		trimWhere:        w.TrimWhere,
		trimWherePresent: w.TrimWherePresent,
		condition:        fromWire(w.Condition),
		operand:          fromWire(w.Operand),
		elseExpr:         fromWire(w.ElseExpr),
	}
	if len(w.Args) > 0 {
		e.args = make([]*ScalarExpression, len(w.Args))
		for i, a := range w.Args {
			e.args[i] = fromWire(a)
		}
	}
	if len(w.Pairs) > 0 {
		e.pairs = make([]CaseBranch, len(w.Pairs))
		for i, p := range w.Pairs {
			e.pairs[i] = CaseBranch{When: fromWire(p.When), Then: fromWire(p.Then)}
		}
	}
	if w.ScalaName != nil {
		e.scalaInner = placeholderScalaFunc{name: *w.ScalaName, ty: w.Ty}
	}
	if w.TableName != nil {
		e.tableInner = placeholderTableFunc{name: *w.TableName, ty: w.Ty}
	}
	return e
}

// GobEncode implements gob.GobEncoder over the tagged-struct
// representation.
func (e *ScalarExpression) GobEncode() ([]byte, error) {
	return gobcodec.Encode(toWire(e))
}

func (e *ScalarExpression) GobDecode(data []byte) error {
	var w wireExpr
	if err := gobcodec.Decode(data, &w); err != nil {
		return err
	}
	*e = *fromWire(&w)
	return nil
}
