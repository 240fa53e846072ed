// Package catalog provides a shared-ownership handle to catalog
// metadata. Real columns are compared by a stable per-column identity
// rather than by name or type, since two columns can render identically
// while coming from distinct tables; synthetic pseudo-columns are
// compared by name and type.
package catalog

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kestrelsql/scalarexpr/types"
)

// ColumnDesc carries the attributes of a catalog column beyond its
// name and type: nullability, primary-key membership and an optional
// default value.
type ColumnDesc struct {
	Nullable   bool
	PrimaryKey bool
	Default    *string
}

func NewColumnDesc(nullable, primaryKey bool, def *string) ColumnDesc {
	return ColumnDesc{Nullable: nullable, PrimaryKey: primaryKey, Default: def}
}

// Column is the concrete ColumnCatalog entry. It is never mutated after
// it is handed out as a ColumnRef: construct a new Column rather than
// editing one in place.
type Column struct {
	id        uuid.UUID
	fullName  string
	datatype  types.LogicalType
	desc      ColumnDesc
	synthetic bool
}

// ColumnRef is the shared-ownership handle the expression algebra
// stores. In Go this is simply a pointer: the catalog owns the Column
// value and every expression tree referencing it shares the same
// pointer. Summary() gives the string identity used for comparisons
// and debug output.
type ColumnRef = *Column

// New constructs a catalog column. full_name is the fully-qualified
// rendering (e.g. "t1.a"); id should be stable for the lifetime of the
// catalog entry.
func New(id uuid.UUID, fullName string, datatype types.LogicalType, desc ColumnDesc) ColumnRef {
	return &Column{id: id, fullName: fullName, datatype: datatype, desc: desc}
}

// NewSynthetic builds the pseudo-column ScalarExpression.OutputColumn
// presents a composite expression as. Unlike New, it carries no per-call
// identity: its Summary() is derived from fullName and datatype alone,
// so two independently built expressions that render identically (the
// same composite subtree computed at two different plan levels) produce
// equal summaries and the reference rewriter can match them. A fresh
// uuid.New() per call would defeat that matching, since every call would
// mint a distinct, never-again-equal identity.
func NewSynthetic(fullName string, datatype types.LogicalType) ColumnRef {
	return &Column{fullName: fullName, datatype: datatype, desc: ColumnDesc{Nullable: true}, synthetic: true}
}

func (c *Column) FullName() string            { return c.fullName }
func (c *Column) DataType() types.LogicalType { return c.datatype }
func (c *Column) Desc() ColumnDesc            { return c.desc }

// Summary is the stable identity used by the reference rewriter's
// matching key: two ColumnRefs are the "same column" iff their
// Summary()s are equal. Real catalog columns key on their id, never on
// FullName or DataType alone, because two different catalog entries can
// share both. Synthetic pseudo-columns have no per-call id to key on
// and instead key on name plus type, so that two equally-rendered
// composite expressions compare equal.
func (c *Column) Summary() string {
	if c.synthetic {
		return fmt.Sprintf("~%s:%s", c.fullName, c.datatype.String())
	}
	return fmt.Sprintf("%s:%s", c.id, c.fullName)
}

func (c *Column) String() string {
	return c.fullName
}
