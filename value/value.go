// Package value provides a shared-ownership handle to an immutable SQL
// literal, carrying the LogicalType that ReturnType reads off directly
// for a Constant node.
package value

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kestrelsql/scalarexpr/types"
)

// Value is the concrete literal payload. Raw holds the native Go
// representation appropriate to LogicalType's tag:
//
//	Boolean             bool
//	Tinyint..Bigint     int64
//	UTinyint..UBigint   uint64
//	Float, Double       float64
//	Decimal             decimal.Decimal
//	Date/Time/...       time.Time
//	Varchar             string
//	nil Raw             SQL NULL, regardless of LogicalType
type Value struct {
	raw interface{}
	ty  types.LogicalType
}

// ValueRef is the shared-ownership handle the algebra stores; in Go a
// pointer plays that role since Value is never mutated post-construction.
type ValueRef = *Value

func New(raw interface{}, ty types.LogicalType) ValueRef {
	return &Value{raw: raw, ty: ty}
}

func Null(ty types.LogicalType) ValueRef {
	return &Value{raw: nil, ty: ty}
}

func (v *Value) LogicalType() types.LogicalType { return v.ty }
func (v *Value) Raw() interface{}               { return v.raw }
func (v *Value) IsNull() bool                   { return v.raw == nil }

// String renders the literal the way OutputName embeds it directly into
// a tree's canonical name for a Constant node.
func (v *Value) String() string {
	if v.raw == nil {
		return "NULL"
	}
	switch r := v.raw.(type) {
	case string:
		return fmt.Sprintf("'%s'", r)
	case decimal.Decimal:
		return r.String()
	case time.Time:
		return r.Format(time.RFC3339)
	case bool:
		if r {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", r)
	}
}
