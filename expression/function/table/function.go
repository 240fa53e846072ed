// Package table defines the table-function descriptor contract a
// TableFunction node's inner field implements. The core never calls
// ReturnType on it directly; calling ReturnType on a TableFunction node
// is an internal-invariant violation, but the interface carries the
// method anyway since the planner's function registry exposes it
// uniformly across scalar and table functions.
package table

import "github.com/kestrelsql/scalarexpr/types"

// Summary identifies a registered table function by name.
type Summary struct {
	Name string
}

// Descriptor is the external table-function registry entry a
// TableFunction node carries.
type Descriptor interface {
	Summary() Summary
	ReturnType() types.LogicalType
}
