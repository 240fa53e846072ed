// Package scala defines the scalar-function descriptor contract a
// ScalaFunction node's inner field implements: the function registry
// is an external collaborator, named here only by the interface the
// core needs to render OutputName and answer ReturnType.
package scala

import "github.com/kestrelsql/scalarexpr/types"

// Summary identifies a registered scalar function by name, the part of
// its descriptor OutputName embeds for a ScalaFunction node.
type Summary struct {
	Name string
}

// Descriptor is the external scalar-function registry entry a
// ScalaFunction node carries. It never appears standalone in this
// module: it is always wrapped by expression.ScalaFunction together
// with the node's argument list.
type Descriptor interface {
	Summary() Summary
	ReturnType() types.LogicalType
}
