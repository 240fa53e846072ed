// Package agg defines the AggKind collaborator an AggCall node carries:
// the enumeration of aggregate functions the planner's aggregation
// operator understands, plus the DISTINCT-eligibility and textual
// rendering OutputName needs.
package agg

// Kind is the closed set of aggregate functions a ScalarExpression
// AggCall node can name.
type Kind uint8

const (
	Count Kind = iota
	Sum
	Min
	Max
	Avg
)

func (k Kind) String() string {
	switch k {
	case Count:
		return "Count"
	case Sum:
		return "Sum"
	case Min:
		return "Min"
	case Max:
		return "Max"
	case Avg:
		return "Avg"
	default:
		return "Unknown"
	}
}

// AllowDistinct reports whether DISTINCT is meaningful for this kind.
// Min/Max ignore DISTINCT: the minimum of a multiset and of its
// distinct-valued set are the same.
func (k Kind) AllowDistinct() bool {
	switch k {
	case Min, Max:
		return false
	default:
		return true
	}
}
