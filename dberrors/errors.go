// Package dberrors defines the error taxonomy shared by the scalar
// expression core: operator-token translation, type resolution and
// evaluator binding all surface one of these kinds rather than an ad
// hoc error, so a planner can switch on kind without string matching.
package dberrors

import (
	stderrors "gopkg.in/src-d/go-errors.v1"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupported is raised when the translator hands the core a
	// parser operator token outside the supported set.
	ErrUnsupported = stderrors.NewKind("unsupported operator token: %s")

	// ErrTypeMismatch is raised when types.MaxLogicalType fails during
	// evaluator binding.
	ErrTypeMismatch = stderrors.NewKind("type mismatch binding %q: %s")

	// ErrUnsupportedOperator is raised when the evaluator factory has no
	// kernel for a (type, operator) pair.
	ErrUnsupportedOperator = stderrors.NewKind("no evaluator for %s %s")

	// ErrInternalInvariant marks a bug, not a user error: reaching
	// Empty, querying TableFunction where a walker forbids it, or an
	// unsigned type outside the documented cast mapping.
	ErrInternalInvariant = stderrors.NewKind("internal invariant violated: %s")
)

// Is reports whether err was produced by kind, looking through any
// wrapping applied by Wrap.
func Is(kind *stderrors.Kind, err error) bool {
	for err != nil {
		if kind.Is(err) {
			return true
		}
		c, ok := err.(interface{ Cause() error })
		if !ok {
			return false
		}
		err = c.Cause()
	}
	return false
}

// Wrap attaches a stack trace to an internal-invariant violation before
// it is surfaced to the planner, so a crash report names the call site
// that tripped the invariant rather than just the invariant's message.
func Wrap(err error) error {
	return errors.WithStack(err)
}
