package expression

import (
	"fmt"

	"github.com/kestrelsql/scalarexpr/dberrors"
)

// invariantViolation builds the panic value every internal-invariant
// violation in this package raises: these are bugs, not user errors,
// and fail loudly with a diagnostic naming the violated invariant.
// Walkers recover from nothing; a caller that wants this turned into
// an error return wraps the walker call in its own recover().
func invariantViolation(msg string) error {
	return dberrors.Wrap(dberrors.ErrInternalInvariant.New(msg))
}

func panicEmptyReached(where string) {
	panic(invariantViolation(fmt.Sprintf("Empty reached in %s", where)))
}

func panicTableFunctionReached(where string) {
	panic(invariantViolation(fmt.Sprintf("TableFunction reached in %s", where)))
}
