package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrUnboundVariable is returned by strict evaluation when a term refers to
	// a variable that the evaluation point does not bind.
	ErrUnboundVariable = errors.New("poly: unbound variable")

	// ErrDimensionMismatch is returned when polynomial vectors or matrices have
	// incompatible shapes, e.g. MultMat where cols(A) != rows(B).
	ErrDimensionMismatch = errors.New("poly: dimension mismatch")
)

func polyErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
