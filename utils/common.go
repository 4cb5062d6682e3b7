package utils

import "errors"

// ErrDimensionMismatch is returned by the numeric Vector and Matrix operations
// when operand shapes are incompatible.
var ErrDimensionMismatch = errors.New("utils: dimension mismatch")
