// SPDX-License-Identifier: MIT
// Package linear: sentinel error set.
// Only checked accessors (At/Set) report errors; every arithmetic operation is
// total and defers numeric failure to expr.Expr.Evaluate.

package linear

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates that a component, row or column index is outside
// the fixed dimension of the vector or matrix.
var ErrOutOfRange = errors.New("linear: index out of range")

// linearErrorf wraps an underlying error with a method tag and the offending index.
func linearErrorf(method string, idx int, err error) error {
	return fmt.Errorf("%s(%d): %w", method, idx, err)
}
