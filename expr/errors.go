// SPDX-License-Identifier: MIT
// Package expr: sentinel error set.
// Every constructor that can fail returns one of these sentinels, possibly
// wrapped with a call-site tag; callers match with errors.Is. Arithmetic on
// already-built trees never fails: division by a zero-valued subtree and
// similar degenerate cases surface as NaN/±Inf from Evaluate instead.

package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumericInput is returned when a NaN or ±Inf float is passed
	// to a rational conversion.
	ErrInvalidNumericInput = errors.New("expr: invalid numeric input")

	// ErrArithmeticOverflow is returned when a literal does not fit the
	// int64 leaf, e.g. a uint64 above MaxInt64 or a float whose scaled
	// numerator exceeds the int64 range.
	ErrArithmeticOverflow = errors.New("expr: arithmetic overflow")

	// ErrMalformed is returned by the decoders when serialized input does not
	// describe a valid tree (unknown tag, wrong arity, non-integer leaf).
	ErrMalformed = errors.New("expr: malformed expression")
)

// exprErrorf wraps an underlying error with the given call-site tag.
func exprErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
