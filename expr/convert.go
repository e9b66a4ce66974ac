// SPDX-License-Identifier: MIT
// Package: expr
//
// Purpose:
//   - Turn Go numeric values into Expr leaves through one generic path.
//   - Encode floats as exact rationals over a fixed power-of-ten denominator.
//
// Numeric policy:
//   - float32 inputs are widened to float64 and scaled by Float32Denominator;
//     float64 inputs are scaled by Float64Denominator.
//   - The scaled value is truncated toward zero, then n/D is reduced by gcd.
//   - A reduced denominator of 1 collapses to a bare literal.
//   - NaN/±Inf → ErrInvalidNumericInput; |n| ≥ 2^63 → ErrArithmeticOverflow.

package expr

import (
	"math"
)

const (
	// Float32Denominator is the fixed scale applied to float32 inputs.
	Float32Denominator = 10_000_000

	// Float64Denominator is the fixed scale applied to float64 inputs.
	Float64Denominator = 10_000_000_000
)

// int64Limit is 2^63, the first float beyond the int64 range.
const int64Limit = float64(1 << 63)

// Number is the set of Go numeric types accepted by From.
// Named types are not included so that From can dispatch on the exact type.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr |
		float32 | float64
}

// From converts any supported numeric value into an Expr.
// Integers become literals; floats go through FromFloat32/FromFloat64.
// Returns ErrArithmeticOverflow for unsigned values above MaxInt64.
func From[T Number](v T) (Expr, error) {
	switch x := any(v).(type) {
	case float32:
		return FromFloat32(x)
	case float64:
		return FromFloat64(x)
	case uint:
		return fromUint64(uint64(x))
	case uint64:
		return fromUint64(x)
	case uintptr:
		return fromUint64(uint64(x))
	}
	// Remaining types (signed ints, uint8..uint32) always fit int64.
	return Int(int64(v)), nil
}

// Must is like From but panics on error.
// Intended for literals whose validity is known at the call site.
func Must[T Number](v T) Expr {
	e, err := From(v)
	if err != nil {
		panic(err)
	}
	return e
}

func fromUint64(u uint64) (Expr, error) {
	if u > math.MaxInt64 {
		return Expr{}, exprErrorf("From", ErrArithmeticOverflow)
	}
	return Int(int64(u)), nil
}

// FromFloat64 converts v into n/d with d dividing Float64Denominator.
// Guarantees |result.Evaluate() - v| < 1/Float64Denominator.
// Complexity: O(log D) for the gcd.
func FromFloat64(v float64) (Expr, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Expr{}, exprErrorf("FromFloat64", ErrInvalidNumericInput)
	}
	return fromScaled("FromFloat64", math.Trunc(v*Float64Denominator), Float64Denominator)
}

// FromFloat32 converts v into n/d with d dividing Float32Denominator.
// Guarantees |result.Evaluate() - float64(v)| < 1/Float32Denominator.
func FromFloat32(v float32) (Expr, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Expr{}, exprErrorf("FromFloat32", ErrInvalidNumericInput)
	}
	return fromScaled("FromFloat32", math.Trunc(f*Float32Denominator), Float32Denominator)
}

// fromScaled reduces the truncated numerator n over den.
func fromScaled(tag string, n float64, den int64) (Expr, error) {
	if n >= int64Limit || n < -int64Limit || math.IsInf(n, 0) {
		return Expr{}, exprErrorf(tag, ErrArithmeticOverflow)
	}
	return Frac(int64(n), den), nil
}

// Frac returns the literal ratio n/d in lowest terms with a positive
// denominator, collapsing to Int(n/d) when the reduced denominator is 1.
// d == 0, or a reduction that would overflow (MinInt64 sign flip), yields
// the unreduced Div(n, d) node.
func Frac(n, d int64) Expr {
	if d == 0 {
		return node(OpDiv, Int(n), Int(0))
	}
	if d < 0 {
		if n == math.MinInt64 || d == math.MinInt64 {
			return node(OpDiv, Int(n), Int(d))
		}
		n, d = -n, -d
	}
	if g := GCD(n, d); g > 1 {
		n, d = n/g, d/g
	}
	if d == 1 {
		return Int(n)
	}
	return node(OpDiv, Int(n), Int(d))
}

// GCD returns the greatest common divisor of |a| and |b| by Euclid's
// algorithm. GCD(0, 0) == 0. If the result would be 2^63 (only for
// MinInt64 operands) it is reported as 1, meaning "do not reduce".
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		if a == math.MinInt64 {
			return 1
		}
		a = -a
	}
	return a
}
