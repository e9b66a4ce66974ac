// SPDX-License-Identifier: MIT
// Package: expr
//
// Purpose:
//   - Binary arithmetic constructors. Each returns a new tree; operands are
//     never modified.
//
// Canonicalization (checked before a node is allocated, literal operands only):
//   - Mul:  0*x, x*0 → 0;  1*x → x;  x*1 → x.
//   - Div:  x/1 → x;  n/d (both literals, d ≠ 0) → reduced ratio (see Frac).
//   - Pow:  x^0 → 1;  x^1 → x;  0^x → 0.
//   - Add, Sub, Rem: none.
//
// These rules look at literal leaves only. They must stay that way: trees that
// merely evaluate to 0 or 1 are left alone.

package expr

import "math"

// Add returns e + o.
func (e Expr) Add(o Expr) Expr { return node(OpAdd, e, o) }

// Sub returns e - o.
func (e Expr) Sub(o Expr) Expr { return node(OpSub, e, o) }

// Mul returns e * o.
func (e Expr) Mul(o Expr) Expr {
	switch {
	case e.isLiteral(0) || o.isLiteral(0):
		return Int(0)
	case e.isLiteral(1):
		return o
	case o.isLiteral(1):
		return e
	}
	return node(OpMul, e, o)
}

// Div returns e / o.
// A zero divisor is accepted; Evaluate then yields ±Inf or NaN.
func (e Expr) Div(o Expr) Expr {
	if o.isLiteral(1) {
		return e
	}
	if e.op == OpValue && o.op == OpValue {
		return Frac(e.val, o.val)
	}
	return node(OpDiv, e, o)
}

// Rem returns the remainder of e / o with the sign of e (math.Mod).
func (e Expr) Rem(o Expr) Expr { return node(OpRem, e, o) }

// Pow returns e raised to the power o.
func (e Expr) Pow(o Expr) Expr {
	switch {
	case o.isLiteral(0):
		return Int(1)
	case o.isLiteral(1):
		return e
	case e.isLiteral(0):
		return Int(0)
	}
	return node(OpExp, e, o)
}

// Neg returns -e: a negated literal when e is a literal other than
// MinInt64, otherwise 0 - e.
func (e Expr) Neg() Expr {
	if e.op == OpValue && e.val != math.MinInt64 {
		return Int(-e.val)
	}
	return Int(0).Sub(e)
}

// Sum folds Add over xs left to right. Sum() is the literal 0 and
// Sum(x) is x itself.
func Sum(xs ...Expr) Expr {
	if len(xs) == 0 {
		return Int(0)
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = acc.Add(x)
	}
	return acc
}
