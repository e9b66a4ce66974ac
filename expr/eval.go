// SPDX-License-Identifier: MIT

package expr

import "math"

// Evaluate computes the float64 value of e.
// It is the only way to turn a tree into a number. Division by zero and
// degenerate powers follow IEEE-754 and are not reported as errors.
// Complexity: O(n) in the node count; recursion depth equals Depth().
func (e Expr) Evaluate() float64 {
	if e.op == OpValue {
		return float64(e.val)
	}
	l, r := e.lhs.Evaluate(), e.rhs.Evaluate()
	switch e.op {
	case OpAdd:
		return l + r
	case OpSub:
		return l - r
	case OpMul:
		return l * r
	case OpDiv:
		return l / r
	case OpRem:
		return math.Mod(l, r)
	case OpExp:
		return math.Pow(l, r)
	}
	return math.NaN()
}

// IsFinite reports whether e evaluates to neither NaN nor ±Inf.
func (e Expr) IsFinite() bool {
	v := e.Evaluate()
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Equal reports whether e and o evaluate to the same number.
// Trees of different shape may be equal; NaN is equal to nothing.
func (e Expr) Equal(o Expr) bool {
	return e.Evaluate() == o.Evaluate()
}

// Compare returns -1, 0 or +1 by comparing evaluated values.
// Unordered pairs (either side NaN) compare as 0.
func (e Expr) Compare(o Expr) int {
	l, r := e.Evaluate(), o.Evaluate()
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}
	return 0
}

// Less reports whether e evaluates to less than o.
func (e Expr) Less(o Expr) bool {
	return e.Evaluate() < o.Evaluate()
}
