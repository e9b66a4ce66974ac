// SPDX-License-Identifier: MIT

// Package expr implements an exact, deferred-evaluation scalar.
//
// What & Why:
//
//	An Expr is an immutable binary tree whose leaves are int64 literals and
//	whose inner nodes are one of six arithmetic operators. Arithmetic on Expr
//	values builds a new tree instead of computing a float, and floats enter
//	the tree as exact rationals (Div of two reduced literals). Rounding
//	happens exactly once, in Evaluate.
//
// Semantics:
//
//   - Construction applies a small, fixed set of canonicalizations
//     (x*1, x*0, x/1, literal/literal, x^0, x^1, 0^x). Nothing else is
//     simplified; in particular a subtree that merely evaluates to zero is
//     not treated as the literal zero.
//   - Equal/Compare/Less compare evaluated values, not tree shape.
//     Identical compares shape.
//   - Division by a zero-valued subtree is not an error: Evaluate returns
//     ±Inf or NaN and callers that need finite results check IsFinite.
//
// Concurrency:
//
//	Nodes are never mutated after construction, so any Expr may be read and
//	evaluated from multiple goroutines without synchronization.
package expr

// Op tags the variant of an Expr node.
type Op uint8

const (
	// OpValue is a leaf holding an int64 literal.
	OpValue Op = iota
	// OpAdd is lhs + rhs.
	OpAdd
	// OpSub is lhs - rhs.
	OpSub
	// OpMul is lhs * rhs.
	OpMul
	// OpDiv is lhs / rhs.
	OpDiv
	// OpRem is the floating-point remainder of lhs / rhs.
	OpRem
	// OpExp is lhs raised to the power rhs.
	OpExp
)

// opInfo holds the display symbol and the serialization tag of each Op.
var opInfo = [...]struct {
	symbol string
	tag    string
}{
	OpValue: {"", "Value"},
	OpAdd:   {"+", "Add"},
	OpSub:   {"-", "Sub"},
	OpMul:   {"*", "Mul"},
	OpDiv:   {"/", "Div"},
	OpRem:   {"%", "Rem"},
	OpExp:   {"^", "Exp"},
}

// String returns the serialization tag of op ("Value", "Add", ...).
func (op Op) String() string {
	if int(op) < len(opInfo) {
		return opInfo[op].tag
	}
	return "Op(?)"
}

// Symbol returns the infix symbol used by Expr.String, or "" for OpValue.
func (op Op) Symbol() string {
	if int(op) < len(opInfo) {
		return opInfo[op].symbol
	}
	return "?"
}

// Expr is an exact scalar expression.
// The zero value is the literal 0.
type Expr struct {
	op  Op
	val int64 // literal, meaningful only when op == OpValue
	lhs *Expr // nil iff op == OpValue
	rhs *Expr // nil iff op == OpValue
}

// Int returns the literal n.
func Int(n int64) Expr { return Expr{op: OpValue, val: n} }

// node builds an inner node without applying any simplification.
func node(op Op, l, r Expr) Expr {
	return Expr{op: op, lhs: &l, rhs: &r}
}

// Op returns the variant tag of e.
// Complexity: O(1).
func (e Expr) Op() Op { return e.op }

// Literal returns the leaf value and true if e is a literal.
func (e Expr) Literal() (int64, bool) {
	if e.op != OpValue {
		return 0, false
	}
	return e.val, true
}

// isLiteral reports whether e is exactly the literal n.
func (e Expr) isLiteral(n int64) bool {
	return e.op == OpValue && e.val == n
}

// Operands returns the two children of an inner node.
// For a literal the result is (Expr{}, Expr{}, false).
func (e Expr) Operands() (lhs, rhs Expr, ok bool) {
	if e.op == OpValue {
		return Expr{}, Expr{}, false
	}
	return *e.lhs, *e.rhs, true
}

// Depth returns the height of the tree; a literal has depth 1.
// Complexity: O(n) in the node count.
func (e Expr) Depth() int {
	if e.op == OpValue {
		return 1
	}
	return 1 + max(e.lhs.Depth(), e.rhs.Depth())
}

// Size returns the number of nodes in the tree.
// Complexity: O(n).
func (e Expr) Size() int {
	if e.op == OpValue {
		return 1
	}
	return 1 + e.lhs.Size() + e.rhs.Size()
}

// Identical reports whether e and o have the same shape and literals.
// Unlike Equal it does not evaluate: (1 + 2) is not identical to 3.
// Complexity: O(min(n, m)).
func (e Expr) Identical(o Expr) bool {
	if e.op != o.op {
		return false
	}
	if e.op == OpValue {
		return e.val == o.val
	}
	return e.lhs.Identical(*o.lhs) && e.rhs.Identical(*o.rhs)
}
