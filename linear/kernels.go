// SPDX-License-Identifier: MIT
// Package: linear
//
// Purpose:
//   - Dimension-agnostic kernels over []expr.Expr shared by Vec2/3/4 and
//     Mat2/3/4. The typed methods slice their backing array and delegate here,
//     so each algorithm is written once.
//
// Determinism:
//   - Fixed loop orders (i ascending; matrices i→j→k). Sums are folded left to
//     right starting from the first term, so the resulting tree shape is
//     stable and never carries a leading "0 +".

package linear

import (
	"strings"

	"github.com/katalvlaran/exact/expr"
)

// half is the exponent used by norm.
var half = expr.Frac(1, 2)

func addInto(dst, a, b []expr.Expr) {
	for i := range dst {
		dst[i] = a[i].Add(b[i])
	}
}

func subInto(dst, a, b []expr.Expr) {
	for i := range dst {
		dst[i] = a[i].Sub(b[i])
	}
}

// mulInto is the componentwise (Hadamard) product.
func mulInto(dst, a, b []expr.Expr) {
	for i := range dst {
		dst[i] = a[i].Mul(b[i])
	}
}

func divInto(dst, a []expr.Expr, d expr.Expr) {
	for i := range dst {
		dst[i] = a[i].Div(d)
	}
}

func scaleInto(dst []expr.Expr, s expr.Expr, a []expr.Expr) {
	for i := range dst {
		dst[i] = a[i].Mul(s)
	}
}

// dot returns Σ a[i]*b[i].
func dot(a, b []expr.Expr) expr.Expr {
	terms := make([]expr.Expr, len(a))
	mulInto(terms, a, b)
	return expr.Sum(terms...)
}

// norm returns (Σ a[i]^2)^(1/2).
func norm(a []expr.Expr) expr.Expr {
	two := expr.Int(2)
	sq := make([]expr.Expr, len(a))
	for i := range a {
		sq[i] = a[i].Pow(two)
	}
	return expr.Sum(sq...).Pow(half)
}

func equal(a, b []expr.Expr) bool {
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func evaluateInto(dst []float64, a []expr.Expr) {
	for i := range a {
		dst[i] = a[i].Evaluate()
	}
}

// format renders a as "[c0, c1, ...]" using expr.Expr.String.
func format(a []expr.Expr) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range a {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a[i].String())
	}
	sb.WriteByte(']')
	return sb.String()
}

func convertAll[T expr.Number](vals ...T) ([]expr.Expr, error) {
	out := make([]expr.Expr, len(vals))
	for i, v := range vals {
		e, err := expr.From(v)
		if err != nil {
			return nil, linearErrorf("convert", i, err)
		}
		out[i] = e
	}
	return out, nil
}

// ---------- row-major n×n matrix kernels ----------

func identityInto(dst []expr.Expr, n int) {
	for i := range dst {
		dst[i] = expr.Int(0)
	}
	for i := 0; i < n; i++ {
		dst[i*n+i] = expr.Int(1)
	}
}

// matMulInto computes dst = a × b. dst must not alias a or b.
func matMulInto(dst, a, b []expr.Expr, n int) {
	terms := make([]expr.Expr, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				terms[k] = a[i*n+k].Mul(b[k*n+j])
			}
			dst[i*n+j] = expr.Sum(terms...)
		}
	}
}

// matVecInto computes dst = a × v for a column vector v.
func matVecInto(dst, a, v []expr.Expr, n int) {
	for i := 0; i < n; i++ {
		dst[i] = dot(a[i*n:(i+1)*n], v)
	}
}

func transposeInto(dst, a []expr.Expr, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst[j*n+i] = a[i*n+j]
		}
	}
}

func rowOf(dst, a []expr.Expr, n, i int) {
	copy(dst, a[i*n:(i+1)*n])
}

func colOf(dst, a []expr.Expr, n, j int) {
	for i := 0; i < n; i++ {
		dst[i] = a[i*n+j]
	}
}

// det computes the determinant by cofactor expansion along row 0.
// Complexity: O(n!) nodes; n ≤ 4 here.
func det(a []expr.Expr, n int) expr.Expr {
	switch n {
	case 1:
		return a[0]
	case 2:
		return a[0].Mul(a[3]).Sub(a[1].Mul(a[2]))
	}
	minor := make([]expr.Expr, (n-1)*(n-1))
	var acc expr.Expr
	for j := 0; j < n; j++ {
		k := 0
		for r := 1; r < n; r++ {
			for c := 0; c < n; c++ {
				if c == j {
					continue
				}
				minor[k] = a[r*n+c]
				k++
			}
		}
		term := a[j].Mul(det(minor, n-1))
		switch {
		case j == 0:
			acc = term
		case j%2 == 1:
			acc = acc.Sub(term)
		default:
			acc = acc.Add(term)
		}
	}
	return acc
}
