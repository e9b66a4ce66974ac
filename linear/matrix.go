// SPDX-License-Identifier: MIT
// Package: linear
//
// Mat2, Mat3 and Mat4 are square matrices of expr.Expr in row-major order:
// m[row*N+col]. Plain indexing (m[i]) addresses the linear offset; At/Set
// take (row, col) and report ErrOutOfRange instead of panicking.
// Products, determinants and transposes build trees only; no operation here
// rounds.

package linear

import "github.com/katalvlaran/exact/expr"

// matrixIndex validates (row, col) for an n×n matrix and returns its offset.
func matrixIndex(method string, n, row, col int) (int, error) {
	if row < 0 || row >= n {
		return 0, linearErrorf(method+" row", row, ErrOutOfRange)
	}
	if col < 0 || col >= n {
		return 0, linearErrorf(method+" col", col, ErrOutOfRange)
	}
	return row*n + col, nil
}

// Mat2 is a row-major 2x2 matrix of expr.Expr.
type Mat2 [4]expr.Expr

// Identity2 returns the 2x2 identity matrix.
func Identity2() (m Mat2) {
	identityInto(m[:], 2)
	return
}

// At returns element (row, col).
func (m Mat2) At(row, col int) (expr.Expr, error) {
	i, err := matrixIndex("Mat2.At", 2, row, col)
	if err != nil {
		return expr.Expr{}, err
	}
	return m[i], nil
}

// Set replaces element (row, col).
func (m *Mat2) Set(row, col int, e expr.Expr) error {
	i, err := matrixIndex("Mat2.Set", 2, row, col)
	if err != nil {
		return err
	}
	m[i] = e
	return nil
}

// Row returns row i. It panics if i is out of range.
func (m Mat2) Row(i int) (v Vec2) {
	rowOf(v[:], m[:], 2, i)
	return
}

// Col returns column j. It panics if j is out of range.
func (m Mat2) Col(j int) (v Vec2) {
	colOf(v[:], m[:], 2, j)
	return
}

// Add returns m + n.
func (m Mat2) Add(n Mat2) (r Mat2) {
	addInto(r[:], m[:], n[:])
	return
}

// Sub returns m - n.
func (m Mat2) Sub(n Mat2) (r Mat2) {
	subInto(r[:], m[:], n[:])
	return
}

// Scale returns s ⋅ m.
func (m Mat2) Scale(s expr.Expr) (r Mat2) {
	scaleInto(r[:], s, m[:])
	return
}

// Mul returns m ⋅ n.
func (m Mat2) Mul(n Mat2) (r Mat2) {
	matMulInto(r[:], m[:], n[:], 2)
	return
}

// MulVec returns m ⋅ v with v as a column vector.
func (m Mat2) MulVec(v Vec2) (u Vec2) {
	matVecInto(u[:], m[:], v[:], 2)
	return
}

// Transpose returns mᵀ.
func (m Mat2) Transpose() (r Mat2) {
	transposeInto(r[:], m[:], 2)
	return
}

// Det returns the determinant of m.
func (m Mat2) Det() expr.Expr { return det(m[:], 2) }

// Equal reports whether m and n are elementwise equal by value.
func (m Mat2) Equal(n Mat2) bool { return equal(m[:], n[:]) }

// Evaluate returns the float64 value of each element, row-major.
func (m Mat2) Evaluate() (f [4]float64) {
	evaluateInto(f[:], m[:])
	return
}

// String renders m as a flat row-major list.
func (m Mat2) String() string { return format(m[:]) }

// Mat3 is a row-major 3x3 matrix of expr.Expr.
type Mat3 [9]expr.Expr

// Identity3 returns the 3x3 identity matrix.
func Identity3() (m Mat3) {
	identityInto(m[:], 3)
	return
}

// At returns element (row, col).
func (m Mat3) At(row, col int) (expr.Expr, error) {
	i, err := matrixIndex("Mat3.At", 3, row, col)
	if err != nil {
		return expr.Expr{}, err
	}
	return m[i], nil
}

// Set replaces element (row, col).
func (m *Mat3) Set(row, col int, e expr.Expr) error {
	i, err := matrixIndex("Mat3.Set", 3, row, col)
	if err != nil {
		return err
	}
	m[i] = e
	return nil
}

// Row returns row i. It panics if i is out of range.
func (m Mat3) Row(i int) (v Vec3) {
	rowOf(v[:], m[:], 3, i)
	return
}

// Col returns column j. It panics if j is out of range.
func (m Mat3) Col(j int) (v Vec3) {
	colOf(v[:], m[:], 3, j)
	return
}

// Add returns m + n.
func (m Mat3) Add(n Mat3) (r Mat3) {
	addInto(r[:], m[:], n[:])
	return
}

// Sub returns m - n.
func (m Mat3) Sub(n Mat3) (r Mat3) {
	subInto(r[:], m[:], n[:])
	return
}

// Scale returns s ⋅ m.
func (m Mat3) Scale(s expr.Expr) (r Mat3) {
	scaleInto(r[:], s, m[:])
	return
}

// Mul returns m ⋅ n.
func (m Mat3) Mul(n Mat3) (r Mat3) {
	matMulInto(r[:], m[:], n[:], 3)
	return
}

// MulVec returns m ⋅ v with v as a column vector.
func (m Mat3) MulVec(v Vec3) (u Vec3) {
	matVecInto(u[:], m[:], v[:], 3)
	return
}

// Transpose returns mᵀ.
func (m Mat3) Transpose() (r Mat3) {
	transposeInto(r[:], m[:], 3)
	return
}

// Det returns the determinant of m by cofactor expansion along row 0.
func (m Mat3) Det() expr.Expr { return det(m[:], 3) }

// Equal reports whether m and n are elementwise equal by value.
func (m Mat3) Equal(n Mat3) bool { return equal(m[:], n[:]) }

// Evaluate returns the float64 value of each element, row-major.
func (m Mat3) Evaluate() (f [9]float64) {
	evaluateInto(f[:], m[:])
	return
}

// String renders m as a flat row-major list.
func (m Mat3) String() string { return format(m[:]) }

// Mat4 is a row-major 4x4 matrix of expr.Expr.
type Mat4 [16]expr.Expr

// Identity4 returns the 4x4 identity matrix.
func Identity4() (m Mat4) {
	identityInto(m[:], 4)
	return
}

// At returns element (row, col).
func (m Mat4) At(row, col int) (expr.Expr, error) {
	i, err := matrixIndex("Mat4.At", 4, row, col)
	if err != nil {
		return expr.Expr{}, err
	}
	return m[i], nil
}

// Set replaces element (row, col).
func (m *Mat4) Set(row, col int, e expr.Expr) error {
	i, err := matrixIndex("Mat4.Set", 4, row, col)
	if err != nil {
		return err
	}
	m[i] = e
	return nil
}

// Row returns row i. It panics if i is out of range.
func (m Mat4) Row(i int) (v Vec4) {
	rowOf(v[:], m[:], 4, i)
	return
}

// Col returns column j. It panics if j is out of range.
func (m Mat4) Col(j int) (v Vec4) {
	colOf(v[:], m[:], 4, j)
	return
}

// Add returns m + n.
func (m Mat4) Add(n Mat4) (r Mat4) {
	addInto(r[:], m[:], n[:])
	return
}

// Sub returns m - n.
func (m Mat4) Sub(n Mat4) (r Mat4) {
	subInto(r[:], m[:], n[:])
	return
}

// Scale returns s ⋅ m.
func (m Mat4) Scale(s expr.Expr) (r Mat4) {
	scaleInto(r[:], s, m[:])
	return
}

// Mul returns m ⋅ n.
func (m Mat4) Mul(n Mat4) (r Mat4) {
	matMulInto(r[:], m[:], n[:], 4)
	return
}

// MulVec returns m ⋅ v with v as a column vector.
func (m Mat4) MulVec(v Vec4) (u Vec4) {
	matVecInto(u[:], m[:], v[:], 4)
	return
}

// Transpose returns mᵀ.
func (m Mat4) Transpose() (r Mat4) {
	transposeInto(r[:], m[:], 4)
	return
}

// Det returns the determinant of m by cofactor expansion along row 0.
// The tree has O(4!) product terms.
func (m Mat4) Det() expr.Expr { return det(m[:], 4) }

// Equal reports whether m and n are elementwise equal by value.
func (m Mat4) Equal(n Mat4) bool { return equal(m[:], n[:]) }

// Evaluate returns the float64 value of each element, row-major.
func (m Mat4) Evaluate() (f [16]float64) {
	evaluateInto(f[:], m[:])
	return
}

// String renders m as a flat row-major list.
func (m Mat4) String() string { return format(m[:]) }
