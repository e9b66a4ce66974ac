// SPDX-License-Identifier: MIT

// Package linear implements fixed-size vectors and matrices over expr.Expr.
//
// Every operation builds expression trees component by component; nothing is
// rounded until Evaluate is called. Equality is componentwise expr.Expr.Equal,
// i.e. by value. Zero values are usable: a zero Vec3 is the zero vector and a
// zero Mat3 is the zero matrix.
//
// Matrices are stored row-major: element (row, col) of an N×N matrix lives at
// linear index row*N + col.
package linear

import "github.com/katalvlaran/exact/expr"

// Vec2 is a 2-component vector of expr.Expr.
type Vec2 [2]expr.Expr

// NewVec2 returns the vector (x, y).
func NewVec2(x, y expr.Expr) Vec2 { return Vec2{x, y} }

// Splat2 returns (s, s).
func Splat2(s expr.Expr) Vec2 { return Vec2{s, s} }

// Vec2Of converts numeric components into a Vec2.
func Vec2Of[T expr.Number](x, y T) (Vec2, error) {
	c, err := convertAll(x, y)
	if err != nil {
		return Vec2{}, err
	}
	return Vec2(c), nil
}

// X returns v[0].
func (v Vec2) X() expr.Expr { return v[0] }

// Y returns v[1].
func (v Vec2) Y() expr.Expr { return v[1] }

// At returns v[i] or ErrOutOfRange.
func (v Vec2) At(i int) (expr.Expr, error) {
	if i < 0 || i >= len(v) {
		return expr.Expr{}, linearErrorf("Vec2.At", i, ErrOutOfRange)
	}
	return v[i], nil
}

// Set replaces v[i] or returns ErrOutOfRange.
func (v *Vec2) Set(i int, e expr.Expr) error {
	if i < 0 || i >= len(v) {
		return linearErrorf("Vec2.Set", i, ErrOutOfRange)
	}
	v[i] = e
	return nil
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) (u Vec2) {
	addInto(u[:], v[:], w[:])
	return
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) (u Vec2) {
	subInto(u[:], v[:], w[:])
	return
}

// Scale returns s ⋅ v.
func (v Vec2) Scale(s expr.Expr) (u Vec2) {
	scaleInto(u[:], s, v[:])
	return
}

// Component returns the componentwise product of v and w.
func (v Vec2) Component(w Vec2) (u Vec2) {
	mulInto(u[:], v[:], w[:])
	return
}

// Dot returns v ⋅ w.
func (v Vec2) Dot(w Vec2) expr.Expr { return dot(v[:], w[:]) }

// Norm returns the Euclidean length of v as (x^2 + y^2)^(1/2).
func (v Vec2) Norm() expr.Expr { return norm(v[:]) }

// Normalize returns v with every component divided by Norm().
// The zero vector yields components that evaluate to NaN.
func (v Vec2) Normalize() (u Vec2) {
	divInto(u[:], v[:], v.Norm())
	return
}

// Equal reports whether v and w are componentwise equal by value.
func (v Vec2) Equal(w Vec2) bool { return equal(v[:], w[:]) }

// Evaluate returns the float64 value of each component.
func (v Vec2) Evaluate() (f [2]float64) {
	evaluateInto(f[:], v[:])
	return
}

// String renders v as "[x, y]".
func (v Vec2) String() string { return format(v[:]) }

// Vec3 is a 3-component vector of expr.Expr.
type Vec3 [3]expr.Expr

// NewVec3 returns the vector (x, y, z).
func NewVec3(x, y, z expr.Expr) Vec3 { return Vec3{x, y, z} }

// Splat3 returns (s, s, s).
func Splat3(s expr.Expr) Vec3 { return Vec3{s, s, s} }

// Vec3Of converts numeric components into a Vec3.
func Vec3Of[T expr.Number](x, y, z T) (Vec3, error) {
	c, err := convertAll(x, y, z)
	if err != nil {
		return Vec3{}, err
	}
	return Vec3(c), nil
}

// X returns v[0].
func (v Vec3) X() expr.Expr { return v[0] }

// Y returns v[1].
func (v Vec3) Y() expr.Expr { return v[1] }

// Z returns v[2].
func (v Vec3) Z() expr.Expr { return v[2] }

// At returns v[i] or ErrOutOfRange.
func (v Vec3) At(i int) (expr.Expr, error) {
	if i < 0 || i >= len(v) {
		return expr.Expr{}, linearErrorf("Vec3.At", i, ErrOutOfRange)
	}
	return v[i], nil
}

// Set replaces v[i] or returns ErrOutOfRange.
func (v *Vec3) Set(i int, e expr.Expr) error {
	if i < 0 || i >= len(v) {
		return linearErrorf("Vec3.Set", i, ErrOutOfRange)
	}
	v[i] = e
	return nil
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) (u Vec3) {
	addInto(u[:], v[:], w[:])
	return
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) (u Vec3) {
	subInto(u[:], v[:], w[:])
	return
}

// Scale returns s ⋅ v.
func (v Vec3) Scale(s expr.Expr) (u Vec3) {
	scaleInto(u[:], s, v[:])
	return
}

// Component returns the componentwise product of v and w.
func (v Vec3) Component(w Vec3) (u Vec3) {
	mulInto(u[:], v[:], w[:])
	return
}

// Dot returns v ⋅ w.
func (v Vec3) Dot(w Vec3) expr.Expr { return dot(v[:], w[:]) }

// Cross returns v × w.
func (v Vec3) Cross(w Vec3) (u Vec3) {
	u[0] = v[1].Mul(w[2]).Sub(v[2].Mul(w[1]))
	u[1] = v[2].Mul(w[0]).Sub(v[0].Mul(w[2]))
	u[2] = v[0].Mul(w[1]).Sub(v[1].Mul(w[0]))
	return
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() expr.Expr { return norm(v[:]) }

// Normalize returns v with every component divided by Norm().
func (v Vec3) Normalize() (u Vec3) {
	divInto(u[:], v[:], v.Norm())
	return
}

// Equal reports whether v and w are componentwise equal by value.
func (v Vec3) Equal(w Vec3) bool { return equal(v[:], w[:]) }

// Evaluate returns the float64 value of each component.
func (v Vec3) Evaluate() (f [3]float64) {
	evaluateInto(f[:], v[:])
	return
}

// String renders v as "[x, y, z]".
func (v Vec3) String() string { return format(v[:]) }

// Vec4 is a 4-component vector of expr.Expr.
type Vec4 [4]expr.Expr

// NewVec4 returns the vector (x, y, z, w).
func NewVec4(x, y, z, w expr.Expr) Vec4 { return Vec4{x, y, z, w} }

// Splat4 returns (s, s, s, s).
func Splat4(s expr.Expr) Vec4 { return Vec4{s, s, s, s} }

// Vec4Of converts numeric components into a Vec4.
func Vec4Of[T expr.Number](x, y, z, w T) (Vec4, error) {
	c, err := convertAll(x, y, z, w)
	if err != nil {
		return Vec4{}, err
	}
	return Vec4(c), nil
}

// X returns v[0].
func (v Vec4) X() expr.Expr { return v[0] }

// Y returns v[1].
func (v Vec4) Y() expr.Expr { return v[1] }

// Z returns v[2].
func (v Vec4) Z() expr.Expr { return v[2] }

// W returns v[3].
func (v Vec4) W() expr.Expr { return v[3] }

// At returns v[i] or ErrOutOfRange.
func (v Vec4) At(i int) (expr.Expr, error) {
	if i < 0 || i >= len(v) {
		return expr.Expr{}, linearErrorf("Vec4.At", i, ErrOutOfRange)
	}
	return v[i], nil
}

// Set replaces v[i] or returns ErrOutOfRange.
func (v *Vec4) Set(i int, e expr.Expr) error {
	if i < 0 || i >= len(v) {
		return linearErrorf("Vec4.Set", i, ErrOutOfRange)
	}
	v[i] = e
	return nil
}

// Add returns v + w.
func (v Vec4) Add(w Vec4) (u Vec4) {
	addInto(u[:], v[:], w[:])
	return
}

// Sub returns v - w.
func (v Vec4) Sub(w Vec4) (u Vec4) {
	subInto(u[:], v[:], w[:])
	return
}

// Scale returns s ⋅ v.
func (v Vec4) Scale(s expr.Expr) (u Vec4) {
	scaleInto(u[:], s, v[:])
	return
}

// Component returns the componentwise product of v and w.
func (v Vec4) Component(w Vec4) (u Vec4) {
	mulInto(u[:], v[:], w[:])
	return
}

// Dot returns v ⋅ w.
func (v Vec4) Dot(w Vec4) expr.Expr { return dot(v[:], w[:]) }

// Norm returns the Euclidean length of v.
func (v Vec4) Norm() expr.Expr { return norm(v[:]) }

// Normalize returns v with every component divided by Norm().
func (v Vec4) Normalize() (u Vec4) {
	divInto(u[:], v[:], v.Norm())
	return
}

// Equal reports whether v and w are componentwise equal by value.
func (v Vec4) Equal(w Vec4) bool { return equal(v[:], w[:]) }

// Evaluate returns the float64 value of each component.
func (v Vec4) Evaluate() (f [4]float64) {
	evaluateInto(f[:], v[:])
	return
}

// String renders v as "[x, y, z, w]".
func (v Vec4) String() string { return format(v[:]) }
