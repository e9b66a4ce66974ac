// SPDX-License-Identifier: MIT

// Package codec reads and writes named expressions, vectors and matrices as
// JSON, YAML or TOML documents.
//
// Every expression is stored in the tagged form of package expr
// ({"Add": [{"Value": 1}, {"Value": 2}]}); vectors and matrices are arrays of
// such expressions, matrices in row-major order. Decoding rebuilds trees
// exactly as written.
package codec

import (
	"sort"

	"github.com/katalvlaran/exact/expr"
	"github.com/katalvlaran/exact/linear"
)

// Document is a named collection of scalars, vectors and matrices.
type Document struct {
	Scalars  map[string]expr.Expr   `json:"scalars,omitempty" yaml:"scalars,omitempty"`
	Vectors  map[string][]expr.Expr `json:"vectors,omitempty" yaml:"vectors,omitempty"`
	Matrices map[string][]expr.Expr `json:"matrices,omitempty" yaml:"matrices,omitempty"`
}

// NewDocument returns an empty document with allocated maps.
func NewDocument() *Document {
	return &Document{
		Scalars:  make(map[string]expr.Expr),
		Vectors:  make(map[string][]expr.Expr),
		Matrices: make(map[string][]expr.Expr),
	}
}

// PutScalar stores e under name.
func (d *Document) PutScalar(name string, e expr.Expr) {
	if d.Scalars == nil {
		d.Scalars = make(map[string]expr.Expr)
	}
	d.Scalars[name] = e
}

// PutVector stores the components of a vector under name.
// Returns ErrBadShape unless 2 ≤ len(comps) ≤ 4.
func (d *Document) PutVector(name string, comps ...expr.Expr) error {
	if len(comps) < 2 || len(comps) > 4 {
		return codecErrorf("PutVector "+name, ErrBadShape)
	}
	if d.Vectors == nil {
		d.Vectors = make(map[string][]expr.Expr)
	}
	d.Vectors[name] = append([]expr.Expr(nil), comps...)
	return nil
}

// PutMatrix stores the row-major elements of a square matrix under name.
// Returns ErrBadShape unless len(elems) is 4, 9 or 16.
func (d *Document) PutMatrix(name string, elems ...expr.Expr) error {
	if _, ok := matrixDim(len(elems)); !ok {
		return codecErrorf("PutMatrix "+name, ErrBadShape)
	}
	if d.Matrices == nil {
		d.Matrices = make(map[string][]expr.Expr)
	}
	d.Matrices[name] = append([]expr.Expr(nil), elems...)
	return nil
}

// Scalar returns the scalar stored under name.
func (d *Document) Scalar(name string) (expr.Expr, error) {
	e, ok := d.Scalars[name]
	if !ok {
		return expr.Expr{}, codecErrorf("Scalar "+name, ErrNotFound)
	}
	return e, nil
}

// Vector returns the vector stored under name as linear.Vec2, Vec3 or Vec4
// depending on its length.
func (d *Document) Vector(name string) (any, error) {
	c, ok := d.Vectors[name]
	if !ok {
		return nil, codecErrorf("Vector "+name, ErrNotFound)
	}
	switch len(c) {
	case 2:
		return linear.Vec2(c), nil
	case 3:
		return linear.Vec3(c), nil
	case 4:
		return linear.Vec4(c), nil
	}
	return nil, codecErrorf("Vector "+name, ErrBadShape)
}

// Matrix returns the matrix stored under name as linear.Mat2, Mat3 or Mat4
// depending on its element count.
func (d *Document) Matrix(name string) (any, error) {
	c, ok := d.Matrices[name]
	if !ok {
		return nil, codecErrorf("Matrix "+name, ErrNotFound)
	}
	switch len(c) {
	case 4:
		return linear.Mat2(c), nil
	case 9:
		return linear.Mat3(c), nil
	case 16:
		return linear.Mat4(c), nil
	}
	return nil, codecErrorf("Matrix "+name, ErrBadShape)
}

// Names returns the sorted names of all entries of the given section
// ("scalars", "vectors" or "matrices").
func (d *Document) Names(section string) []string {
	var keys []string
	switch section {
	case "scalars":
		for k := range d.Scalars {
			keys = append(keys, k)
		}
	case "vectors":
		for k := range d.Vectors {
			keys = append(keys, k)
		}
	case "matrices":
		for k := range d.Matrices {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// validate checks vector and matrix shapes and the depth limit.
func (d *Document) validate(maxDepth int) error {
	for name, e := range d.Scalars {
		if err := checkDepth(e, maxDepth); err != nil {
			return codecErrorf("scalars."+name, err)
		}
	}
	for name, c := range d.Vectors {
		if len(c) < 2 || len(c) > 4 {
			return codecErrorf("vectors."+name, ErrBadShape)
		}
		for _, e := range c {
			if err := checkDepth(e, maxDepth); err != nil {
				return codecErrorf("vectors."+name, err)
			}
		}
	}
	for name, c := range d.Matrices {
		if _, ok := matrixDim(len(c)); !ok {
			return codecErrorf("matrices."+name, ErrBadShape)
		}
		for _, e := range c {
			if err := checkDepth(e, maxDepth); err != nil {
				return codecErrorf("matrices."+name, err)
			}
		}
	}
	return nil
}

func checkDepth(e expr.Expr, maxDepth int) error {
	if maxDepth > 0 && e.Depth() > maxDepth {
		return ErrTooDeep
	}
	return nil
}

// matrixDim returns N for an N×N element count with N in {2,3,4}.
func matrixDim(n int) (int, bool) {
	switch n {
	case 4:
		return 2, true
	case 9:
		return 3, true
	case 16:
		return 4, true
	}
	return 0, false
}
