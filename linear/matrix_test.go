// SPDX-License-Identifier: MIT

package linear_test

import (
	"testing"

	"github.com/katalvlaran/exact/expr"
	"github.com/katalvlaran/exact/linear"
	"github.com/stretchr/testify/require"
)

func ints(xs ...int64) []expr.Expr {
	out := make([]expr.Expr, len(xs))
	for i, x := range xs {
		out[i] = expr.Int(x)
	}
	return out
}

func mat3(xs ...int64) (m linear.Mat3) {
	copy(m[:], ints(xs...))
	return
}

func mat4(xs ...int64) (m linear.Mat4) {
	copy(m[:], ints(xs...))
	return
}

func TestMat_RowMajorIndexing(t *testing.T) {
	t.Parallel()

	m := mat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	e, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, e.Evaluate())
	require.Equal(t, 6.0, m[1*3+2].Evaluate())

	require.NoError(t, m.Set(2, 0, expr.Frac(1, 2)))
	require.Equal(t, 0.5, m[6].Evaluate())

	_, err = m.At(3, 0)
	require.ErrorIs(t, err, linear.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, linear.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, expr.Int(1)), linear.ErrOutOfRange)

	var m2 linear.Mat2
	require.ErrorIs(t, m2.Set(2, 0, expr.Int(1)), linear.ErrOutOfRange)
	require.NoError(t, m2.Set(0, 1, expr.Int(4)))
	e, err = m2.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, e.Evaluate())

	var m4 linear.Mat4
	require.NoError(t, m4.Set(3, 3, expr.Int(7)))
	require.Equal(t, 7.0, m4[15].Evaluate())
	_, err = m4.At(4, 4)
	require.ErrorIs(t, err, linear.ErrOutOfRange)
}

func TestMat_RowCol(t *testing.T) {
	t.Parallel()

	m := mat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.Equal(t, [3]float64{4, 5, 6}, m.Row(1).Evaluate())
	require.Equal(t, [3]float64{3, 6, 9}, m.Col(2).Evaluate())

	var m2 linear.Mat2
	copy(m2[:], ints(1, 2, 3, 4))
	require.Equal(t, [2]float64{3, 4}, m2.Row(1).Evaluate())
	require.Equal(t, [2]float64{1, 3}, m2.Col(0).Evaluate())

	m4 := mat4(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	require.Equal(t, [4]float64{13, 14, 15, 16}, m4.Row(3).Evaluate())
	require.Equal(t, [4]float64{2, 6, 10, 14}, m4.Col(1).Evaluate())
}

func TestMat3_Mul(t *testing.T) {
	t.Parallel()

	a := mat3(1, 4, 7, 2, 5, 8, 3, 6, 9)
	b := mat3(0, 1, 0, 1, 0, 0, 0, 0, 1)
	// Right-multiplying by a permutation swaps the first two columns.
	require.Equal(t, [9]float64{4, 1, 7, 5, 2, 8, 6, 3, 9}, a.Mul(b).Evaluate())
	require.True(t, a.Mul(linear.Identity3()).Equal(a))
	require.True(t, linear.Identity3().Mul(a).Equal(a))
}

func TestMat_IdentityMulKeepsTreesSmall(t *testing.T) {
	t.Parallel()

	a := mat3(2, 0, 1, 1, 3, 2, 4, 2, 3)
	got := a.Mul(linear.Identity3())
	// Every product against a literal 0 or 1 collapses, so each entry is a
	// sum of literals only.
	for i := range got {
		require.LessOrEqual(t, got[i].Depth(), 3, "entry %d: %v", i, got[i])
	}
}

func TestMat_MulVec(t *testing.T) {
	t.Parallel()

	m := mat3(2, 0, 1, 1, 3, 2, 4, 2, 3)
	v := v3(t, -1, 0, 1)
	require.Equal(t, [3]float64{-1, 1, -1}, m.MulVec(v).Evaluate())
	require.True(t, linear.Identity3().MulVec(v).Equal(v))

	var m2 linear.Mat2
	copy(m2[:], ints(1, 2, 3, 4))
	require.Equal(t, [2]float64{5, 11}, m2.MulVec(v2(t, 1, 2)).Evaluate())

	m4 := linear.Identity4().Scale(expr.Int(2))
	require.Equal(t, [4]float64{2, 4, 6, 8}, m4.MulVec(v4(t, 1, 2, 3, 4)).Evaluate())
}

func TestMat_AddSubScaleTranspose(t *testing.T) {
	t.Parallel()

	a := mat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.Equal(t, [9]float64{2, 4, 6, 8, 10, 12, 14, 16, 18}, a.Add(a).Evaluate())
	require.Equal(t, [9]float64{}, a.Sub(a).Evaluate())
	require.Equal(t, [9]float64{-1, -2, -3, -4, -5, -6, -7, -8, -9}, a.Scale(expr.Int(-1)).Evaluate())
	require.Equal(t, [9]float64{1, 4, 7, 2, 5, 8, 3, 6, 9}, a.Transpose().Evaluate())
	require.True(t, a.Transpose().Transpose().Equal(a))

	var b linear.Mat2
	copy(b[:], ints(1, 2, 3, 4))
	require.Equal(t, [4]float64{1, 3, 2, 4}, b.Transpose().Evaluate())
	require.Equal(t, [4]float64{2, 4, 6, 8}, b.Add(b).Evaluate())
	require.Equal(t, [4]float64{}, b.Sub(b).Evaluate())
	require.Equal(t, [4]float64{7, 10, 15, 22}, b.Mul(b).Evaluate())
	require.Equal(t, [4]float64{0.5, 1, 1.5, 2}, b.Scale(expr.Frac(1, 2)).Evaluate())
	require.True(t, linear.Identity2().Mul(b).Equal(b))

	c := mat4(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	require.True(t, c.Transpose().Transpose().Equal(c))
	require.True(t, c.Add(c).Equal(c.Scale(expr.Int(2))))
	require.True(t, c.Sub(c).Equal(linear.Mat4{}))
	require.True(t, c.Mul(linear.Identity4()).Equal(c))
}

func TestMat_Det(t *testing.T) {
	t.Parallel()

	var b linear.Mat2
	copy(b[:], ints(1, 2, 3, 4))
	require.Equal(t, -2.0, b.Det().Evaluate())

	require.Equal(t, 0.0, mat3(1, 2, 3, 4, 5, 6, 7, 8, 9).Det().Evaluate())
	require.Equal(t, 1.0, mat3(1, 2, 3, 0, 1, 4, 5, 6, 0).Det().Evaluate())
	require.Equal(t, 1.0, linear.Identity3().Det().Evaluate())

	require.Equal(t, 1.0, linear.Identity4().Det().Evaluate())
	m := mat4(
		1, 0, 2, -1,
		3, 0, 0, 5,
		2, 1, 4, -3,
		1, 0, 5, 0,
	)
	require.Equal(t, 30.0, m.Det().Evaluate())
}

func TestMat_StringAndZero(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[1, 0, 0, 1]", linear.Identity2().String())
	var z linear.Mat3
	require.Equal(t, [9]float64{}, z.Evaluate())
	require.Equal(t, "[0, 0, 0, 0, 0, 0, 0, 0, 0]", z.String())
	require.Equal(t, 16, len(linear.Identity4().Evaluate()))
	require.Equal(t, "[1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1]", linear.Identity4().String())
}
