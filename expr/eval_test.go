// SPDX-License-Identifier: MIT

package expr_test

import (
	"math"
	"sort"
	"sync"
	"testing"

	"github.com/katalvlaran/exact/expr"
	"github.com/stretchr/testify/require"
)

func TestEqual_IsSemantic(t *testing.T) {
	t.Parallel()

	three := expr.Int(3)
	sum := expr.Int(1).Add(expr.Int(2))
	require.True(t, three.Equal(sum))
	require.False(t, three.Identical(sum))
	require.True(t, expr.Frac(1, 2).Equal(expr.Must(0.5)))
	require.False(t, three.Equal(expr.Int(4)))
}

func TestEqual_NaN(t *testing.T) {
	t.Parallel()

	nan := expr.Int(0).Div(expr.Int(0))
	require.False(t, nan.Equal(nan))
	require.Equal(t, 0, nan.Compare(expr.Int(1)))
}

func TestCompareAndLess(t *testing.T) {
	t.Parallel()

	a := expr.Int(1).Add(expr.Int(1))
	b := expr.Frac(5, 2)
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(expr.Int(2)))
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))

	xs := []expr.Expr{expr.Int(9), b, expr.Int(-1), a}
	sort.Slice(xs, func(i, j int) bool { return xs[i].Less(xs[j]) })
	require.Equal(t, []float64{-1, 2, 2.5, 9}, []float64{
		xs[0].Evaluate(), xs[1].Evaluate(), xs[2].Evaluate(), xs[3].Evaluate(),
	})
}

func TestZeroValueIsLiteralZero(t *testing.T) {
	t.Parallel()

	var z expr.Expr
	n, ok := z.Literal()
	require.True(t, ok)
	require.Zero(t, n)
	require.Equal(t, "0", z.String())
	require.True(t, z.Identical(expr.Int(0)))
}

func TestInspection(t *testing.T) {
	t.Parallel()

	e := expr.Int(1).Add(expr.Int(2)).Sub(expr.Int(7).Rem(expr.Int(3)))
	require.Equal(t, expr.OpSub, e.Op())
	require.Equal(t, 3, e.Depth())
	require.Equal(t, 7, e.Size())

	l, r, ok := e.Operands()
	require.True(t, ok)
	require.Equal(t, "(1 + 2)", l.String())
	require.Equal(t, "(7 % 3)", r.String())

	_, _, ok = expr.Int(1).Operands()
	require.False(t, ok)
	_, ok = e.Literal()
	require.False(t, ok)
}

func TestOpNames(t *testing.T) {
	t.Parallel()

	want := map[expr.Op][2]string{
		expr.OpValue: {"Value", ""},
		expr.OpAdd:   {"Add", "+"},
		expr.OpSub:   {"Sub", "-"},
		expr.OpMul:   {"Mul", "*"},
		expr.OpDiv:   {"Div", "/"},
		expr.OpRem:   {"Rem", "%"},
		expr.OpExp:   {"Exp", "^"},
	}
	for op, w := range want {
		require.Equal(t, w[0], op.String())
		require.Equal(t, w[1], op.Symbol())
	}
}

func TestString_FullyParenthesized(t *testing.T) {
	t.Parallel()

	e := expr.Int(1).Add(expr.Int(2)).Mul(expr.Int(3).Sub(expr.Int(-4))).Pow(expr.Int(2).Rem(expr.Int(5)))
	require.Equal(t, "(((1 + 2) * (3 - -4)) ^ (2 % 5))", e.String())
}

func TestEvaluate_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	e := expr.Int(1)
	for i := int64(2); i <= 50; i++ {
		e = e.Add(expr.Frac(1, i))
	}
	want := e.Evaluate()

	var wg sync.WaitGroup
	got := make([]float64, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = e.Evaluate()
		}(i)
	}
	wg.Wait()
	for _, v := range got {
		require.Equal(t, want, v)
	}
	require.False(t, math.IsNaN(want))
}
