package expr_test

import (
	"fmt"

	"github.com/katalvlaran/exact/expr"
)

// ExampleFromFloat64 shows the rational encoding of a float and the single
// rounding step performed by Evaluate.
func ExampleFromFloat64() {
	x, err := expr.FromFloat64(0.1)
	if err != nil {
		panic(err)
	}
	sum := x.Add(x).Add(x)
	fmt.Println(x)
	fmt.Println(sum)
	fmt.Println(sum.Evaluate())
	// Output:
	// (1 / 10)
	// (((1 / 10) + (1 / 10)) + (1 / 10))
	// 0.30000000000000004
}

// ExampleExpr_Mul shows the literal-one shortcut.
func ExampleExpr_Mul() {
	a := expr.Int(2).Add(expr.Int(3))
	fmt.Println(a.Mul(expr.Int(1)))
	fmt.Println(a.Mul(expr.Int(4)))
	// Output:
	// (2 + 3)
	// ((2 + 3) * 4)
}

// ExampleExpr_Equal shows that equality compares values, not shapes.
func ExampleExpr_Equal() {
	fmt.Println(expr.Int(3).Equal(expr.Int(1).Add(expr.Int(2))))
	fmt.Println(expr.Int(3).Identical(expr.Int(1).Add(expr.Int(2))))
	// Output:
	// true
	// false
}
