// SPDX-License-Identifier: MIT

package linear_test

import (
	"fmt"

	"github.com/katalvlaran/exact/expr"
	"github.com/katalvlaran/exact/linear"
)

func ExampleVec2_Add() {
	v, _ := linear.Vec2Of(3, 5)
	sum := v.Add(linear.Splat2(expr.Int(2)))
	fmt.Println(sum)
	fmt.Println(sum.Evaluate())
	// Output:
	// [(3 + 2), (5 + 2)]
	// [5 7]
}

func ExampleVec3_Norm() {
	v, _ := linear.Vec3Of(6, 8, 0)
	fmt.Println(v.Norm().Evaluate())
	// Output: 10
}

func ExampleMat2_Det() {
	var m linear.Mat2
	copy(m[:], []expr.Expr{expr.Int(1), expr.Int(2), expr.Int(3), expr.Int(4)})
	fmt.Println(m.Det(), "=", m.Det().Evaluate())
	// Output: (4 - (2 * 3)) = -2
}
